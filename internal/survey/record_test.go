package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEngagementLevelNumeric verifies the three-way mapping and its
// catch-all absent case.
func TestEngagementLevelNumeric(t *testing.T) {
	tests := []struct {
		level   EngagementLevel
		want    int64
		present bool
	}{
		{EngagementLow, 1, true},
		{EngagementMedium, 2, true},
		{EngagementHigh, 3, true},
		{"Unknown", 0, false},
		{"", 0, false},
		{"low", 0, false},  // case sensitive
		{"HIGH", 0, false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			got, ok := tt.level.Numeric()
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveNumeric(t *testing.T) {
	t.Run("appends column per record", func(t *testing.T) {
		records := []Record{
			{EmployeeID: 1, JobTitle: "SWE", EngagementLevel: EngagementHigh},
			{EmployeeID: 2, JobTitle: "SWE", EngagementLevel: EngagementLow},
			{EmployeeID: 3, JobTitle: "PM", EngagementLevel: "Unexpected"},
		}

		derived := DeriveNumeric(records)

		assert.Len(t, derived, len(records))
		assert.Equal(t, int64(3), derived[0].EngagementNumeric)
		assert.True(t, derived[0].Present)
		assert.Equal(t, int64(1), derived[1].EngagementNumeric)
		assert.True(t, derived[1].Present)
		assert.False(t, derived[2].Present)
	})

	t.Run("keeps the original record intact", func(t *testing.T) {
		records := []Record{
			{EmployeeID: 7, Department: "Eng", JobTitle: "SWE", SatisfactionRating: 8, EngagementLevel: EngagementMedium, ReportsConcerns: true},
		}

		derived := DeriveNumeric(records)

		assert.Equal(t, records[0], derived[0].Record)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, DeriveNumeric(nil))
	})
}
