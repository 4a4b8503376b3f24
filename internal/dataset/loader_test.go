package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/engagehq/engagement-report/internal/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = "EmployeeID,Department,JobTitle,SatisfactionRating,EngagementLevel,ReportsConcerns,ProvidedSuggestions\n"

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "employee_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.csv")

		ds, err := Load(path)

		assert.Nil(t, ds)
		assert.ErrorIs(t, err, ErrInputNotFound)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("parses records against the schema", func(t *testing.T) {
		path := writeInput(t, sampleHeader+
			"1,Engineering,SWE,8,High,false,true\n"+
			"2,Engineering,SWE,6,Low,true,false\n"+
			"3,Product,PM,7,Medium,false,false\n")

		ds, err := Load(path)

		require.NoError(t, err)
		require.Len(t, ds.Records, 3)
		assert.Equal(t, survey.Record{
			EmployeeID:          1,
			Department:          "Engineering",
			JobTitle:            "SWE",
			SatisfactionRating:  8,
			EngagementLevel:     survey.EngagementHigh,
			ReportsConcerns:     false,
			ProvidedSuggestions: true,
		}, ds.Records[0])
		assert.Equal(t, survey.EngagementLow, ds.Records[1].EngagementLevel)
		assert.True(t, ds.Records[1].ReportsConcerns)
		assert.Equal(t, path, ds.Path)
		assert.Len(t, ds.Checksum, 64)
	})

	t.Run("unexpected engagement values are kept verbatim", func(t *testing.T) {
		path := writeInput(t, sampleHeader+"4,Sales,AE,5,Whatever,false,false\n")

		ds, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, survey.EngagementLevel("Whatever"), ds.Records[0].EngagementLevel)
	})

	t.Run("header only yields empty dataset", func(t *testing.T) {
		path := writeInput(t, sampleHeader)

		ds, err := Load(path)

		require.NoError(t, err)
		assert.Empty(t, ds.Records)
		assert.NotEmpty(t, ds.Checksum)
	})

	t.Run("identical content hashes identically", func(t *testing.T) {
		content := sampleHeader + "1,Eng,SWE,8,High,false,true\n"
		a := writeInput(t, content)
		b := writeInput(t, content)

		dsA, err := Load(a)
		require.NoError(t, err)
		dsB, err := Load(b)
		require.NoError(t, err)

		assert.Equal(t, dsA.Checksum, dsB.Checksum)
	})

	t.Run("malformed integer fails with the line number", func(t *testing.T) {
		path := writeInput(t, sampleHeader+
			"1,Eng,SWE,8,High,false,true\n"+
			"oops,Eng,SWE,8,High,false,true\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
		assert.Contains(t, err.Error(), "EmployeeID")
	})

	t.Run("malformed boolean fails", func(t *testing.T) {
		path := writeInput(t, sampleHeader+"1,Eng,SWE,8,High,maybe,true\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ReportsConcerns")
	})

	t.Run("wrong column count fails", func(t *testing.T) {
		path := writeInput(t, sampleHeader+"1,Eng,SWE,8,High,false\n")

		_, err := Load(path)

		assert.Error(t, err)
	})
}
