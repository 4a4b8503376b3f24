package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "2", FormatScore(2.0))
	assert.Equal(t, "2.5", FormatScore(2.5))
	assert.Equal(t, "2.3333333333333335", FormatScore(7.0/3.0))
}

func TestRenderPreview(t *testing.T) {
	scores := []TitleScore{
		{JobTitle: "Software Engineer", AvgEngagementLevel: 2.5},
		{JobTitle: "PM", AvgEngagementLevel: 2.0},
	}

	t.Run("renders all rows within limit", func(t *testing.T) {
		out := RenderPreview(scores, 20)

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		assert.Len(t, lines, 6) // 3 borders, header, 2 rows
		assert.Contains(t, lines[1], "JobTitle")
		assert.Contains(t, lines[1], "AvgEngagementLevel")
		assert.Contains(t, lines[3], "Software Engineer")
		assert.Contains(t, lines[3], "2.5")
		assert.Contains(t, lines[4], "PM")
		assert.NotContains(t, out, "only showing")
	})

	t.Run("truncates past the limit", func(t *testing.T) {
		out := RenderPreview(scores, 1)

		assert.Contains(t, out, "Software Engineer")
		assert.NotContains(t, out, "PM|")
		assert.Contains(t, out, "only showing top 1 rows")
	})

	t.Run("values right aligned to the widest cell", func(t *testing.T) {
		out := RenderPreview(scores, 20)

		assert.Contains(t, out, "|               PM|")
	})

	t.Run("empty result renders header only", func(t *testing.T) {
		out := RenderPreview(nil, 20)

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		assert.Len(t, lines, 4) // 3 borders, header
	})
}
