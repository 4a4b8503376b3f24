package service

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatScore renders an average with the shortest decimal representation
// that round-trips. The CSV writer and the console preview share it so both
// views agree.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RenderPreview renders up to limit result rows as a right-aligned bordered
// grid, with a trailing note when rows were held back.
func RenderPreview(scores []TitleScore, limit int) string {
	headers := [2]string{"JobTitle", "AvgEngagementLevel"}

	shown := scores
	truncated := false
	if limit >= 0 && len(scores) > limit {
		shown = scores[:limit]
		truncated = true
	}

	widths := [2]int{len(headers[0]), len(headers[1])}
	rows := make([][2]string, 0, len(shown))
	for _, s := range shown {
		row := [2]string{s.JobTitle, FormatScore(s.AvgEngagementLevel)}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	border := func() {
		for _, w := range widths {
			b.WriteByte('+')
			b.WriteString(strings.Repeat("-", w))
		}
		b.WriteString("+\n")
	}
	line := func(row [2]string) {
		for i, cell := range row {
			b.WriteByte('|')
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			b.WriteString(cell)
		}
		b.WriteString("|\n")
	}

	border()
	line(headers)
	border()
	for _, row := range rows {
		line(row)
	}
	border()

	if truncated {
		fmt.Fprintf(&b, "only showing top %d rows\n", limit)
	}
	return b.String()
}
