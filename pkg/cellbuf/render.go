package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string, one line per row
// joined with "\n". Adjacent cells sharing a StyleKey are rendered as a
// single run. Keys missing from styles render as plain text. An empty
// buffer renders as "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	var sb strings.Builder
	chunk := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		chunk = chunk[:0]
		runStyle := row[0].Style
		for _, c := range row {
			if c.Style != runStyle {
				writeRun(&sb, styles, runStyle, chunk)
				chunk = chunk[:0]
				runStyle = c.Style
			}
			chunk = append(chunk, c.Ch)
		}
		writeRun(&sb, styles, runStyle, chunk)
	}
	return sb.String()
}

// PlainString renders the buffer without any styling, trimming trailing
// spaces from each row.
func (b *Buffer) PlainString() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Ch
		}
		lines[y] = strings.TrimRight(string(rs), " ")
	}
	return strings.Join(lines, "\n")
}

func writeRun(sb *strings.Builder, styles map[StyleKey]lipgloss.Style, key StyleKey, run []rune) {
	if len(run) == 0 {
		return
	}
	if s, ok := styles[key]; ok {
		sb.WriteString(s.Render(string(run)))
		return
	}
	sb.WriteString(string(run))
}
