package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// View renders both panels for the current frame. Scroll positions are
// reconciled here, against the freshly wrapped content, so a panel that
// was scrolled past its end or is autoscrolling lands on the tail before
// anything is drawn.
func (m *Model) View() string {
	if m.width < 4 || m.height < 2 {
		return ""
	}
	leftW := m.width / 2
	rightW := m.width - leftW
	left := m.renderPane(&m.panes[paneStdout], leftW, m.height, m.focus == paneStdout)
	right := m.renderPane(&m.panes[paneStderr], rightW, m.height, m.focus == paneStderr)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) renderPane(p *pane, outerW, outerH int, focused bool) string {
	innerW := outerW - 2
	innerH := outerH - 2
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	lines := wrapLines(p.stream.Text(), innerW)
	p.scroll.reconcile(len(lines), innerH)

	border := m.styles.Border
	if focused {
		border = m.styles.FocusedBorder
	}
	bar := m.scrollbar(len(lines), innerH, p.scroll.offset)

	rows := make([]string, 0, outerH)
	rows = append(rows, m.titleRow(p, innerW, border))
	for i := 0; i < innerH; i++ {
		var line string
		if idx := p.scroll.offset + i; idx >= 0 && idx < len(lines) {
			line = lines[idx]
		}
		line = truncate.String(line, uint(innerW))
		if pad := innerW - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		edge := border.Render("│")
		if bar != nil {
			edge = bar[i]
		}
		rows = append(rows, border.Render("│")+line+edge)
	}
	rows = append(rows, border.Render("└"+strings.Repeat("─", innerW)+"┘"))
	return strings.Join(rows, "\n")
}

// titleRow draws the top border with the stream name on the left, an EOF
// marker in the center once the stream has ended, and the autoscroll
// marker on the right while the panel follows the tail.
func (m *Model) titleRow(p *pane, innerW int, border lipgloss.Style) string {
	fill := []rune(strings.Repeat("─", innerW))
	overlayTitle(fill, 0, p.stream.Name())
	if p.scroll.autoscroll {
		t := "autoscrolling"
		overlayTitle(fill, innerW-runewidth.StringWidth(t), t)
	}
	if !p.stream.Open() {
		t := "EOF"
		overlayTitle(fill, (innerW-runewidth.StringWidth(t))/2, t)
	}
	return border.Render("┌" + string(fill) + "┐")
}

// overlayTitle paints s over the border fill starting at pos, clipping at
// both edges. Titles painted later win where they overlap.
func overlayTitle(fill []rune, pos int, s string) {
	if pos < 0 {
		pos = 0
	}
	for _, r := range s {
		if pos >= len(fill) {
			return
		}
		fill[pos] = r
		pos++
	}
}

// scrollbar returns one glyph per body row for the right edge, or nil
// when the content fits and the plain border should show instead. Thumb
// size and position follow the visible/total proportion, with a one row
// minimum so the thumb never disappears.
func (m *Model) scrollbar(total, height, offset int) []string {
	if height <= 0 || total <= height {
		return nil
	}
	thumb := int(math.Round(float64(height) * float64(height) / float64(total)))
	if thumb < 1 {
		thumb = 1
	}
	if thumb > height {
		thumb = height
	}
	maxStart := height - thumb
	top := 0
	if denom := total - height; denom > 0 {
		top = int(math.Round(float64(offset) / float64(denom) * float64(maxStart)))
	}
	if top < 0 {
		top = 0
	}
	if top > maxStart {
		top = maxStart
	}
	rows := make([]string, height)
	for i := range rows {
		if i >= top && i < top+thumb {
			rows[i] = m.styles.ScrollThumb.Render("┃")
		} else {
			rows[i] = m.styles.ScrollTrack.Render("│")
		}
	}
	return rows
}
