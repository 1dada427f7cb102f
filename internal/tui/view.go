package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"glimpse/internal/preview"
	"glimpse/internal/tui/styles"
)

// layout recomputes pane dimensions from the terminal size and the
// configured UI scale.
func (m *Model) layout() {
	usableW := m.width * m.cfg.UIScale / 100
	usableH := m.height * m.cfg.UIScale / 100
	if usableW < 40 {
		usableW = max(m.width, 40)
	}
	if usableH < 10 {
		usableH = max(m.height, 10)
	}

	// one line for the input, optionally one for the help bar, two for
	// pane borders
	chrome := 3
	if m.cfg.ShowHelpBar {
		chrome++
	}
	bodyH := max(usableH-chrome, 3)

	previewW := max(usableW/2-4, 20)
	if m.vp.Width == 0 && m.vp.Height == 0 {
		m.vp = viewport.New(previewW, bodyH)
	} else {
		m.vp.Width = previewW
		m.vp.Height = bodyH
	}
}

func (m *Model) View() string {
	if !m.ready {
		return styles.LoadingStyle.Render("loading…")
	}

	usableW := m.width * m.cfg.UIScale / 100
	if usableW < 40 {
		usableW = max(m.width, 40)
	}
	resultsW := usableW - m.vp.Width - 6
	if resultsW < 20 {
		resultsW = 20
	}

	inputLine := styles.TitleStyle.Render("glimpse") + " " + m.input.View()

	resultsPane := styles.PaneFocusedStyle.
		Width(resultsW).
		Height(m.vp.Height).
		Render(m.renderResults(resultsW, m.vp.Height))

	previewPane := styles.PaneStyle.
		Width(m.vp.Width).
		Height(m.vp.Height).
		Render(m.vp.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, resultsPane, previewPane)

	sections := []string{inputLine, body}
	if m.cfg.ShowHelpBar {
		sections = append(sections, styles.HelpStyle.Render(
			"↑/↓ move · enter select · ^u/^d scroll preview · esc quit"))
	}
	return strings.Join(sections, "\n")
}

// renderResults draws the visible window of the result list with the
// cursor kept in view.
func (m *Model) renderResults(width, height int) string {
	if len(m.entries) == 0 {
		return styles.StatusStyle.Render("no matches")
	}

	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(start+height, len(m.entries))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, BuildResultLine(m.entries[i], i == m.cursor, width))
	}
	return strings.Join(lines, "\n")
}

// renderPreview turns a preview value into the viewport's content.
func renderPreview(p *preview.Preview, width int) string {
	switch p.Kind {
	case preview.KindHighlightedText:
		var b strings.Builder
		for i, line := range p.Highlighted {
			if i > 0 {
				b.WriteByte('\n')
			}
			for _, frag := range line {
				b.WriteString(frag.Style.Render(frag.Text))
			}
		}
		return b.String()
	case preview.KindLoading:
		return styles.LoadingStyle.Render(strings.Join(p.Lines, "\n"))
	case preview.KindNotSupported, preview.KindTooLarge:
		return styles.StatusStyle.Render(strings.Join(p.Lines, "\n"))
	default:
		return strings.Join(p.Lines, "\n")
	}
}
