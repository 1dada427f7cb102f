// Package tui implements the interactive finder interface: a query input,
// a ranked result list, and a live preview pane fed by the preview
// subsystem.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"glimpse/internal/config"
	"glimpse/internal/entry"
	"glimpse/internal/finder"
	"glimpse/internal/logging"
	"glimpse/internal/preview"
)

// pollInterval is how often the preview pane re-checks the cache while
// the selected entry is still loading.
const pollInterval = 80 * time.Millisecond

// tickMsg drives preview polling for in-flight computations.
type tickMsg time.Time

type Model struct {
	cfg       *config.Config
	logger    *logging.AppLogger
	finder    *finder.Finder
	previewer *preview.Previewer

	input   textinput.Model
	vp      viewport.Model
	entries []entry.Entry
	cursor  int

	width   int
	height  int
	ready   bool
	polling bool

	// Selected holds the entry confirmed with enter, if any, for the
	// caller to act on after the program exits.
	Selected *entry.Entry
}

// NewModel builds the finder UI over a scanned root.
func NewModel(cfg *config.Config, f *finder.Finder, p *preview.Previewer, logger *logging.AppLogger) *Model {
	input := textinput.New()
	input.Placeholder = "type to search"
	input.Prompt = "> "
	input.Focus()

	m := &Model{
		cfg:       cfg,
		logger:    logger,
		finder:    f,
		previewer: p,
		input:     input,
		entries:   f.Find(""),
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.logger.LogMessage(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, m.refreshPreview()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if e := m.currentEntry(); e != nil {
				selected := *e
				m.Selected = &selected
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, m.refreshPreview()
		case "down", "ctrl+n":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
			return m, m.refreshPreview()
		case "pgup", "ctrl+u":
			m.vp.HalfViewUp()
			return m, nil
		case "pgdown", "ctrl+d":
			m.vp.HalfViewDown()
			return m, nil
		}

		// everything else edits the query
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.entries = m.finder.Find(m.input.Value())
			m.cursor = 0
			return m, tea.Batch(cmd, m.refreshPreview())
		}
		return m, cmd

	case tickMsg:
		m.polling = false
		return m, m.refreshPreview()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) currentEntry() *entry.Entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return &m.entries[m.cursor]
}

// refreshPreview asks the previewer for the current entry's preview and
// pushes it into the viewport. The previewer call never blocks; while the
// result is still loading a tick keeps the pane polling the cache.
func (m *Model) refreshPreview() tea.Cmd {
	e := m.currentEntry()
	if e == nil {
		m.vp.SetContent("")
		return nil
	}

	p := m.previewer.Preview(*e)
	m.vp.SetContent(renderPreview(p, m.vp.Width))
	m.vp.GotoTop()

	if p.Kind == preview.KindLoading && !m.polling {
		m.polling = true
		return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})
	}
	return nil
}
