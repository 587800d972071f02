package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/avolkov/ledboy/internal/config"
	"github.com/avolkov/ledboy/internal/engine"
	"github.com/avolkov/ledboy/internal/input"
	"github.com/avolkov/ledboy/internal/pixel"
	"github.com/avolkov/ledboy/internal/text"
)

// gain brightens the device-scale color values (tuned for dim LEDs)
// into the terminal's truecolor range.
const gain = 3

// TickMsg drives one engine poll.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model hosting one engine instance.
type Model struct {
	eng     *engine.Engine
	cfg     config.Config
	buttons *simButtons
	matrix  *frameSink
	panel   *textSink
	tone    *toneSink
	keys    keyMap
	help    help.Model

	tick     time.Duration
	quitting bool
}

// NewModel builds the simulator around a fresh engine.
func NewModel(cfg config.Config, seed int64, logger *log.Logger) (Model, error) {
	buttons := newSimButtons(cfg.Sim.KeyHoldMS)
	matrix := &frameSink{}
	panel := newTextSink()
	tone := &toneSink{}

	eng, err := engine.New(engine.Options{
		Matrix:  matrix,
		Panel:   panel,
		Tone:    tone,
		Buttons: buttons,
		Config:  cfg,
		Seed:    seed,
		Logger:  logger,
	})
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	return Model{
		eng:     eng,
		cfg:     cfg,
		buttons: buttons,
		matrix:  matrix,
		panel:   panel,
		tone:    tone,
		keys:    defaultKeyMap(),
		help:    help.New(),
		tick:    time.Duration(cfg.Sim.TickMS) * time.Millisecond,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		m.eng.Poll()
		return m, tickCmd(m.tick)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.buttons.Press(input.Up)
	case key.Matches(msg, m.keys.Down):
		m.buttons.Press(input.Down)
	case key.Matches(msg, m.keys.Left):
		m.buttons.Press(input.Left)
	case key.Matches(msg, m.keys.Right):
		m.buttons.Press(input.Right)
	case key.Matches(msg, m.keys.Action):
		m.buttons.Press(input.Action)
	case key.Matches(msg, m.keys.Select):
		m.buttons.Press(input.Select)
	}
	return m, nil
}

var (
	matrixBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("45")).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	toneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

func boost(v uint8) uint8 {
	b := int(v) * gain
	if b > 255 {
		b = 255
	}
	return uint8(b)
}

// renderMatrix paints the 8x8 grid, two characters per LED.
func (m Model) renderMatrix() string {
	var sb strings.Builder
	for y := range pixel.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range pixel.Width {
			c := m.matrix.At(x, y)
			if c == (pixel.RGB{}) {
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color("236")).Render("··"))
				continue
			}
			col := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x",
				boost(c.R), boost(c.G), boost(c.B)))
			sb.WriteString(lipgloss.NewStyle().Foreground(col).Render("██"))
		}
	}
	return matrixBorder.Render(sb.String())
}

// renderPanel paints the 16x8 character status panel.
func (m Model) renderPanel() string {
	lines := make([]string, 0, text.Height/text.GlyphSize)
	for n := range text.Height / text.GlyphSize {
		lines = append(lines, m.panel.Line(n))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	if f := m.tone.Freq(); f > 0 {
		return toneStyle.Render(fmt.Sprintf("♪ %d Hz", f))
	}
	if m.eng.Muted() {
		return statusStyle.Render("muted")
	}
	return statusStyle.Render("silent")
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderMatrix(), " ", m.renderPanel())
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

// Run starts the simulator in the menu and blocks until the user
// quits.
func Run(cfg config.Config, seed int64, logger *log.Logger) error {
	model, err := NewModel(cfg, seed, logger)
	if err != nil {
		return err
	}
	return run(model)
}

// RunGame starts the simulator directly inside a round of the given
// game.
func RunGame(cfg config.Config, seed int64, logger *log.Logger, id string) error {
	model, err := NewModel(cfg, seed, logger)
	if err != nil {
		return err
	}
	if err := model.eng.StartGame(id); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return run(model)
}

func run(model Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
