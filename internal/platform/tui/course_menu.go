package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
)

// CourseOption is one entry of the course layout picker.
type CourseOption struct {
	Layout string
	Title  string
	Blurb  string
}

// CourseOptions lists the selectable layouts in display order.
var CourseOptions = []CourseOption{
	{config.LayoutTemplate, "Classic course", "Six hand-made templates repeated over 18 holes"},
	{config.LayoutRandom, "Random course", "A fresh generated layout every round"},
	{config.LayoutGrid, "Blank grid", "Par 4 holes with no obstacles"},
}

// CourseMenuModel lets users choose the course layout before a round.
type CourseMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection *CourseOption
	quitting  bool
	back      bool
}

// NewCourseMenuModel creates a new course selection model.
func NewCourseMenuModel(width, height int) CourseMenuModel {
	return CourseMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m CourseMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CourseMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m CourseMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(CourseOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		opt := CourseOptions[m.cursor]
		m.selection = &opt
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the layout list.
func (m CourseMenuModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C O U R S E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a layout:", m.width))
	b.WriteString("\n\n")

	for i, opt := range CourseOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(CourseOptions[m.cursor].Blurb, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen layout, or nil if none was chosen.
func (m CourseMenuModel) Selected() *CourseOption {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m CourseMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CourseMenuModel) WantsBack() bool {
	return m.back
}

// RunCourseSelector runs the layout picker. A nil option means the user
// backed out or quit.
func RunCourseSelector(cfg core.RuntimeConfig) (*CourseOption, core.RuntimeConfig, error) {
	model := NewCourseMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(CourseMenuModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	return m.Selected(), cfg, nil
}
