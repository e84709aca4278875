package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/osdfir/giftctl/pkg/manifest"
)

// categoryDescriptions maps each optional category to a short description
// shown in the picker.
var categoryDescriptions = map[manifest.Category]string{
	manifest.CategoryDebug:       "Debug symbols for the runtime libraries",
	manifest.CategoryDevelopment: "Linters and documentation tooling",
	manifest.CategoryTest:        "Packages needed to run the test suite",
}

// pickerKeys defines the key bindings for the category picker.
type pickerKeys struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

var defaultPickerKeys = pickerKeys{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Toggle:  key.NewBinding(key.WithKeys(" ")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// pickerModel is the bubbletea model for optional category selection.
// The runtime category is always installed and is shown but not toggleable.
type pickerModel struct {
	manifest *manifest.Manifest
	keys     pickerKeys

	cursor    int
	selected  map[manifest.Category]bool
	confirmed bool
	quit      bool
}

func newPickerModel(m *manifest.Manifest, preselected []manifest.Category) pickerModel {
	selected := make(map[manifest.Category]bool, len(preselected))
	for _, c := range preselected {
		selected[c] = true
	}
	return pickerModel{
		manifest: m,
		keys:     defaultPickerKeys,
		selected: selected,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(manifest.OptionalCategories)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		c := manifest.OptionalCategories[m.cursor]
		m.selected[c] = !m.selected[c]

	case key.Matches(keyMsg, m.keys.Confirm):
		m.confirmed = true
		return m, tea.Quit
	}

	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Select package categories"))
	b.WriteString("\n")

	runtimeCount := len(m.manifest.Categories[manifest.CategoryRuntime])
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("  [x] runtime (%d packages, always installed)", runtimeCount)))
	b.WriteString("\n\n")

	for i, c := range manifest.OptionalCategories {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		checked := " "
		if m.selected[c] {
			checked = "x"
		}

		line := fmt.Sprintf("%s[%s] %s (%d packages)", cursor, checked, c, len(m.manifest.Categories[c]))
		if i == m.cursor {
			b.WriteString(InfoStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render("      " + categoryDescriptions[c]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("space toggle · enter confirm · q cancel"))
	b.WriteString("\n")

	return b.String()
}

// Selection returns the chosen optional categories in install order.
func (m pickerModel) Selection() []manifest.Category {
	var result []manifest.Category
	for _, c := range manifest.OptionalCategories {
		if m.selected[c] {
			result = append(result, c)
		}
	}
	return result
}

// RunPicker shows the interactive category picker and returns the selected
// optional categories. The second return value is false when the user
// cancelled instead of confirming.
func RunPicker(m *manifest.Manifest, preselected []manifest.Category) ([]manifest.Category, bool, error) {
	program := tea.NewProgram(newPickerModel(m, preselected))
	final, err := program.Run()
	if err != nil {
		return nil, false, fmt.Errorf("category picker failed: %w", err)
	}

	model := final.(pickerModel)
	if model.quit || !model.confirmed {
		return nil, false, nil
	}
	return model.Selection(), true, nil
}
