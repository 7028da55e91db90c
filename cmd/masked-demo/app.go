package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/masked/maskinput"
)

type appKeys struct {
	Next   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Next:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "next preset")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

type changeState struct {
	count int
	last  maskinput.EventKind
}

func (s *changeState) handleChange(ev *maskinput.Event) {
	s.count++
	s.last = ev.Kind
}

type app struct {
	presets []Preset
	idx     int

	input   maskinput.Model
	inputKM maskinput.KeyMap
	keys    appKeys
	help    help.Model
	changes *changeState
	log     *slog.Logger

	err       error
	submitted bool
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	fieldStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

func newApp(presets []Preset, start int, logger *slog.Logger) (app, error) {
	p := presets[start]
	changes := &changeState{}
	km := maskinput.DefaultKeyMap()
	input, err := maskinput.New(maskinput.Config{
		Pattern:         p.Mask,
		Value:           p.Value,
		PlaceholderChar: p.PlaceholderChar,
		OnChange:        changes.handleChange,
		Logger:          logger,
		KeyMap:          km,
		Style:           maskinput.DefaultStyle(),
	})
	if err != nil {
		return app{}, err
	}
	return app{
		presets: presets,
		idx:     start,
		input:   input,
		inputKM: km,
		keys:    defaultAppKeys(),
		help:    help.New(),
		changes: changes,
		log:     logger,
	}, nil
}

func (a app) Init() tea.Cmd { return a.input.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Submit):
			a.submitted = true
			return a, tea.Quit
		case key.Matches(msg, a.keys.Next):
			return a.nextPreset(), nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// nextPreset swaps the field's pattern. The typed characters carry over
// slot by slot.
func (a app) nextPreset() app {
	next := (a.idx + 1) % len(a.presets)
	input, err := a.input.SetPattern(a.presets[next].Mask)
	if err != nil {
		a.err = err
		a.log.Warn("preset swap failed", "preset", a.presets[next].Name, "error", err)
		return a
	}
	a.input = input
	a.idx = next
	a.err = nil
	a.log.Debug("preset swapped", "preset", a.presets[next].Name, "raw", a.input.RawValue())
	return a
}

func (a app) View() string {
	p := a.presets[a.idx]

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", p.Name, p.Mask)))
	b.WriteString("\n")
	b.WriteString(fieldStyle.Render(a.input.View()))
	b.WriteString("\n")
	if p.Placeholder != "" {
		b.WriteString(dimStyle.Render("hint: " + p.Placeholder))
		b.WriteString("\n")
	}
	status := fmt.Sprintf("value %q  raw %q  changes %d", a.input.Value(), a.input.RawValue(), a.changes.count)
	if a.changes.count > 0 {
		status += "  last " + a.changes.last.String()
	}
	b.WriteString(dimStyle.Render(status))
	b.WriteString("\n")
	if a.err != nil {
		b.WriteString(errStyle.Render(a.err.Error()))
		b.WriteString("\n")
	}

	bindings := []key.Binding{a.keys.Next, a.keys.Submit, a.keys.Quit}
	bindings = append(bindings, a.inputKM.ShortHelp()...)
	b.WriteString(a.help.ShortHelpView(bindings))
	return b.String()
}
