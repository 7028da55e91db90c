package maskinput

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a Bubble Tea component: a Field driven by a Controller.
type Model struct {
	cfg   Config
	ctrl  *Controller
	field *Field
	queue *TaskQueue
}

// flushMsg runs a model's deferred tasks on the next turn of the program's
// message loop.
type flushMsg struct {
	queue *TaskQueue
}

// New builds the controller and a focused field. The model schedules
// deferred work itself; cfg.Scheduler is ignored.
func New(cfg Config) (Model, error) {
	if keyMapIsZero(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	q := &TaskQueue{}
	cfg.Scheduler = q

	ctrl, err := NewController(cfg)
	if err != nil {
		return Model{}, err
	}
	m := Model{
		cfg:   cfg,
		ctrl:  ctrl,
		field: NewField(),
		queue: q,
	}
	m.field.Focus()
	ctrl.Attach(m.field)
	m.syncAttrs()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Controller() *Controller { return m.ctrl }

func (m Model) Field() *Field { return m.field }

func (m Model) Focus() Model {
	m.ctrl.Focus()
	return m
}

func (m Model) Blur() Model {
	m.ctrl.Blur()
	return m
}

func (m Model) Focused() bool { return m.field.Focused() }

// Value returns what the field shows: the formatted value, or "" while empty.
func (m Model) Value() string { return m.ctrl.DeriveDisplayValue() }

// RawValue returns the engine's raw value.
func (m Model) RawValue() string { return m.ctrl.Engine().RawValue() }

// SetProps replaces pattern and value together.
func (m Model) SetProps(p Props) (Model, error) {
	if err := m.ctrl.Update(p); err != nil {
		return m, err
	}
	m.syncAttrs()
	return m, nil
}

// SetPattern swaps the pattern, keeping the current value prop.
func (m Model) SetPattern(pattern string) (Model, error) {
	p := m.ctrl.Props()
	p.Pattern = pattern
	return m.SetProps(p)
}

// SetValue replaces the value prop.
func (m Model) SetValue(value string) (Model, error) {
	p := m.ctrl.Props()
	p.Value = value
	return m.SetProps(p)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flushMsg:
		if msg.queue == m.queue {
			m.queue.Run()
		}
	case tea.KeyMsg:
		m.updateKey(msg)
	}
	return m, m.flushCmd()
}

func (m Model) flushCmd() tea.Cmd {
	if m.queue.Len() == 0 {
		return nil
	}
	q := m.queue
	return func() tea.Msg { return flushMsg{queue: q} }
}

func (m Model) syncAttrs() {
	m.field.SetMaxLength(m.ctrl.Attributes().MaxLength)
}
