package maskinput

import (
	"fmt"
	"log/slog"

	"github.com/iw2rmb/masked/internal/grapheme"
	"github.com/iw2rmb/masked/mask"
)

// Controller mediates between a Widget and an Engine. It is driven from a
// single UI goroutine and is not safe for concurrent use.
type Controller struct {
	cfg    Config
	engine Engine
	widget Widget
	props  Props

	sched Scheduler
	queue *TaskQueue
	log   *slog.Logger

	// gen counts controller writes to the widget. Deferred work captured
	// under an older generation is stale.
	gen uint64
}

// NewController builds the engine from cfg. An invalid pattern is returned
// as an error.
func NewController(cfg Config) (*Controller, error) {
	newEngine := cfg.NewEngine
	if newEngine == nil {
		newEngine = NewMaskEngine
	}
	eng, err := newEngine(cfg.engineOptions())
	if err != nil {
		return nil, fmt.Errorf("maskinput: build engine for %q: %w", cfg.Pattern, err)
	}

	c := &Controller{
		cfg:    cfg,
		engine: eng,
		props:  Props{Pattern: cfg.Pattern, Value: cfg.Value},
		sched:  cfg.Scheduler,
		log:    cfg.Logger,
	}
	if c.sched == nil {
		c.queue = &TaskQueue{}
		c.sched = c.queue
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	return c, nil
}

// Engine returns the engine the controller drives.
func (c *Controller) Engine() Engine { return c.engine }

// Props returns the last props accepted by Update.
func (c *Controller) Props() Props { return c.props }

// Attach binds w and renders the current display value into it.
func (c *Controller) Attach(w Widget) {
	c.widget = w
	c.gen++
	c.render()
}

// Detach drops the widget. Pending deferred work becomes a no-op.
func (c *Controller) Detach() {
	c.widget = nil
	c.gen++
}

// Attached reports whether a widget is bound.
func (c *Controller) Attached() bool { return c.widget != nil }

func (c *Controller) Focus() {
	if c.widget != nil {
		c.widget.Focus()
	}
}

func (c *Controller) Blur() {
	if c.widget != nil {
		c.widget.Blur()
	}
}

// DeriveDisplayValue returns the text the widget shows: the engine value, or
// "" while nothing has been entered.
func (c *Controller) DeriveDisplayValue() string {
	v := c.engine.Value()
	if v == c.engine.EmptyValue() {
		return ""
	}
	return v
}

// Attrs are the attributes the widget renders with.
type Attrs struct {
	Value       string
	MaxLength   int
	Size        int
	Placeholder string
}

func (c *Controller) Attributes() Attrs {
	a := Attrs{
		Value:       c.DeriveDisplayValue(),
		MaxLength:   c.engine.PatternLen(),
		Size:        c.cfg.Size,
		Placeholder: c.cfg.Placeholder,
	}
	if a.Size <= 0 {
		a.Size = a.MaxLength
	}
	if a.Placeholder == "" {
		a.Placeholder = c.engine.EmptyValue()
	}
	return a
}

// RunDeferred drains the built-in queue when no Scheduler was configured.
func (c *Controller) RunDeferred() int {
	if c.queue == nil {
		return 0
	}
	return c.queue.Run()
}

// Dispatch routes ev to its handler and reports whether the engine changed.
func (c *Controller) Dispatch(ev *Event) bool {
	switch ev.Kind {
	case EventValueChange:
		return c.HandleValueChange(ev)
	case EventKeyDown:
		return c.HandleKeyDown(ev)
	case EventKeyPress:
		return c.HandleKeyPress(ev)
	case EventPaste:
		return c.HandlePaste(ev)
	default:
		return false
	}
}

// HandleValueChange reconciles text the widget changed on its own. Text
// equal to the engine value is the controller's own write and is ignored.
func (c *Controller) HandleValueChange(ev *Event) bool {
	if ev.Text == c.engine.Value() {
		return false
	}
	text := ev.Text
	return c.sync(ev, syncStep{
		op:      "set-value",
		capture: true,
		mutate: func() bool {
			c.engine.SetValue(text)
			return true
		},
		text:    c.DeriveDisplayValue,
		restore: restoreNow,
	})
}

// HandleKeyDown handles undo, redo and backspace. Other keys are left to
// the widget.
func (c *Controller) HandleKeyDown(ev *Event) bool {
	switch k := ev.Key; {
	case k.isUndo():
		ev.PreventDefault()
		return c.sync(ev, syncStep{
			op:      "undo",
			mutate:  c.engine.Undo,
			text:    c.DeriveDisplayValue,
			restore: restoreNow,
		})
	case k.isRedo():
		ev.PreventDefault()
		return c.sync(ev, syncStep{
			op:      "redo",
			mutate:  c.engine.Redo,
			text:    c.DeriveDisplayValue,
			restore: restoreNow,
		})
	case k.Name == KeyBackspace:
		ev.PreventDefault()
		return c.sync(ev, syncStep{
			op:      "backspace",
			capture: true,
			mutate:  c.engine.Backspace,
			text:    c.DeriveDisplayValue,
			restore: restoreUnlessEmpty,
		})
	}
	return false
}

// HandleKeyPress types one character. Modified keys and Enter are left to
// the widget so shortcuts and form submission keep working.
func (c *Controller) HandleKeyPress(ev *Event) bool {
	k := ev.Key
	if k.Ctrl || k.Meta || k.Alt || k.Name == KeyEnter || !grapheme.IsSingle(k.Name) {
		return false
	}
	ev.PreventDefault()
	ch := k.Name
	return c.sync(ev, syncStep{
		op:      "input",
		capture: true,
		mutate:  func() bool { return c.engine.Input(ch) },
		text:    c.engine.Value,
		restore: restoreNow,
	})
}

// HandlePaste inserts clipboard text. The selection is restored on the next
// scheduler turn because some hosts reset it right after a paste.
func (c *Controller) HandlePaste(ev *Event) bool {
	ev.PreventDefault()
	text := ev.Text
	return c.sync(ev, syncStep{
		op:      "paste",
		capture: true,
		mutate:  func() bool { return c.engine.Paste(text) },
		text:    c.engine.Value,
		restore: restoreDeferred,
	})
}

type restoreMode uint8

const (
	restoreNow restoreMode = iota
	restoreUnlessEmpty
	restoreDeferred
)

type syncStep struct {
	op      string
	capture bool
	mutate  func() bool
	text    func() string
	restore restoreMode
}

// sync runs one edit: capture the widget selection into the engine, mutate
// the engine, then write text and selection back and notify. A rejected
// mutation stops before anything downstream happens.
func (c *Controller) sync(ev *Event, st syncStep) bool {
	if st.capture {
		c.captureSelection()
	}
	if !st.mutate() {
		c.log.Debug("edit rejected",
			slog.String("op", st.op),
			slog.Int("start", c.engine.Selection().Start),
			slog.Int("end", c.engine.Selection().End),
		)
		return false
	}

	text := st.text()
	c.gen++
	c.writeText(text)
	switch st.restore {
	case restoreNow:
		c.restoreSelection()
	case restoreUnlessEmpty:
		if text != "" {
			c.restoreSelection()
		}
	case restoreDeferred:
		c.deferRestore(text)
	}

	if c.cfg.OnChange != nil {
		c.cfg.OnChange(ev)
	}
	return true
}

func (c *Controller) captureSelection() {
	if c.widget == nil {
		return
	}
	c.engine.SetSelection(c.widget.Selection())
}

func (c *Controller) restoreSelection() {
	if c.widget == nil {
		return
	}
	c.widget.Focus()
	c.widget.SetSelection(c.engine.Selection())
}

func (c *Controller) writeText(text string) {
	if c.widget == nil || c.widget.Text() == text {
		return
	}
	c.widget.SetText(text)
}

func (c *Controller) deferRestore(text string) {
	gen := c.gen
	want := c.engine.Selection()
	rev, tracked := c.selectionRevision()
	c.sched.Defer(func() {
		if c.widget == nil || c.gen != gen || c.widget.Text() != text || c.engine.Selection() != want {
			c.log.Debug("stale selection restore skipped", slog.Uint64("generation", gen))
			return
		}
		if now, ok := c.selectionRevision(); tracked && ok && now != rev {
			c.log.Debug("selection restore skipped after user move", slog.Uint64("revision", now))
			return
		}
		c.restoreSelection()
	})
}

func (c *Controller) selectionRevision() (uint64, bool) {
	r, ok := c.widget.(SelectionRevisioner)
	if !ok {
		return 0, false
	}
	return r.SelectionRevision(), true
}

// render writes the display value into the widget, as a host re-render does.
func (c *Controller) render() {
	text := c.DeriveDisplayValue()
	if c.widget == nil || c.widget.Text() == text {
		return
	}
	c.gen++
	c.widget.SetText(text)
}

func (c *Controller) selectionForSwap() mask.Selection {
	if c.widget == nil {
		return mask.Selection{}
	}
	return c.widget.Selection()
}
