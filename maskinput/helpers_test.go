package maskinput

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/masked/mask"
)

func stripANSI(s string) string { return ansi.Strip(s) }

// countingEngine counts every engine call the controller makes.
type countingEngine struct {
	*mask.Mask
	calls int
}

func (e *countingEngine) SetPattern(p string, opt mask.PatternOptions) error {
	e.calls++
	return e.Mask.SetPattern(p, opt)
}
func (e *countingEngine) SetValue(v string) { e.calls++; e.Mask.SetValue(v) }
func (e *countingEngine) SetSelection(s mask.Selection) { e.calls++; e.Mask.SetSelection(s) }
func (e *countingEngine) Input(ch string) bool { e.calls++; return e.Mask.Input(ch) }
func (e *countingEngine) Backspace() bool { e.calls++; return e.Mask.Backspace() }
func (e *countingEngine) Paste(text string) bool { e.calls++; return e.Mask.Paste(text) }
func (e *countingEngine) Undo() bool { e.calls++; return e.Mask.Undo() }
func (e *countingEngine) Redo() bool { e.calls++; return e.Mask.Redo() }

// recordingWidget counts selection writes and focus calls on a Field.
type recordingWidget struct {
	*Field
	selWrites int
	focuses   int
}

func (w *recordingWidget) SetSelection(s mask.Selection) {
	w.selWrites++
	w.Field.SetSelection(s)
}

func (w *recordingWidget) Focus() {
	w.focuses++
	w.Field.Focus()
}

type harness struct {
	t      *testing.T
	ctrl   *Controller
	eng    *countingEngine
	widget *recordingWidget
	events []*Event
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	h := &harness{t: t}
	cfg.OnChange = func(ev *Event) { h.events = append(h.events, ev) }
	cfg.NewEngine = func(opt mask.Options) (Engine, error) {
		m, err := mask.New(opt)
		if err != nil {
			return nil, err
		}
		h.eng = &countingEngine{Mask: m}
		return h.eng, nil
	}
	ctrl, err := NewController(cfg)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	h.ctrl = ctrl
	h.widget = &recordingWidget{Field: NewField()}
	ctrl.Attach(h.widget)
	return h
}

func (h *harness) press(ch string) *Event {
	ev := KeyPress(Key{Name: ch})
	h.ctrl.Dispatch(ev)
	return ev
}

func (h *harness) keyDown(k Key) *Event {
	ev := KeyDown(k)
	h.ctrl.Dispatch(ev)
	return ev
}

func (h *harness) wantText(want string) {
	h.t.Helper()
	if got := h.widget.Text(); got != want {
		h.t.Fatalf("widget text: got %q, want %q", got, want)
	}
}

func (h *harness) wantSelection(want mask.Selection) {
	h.t.Helper()
	if got := h.widget.Selection(); got != want {
		h.t.Fatalf("widget selection: got %v, want %v", got, want)
	}
}

func (h *harness) wantEvents(n int) {
	h.t.Helper()
	if got := len(h.events); got != n {
		h.t.Fatalf("change notifications: got %d, want %d", got, n)
	}
}
