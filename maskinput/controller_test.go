package maskinput

import (
	"errors"
	"testing"

	"github.com/iw2rmb/masked/mask"
)

func TestNewController_InvalidPattern(t *testing.T) {
	_, err := NewController(Config{Pattern: "--/--"})
	if !errors.Is(err, mask.ErrNoEditable) {
		t.Fatalf("error: got %v, want %v", err, mask.ErrNoEditable)
	}
}

func TestAttach_RendersDisplayValue(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11", Value: "1234"})
	h.wantText("12/34")

	empty := newHarness(t, Config{Pattern: "11/11"})
	empty.wantText("")
	if got := empty.ctrl.DeriveDisplayValue(); got != "" {
		t.Fatalf("display value of untouched field: got %q, want empty", got)
	}
}

func TestHandleValueChange_NoOpWhenTextMatchesEngine(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11", Value: "1234"})
	h.eng.calls = 0

	if h.ctrl.Dispatch(ValueChange("12/34")) {
		t.Fatalf("expected no change")
	}
	if h.eng.calls != 0 {
		t.Fatalf("engine calls: got %d, want 0", h.eng.calls)
	}
	h.wantEvents(0)
}

func TestHandleValueChange_ReformatsNativeEdit(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11", Value: "1234"})
	// The widget deleted "/" on its own.
	h.widget.Field.text = []string{"1", "2", "3", "4"}
	h.widget.Field.SetSelection(mask.Caret(2))

	ev := ValueChange("1234")
	if !h.ctrl.Dispatch(ev) {
		t.Fatalf("expected change")
	}
	h.wantText("12/34")
	h.wantSelection(mask.Caret(2))
	h.wantEvents(1)
	if h.events[0] != ev {
		t.Fatalf("OnChange must receive the triggering event")
	}
}

func TestKeyPress_RoundTrip(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11"})
	for _, ch := range []string{"1", "2", "3", "4"} {
		if ev := h.press(ch); !ev.DefaultPrevented() {
			t.Fatalf("key press %q: default not prevented", ch)
		}
	}
	h.wantText("12/34")
	h.wantSelection(mask.Caret(5))
	h.wantEvents(4)
	if got := h.ctrl.Engine().Value(); got != h.widget.Text() {
		t.Fatalf("engine/widget mismatch: %q vs %q", got, h.widget.Text())
	}
}

func TestKeyPress_RejectedCharacterIsNoOp(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11", Value: "1"})
	h.widget.SetSelection(mask.Caret(1))
	writes := h.widget.selWrites

	ev := h.press("x")
	if !ev.DefaultPrevented() {
		t.Fatalf("rejected key press must still prevent the default insert")
	}
	h.wantText("1_/__")
	h.wantSelection(mask.Caret(1))
	h.wantEvents(0)
	if got, want := h.ctrl.Engine().RawValue(), "1___"; got != want {
		t.Fatalf("raw value: got %q, want %q", got, want)
	}
	if h.widget.selWrites != writes {
		t.Fatalf("rejected key press wrote the widget selection")
	}
}

func TestKeyPress_IgnoresModifiersAndEnter(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11"})
	h.eng.calls = 0

	for _, k := range []Key{
		{Name: "1", Ctrl: true},
		{Name: "1", Meta: true},
		{Name: "1", Alt: true},
		{Name: KeyEnter},
		{Name: "tab"},
	} {
		ev := KeyPress(k)
		if h.ctrl.Dispatch(ev) {
			t.Fatalf("key press %+v: expected no change", k)
		}
		if ev.DefaultPrevented() {
			t.Fatalf("key press %+v: default must not be prevented", k)
		}
	}
	if h.eng.calls != 0 {
		t.Fatalf("engine calls: got %d, want 0", h.eng.calls)
	}

	if ev := h.press("1"); !ev.DefaultPrevented() {
		t.Fatalf("shift-only key press must be handled")
	}
	h.wantText("1_/__")
}

func TestBackspace_RestoresSelectionUntilEmpty(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11", Value: "1234"})
	h.widget.SetSelection(mask.Caret(5))

	ev := h.keyDown(Key{Name: KeyBackspace})
	if !ev.DefaultPrevented() {
		t.Fatalf("backspace default not prevented")
	}
	h.wantText("12/3_")
	h.wantSelection(mask.Caret(4))
	if got, want := h.ctrl.Engine().RawValue(), "123_"; got != want {
		t.Fatalf("raw value: got %q, want %q", got, want)
	}

	for i := 0; i < 3; i++ {
		h.keyDown(Key{Name: KeyBackspace})
	}
	h.wantText("1_/__")
	h.wantSelection(mask.Caret(1))

	writes := h.widget.selWrites
	h.keyDown(Key{Name: KeyBackspace})
	h.wantText("")
	if h.widget.selWrites != writes {
		t.Fatalf("selection restored into an empty field")
	}
	h.wantEvents(5)

	if !h.keyDown(Key{Name: KeyBackspace}).DefaultPrevented() {
		t.Fatalf("backspace on empty field must still prevent default")
	}
	h.wantEvents(5)
}

func TestUndoRedo_Shortcuts(t *testing.T) {
	h := newHarness(t, Config{Pattern: "1111"})
	h.press("1")
	h.press("2")
	h.keyDown(Key{Name: KeyBackspace})
	h.wantText("1___")

	undo := Key{Name: "z", Ctrl: true}
	redo := Key{Name: "y", Ctrl: true}

	if ev := h.keyDown(undo); !ev.DefaultPrevented() {
		t.Fatalf("undo default not prevented")
	}
	h.wantText("12__")
	h.wantSelection(mask.Caret(2))

	h.keyDown(Key{Name: "Y", Meta: true, Shift: true})
	h.wantText("1___")
	h.wantSelection(mask.Caret(1))
	h.keyDown(undo)
	h.wantText("")

	if h.ctrl.Dispatch(KeyDown(undo)) {
		t.Fatalf("expected undo with empty history to report no change")
	}
	h.wantEvents(6)

	h.keyDown(redo)
	h.wantText("1___")
	h.wantSelection(mask.Caret(1))
	h.keyDown(Key{Name: "Z", Ctrl: true, Shift: true})
	h.wantText("12__")
	h.wantSelection(mask.Caret(2))
	h.keyDown(redo)
	h.wantText("1___")
	h.wantSelection(mask.Caret(1))
	if h.ctrl.Dispatch(KeyDown(redo)) {
		t.Fatalf("expected redo with empty stack to report no change")
	}
	h.wantEvents(9)
}

func TestKeyDown_OtherKeysUntouched(t *testing.T) {
	h := newHarness(t, Config{Pattern: "1111", Value: "12"})
	for _, k := range []Key{{Name: KeyDelete}, {Name: "z"}, {Name: "left"}, {Name: "y", Alt: true}} {
		ev := h.keyDown(k)
		if ev.DefaultPrevented() {
			t.Fatalf("key down %+v: default must not be prevented", k)
		}
	}
	h.wantEvents(0)
}

func TestPaste_ReplacesSelectionAndDefersRestore(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11", Value: "1234"})
	h.widget.SetSelection(mask.Selection{Start: 0, End: 2})

	ev := Paste("99")
	if !h.ctrl.Dispatch(ev) {
		t.Fatalf("expected paste to change the value")
	}
	if !ev.DefaultPrevented() {
		t.Fatalf("paste default not prevented")
	}
	h.wantText("99/34")
	h.wantEvents(1)

	// The widget put the caret at the end when its text was replaced.
	h.wantSelection(mask.Caret(5))
	if got := h.ctrl.RunDeferred(); got != 1 {
		t.Fatalf("deferred tasks: got %d, want 1", got)
	}
	h.wantSelection(mask.Caret(3))
}

func TestPaste_StaleRestoreIsSkipped(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11", Value: "1234"})
	h.widget.SetSelection(mask.Selection{Start: 0, End: 2})
	h.ctrl.Dispatch(Paste("99"))

	h.widget.SetSelection(mask.Caret(3))
	h.press("7")
	h.wantText("99/74")
	h.wantSelection(mask.Caret(4))

	h.ctrl.RunDeferred()
	h.wantSelection(mask.Caret(4))
}

func TestPaste_RestoreSurvivesHostReset(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11", Value: "1234"})
	h.widget.SetSelection(mask.Selection{Start: 0, End: 2})
	h.ctrl.Dispatch(Paste("99"))

	// A host clearing the selection after the paste is not a user move.
	h.widget.SetSelection(mask.Caret(0))
	h.ctrl.RunDeferred()
	h.wantSelection(mask.Caret(3))
}

func TestPaste_RestoreSkippedAfterCaretMove(t *testing.T) {
	for _, tc := range []struct {
		name string
		move func(f *Field)
		want mask.Selection
	}{
		{name: "home", move: func(f *Field) { f.Move(MotionHome, false) }, want: mask.Caret(0)},
		{name: "left", move: func(f *Field) { f.Move(MotionLeft, false) }, want: mask.Caret(4)},
		{name: "shift-left", move: func(f *Field) { f.Move(MotionLeft, true) }, want: mask.Selection{Start: 4, End: 5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, Config{Pattern: "11/11", Value: "1234"})
			h.widget.SetSelection(mask.Selection{Start: 0, End: 2})
			h.ctrl.Dispatch(Paste("99"))
			h.wantSelection(mask.Caret(5))

			tc.move(h.widget.Field)
			h.ctrl.RunDeferred()
			h.wantSelection(tc.want)
		})
	}
}

func TestPaste_RejectedIsNoOp(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11", Value: "12"})
	h.widget.SetSelection(mask.Caret(3))
	ev := Paste("ab")
	if h.ctrl.Dispatch(ev) {
		t.Fatalf("expected rejected paste")
	}
	if !ev.DefaultPrevented() {
		t.Fatalf("paste default must always be prevented")
	}
	h.wantText("12/__")
	h.wantEvents(0)
	if got := h.ctrl.RunDeferred(); got != 0 {
		t.Fatalf("deferred tasks: got %d, want 0", got)
	}
}

func TestDetached_WidgetOperationsAreNoOps(t *testing.T) {
	var events int
	ctrl, err := NewController(Config{
		Pattern:  "11/11",
		OnChange: func(*Event) { events++ },
	})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	ctrl.Focus()
	ctrl.Blur()

	if !ctrl.Dispatch(KeyPress(Key{Name: "1"})) {
		t.Fatalf("expected engine change without a widget")
	}
	if got, want := ctrl.Engine().Value(), "1_/__"; got != want {
		t.Fatalf("engine value: got %q, want %q", got, want)
	}
	if events != 1 {
		t.Fatalf("events: got %d, want 1", events)
	}

	f := NewField()
	ctrl.Attach(f)
	ctrl.Dispatch(Paste("2"))
	ctrl.Detach()
	ctrl.RunDeferred()
	ctrl.AfterPatternChangeCommitted()
	if ctrl.Attached() {
		t.Fatalf("expected detached controller")
	}
}

func TestAttributes(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11/11"})
	got := h.ctrl.Attributes()
	want := Attrs{Value: "", MaxLength: 5, Size: 5, Placeholder: "__/__"}
	if got != want {
		t.Fatalf("attrs: got %+v, want %+v", got, want)
	}

	h2 := newHarness(t, Config{Pattern: `+\1 111`, Value: "23", Size: 12, Placeholder: "+1 ..."})
	got = h2.ctrl.Attributes()
	want = Attrs{Value: "+1 23_", MaxLength: 6, Size: 12, Placeholder: "+1 ..."}
	if got != want {
		t.Fatalf("attrs: got %+v, want %+v", got, want)
	}
}

func TestFocusBlur_Delegates(t *testing.T) {
	h := newHarness(t, Config{Pattern: "11"})
	h.ctrl.Focus()
	if !h.widget.Focused() {
		t.Fatalf("expected widget focused")
	}
	h.ctrl.Blur()
	if h.widget.Focused() {
		t.Fatalf("expected widget blurred")
	}
}
