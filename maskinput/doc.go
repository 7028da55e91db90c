// Package maskinput keeps a text field in sync with a mask engine.
//
// A Controller intercepts the field's events (typed characters, backspace,
// paste, undo/redo shortcuts, raw value changes), runs the matching engine
// operation, and writes the engine's value and selection back into the field
// before notifying the host. Field is an in-memory single-line widget that
// performs the default actions the controller does not prevent. Model binds
// both to Bubble Tea.
package maskinput
