package maskinput

import (
	"fmt"
	"log/slog"

	"github.com/iw2rmb/masked/mask"
)

// Props are the inputs the owner controls.
type Props struct {
	Pattern string
	Value   string
}

// Update applies new props the way a host re-render does: reconcile the
// engine, write the display value into the widget, then restore the
// selection when the pattern changed.
func (c *Controller) Update(next Props) error {
	prev := c.props
	if err := c.Reconcile(prev, next); err != nil {
		return err
	}
	c.props = next
	c.render()
	if prev.Pattern != next.Pattern {
		c.AfterPatternChangeCommitted()
	}
	return nil
}

// Reconcile brings the engine in line with changed props.
//
// A new pattern together with a new value is ambiguous. While the engine
// still holds its empty value the owner is seeding content, so the new value
// wins. Otherwise the engine holds user input (typed or pasted) and keeps it
// under the new pattern. The check compares against the engine's current
// empty value, not the one of prev.Pattern.
//
// A pattern-only change keeps the raw value. A value-only change is applied
// through the engine's SetValue. Whenever the pattern changes and a widget is
// attached, the widget's selection seeds the re-templated engine.
func (c *Controller) Reconcile(prev, next Props) error {
	patternChanged := prev.Pattern != next.Pattern
	valueChanged := prev.Value != next.Value

	var branch string
	var err error
	switch {
	case patternChanged && valueChanged && next.Value != next.Pattern:
		value := c.engine.RawValue()
		branch = "pattern+value: keep input"
		if c.engine.Value() == c.engine.EmptyValue() {
			value = next.Value
			branch = "pattern+value: adopt value"
		}
		err = c.engine.SetPattern(next.Pattern, mask.PatternOptions{
			Value:     value,
			Selection: c.selectionForSwap(),
		})
	case patternChanged:
		branch = "pattern"
		err = c.engine.SetPattern(next.Pattern, mask.PatternOptions{
			Value:     c.engine.RawValue(),
			Selection: c.selectionForSwap(),
		})
	case valueChanged:
		branch = "value"
		c.engine.SetValue(next.Value)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("maskinput: set pattern %q: %w", next.Pattern, err)
	}

	c.log.Debug("props reconciled",
		slog.String("branch", branch),
		slog.String("pattern", next.Pattern),
	)
	return nil
}

// AfterPatternChangeCommitted pushes the engine selection into the widget
// once it shows the re-templated value. A selection at position 0 is left
// alone.
func (c *Controller) AfterPatternChangeCommitted() {
	if c.engine.Selection().Start > 0 {
		c.restoreSelection()
	}
}
