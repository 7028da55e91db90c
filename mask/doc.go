// Package mask implements the masked-value model behind a masked text field.
//
// A Mask formats user input against a fixed pattern such as "11/11" or
// "(111) 111-1111". Positions are 0-based grapheme indices into the display
// value. Selections are half-open: [Start, End).
package mask
