package maskinput

import "github.com/iw2rmb/masked/mask"

// Widget is the text-entry element a Controller drives.
type Widget interface {
	Text() string
	SetText(text string)

	Selection() mask.Selection
	SetSelection(sel mask.Selection)

	Focus()
	Blur()
}

// SelectionRevisioner is implemented by widgets that count selection changes
// made by the user (caret movement, native edits). Controller writes do not
// count. A deferred selection restore is dropped once the count moves.
type SelectionRevisioner interface {
	SelectionRevision() uint64
}
