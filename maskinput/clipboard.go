package maskinput

// Clipboard provides text for the paste binding.
//
// Read errors are ignored; a failed read pastes nothing.
type Clipboard interface {
	ReadText() (string, error)
}
