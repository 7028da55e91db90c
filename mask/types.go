package mask

// Selection is a half-open cursor/selection range over display positions.
// A collapsed selection (Start == End) is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at i.
func Caret(i int) Selection {
	return Selection{Start: i, End: i}
}

func (s Selection) IsCollapsed() bool {
	return s.Start == s.End
}

// Normalize orders Start <= End.
func (s Selection) Normalize() Selection {
	if s.Start <= s.End {
		return s
	}
	return Selection{Start: s.End, End: s.Start}
}

// Clamp normalizes s and clamps both ends into [0, n].
func (s Selection) Clamp(n int) Selection {
	s = s.Normalize()
	return Selection{
		Start: clampInt(s.Start, 0, n),
		End:   clampInt(s.End, 0, n),
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
