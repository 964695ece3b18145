package feedback

// State is the verdict for a single letter position.
type State uint8

const (
	// Undefined only appears while a computation is in flight.
	Undefined State = iota
	// Absent means no unmatched occurrence of the letter remains in the target.
	Absent
	// Present means the letter occurs in the target but not at this position.
	Present
	// Correct means the letter sits at exactly this position in the target.
	Correct
)

// Marks packs five position verdicts into one value, two bits per position.
// The numeric order of the packed value is total and consistent, which lets
// Marks key a tally map and sort without any further machinery.
type Marks uint32

func (m *Marks) set(i int, s State) {
	*m &^= Marks(3) << (2 * i)
	*m |= Marks(s) << (2 * i)
}

// At returns the verdict for position i.
func (m Marks) At(i int) State {
	return State(m >> (2 * i) & 3)
}

// Complete reports whether every position holds a verdict.
func (m Marks) Complete() bool {
	for i := 0; i < Length; i++ {
		if m.At(i) == Undefined {
			return false
		}
	}
	return true
}

// String renders the marks in the usual solver notation:
// 'G' correct, 'Y' present, '_' absent, ' ' undefined.
func (m Marks) String() string {
	b := make([]byte, Length)
	for i := 0; i < Length; i++ {
		switch m.At(i) {
		case Correct:
			b[i] = 'G'
		case Present:
			b[i] = 'Y'
		case Absent:
			b[i] = '_'
		default:
			b[i] = ' '
		}
	}
	return string(b)
}
