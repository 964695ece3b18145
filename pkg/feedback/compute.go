package feedback

// Compute derives the marks the guess would receive against the target.
//
// Three passes over the five positions:
//
//  1. Exact matches are marked Correct; the position is consumed in both
//     words so a duplicate elsewhere cannot claim it again.
//  2. Each unconsumed guess letter scans the target left to right and
//     consumes every unconsumed occurrence of itself. Earlier guess
//     positions therefore get first claim on duplicated target letters.
//  3. Guess positions consumed in pass 2 become Present, the rest Absent.
//
// The Present+Correct count for a letter never exceeds its occurrence count
// in the target.
func Compute(guess, target Word) Marks {
	var m Marks
	var usedGuess, usedTarget uint8

	for i := 0; i < Length; i++ {
		if guess[i] == target[i] {
			m.set(i, Correct)
			usedGuess |= 1 << i
			usedTarget |= 1 << i
		}
	}

	for i := 0; i < Length; i++ {
		if usedGuess&(1<<i) != 0 {
			continue
		}
		for j := 0; j < Length; j++ {
			if guess[i] == target[j] && usedTarget&(1<<j) == 0 {
				usedGuess |= 1 << i
				usedTarget |= 1 << j
			}
		}
	}

	for i := 0; i < Length; i++ {
		switch {
		case m.At(i) == Correct:
		case usedGuess&(1<<i) != 0:
			m.set(i, Present)
		default:
			m.set(i, Absent)
		}
	}
	return m
}
