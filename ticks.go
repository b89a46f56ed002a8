package motif

// Ticks is a position or a length on the musical timeline, measured in
// TicksPerQuarterNote units per quarter note. Converting ticks to wall-clock
// time needs a tempo and is left to the consumer of a Sequence.
type Ticks int64

// TicksPerQuarterNote is the resolution of the musical timeline.
const TicksPerQuarterNote = 960

const (
	Whole        Ticks = 4 * TicksPerQuarterNote
	Half         Ticks = 2 * TicksPerQuarterNote
	Quarter      Ticks = TicksPerQuarterNote
	Eighth       Ticks = TicksPerQuarterNote / 2
	Sixteenth    Ticks = TicksPerQuarterNote / 4
	ThirtySecond Ticks = TicksPerQuarterNote / 8
)

// Dotted returns the length extended by half of itself, e.g. a dotted quarter.
func Dotted(l Ticks) Ticks { return l + l/2 }

// Triplet returns the length of one note of a triplet spanning two notes of
// length l.
func Triplet(l Ticks) Ticks { return l * 2 / 3 }

// Fraction returns the length of num/den whole notes, e.g. Fraction(3, 8) is a
// dotted quarter. den must divide into the resolution evenly to be exact.
func Fraction(num, den int64) (Ticks, error) {
	if den <= 0 {
		return 0, argError("den", "must be positive, got %d", den)
	}
	if num < 0 {
		return 0, argError("num", "cannot be negative, got %d", num)
	}
	return Ticks(num * int64(Whole) / den), nil
}
