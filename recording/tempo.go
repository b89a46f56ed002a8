package recording

import (
	"time"

	"github.com/vsariola/motif"
	"gitlab.com/gomidi/midi/v2/smf"
)

// resolution is the motif timeline expressed as SMF metric ticks.
const resolution = smf.MetricTicks(motif.TicksPerQuarterNote)

// FixedTempo converts between wall-clock time and ticks at a constant tempo.
type FixedTempo struct {
	BPM float64
}

func (f FixedTempo) Ticks(elapsed time.Duration) motif.Ticks {
	if elapsed <= 0 {
		return 0
	}
	return motif.Ticks(resolution.Ticks(f.BPM, elapsed))
}

// Duration converts ticks back to wall-clock time.
func (f FixedTempo) Duration(t motif.Ticks) time.Duration {
	if t <= 0 {
		return 0
	}
	return resolution.Duration(f.BPM, uint32(t))
}
