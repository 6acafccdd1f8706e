package score

import (
	"time"

	"github.com/jsphweid/articulex/constants"
)

// TempoMap converts score ticks to absolute performance time.
type TempoMap interface {
	TimestampFromTicks(tick int) time.Duration
}

// ConstantTempo plays the whole score at one tempo.
type ConstantTempo struct {
	BPM      float64
	Division int
}

func (c ConstantTempo) TimestampFromTicks(tick int) time.Duration {
	bpm, division := c.BPM, c.Division
	if bpm <= 0 {
		bpm = constants.DefaultBPM
	}
	if division <= 0 {
		division = constants.DefaultDivision
	}
	quarters := float64(tick) / float64(division)
	return time.Duration(quarters * 60 / bpm * float64(time.Second))
}
