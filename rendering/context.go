// Package rendering holds the per-chord rendering snapshot and the read-only
// capabilities the articulation parsers consume from the surrounding pass.
package rendering

import (
	"time"

	"github.com/jsphweid/articulex/model"
)

// Interval is one hit of a spanner interval query. Start and Stop are the
// spanner's own ticks, not the query window.
type Interval struct {
	Start   int
	Stop    int
	Spanner *model.Spanner
}

type SpannerIndex interface {
	Empty() bool
	FindOverlapping(start, stop int, excludeCollisions bool) []Interval
}

// Score is the read-only view of the score for one rendering pass.
type Score interface {
	Spanners() SpannerIndex
	TimestampFromTicks(tick int) time.Duration
}

type Profile interface {
	Pattern(t model.ArticulationType) model.ArticulationPattern
}

// Filter decides which spanners are audible in the current pass.
type Filter interface {
	IsItemPlayable(sp *model.Spanner, ctx Context) bool
	IsMultiStaffSpanner(sp *model.Spanner) bool
	SpannerActualDurationTicks(sp *model.Spanner, ticks int) int
}

// Context is the immutable timing snapshot of one chord render. Score,
// Profile and Filter are borrowed from the rendering pass; copying a Context
// never copies what they point to.
type Context struct {
	NominalTimestamp         time.Duration
	NominalDuration          time.Duration
	NominalPositionStartTick int
	NominalPositionEndTick   int
	NominalDurationTicks     int
	PositionTickOffset       int

	Score   Score
	Profile Profile
	Filter  Filter
}

// New builds the context of a chord occupying [startTick, startTick+durationTicks)
// in score ticks. Timestamps are taken at the playback position, i.e. shifted
// by positionTickOffset.
func New(score Score, profile Profile, filter Filter, startTick, durationTicks, positionTickOffset int) Context {
	ctx := Context{
		PositionTickOffset: positionTickOffset,
		Score:              score,
		Profile:            profile,
		Filter:             filter,
	}
	return ctx.WithTicks(startTick, durationTicks)
}

func (c Context) IsValid() bool {
	if c.Score == nil || c.Profile == nil {
		return false
	}
	return c.NominalPositionStartTick >= 0 && c.NominalPositionEndTick >= c.NominalPositionStartTick
}

// WithTicks returns a copy of c moved to a new tick window, with timestamp
// and duration recomputed through the score's tempo.
func (c Context) WithTicks(startTick, durationTicks int) Context {
	timestamp, duration := c.NominalTimestamp, c.NominalDuration
	if c.Score != nil {
		timestamp = c.Score.TimestampFromTicks(startTick + c.PositionTickOffset)
		duration = c.Score.TimestampFromTicks(startTick+durationTicks+c.PositionTickOffset) - timestamp
	}
	return c.WithTiming(timestamp, duration, startTick, durationTicks)
}

// WithTiming returns a copy of c with explicit timing fields.
func (c Context) WithTiming(timestamp, duration time.Duration, startTick, durationTicks int) Context {
	c.NominalTimestamp = timestamp
	c.NominalDuration = duration
	c.NominalPositionStartTick = startTick
	c.NominalDurationTicks = durationTicks
	c.NominalPositionEndTick = startTick + durationTicks
	return c
}

// Pattern looks up the profile pattern of t, nil when there is no profile.
func (c Context) Pattern(t model.ArticulationType) model.ArticulationPattern {
	if c.Profile == nil {
		return nil
	}
	return c.Profile.Pattern(t)
}
