// Package score is the in-memory, read-only score a rendering pass works on:
// chords, a spanner interval index and a tempo map.
package score

import (
	"time"

	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
	"github.com/jsphweid/articulex/spanner"
)

type Score struct {
	Title    string
	Division int

	chords   []*model.Chord
	spanners []*model.Spanner
	index    *spanner.Index
	tempo    TempoMap
}

func New(title string, division int, chords []*model.Chord, spanners []*model.Spanner, tempo TempoMap) *Score {
	if tempo == nil {
		tempo = ConstantTempo{Division: division}
	}
	return &Score{
		Title:    title,
		Division: division,
		chords:   chords,
		spanners: spanners,
		index:    spanner.NewIndex(spanners),
		tempo:    tempo,
	}
}

func (s *Score) Spanners() rendering.SpannerIndex {
	return s.index
}

func (s *Score) SpannerIndex() *spanner.Index {
	return s.index
}

func (s *Score) TimestampFromTicks(tick int) time.Duration {
	return s.tempo.TimestampFromTicks(tick)
}

func (s *Score) Chords() []*model.Chord {
	return s.chords
}

// WithTempo returns a copy of s that reads time from tempo.
func (s *Score) WithTempo(tempo TempoMap) *Score {
	c := *s
	if tempo != nil {
		c.tempo = tempo
	}
	return &c
}
