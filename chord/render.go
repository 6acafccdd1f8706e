package chord

import (
	"context"

	"github.com/jsphweid/articulex/articulation"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
	"golang.org/x/sync/errgroup"
)

// Source is a score that can list its chords.
type Source interface {
	rendering.Score
	Chords() []*model.Chord
}

type RenderedChord struct {
	Chord         *model.Chord
	Context       rendering.Context
	Articulations *articulation.Map
}

func (r RenderedChord) Result() model.RenderedChordResult {
	return model.RenderedChordResult{
		Tick:          r.Chord.Tick,
		DurationTicks: r.Chord.DurationTicks,
		Staff:         r.Chord.StaffIdx,
		Part:          r.Chord.Part,
		Timestamp:     r.Context.NominalTimestamp,
		Duration:      r.Context.NominalDuration,
		Articulations: r.Articulations,
	}
}

// Results converts rendered chords to their wire form.
func Results(rendered []RenderedChord) []model.RenderedChordResult {
	res := make([]model.RenderedChordResult, len(rendered))
	for i, r := range rendered {
		res[i] = r.Result()
	}
	return res
}

// RenderScore renders every chord of score. Chords are independent and the
// score, profile and filter are only read, so up to workers chords render at
// once (no limit when workers <= 0). Results keep the score's chord order.
func (p *Parser) RenderScore(ctx context.Context, score Source, profile rendering.Profile, filter rendering.Filter, workers int) ([]RenderedChord, error) {
	chords := score.Chords()
	res := make([]RenderedChord, len(chords))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, c := range chords {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rctx := rendering.New(score, profile, filter, c.Tick, c.DurationTicks, 0)
			res[i] = RenderedChord{
				Chord:         c,
				Context:       rctx,
				Articulations: p.Build(c, rctx),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
