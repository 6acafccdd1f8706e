package chord

import (
	"github.com/jsphweid/articulex/articulation"
	"github.com/jsphweid/articulex/logger"
	"github.com/jsphweid/articulex/metaparser"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
	"go.uber.org/zap"
)

// Parser builds the articulation map of one chord at a time. It keeps no
// state between calls and is safe for concurrent use.
type Parser struct {
	log *zap.SugaredLogger
}

// NewParser returns a parser reporting invalid input to log. A nil log
// discards diagnostics.
func NewParser(log *zap.SugaredLogger) *Parser {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Parser{log: log}
}

// BuildChordArticulationMap appends everything that affects the performance of
// chord to result, sets the visible slice of each multi note directive and
// finalizes the map. Invalid input is logged and leaves result unchanged.
func (p *Parser) BuildChordArticulationMap(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if result == nil {
		p.log.Errorw("Unable to render playback events without a result map")
		return
	}
	if chord == nil || !ctx.IsValid() {
		p.log.Errorw("Unable to render playback events of invalid chord",
			"has_chord", chord != nil,
			"has_score", ctx.Score != nil,
			"has_profile", ctx.Profile != nil,
			logger.FieldStartTick, ctx.NominalPositionStartTick,
			logger.FieldEndTick, ctx.NominalPositionEndTick)
		return
	}

	metaparser.ParseAll(chord, ctx, result)

	for _, t := range result.Types() {
		if t.IsSingleNoteArticulation() {
			continue
		}
		entries := result.Entries(t)
		if len(entries) == 1 {
			from, to := occupiedRange(entries[0].Meta, ctx)
			result.UpdateOccupiedRange(t, from, to)
			continue
		}
		// same-kind spanners each run on their own timeline
		result.RangeType(t, func(d *articulation.AppliedData) {
			d.SetOccupiedRange(occupiedRange(d.Meta, ctx))
		})
	}

	result.PreCalculateAverageData()
}

// occupiedRange is the slice of meta's own timeline that the chord's window
// reveals.
func occupiedRange(meta model.ArticulationMeta, ctx rendering.Context) (from, to float64) {
	chordEnd := ctx.NominalTimestamp + ctx.NominalDuration
	from = articulation.OccupiedPercentage(ctx.NominalTimestamp-meta.Timestamp, meta.OverallDuration)
	to = articulation.OccupiedPercentage(chordEnd-meta.Timestamp, meta.OverallDuration)
	return from, to
}

// Build is BuildChordArticulationMap on a fresh map.
func (p *Parser) Build(chord *model.Chord, ctx rendering.Context) *articulation.Map {
	result := articulation.New()
	p.BuildChordArticulationMap(chord, ctx, result)
	return result
}
