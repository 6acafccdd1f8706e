package metaparser

import (
	"github.com/jsphweid/articulex/articulation"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
)

// GraceNotes contributes the grace type of the chord's grace groups and then
// runs every parser over each grace chord in its own window.
//
// Grace chords before the principal share the first half of its window
// (appoggiaturas) or the first quarter (acciaccaturas). Grace chords after it
// share the last quarter.
func GraceNotes(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if chord == nil || len(chord.GraceNotes) == 0 {
		return
	}

	var before, after []*model.Chord
	acciaccatura := false
	for _, grace := range chord.GraceNotes {
		if grace == nil {
			continue
		}
		if grace.GraceKind.IsAfter() {
			after = append(after, grace)
			continue
		}
		if grace.GraceKind == model.GraceAcciaccatura {
			acciaccatura = true
		}
		before = append(before, grace)
	}

	ticks := ctx.NominalPositionEndTick - ctx.NominalPositionStartTick
	start := ctx.NominalPositionStartTick

	if len(before) > 0 {
		t, share := model.PreAppoggiatura, ticks/2
		if acciaccatura {
			t, share = model.Acciaccatura, ticks/4
		}
		appendPattern(t, ctx, result)
		parseGraceGroup(before, start, share, ctx, result)
	}

	if len(after) > 0 {
		share := ticks / 4
		appendPattern(model.PostAppoggiatura, ctx, result)
		parseGraceGroup(after, ctx.NominalPositionEndTick-share, share, ctx, result)
	}
}

func parseGraceGroup(group []*model.Chord, start, window int, ctx rendering.Context, result *articulation.Map) {
	n := len(group)
	for i, grace := range group {
		from := start + window*i/n
		to := start + window*(i+1)/n
		ParseAll(grace, ctx.WithTicks(from, to-from), result)
	}
}
