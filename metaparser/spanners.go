package metaparser

import (
	"github.com/jsphweid/articulex/articulation"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
	"github.com/jsphweid/articulex/spanner"
)

// Spanners contributes every playable spanner overlapping the chord's window.
// Each spanner is rendered over its own timeline, so the entry's timestamp
// and duration describe the spanner rather than the chord, and a spanner
// already in result is not added again.
func Spanners(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if chord == nil || ctx.Score == nil {
		return
	}
	index := ctx.Score.Spanners()
	if index == nil || index.Empty() {
		return
	}

	var filter rendering.Filter = spanner.DefaultFilter{}
	if ctx.Filter != nil {
		filter = ctx.Filter
	}

	intervals := index.FindOverlapping(ctx.NominalPositionStartTick, ctx.NominalPositionEndTick, true)
	for _, interval := range intervals {
		sp := interval.Spanner
		if sp == nil || result.HasSpanner(sp) {
			continue
		}

		t := SpannerArticulationType(sp)
		if t == model.Undefined {
			continue
		}

		if filter.IsMultiStaffSpanner(sp) {
			if sp.Part != chord.Part {
				continue
			}
		} else if sp.StaffIdx != chord.StaffIdx {
			continue
		}

		if !filter.IsItemPlayable(sp, ctx) {
			continue
		}

		ticks := filter.SpannerActualDurationTicks(sp, interval.Stop-interval.Start)
		spanCtx := ctx.WithTicks(interval.Start, ticks)
		if pattern := spanCtx.Pattern(t); len(pattern) > 0 {
			result.AppendSpanner(sp, model.NewArticulationMeta(t, pattern, spanCtx.NominalTimestamp, spanCtx.NominalDuration))
		}
	}
}

// SpannerArticulationType maps a spanner to the directive it renders as, or
// Undefined for spanners without articulation playback.
func SpannerArticulationType(sp *model.Spanner) model.ArticulationType {
	switch sp.Kind {
	case model.SlurSpanner:
		return model.Legato
	case model.PedalSpanner:
		return model.Pedal
	case model.TrillSpanner:
		switch sp.Trill {
		case model.TrillLine:
			return model.Trill
		case model.TrillUpprall:
			return model.UpperMordent
		case model.TrillDownprall:
			return model.LowerMordent
		case model.TrillPrallprall:
			return model.TrillBaroque
		}
	case model.VibratoSpanner:
		switch sp.Vibrato {
		case model.VibratoGuitar:
			return model.Vibrato
		case model.VibratoGuitarWide:
			return model.VibratoWide
		case model.VibratoSawtoothLine, model.VibratoSawtoothWide:
			return model.VibratoSawtooth
		}
	case model.LetRingSpanner:
		return model.LetRing
	case model.PalmMuteSpanner:
		return model.PalmMute
	case model.GlissandoSpanner:
		if sp.Glissando == model.GlissandoPortamento {
			return model.ContinuousGlissando
		}
		return model.DiscreteGlissando
	case model.HairpinSpanner:
		if sp.Hairpin == model.HairpinDiminuendo {
			return model.Diminuendo
		}
		return model.Crescendo
	case model.OttavaSpanner, model.UnknownSpanner:
	}
	return model.Undefined
}
