package metaparser

import (
	"github.com/jsphweid/articulex/articulation"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
)

// Tremolo contributes the chord's tremolo. A playable single chord tremolo
// wins; a two chord tremolo is only considered without one.
func Tremolo(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if chord == nil {
		return
	}
	ornaments := ornamentsOf(chord)

	var tremoloType model.TremoloType
	switch {
	case ornaments.tremolo != nil && ornaments.tremolo.Play:
		tremoloType = ornaments.tremolo.Type
	case ornaments.twoChord != nil && ornaments.twoChord.Play:
		tremoloType = ornaments.twoChord.Type
	default:
		return
	}

	appendPattern(TremoloArticulationType(tremoloType), ctx, result)
}

func TremoloArticulationType(t model.TremoloType) model.ArticulationType {
	switch t {
	case model.TremoloR8, model.TremoloC8:
		return model.Tremolo8th
	case model.TremoloR16, model.TremoloC16:
		return model.Tremolo16th
	case model.TremoloR32, model.TremoloC32:
		return model.Tremolo32nd
	case model.TremoloR64, model.TremoloC64:
		return model.Tremolo64th
	case model.TremoloBuzzRoll:
		return model.TremoloBuzz
	case model.InvalidTremolo:
	}
	return model.Undefined
}

// Arpeggio needs at least one note to roll.
func Arpeggio(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if chord == nil {
		return
	}
	arpeggio := ornamentsOf(chord).arpeggio
	if arpeggio == nil || len(chord.Notes) == 0 {
		return
	}

	var t model.ArticulationType
	switch arpeggio.Direction {
	case model.ArpeggioNormal:
		t = model.Arpeggio
	case model.ArpeggioDirUp:
		t = model.ArpeggioUp
	case model.ArpeggioDirDown:
		t = model.ArpeggioDown
	case model.ArpeggioDirUpStraight:
		t = model.ArpeggioStraightUp
	case model.ArpeggioDirDownStraight:
		t = model.ArpeggioStraightDown
	case model.ArpeggioBracket:
		// a bracket marks notes that must not be rolled
		return
	}
	appendPattern(t, ctx, result)
}

func ChordLine(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if chord == nil {
		return
	}
	line := ornamentsOf(chord).chordLine
	if line == nil || !line.Play {
		return
	}
	appendPattern(ChordLineArticulationType(line), ctx, result)
}

func ChordLineArticulationType(line *model.ChordLine) model.ArticulationType {
	switch line.Type {
	case model.ChordLineFall:
		if line.Straight {
			return model.SlideOutDown
		}
		return model.Fall
	case model.ChordLineDoit:
		if line.Straight {
			return model.SlideOutUp
		}
		return model.Doit
	case model.ChordLinePlop:
		if line.Straight {
			return model.SlideInAbove
		}
		return model.Plop
	case model.ChordLineScoop:
		if line.Straight {
			return model.SlideInBelow
		}
		return model.Scoop
	case model.ChordLineNone:
	}
	return model.Undefined
}

func Tapping(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if chord == nil {
		return
	}
	tapping := ornamentsOf(chord).tapping
	if tapping == nil || !tapping.Play {
		return
	}

	var t model.ArticulationType
	switch tapping.Hand {
	case model.LeftHand:
		t = model.LeftHandTapping
	case model.RightHand:
		t = model.RightHandTapping
	case model.InvalidHand:
		return
	}
	appendPattern(t, ctx, result)
}
