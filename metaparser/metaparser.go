// Package metaparser holds one parser per ornament family. Every parser reads
// a chord and a rendering context and appends what it finds to an
// articulation map; a parser that has nothing to contribute leaves the map
// alone.
package metaparser

import (
	"github.com/jsphweid/articulex/articulation"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
)

// ParseAll runs every parser over chord in a fixed order. The order only
// decides enumeration order in the result.
func ParseAll(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if chord == nil {
		return
	}
	Spanners(chord, ctx, result)
	Annotations(chord, ctx, result)
	Tremolo(chord, ctx, result)
	Arpeggio(chord, ctx, result)
	GraceNotes(chord, ctx, result)
	ChordLine(chord, ctx, result)
	Symbols(chord, ctx, result)
	Tapping(chord, ctx, result)
}

// appendPattern contributes t over the context's own window when the
// profile has a pattern for it.
func appendPattern(t model.ArticulationType, ctx rendering.Context, result *articulation.Map) bool {
	if t == model.Undefined {
		return false
	}
	pattern := ctx.Pattern(t)
	if len(pattern) == 0 {
		return false
	}
	return result.Append(model.NewArticulationMeta(t, pattern, ctx.NominalTimestamp, ctx.NominalDuration))
}

// ornamentSet is the first ornament of each kind attached to a chord.
type ornamentSet struct {
	tremolo   *model.Tremolo
	twoChord  *model.TwoChordTremolo
	arpeggio  *model.ArpeggioOrnament
	chordLine *model.ChordLine
	tapping   *model.Tapping
}

func (s *ornamentSet) VisitTremolo(t *model.Tremolo) {
	if s.tremolo == nil {
		s.tremolo = t
	}
}

func (s *ornamentSet) VisitTwoChordTremolo(t *model.TwoChordTremolo) {
	if s.twoChord == nil {
		s.twoChord = t
	}
}

func (s *ornamentSet) VisitArpeggio(a *model.ArpeggioOrnament) {
	if s.arpeggio == nil {
		s.arpeggio = a
	}
}

func (s *ornamentSet) VisitChordLine(l *model.ChordLine) {
	if s.chordLine == nil {
		s.chordLine = l
	}
}

func (s *ornamentSet) VisitTapping(t *model.Tapping) {
	if s.tapping == nil {
		s.tapping = t
	}
}

func ornamentsOf(chord *model.Chord) ornamentSet {
	var s ornamentSet
	for _, o := range chord.Ornaments {
		if o != nil {
			o.Accept(&s)
		}
	}
	return s
}
