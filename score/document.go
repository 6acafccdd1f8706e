package score

import (
	"github.com/jsphweid/articulex/model"
)

// Document is the JSON form of a score fixture.
type Document struct {
	Title    string            `json:"title"`
	Division int               `json:"division"`
	BPM      float64           `json:"bpm"`
	Segments []SegmentDocument `json:"segments"`
	Chords   []ChordDocument   `json:"chords"`
	Spanners []SpannerDocument `json:"spanners"`
}

type SegmentDocument struct {
	Tick        int                `json:"tick"`
	Annotations []model.Annotation `json:"annotations"`
}

type ChordDocument struct {
	Tick          int             `json:"tick"`
	Duration      int             `json:"duration"`
	Staff         int             `json:"staff"`
	Part          string          `json:"part"`
	Notes         model.Notes     `json:"notes"`
	GraceKind     model.GraceKind `json:"grace_kind,omitempty"`
	Grace         []ChordDocument `json:"grace,omitempty"`
	Articulations []model.Symbol  `json:"articulations,omitempty"`

	Tremolo         *TremoloDocument   `json:"tremolo,omitempty"`
	TwoChordTremolo *TremoloDocument   `json:"two_chord_tremolo,omitempty"`
	Arpeggio        *ArpeggioDocument  `json:"arpeggio,omitempty"`
	ChordLine       *ChordLineDocument `json:"chord_line,omitempty"`
	Tapping         *TappingDocument   `json:"tapping,omitempty"`
}

// Play flags default to true when left out.

type TremoloDocument struct {
	Type model.TremoloType `json:"type"`
	Play *bool             `json:"play,omitempty"`
}

type ArpeggioDocument struct {
	Direction model.ArpeggioDirection `json:"direction"`
}

type ChordLineDocument struct {
	Type     model.ChordLineType `json:"type"`
	Straight bool                `json:"straight,omitempty"`
	Play     *bool               `json:"play,omitempty"`
}

type TappingDocument struct {
	Hand model.TappingHand `json:"hand"`
	Play *bool             `json:"play,omitempty"`
}

type SpannerDocument struct {
	ID         string               `json:"id"`
	Kind       model.SpannerKind    `json:"kind"`
	Tick       int                  `json:"tick"`
	Tick2      int                  `json:"tick2"`
	Staff      int                  `json:"staff"`
	Part       string               `json:"part"`
	MultiStaff bool                 `json:"multi_staff,omitempty"`
	Play       *bool                `json:"play,omitempty"`
	Trill      model.TrillType      `json:"trill,omitempty"`
	Vibrato    model.VibratoType    `json:"vibrato,omitempty"`
	Glissando  model.GlissandoStyle `json:"glissando,omitempty"`
	Hairpin    model.HairpinType    `json:"hairpin,omitempty"`
}

func playFlag(b *bool) bool {
	return b == nil || *b
}

func (d ChordDocument) toChord(segment *model.Segment, staff int, part string) *model.Chord {
	c := &model.Chord{
		Tick:          d.Tick,
		DurationTicks: d.Duration,
		StaffIdx:      staff,
		Part:          part,
		Segment:       segment,
		Notes:         d.Notes,
		GraceKind:     d.GraceKind,
	}
	for _, s := range d.Articulations {
		c.Articulations = append(c.Articulations, model.ArticulationSymbol{Symbol: s})
	}
	if d.Tremolo != nil {
		c.Ornaments = append(c.Ornaments, &model.Tremolo{Type: d.Tremolo.Type, Play: playFlag(d.Tremolo.Play)})
	}
	if d.TwoChordTremolo != nil {
		c.Ornaments = append(c.Ornaments, &model.TwoChordTremolo{Type: d.TwoChordTremolo.Type, Play: playFlag(d.TwoChordTremolo.Play)})
	}
	if d.Arpeggio != nil {
		c.Ornaments = append(c.Ornaments, &model.ArpeggioOrnament{Direction: d.Arpeggio.Direction})
	}
	if d.ChordLine != nil {
		c.Ornaments = append(c.Ornaments, &model.ChordLine{Type: d.ChordLine.Type, Straight: d.ChordLine.Straight, Play: playFlag(d.ChordLine.Play)})
	}
	if d.Tapping != nil {
		c.Ornaments = append(c.Ornaments, &model.Tapping{Hand: d.Tapping.Hand, Play: playFlag(d.Tapping.Play)})
	}

	// grace chords live on the principal's staff and have no segment of their own
	for _, g := range d.Grace {
		grace := g.toChord(nil, staff, part)
		if grace.GraceKind == model.NotGrace {
			grace.GraceKind = model.GraceAppoggiatura
		}
		c.GraceNotes = append(c.GraceNotes, grace)
	}
	return c
}

func (d SpannerDocument) toSpanner() *model.Spanner {
	return &model.Spanner{
		ID:         d.ID,
		Kind:       d.Kind,
		Tick:       d.Tick,
		Tick2:      d.Tick2,
		StaffIdx:   d.Staff,
		Part:       d.Part,
		MultiStaff: d.MultiStaff,
		Play:       playFlag(d.Play),
		Trill:      d.Trill,
		Vibrato:    d.Vibrato,
		Glissando:  d.Glissando,
		Hairpin:    d.Hairpin,
	}
}
