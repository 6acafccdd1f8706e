package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

type ArticulationType uint8

const (
	Undefined ArticulationType = iota
	Standard

	// single note
	Staccato
	Staccatissimo
	Tenuto
	Portato
	Accent
	SoftAccent
	Marcato
	LaissezVibrer
	Harmonic
	Pizzicato
	SnapPizzicato
	Mute
	Open
	Distortion
	Overdrive
	JazzTone
	UpBow
	DownBow
	Fermata
	FermataShort
	FermataLong
	Breath
	Mordent
	Turn
	Tremolo8th
	Tremolo16th
	Tremolo32nd
	Tremolo64th
	TremoloBuzz
	Arpeggio
	ArpeggioUp
	ArpeggioDown
	ArpeggioStraightUp
	ArpeggioStraightDown
	Acciaccatura
	PreAppoggiatura
	PostAppoggiatura
	Fall
	Doit
	Plop
	Scoop
	SlideOutDown
	SlideOutUp
	SlideInAbove
	SlideInBelow
	LeftHandTapping
	RightHandTapping

	// multi note
	Legato
	Pedal
	Trill
	TrillBaroque
	UpperMordent
	LowerMordent
	Vibrato
	VibratoWide
	VibratoSawtooth
	LetRing
	PalmMute
	ContinuousGlissando
	DiscreteGlissando
	Crescendo
	Diminuendo

	articulationTypeCount
)

var articulationTypeNames = [articulationTypeCount]string{
	Undefined:            "undefined",
	Standard:             "standard",
	Staccato:             "staccato",
	Staccatissimo:        "staccatissimo",
	Tenuto:               "tenuto",
	Portato:              "portato",
	Accent:               "accent",
	SoftAccent:           "soft_accent",
	Marcato:              "marcato",
	LaissezVibrer:        "laissez_vibrer",
	Harmonic:             "harmonic",
	Pizzicato:            "pizzicato",
	SnapPizzicato:        "snap_pizzicato",
	Mute:                 "mute",
	Open:                 "open",
	Distortion:           "distortion",
	Overdrive:            "overdrive",
	JazzTone:             "jazz_tone",
	UpBow:                "up_bow",
	DownBow:              "down_bow",
	Fermata:              "fermata",
	FermataShort:         "fermata_short",
	FermataLong:          "fermata_long",
	Breath:               "breath",
	Mordent:              "mordent",
	Turn:                 "turn",
	Tremolo8th:           "tremolo_8th",
	Tremolo16th:          "tremolo_16th",
	Tremolo32nd:          "tremolo_32nd",
	Tremolo64th:          "tremolo_64th",
	TremoloBuzz:          "tremolo_buzz",
	Arpeggio:             "arpeggio",
	ArpeggioUp:           "arpeggio_up",
	ArpeggioDown:         "arpeggio_down",
	ArpeggioStraightUp:   "arpeggio_straight_up",
	ArpeggioStraightDown: "arpeggio_straight_down",
	Acciaccatura:         "acciaccatura",
	PreAppoggiatura:      "pre_appoggiatura",
	PostAppoggiatura:     "post_appoggiatura",
	Fall:                 "fall",
	Doit:                 "doit",
	Plop:                 "plop",
	Scoop:                "scoop",
	SlideOutDown:         "slide_out_down",
	SlideOutUp:           "slide_out_up",
	SlideInAbove:         "slide_in_above",
	SlideInBelow:         "slide_in_below",
	LeftHandTapping:      "left_hand_tapping",
	RightHandTapping:     "right_hand_tapping",
	Legato:               "legato",
	Pedal:                "pedal",
	Trill:                "trill",
	TrillBaroque:         "trill_baroque",
	UpperMordent:         "upper_mordent",
	LowerMordent:         "lower_mordent",
	Vibrato:              "vibrato",
	VibratoWide:          "vibrato_wide",
	VibratoSawtooth:      "vibrato_sawtooth",
	LetRing:              "let_ring",
	PalmMute:             "palm_mute",
	ContinuousGlissando:  "continuous_glissando",
	DiscreteGlissando:    "discrete_glissando",
	Crescendo:            "crescendo",
	Diminuendo:           "diminuendo",
}

func (t ArticulationType) String() string {
	if t >= articulationTypeCount {
		return fmt.Sprintf("articulation(%d)", uint8(t))
	}
	return articulationTypeNames[t]
}

// IsSingleNoteArticulation reports whether a directive of this type always
// lasts exactly as long as the note it is attached to. Such directives never
// carry an occupied range.
func (t ArticulationType) IsSingleNoteArticulation() bool {
	return t < Legato
}

func (t ArticulationType) MarshalText() ([]byte, error) {
	if t >= articulationTypeCount {
		return nil, errors.Newf("unknown articulation type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *ArticulationType) UnmarshalText(text []byte) error {
	parsed, ok := ParseArticulationType(string(text))
	if !ok {
		return errors.Newf("unknown articulation type %q", string(text))
	}
	*t = parsed
	return nil
}

func ParseArticulationType(name string) (ArticulationType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range articulationTypeNames {
		if n == name {
			return ArticulationType(i), true
		}
	}
	return Undefined, false
}

// AllArticulationTypes lists every defined type except Undefined.
func AllArticulationTypes() []ArticulationType {
	res := make([]ArticulationType, 0, articulationTypeCount-1)
	for t := Standard; t < articulationTypeCount; t++ {
		res = append(res, t)
	}
	return res
}

// PatternPoint is one control point of an articulation pattern. Position is
// the fraction of the directive's own duration at which the point applies.
type PatternPoint struct {
	Position       float64 `json:"position" yaml:"position"`
	Amplitude      float64 `json:"amplitude" yaml:"amplitude"`
	PitchOffset    float64 `json:"pitch_offset" yaml:"pitch_offset"`
	DurationFactor float64 `json:"duration_factor" yaml:"duration_factor"`
}

type ArticulationPattern []PatternPoint

type ArticulationMeta struct {
	Type            ArticulationType    `json:"type"`
	Pattern         ArticulationPattern `json:"pattern"`
	Timestamp       time.Duration       `json:"timestamp"`
	OverallDuration time.Duration       `json:"overall_duration"`
}

func NewArticulationMeta(t ArticulationType, pattern ArticulationPattern, timestamp, duration time.Duration) ArticulationMeta {
	return ArticulationMeta{
		Type:            t,
		Pattern:         pattern,
		Timestamp:       timestamp,
		OverallDuration: duration,
	}
}
