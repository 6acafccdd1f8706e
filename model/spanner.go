package model

type SpannerKind uint8

const (
	UnknownSpanner SpannerKind = iota
	SlurSpanner
	PedalSpanner
	TrillSpanner
	VibratoSpanner
	LetRingSpanner
	PalmMuteSpanner
	GlissandoSpanner
	HairpinSpanner
	OttavaSpanner
)

var spannerKindNames = []string{"unknown", "slur", "pedal", "trill", "vibrato", "let_ring", "palm_mute", "glissando", "hairpin", "ottava"}

func (k SpannerKind) String() string                { return enumName(spannerKindNames, uint8(k), "spanner") }
func (k SpannerKind) MarshalText() ([]byte, error)  { return []byte(k.String()), nil }
func (k *SpannerKind) UnmarshalText(b []byte) error { return parseEnum(spannerKindNames, b, "spanner kind", k) }

type TrillType uint8

const (
	TrillLine TrillType = iota
	TrillUpprall
	TrillDownprall
	TrillPrallprall
)

var trillTypeNames = []string{"trill", "upprall", "downprall", "prallprall"}

func (t TrillType) String() string                { return enumName(trillTypeNames, uint8(t), "trill") }
func (t TrillType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *TrillType) UnmarshalText(b []byte) error { return parseEnum(trillTypeNames, b, "trill type", t) }

type VibratoType uint8

const (
	VibratoGuitar VibratoType = iota
	VibratoGuitarWide
	VibratoSawtoothLine
	VibratoSawtoothWide
)

var vibratoTypeNames = []string{"guitar", "guitar_wide", "sawtooth", "sawtooth_wide"}

func (t VibratoType) String() string                { return enumName(vibratoTypeNames, uint8(t), "vibrato") }
func (t VibratoType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *VibratoType) UnmarshalText(b []byte) error { return parseEnum(vibratoTypeNames, b, "vibrato type", t) }

type GlissandoStyle uint8

const (
	GlissandoChromatic GlissandoStyle = iota
	GlissandoWhiteKeys
	GlissandoBlackKeys
	GlissandoDiatonic
	GlissandoPortamento
)

var glissandoStyleNames = []string{"chromatic", "white_keys", "black_keys", "diatonic", "portamento"}

func (s GlissandoStyle) String() string { return enumName(glissandoStyleNames, uint8(s), "glissando") }
func (s GlissandoStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
func (s *GlissandoStyle) UnmarshalText(b []byte) error {
	return parseEnum(glissandoStyleNames, b, "glissando style", s)
}

type HairpinType uint8

const (
	HairpinCrescendo HairpinType = iota
	HairpinDiminuendo
)

var hairpinTypeNames = []string{"crescendo", "diminuendo"}

func (t HairpinType) String() string                { return enumName(hairpinTypeNames, uint8(t), "hairpin") }
func (t HairpinType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *HairpinType) UnmarshalText(b []byte) error { return parseEnum(hairpinTypeNames, b, "hairpin type", t) }

// Spanner is a decoration covering the tick range [Tick, Tick2).
type Spanner struct {
	ID         string
	Kind       SpannerKind
	Tick       int
	Tick2      int
	StaffIdx   int
	Part       string
	MultiStaff bool
	Play       bool

	Trill     TrillType
	Vibrato   VibratoType
	Glissando GlissandoStyle
	Hairpin   HairpinType
}

func (s *Spanner) DurationTicks() int {
	return s.Tick2 - s.Tick
}
