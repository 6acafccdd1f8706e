package model

// Ornament is the closed set of chord ornaments. Only this package can add a
// kind, and each kind dispatches to its own OrnamentVisitor method, so a new
// kind does not compile until every visitor handles it.
type Ornament interface {
	Accept(v OrnamentVisitor)
	ornament()
}

type OrnamentVisitor interface {
	VisitTremolo(t *Tremolo)
	VisitTwoChordTremolo(t *TwoChordTremolo)
	VisitArpeggio(a *ArpeggioOrnament)
	VisitChordLine(l *ChordLine)
	VisitTapping(t *Tapping)
}

type TremoloType uint8

const (
	InvalidTremolo TremoloType = iota
	TremoloR8
	TremoloR16
	TremoloR32
	TremoloR64
	TremoloBuzzRoll
	TremoloC8
	TremoloC16
	TremoloC32
	TremoloC64
)

var tremoloTypeNames = []string{"invalid", "r8", "r16", "r32", "r64", "buzz_roll", "c8", "c16", "c32", "c64"}

func (t TremoloType) String() string                { return enumName(tremoloTypeNames, uint8(t), "tremolo") }
func (t TremoloType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *TremoloType) UnmarshalText(b []byte) error { return parseEnum(tremoloTypeNames, b, "tremolo type", t) }

type Tremolo struct {
	Type TremoloType
	Play bool
}

func (t *Tremolo) Accept(v OrnamentVisitor) { v.VisitTremolo(t) }
func (*Tremolo) ornament()                  {}

// TwoChordTremolo alternates between this chord and its partner.
type TwoChordTremolo struct {
	Type TremoloType
	Play bool
}

func (t *TwoChordTremolo) Accept(v OrnamentVisitor) { v.VisitTwoChordTremolo(t) }
func (*TwoChordTremolo) ornament()                  {}

type ArpeggioDirection uint8

const (
	ArpeggioNormal ArpeggioDirection = iota
	ArpeggioDirUp
	ArpeggioDirDown
	ArpeggioBracket
	ArpeggioDirUpStraight
	ArpeggioDirDownStraight
)

var arpeggioDirectionNames = []string{"normal", "up", "down", "bracket", "up_straight", "down_straight"}

func (d ArpeggioDirection) String() string { return enumName(arpeggioDirectionNames, uint8(d), "arpeggio") }
func (d ArpeggioDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
func (d *ArpeggioDirection) UnmarshalText(b []byte) error {
	return parseEnum(arpeggioDirectionNames, b, "arpeggio direction", d)
}

type ArpeggioOrnament struct {
	Direction ArpeggioDirection
}

func (a *ArpeggioOrnament) Accept(v OrnamentVisitor) { v.VisitArpeggio(a) }
func (*ArpeggioOrnament) ornament()                  {}

type ChordLineType uint8

const (
	ChordLineNone ChordLineType = iota
	ChordLineFall
	ChordLineDoit
	ChordLinePlop
	ChordLineScoop
)

var chordLineTypeNames = []string{"none", "fall", "doit", "plop", "scoop"}

func (t ChordLineType) String() string                { return enumName(chordLineTypeNames, uint8(t), "chordline") }
func (t ChordLineType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *ChordLineType) UnmarshalText(b []byte) error { return parseEnum(chordLineTypeNames, b, "chord line type", t) }

type ChordLine struct {
	Type     ChordLineType
	Straight bool
	Play     bool
}

func (l *ChordLine) Accept(v OrnamentVisitor) { v.VisitChordLine(l) }
func (*ChordLine) ornament()                  {}

type TappingHand uint8

const (
	InvalidHand TappingHand = iota
	LeftHand
	RightHand
)

var tappingHandNames = []string{"invalid", "left", "right"}

func (h TappingHand) String() string                { return enumName(tappingHandNames, uint8(h), "hand") }
func (h TappingHand) MarshalText() ([]byte, error)  { return []byte(h.String()), nil }
func (h *TappingHand) UnmarshalText(b []byte) error { return parseEnum(tappingHandNames, b, "tapping hand", h) }

type Tapping struct {
	Hand TappingHand
	Play bool
}

func (t *Tapping) Accept(v OrnamentVisitor) { v.VisitTapping(t) }
func (*Tapping) ornament()                  {}
