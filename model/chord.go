package model

type Note struct {
	Pitch    uint8 `json:"pitch"`
	Velocity uint8 `json:"velocity"`
}

type Notes = []Note

// Chord is a read-only view of simultaneously starting notes. The renderer
// never mutates it.
type Chord struct {
	Tick          int
	DurationTicks int
	StaffIdx      int
	Part          string
	Segment       *Segment
	Notes         Notes

	// grace chords hang off their principal chord
	GraceNotes []*Chord
	GraceKind  GraceKind

	Articulations []ArticulationSymbol
	Ornaments     []Ornament
}

func (c *Chord) EndTick() int {
	return c.Tick + c.DurationTicks
}

func (c *Chord) IsGrace() bool {
	return c.GraceKind != NotGrace
}

type Segment struct {
	Tick        int
	Annotations []Annotation
}

type GraceKind uint8

const (
	NotGrace GraceKind = iota
	GraceAcciaccatura
	GraceAppoggiatura
	Grace4
	Grace16
	Grace32
	Grace8After
	Grace16After
	Grace32After
)

var graceKindNames = []string{"none", "acciaccatura", "appoggiatura", "grace4", "grace16", "grace32", "grace8_after", "grace16_after", "grace32_after"}

func (k GraceKind) String() string                { return enumName(graceKindNames, uint8(k), "grace") }
func (k GraceKind) MarshalText() ([]byte, error)  { return []byte(k.String()), nil }
func (k *GraceKind) UnmarshalText(b []byte) error { return parseEnum(graceKindNames, b, "grace kind", k) }

func (k GraceKind) IsAfter() bool {
	return k == Grace8After || k == Grace16After || k == Grace32After
}

type Symbol uint8

const (
	UnknownSymbol Symbol = iota
	SymStaccato
	SymStaccatissimo
	SymTenuto
	SymTenutoStaccato
	SymAccent
	SymAccentStaccato
	SymSoftAccent
	SymMarcato
	SymMarcatoStaccato
	SymMarcatoTenuto
	SymLaissezVibrer
	SymHarmonic
	SymSnapPizzicato
	SymUpBow
	SymDownBow
	SymMordent
	SymTurn
)

var symbolNames = []string{
	"unknown", "staccato", "staccatissimo", "tenuto", "tenuto_staccato", "accent", "accent_staccato",
	"soft_accent", "marcato", "marcato_staccato", "marcato_tenuto", "laissez_vibrer", "harmonic",
	"snap_pizzicato", "up_bow", "down_bow", "mordent", "turn",
}

func (s Symbol) String() string                { return enumName(symbolNames, uint8(s), "symbol") }
func (s Symbol) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (s *Symbol) UnmarshalText(b []byte) error { return parseEnum(symbolNames, b, "symbol", s) }

type ArticulationSymbol struct {
	Symbol Symbol `json:"symbol"`
}

type AnnotationKind uint8

const (
	UnknownAnnotation AnnotationKind = iota
	AnnotationPlayTechnique
	AnnotationFermata
	AnnotationBreath
	AnnotationStaffText
)

var annotationKindNames = []string{"unknown", "play_technique", "fermata", "breath", "staff_text"}

func (k AnnotationKind) String() string                { return enumName(annotationKindNames, uint8(k), "annotation") }
func (k AnnotationKind) MarshalText() ([]byte, error)  { return []byte(k.String()), nil }
func (k *AnnotationKind) UnmarshalText(b []byte) error { return parseEnum(annotationKindNames, b, "annotation kind", k) }

type PlayTechnique uint8

const (
	TechniqueNone PlayTechnique = iota
	TechniqueNatural
	TechniquePizzicato
	TechniqueOpen
	TechniqueMute
	TechniqueTremolo
	TechniqueDistortion
	TechniqueOverdrive
	TechniqueHarmonics
	TechniqueJazzTone
)

var playTechniqueNames = []string{"none", "natural", "pizzicato", "open", "mute", "tremolo", "distortion", "overdrive", "harmonics", "jazz_tone"}

func (p PlayTechnique) String() string                { return enumName(playTechniqueNames, uint8(p), "technique") }
func (p PlayTechnique) MarshalText() ([]byte, error)  { return []byte(p.String()), nil }
func (p *PlayTechnique) UnmarshalText(b []byte) error { return parseEnum(playTechniqueNames, b, "play technique", p) }

type FermataType uint8

const (
	FermataNormal FermataType = iota
	FermataTypeShort
	FermataTypeLong
)

var fermataTypeNames = []string{"normal", "short", "long"}

func (f FermataType) String() string                { return enumName(fermataTypeNames, uint8(f), "fermata") }
func (f FermataType) MarshalText() ([]byte, error)  { return []byte(f.String()), nil }
func (f *FermataType) UnmarshalText(b []byte) error { return parseEnum(fermataTypeNames, b, "fermata type", f) }

// Annotation is a segment-level item (technique text, fermata, breath) that
// belongs to one staff.
type Annotation struct {
	Kind      AnnotationKind `json:"kind"`
	StaffIdx  int            `json:"staff"`
	Technique PlayTechnique  `json:"technique,omitempty"`
	Fermata   FermataType    `json:"fermata,omitempty"`
	Text      string         `json:"text,omitempty"`
}
