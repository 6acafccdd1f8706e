package metaparser

import (
	"testing"

	"github.com/jsphweid/articulex/articulation"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/profile"
	"github.com/jsphweid/articulex/rendering"
	"github.com/jsphweid/articulex/score"
	"github.com/jsphweid/articulex/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chordAt(tick, ticks int) *model.Chord {
	return &model.Chord{Tick: tick, DurationTicks: ticks, Notes: model.Notes{{Pitch: 60, Velocity: 80}}}
}

func contextFor(c *model.Chord, filter rendering.Filter, spanners ...*model.Spanner) rendering.Context {
	s := score.New("test", 480, []*model.Chord{c}, spanners, nil)
	return rendering.New(s, profile.Default(), filter, c.Tick, c.DurationTicks, 0)
}

func parse(parser func(*model.Chord, rendering.Context, *articulation.Map), c *model.Chord, ctx rendering.Context) []model.ArticulationType {
	m := articulation.New()
	parser(c, ctx, m)
	return m.Types()
}

func TestParseAllOrder(t *testing.T) {
	c := chordAt(0, 480)
	c.Segment = &model.Segment{Annotations: []model.Annotation{{Kind: model.AnnotationBreath}}}
	c.Articulations = []model.ArticulationSymbol{{Symbol: model.SymMarcato}}
	c.Ornaments = []model.Ornament{
		&model.Tapping{Hand: model.RightHand, Play: true},
		&model.ChordLine{Type: model.ChordLineScoop, Play: true},
		&model.ArpeggioOrnament{Direction: model.ArpeggioNormal},
		&model.Tremolo{Type: model.TremoloBuzzRoll, Play: true},
	}
	c.GraceNotes = []*model.Chord{{GraceKind: model.GraceAppoggiatura}}
	ctx := contextFor(c, nil, &model.Spanner{Kind: model.PedalSpanner, Tick: 0, Tick2: 960, Play: true})

	assert.Equal(t, []model.ArticulationType{
		model.Pedal,
		model.Breath,
		model.TremoloBuzz,
		model.Arpeggio,
		model.PreAppoggiatura,
		model.Scoop,
		model.Marcato,
		model.RightHandTapping,
	}, parse(ParseAll, c, ctx))
}

func TestMissingPatternContributesNothing(t *testing.T) {
	c := chordAt(0, 480)
	c.Articulations = []model.ArticulationSymbol{{Symbol: model.SymStaccato}, {Symbol: model.SymAccent}}
	ctx := contextFor(c, nil)
	p := profile.New("sparse")
	p.Set(model.Accent, model.ArticulationPattern{{DurationFactor: 1}})
	ctx.Profile = p

	assert.Equal(t, []model.ArticulationType{model.Accent}, parse(Symbols, c, ctx))
}

func TestSpannersFilterByStaffAndPart(t *testing.T) {
	c := chordAt(0, 480)
	c.StaffIdx, c.Part = 1, "piano"

	spanners := []*model.Spanner{
		{ID: "other staff", Kind: model.SlurSpanner, Tick: 0, Tick2: 480, StaffIdx: 0, Play: true},
		{ID: "same part", Kind: model.PedalSpanner, Tick: 0, Tick2: 480, StaffIdx: 0, Part: "piano", MultiStaff: true, Play: true},
		{ID: "other part", Kind: model.LetRingSpanner, Tick: 0, Tick2: 480, StaffIdx: 1, Part: "harp", MultiStaff: true, Play: true},
		{ID: "silent", Kind: model.PalmMuteSpanner, Tick: 0, Tick2: 480, StaffIdx: 1, Play: false},
		{ID: "ottava", Kind: model.OttavaSpanner, Tick: 0, Tick2: 480, StaffIdx: 1, Play: true},
		{ID: "vibrato", Kind: model.VibratoSpanner, Vibrato: model.VibratoSawtoothWide, Tick: 0, Tick2: 480, StaffIdx: 1, Play: true},
	}
	ctx := contextFor(c, nil, spanners...)

	assert.Equal(t, []model.ArticulationType{model.Pedal, model.VibratoSawtooth}, parse(Spanners, c, ctx))
}

func TestSpannersUseFilter(t *testing.T) {
	c := chordAt(0, 480)
	sp := &model.Spanner{Kind: model.HairpinSpanner, Hairpin: model.HairpinDiminuendo, Tick: 0, Tick2: 960, Play: true}

	assert.Equal(t, []model.ArticulationType{model.Diminuendo}, parse(Spanners, c, contextFor(c, nil, sp)))

	muted := spanner.NewFilter([]int{0}, nil)
	assert.Empty(t, parse(Spanners, c, contextFor(c, muted, sp)))
}

func TestSpannerEntryTakesSpannerTiming(t *testing.T) {
	c := chordAt(480, 480)
	ctx := contextFor(c, nil, &model.Spanner{Kind: model.SlurSpanner, Tick: 240, Tick2: 1200, Play: true})

	m := articulation.New()
	Spanners(c, ctx, m)
	entries := m.Entries(model.Legato)
	require.Len(t, entries, 1)
	assert.Equal(t, ctx.Score.TimestampFromTicks(240), entries[0].Meta.Timestamp)
	assert.Equal(t, ctx.Score.TimestampFromTicks(960), entries[0].Meta.OverallDuration)
}

func TestSpannerArticulationType(t *testing.T) {
	tests := []struct {
		spanner model.Spanner
		want    model.ArticulationType
	}{
		{model.Spanner{Kind: model.SlurSpanner}, model.Legato},
		{model.Spanner{Kind: model.TrillSpanner, Trill: model.TrillLine}, model.Trill},
		{model.Spanner{Kind: model.TrillSpanner, Trill: model.TrillUpprall}, model.UpperMordent},
		{model.Spanner{Kind: model.TrillSpanner, Trill: model.TrillDownprall}, model.LowerMordent},
		{model.Spanner{Kind: model.TrillSpanner, Trill: model.TrillPrallprall}, model.TrillBaroque},
		{model.Spanner{Kind: model.VibratoSpanner, Vibrato: model.VibratoGuitarWide}, model.VibratoWide},
		{model.Spanner{Kind: model.GlissandoSpanner, Glissando: model.GlissandoPortamento}, model.ContinuousGlissando},
		{model.Spanner{Kind: model.GlissandoSpanner, Glissando: model.GlissandoDiatonic}, model.DiscreteGlissando},
		{model.Spanner{Kind: model.HairpinSpanner}, model.Crescendo},
		{model.Spanner{Kind: model.OttavaSpanner}, model.Undefined},
		{model.Spanner{Kind: model.UnknownSpanner}, model.Undefined},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SpannerArticulationType(&tt.spanner))
		})
	}
}

func TestAnnotationsOnChordStaffOnly(t *testing.T) {
	c := chordAt(0, 480)
	c.StaffIdx = 2
	c.Segment = &model.Segment{Annotations: []model.Annotation{
		{Kind: model.AnnotationPlayTechnique, StaffIdx: 2, Technique: model.TechniqueHarmonics},
		{Kind: model.AnnotationFermata, StaffIdx: 2, Fermata: model.FermataTypeLong},
		{Kind: model.AnnotationStaffText, StaffIdx: 2, Text: "dolce"},
		{Kind: model.AnnotationBreath, StaffIdx: 0},
	}}

	assert.Equal(t, []model.ArticulationType{model.Harmonic, model.FermataLong}, parse(Annotations, c, contextFor(c, nil)))
}

func TestTremoloArticulationType(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.Tremolo8th, TremoloArticulationType(model.TremoloC8))
	assert.Equal(model.Tremolo32nd, TremoloArticulationType(model.TremoloR32))
	assert.Equal(model.Tremolo64th, TremoloArticulationType(model.TremoloC64))
	assert.Equal(model.Undefined, TremoloArticulationType(model.InvalidTremolo))
}

func TestTremoloNeedsPlay(t *testing.T) {
	c := chordAt(0, 480)
	c.Ornaments = []model.Ornament{&model.TwoChordTremolo{Type: model.TremoloC32, Play: false}}
	assert.Empty(t, parse(Tremolo, c, contextFor(c, nil)))
}

func TestArpeggioDirections(t *testing.T) {
	tests := []struct {
		direction model.ArpeggioDirection
		want      []model.ArticulationType
	}{
		{model.ArpeggioNormal, []model.ArticulationType{model.Arpeggio}},
		{model.ArpeggioDirDown, []model.ArticulationType{model.ArpeggioDown}},
		{model.ArpeggioDirUpStraight, []model.ArticulationType{model.ArpeggioStraightUp}},
		{model.ArpeggioDirDownStraight, []model.ArticulationType{model.ArpeggioStraightDown}},
		{model.ArpeggioBracket, []model.ArticulationType{}},
	}
	for _, tt := range tests {
		t.Run(tt.direction.String(), func(t *testing.T) {
			c := chordAt(0, 480)
			c.Ornaments = []model.Ornament{&model.ArpeggioOrnament{Direction: tt.direction}}
			assert.Equal(t, tt.want, parse(Arpeggio, c, contextFor(c, nil)))
		})
	}
}

func TestChordLine(t *testing.T) {
	c := chordAt(0, 480)
	c.Ornaments = []model.Ornament{&model.ChordLine{Type: model.ChordLineDoit, Straight: true, Play: true}}
	assert.Equal(t, []model.ArticulationType{model.SlideOutUp}, parse(ChordLine, c, contextFor(c, nil)))

	c.Ornaments = []model.Ornament{&model.ChordLine{Type: model.ChordLineDoit, Play: false}}
	assert.Empty(t, parse(ChordLine, c, contextFor(c, nil)))

	assert.Equal(t, model.Plop, ChordLineArticulationType(&model.ChordLine{Type: model.ChordLinePlop}))
	assert.Equal(t, model.SlideInBelow, ChordLineArticulationType(&model.ChordLine{Type: model.ChordLineScoop, Straight: true}))
}

func TestTapping(t *testing.T) {
	c := chordAt(0, 480)
	c.Ornaments = []model.Ornament{&model.Tapping{Hand: model.LeftHand, Play: true}}
	assert.Equal(t, []model.ArticulationType{model.LeftHandTapping}, parse(Tapping, c, contextFor(c, nil)))

	c.Ornaments = []model.Ornament{&model.Tapping{Hand: model.InvalidHand, Play: true}}
	assert.Empty(t, parse(Tapping, c, contextFor(c, nil)))
}

func TestFirstOrnamentOfEachKindIsUsed(t *testing.T) {
	c := chordAt(0, 480)
	c.Ornaments = []model.Ornament{
		&model.Tapping{Hand: model.RightHand, Play: true},
		nil,
		&model.Tapping{Hand: model.LeftHand, Play: true},
	}
	assert.Equal(t, []model.ArticulationType{model.RightHandTapping}, parse(Tapping, c, contextFor(c, nil)))
}

func TestCombinedSymbolsExpand(t *testing.T) {
	c := chordAt(0, 480)
	c.Articulations = []model.ArticulationSymbol{
		{Symbol: model.SymMarcatoTenuto},
		{Symbol: model.SymTenutoStaccato},
		{Symbol: model.SymAccentStaccato},
	}
	assert.Equal(t, []model.ArticulationType{
		model.Marcato, model.Tenuto, model.Portato, model.Accent, model.Staccato,
	}, parse(Symbols, c, contextFor(c, nil)))
}

func TestAppoggiaturaTakesFirstHalf(t *testing.T) {
	c := chordAt(0, 480)
	c.GraceNotes = []*model.Chord{{
		GraceKind:     model.GraceAppoggiatura,
		Articulations: []model.ArticulationSymbol{{Symbol: model.SymStaccato}},
	}}
	ctx := contextFor(c, nil)

	m := articulation.New()
	GraceNotes(c, ctx, m)
	assert.Equal(t, []model.ArticulationType{model.PreAppoggiatura, model.Staccato}, m.Types())

	staccato := m.Entries(model.Staccato)
	require.Len(t, staccato, 1)
	assert.Equal(t, ctx.Score.TimestampFromTicks(240), staccato[0].Meta.OverallDuration)
}
