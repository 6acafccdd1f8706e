package metaparser

import (
	"github.com/jsphweid/articulex/articulation"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
)

var symbolTypes = map[model.Symbol][]model.ArticulationType{
	model.SymStaccato:        {model.Staccato},
	model.SymStaccatissimo:   {model.Staccatissimo},
	model.SymTenuto:          {model.Tenuto},
	model.SymTenutoStaccato:  {model.Portato},
	model.SymAccent:          {model.Accent},
	model.SymAccentStaccato:  {model.Accent, model.Staccato},
	model.SymSoftAccent:      {model.SoftAccent},
	model.SymMarcato:         {model.Marcato},
	model.SymMarcatoStaccato: {model.Marcato, model.Staccato},
	model.SymMarcatoTenuto:   {model.Marcato, model.Tenuto},
	model.SymLaissezVibrer:   {model.LaissezVibrer},
	model.SymHarmonic:        {model.Harmonic},
	model.SymSnapPizzicato:   {model.SnapPizzicato},
	model.SymUpBow:           {model.UpBow},
	model.SymDownBow:         {model.DownBow},
	model.SymMordent:         {model.Mordent},
	model.SymTurn:            {model.Turn},
}

// Symbols contributes every articulation symbol attached to the chord.
// Symbols are single note by construction and take the chord's own timing.
func Symbols(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if chord == nil {
		return
	}
	for _, a := range chord.Articulations {
		for _, t := range symbolTypes[a.Symbol] {
			appendPattern(t, ctx, result)
		}
	}
}
