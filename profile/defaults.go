package profile

import "github.com/jsphweid/articulex/model"

const DefaultName = "generic"

func point(position, amplitude, pitch, durationFactor float64) model.PatternPoint {
	return model.PatternPoint{Position: position, Amplitude: amplitude, PitchOffset: pitch, DurationFactor: durationFactor}
}

func steady(amplitude, durationFactor float64) model.ArticulationPattern {
	return model.ArticulationPattern{point(0, amplitude, 0, durationFactor)}
}

// Default is the built-in generic profile. Every articulation type has a
// pattern; instrument profiles loaded from files or DynamoDB override it.
func Default() *Profile {
	p := New(DefaultName)
	for _, t := range model.AllArticulationTypes() {
		p.Set(t, steady(0, 1))
	}

	p.Set(model.Staccato, steady(0, 0.5))
	p.Set(model.Staccatissimo, steady(0, 0.25))
	p.Set(model.Portato, steady(0, 0.75))
	p.Set(model.Tenuto, steady(0.05, 1))
	p.Set(model.Accent, steady(0.2, 1))
	p.Set(model.SoftAccent, model.ArticulationPattern{point(0, 0, 0, 1), point(0.3, 0.15, 0, 1), point(0.7, 0, 0, 1)})
	p.Set(model.Marcato, steady(0.3, 0.85))
	p.Set(model.Legato, steady(0, 1.05))
	p.Set(model.Fall, model.ArticulationPattern{point(0, 0, 0, 1), point(0.5, 0, -100, 1), point(0.75, -0.1, -300, 1)})
	p.Set(model.Doit, model.ArticulationPattern{point(0, 0, 0, 1), point(0.5, 0, 100, 1), point(0.75, -0.1, 300, 1)})
	p.Set(model.Plop, model.ArticulationPattern{point(0, 0, 300, 1), point(0.25, 0, 0, 1)})
	p.Set(model.Scoop, model.ArticulationPattern{point(0, 0, -300, 1), point(0.25, 0, 0, 1)})
	p.Set(model.Crescendo, model.ArticulationPattern{point(0, -0.2, 0, 1), point(0.5, 0, 0, 1), point(0.9, 0.2, 0, 1)})
	p.Set(model.Diminuendo, model.ArticulationPattern{point(0, 0.2, 0, 1), point(0.5, 0, 0, 1), point(0.9, -0.2, 0, 1)})
	p.Set(model.Vibrato, model.ArticulationPattern{point(0, 0, 0, 1), point(0.25, 0, 25, 1), point(0.5, 0, 0, 1), point(0.75, 0, -25, 1)})
	p.Set(model.VibratoWide, model.ArticulationPattern{point(0, 0, 0, 1), point(0.25, 0, 50, 1), point(0.5, 0, 0, 1), point(0.75, 0, -50, 1)})
	p.Set(model.Trill, model.ArticulationPattern{point(0, 0, 0, 1), point(0.5, 0, 200, 1)})
	return p
}
