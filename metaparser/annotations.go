package metaparser

import (
	"github.com/jsphweid/articulex/articulation"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
)

// Annotations contributes the segment annotations that sit on the chord's staff.
func Annotations(chord *model.Chord, ctx rendering.Context, result *articulation.Map) {
	if chord == nil || chord.Segment == nil {
		return
	}
	for _, annotation := range chord.Segment.Annotations {
		if annotation.StaffIdx != chord.StaffIdx {
			continue
		}
		appendPattern(annotationArticulationType(annotation), ctx, result)
	}
}

func annotationArticulationType(a model.Annotation) model.ArticulationType {
	switch a.Kind {
	case model.AnnotationPlayTechnique:
		return playTechniqueArticulationType(a.Technique)
	case model.AnnotationFermata:
		switch a.Fermata {
		case model.FermataTypeShort:
			return model.FermataShort
		case model.FermataTypeLong:
			return model.FermataLong
		default:
			return model.Fermata
		}
	case model.AnnotationBreath:
		return model.Breath
	case model.AnnotationStaffText, model.UnknownAnnotation:
	}
	return model.Undefined
}

func playTechniqueArticulationType(t model.PlayTechnique) model.ArticulationType {
	switch t {
	case model.TechniqueNatural:
		return model.Standard
	case model.TechniquePizzicato:
		return model.Pizzicato
	case model.TechniqueOpen:
		return model.Open
	case model.TechniqueMute:
		return model.Mute
	case model.TechniqueTremolo:
		return model.Tremolo32nd
	case model.TechniqueDistortion:
		return model.Distortion
	case model.TechniqueOverdrive:
		return model.Overdrive
	case model.TechniqueHarmonics:
		return model.Harmonic
	case model.TechniqueJazzTone:
		return model.JazzTone
	case model.TechniqueNone:
	}
	return model.Undefined
}
