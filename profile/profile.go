// Package profile stores the control-point patterns used to render each
// articulation type.
package profile

import (
	"sort"

	"github.com/jsphweid/articulex/model"
)

// Profile maps articulation types to patterns. It is filled once and then
// only read, so one profile can serve concurrent renders.
type Profile struct {
	Name     string
	patterns map[model.ArticulationType]model.ArticulationPattern
}

func New(name string) *Profile {
	return &Profile{
		Name:     name,
		patterns: make(map[model.ArticulationType]model.ArticulationPattern),
	}
}

// Set stores a copy of pattern ordered by position. An empty pattern removes t.
func (p *Profile) Set(t model.ArticulationType, pattern model.ArticulationPattern) {
	if len(pattern) == 0 {
		delete(p.patterns, t)
		return
	}
	sorted := make(model.ArticulationPattern, len(pattern))
	copy(sorted, pattern)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	p.patterns[t] = sorted
}

// Pattern returns the stored pattern of t or nil. The result is shared and
// must not be modified.
func (p *Profile) Pattern(t model.ArticulationType) model.ArticulationPattern {
	if p == nil {
		return nil
	}
	return p.patterns[t]
}

func (p *Profile) Types() []model.ArticulationType {
	res := make([]model.ArticulationType, 0, len(p.patterns))
	for t := range p.patterns {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (p *Profile) Len() int {
	return len(p.patterns)
}
