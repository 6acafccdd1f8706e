package spanner

import (
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
	"github.com/jsphweid/articulex/util"
)

// DefaultFilter treats a spanner as audible when it is marked to play and
// neither its staff nor its part is muted.
type DefaultFilter struct {
	MutedStaves map[int]bool
	MutedParts  map[string]bool
}

var _ rendering.Filter = DefaultFilter{}

func (f DefaultFilter) IsItemPlayable(sp *model.Spanner, _ rendering.Context) bool {
	if sp == nil || !sp.Play {
		return false
	}
	if f.MutedParts[sp.Part] {
		return false
	}
	return !f.MutedStaves[sp.StaffIdx]
}

func (f DefaultFilter) IsMultiStaffSpanner(sp *model.Spanner) bool {
	return sp != nil && sp.MultiStaff
}

func (f DefaultFilter) SpannerActualDurationTicks(sp *model.Spanner, ticks int) int {
	if sp == nil {
		return 0
	}
	return util.Clamp(ticks, 0, util.Max(sp.DurationTicks(), 0))
}

// NewFilter mutes the given staves and parts.
func NewFilter(staves []int, parts []string) DefaultFilter {
	f := DefaultFilter{MutedStaves: make(map[int]bool), MutedParts: make(map[string]bool)}
	for _, s := range staves {
		f.MutedStaves[s] = true
	}
	for _, p := range parts {
		f.MutedParts[p] = true
	}
	return f
}
