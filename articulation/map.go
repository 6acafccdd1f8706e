// Package articulation accumulates the performance directives contributed to
// one chord and computes the aggregate view consumed by the event builder.
package articulation

import (
	"encoding/json"
	"time"

	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/util"
)

// OccupiedRange is the slice [From, To] of a directive's own timeline that is
// visible through the current chord's window.
type OccupiedRange struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Averages holds the mean value of each pattern channel.
type Averages struct {
	Amplitude      float64 `json:"amplitude"`
	PitchOffset    float64 `json:"pitch_offset"`
	DurationFactor float64 `json:"duration_factor"`
}

func (a Averages) add(b Averages, weight float64) Averages {
	return Averages{
		Amplitude:      a.Amplitude + b.Amplitude*weight,
		PitchOffset:    a.PitchOffset + b.PitchOffset*weight,
		DurationFactor: a.DurationFactor + b.DurationFactor*weight,
	}
}

func (a Averages) scale(f float64) Averages {
	return Averages{
		Amplitude:      a.Amplitude * f,
		PitchOffset:    a.PitchOffset * f,
		DurationFactor: a.DurationFactor * f,
	}
}

type AppliedData struct {
	Meta model.ArticulationMeta `json:"meta"`

	// nil for single note directives
	Occupied *OccupiedRange `json:"occupied,omitempty"`
}

// SetOccupiedRange stores the visible slice of the directive. Both bounds are
// clamped to [0, 1] and To never falls below From. Single note directives
// keep their range unset.
func (d *AppliedData) SetOccupiedRange(from, to float64) {
	if d.Meta.Type.IsSingleNoteArticulation() {
		return
	}
	from = util.Clamp(from, 0, 1)
	to = util.Clamp(to, 0, 1)
	if to < from {
		to = from
	}
	d.Occupied = &OccupiedRange{From: from, To: to}
}

// OccupiedRangeOrFull returns the occupied range, or the whole timeline when
// none was set.
func (d *AppliedData) OccupiedRangeOrFull() OccupiedRange {
	if d.Occupied == nil {
		return OccupiedRange{From: 0, To: 1}
	}
	return *d.Occupied
}

func (d *AppliedData) weight() float64 {
	r := d.OccupiedRangeOrFull()
	return (r.To - r.From) * float64(d.Meta.OverallDuration)
}

// Map is keyed by articulation type. Entries of one type are kept apart in
// contribution order since each carries its own timing and pattern.
type Map struct {
	entries map[model.ArticulationType][]*AppliedData
	order   []model.ArticulationType

	// spanners that already contributed an entry
	spanners map[*model.Spanner]bool

	typeAverages map[model.ArticulationType]Averages
	average      Averages
}

func New() *Map {
	return &Map{
		entries:      make(map[model.ArticulationType][]*AppliedData),
		spanners:     make(map[*model.Spanner]bool),
		typeAverages: make(map[model.ArticulationType]Averages),
	}
}

// Append adds meta to the map as its own entry, even when an entry with the
// same type and timing is already present. A meta without a type or pattern
// is not a contribution and Append returns false.
func (m *Map) Append(meta model.ArticulationMeta) bool {
	if meta.Type == model.Undefined || len(meta.Pattern) == 0 {
		return false
	}
	existing, ok := m.entries[meta.Type]
	if !ok {
		m.order = append(m.order, meta.Type)
	}
	m.entries[meta.Type] = append(existing, &AppliedData{Meta: meta})
	return true
}

// AppendSpanner appends the entry of sp. A spanner contributes once per map,
// however many of the chord's windows (the principal's and its grace
// chords') overlap it.
func (m *Map) AppendSpanner(sp *model.Spanner, meta model.ArticulationMeta) bool {
	if sp == nil || m.spanners[sp] {
		return false
	}
	if !m.Append(meta) {
		return false
	}
	m.spanners[sp] = true
	return true
}

// HasSpanner reports whether sp already contributed an entry.
func (m *Map) HasSpanner(sp *model.Spanner) bool {
	return m.spanners[sp]
}

// UpdateOccupiedRange sets the occupied range of every entry of type t.
func (m *Map) UpdateOccupiedRange(t model.ArticulationType, from, to float64) {
	if t.IsSingleNoteArticulation() {
		return
	}
	m.RangeType(t, func(d *AppliedData) {
		d.SetOccupiedRange(from, to)
	})
}

// Range calls fn for every entry in contribution order.
func (m *Map) Range(fn func(d *AppliedData)) {
	for _, t := range m.order {
		m.RangeType(t, fn)
	}
}

// RangeType calls fn for every entry of type t in contribution order.
func (m *Map) RangeType(t model.ArticulationType, fn func(d *AppliedData)) {
	for _, d := range m.entries[t] {
		fn(d)
	}
}

func (m *Map) Types() []model.ArticulationType {
	res := make([]model.ArticulationType, len(m.order))
	copy(res, m.order)
	return res
}

func (m *Map) Contains(t model.ArticulationType) bool {
	_, ok := m.entries[t]
	return ok
}

// Entries returns copies of the entries of type t.
func (m *Map) Entries(t model.ArticulationType) []AppliedData {
	var res []AppliedData
	for _, d := range m.entries[t] {
		res = append(res, *d)
	}
	return res
}

func (m *Map) Len() int {
	var n int
	for _, list := range m.entries {
		n += len(list)
	}
	return n
}

func (m *Map) IsEmpty() bool {
	return len(m.order) == 0
}

// PreCalculateAverageData computes, per type and across the whole map, the
// mean of each pattern channel over the occupied slice of every entry,
// weighted by occupied duration.
func (m *Map) PreCalculateAverageData() {
	m.typeAverages = make(map[model.ArticulationType]Averages, len(m.order))
	var all []*AppliedData
	for _, t := range m.order {
		list := m.entries[t]
		m.typeAverages[t] = weightedAverage(list)
		all = append(all, list...)
	}
	m.average = weightedAverage(all)
}

func (m *Map) TypeAverage(t model.ArticulationType) (Averages, bool) {
	a, ok := m.typeAverages[t]
	return a, ok
}

func (m *Map) Average() Averages {
	return m.average
}

// OccupiedPercentage is delta/duration clamped to [0, 1]; a non-positive
// duration occupies nothing.
func OccupiedPercentage(delta, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return util.Clamp(float64(delta)/float64(duration), 0, 1)
}

func weightedAverage(list []*AppliedData) Averages {
	var sum Averages
	var total float64
	for _, d := range list {
		w := d.weight()
		if w <= 0 {
			continue
		}
		r := d.OccupiedRangeOrFull()
		sum = sum.add(averageOver(d.Meta.Pattern, r.From, r.To), w)
		total += w
	}
	if total > 0 {
		return sum.scale(1 / total)
	}
	if len(list) == 0 {
		return Averages{}
	}
	for _, d := range list {
		sum = sum.add(valueAt(d.Meta.Pattern, d.OccupiedRangeOrFull().From), 1)
	}
	return sum.scale(1 / float64(len(list)))
}

func pointValues(p model.PatternPoint) Averages {
	return Averages{Amplitude: p.Amplitude, PitchOffset: p.PitchOffset, DurationFactor: p.DurationFactor}
}

// valueAt reads the pattern as a step function: the last point at or before
// pos, or the first point when pos precedes all of them.
func valueAt(pattern model.ArticulationPattern, pos float64) Averages {
	if len(pattern) == 0 {
		return Averages{}
	}
	cur := pattern[0]
	for _, p := range pattern[1:] {
		if p.Position > pos {
			break
		}
		cur = p
	}
	return pointValues(cur)
}

func averageOver(pattern model.ArticulationPattern, from, to float64) Averages {
	if len(pattern) == 0 {
		return Averages{}
	}
	if to <= from {
		return valueAt(pattern, from)
	}
	var sum Averages
	for i, p := range pattern {
		segStart, segEnd := p.Position, 1.0
		if i == 0 {
			segStart = 0
		}
		if i+1 < len(pattern) {
			segEnd = pattern[i+1].Position
		}
		lo := util.Max(segStart, from)
		hi := util.Min(segEnd, to)
		if hi > lo {
			sum = sum.add(pointValues(p), hi-lo)
		}
	}
	return sum.scale(1 / (to - from))
}

type jsonType struct {
	Type    model.ArticulationType `json:"type"`
	Average Averages               `json:"average"`
	Entries []*AppliedData         `json:"entries"`
}

type jsonMap struct {
	Articulations []jsonType `json:"articulations"`
	Average       Averages   `json:"average"`
}

func (m *Map) MarshalJSON() ([]byte, error) {
	out := jsonMap{Articulations: make([]jsonType, 0, len(m.order)), Average: m.average}
	for _, t := range m.order {
		out.Articulations = append(out.Articulations, jsonType{
			Type:    t,
			Average: m.typeAverages[t],
			Entries: m.entries[t],
		})
	}
	return json.Marshal(out)
}
