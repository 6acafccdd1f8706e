package spanner

import (
	"sort"

	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
)

// Index is an immutable interval index over a score's spanners. Intervals are
// kept sorted by start tick, and maxStop[i] is the largest stop tick among
// the first i+1 intervals, which bounds how far back a query has to look.
type Index struct {
	intervals []rendering.Interval
	maxStop   []int
}

func NewIndex(spanners []*model.Spanner) *Index {
	idx := &Index{intervals: make([]rendering.Interval, 0, len(spanners))}
	for _, sp := range spanners {
		if sp == nil || sp.Tick2 < sp.Tick {
			continue
		}
		idx.intervals = append(idx.intervals, rendering.Interval{Start: sp.Tick, Stop: sp.Tick2, Spanner: sp})
	}

	// stable so that spanners starting together keep document order
	sort.SliceStable(idx.intervals, func(i, j int) bool {
		return idx.intervals[i].Start < idx.intervals[j].Start
	})

	idx.maxStop = make([]int, len(idx.intervals))
	for i, iv := range idx.intervals {
		idx.maxStop[i] = iv.Stop
		if i > 0 && idx.maxStop[i-1] > iv.Stop {
			idx.maxStop[i] = idx.maxStop[i-1]
		}
	}
	return idx
}

func (idx *Index) Empty() bool {
	return len(idx.intervals) == 0
}

func (idx *Index) Len() int {
	return len(idx.intervals)
}

// All returns every interval in start order.
func (idx *Index) All() []rendering.Interval {
	res := make([]rendering.Interval, len(idx.intervals))
	copy(res, idx.intervals)
	return res
}

// FindOverlapping returns the intervals overlapping [start, stop]. With
// excludeCollisions an interval that only touches the window at an endpoint
// is left out.
func (idx *Index) FindOverlapping(start, stop int, excludeCollisions bool) []rendering.Interval {
	// candidates are the intervals starting before (or at) stop
	n := sort.Search(len(idx.intervals), func(i int) bool {
		if excludeCollisions {
			return idx.intervals[i].Start >= stop
		}
		return idx.intervals[i].Start > stop
	})

	// every interval before lo ends before start
	lo := sort.Search(n, func(i int) bool {
		if excludeCollisions {
			return idx.maxStop[i] > start
		}
		return idx.maxStop[i] >= start
	})

	var res []rendering.Interval
	for _, iv := range idx.intervals[lo:n] {
		if excludeCollisions && iv.Stop <= start {
			continue
		}
		if !excludeCollisions && iv.Stop < start {
			continue
		}
		res = append(res, iv)
	}
	return res
}
