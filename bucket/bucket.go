// Package bucket groups rendered chords for reporting.
package bucket

import (
	"context"

	"github.com/jsphweid/articulex/chord"
	"github.com/jsphweid/articulex/logger"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/rendering"
	"github.com/jsphweid/articulex/score"
	"github.com/jsphweid/articulex/util"
	"go.uber.org/zap"
)

type TypeCounts = map[model.ArticulationType]int

// Bucket holds the rendered chords of one staff in score order.
type Bucket struct {
	Staff  int
	Chords []chord.RenderedChord
}

// TypeCounts counts the chords of b carrying each articulation type.
func (b Bucket) TypeCounts() TypeCounts {
	return CountTypes(b.Chords)
}

func ByStaff(rendered []chord.RenderedChord) []Bucket {
	byStaff := make(map[int][]chord.RenderedChord)
	for _, r := range rendered {
		byStaff[r.Chord.StaffIdx] = append(byStaff[r.Chord.StaffIdx], r)
	}

	res := make([]Bucket, 0, len(byStaff))
	for _, staff := range util.GetKeys(byStaff) {
		res = append(res, Bucket{Staff: staff, Chords: byStaff[staff]})
	}
	return res
}

func CountTypes(rendered []chord.RenderedChord) TypeCounts {
	counts := make(TypeCounts)
	for _, r := range rendered {
		for _, t := range r.Articulations.Types() {
			counts[t]++
		}
	}
	return counts
}

// Merge adds the counts of src to dst.
func Merge(dst, src TypeCounts) {
	for t, n := range src {
		dst[t] += n
	}
}

// ScoreResult is the outcome of rendering one score file.
type ScoreResult struct {
	Path    string
	Title   string
	Buckets []Bucket
}

// ProcessAllScoreFiles renders each file in paths. Files that fail to load
// or render are logged and skipped.
func ProcessAllScoreFiles(ctx context.Context, paths []string, parser *chord.Parser, profile rendering.Profile, filter rendering.Filter, workers int, log *zap.SugaredLogger) []ScoreResult {
	var res []ScoreResult
	for i, path := range paths {
		log.Debugf("Processing %v of %v score files", i+1, len(paths))

		s, err := score.Load(path)
		if err != nil {
			log.Warnw("Skipping score", logger.FieldFile, path, logger.FieldError, err)
			continue
		}
		rendered, err := parser.RenderScore(ctx, s, profile, filter, workers)
		if err != nil {
			log.Warnw("Skipping score", logger.FieldFile, path, logger.FieldError, err)
			continue
		}
		res = append(res, ScoreResult{Path: path, Title: s.Title, Buckets: ByStaff(rendered)})
	}
	return res
}
