package score

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/articulex/constants"
	"github.com/jsphweid/articulex/model"
)

// Parse decodes a JSON score document.
func Parse(data []byte) (*Score, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding score")
	}
	return FromDocument(doc)
}

func Load(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading score %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading score %s", path)
	}
	if s.Title == "" {
		s.Title = path
	}
	return s, nil
}

func FromDocument(doc Document) (*Score, error) {
	division := doc.Division
	if division <= 0 {
		division = constants.DefaultDivision
	}

	segments := make(map[int]*model.Segment)
	for _, sd := range doc.Segments {
		seg, ok := segments[sd.Tick]
		if !ok {
			seg = &model.Segment{Tick: sd.Tick}
			segments[sd.Tick] = seg
		}
		seg.Annotations = append(seg.Annotations, sd.Annotations...)
	}

	chords := make([]*model.Chord, 0, len(doc.Chords))
	for i, cd := range doc.Chords {
		if cd.Tick < 0 || cd.Duration < 0 {
			return nil, errors.Newf("chord %d: bad tick window %d+%d", i, cd.Tick, cd.Duration)
		}
		chords = append(chords, cd.toChord(segments[cd.Tick], cd.Staff, cd.Part))
	}

	spanners := make([]*model.Spanner, 0, len(doc.Spanners))
	for i, sd := range doc.Spanners {
		if sd.Tick < 0 || sd.Tick2 < sd.Tick {
			return nil, errors.WithHint(
				errors.Newf("spanner %d (%s): bad tick range %d..%d", i, sd.ID, sd.Tick, sd.Tick2),
				"tick2 is the spanner's end tick and must not precede tick")
		}
		spanners = append(spanners, sd.toSpanner())
	}

	return New(doc.Title, division, chords, spanners, ConstantTempo{BPM: doc.BPM, Division: division}), nil
}
