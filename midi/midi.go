package midi

import (
	"bytes"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// smf panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Newf("parsing midi file %s: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	return ReadMidi(dat)
}

func ReadMidi(dat []byte) (*smf.SMF, error) {
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	return res, nil
}

// TempoMap reads performance time from the tempo track of a standard MIDI
// file. Score ticks are rescaled from the score's division to the file's
// resolution first.
type TempoMap struct {
	smf           *smf.SMF
	scoreDivision int
	fileDivision  int
}

func NewTempoMap(s *smf.SMF, scoreDivision int) (*TempoMap, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, errors.WithHint(
			errors.Newf("unsupported midi time format %v", s.TimeFormat),
			"only metric (ticks per quarter) files carry a usable tempo map")
	}
	if scoreDivision <= 0 {
		return nil, errors.Newf("score division must be positive, got %d", scoreDivision)
	}
	return &TempoMap{smf: s, scoreDivision: scoreDivision, fileDivision: int(ticks.Ticks4th())}, nil
}

// LoadTempoMap reads path and builds its tempo map.
func LoadTempoMap(path string, scoreDivision int) (*TempoMap, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return NewTempoMap(s, scoreDivision)
}

func (m *TempoMap) TimestampFromTicks(tick int) time.Duration {
	fileTicks := int64(tick) * int64(m.fileDivision) / int64(m.scoreDivision)
	return time.Duration(m.smf.TimeAt(fileTicks)) * time.Microsecond
}
