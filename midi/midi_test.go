package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

// tempoFile is 120 bpm for one quarter, then 60 bpm, at 960 ticks per quarter.
func tempoFile(t *testing.T) []byte {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(960, smf.MetaTempo(60))
	tr.Close(0)
	require.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestTempoMapFollowsTempoChanges(t *testing.T) {
	s, err := ReadMidi(tempoFile(t))
	require.NoError(t, err)

	m, err := NewTempoMap(s, 480)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(time.Duration(0), m.TimestampFromTicks(0))
	assert.Equal(250*time.Millisecond, m.TimestampFromTicks(240))
	assert.Equal(500*time.Millisecond, m.TimestampFromTicks(480))
	assert.Equal(1500*time.Millisecond, m.TimestampFromTicks(960))
}

func TestNewTempoMapRejectsBadDivision(t *testing.T) {
	s, err := ReadMidi(tempoFile(t))
	require.NoError(t, err)

	_, err = NewTempoMap(s, 0)
	assert.Error(t, err)
}

func TestLoadTempoMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tempo.mid")
	require.NoError(t, os.WriteFile(path, tempoFile(t), 0o644))

	m, err := LoadTempoMap(path, 960)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, m.TimestampFromTicks(960))

	_, err = LoadTempoMap(filepath.Join(t.TempDir(), "missing.mid"), 480)
	assert.Error(t, err)
}

func TestReadMidiRejectsGarbage(t *testing.T) {
	_, err := ReadMidi([]byte("not a midi file"))
	assert.Error(t, err)
}
