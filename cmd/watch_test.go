package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/articulex/profile"
	"github.com/jsphweid/articulex/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Split(strings.TrimSpace(b.buf.String()), "\n")
}

const oneChord = `{"chords": [{"tick": 0, "duration": 480, "notes": [{"pitch": 60}], "articulations": ["staccato"]}]}`
const twoChords = `{"chords": [
	{"tick": 0, "duration": 480, "notes": [{"pitch": 60}], "articulations": ["staccato"]},
	{"tick": 480, "duration": 480, "notes": [{"pitch": 62}], "articulations": ["tenuto"]}
]}`

func TestWatchRerendersOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.score.json")
	require.NoError(t, os.WriteFile(path, []byte(oneChord), 0o644))

	out := &lockedBuffer{}
	w := &scoreWatcher{
		path:     path,
		profile:  profile.Default(),
		filter:   spanner.DefaultFilter{},
		debounce: 20 * time.Millisecond,
		out:      out,
		log:      zap.NewNop().Sugar(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	assert.Eventually(t, func() bool { return out.lines()[0] != "" }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(twoChords), 0o644))
	require.Eventually(t, func() bool { return len(out.lines()) >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	lines := out.lines()
	var first, last renderOutput
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	assert.Len(t, first.Chords, 1)
	assert.Len(t, last.Chords, 2)
	assert.Equal(t, []string{"tenuto"}, last.types(1))
}
