package cmd

import (
	"context"
	"io"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/articulex/chord"
	"github.com/jsphweid/articulex/logger"
	"github.com/jsphweid/articulex/profile"
	"github.com/jsphweid/articulex/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchMidiPath string

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchMidiPath, "midi", "", "MIDI file whose tempo track times the score")
	watchCmd.Flags().Duration("debounce", 0, "quiet period before re-rendering after a change")
}

var watchCmd = &cobra.Command{
	Use:   "watch <score.json>",
	Short: "Re-renders a score whenever it changes",
	Long:  `Renders a score, then renders it again every time the file is saved, printing one JSON line per render.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		w := &scoreWatcher{
			path:     args[0],
			midiPath: watchMidiPath,
			profile:  p,
			filter:   newFilter(cfg),
			workers:  cfg.Render.Workers,
			debounce: cfg.Watch.Debounce,
			out:      cmd.OutOrStdout(),
			log:      logger.ComponentLogger("watch"),
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return w.Run(ctx)
	},
}

type scoreWatcher struct {
	path     string
	midiPath string
	profile  *profile.Profile
	filter   rendering.Filter
	workers  int
	debounce time.Duration
	out      io.Writer
	log      *zap.SugaredLogger

	mu sync.Mutex
}

// Run renders once and then on every write to the score until ctx ends.
func (w *scoreWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer watcher.Close()

	// editors often replace the file, so watch its directory
	target := filepath.Clean(w.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "watching %s", w.path)
	}

	debounced := debounce.New(w.debounce)
	render := func() { w.render(ctx) }
	render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.log.Debugw("Score changed", logger.FieldFile, event.Name, "op", event.Op.String())
				debounced(render)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

func (w *scoreWatcher) render(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ctx.Err() != nil {
		return
	}

	s, err := loadScore(w.path, w.midiPath)
	if err != nil {
		w.log.Errorw("Could not load score", logger.FieldFile, w.path, logger.FieldError, err)
		return
	}
	resp, err := renderScore(ctx, chord.NewParser(w.log), s, w.profile, w.filter, w.workers)
	if err != nil {
		w.log.Errorw("Could not render score", logger.FieldFile, w.path, logger.FieldError, err)
		return
	}
	if err := writeJSON(w.out, resp, false); err != nil {
		w.log.Errorw("Could not write render", logger.FieldError, err)
		return
	}
	w.log.Infow("Rendered score", logger.FieldFile, w.path, logger.FieldCount, len(resp.Chords))
}
