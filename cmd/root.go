package cmd

import (
	"context"
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/articulex/config"
	"github.com/jsphweid/articulex/db"
	"github.com/jsphweid/articulex/logger"
	"github.com/jsphweid/articulex/midi"
	"github.com/jsphweid/articulex/profile"
	"github.com/jsphweid/articulex/score"
	"github.com/jsphweid/articulex/spanner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath string
	settings   = config.New()
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "articulex",
	Short: "Derives chord articulations from scores",
	Long: `articulex works out which articulations affect the performance of each
chord in a score (symbols, ornaments, spanners, annotations and grace notes),
how much of each multi note directive a chord covers, and the averaged
pattern values a renderer applies.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(settings, cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "TOML config file (default ./articulex.toml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("log-json", false, "log JSON lines instead of console output")
	flags.String("profile", "", "articulation profile YAML file")
	flags.String("profile-name", profile.DefaultName, "profile to read from the DynamoDB table")
	flags.String("profile-table", "", "DynamoDB table holding articulation profiles")
	flags.String("dynamodb-endpoint", "", "DynamoDB endpoint, e.g. http://localhost:8000")
	flags.String("dynamodb-region", "", "DynamoDB region")
	flags.Int("workers", 0, "chords rendered at once (0 means no limit)")
	flags.IntSlice("mute-staff", nil, "staff index whose spanners are not played")
	flags.StringSlice("mute-part", nil, "part whose spanners are not played")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func setup(v *viper.Viper, cmd *cobra.Command) error {
	if err := config.ReadFile(v, configPath); err != nil {
		return err
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := logger.Initialize(c.Log.Level, c.Log.JSON); err != nil {
		return err
	}
	cfg = c
	return nil
}

// loadProfile prefers the DynamoDB table, then the profile file, then the
// built-in profile.
func loadProfile(ctx context.Context, c *config.Config) (*profile.Profile, error) {
	switch {
	case c.Profile.Table != "":
		store, err := newStore(c)
		if err != nil {
			return nil, err
		}
		return store.LoadProfile(ctx, c.Profile.Name)
	case c.Profile.Path != "":
		return profile.LoadFile(c.Profile.Path)
	default:
		return profile.Default(), nil
	}
}

func newStore(c *config.Config) (*db.Store, error) {
	return db.NewStore(db.Config{
		Endpoint: c.DynamoDB.Endpoint,
		Region:   c.DynamoDB.Region,
		Table:    c.Profile.Table,
	})
}

func newFilter(c *config.Config) spanner.DefaultFilter {
	return spanner.NewFilter(c.Render.MutedStaves, c.Render.MutedParts)
}

// loadScore reads a score document and, when midiPath is set, takes its
// timing from the tempo track of that MIDI file.
func loadScore(path, midiPath string) (*score.Score, error) {
	s, err := score.Load(path)
	if err != nil {
		return nil, err
	}
	if midiPath == "" {
		return s, nil
	}
	tempo, err := midi.LoadTempoMap(midiPath, s.Division)
	if err != nil {
		return nil, errors.Wrapf(err, "tempo map for %s", path)
	}
	return s.WithTempo(tempo), nil
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return errors.Wrap(enc.Encode(v), "writing json")
}
