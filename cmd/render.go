package cmd

import (
	"context"

	"github.com/jsphweid/articulex/chord"
	"github.com/jsphweid/articulex/logger"
	"github.com/jsphweid/articulex/model"
	"github.com/jsphweid/articulex/profile"
	"github.com/jsphweid/articulex/rendering"
	"github.com/jsphweid/articulex/score"
	"github.com/spf13/cobra"
)

var (
	renderMidiPath string
	renderPretty   bool
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderMidiPath, "midi", "", "MIDI file whose tempo track times the score")
	renderCmd.Flags().BoolVar(&renderPretty, "pretty", false, "indent the JSON output")
}

var renderCmd = &cobra.Command{
	Use:   "render <score.json>",
	Short: "Renders the articulations of every chord in a score",
	Long:  `Renders the articulations of every chord in a score and prints them as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScore(args[0], renderMidiPath)
		if err != nil {
			return err
		}
		p, err := loadProfile(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		parser := chord.NewParser(logger.ComponentLogger("chord"))
		resp, err := renderScore(cmd.Context(), parser, s, p, newFilter(cfg), cfg.Render.Workers)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), resp, renderPretty)
	},
}

func renderScore(ctx context.Context, parser *chord.Parser, s *score.Score, p *profile.Profile, filter rendering.Filter, workers int) (model.RenderResponse, error) {
	rendered, err := parser.RenderScore(ctx, s, p, filter, workers)
	if err != nil {
		return model.RenderResponse{}, err
	}
	return model.RenderResponse{Title: s.Title, Profile: p.Name, Chords: chord.Results(rendered)}, nil
}
