package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/articulex/bucket"
	"github.com/jsphweid/articulex/chord"
	"github.com/jsphweid/articulex/logger"
	"github.com/jsphweid/articulex/util"
	"github.com/spf13/cobra"
)

var reportMax int

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVar(&reportMax, "max", 0, "read at most this many scores (0 means all)")
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Creates a report",
	Long:  `Renders every *.score.json file below dir and counts the chords carrying each articulation type, per staff and overall.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := util.GatherAllScorePaths(args[0], reportMax)
		if err != nil {
			return err
		}
		p, err := loadProfile(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		log := logger.ComponentLogger("report")
		results := bucket.ProcessAllScoreFiles(cmd.Context(), paths, chord.NewParser(log), p, newFilter(cfg), cfg.Render.Workers, log)
		report(cmd.OutOrStdout(), len(paths), results)
		return nil
	},
}

func report(w io.Writer, numFiles int, results []bucket.ScoreResult) {
	total := make(bucket.TypeCounts)
	var chordsPerScore []int
	for _, r := range results {
		fmt.Fprintf(w, "%v\n", r.Title)
		var chords int
		for _, b := range r.Buckets {
			counts := b.TypeCounts()
			chords += len(b.Chords)
			fmt.Fprintf(w, "  staff %d: %d chords\n", b.Staff, len(b.Chords))
			writeCounts(w, "    ", counts)
			bucket.Merge(total, counts)
		}
		chordsPerScore = append(chordsPerScore, chords)
	}

	fmt.Fprintf(w, "scores: %v of %v rendered\n", len(results), numFiles)
	fmt.Fprintf(w, "chords: %v\n", util.Sum(chordsPerScore))
	writeCounts(w, "  ", total)
}

func writeCounts(w io.Writer, indent string, counts bucket.TypeCounts) {
	for _, t := range util.GetKeys(counts) {
		fmt.Fprintf(w, "%s%-24v %d\n", indent, t, counts[t])
	}
}
