package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/articulex/metaparser"
	"github.com/jsphweid/articulex/rendering"
	"github.com/jsphweid/articulex/score"
	"github.com/spf13/cobra"
)

var (
	inspectStart int
	inspectEnd   int
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectStart, "start", -1, "only list spanners overlapping ticks from start")
	inspectCmd.Flags().IntVar(&inspectEnd, "end", -1, "end of the tick window (defaults to start)")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <score.json>",
	Short: "Inspects the spanner index of a score",
	Long:  `Lists the spanners of a score in start order with the articulation each one yields.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := score.Load(args[0])
		if err != nil {
			return err
		}
		inspect(cmd.OutOrStdout(), s, inspectStart, inspectEnd)
		return nil
	},
}

func inspect(w io.Writer, s *score.Score, start, end int) {
	var intervals []rendering.Interval
	if start < 0 {
		intervals = s.SpannerIndex().All()
	} else {
		if end < start {
			end = start
		}
		intervals = s.SpannerIndex().FindOverlapping(start, end, false)
	}

	fmt.Fprintf(w, "score: %v (%v spanners)\n", s.Title, s.SpannerIndex().Len())
	for _, iv := range intervals {
		sp := iv.Spanner
		fmt.Fprintf(w, "%6d..%-6d %-10v staff %d  %-22v id=%v play=%v\n",
			iv.Start, iv.Stop, sp.Kind, sp.StaffIdx, metaparser.SpannerArticulationType(sp), sp.ID, sp.Play)
	}
}
