package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/rotview/pkg/trace"
)

var (
	replayImage  string
	replayOffset string
	replayOutput string
)

var replayCmd = &cobra.Command{
	Use:   "replay <trace.csv>",
	Short: "Replay a recorded rotation drag",
	Long: `Replays pointer samples (CSV with x,y,constrain columns) as one rotation
drag and writes step,x,y,delta,drag_angle,angle rows as CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replayImage, "image", "", "displayed image size WxH (required)")
	replayCmd.Flags().StringVar(&replayOffset, "offset", "0,0", "scroll offset X,Y")
	replayCmd.Flags().StringVarP(&replayOutput, "output", "o", "", "write results to file instead of stdout")
	replayCmd.MarkFlagRequired("image")
}

func runReplay(cmd *cobra.Command, args []string) error {
	w, h, err := parseSize(replayImage)
	if err != nil {
		return err
	}
	offset, err := parsePoint(replayOffset)
	if err != nil {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open trace: %w", err)
	}
	defer in.Close()

	samples, err := trace.ReadSamples(in)
	if err != nil {
		return err
	}

	shell := newShell()
	shell.SetImage(w, h)
	shell.SetOffset(offset.X, offset.Y)

	rows, err := trace.Replay(shell, samples)
	if err != nil {
		return err
	}

	if replayOutput == "" {
		return trace.WriteResults(os.Stdout, rows)
	}

	out, err := os.Create(replayOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", replayOutput, err)
	}
	if err := trace.WriteResults(out, rows); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote %d rows to %s (final angle %.3f)\n", len(rows), replayOutput, shell.Angle())
	return nil
}
