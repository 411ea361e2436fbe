package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/rotview/pkg/script"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a rotation script",
	Long: `Runs a rotview script against a fresh viewport and prints what its
map, unmap, angle and matrix commands report.

Script commands, one per line ('#' starts a comment):
  image W H            attach an image          detach
  offset X Y           set the scroll offset    pan DX DY
  scale S              set the zoom             zoom X Y FACTOR
  resize W H           resize the screen        fit
  rotate DELTA         rotate-to ANGLE          refresh
  begin-drag           drag LX LY X Y [constrain]
  map X1 Y1 X2 Y2      unmap X1 Y1 X2 Y2
  angle                matrix`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	parser, err := script.NewParser()
	if err != nil {
		return err
	}
	prog, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}
	logger.Debug("script parsed", "file", args[0], "statements", len(prog.Statements))

	return script.Run(cmd.Context(), newShell(), prog, os.Stdout)
}
