package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/rotview/pkg/script"
)

var (
	transformAngle  float64
	transformImage  string
	transformOffset string
	transformRect   string
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Print the rotation transform for a viewport",
	Long: `Builds the viewport rotation for an image of the given size and scroll
offset and prints the pivot, the forward and inverse matrices and,
with --rect, the bounds of a rectangle mapped both ways.`,
	Args: cobra.NoArgs,
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().Float64VarP(&transformAngle, "angle", "a", 0, "rotation in degrees")
	transformCmd.Flags().StringVar(&transformImage, "image", "", "displayed image size WxH (required)")
	transformCmd.Flags().StringVar(&transformOffset, "offset", "0,0", "scroll offset X,Y")
	transformCmd.Flags().StringVar(&transformRect, "rect", "", "rectangle x1,y1,x2,y2 to map")
	transformCmd.MarkFlagRequired("image")
}

func runTransform(cmd *cobra.Command, args []string) error {
	w, h, err := parseSize(transformImage)
	if err != nil {
		return err
	}
	offset, err := parsePoint(transformOffset)
	if err != nil {
		return err
	}

	shell := newShell()
	shell.SetImage(w, h)
	shell.SetOffset(offset.X, offset.Y)
	if err := shell.RotateTo(transformAngle); err != nil {
		return err
	}

	tr := shell.Transform()
	fmt.Printf("Angle: %s\n", script.FormatFloat(shell.Angle()))
	fmt.Printf("Kind: %s\n", tr.Kind())
	if fwd, inv, ok := tr.Matrices(); ok {
		p := tr.Pivot()
		fmt.Printf("Pivot: (%s, %s)\n", script.FormatFloat(p.X), script.FormatFloat(p.Y))
		fmt.Printf("Forward: %s\n", fwd)
		fmt.Printf("Inverse: %s\n", inv)
	}

	if transformRect != "" {
		r, err := parseRect(transformRect)
		if err != nil {
			return err
		}
		rot := shell.Rotation()
		fmt.Printf("Forward bounds: %s -> %s\n", script.FormatRect(r), script.FormatRect(rot.MapBoundsForward(r)))
		fmt.Printf("Inverse bounds: %s -> %s\n", script.FormatRect(r), script.FormatRect(rot.MapBoundsInverse(r)))
	}
	return nil
}
