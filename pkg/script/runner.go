package script

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/OpenTraceLab/rotview/pkg/display"
	"github.com/OpenTraceLab/rotview/pkg/geom"
)

// command describes one script command
type command struct {
	args      int // required argument count
	constrain bool
	run       func(r *runner, args []float64, constrain bool) error
}

var commands = map[string]command{
	"image":      {args: 2, run: (*runner).image},
	"detach":     {run: func(r *runner, _ []float64, _ bool) error { r.shell.DetachImage(); return nil }},
	"offset":     {args: 2, run: func(r *runner, a []float64, _ bool) error { r.shell.SetOffset(a[0], a[1]); return nil }},
	"pan":        {args: 2, run: func(r *runner, a []float64, _ bool) error { r.shell.Pan(a[0], a[1]); return nil }},
	"scale":      {args: 1, run: func(r *runner, a []float64, _ bool) error { r.shell.SetScale(a[0]); return nil }},
	"zoom":       {args: 3, run: func(r *runner, a []float64, _ bool) error { r.shell.ZoomAt(a[0], a[1], a[2]); return nil }},
	"resize":     {args: 2, run: (*runner).resize},
	"fit":        {run: func(r *runner, _ []float64, _ bool) error { r.shell.Fit(); return nil }},
	"rotate":     {args: 1, run: func(r *runner, a []float64, _ bool) error { return r.shell.Rotate(a[0]) }},
	"rotate-to":  {args: 1, run: func(r *runner, a []float64, _ bool) error { return r.shell.RotateTo(a[0]) }},
	"begin-drag": {run: func(r *runner, _ []float64, _ bool) error { r.shell.BeginDrag(); return nil }},
	"drag":       {args: 4, constrain: true, run: (*runner).drag},
	"refresh":    {run: func(r *runner, _ []float64, _ bool) error { return r.shell.Rotation().RefreshTransform() }},
	"map":        {args: 4, run: (*runner).mapForward},
	"unmap":      {args: 4, run: (*runner).mapInverse},
	"angle":      {run: (*runner).angle},
	"matrix":     {run: (*runner).matrix},
}

type runner struct {
	shell *display.Shell
	out   io.Writer
}

// Run executes prog against shell, writing the output of map, unmap, angle
// and matrix to out. It stops at the first failing statement.
func Run(ctx context.Context, shell *display.Shell, prog *Program, out io.Writer) error {
	r := &runner{shell: shell, out: out}
	for _, st := range prog.Statements {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.exec(st); err != nil {
			return fmt.Errorf("%s: %s: %w", st.Pos, st.Command, err)
		}
	}
	return nil
}

func (r *runner) exec(st *Statement) error {
	cmd, ok := commands[st.Command]
	if !ok {
		return ErrUnknownCommand
	}
	if len(st.Args) != cmd.args {
		return fmt.Errorf("%w: got %d, want %d", ErrArgCount, len(st.Args), cmd.args)
	}
	if st.Constrain && !cmd.constrain {
		return fmt.Errorf("%w: constrain", ErrUnexpectedFlag)
	}
	return cmd.run(r, st.Args, st.Constrain)
}

func (r *runner) image(a []float64, _ bool) error {
	w, h, err := extent(a[0], a[1])
	if err != nil {
		return err
	}
	r.shell.SetImage(w, h)
	return nil
}

func (r *runner) resize(a []float64, _ bool) error {
	w, h, err := extent(a[0], a[1])
	if err != nil {
		return err
	}
	r.shell.Resize(w, h)
	return nil
}

func (r *runner) drag(a []float64, constrain bool) error {
	return r.shell.RotateByDrag(a[0], a[1], a[2], a[3], constrain)
}

func (r *runner) mapForward(a []float64, _ bool) error {
	in := geom.R(a[0], a[1], a[2], a[3])
	out := r.shell.Rotation().MapBoundsForward(in)
	_, err := fmt.Fprintf(r.out, "map %s -> %s\n", FormatRect(in), FormatRect(out))
	return err
}

func (r *runner) mapInverse(a []float64, _ bool) error {
	in := geom.R(a[0], a[1], a[2], a[3])
	out := r.shell.Rotation().MapBoundsInverse(in)
	_, err := fmt.Fprintf(r.out, "unmap %s -> %s\n", FormatRect(in), FormatRect(out))
	return err
}

func (r *runner) angle(_ []float64, _ bool) error {
	st := r.shell.Rotation()
	_, err := fmt.Fprintf(r.out, "angle %s drag %s\n", FormatFloat(st.Angle()), FormatFloat(st.DragAngle()))
	return err
}

func (r *runner) matrix(_ []float64, _ bool) error {
	tr := r.shell.Transform()
	fwd, inv, ok := tr.Matrices()
	if !ok {
		_, err := fmt.Fprintln(r.out, "matrix identity")
		return err
	}
	p := tr.Pivot()
	_, err := fmt.Fprintf(r.out, "matrix pivot (%s, %s) forward %s inverse %s\n",
		FormatFloat(p.X), FormatFloat(p.Y), fwd, inv)
	return err
}

// extent converts two script numbers to a non-negative pixel size
func extent(w, h float64) (int, int, error) {
	if w < 0 || h < 0 || w != math.Trunc(w) || h != math.Trunc(h) {
		return 0, 0, fmt.Errorf("%w: %v x %v", ErrBadExtent, w, h)
	}
	return int(w), int(h), nil
}

// FormatFloat prints v with three decimals. Values that would print as
// -0.000 print as 0.000.
func FormatFloat(v float64) string {
	if math.Abs(v) < 5e-4 {
		v = 0
	}
	return fmt.Sprintf("%.3f", v)
}

// FormatRect prints r as (x1, y1, x2, y2)
func FormatRect(r geom.Rect) string {
	return fmt.Sprintf("(%s, %s, %s, %s)",
		FormatFloat(r.X1), FormatFloat(r.Y1), FormatFloat(r.X2), FormatFloat(r.Y2))
}
