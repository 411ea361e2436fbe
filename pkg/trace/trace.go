// Package trace records and replays rotation drags as CSV.
//
// A trace is a list of pointer samples taken while the user drags around
// the view's pivot. Replaying it against a shell yields one Result row per
// sample with the delta swept and the angles that followed.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/OpenTraceLab/rotview/pkg/display"
)

// ErrEmpty is returned when a trace holds no samples
var ErrEmpty = errors.New("trace: no samples")

// Sample is one pointer position of a drag, in screen pixels
type Sample struct {
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Constrain bool    `csv:"constrain"`
}

// Result is the shell state after one sample was applied
type Result struct {
	Step      int     `csv:"step"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Delta     float64 `csv:"delta"`
	DragAngle float64 `csv:"drag_angle"`
	Angle     float64 `csv:"angle"`
}

// ReadSamples decodes a trace with an x,y,constrain header
func ReadSamples(r io.Reader) ([]Sample, error) {
	var samples []Sample
	if err := gocsv.Unmarshal(r, &samples); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	if len(samples) == 0 {
		return nil, ErrEmpty
	}
	return samples, nil
}

// WriteResults encodes rows with a header line
func WriteResults(w io.Writer, rows []Result) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// Replay starts a drag at the first sample and feeds every following
// sample to shell.RotateByDrag. Row 0 describes the starting state.
func Replay(shell *display.Shell, samples []Sample) ([]Result, error) {
	if len(samples) == 0 {
		return nil, ErrEmpty
	}

	shell.BeginDrag()
	rot := shell.Rotation()

	rows := make([]Result, 0, len(samples))
	rows = append(rows, Result{
		X:         samples[0].X,
		Y:         samples[0].Y,
		DragAngle: rot.DragAngle(),
		Angle:     rot.Angle(),
	})

	for i := 1; i < len(samples); i++ {
		last, cur := samples[i-1], samples[i]
		if err := shell.RotateByDrag(last.X, last.Y, cur.X, cur.Y, cur.Constrain); err != nil {
			return rows, fmt.Errorf("step %d: %w", i, err)
		}
		rows = append(rows, Result{
			Step:      i,
			X:         cur.X,
			Y:         cur.Y,
			Delta:     rot.DragDelta(),
			DragAngle: rot.DragAngle(),
			Angle:     rot.Angle(),
		})
	}
	return rows, nil
}
