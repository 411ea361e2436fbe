package trace

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/OpenTraceLab/rotview/pkg/display"
)

const tol = 1e-9

func newShell() *display.Shell {
	s := display.New(display.Options{ScreenWidth: 400, ScreenHeight: 400})
	s.SetImage(200, 200) // pivot at (100, 100)
	return s
}

func TestReadSamples(t *testing.T) {
	in := "x,y,constrain\n200,100,false\n100,200,true\n"
	samples, err := ReadSamples(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadSamples() returned error: %v", err)
	}
	want := []Sample{{200, 100, false}, {100, 200, true}}
	if len(samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(samples), len(want))
	}
	for i := range want {
		if samples[i] != want[i] {
			t.Errorf("sample %d = %+v, want %+v", i, samples[i], want[i])
		}
	}
}

func TestReadSamplesEmpty(t *testing.T) {
	_, err := ReadSamples(strings.NewReader("x,y,constrain\n"))
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("ReadSamples() error = %v, want ErrEmpty", err)
	}
}

func TestReplayQuarterTurn(t *testing.T) {
	// right of the pivot, below it, left of it: two clockwise quarter turns
	samples := []Sample{
		{X: 200, Y: 100},
		{X: 100, Y: 200},
		{X: 0, Y: 100},
	}
	rows, err := Replay(newShell(), samples)
	if err != nil {
		t.Fatalf("Replay() returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	wantAngles := []float64{0, 90, 180}
	for i, want := range wantAngles {
		if rows[i].Step != i {
			t.Errorf("row %d step = %d", i, rows[i].Step)
		}
		if !scalar.EqualWithinAbs(rows[i].Angle, want, tol) {
			t.Errorf("row %d angle = %v, want %v", i, rows[i].Angle, want)
		}
	}
	if !scalar.EqualWithinAbs(rows[1].Delta, 90, tol) {
		t.Errorf("row 1 delta = %v, want 90", rows[1].Delta)
	}
}

func TestReplayConstrain(t *testing.T) {
	// 37 degrees past the x axis, constrained to the 15 degree grid
	samples := []Sample{
		{X: 200, Y: 100},
		{X: 100 + 100*0.7986355100472928, Y: 100 + 100*0.6018150231520483, Constrain: true},
	}
	rows, err := Replay(newShell(), samples)
	if err != nil {
		t.Fatalf("Replay() returned error: %v", err)
	}
	last := rows[len(rows)-1]
	if !scalar.EqualWithinAbs(last.DragAngle, 37, 1e-6) {
		t.Errorf("drag angle = %v, want 37", last.DragAngle)
	}
	if last.Angle != 30 {
		t.Errorf("angle = %v, want 30", last.Angle)
	}
}

func TestReplayContinuesFromAngle(t *testing.T) {
	s := newShell()
	if err := s.RotateTo(350); err != nil {
		t.Fatal(err)
	}
	rows, err := Replay(s, []Sample{{X: 200, Y: 100}, {X: 100, Y: 200}})
	if err != nil {
		t.Fatalf("Replay() returned error: %v", err)
	}
	if rows[0].Angle != 350 || rows[0].DragAngle != 350 {
		t.Errorf("row 0 = %+v, want angles at 350", rows[0])
	}
	if !scalar.EqualWithinAbs(rows[1].Angle, 80, tol) {
		t.Errorf("angle = %v, want 80", rows[1].Angle)
	}
	if !scalar.EqualWithinAbs(rows[1].Delta, 90, tol) {
		t.Errorf("delta across 0 = %v, want 90", rows[1].Delta)
	}
}

func TestReplayHalfTurnDelta(t *testing.T) {
	// straight across the pivot: the step reports +180, not -180
	rows, err := Replay(newShell(), []Sample{{X: 200, Y: 100}, {X: 0, Y: 100}})
	if err != nil {
		t.Fatalf("Replay() returned error: %v", err)
	}
	if rows[1].Delta != 180 {
		t.Errorf("delta = %v, want 180", rows[1].Delta)
	}
	if !scalar.EqualWithinAbs(rows[1].Angle, 180, tol) {
		t.Errorf("angle = %v, want 180", rows[1].Angle)
	}
}

func TestReplayEmpty(t *testing.T) {
	if _, err := Replay(newShell(), nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Replay(nil) error = %v, want ErrEmpty", err)
	}
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	rows := []Result{{Step: 1, X: 2, Y: 3, Delta: 4.5, DragAngle: 5, Angle: 0}}
	if err := WriteResults(&buf, rows); err != nil {
		t.Fatalf("WriteResults() returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != "step,x,y,delta,drag_angle,angle" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "1,2,3,4.5,5,0" {
		t.Errorf("row = %q", lines[1])
	}
}
