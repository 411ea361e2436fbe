package geom

import "testing"

func TestCornersOrder(t *testing.T) {
	c := R(1, 2, 3, 4).Corners()
	want := [4]Point{{1, 2}, {1, 4}, {3, 2}, {3, 4}}
	if c != want {
		t.Fatalf("Corners() = %v, want %v", c, want)
	}
}

func TestCanon(t *testing.T) {
	got := R(10, 8, -2, 3).Canon()
	want := R(-2, 3, 10, 8)
	if got != want {
		t.Fatalf("Canon() = %v, want %v", got, want)
	}
	if w := got.Width(); w != 12 {
		t.Errorf("Width() = %v, want 12", w)
	}
	if h := got.Height(); h != 5 {
		t.Errorf("Height() = %v, want 5", h)
	}
	if c := got.Center(); c != Pt(4, 5.5) {
		t.Errorf("Center() = %v, want (4, 5.5)", c)
	}
}

func TestEnclose(t *testing.T) {
	got := Enclose(Pt(3, -1), Pt(-4, 2), Pt(0, 7))
	want := R(-4, -1, 3, 7)
	if got != want {
		t.Fatalf("Enclose() = %v, want %v", got, want)
	}

	if got := Enclose(); got != (Rect{}) {
		t.Fatalf("Enclose() of nothing = %v, want zero Rect", got)
	}
}

func TestContains(t *testing.T) {
	outer := R(0, 0, 10, 10)
	cases := []struct {
		inner Rect
		tol   float64
		want  bool
	}{
		{R(1, 1, 9, 9), 0, true},
		{R(0, 0, 10, 10), 0, true},
		{R(-0.001, 0, 10, 10), 0, false},
		{R(-0.001, 0, 10, 10), 0.01, true},
		{R(9, 9, 11, 11), 0, false},
	}
	for _, tc := range cases {
		if got := outer.Contains(tc.inner, tc.tol); got != tc.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tc.inner, tc.tol, got, tc.want)
		}
	}
}

func TestConversions(t *testing.T) {
	p := Pt(1.5, -2)
	if v := p.Vec(); v.X != 1.5 || v.Y != -2 {
		t.Fatalf("Vec() = %v, want (1.5, -2)", v)
	}
	if back := FromF32(p.F32()); back != p {
		t.Fatalf("FromF32(F32()) = %v, want %v", back, p)
	}
	if got := p.Add(Pt(1, 1)).Sub(Pt(1, 1)); got != p {
		t.Fatalf("Add/Sub round trip = %v, want %v", got, p)
	}
}
