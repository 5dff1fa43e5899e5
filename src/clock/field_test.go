package clock

import "testing"

func Test_NewFieldGeometry(t *testing.T) {
	f := newField(DefZoom)
	if f.Width != 51 || f.Height != 21 {
		t.Fatalf("unexpected geometry %dx%d", f.Width, f.Height)
	}
	if len(f.Cells) != f.Height+1 {
		t.Fatalf("missing sentinel row")
	}
	cx := colonX(DefZoom)
	cys := colonYs(DefZoom)
	f.Walk(func(x int, y int, c Cell) {
		want := Wall
		if y < DefZoom || (x == cx && (y == cys[0] || y == cys[1])) {
			want = Background
		}
		if c != want {
			t.Fatalf("cell (%d,%d) = %v, want %v", x, y, c, want)
		}
	})
	for x := 0; x < f.Width; x++ {
		if f.Cells[f.Height][x] != Background {
			t.Fatalf("sentinel cell %d not background", x)
		}
	}
}

func Test_FieldBounds(t *testing.T) {
	f := newField(DefZoom)
	if f.Set(-1, 0, Wall) || f.Set(0, -1, Wall) || f.Set(f.Width, 0, Wall) || f.Set(0, f.Height+1, Wall) {
		t.Fatalf("out-of-range Set not ignored")
	}
	if _, ok := f.Get(f.Width, 0); ok {
		t.Fatalf("out-of-range Get reported ok")
	}
	if !f.Contains(0, f.Height) {
		t.Fatalf("sentinel row must be addressable")
	}
	if !f.Set(5, 5, Background) {
		t.Fatalf("in-range Set rejected")
	}
	if c, ok := f.Get(5, 5); !ok || c != Background {
		t.Fatalf("Get after Set: %v %v", c, ok)
	}
}

func Test_CloneIndependence(t *testing.T) {
	f := newField(DefZoom)
	c := f.Clone()
	f.Cells[0][0] = ColorWater
	if c.Cells[0][0] != Background {
		t.Fatalf("clone shares backing storage")
	}
}
