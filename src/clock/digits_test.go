package clock

import "testing"

//blockIs reports whether the whole Z x Z block (dx, dy) of the slot holds c
func blockIs(f *Field, pos int, dx int, dy int, c Cell) bool {
	z := f.Zoom
	for y := (1 + dy) * z; y < (2+dy)*z; y++ {
		for x := slotX(z, pos) + dx*z; x < slotX(z, pos)+(dx+1)*z; x++ {
			if f.Cells[y][x] != c {
				return false
			}
		}
	}
	return true
}

func Test_PutDigitMatchesPattern(t *testing.T) {
	for digit := 0; digit <= 9; digit++ {
		for pos := 0; pos < 4; pos++ {
			f := newField(DefZoom)
			putDigit(&f, pos, digit)
			for dy := 0; dy < 5; dy++ {
				for dx := 0; dx < 3; dx++ {
					want := Wall
					if digitPatterns[digit][dy][dx] == '1' {
						want = Background
					}
					if !blockIs(&f, pos, dx, dy, want) {
						t.Errorf("digit %d slot %d block (%d,%d): want %v", digit, pos, dx, dy, want)
					}
				}
			}
			//the floor band must be solid wall right after projection
			for y := 6 * DefZoom; y < 7*DefZoom; y++ {
				for x := slotX(DefZoom, pos); x < slotX(DefZoom, pos)+3*DefZoom; x++ {
					if f.Cells[y][x] != Wall {
						t.Fatalf("digit %d slot %d: floor cell (%d,%d) not wall", digit, pos, x, y)
					}
				}
			}
		}
	}
}

func Test_PutDigitIdempotent(t *testing.T) {
	once := newField(DefZoom)
	putDigit(&once, 1, 7)
	twice := newField(DefZoom)
	putDigit(&twice, 1, 7)
	putDigit(&twice, 1, 7)
	once.Walk(func(x int, y int, c Cell) {
		if twice.Cells[y][x] != c {
			t.Fatalf("cell (%d,%d) differs after double projection: %v vs %v", x, y, c, twice.Cells[y][x])
		}
	})
}

func Test_PutDigitOneLeavesNarrowStroke(t *testing.T) {
	f := newField(DefZoom)
	putDigit(&f, 0, 1)
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < 3; dx++ {
			want := Wall
			if dx == 2 {
				want = Background
			}
			if !blockIs(&f, 0, dx, dy, want) {
				t.Errorf("digit 1 block (%d,%d): want %v", dx, dy, want)
			}
		}
	}
}

func Test_PutDigitKeepsLiquidOutsideSlot(t *testing.T) {
	f := newField(DefZoom)
	putDigit(&f, 0, 8)
	//drop a droplet into an open stroke of the neighboring slot
	putDigit(&f, 1, 0)
	x := slotX(DefZoom, 1) + 1
	f.Cells[DefZoom+1][x] = ColorWater
	putDigit(&f, 0, 3)
	if f.Cells[DefZoom+1][x] != ColorWater {
		t.Fatalf("projection into slot 0 touched liquid in slot 1")
	}
}

func Test_PutDigitInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("digit 10 should panic")
		}
	}()
	f := newField(DefZoom)
	putDigit(&f, 0, 10)
}

func Test_ColonDotsCarvedOpen(t *testing.T) {
	f := newField(DefZoom)
	cx := colonX(DefZoom)
	for _, cy := range colonYs(DefZoom) {
		if f.Cells[cy][cx] != Background {
			t.Fatalf("colon dot (%d,%d) not open", cx, cy)
		}
	}
}
