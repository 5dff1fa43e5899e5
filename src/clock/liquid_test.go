package clock

import "testing"

//pond carves an open box into the wall body for movement tests:
//columns x0..x1, rows y0..y1 become background
func pond(f *Field, x0 int, y0 int, x1 int, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f.Cells[y][x] = Background
		}
	}
}

//noPick never matches a residue, keeping migration/separation out of a test
const noPick = -1

func Test_GravityFall(t *testing.T) {
	f := newField(DefZoom)
	pond(&f, 10, 5, 12, 8)
	f.Cells[5][11] = ColorWater
	stepLiquid(&f, DefMoveInterval, noPick, DefSepInterval, noPick, true)
	if f.Cells[5][11] != Background || f.Cells[6][11] != ColorWater {
		t.Fatalf("droplet did not fall")
	}
}

func Test_LiquidNeverEntersWall(t *testing.T) {
	f := newField(DefZoom)
	pond(&f, 10, 5, 12, 5)
	f.Cells[5][11] = ColorWater
	//walls below and on both diagonals
	for i := 0; i < 64; i++ {
		stepLiquid(&f, DefMoveInterval, i%DefMoveInterval, DefSepInterval, i%DefSepInterval, i%2 == 0)
	}
	if f.Cells[5][11] != ColorWater {
		t.Fatalf("droplet escaped a closed pocket: %v", f.Cells[5][11])
	}
	f.Walk(func(x int, y int, c Cell) {
		if c.Liquid() && !(x == 11 && y == 5) {
			t.Fatalf("liquid leaked into (%d,%d)", x, y)
		}
	})
}

func Test_DiagonalSlide(t *testing.T) {
	f := newField(DefZoom)
	pond(&f, 10, 5, 14, 6)
	f.Cells[6][12] = ColorWater
	f.Cells[5][12] = ColorWater
	stepLiquid(&f, DefMoveInterval, noPick, DefSepInterval, noPick, true)
	//preferX slides the blocked upper droplet down-right
	if f.Cells[6][13] != ColorWater {
		t.Fatalf("blocked droplet did not slide down-right")
	}
	if f.Cells[5][12] != Background {
		t.Fatalf("source cell not emptied")
	}
}

func Test_LateralMigration(t *testing.T) {
	f := newField(DefZoom)
	pond(&f, 10, 5, 13, 5)
	//liquid resting on wall with a liquid neighbor on the left only
	f.Cells[5][10] = ColorWater
	f.Cells[5][11] = ColorWater
	x, y := 11, 5
	stepLiquid(&f, DefMoveInterval, (y+x)%DefMoveInterval, DefSepInterval, noPick, true)
	if f.Cells[5][12] != ColorWater || f.Cells[5][11] != Background {
		t.Fatalf("droplet did not migrate toward the open side")
	}
}

func Test_BoundaryRemoval(t *testing.T) {
	f := newField(DefZoom)
	f.Cells[0][0] = ColorWater
	f.Cells[0][f.Width-1] = ColorSpray
	//bottom row droplet over an open sentinel drains
	f.Cells[f.Height-1][20] = Background
	f.Cells[f.Height-1][20] = ColorCoral
	//sentinel residue gets swept
	f.Cells[f.Height][30] = ColorWater
	removeAtBounds(&f)
	if f.Cells[0][0] != Background || f.Cells[0][f.Width-1] != Background {
		t.Fatalf("edge columns kept liquid")
	}
	if f.Cells[f.Height-1][20] != Background {
		t.Fatalf("unsupported bottom droplet kept")
	}
	if f.Cells[f.Height][30] != Background {
		t.Fatalf("sentinel residue kept")
	}
}

func Test_SeparationForceClamped(t *testing.T) {
	f := newField(DefZoom)
	pond(&f, 10, 5, 16, 8)
	f.Cells[6][13] = ColorWater
	for _, p := range [][2]int{{14, 6}, {15, 6}, {14, 7}, {13, 7}, {13, 8}} {
		f.Cells[p[1]][p[0]] = ColorWater
	}
	wx, wy := separationForce(&f, 13, 6, ColorWater)
	if wx < -1 || wx > 1 || wy < -1 || wy > 1 {
		t.Fatalf("force not clamped: (%d,%d)", wx, wy)
	}
	if wx != 1 || wy != 1 {
		t.Fatalf("force direction (%d,%d), want (1,1)", wx, wy)
	}
}

func Test_SeparationZeroForceNoSwap(t *testing.T) {
	f := newField(DefZoom)
	pond(&f, 10, 5, 16, 8)
	f.Cells[6][13] = ColorWater
	wx, wy := separationForce(&f, 13, 6, ColorWater)
	if wx != 0 || wy != 0 {
		t.Fatalf("lone droplet produced force (%d,%d)", wx, wy)
	}
	liquidSeparate(&f, 13, 6, true)
	if f.Cells[6][13] != ColorWater {
		t.Fatalf("lone droplet moved")
	}
}

func Test_SeparationNeverSwapsIntoBackground(t *testing.T) {
	f := newField(DefZoom)
	pond(&f, 10, 5, 16, 8)
	//same color two cells left, nothing adjacent: force points left
	//but the target cell is background, so nothing may happen
	f.Cells[6][13] = ColorWater
	f.Cells[6][11] = ColorWater
	liquidSeparate(&f, 13, 6, true)
	if f.Cells[6][12] != Background || f.Cells[6][13] != ColorWater {
		t.Fatalf("separation moved into background")
	}
}

func Test_SeparationSwapsDifferentColors(t *testing.T) {
	f := newField(DefZoom)
	pond(&f, 10, 5, 16, 8)
	f.Cells[6][13] = ColorWater
	f.Cells[6][11] = ColorWater
	f.Cells[6][12] = ColorCoral
	liquidSeparate(&f, 13, 6, true)
	if f.Cells[6][12] != ColorWater || f.Cells[6][13] != ColorCoral {
		t.Fatalf("different-colored neighbors not swapped: %v %v", f.Cells[6][12], f.Cells[6][13])
	}
}

func Test_ConservationWithSpawnerDisabled(t *testing.T) {
	now := testClock(12, 34)
	s := newTestSession(t, now, func(o *Options) {
		o.DropSize = 0
	})
	//fill every open stroke of the digits with liquid
	f := &s.field.Field
	for pos := 0; pos < 4; pos++ {
		for y := DefZoom; y < 6*DefZoom; y++ {
			for x := slotX(DefZoom, pos); x < slotX(DefZoom, pos)+3*DefZoom; x++ {
				if f.Cells[y][x] == Background {
					f.Cells[y][x] = ColorWater
				}
			}
		}
	}
	want := f.liquidCells()
	if want == 0 {
		t.Fatalf("no liquid settled")
	}
	for i := 0; i < 200; i++ {
		s.advance(now())
	}
	if got := f.liquidCells(); got != want {
		t.Fatalf("liquid count changed: %d -> %d", want, got)
	}
}
