package clock

import (
	"math/rand"
	"testing"
)

func Test_DropSpawnerCycle(t *testing.T) {
	f := newField(DefZoom)
	rng := rand.New(rand.NewSource(1))
	colors := newColorQueue(DefaultColorPopulation, rng)
	d := dropSpawner{size: 2, interval: 14}

	cycle := 2 * 14
	for c := 0; c < 4; c++ {
		indexBefore := colors.index
		var dropX, drops int
		for i := 0; i < cycle; i++ {
			d.tick(&f, c*cycle+i, colors, rng)
			for x := 0; x < f.Width; x++ {
				if f.Cells[0][x].Liquid() {
					if drops > 0 && x != dropX {
						t.Fatalf("cycle %d: drops at both %d and %d", c, dropX, x)
					}
					dropX = x
					drops++
					if f.Cells[0][x] != colors.current() {
						t.Fatalf("cycle %d: drop color %v, queue says %v", c, f.Cells[0][x], colors.current())
					}
					f.Cells[0][x] = Background
				}
			}
		}
		if drops != 2 {
			t.Fatalf("cycle %d: %d drops, want 2", c, drops)
		}
		lo, hi := f.Width-2-4*DefZoom+1, f.Width-2
		if dropX < lo || dropX > hi {
			t.Fatalf("cycle %d: drop column %d outside [%d,%d]", c, dropX, lo, hi)
		}
		if colors.index != (indexBefore+1)%len(colors.colors) {
			t.Fatalf("cycle %d: color index advanced %d times", c, colors.index-indexBefore)
		}
	}
}

func Test_DropSpawnerAcceleration(t *testing.T) {
	f := newField(DefZoom)
	rng := rand.New(rand.NewSource(1))
	colors := newColorQueue(DefaultColorPopulation, rng)
	d := dropSpawner{size: 2, interval: 14, accel: 7}

	drops := 0
	for i := 0; i < 2*14; i++ {
		d.tick(&f, i, colors, rng)
		for x := 0; x < f.Width; x++ {
			if f.Cells[0][x].Liquid() {
				drops++
				f.Cells[0][x] = Background
			}
		}
	}
	//cycle shrinks to 2*(14-7) ticks, twice the drops in the same span
	if drops != 4 {
		t.Fatalf("%d drops with acceleration, want 4", drops)
	}
}

func Test_DropSpawnerDisabled(t *testing.T) {
	f := newField(DefZoom)
	rng := rand.New(rand.NewSource(1))
	colors := newColorQueue(DefaultColorPopulation, rng)
	d := dropSpawner{size: 0, interval: 14}
	for i := 0; i < 100; i++ {
		d.tick(&f, i, colors, rng)
	}
	for x := 0; x < f.Width; x++ {
		if f.Cells[0][x] != Background {
			t.Fatalf("disabled spawner wrote a drop at %d", x)
		}
	}
}
