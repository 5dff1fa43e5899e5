package clock

import "math/rand"

//drop spawning tuning
const (
	DefDropSize     = 2
	DefDropInterval = 14
)

//dropSpawner injects liquid at the top edge in short multi-tick streams.
//Each cycle starts with a fresh column inside the rightmost digit slot
//and one step through the color queue; size <= 0 disables spawning
type dropSpawner struct {
	size     int
	interval int
	accel    int
	x        int
}

//tick possibly writes one liquid cell into row 0 for this frame
func (d *dropSpawner) tick(f *Field, frame int, colors *colorQueue, rng *rand.Rand) {
	if d.size <= 0 {
		return
	}
	cycle := d.size * (d.interval - d.accel)
	if cycle <= 0 {
		return
	}
	t := frame % cycle
	if t >= d.size {
		return
	}
	if t == 0 {
		d.x = f.Width - 2 - rng.Intn(4*f.Zoom)
		colors.advance()
	}
	f.Set(d.x, 0, colors.current())
}
