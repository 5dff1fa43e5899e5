package clock

//liquid movement tuning
const (
	DefMoveInterval = 4
	DefSepInterval  = 120
)

//removeAtBounds drains liquid out of the system: the outermost columns
//always swallow liquid, the bottom row drains wherever the sentinel row
//below it is open, and any liquid that fell into the sentinel row itself
//is swept so the sentinel stays background
func removeAtBounds(f *Field) {
	for y := 0; y < f.Height; y++ {
		if f.Cells[y][0].Liquid() {
			f.Cells[y][0] = Background
		}
		if f.Cells[y][f.Width-1].Liquid() {
			f.Cells[y][f.Width-1] = Background
		}
	}
	bottom := f.Cells[f.Height-1]
	sentinel := f.Cells[f.Height]
	for x := 0; x < f.Width; x++ {
		if sentinel[x] == Background {
			if bottom[x].Liquid() {
				bottom[x] = Background
			}
		} else if sentinel[x] != Wall {
			sentinel[x] = Background
		}
	}
}

//stepLiquid runs one tick of the cellular automaton over the whole grid,
//scanning rows bottom to top and skipping the outermost columns.
//Per cell: gravity fall, then a diagonal slide when blocked by liquid
//(one direction per tick, chosen by preferX), then either lateral
//migration or separation depending on which residue class fired
func stepLiquid(f *Field, moveInterval int, movePick int, sepInterval int, sepPick int, preferX bool) {
	for y := f.Height; y >= 0; y-- {
		row := f.Cells[y]
		for x := 1; x < f.Width-1; x++ {
			if row[x].Liquid() && y+1 <= f.Height {
				below := f.Cells[y+1]
				if below[x].free() {
					below[x], row[x] = row[x], Background
				} else if below[x].Liquid() {
					if preferX {
						if below[x+1].free() {
							below[x+1], row[x] = row[x], Background
						}
					} else {
						if below[x-1].free() {
							below[x-1], row[x] = row[x], Background
						}
					}
				}
			}
			c := row[x]
			if !c.Liquid() {
				continue
			}
			if moveInterval > 0 && (y+x)%moveInterval == movePick {
				//drift away from a blocked side into an open one
				if row[x-1] != Background && row[x+1].free() {
					row[x+1], row[x] = c, Background
				} else if row[x+1] != Background && row[x-1].free() {
					row[x-1], row[x] = c, Background
				}
			} else if sepInterval > 0 && (y+x)%sepInterval == sepPick {
				liquidSeparate(f, x, y, preferX)
			}
		}
	}
}

//separationForce samples the diamond of Manhattan distance 1..3 around
//(x, y) and sums the offsets of cells holding the same color. The sign
//of each axis gives a unit step toward the denser side
func separationForce(f *Field, x int, y int, c Cell) (wx int, wy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dist := abs(dx) + abs(dy)
			if dist < 1 || dist > 3 {
				continue
			}
			if n, ok := f.Get(x+dx, y+dy); ok && n == c {
				wx += dx
				wy += dy
			}
		}
	}
	return clampUnit(wx), clampUnit(wy)
}

//liquidSeparate nudges a droplet apart from same-colored neighbors by
//swapping it with an adjacent liquid cell along the force direction.
//The swap target must itself be liquid: moving into background is
//gravity's job, separation only reshuffles occupied cells
func liquidSeparate(f *Field, x int, y int, preferX bool) {
	c := f.Cells[y][x]
	if !c.Liquid() {
		return
	}
	wx, wy := separationForce(f, x, y, c)
	swap := func(tx int, ty int) bool {
		n, ok := f.Get(tx, ty)
		if !ok || !n.Liquid() {
			return false
		}
		f.Cells[ty][tx], f.Cells[y][x] = c, n
		return true
	}
	if preferX {
		if !(wx != 0 && swap(x+wx, y)) && wy != 0 {
			swap(x, y+wy)
		}
	} else {
		if !(wy != 0 && swap(x, y+wy)) && wx != 0 {
			swap(x+wx, y)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampUnit(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
