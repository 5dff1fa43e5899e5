package clock

import (
	"math/rand"
	"sort"
)

//liquid color ids, matching the palette in the views
const (
	ColorSpray Cell = 8
	ColorWater Cell = 10
	ColorCoral Cell = 11
)

//DefaultColorPopulation weights the drop colors: mostly water,
//some spray, the odd coral droplet
var DefaultColorPopulation = map[Cell]int{
	ColorSpray: 150,
	ColorWater: 850,
	ColorCoral: 1,
}

//colorQueue is the weighted color multiset the spawner consumes.
//Built and shuffled once per session, then read cyclically
type colorQueue struct {
	colors []Cell
	index  int
}

//newColorQueue expands the population table and shuffles it.
//Keys are visited in sorted order so the same seed gives the same queue
func newColorQueue(population map[Cell]int, rng *rand.Rand) *colorQueue {
	keys := make([]int, 0, len(population))
	for c := range population {
		keys = append(keys, int(c))
	}
	sort.Ints(keys)
	q := &colorQueue{}
	for _, k := range keys {
		for i := 0; i < population[Cell(k)]; i++ {
			q.colors = append(q.colors, Cell(k))
		}
	}
	rng.Shuffle(len(q.colors), func(i, j int) {
		q.colors[i], q.colors[j] = q.colors[j], q.colors[i]
	})
	return q
}

func (q *colorQueue) advance() {
	q.index = (q.index + 1) % len(q.colors)
}

func (q *colorQueue) current() Cell {
	return q.colors[q.index]
}
