package clock

import "math/rand"

//pickQueue schedules which (y+x) residue class acts on a given tick.
//The buffer holds several copies of every residue 0..interval-1 in a
//shuffled order, so over one fill every class fires equally often while
//the tick-to-tick order stays unpredictable
type pickQueue struct {
	interval int
	picks    []int
}

const picksPerResidue = 5

//next pops the tick's pick, refilling and reshuffling when the buffer is empty
func (p *pickQueue) next(rng *rand.Rand) int {
	if len(p.picks) == 0 {
		if p.interval <= 0 {
			return 0
		}
		for i := 0; i < p.interval; i++ {
			for j := 0; j < picksPerResidue; j++ {
				p.picks = append(p.picks, i)
			}
		}
		rng.Shuffle(len(p.picks), func(i, j int) {
			p.picks[i], p.picks[j] = p.picks[j], p.picks[i]
		})
	}
	pick := p.picks[len(p.picks)-1]
	p.picks = p.picks[:len(p.picks)-1]
	return pick
}
