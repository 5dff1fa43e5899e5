package clock

//sinkholePhase tags the drain state machine: a digit slot is either
//untouched or draining through temporary floor openings
type sinkholePhase int

const (
	sinkholeIdle sinkholePhase = iota
	sinkholeOpening
)

//sinkholeControl delays the redraw of a changed digit: the floor is
//punched open first so the old digit's liquid drains away, and the new
//shape is projected only after the opening period has passed
type sinkholeControl struct {
	phase     sinkholePhase
	countdown int
	positions []int
}

//putSinkhole carves two narrow drains through the slot's floor,
//one pixel column each at the bitmap's outer columns
func putSinkhole(f *Field, pos int) {
	z := f.Zoom
	for _, x := range [2]int{slotX(z, pos) + 1, slotX(z, pos) + 2*z + 1} {
		for y := 6 * z; y < 7*z; y++ {
			if f.Cells[y][x] == Wall {
				f.Cells[y][x] = Background
			}
		}
	}
}

//trigger opens sinkholes for the changed slots and (re)starts the countdown.
//A trigger while already opening keeps the earlier slots pending, so a
//second change inside one opening period cannot leave a floor open forever
func (s *sinkholeControl) trigger(f *Field, changed []int, period int) {
	for _, pos := range changed {
		putSinkhole(f, pos)
		if !s.pending(pos) {
			s.positions = append(s.positions, pos)
		}
	}
	s.phase = sinkholeOpening
	s.countdown = period
}

func (s *sinkholeControl) pending(pos int) bool {
	for _, p := range s.positions {
		if p == pos {
			return true
		}
	}
	return false
}

//tick advances the countdown; when it runs out every pending slot is
//re-projected with its current digit, which also restores the floor
func (s *sinkholeControl) tick(f *Field, digits [4]int) {
	if s.phase != sinkholeOpening {
		return
	}
	s.countdown--
	if s.countdown > 0 {
		return
	}
	for _, pos := range s.positions {
		putDigit(f, pos, digits[pos])
	}
	s.phase = sinkholeIdle
	s.countdown = 0
	s.positions = s.positions[:0]
}
