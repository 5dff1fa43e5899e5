package clock

import (
	"math/rand"
	"sync"
	"time"
)

//Status represents the status of the session at concrete moment
type Status struct {
	Tick        int
	RunningMode RunningState
	LiquidCells int
	StepTime    time.Duration
	Digits      [4]int
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the session
type Viewer interface {
	Refresh()
	Register(s *Session)
	Start()
}

//The session running status at the concrete moment
type RunningState int

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

//Session owns the whole water clock simulation: the grid, the ghosting
//snapshots, the digit and sinkhole state, the pick and color queues and
//the random source every shuffle draws from.
//implements Clock interface
//All mutation happens on the control goroutine, one synchronous step at a time
type Session struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	field struct {
		Field
		sync.Mutex
	}
	prev []Field

	rng       *rand.Rand
	colors    *colorQueue
	movePicks pickQueue
	sepPicks  pickQueue
	holes     sinkholeControl
	drops     dropSpawner

	now   func() time.Time
	start time.Time

	stateCh   chan Status
	views     []Viewer
	controlCh chan func()
	closeCh   chan bool
}

//NewSession creates a Session ticking against the local wall clock
func NewSession(o *Options, stateCh chan Status) *Session {
	return newSession(o, stateCh, time.Now)
}

//newSession allows tests to supply their own time source
func newSession(o *Options, stateCh chan Status, now func() time.Time) *Session {
	if o == nil {
		o = &DefaultClockOptions
	}
	seed := o.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}
	population := o.ColorPopulation
	if len(population) == 0 {
		population = DefaultColorPopulation
	}

	s := Session{
		options:   *o,
		rng:       rand.New(rand.NewSource(seed)),
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
		now:       now,
		start:     now(),
	}
	s.colors = newColorQueue(population, s.rng)
	s.movePicks.interval = o.MoveInterval
	s.sepPicks.interval = o.SepInterval
	s.drops = dropSpawner{size: o.DropSize, interval: o.DropInterval, accel: o.DropAccel}

	s.field.Field = newField(o.Zoom)
	s.state.Digits = clockDigits(s.simNow())
	for pos, d := range s.state.Digits {
		putDigit(&s.field.Field, pos, d)
	}

	s.refreshView()
	go s.mainLoop()
	return &s
}

//clockDigits splits a time into the four displayed digits
func clockDigits(t time.Time) [4]int {
	h, m := t.Hour(), t.Minute()
	return [4]int{h / 10, h % 10, m / 10, m % 10}
}

//simNow returns the simulated time: wall clock, optionally sped up by
//the acceleration factor relative to session start
func (s *Session) simNow() time.Time {
	if s.options.Accel <= 1 {
		return s.now()
	}
	elapsed := s.now().Sub(s.start)
	return s.start.Add(elapsed * time.Duration(s.options.Accel))
}

//RegisterViewer registers the viewer - the session will call the viewer when the state is changed
func (s *Session) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel with the session's status updates
func (s *Session) StateCh() chan Status {
	return s.stateCh
}

//Status returns current session status represented by Status struct
func (s *Session) Status() Status {
	return s.state.Status
}

//Options returns current session configuration represented by Options struct
func (s *Session) Options() Options {
	return s.options
}

//Field returns the live grid
func (s *Session) Field() Field {
	return s.field.Field
}

//DisplayAt returns the cell for rendering: a background cell borrows the
//liquid color it held in the most recent snapshot, newest first, so a
//falling droplet leaves a short trail. Simulation state is never touched
func (s *Session) DisplayAt(x int, y int) Cell {
	c, ok := s.field.Get(x, y)
	if !ok {
		return Background
	}
	if c != Background {
		return c
	}
	for i := len(s.prev) - 1; i >= 0; i-- {
		if p := s.prev[i].Cells[y][x]; p.Liquid() {
			return p
		}
	}
	return Background
}

//SetCell sets the cell at x, y to wall or background, for manual editing
//of the clock face; other values and out-of-range coordinates are ignored.
//The sentinel row is not editable
func (s *Session) SetCell(x int, y int, c Cell) {
	if c != Wall && c != Background {
		return
	}
	if y >= s.field.Height {
		return
	}
	s.field.Lock()
	changed := s.field.Set(x, y, c)
	s.field.Unlock()
	if changed {
		s.refreshView()
	}
}

//Run starts the clock simulation, returns immediately
func (s *Session) Run() {
	s.controlCh <- s.run
}

//Stop stops the clock simulation, returns immediately
//the Status struct will be written to the stateCh on finish
func (s *Session) Stop() {
	s.controlCh <- s.stop
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (s *Session) Step() {
	s.controlCh <- s.step
}

//Clear resets the face geometry, drops all liquid and re-projects the
//current time, returns immediately
func (s *Session) Clear() {
	s.controlCh <- s.clear
}

//Close stops the main loop, close the channels, returns immediately
func (s *Session) Close() {
	s.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (s *Session) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case c = <-s.closeCh:

		}
	}
	close(s.closeCh)
	close(s.controlCh)
}

//switchRunningState switch the state of the session to RunningState
//also writes the new state to the stateCh to signal upper control software
func (s *Session) switchRunningState(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	st := s.state.Status
	s.state.Unlock()
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

//run starts the ticking cycle
//the cycle stops on Stop() calling or when MaxSteps is reached
func (s *Session) run() {
	go func() {
		s.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		accel := s.options.Accel
		if accel < 1 {
			accel = 1
		}
		interval := s.options.Interval / time.Duration(accel)
		for {
			mode := s.state.RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > s.options.MaxSkippedTicks {
				s.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the session is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				s.controlCh <- func() {
					s.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if interval > 0 {
				time.Sleep(interval)
			}
		}
	}()
}

//stop stops the running cycle
func (s *Session) stop() {
	if s.state.RunningMode == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step advances the clock by one tick
func (s *Session) step() {
	finished := false
	rm := s.state.RunningMode
	maxSteps := s.options.MaxSteps
	defer func() {
		if finished {
			s.switchRunningState(RunningStateFinished)
		} else {
			s.switchRunningState(rm)
		}
		s.refreshView()
	}()

	if maxSteps != 0 && s.state.Tick >= maxSteps {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)
	s.advance(s.simNow())
}

//advance is the synchronous tick body: snapshot for ghosting, then the
//grid update for the given simulated time
func (s *Session) advance(now time.Time) {
	start := time.Now()
	s.field.Lock()
	defer s.field.Unlock()

	s.pushSnapshot()
	s.state.Tick++
	s.fieldUpdate(now)
	s.updateColon(now)

	s.state.LiquidCells = s.field.liquidCells()
	s.state.StepTime = time.Since(start)
}

//fieldUpdate runs one tick over the grid in the fixed order:
//digit-change detection and sinkholes, delayed digit projection,
//boundary removal, the liquid scan, and finally the drop spawner
func (s *Session) fieldUpdate(now time.Time) {
	f := &s.field.Field

	ds := clockDigits(now)
	if ds != s.state.Digits {
		changed := make([]int, 0, 4)
		for pos := range ds {
			if ds[pos] != s.state.Digits[pos] {
				changed = append(changed, pos)
			}
		}
		s.holes.trigger(f, changed, s.options.SinkholePeriod)
		s.state.Digits = ds
	}
	s.holes.tick(f, s.state.Digits)

	removeAtBounds(f)

	movePick := s.movePicks.next(s.rng)
	sepPick := s.sepPicks.next(s.rng)
	preferX := s.rng.Intn(2) == 0
	stepLiquid(f, s.options.MoveInterval, movePick, s.options.SepInterval, sepPick, preferX)

	s.drops.tick(f, s.state.Tick, s.colors, s.rng)
}

//updateColon blinks the colon dots on a three second cadence.
//Only wall/background flips happen here, a droplet passing through the
//dot is overwritten when the blink turns on
func (s *Session) updateColon(now time.Time) {
	f := &s.field.Field
	cx := colonX(f.Zoom)
	on := now.Second()%6 < 3
	for _, cy := range colonYs(f.Zoom) {
		if on {
			if f.Cells[cy][cx] != Wall {
				f.Cells[cy][cx] = Wall
			}
		} else {
			if f.Cells[cy][cx] == Wall {
				f.Cells[cy][cx] = Background
			}
		}
	}
}

//pushSnapshot retains the two most recent completed grids for ghosting
func (s *Session) pushSnapshot() {
	s.prev = append(s.prev, s.field.Clone())
	if len(s.prev) > 2 {
		copy(s.prev, s.prev[1:])
		s.prev = s.prev[:2]
	}
}

//clear rebuilds the face from scratch and re-projects the current time
func (s *Session) clear() {
	s.state.Lock()
	s.field.Lock()

	s.state.Tick = 0
	s.state.LiquidCells = 0
	s.field.Field = newField(s.options.Zoom)
	s.prev = nil
	s.holes = sinkholeControl{}
	s.state.Digits = clockDigits(s.simNow())
	for pos, d := range s.state.Digits {
		putDigit(&s.field.Field, pos, d)
	}
	s.state.RunningMode = RunningStateManual

	s.field.Unlock()
	s.state.Unlock()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

//refreshView calls Refresh event for all registered views
func (s *Session) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
