package view

import (
	"fmt"
	"time"

	"waterclock/src/clock"
)

//ConsoleOut is the non-interactive viewer: it prints the running
//configuration once and progress lines while the session ticks
type ConsoleOut struct {
	c         clock.Clock
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Refresh() {
	st := c.c.Status()
	if st.RunningMode == clock.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Println("\nFinished:")
		fmt.Printf("  Last tick: %v\n", st.Tick)
		fmt.Printf("  Total time: %v\n", totalTime)
		fmt.Printf("  Liquid cells: %v\n", st.LiquidCells)
	} else if st.RunningMode == clock.RunningStateRun {
		if st.Tick%100 == 0 {
			fmt.Printf("  Tick %v, displaying %d%d:%d%d, %v liquid cells\n",
				st.Tick, st.Digits[0], st.Digits[1], st.Digits[2], st.Digits[3], st.LiquidCells)
		}
	}
}

func (c *ConsoleOut) Register(s *clock.Session) {
	c.c = s
	o := c.c.Options()
	f := c.c.Field()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", f.Width, f.Height)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Acceleration: x%v\n", o.Accel)
	fmt.Printf("  Max ticks: %v\n", o.MaxSteps)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nWater clock started...")
}
