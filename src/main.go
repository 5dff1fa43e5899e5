package main

import (
	"fmt"
	"strings"

	"github.com/integrii/flaggy"

	"waterclock/src/clock"
	"waterclock/src/view"
)

var views = map[string]func() clock.Viewer{
	"gui": func() clock.Viewer {
		return view.NewViewTerminal()
	},
	"screen": func() clock.Viewer {
		return view.NewViewScreen()
	},
	"plain": func() clock.Viewer {
		return view.NewConsoleOut()
	},
}

type EnvOptions struct {
	viewName   string
	configPath string
}

func main() {
	eo, co := initOptions()

	interactive := eo.viewName != "plain"

	var stateCh chan clock.Status
	if !interactive {
		stateCh = make(chan clock.Status, 10) //the buffered channel to getting the session status
		if co.MaxSteps == 0 {
			co.MaxSteps = 1000
		}
	}

	s := clock.NewSession(co, stateCh)
	v := views[eo.viewName]()
	s.RegisterViewer(v)

	if interactive {
		s.Run()
		v.Start()
		s.Close()
	} else {
		v.Start()
		s.Run()
		for {
			st := <-stateCh
			if st.RunningMode == clock.RunningStateFinished {
				break
			}
		}
		s.Close()
		close(stateCh)
	}
}

func initOptions() (eo *EnvOptions, co *clock.Options) {

	co = &clock.DefaultClockOptions
	viewNames := make([]string, 0, len(views))
	for k := range views {
		viewNames = append(viewNames, k)
	}
	eo = &EnvOptions{viewName: "gui"}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Duration(&co.Interval, "i", "interval", "Tick interval in format the number with 'ms' suffix, for example 50ms")
	flaggy.Int(&co.Accel, "a", "accel", "Speed up the simulated clock by this factor")
	flaggy.Int(&co.DropAccel, "d", "dropAccel", "Shorten the drop spawn cycle by this many ticks")
	flaggy.Int(&co.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps ticks")
	flaggy.Int64(&co.Seed, "", "seed", "Random seed (0 picks one from the clock)")
	flaggy.String(&eo.configPath, "c", "config", "YAML file overriding the simulation tuning")
	flaggy.String(&eo.viewName, "v", "view", "View to use ["+strings.Join(viewNames, "|")+"]")

	flaggy.Parse()

	_, ok := views[eo.viewName]
	if !ok {
		flaggy.ShowHelpAndExit("unknown view")
	}

	if eo.configPath != "" {
		if err := co.LoadFile(eo.configPath); err != nil {
			flaggy.ShowHelpAndExit(fmt.Sprintf("bad config: %v", err))
		}
	}
	if err := co.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	return
}
