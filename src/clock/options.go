package clock

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//Options represents the session's configurable options.
//Simulation tuning can be overridden from a YAML file; runtime knobs
//(interval, acceleration, seed) are usually set from the command line
type Options struct {
	Zoom            int           `yaml:"zoom"`
	Interval        time.Duration `yaml:"interval"`
	Accel           int           `yaml:"acceleration"`
	MaxSteps        int           `yaml:"max_steps"`
	MaxSkippedTicks int           `yaml:"max_skipped_ticks"`
	Seed            int64         `yaml:"seed"`

	SinkholePeriod  int          `yaml:"sinkhole_period"`
	MoveInterval    int          `yaml:"move_interval"`
	SepInterval     int          `yaml:"sep_interval"`
	DropSize        int          `yaml:"drop_size"`
	DropInterval    int          `yaml:"drop_interval"`
	DropAccel       int          `yaml:"drop_accel"`
	ColorPopulation map[Cell]int `yaml:"color_population"`
}

//default options
const (
	DefZoom               = 3
	DefSimulationInterval = time.Millisecond * 50
	DefSinkholePeriod     = 30
	DefMaxSkippedTicks    = 5
)

var DefaultClockOptions = Options{
	Zoom:            DefZoom,
	Interval:        DefSimulationInterval,
	Accel:           1,
	MaxSkippedTicks: DefMaxSkippedTicks,
	SinkholePeriod:  DefSinkholePeriod,
	MoveInterval:    DefMoveInterval,
	SepInterval:     DefSepInterval,
	DropSize:        DefDropSize,
	DropInterval:    DefDropInterval,
}

//LoadFile overlays options from a YAML file; keys absent from the file
//keep their current values
func (o *Options) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, o); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return o.Validate()
}

//Validate rejects geometry and timing values the simulation cannot run with
func (o *Options) Validate() error {
	if o.Zoom < 2 {
		return fmt.Errorf("zoom must be at least 2, got %d", o.Zoom)
	}
	if o.Accel < 1 {
		return fmt.Errorf("acceleration must be at least 1, got %d", o.Accel)
	}
	if o.MoveInterval < 1 || o.SepInterval < 1 {
		return fmt.Errorf("move/sep intervals must be positive, got %d/%d", o.MoveInterval, o.SepInterval)
	}
	if o.SinkholePeriod < 1 {
		return fmt.Errorf("sinkhole period must be positive, got %d", o.SinkholePeriod)
	}
	if o.DropSize > 0 && o.DropInterval-o.DropAccel <= 0 {
		return fmt.Errorf("drop interval %d must exceed drop acceleration %d", o.DropInterval, o.DropAccel)
	}
	for c, n := range o.ColorPopulation {
		if !c.Liquid() {
			return fmt.Errorf("color %d is reserved", c)
		}
		if n < 0 {
			return fmt.Errorf("color %d has negative weight %d", c, n)
		}
	}
	return nil
}
