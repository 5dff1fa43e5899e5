package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"waterclock/src/clock"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI renders the clock face in a gocui terminal layout.
//The left mouse button paints wall cells, the right one opens them
type ConsoleUI struct {
	c       clock.Clock
	g       *gocui.Gui
	k       []keyBindings
	fillers map[clock.Cell]string
	bgFill  string
}

var (
	runningStateDescr = map[clock.RunningState]string{
		clock.RunningStateManual:   aurora.Colorize("paused", aurora.BlueFg).String(),
		clock.RunningStateStep:     "do the step",
		clock.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		clock.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewViewTerminal() *ConsoleUI {

	var err error
	t := ConsoleUI{
		fillers: map[clock.Cell]string{
			clock.Wall:       aurora.BrightBlack("█").String(),
			clock.ColorSpray: aurora.BrightCyan("█").String(),
			clock.ColorWater: aurora.Blue("█").String(),
			clock.ColorCoral: aurora.Red("█").String(),
		},
		bgFill: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'q',
			"Q",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next tick",
			t.cmdNextTick,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Reset face",
			t.cmdClear,
			""},
		{gocui.MouseLeft,
			"LMB",
			"Set wall",
			t.cmdSetWall,
			"clockface"},
		{gocui.MouseRight,
			"RMB",
			"Open cell",
			t.cmdSetBackground,
			"clockface"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(s *clock.Session) {
	t.c = s
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderFace()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderFace() {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("clockface")
		if e != nil {
			return e
		}
		//the entire face is redrawing at once now
		//this terminal driver allows to redraw only changed chars
		//there is an opportunity to speed up with a selective redraw
		v.Clear()

		f := t.c.Field()
		crop := false
		maxW, maxH := v.Size()
		if f.Width > maxW || f.Height > maxH {
			crop = true
		}

		var b bytes.Buffer

		for y := 0; y < f.Height; y++ {
			if y >= maxH {
				break
			}
			if y != 0 {
				b.WriteByte(10)
			}
			if crop && y == (maxH-1) {
				b.WriteString(aurora.Red("The clock face is larger than the viewing area").BgBlack().String())
				break
			}
			for x := 0; x < f.Width; x++ {
				if x >= maxW {
					break
				}
				c := t.c.DisplayAt(x, y)
				if s, ok := t.fillers[c]; ok {
					b.WriteString(s)
				} else {
					b.WriteString(t.bgFill)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	s := t.c.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Time", "%d%d:%d%d", s.Digits[0], s.Digits[1], s.Digits[2], s.Digits[3]))
			_, _ = fmt.Fprintln(v, t.renderProp("Tick", "%v", s.Tick))
			_, _ = fmt.Fprintln(v, t.renderProp("Liquid cells", "%v", s.LiquidCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		o := t.c.Options()
		f := t.c.Field()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", f.Width, f.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", o.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Acceleration", "x%v", o.Accel))
			_, _ = fmt.Fprintln(v, t.renderProp("Zoom", "%v", o.Zoom))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("clockface")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Water Clock"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("clockface", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Clock Face"
		v.Frame = true
		t.renderFace()
	} else {
		t.renderFace()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextTick(_ *gocui.View) error {
	t.c.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.c.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.c.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.c.Clear()
	return nil
}

func (t *ConsoleUI) cmdSetWall(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.c.SetCell(cx, cy, clock.Wall)
	return nil
}

func (t *ConsoleUI) cmdSetBackground(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.c.SetCell(cx, cy, clock.Background)
	return nil
}
