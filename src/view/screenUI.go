package view

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"waterclock/src/clock"
)

//background is light gray, walls near black, liquids in water tones
var palette = map[clock.Cell]tcell.Color{
	clock.Background: tcell.NewRGBColor(0xC0, 0xC0, 0xC0),
	clock.ColorSpray: tcell.NewRGBColor(0x84, 0xC2, 0xDA),
	clock.ColorWater: tcell.NewRGBColor(0x4C, 0xA4, 0xC4),
	clock.ColorCoral: tcell.NewRGBColor(0xF3, 0x8C, 0x79),
	clock.Wall:       tcell.NewRGBColor(0x20, 0x20, 0x20),
}

//ScreenUI is the tcell front-end. It paints every grid cell as a pair of
//terminal cells, centers the face and redraws on its own ticker instead
//of reacting to session refresh events
type ScreenUI struct {
	c      clock.Clock
	screen tcell.Screen
	styles map[clock.Cell]tcell.Style
}

func NewViewScreen() *ScreenUI {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Panicln(err)
	}
	if err := screen.Init(); err != nil {
		log.Panicln(err)
	}
	styles := make(map[clock.Cell]tcell.Style, len(palette))
	for c, color := range palette {
		styles[c] = tcell.StyleDefault.Background(color)
	}
	return &ScreenUI{screen: screen, styles: styles}
}

func (u *ScreenUI) Register(s *clock.Session) {
	u.c = s
}

//Refresh is a no-op: the screen redraws on its own ticker
func (u *ScreenUI) Refresh() {}

func (u *ScreenUI) Start() {
	defer u.screen.Fini()
	u.screen.EnableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	o := u.c.Options()
	ticker := time.NewTicker(o.Interval / time.Duration(o.Accel))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !u.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			u.draw()
		}
	}
}

//offsets centers the face on the terminal; every grid cell takes two
//columns when the terminal is wide enough
func (u *ScreenUI) offsets() (offsetX int, offsetY int, horzScale int) {
	f := u.c.Field()
	maxX, maxY := u.screen.Size()
	horzScale = 1
	if maxX >= f.Width*2 {
		horzScale = 2
	}
	if maxX >= f.Width*horzScale {
		offsetX = (maxX - f.Width*horzScale) / 2
	}
	if maxY >= f.Height {
		offsetY = (maxY - f.Height) / 2
	}
	return
}

func (u *ScreenUI) draw() {
	u.screen.Clear()
	f := u.c.Field()
	offsetX, offsetY, horzScale := u.offsets()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			style, ok := u.styles[u.c.DisplayAt(x, y)]
			if !ok {
				style = u.styles[clock.Background]
			}
			for i := 0; i < horzScale; i++ {
				u.screen.SetContent(offsetX+x*horzScale+i, offsetY+y, ' ', nil, style)
			}
		}
	}
	u.screen.Show()
}

//editAt maps a terminal position back to a grid cell and edits it;
//positions outside the face are ignored by the session's range check
func (u *ScreenUI) editAt(mx int, my int, c clock.Cell) {
	offsetX, offsetY, horzScale := u.offsets()
	if mx < offsetX || my < offsetY {
		return
	}
	u.c.SetCell((mx-offsetX)/horzScale, my-offsetY, c)
}

func (u *ScreenUI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'n':
				u.c.Step()
			case 'r':
				u.c.Run()
			case 's':
				u.c.Stop()
			case 'c':
				u.c.Clear()
			}
		}
	case *tcell.EventMouse:
		mx, my := ev.Position()
		if ev.Buttons()&tcell.ButtonPrimary != 0 {
			u.editAt(mx, my, clock.Wall)
		}
		if ev.Buttons()&tcell.ButtonSecondary != 0 {
			u.editAt(mx, my, clock.Background)
		}
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}
