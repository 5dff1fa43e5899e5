package clock

//Cell is the value of one grid position: background, wall or a liquid color id
type Cell int8

const (
	Background Cell = 0
	Wall       Cell = 16
)

//Liquid reports whether the cell holds a liquid color
func (c Cell) Liquid() bool {
	return c != Background && c != Wall
}

//free reports whether a liquid cell may move into this cell
func (c Cell) free() bool {
	return c == Background
}

//Field is the clock face grid.
//Interior rows are 0..Height-1; one extra sentinel row at index Height
//stays background and drives the bottom drain logic.
//All range checking happens here: Get and Set silently ignore
//out-of-range coordinates instead of panicking
type Field struct {
	Width  int
	Height int
	Zoom   int
	Cells  [][]Cell
}

//newField allocates the initial face geometry for the digit zoom factor:
//top Zoom rows background, the rest wall, colon dots carved open
func newField(zoom int) Field {
	f := Field{
		Width:  (1 + 4*4) * zoom,
		Height: 7 * zoom,
		Zoom:   zoom,
	}
	f.Cells = make([][]Cell, f.Height+1)
	b := make([]Cell, f.Width*(f.Height+1))
	for y := range f.Cells {
		start := f.Width * y
		f.Cells[y] = b[start : start+f.Width : start+f.Width]
	}
	for y := zoom; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.Cells[y][x] = Wall
		}
	}
	cx := colonX(zoom)
	for _, cy := range colonYs(zoom) {
		f.Cells[cy][cx] = Background
	}
	return f
}

//Contains reports whether (x, y) addresses a cell, sentinel row included
func (f *Field) Contains(x int, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y <= f.Height
}

//Get returns the cell at (x, y); ok is false outside the grid
func (f *Field) Get(x int, y int) (c Cell, ok bool) {
	if !f.Contains(x, y) {
		return Background, false
	}
	return f.Cells[y][x], true
}

//Set writes the cell at (x, y), ignoring out-of-range coordinates
func (f *Field) Set(x int, y int, c Cell) bool {
	if !f.Contains(x, y) {
		return false
	}
	f.Cells[y][x] = c
	return true
}

//Walk calls cb for every interior cell, row by row
func (f *Field) Walk(cb func(x int, y int, c Cell)) {
	for y := 0; y < f.Height; y++ {
		for x, c := range f.Cells[y] {
			cb(x, y, c)
		}
	}
}

//Clone returns a deep copy, used for the ghosting snapshots
func (f *Field) Clone() Field {
	c := *f
	c.Cells = make([][]Cell, len(f.Cells))
	b := make([]Cell, f.Width*len(f.Cells))
	for y := range c.Cells {
		start := f.Width * y
		c.Cells[y] = b[start : start+f.Width : start+f.Width]
		copy(c.Cells[y], f.Cells[y])
	}
	return c
}

//liquidCells counts the liquid cells in the interior rows
func (f *Field) liquidCells() int {
	n := 0
	f.Walk(func(x int, y int, c Cell) {
		if c.Liquid() {
			n++
		}
	})
	return n
}
