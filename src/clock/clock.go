package clock

type Clock interface {
	Status() Status
	Options() Options
	Field() Field
	DisplayAt(x int, y int) Cell
	StateCh() chan Status
	SetCell(x int, y int, c Cell)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}
