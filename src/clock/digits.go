package clock

import "fmt"

//3x5 bitmaps for the digits 0-9
//"1" keeps the wall, "0" carves it open
var digitPatterns = [10][5]string{
	{"111", "101", "101", "101", "111"},
	{"001", "001", "001", "001", "001"},
	{"111", "001", "111", "100", "111"},
	{"111", "001", "111", "001", "111"},
	{"101", "101", "111", "001", "001"},
	{"111", "100", "111", "001", "111"},
	{"111", "100", "111", "101", "111"},
	{"111", "101", "001", "001", "001"},
	{"111", "101", "111", "101", "111"},
	{"111", "101", "111", "001", "111"},
}

//slotX returns the left edge of the digit slot's column band
func slotX(zoom int, pos int) int {
	return (1 + pos*4) * zoom
}

//colonX returns the column of the two colon dots between the hour and minute pairs
func colonX(zoom int) int {
	return 2*4*zoom + zoom/2
}

//colonYs returns the rows of the two colon dots
func colonYs(zoom int) [2]int {
	return [2]int{2*zoom + zoom/2, 4*zoom + zoom/2}
}

//putDigit carves the digit shape into the slot's column band.
//Walls in rows 0..6Z-1 of the band are cleared, the bottom band 6Z..7Z-1
//becomes the slot floor, and the pattern's "0" bits are stamped back as
//Z x Z wall blocks. Liquid cells already inside the band are left alone,
//so projecting the same digit twice changes nothing.
//A digit outside 0..9 means the time source is broken; fail loudly
func putDigit(f *Field, pos int, digit int) {
	if digit < 0 || digit > 9 {
		panic(fmt.Sprintf("clock: digit out of range: %d", digit))
	}
	z := f.Zoom
	x0 := slotX(z, pos)
	for y := 0; y < 6*z; y++ {
		for x := x0; x < x0+3*z; x++ {
			if f.Cells[y][x] == Wall {
				f.Cells[y][x] = Background
			}
		}
	}
	for y := 6 * z; y < 7*z; y++ {
		for x := x0; x < x0+3*z; x++ {
			f.Cells[y][x] = Wall
		}
	}
	dp := digitPatterns[digit]
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < 3; dx++ {
			if dp[dy][dx] != '0' {
				continue
			}
			for y := (1 + dy) * z; y < (2+dy)*z; y++ {
				for x := x0 + dx*z; x < x0+(dx+1)*z; x++ {
					f.Cells[y][x] = Wall
				}
			}
		}
	}
}
