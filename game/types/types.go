package types

// Point is a cell on the grid addressed by column and row.
type Point struct {
	X, Y int
}

// Add returns p moved by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width    int
	Height   int
	CellSize int // pixels per cell
}

// Default board: a 600x600 window split into 20px cells.
const (
	DefaultCellSize = 20
	DefaultWidth    = 600 / DefaultCellSize
	DefaultHeight   = 600 / DefaultCellSize
)

func NewGrid(width, height, cellSize int) Grid {
	return Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
	}
}

// Wrap maps any point back onto the board. The board is a torus: leaving on
// one edge comes back on the opposite one.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: mod(p.X, g.Width),
		Y: mod(p.Y, g.Height),
	}
}

// Contains reports whether p lies in [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells is the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// ToPixel returns the top-left pixel of the cell.
func (g Grid) ToPixel(p Point) (x, y int32) {
	return int32(p.X * g.CellSize), int32(p.Y * g.CellSize)
}

// PixelWidth and PixelHeight are the board size in pixels.
func (g Grid) PixelWidth() int32 {
	return int32(g.Width * g.CellSize)
}

func (g Grid) PixelHeight() int32 {
	return int32(g.Height * g.CellSize)
}

// mod is the euclidean remainder; Go's % keeps the sign of the dividend.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

type Color struct {
	R, G, B uint8
}

var (
	Black     = Color{R: 0, G: 0, B: 0}
	White     = Color{R: 255, G: 255, B: 255}
	Red       = Color{R: 255, G: 0, B: 0}
	Green     = Color{R: 0, G: 255, B: 0}
	Gray      = Color{R: 100, G: 100, B: 100}
	LightGray = Color{R: 200, G: 200, B: 200}
)

// Lighten adds amount to every channel, clamping at 255.
func (c Color) Lighten(amount uint8) Color {
	lift := func(v uint8) uint8 {
		if uint16(v)+uint16(amount) > 255 {
			return 255
		}
		return v + amount
	}
	return Color{R: lift(c.R), G: lift(c.G), B: lift(c.B)}
}
