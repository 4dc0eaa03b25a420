package glimmer

// Board dimensions in world units and the default pixel scale. The board
// is centered on the screen; one board unit is Scale pixels.
const (
	BoardW       = 20
	BoardH       = 12
	defaultScale = 35
)

// View is the affine board↔screen mapping: a uniform scale about the
// screen center. It is invertible by construction; ToBoard is the exact
// inverse of ToScreen.
type View struct {
	Scale float64 // pixels per board unit
	W, H  float64 // screen size in pixels
}

// DefaultView returns the view used by the shipped game window.
func DefaultView() View {
	return View{Scale: defaultScale, W: BoardW * defaultScale, H: BoardH * defaultScale}
}

// ToScreen maps a board-space point to screen pixels.
func (v View) ToScreen(p Vec2) Vec2 {
	return Vec2{p.X*v.Scale + v.W/2, p.Y*v.Scale + v.H/2}
}

// ToBoard maps a screen pixel position to board space.
func (v View) ToBoard(p Vec2) Vec2 {
	return Vec2{(p.X - v.W/2) / v.Scale, (p.Y - v.H/2) / v.Scale}
}
