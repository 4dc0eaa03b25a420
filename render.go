package glimmer

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette. Track tints follow the flag set; the selection highlight pulls
// the tint halfway to white.
var (
	colorNight      = color.RGBA{5, 8, 1, 255}
	colorGridLine   = color.RGBA{30, 30, 30, 255}
	colorTrackPlain = Color{0.50, 0.50, 0.50, 1}
	colorAttract    = Color{0.53, 0.53, 0.25, 1}
	colorReturn     = Color{0.63, 0.38, 0.85, 1}
	colorFirefly    = Color{1, 1, 0.06, 1}
	colorSelected   = Color{1, 0.25, 0.25, 1}
	colorBellRing   = Color{0.25, 0.25, 0.25, 0.5}
	colorBellIdle   = Color{0.51, 0.51, 0.51, 1}
	colorBellLive   = Color{0, 0.89, 0.19, 1}
)

const trackStroke = 2 // px

// ensureRenderState allocates the offscreen buffers and the background on
// the first Draw, so a Game used headlessly never touches the GPU.
func (g *Game) ensureRenderState() {
	if g.bloom == nil {
		g.bloom = NewBloom(int(g.view.W), int(g.view.H))
	}
	if g.bg == nil {
		g.bg = NewBackground(g.board.Title, g.view.W, g.view.H)
	}
}

// Draw implements ebiten.Game: night backdrop, forest, rule grid, then
// the glowing geometry through the bloom chain, bellflowers, and title.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ensureRenderState()

	screen.Fill(colorNight)
	g.bg.Draw(screen, g.frame)
	g.drawGrid(screen)

	glow := g.bloom.Base()
	for i := range g.board.Tracks {
		g.drawTrack(glow, &g.board.Tracks[i])
	}
	for i := range g.board.Fireflies {
		g.drawFirefly(glow, &g.board.Fireflies[i])
	}
	g.bloom.Composite(screen)

	for i := range g.board.Bellflowers {
		g.drawBellflower(screen, &g.board.Bellflowers[i])
	}

	ebitenutil.DebugPrintAt(screen, g.board.Title, 20, int(g.view.H)-24)
	if g.showStats {
		g.drawStats(screen)
	}
}

// drawGrid strokes the one-unit rule grid across the whole board.
func (g *Game) drawGrid(dst *ebiten.Image) {
	for i := -BoardW / 2; i <= BoardW/2; i++ {
		x := float32(g.view.ToScreen(Vec2{float64(i), 0}).X)
		vector.StrokeLine(dst, x, 0, x, float32(g.view.H), 1, colorGridLine, false)
	}
	for i := -BoardH / 2; i <= BoardH/2; i++ {
		y := float32(g.view.ToScreen(Vec2{0, float64(i)}).Y)
		vector.StrokeLine(dst, 0, y, float32(g.view.W), y, 1, colorGridLine, false)
	}
}

func trackTint(tr *Track) Color {
	tint := colorTrackPlain
	if tr.Flags&Attract != 0 {
		tint = colorAttract
	}
	if tr.Flags&Return != 0 {
		tint = colorReturn
	}
	if tr.Selected {
		tint = tint.Lightened()
	}
	return tint
}

// pulseFor picks the ripple animation for a collidable track; Attract
// wins when both flags are set.
func (g *Game) pulseFor(tr *Track) *ripple {
	if tr.Flags&Attract != 0 {
		return g.attractPulse
	}
	return g.returnPulse
}

func (g *Game) drawTrack(dst *ebiten.Image, tr *Track) {
	tint := trackTint(tr)
	switch tr.Kind {
	case KindCircle:
		g.drawCircleTrack(dst, tr, tint)
	case KindSegment:
		g.drawSegmentTrack(dst, tr, tint)
	}
}

func (g *Game) drawCircleTrack(dst *ebiten.Image, tr *Track, tint Color) {
	c := g.view.ToScreen(tr.Origin)
	vector.StrokeCircle(dst, float32(c.X), float32(c.Y),
		float32(tr.Radius*g.view.Scale), trackStroke, tint.toRGBA(), true)

	if tr.Flags&Fixed != 0 {
		p := Vec2{tr.Radius, 0}.Rot(tr.FixAngle)
		tick := Vec2{0.13, 0}.Rot(tr.FixAngle - 1.0)
		g.strokeBoardLine(dst, tr.Origin.Add(p).Sub(tick), tr.Origin.Add(p).Add(tick), tint)
		if tr.FixCount != 1 {
			g.strokeBoardLine(dst, tr.Origin.Sub(p).Sub(tick), tr.Origin.Sub(p).Add(tick), tint)
		}
	}

	if !tr.Collidable() {
		return
	}
	pulse := g.pulseFor(tr)
	if pulse.Alpha() <= 0 {
		return
	}
	echo := tint.Scaled(pulse.Alpha())
	vector.StrokeCircle(dst, float32(c.X), float32(c.Y),
		float32((tr.Radius+pulse.Dist())*g.view.Scale), trackStroke, echo.toRGBA(), true)
	if tr.Radius > pulse.Dist() {
		vector.StrokeCircle(dst, float32(c.X), float32(c.Y),
			float32((tr.Radius-pulse.Dist())*g.view.Scale), trackStroke, echo.toRGBA(), true)
	}
}

func (g *Game) drawSegmentTrack(dst *ebiten.Image, tr *Track, tint Color) {
	a := tr.PositionAt(0)
	b := tr.PositionAt(tr.Length)
	g.strokeBoardLine(dst, a, b, tint)

	n := tr.Dir.Rot(math.Pi / 2)
	if tr.Flags&Fixed != 0 {
		for _, end := range [2]Vec2{a, b} {
			g.strokeBoardLine(dst, end.Sub(n.Mul(0.1)), end.Add(n.Mul(0.1)), tint)
		}
	}

	if !tr.Collidable() {
		return
	}
	pulse := g.pulseFor(tr)
	if pulse.Alpha() <= 0 {
		return
	}
	echo := tint.Scaled(pulse.Alpha())
	off := n.Mul(pulse.Dist())
	g.strokeBoardLine(dst, a.Add(off), b.Add(off), echo)
	g.strokeBoardLine(dst, a.Sub(off), b.Sub(off), echo)
}

func (g *Game) strokeBoardLine(dst *ebiten.Image, a, b Vec2, tint Color) {
	sa, sb := g.view.ToScreen(a), g.view.ToScreen(b)
	vector.StrokeLine(dst, float32(sa.X), float32(sa.Y), float32(sb.X), float32(sb.Y),
		trackStroke, tint.toRGBA(), true)
}

func (g *Game) drawFirefly(dst *ebiten.Image, f *Firefly) {
	tint := colorFirefly
	if f.Selected {
		tint = colorSelected
	}
	// Faster fireflies leave a brighter wake.
	wake := f.Speed
	if wake < 1 {
		wake = 1
	}
	fade := tint.Scaled(wake / 8)

	c := g.view.ToScreen(f.Pos(g.board.Tracks))
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), 4, tint.toRGBA(), true)

	pointer := g.board.TrailPointer()
	for i := 0; i < TrailN; i++ {
		p := g.view.ToScreen(f.TrailAt(i, pointer))
		r := 4 - float32(i)/TrailN*2
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), r, fade.toRGBA(), true)
	}
}

func (g *Game) drawBellflower(dst *ebiten.Image, b *Bellflower) {
	c := g.view.ToScreen(b.Center)
	vector.StrokeCircle(dst, float32(c.X), float32(c.Y),
		float32(b.Radius*g.view.Scale), trackStroke, colorBellRing.toRGBA(), true)

	disc := float32(0.5 * g.view.Scale)
	switch b.Kind {
	case Immediate:
		tint := colorBellIdle
		if b.Active() {
			tint = colorBellLive
		}
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), disc, tint.toRGBA(), true)
	case Delayed:
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), disc, colorBellIdle.toRGBA(), true)
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y),
			disc*float32(b.Progress()), colorBellLive.toRGBA(), true)
	}

	ebitenutil.DebugPrintAt(dst, strconv.Itoa(b.Count), int(c.X)-4, int(c.Y)-8)
}
