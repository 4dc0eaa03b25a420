package glimmer

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	treeCount    = 25
	treeVariants = 4
	treeSize     = 240 // px, per variant cell in the texture strip
	treeSpacing  = 240 // px, minimum separation enforced by relaxation
)

type tree struct {
	pos       Vec2 // screen pixels
	rotCenter float64
	rotAmp    float64
	rotPeriod float64 // frames per sway cycle
	tint      float64 // gray level in [0, 1]
}

// Background scatters dim, slowly swaying tree sprites behind the board.
// The texture strip is rasterized once at startup; placement is derived
// deterministically from the level title, so every level has its own
// stable forest.
type Background struct {
	tex   *ebiten.Image
	trees [treeCount]tree
	imgOp ebiten.DrawImageOptions
}

// NewBackground builds the forest for a level title on a w×h screen.
func NewBackground(title string, w, h float64) *Background {
	bg := &Background{tex: renderTreeStrip()}

	seed := uint32(20220128)
	for _, c := range []byte(title) {
		seed = seed*997 + uint32(c)
	}
	rand := func() uint32 {
		seed = (seed*1103515245 + 12345) & 0x7fffffff
		return seed
	}
	for i := range bg.trees {
		bg.trees[i] = tree{
			pos:       Vec2{float64(rand() % uint32(w)), float64(rand() % uint32(h))},
			rotCenter: float64(rand()) / 0x7fffffff * 2 * math.Pi,
			rotAmp:    0.05 + float64(rand())/0x7fffffff*0.05,
			rotPeriod: 1200 + 1200*float64((rand()>>8)%256)/256,
		}
		bg.trees[i].tint = float64(180+(seed>>16)%32) / 255
	}

	// Push overlapping trees apart, then halve any overshoot past the
	// screen edges. The same relaxation the original runs on its decals.
	for it := 0; it < 1000; it++ {
		for i := range bg.trees {
			var move Vec2
			for j := range bg.trees {
				if j == i {
					continue
				}
				d := bg.trees[i].pos.Sub(bg.trees[j].pos)
				if n := d.Norm(); n > 0 && n < treeSpacing {
					move = move.Add(d.Div(n).Mul(treeSpacing - n))
				}
			}
			p := bg.trees[i].pos.Add(move.Mul(0.01))
			if p.X < 0 {
				p.X /= 2
			}
			if p.X > w {
				p.X -= (p.X - w) / 2
			}
			if p.Y < 0 {
				p.Y /= 2
			}
			if p.Y > h {
				p.Y -= (p.Y - h) / 2
			}
			bg.trees[i].pos = p
		}
	}
	return bg
}

// Draw renders the forest for the given frame counter.
func (bg *Background) Draw(screen *ebiten.Image, frame int64) {
	for i := range bg.trees {
		t := &bg.trees[i]
		rot := t.rotCenter + t.rotAmp*math.Sin(float64(frame)/t.rotPeriod*2*math.Pi)

		op := &bg.imgOp
		op.GeoM.Reset()
		op.GeoM.Translate(-treeSize/2, -treeSize/2)
		op.GeoM.Rotate(rot)
		op.GeoM.Translate(t.pos.X, t.pos.Y)
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(t.tint), float32(t.tint), float32(t.tint), 1)

		variant := i % treeVariants
		screen.DrawImage(bg.variantImage(variant), op)
	}
}

func (bg *Background) variantImage(variant int) *ebiten.Image {
	x := variant * treeSize
	return bg.tex.SubImage(image.Rect(x, 0, x+treeSize, treeSize)).(*ebiten.Image)
}

// renderTreeStrip rasterizes the four tree silhouettes into one texture
// strip: a trunk with recursively forking branches, one random-ish shape
// per variant.
func renderTreeStrip() *ebiten.Image {
	dc := gg.NewContext(treeVariants*treeSize, treeSize)
	for v := 0; v < treeVariants; v++ {
		cx := float64(v*treeSize + treeSize/2)
		base := float64(treeSize) - 20
		dc.SetRGBA(0.05, 0.09, 0.03, 1)
		dc.SetLineCapRound()
		drawBranch(dc, cx, base, math.Pi/2, 70, 9, 5, v)
	}
	return ebiten.NewImageFromImage(dc.Image())
}

// drawBranch strokes one branch segment and recurses into two children,
// angled apart by an amount that varies per variant.
func drawBranch(dc *gg.Context, x, y, angle, length, width float64, depth, variant int) {
	if depth == 0 || length < 6 {
		return
	}
	nx := x + math.Cos(angle)*length
	ny := y - math.Sin(angle)*length
	dc.SetLineWidth(width)
	dc.DrawLine(x, y, nx, ny)
	dc.Stroke()

	spread := 0.35 + 0.08*float64(variant)
	lean := 0.05 * float64(variant%3-1)
	drawBranch(dc, nx, ny, angle+spread+lean, length*0.72, width*0.65, depth-1, variant)
	drawBranch(dc, nx, ny, angle-spread+lean, length*0.78, width*0.65, depth-1, variant)
}
