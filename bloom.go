package glimmer

import "github.com/hajimehoshi/ebiten/v2"

// bloomPasses is the depth of the downscale chain; each pass halves the
// resolution, so 3 passes blur over roughly an 8-pixel radius.
const bloomPasses = 3

// Bloom renders the glow layer through an iterative downscale/upscale
// blur chain and composites the result additively over the screen,
// giving tracks and fireflies their halo.
type Bloom struct {
	base  *ebiten.Image
	temps []*ebiten.Image
	imgOp ebiten.DrawImageOptions
}

// NewBloom allocates the offscreen buffers for a w×h screen.
func NewBloom(w, h int) *Bloom {
	bl := &Bloom{base: ebiten.NewImage(w, h)}
	for i := 0; i < bloomPasses; i++ {
		w, h = (w+1)/2, (h+1)/2
		bl.temps = append(bl.temps, ebiten.NewImage(w, h))
	}
	return bl
}

// Base clears and returns the glow layer; callers draw the frame's
// glowing geometry into it, then call Composite.
func (bl *Bloom) Base() *ebiten.Image {
	bl.base.Clear()
	return bl.base
}

// Composite blurs the glow layer and draws it over screen: the sharp
// layer at partial opacity plus the blurred halo, both additive.
func (bl *Bloom) Composite(screen *ebiten.Image) {
	// Downscale chain; bilinear sampling does the low-pass filtering.
	src := bl.base
	for _, dst := range bl.temps {
		dst.Clear()
		bl.stretch(dst, src, ebiten.BlendCopy, 1)
		src = dst
	}
	// Upscale back through the chain, accumulating additively so each
	// octave contributes to the halo.
	for i := len(bl.temps) - 2; i >= 0; i-- {
		bl.stretch(bl.temps[i], src, ebiten.BlendLighter, 1)
		src = bl.temps[i]
	}

	bl.stretch(screen, bl.base, ebiten.BlendLighter, 160.0/255)
	bl.stretch(screen, src, ebiten.BlendLighter, 1)
}

// stretch draws src scaled to dst's full bounds at the given opacity.
func (bl *Bloom) stretch(dst, src *ebiten.Image, blend ebiten.Blend, alpha float32) {
	sb, db := src.Bounds(), dst.Bounds()
	op := &bl.imgOp
	op.GeoM.Reset()
	op.GeoM.Scale(
		float64(db.Dx())/float64(sb.Dx()),
		float64(db.Dy())/float64(sb.Dy()),
	)
	op.ColorScale.Reset()
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	op.Blend = blend
	dst.DrawImage(src, op)
}
