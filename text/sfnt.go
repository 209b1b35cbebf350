package text

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"slices"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// errNoGlyph is wrapped in a RasterizeError when the face has no glyph
// for a rune that the cmap listed.
var errNoGlyph = errors.New("no glyph in face")

// sfntParser implements FontParser using golang.org/x/image/font/opentype
// for outlines and go-text/typesetting for cmap enumeration.
type sfntParser struct{}

// Parse implements FontParser.Parse.
func (sfntParser) Parse(data []byte) (Rasterizer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFont, err)
	}

	// x/image does not expose the cmap, so coverage comes from a second
	// parse of the same bytes.
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: cmap: %w", ErrParseFont, err)
	}

	return &sfntRasterizer{
		font:     f,
		name:     familyName(f),
		coverage: coverage(face.Font, f),
		hinting:  HintingFull,
		faces:    make(map[float64]font.Face),
	}, nil
}

// sfntRasterizer implements Rasterizer over a parsed OpenType font.
type sfntRasterizer struct {
	font     *opentype.Font
	name     string
	coverage []rune
	hinting  Hinting

	// faces holds one face per point size; font.Face keeps mutable
	// rasterizer state and is not safe for concurrent use.
	faces map[float64]font.Face
}

// Name implements Rasterizer.Name.
func (r *sfntRasterizer) Name() string {
	return r.name
}

// Coverage implements Rasterizer.Coverage.
func (r *sfntRasterizer) Coverage() []rune {
	return slices.Clone(r.coverage)
}

// SetHinting changes the hinting mode for faces created afterwards.
func (r *sfntRasterizer) SetHinting(h Hinting) {
	if h == r.hinting {
		return
	}
	r.hinting = h
	r.closeFaces()
}

// Rasterize implements Rasterizer.Rasterize.
//
// The glyph is drawn with its origin at dot (0, 0) and the mask is then
// re-anchored at the top-left corner, so the bitmap is exactly the ink
// bounding box. Outlines with no ink (whitespace) yield a zero-area glyph.
func (r *sfntRasterizer) Rasterize(ch rune, pointSize float64) (Glyph, error) {
	face, err := r.face(pointSize)
	if err != nil {
		return Glyph{}, &RasterizeError{Rune: ch, Err: err}
	}

	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, ch)
	if !ok {
		return Glyph{}, &RasterizeError{Rune: ch, Err: errNoGlyph}
	}

	w, h := dr.Dx(), dr.Dy()
	if w <= 0 || h <= 0 || mask == nil {
		return Glyph{width: max(w, 0), height: max(h, 0)}, nil
	}

	// The face reuses its mask between calls, so copy it out.
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), mask, maskp, draw.Src)

	return Glyph{width: w, height: h, bitmap: dst.Pix}, nil
}

// Close releases the faces created by Rasterize.
func (r *sfntRasterizer) Close() error {
	r.closeFaces()
	return nil
}

func (r *sfntRasterizer) face(pointSize float64) (font.Face, error) {
	if f, ok := r.faces[pointSize]; ok {
		return f, nil
	}

	// DPI 72 makes one point one pixel, so pointSize is pixels per em.
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    pointSize,
		DPI:     72,
		Hinting: r.hinting.fontHinting(),
	})
	if err != nil {
		return nil, fmt.Errorf("new face at %g: %w", pointSize, err)
	}
	r.faces[pointSize] = f
	return f, nil
}

func (r *sfntRasterizer) closeFaces() {
	for size, f := range r.faces {
		_ = f.Close()
		delete(r.faces, size)
	}
}

// coverage lists the runes the cmap maps to a real glyph. Entries pointing
// at glyph 0 (.notdef) or unknown to x/image are dropped so both parsers
// agree on every rune returned.
func coverage(ft *gotext.Font, f *opentype.Font) []rune {
	var (
		buf   sfnt.Buffer
		runes []rune
	)

	it := ft.Cmap.Iter()
	for it.Next() {
		r, gid := it.Char()
		if gid == 0 {
			continue
		}
		if idx, err := f.GlyphIndex(&buf, r); err != nil || idx == 0 {
			continue
		}
		runes = append(runes, r)
	}

	slices.Sort(runes)
	return slices.Compact(runes)
}

// familyName extracts the font family name, falling back to the full name.
func familyName(f *opentype.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return ""
}
