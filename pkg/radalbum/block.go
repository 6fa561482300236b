package radalbum

import (
	"fmt"
	"io"
	"slices"
)

// Kind identifies the layout of a block.
type Kind int

const (
	KindSingle Kind = iota
	KindTwoUp
	KindThreeUp
	KindFourUp
	KindChapter
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindTwoUp:
		return "two-up"
	case KindThreeUp:
		return "three-up"
	case KindFourUp:
		return "four-up"
	case KindChapter:
		return "chapter"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Block is one visual unit of the album page. The set of implementations is
// closed: SinglePage, TwoUp, ThreeUp, FourUp and ChapterMarker.
type Block interface {
	Kind() Kind
	// Photos returns the photos of the block in display order.
	Photos() []Photo
	// Relocate copies every photo to outDir and returns a block of the same
	// shape pointing at the copies. It stops at the first failure.
	Relocate(outDir string) (Block, error)
	// Render writes the markup of the block.
	Render(w io.Writer) error
}

// SinglePage is a photo shown across the full page.
type SinglePage struct {
	Photo Photo
}

// TwoUp shows two photos side by side.
type TwoUp struct {
	Images [2]Photo
}

// ThreeUp shows three photos in a row.
type ThreeUp struct {
	Images [3]Photo
}

// FourUp shows four photos in a two by two grid.
type FourUp struct {
	Images [4]Photo
}

func (b *SinglePage) Kind() Kind { return KindSingle }
func (b *TwoUp) Kind() Kind      { return KindTwoUp }
func (b *ThreeUp) Kind() Kind    { return KindThreeUp }
func (b *FourUp) Kind() Kind     { return KindFourUp }

func (b *SinglePage) Photos() []Photo { return []Photo{b.Photo} }
func (b *TwoUp) Photos() []Photo      { return slices.Clone(b.Images[:]) }
func (b *ThreeUp) Photos() []Photo    { return slices.Clone(b.Images[:]) }
func (b *FourUp) Photos() []Photo     { return slices.Clone(b.Images[:]) }

func (b *SinglePage) Relocate(outDir string) (Block, error) {
	p, err := b.Photo.Relocate(outDir)
	if err != nil {
		return nil, err
	}
	return &SinglePage{Photo: p}, nil
}

func (b *TwoUp) Relocate(outDir string) (Block, error) {
	c := &TwoUp{}
	if err := relocateInto(c.Images[:], b.Images[:], outDir); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *ThreeUp) Relocate(outDir string) (Block, error) {
	c := &ThreeUp{}
	if err := relocateInto(c.Images[:], b.Images[:], outDir); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *FourUp) Relocate(outDir string) (Block, error) {
	c := &FourUp{}
	if err := relocateInto(c.Images[:], b.Images[:], outDir); err != nil {
		return nil, err
	}
	return c, nil
}

// relocateInto relocates src in order, storing the results in dst.
func relocateInto(dst []Photo, src []Photo, outDir string) error {
	for i, p := range src {
		np, err := p.Relocate(outDir)
		if err != nil {
			return fmt.Errorf("relocate %s: %w", p.location, err)
		}
		dst[i] = np
	}
	return nil
}

// multiRow is the template data for blocks of more than one photo.
type multiRow struct {
	Class string
	Rows  [][]Photo
	Last  Photo
}

func (b *SinglePage) Render(w io.Writer) error {
	return renderBlock(w, "single", b)
}

func (b *TwoUp) Render(w io.Writer) error {
	return renderBlock(w, "multirow", multiRow{
		Class: "twoimages",
		Rows:  [][]Photo{b.Images[:]},
		Last:  b.Images[1],
	})
}

func (b *ThreeUp) Render(w io.Writer) error {
	return renderBlock(w, "multirow", multiRow{
		Class: "threeimages",
		Rows:  [][]Photo{b.Images[:]},
		Last:  b.Images[2],
	})
}

func (b *FourUp) Render(w io.Writer) error {
	return renderBlock(w, "multirow", multiRow{
		Class: "twoimages",
		Rows:  [][]Photo{b.Images[:2], b.Images[2:]},
		Last:  b.Images[3],
	})
}
