// Package sheet turns placement results into pixels: it pastes images onto a
// sprite sheet and cuts a sheet back into its sprites.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"

	"spritesheet/rectpack"
)

// ErrMissingAsset is matched by every *MissingAssetError.
var ErrMissingAsset = errors.New("missing asset")

// MissingAssetError lists the placements that had no image during Compose,
// in placement order. It is a warning: the sheet is still produced.
type MissingAssetError struct {
	IDs []string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("no image for %d placement(s): %s", len(e.IDs), strings.Join(e.IDs, ", "))
}

func (e *MissingAssetError) Is(target error) bool {
	return target == ErrMissingAsset
}

// Sprite is one named image cut out of a sheet.
type Sprite struct {
	Name  string
	Image *image.NRGBA
}

// Compose creates a transparent canvas of the result's bin size and pastes
// every asset at its placement. Pasting follows placement order, so where
// placements overlap the later one wins. Each image is clipped to its
// placement rectangle.
//
// Placements without an asset are skipped. The canvas is always returned;
// when anything was skipped the error is a *MissingAssetError naming all of
// them.
func Compose(result *rectpack.Result, assets map[string]image.Image) (*image.NRGBA, error) {
	dst := imaging.New(result.Bin.Width, result.Bin.Height, color.NRGBA{0, 0, 0, 0})
	var missing []string
	for _, p := range result.Placements {
		src, ok := assets[p.ID]
		if !ok || src == nil {
			missing = append(missing, p.ID)
			continue
		}
		dstRect := image.Rect(p.X, p.Y, p.Right(), p.Bottom())
		draw.Draw(dst, dstRect, src, src.Bounds().Min, draw.Src)
	}
	if len(missing) > 0 {
		return dst, &MissingAssetError{IDs: missing}
	}
	return dst, nil
}

// Extract cuts one sprite per placement out of src, in placement order. Parts
// of a placement that fall outside src stay transparent, so every sprite has
// exactly its placement's size.
func Extract(result *rectpack.Result, src image.Image) []Sprite {
	origin := src.Bounds().Min
	sprites := make([]Sprite, len(result.Placements))
	for i, p := range result.Placements {
		sub := imaging.New(p.Width, p.Height, color.NRGBA{0, 0, 0, 0})
		draw.Draw(sub, sub.Bounds(), src, origin.Add(image.Pt(p.X, p.Y)), draw.Src)
		sprites[i] = Sprite{Name: p.ID, Image: sub}
	}
	return sprites
}
