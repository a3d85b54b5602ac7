package main

import (
	"errors"
	"fmt"
	"time"

	"spritesheet/metadata"
	"spritesheet/rectpack"
	"spritesheet/sheet"
)

// place resolves the positions of assets according to the mode.
func (r *runner) place(options *Options, assets []sheet.Asset) (*rectpack.Result, error) {
	switch options.Mode {
	case "manual":
		records, err := metadata.ReadFile(options.JSONPath)
		if err != nil {
			return nil, err
		}
		return rectpack.Arrange(metadata.Placements(records), options.CheckOverlap)
	case "automatic":
		if len(assets) == 0 {
			return nil, fmt.Errorf("no images found in %s", options.ImagesDir)
		}
		order, err := rectpack.ResolveOrder(options.Order)
		if err != nil {
			return nil, err
		}
		heuristic, err := rectpack.ResolveHeuristic(options.Heuristic)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		packer := rectpack.NewPacker(rectpack.WithOrder(order), rectpack.WithHeuristic(heuristic))
		result, err := packer.Pack(sheet.Rectangles(assets), options.MaxWidth)
		if err != nil {
			return nil, err
		}
		r.logger.Printf("packed %d images in %v", len(result.Placements), time.Since(start))
		for _, p := range result.Placements {
			r.logger.Printf("Rect ID: %s, X: %d, Y: %d, Width: %d, Height: %d", p.ID, p.X, p.Y, p.Width, p.Height)
		}
		if err := metadata.WriteFile(options.JSONPath, metadata.FromResult(result)); err != nil {
			return nil, err
		}
		fmt.Fprintf(r.out, "Positions saved to %s\n", options.JSONPath)
		return result, nil
	}
	return nil, fmt.Errorf("unknown mode %q (manual, automatic)", options.Mode)
}

// pack merges the images of options.ImagesDir into one sprite sheet.
func (r *runner) pack(options *Options) error {
	start := time.Now()
	assets, err := sheet.LoadDir(options.ImagesDir, options.Extensions...)
	if err != nil {
		return err
	}
	r.logger.Printf("loaded %d images from %s in %v", len(assets), options.ImagesDir, time.Since(start))

	result, err := r.place(options, assets)
	if err != nil {
		return err
	}
	r.logger.Printf("sheet size: %s, area used: %.2f%%", result.Bin, result.Used()*100)

	start = time.Now()
	img, err := sheet.Compose(result, sheet.Images(assets))
	var missing *sheet.MissingAssetError
	switch {
	case errors.As(err, &missing):
		for _, id := range missing.IDs {
			fmt.Fprintf(r.errOut, "Warning: Image for '%s' not found.\n", id)
		}
	case err != nil:
		return err
	}
	r.logger.Printf("composed sheet in %v", time.Since(start))

	if err := sheet.Save(options.OutputPath, img); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Sprite sheet saved to %s\n", options.OutputPath)
	return nil
}
