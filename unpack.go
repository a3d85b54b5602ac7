package main

import (
	"fmt"
	"time"

	"spritesheet/metadata"
	"spritesheet/rectpack"
	"spritesheet/sheet"
)

// extract cuts the sprite sheet back into one image per metadata record.
func (r *runner) extract(options *ExtractOptions) error {
	start := time.Now()
	records, err := metadata.ReadFile(options.JSONPath)
	if err != nil {
		return err
	}
	result, err := rectpack.Arrange(metadata.Placements(records), false)
	if err != nil {
		return err
	}

	src, err := sheet.Open(options.SpritePath)
	if err != nil {
		return err
	}
	paths, err := sheet.SaveSprites(options.OutputDir, sheet.Extract(result, src))
	for i, path := range paths {
		fmt.Fprintf(r.out, "Image %s saved to %s\n", records[i].Name, path)
	}
	if err != nil {
		return err
	}
	r.logger.Printf("extracted %d images in %v", len(paths), time.Since(start))
	return nil
}
