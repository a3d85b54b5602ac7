package sheet

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/maruel/natural"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"spritesheet/rectpack"
)

// DefaultExtensions are the file extensions LoadDir picks up when none are given.
var DefaultExtensions = []string{".png"}

// Asset is a decoded image file. Name is the file name without extension.
type Asset struct {
	Name  string
	Path  string
	Image image.Image
}

// LoadDir decodes every image in dir whose extension matches one of exts
// (case-insensitive). Files are ordered by natural sort of their names, so
// the result does not depend on directory listing order. Decoding runs in
// parallel.
func LoadDir(dir string, exts ...string) ([]Asset, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name(), exts) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Sort(natural.StringSlice(files))

	assets := make([]Asset, len(files))
	seen := make(map[string]string, len(files))
	for i, file := range files {
		name := strings.TrimSuffix(file, filepath.Ext(file))
		if other, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s and %s both map to image name %q", other, file, name)
		}
		seen[name] = file
		assets[i] = Asset{Name: name, Path: filepath.Join(dir, file)}
	}

	errs := make([]error, len(assets))
	parallel(len(assets), func(i int) {
		assets[i].Image, errs[i] = Open(assets[i].Path)
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return assets, nil
}

func hasExtension(file string, exts []string) bool {
	ext := filepath.Ext(file)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Rectangles measures assets into a rectangle set, keeping their order.
func Rectangles(assets []Asset) rectpack.RectangleSet {
	set := make(rectpack.RectangleSet, len(assets))
	for i, a := range assets {
		b := a.Image.Bounds()
		set[i] = rectpack.NewRectangle(a.Name, b.Dx(), b.Dy())
	}
	return set
}

// Images maps asset names to their images.
func Images(assets []Asset) map[string]image.Image {
	images := make(map[string]image.Image, len(assets))
	for _, a := range assets {
		images[a.Name] = a.Image
	}
	return images
}

// Open decodes the image file at path.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img to path, choosing the format from the extension, and
// creates missing parent directories.
func Save(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

// SaveSprites writes every sprite to dir as <name>.png and returns the paths
// written, in sprite order.
func SaveSprites(dir string, sprites []Sprite) ([]string, error) {
	paths := make([]string, 0, len(sprites))
	for _, s := range sprites {
		path := filepath.Join(dir, s.Name+".png")
		if err := Save(path, s.Image); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// parallel calls fn for every index in [0, n), spreading the work over one
// goroutine per CPU.
func parallel(n int, fn func(i int)) {
	workers := min(runtime.NumCPU(), n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var wg sync.WaitGroup
	batch := (n + workers - 1) / workers
	for from := 0; from < n; from += batch {
		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			for i := from; i < to; i++ {
				fn(i)
			}
		}(from, min(from+batch, n))
	}
	wg.Wait()
}
