// Package photo processes profile pictures: validate, decode, scale down,
// re-encode as JPEG.
package photo

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
)

// Rejection reasons surfaced to the user. Anything else is an internal
// failure.
var (
	ErrNotImage = errors.New("not an image file")
	ErrTooLarge = errors.New("image exceeds the size limit")
)

// Processor turns an arbitrary user-supplied image file into a bounded
// profile JPEG under Dir.
type Processor struct {
	Dir          string // output directory
	MaxUploadMB  int    // reject source files above this many megabytes
	MaxDimension int    // neither output dimension exceeds this
	JPEGQuality  int
}

// Result describes the processed photo.
type Result struct {
	Path   string
	Width  int
	Height int
	Size   int64 // bytes on disk
}

// Process validates the source file, decodes it, scales it so neither
// dimension exceeds MaxDimension (aspect ratio preserved, never upscales),
// and writes a JPEG named profile.jpg under Dir. Validation happens before
// any decode work, so an oversized file is rejected cheaply.
func (p *Processor) Process(srcPath string) (*Result, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if info.Size() > int64(p.MaxUploadMB)<<20 {
		return nil, fmt.Errorf("%w: %dMB limit", ErrTooLarge, p.MaxUploadMB)
	}

	mtype, err := mimetype.DetectFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("sniff photo type: %w", err)
	}
	if !isImage(mtype) {
		return nil, fmt.Errorf("%w: detected %s", ErrNotImage, mtype.String())
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}

	img = scaleDown(img, p.MaxDimension)

	if err := os.MkdirAll(p.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	outPath := filepath.Join(p.Dir, "profile.jpg")
	tmpPath := outPath + ".tmp"

	out, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: p.JPEGQuality}); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return nil, fmt.Errorf("encode photo: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("write photo: %w", err)
	}

	// Atomic rename so a half-written file never becomes the profile photo.
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("store photo: %w", err)
	}

	written, err := os.Stat(outPath)
	if err != nil {
		return nil, fmt.Errorf("stat photo: %w", err)
	}

	bounds := img.Bounds()
	return &Result{
		Path:   outPath,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Size:   written.Size(),
	}, nil
}

// isImage accepts the formats the decoder is registered for.
func isImage(mtype *mimetype.MIME) bool {
	return mtype.Is("image/jpeg") || mtype.Is("image/png") || mtype.Is("image/gif")
}

// scaleDown resizes img so that neither dimension exceeds max, preserving
// aspect ratio. Images already inside the bound pass through untouched.
func scaleDown(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= max && h <= max {
		return img
	}

	var tw, th int
	if w > h {
		tw = max
		th = int(float64(h) * float64(max) / float64(w))
	} else {
		th = max
		tw = int(float64(w) * float64(max) / float64(h))
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	// CatmullRom for high quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
