package webp

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

const (
	DefaultQuality      = 70
	DefaultMaxDimension = 2048
)

// Transcoder converts JPEG variants into WebP when the WebP sibling has not been generated yet.
type Transcoder struct {
	Quality      int
	MaxDimension int
}

// NewTranscoder returns a Transcoder with the default quality and dimension cap.
func NewTranscoder() *Transcoder {
	return &Transcoder{Quality: DefaultQuality, MaxDimension: DefaultMaxDimension}
}

// JPEGToWebP decodes a JPEG stream and re-encodes it as lossy WebP.
func (t *Transcoder) JPEGToWebP(r io.Reader) ([]byte, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode jpeg: %w", err)
	}

	maxDim := t.MaxDimension
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	img = resizeToFit(img, maxDim, maxDim)

	quality := t.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || (w <= maxWidth && h <= maxHeight) {
		return src
	}

	scale := float64(maxWidth) / float64(w)
	if s := float64(maxHeight) / float64(h); s < scale {
		scale = s
	}
	newW := max(int(float64(w)*scale), 1)
	newH := max(int(float64(h)*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}
