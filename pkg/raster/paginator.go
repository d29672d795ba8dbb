// Package raster assembles the image-based PDF export: one tall bitmap of
// the rendered preview, sliced into A4-sized windows by drawing the same
// image on successive pages at increasing vertical offsets.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
	"seehuhn.de/go/pdf/graphics/matrix"
)

// A4 page size in PDF points.
const (
	PageWidthPt  = 595.28
	PageHeightPt = 841.89
)

// MaxPages bounds pathological inputs; content past the cap is dropped.
const MaxPages = 10

// maxBitmapWidth caps the embedded raster at 2x density for the A4 width
// (96dpi * 2). Wider captures are downscaled before encoding.
const maxBitmapWidth = 1588

const jpegQuality = 90

var (
	// ErrEmptyRaster reports a zero-sized capture.
	ErrEmptyRaster = errors.New("rasterized preview has zero size")
	// ErrEncodingFailure reports a failed image or document encoding step.
	ErrEncodingFailure = errors.New("raster encoding failed")
)

// PageCount returns the number of pages the paginator emits for a bitmap of
// the given pixel dimensions, applying the hard cap.
func PageCount(bitmapWidth, bitmapHeight int) int {
	if bitmapWidth <= 0 || bitmapHeight <= 0 {
		return 0
	}
	imgHeight := float64(bitmapHeight) * PageWidthPt / float64(bitmapWidth)
	pages := 1
	heightLeft := imgHeight - PageHeightPt
	for heightLeft > 0 && pages < MaxPages {
		pages++
		heightLeft -= PageHeightPt
	}
	return pages
}

// Paginate encodes the bitmap once as JPEG and lays it out across A4 pages.
// Each page is a vertically shifted window onto the same image, not a
// re-render.
func Paginate(bitmap image.Image) ([]byte, error) {
	if bitmap == nil {
		return nil, ErrEmptyRaster
	}
	bounds := bitmap.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyRaster
	}

	if w > maxBitmapWidth {
		bitmap = scaleToWidth(bitmap, maxBitmapWidth)
		bounds = bitmap.Bounds()
		w, h = bounds.Dx(), bounds.Dy()
	}

	imgWidthPt := PageWidthPt
	imgHeightPt := float64(h) * PageWidthPt / float64(w)
	pages := PageCount(w, h)

	paper := &pdf.Rectangle{URx: PageWidthPt, URy: PageHeightPt}

	var buf bytes.Buffer
	doc, err := document.WriteMultiPage(&buf, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}

	xobj, err := pdfimage.EmbedJPEG(doc.Out, bitmap, &jpeg.Options{Quality: jpegQuality}, "I")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}

	for i := 0; i < pages; i++ {
		page := doc.AddPage()
		// Position the image so page i shows rows [i*pageH, (i+1)*pageH),
		// measured from the image top. PDF origin is bottom-left.
		yBottom := PageHeightPt*float64(i+1) - imgHeightPt
		page.PushGraphicsState()
		page.Transform(matrix.Translate(0, yBottom))
		page.Transform(matrix.Scale(imgWidthPt, imgHeightPt))
		page.DrawXObject(xobj)
		page.PopGraphicsState()
		if err := page.Close(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
		}
	}

	if err := doc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}
	return buf.Bytes(), nil
}

// scaleToWidth downscales src to the target width with Catmull-Rom
// resampling, preserving aspect ratio.
func scaleToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
