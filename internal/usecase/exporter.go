package usecase

import (
	"context"
	"fmt"
	"image"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-exporter/internal/model"
	"resume-exporter/pkg/encoder"
	"resume-exporter/pkg/raster"
	"resume-exporter/pkg/snapshot"
)

// Format selects the target encoding of an export.
type Format string

const (
	FormatLaTeX    Format = "latex"
	FormatDocx     Format = "docx"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatPDF      Format = "pdf"
	// FormatPrint routes through the browser's native print mechanism
	// instead of the save sink. Fire-and-forget.
	FormatPrint Format = "print"
)

func (f Format) Valid() bool {
	switch f {
	case FormatLaTeX, FormatDocx, FormatHTML, FormatMarkdown, FormatText, FormatJSON, FormatPDF, FormatPrint:
		return true
	}
	return false
}

func (f Format) Extension() string {
	switch f {
	case FormatLaTeX:
		return "tex"
	case FormatDocx:
		return "docx"
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	case FormatJSON:
		return "json"
	default:
		return "pdf"
	}
}

func (f Format) MediaType() string {
	switch f {
	case FormatLaTeX:
		return encoder.MediaTypeLaTeX
	case FormatDocx:
		return encoder.MediaTypeDocx
	case FormatHTML:
		return encoder.MediaTypeHTML
	case FormatMarkdown:
		return encoder.MediaTypeMarkdown
	case FormatText:
		return encoder.MediaTypeText
	case FormatJSON:
		return encoder.MediaTypeJSON
	default:
		return encoder.MediaTypePDF
	}
}

// SaveSink receives finished artifacts together with their resolved filename
// and media type.
type SaveSink interface {
	Save(ctx context.Context, resumeID uuid.UUID, filename, mediaType string, data []byte) (string, error)
}

// Rasterizer turns a self-contained document into one tall bitmap.
type Rasterizer interface {
	CaptureFullPage(ctx context.Context, html string) (image.Image, error)
}

// Printer is the native print mechanism. One-way; effects unknown.
type Printer interface {
	PrintToPDF(ctx context.Context, html string) ([]byte, error)
}

// Result reports how an export concluded. Cancelled results carry no
// artifact and are not errors.
type Result struct {
	Cancelled bool
	Printed   bool
	Filename  string
	MediaType string
	Path      string
}

// Exporter is the orchestration surface: it resolves the filename, selects
// the encoder, and hands the payload to the save sink.
type Exporter struct {
	Resolver   *FilenameResolver
	Preview    *PreviewRenderer
	Sink       SaveSink
	Rasterizer Rasterizer
	Printer    Printer
	Titles     TitleStore

	printWG sync.WaitGroup
}

// Wait blocks until every dispatched print has finished. Callers that exit
// right after a print export must wait, or the background print is torn
// down with the process.
func (e *Exporter) Wait() {
	e.printWG.Wait()
}

// Export runs one export attempt end to end. A cancelled filename prompt
// short-circuits before any rendering, encoding, or save.
func (e *Exporter) Export(ctx context.Context, resume *model.Resume, format Format, settings ExportSettings) (*Result, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}

	filename, cancelled, err := e.Resolver.Resolve(resume, format.Extension(), settings)
	if err != nil {
		return nil, err
	}
	if cancelled {
		return &Result{Cancelled: true}, nil
	}

	if format == FormatPrint {
		e.dispatchPrint(resume, filename)
		return &Result{Printed: true, Filename: filename, MediaType: format.MediaType()}, nil
	}

	payload, err := e.encode(ctx, resume, format)
	if err != nil {
		return nil, err
	}

	path, err := e.Sink.Save(ctx, resume.ID, filename, format.MediaType(), payload)
	if err != nil {
		return nil, err
	}
	return &Result{Filename: filename, MediaType: format.MediaType(), Path: path}, nil
}

func (e *Exporter) encode(ctx context.Context, resume *model.Resume, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encoder.EncodeJSON(resume)
	case FormatMarkdown:
		return []byte(encoder.EncodeMarkdown(resume.Content)), nil
	case FormatText:
		return []byte(encoder.EncodePlainText(resume.Content)), nil
	case FormatLaTeX:
		return []byte(encoder.EncodeLaTeX(resume.Content)), nil
	case FormatDocx:
		return encoder.EncodeDocx(resume.Content)
	case FormatHTML:
		markup, err := e.captureSnapshotMarkup(resume)
		if err != nil {
			return nil, err
		}
		doc, err := encoder.WrapStyledHTML(resume.Title, markup)
		if err != nil {
			return nil, err
		}
		return []byte(doc), nil
	case FormatPDF:
		return e.encodeRasterPDF(ctx, resume)
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

// captureSnapshotMarkup renders the live preview and bakes its effective
// styles into a portable clone.
func (e *Exporter) captureSnapshotMarkup(resume *model.Resume) (string, error) {
	doc, err := e.Preview.Parse(resume)
	if err != nil {
		return "", err
	}
	resolver, err := snapshot.NewCascadeResolver(e.Preview.Stylesheet())
	if err != nil {
		return "", err
	}
	return snapshot.New(resolver).CaptureMarkup(doc)
}

// encodeRasterPDF mounts the snapshot off-screen, rasterizes it at 2x, and
// slices the bitmap into A4 pages.
func (e *Exporter) encodeRasterPDF(ctx context.Context, resume *model.Resume) ([]byte, error) {
	markup, err := e.captureSnapshotMarkup(resume)
	if err != nil {
		return nil, err
	}
	doc, err := encoder.WrapStyledHTML(resume.Title, markup)
	if err != nil {
		return nil, err
	}
	bitmap, err := e.Rasterizer.CaptureFullPage(ctx, doc)
	if err != nil {
		return nil, err
	}
	return raster.Paginate(bitmap)
}

// dispatchPrint resolves a display name, overrides the shared document title
// for the duration of the print call, and fires the native print mechanism
// without awaiting completion.
func (e *Exporter) dispatchPrint(resume *model.Resume, filename string) {
	display := strings.TrimSuffix(filename, ".pdf")

	rendered, err := e.Preview.RenderHTML(resume)
	if err != nil {
		log.Printf("print export: preview render failed: %v", err)
		return
	}

	e.printWG.Add(1)
	go func() {
		defer e.printWG.Done()

		restore := overrideTitle(e.Titles, display)
		defer restore()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		attempts := 3
		for i := 0; i < attempts; i++ {
			pdf, err := e.Printer.PrintToPDF(ctx, rendered)
			if err == nil && len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				// Best-effort: the caller has already moved on and is never
				// told whether this landed.
				if _, err := e.Sink.Save(ctx, resume.ID, display+".pdf", encoder.MediaTypePDF, pdf); err != nil {
					log.Printf("print export: save failed: %v", err)
				}
				return
			}
			if err == nil {
				err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
			}
			log.Printf("print export attempt %d failed: %v", i+1, err)
			if i < attempts-1 {
				select {
				case <-time.After(time.Duration(1<<i) * time.Second):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}
