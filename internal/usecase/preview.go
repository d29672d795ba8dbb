package usecase

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"resume-exporter/internal/model"
)

// PreviewRenderer produces the live visual tree the snapshot engine and the
// raster path consume: the resume rendered through the preview template with
// the stylesheet inlined into the head.
type PreviewRenderer struct {
	TplDir string
}

func NewPreviewRenderer(tplDir string) *PreviewRenderer {
	if tplDir == "" {
		tplDir = "templates"
	}
	return &PreviewRenderer{TplDir: tplDir}
}

// RenderHTML executes the preview template and inlines the stylesheet so the
// document is self-contained for file:// loading.
func (p *PreviewRenderer) RenderHTML(resume *model.Resume) (string, error) {
	tplPath := filepath.Join(p.TplDir, "preview.html")
	tpl, err := template.New(filepath.Base(tplPath)).
		Funcs(template.FuncMap{"dateRange": model.DateRange}).
		ParseFiles(tplPath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, map[string]interface{}{
		"Resume":  resume,
		"Content": resume.Content,
	}); err != nil {
		return "", err
	}
	out := buf.String()

	if css := p.Stylesheet(); css != "" {
		block := "<style>" + css + "</style>"
		if strings.Contains(strings.ToLower(out), "<head>") {
			out = strings.Replace(out, "<head>", "<head>"+block, 1)
		} else {
			out = block + out
		}
	}
	return out, nil
}

// Stylesheet loads the preview stylesheet, probing the same candidate
// locations the server image uses.
func (p *PreviewRenderer) Stylesheet() string {
	candidates := []string{
		filepath.Join(p.TplDir, "style.css"),
		"/app/templates/style.css",
		"./style.css",
	}
	for _, c := range candidates {
		if b, err := os.ReadFile(c); err == nil {
			return string(b)
		}
	}
	return ""
}

// Parse returns the preview document as a visual node tree.
func (p *PreviewRenderer) Parse(resume *model.Resume) (*html.Node, error) {
	rendered, err := p.RenderHTML(resume)
	if err != nil {
		return nil, err
	}
	return html.Parse(strings.NewReader(rendered))
}
