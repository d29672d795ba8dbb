// Command exporter converts a resume JSON file into one of the supported
// export formats from the terminal.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"resume-exporter/internal/model"
	"resume-exporter/internal/usecase"
	infra "resume-exporter/pkg/infrastructure"
)

// surveyPrompter asks for the filename interactively. Ctrl-C cancels the
// export without an error.
type surveyPrompter struct{}

func (surveyPrompter) Prompt(suggestion string) (string, bool, error) {
	var name string
	err := survey.AskOne(&survey.Input{
		Message: "Export filename:",
		Default: suggestion,
	}, &name)
	if errors.Is(err, terminal.InterruptErr) {
		return "", true, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, false, nil
}

func main() {
	var (
		in     = flag.String("in", "", "path to the resume JSON file")
		format = flag.String("format", "json", "export format: latex|docx|html|markdown|text|json|pdf|print")
		tplDir = flag.String("templates", "templates", "preview templates directory")
		outDir = flag.String("out", "resume-data", "output base directory")
		prompt = flag.Bool("prompt", os.Getenv("PROMPT_EXPORT_FILENAME") == "true", "prompt for the output filename")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read resume: %v", err)
	}

	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		log.Fatalf("parse resume: %v", err)
	}
	if err := model.ValidateMap(asMap); err != nil {
		log.Fatalf("validate resume: %v", err)
	}
	var resume model.Resume
	if err := json.Unmarshal(raw, &resume); err != nil {
		log.Fatalf("decode resume: %v", err)
	}

	renderer := infra.NewChromedpRenderer()
	exporter := &usecase.Exporter{
		Resolver:   usecase.NewFilenameResolver(surveyPrompter{}),
		Preview:    usecase.NewPreviewRenderer(*tplDir),
		Sink:       infra.NewFileSink(*outDir),
		Rasterizer: renderer,
		Printer:    renderer,
		Titles:     usecase.NewMemoryTitleStore(resume.Title),
	}

	res, err := exporter.Export(context.Background(), &resume, usecase.Format(*format),
		usecase.ExportSettings{PromptExportFilename: *prompt})
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	switch {
	case res.Cancelled:
		fmt.Println("export cancelled")
	case res.Printed:
		fmt.Printf("print dispatched as %s\n", res.Filename)
		// The print runs in the background; hold the process open until it
		// lands or gives up.
		exporter.Wait()
	default:
		fmt.Printf("wrote %s\n", res.Path)
	}
}
