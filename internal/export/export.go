package export

import (
	"fmt"
	"io"

	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
)

// Format names an export representation.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatKotlin   Format = "kotlin"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Exporter writes a project tree in one representation.
type Exporter interface {
	Export(w io.Writer, p *dsl.Project) error
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func(w io.Writer, p *dsl.Project) error

func (f ExporterFunc) Export(w io.Writer, p *dsl.Project) error { return f(w, p) }

var exporters = map[Format]Exporter{
	FormatYAML:     ExporterFunc(writeYAML),
	FormatJSON:     ExporterFunc(writeJSON),
	FormatKotlin:   ExporterFunc(writeKotlin),
	FormatMarkdown: ExporterFunc(writeMarkdown),
	FormatHTML:     ExporterFunc(writeHTML),
}

// For returns the exporter for format.
func For(format Format) (Exporter, error) {
	e, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	return e, nil
}

// Write exports p to w in format.
func Write(w io.Writer, format Format, p *dsl.Project) error {
	e, err := For(format)
	if err != nil {
		return serrors.RenderError(string(format), err)
	}
	if err := e.Export(w, p); err != nil {
		return serrors.RenderError(string(format), err)
	}
	return nil
}
