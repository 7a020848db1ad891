package commands

import (
	"git.home.luguber.info/inful/buildsettings/internal/logfields"
	"git.home.luguber.info/inful/buildsettings/internal/metrics"

	prom "github.com/prometheus/client_golang/prometheus"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output      string `short:"o" help:"Write settings to this file instead of the configured path or stdout" type:"path"`
	Format      string `short:"f" help:"Output format: yaml, json, kotlin, markdown, html"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus textfile metrics here" type:"path"`
	Stdout      bool   `help:"Always write to stdout, ignoring output.path"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	rec, flush := g.recorder(global)
	ev, err := evaluate(global, root, rec)
	if err != nil {
		flush("")
		return err
	}
	flush(ev.cfg.Metrics.TextfilePath)

	format, err := resolveFormat(g.Format, ev.cfg)
	if err != nil {
		return err
	}
	path := ev.cfg.Output.Path
	if g.Output != "" {
		path = g.Output
	}
	if g.Stdout {
		path = ""
	}
	return writeOutput(global, ev, format, path)
}

// recorder returns a Prometheus recorder and a flush func that writes the
// textfile to --metrics-file, falling back to the settings file's path.
func (g *GenerateCmd) recorder(global *Global) (metrics.Recorder, func(fallback string)) {
	reg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	return rec, func(fallback string) {
		path := g.MetricsFile
		if path == "" {
			path = fallback
		}
		if path == "" {
			return
		}
		if err := rec.WriteTextfile(path); err != nil {
			global.Logger.Warn("Failed to write metrics textfile", logfields.Path(path), logfields.Error(err))
		}
	}
}
