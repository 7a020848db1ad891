package commands

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/buildsettings/internal/config"
	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
	"git.home.luguber.info/inful/buildsettings/internal/export"
	"git.home.luguber.info/inful/buildsettings/internal/logfields"
	"git.home.luguber.info/inful/buildsettings/internal/metrics"
	"git.home.luguber.info/inful/buildsettings/internal/settings"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	// Stdout receives exported settings and command output; defaults to os.Stdout.
	Stdout io.Writer
}

func (g *Global) stdout() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Settings file path" default:"settings.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Evaluate the settings file and export the generated settings"`
	Validate ValidateCmd `cmd:"" help:"Evaluate and validate the settings file without exporting"`
	Init     InitCmd     `cmd:"" help:"Initialize a new settings file"`
	StripID  StripIDCmd  `cmd:"" name:"strip-id" help:"Remove the root project prefix from an identifier"`
	Match    MatchCmd    `cmd:"" help:"List build types an agent with the given properties could run"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate settings whenever the settings file changes"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

// configureLogging applies the settings file's logging section unless --verbose was given.
func configureLogging(g *Global, lc config.LoggingConfig, verbose bool) {
	if verbose {
		return
	}
	var level slog.Level
	switch lc.Level {
	case config.LogLevelDebug:
		level = slog.LevelDebug
	case config.LogLevelWarn:
		level = slog.LevelWarn
	case config.LogLevelError:
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if lc.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	g.Logger = slog.New(handler)
	slog.SetDefault(g.Logger)
}

// evaluation is a loaded settings file and the project tree it produced.
type evaluation struct {
	cfg    *config.Config
	result *settings.Result
}

// evaluate loads and evaluates the settings file, reporting to rec.
func evaluate(g *Global, root *CLI, rec metrics.Recorder) (*evaluation, error) {
	start := time.Now()
	fail := func(err error) (*evaluation, error) {
		var verrs serrors.ValidationErrors
		if stderrors.As(err, &verrs) {
			rec.AddValidationProblems(len(verrs))
			rec.ObserveGeneration(time.Since(start), metrics.ResultInvalid)
		} else {
			rec.ObserveGeneration(time.Since(start), metrics.ResultFailed)
		}
		return nil, err
	}

	cfg, err := config.Load(root.Config)
	if err != nil {
		return fail(err)
	}
	configureLogging(g, cfg.Logging, root.Verbose)

	res, err := settings.Evaluate(cfg, settings.Options{
		SettingsDir: filepath.Dir(root.Config),
		Logger:      g.Logger,
	})
	if err != nil {
		return fail(err)
	}

	_ = res.Project.Walk(func(p *dsl.Project) error {
		rec.SetBuildTypes(string(p.ID), len(p.BuildTypes))
		return nil
	})
	rec.ObserveGeneration(time.Since(start), metrics.ResultSuccess)
	return &evaluation{cfg: cfg, result: res}, nil
}

// writeOutput exports the project to path, or to stdout when path is empty.
func writeOutput(g *Global, ev *evaluation, format export.Format, path string) error {
	if path == "" {
		return export.Write(g.stdout(), format, ev.result.Project)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return serrors.FileSystemError("create output directory", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return serrors.FileSystemError("create output file", err)
	}
	if err := export.Write(f, format, ev.result.Project); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return serrors.FileSystemError("close output file", err)
	}
	g.Logger.Info("Settings written", logfields.Path(path), logfields.Format(string(format)))
	return nil
}

// resolveFormat applies flag > settings file precedence.
func resolveFormat(flag string, cfg *config.Config) (export.Format, error) {
	if flag == "" {
		return export.Format(cfg.Output.Format), nil
	}
	f, err := config.ParseOutputFormat(flag)
	if err != nil {
		return "", serrors.ValidationFailed("--format", err.Error())
	}
	return export.Format(f), nil
}
