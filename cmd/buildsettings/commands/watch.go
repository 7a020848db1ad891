package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/buildsettings/internal/config"
	"git.home.luguber.info/inful/buildsettings/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	GenerateCmd
	Debounce time.Duration `help:"Quiet period before regenerating" default:"500ms"`
}

func (w *WatchCmd) Run(global *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The first generation surfaces configuration errors immediately.
	if err := w.GenerateCmd.Run(global, root); err != nil {
		return err
	}

	r := &regenerator{global: global, root: root, generate: &w.GenerateCmd}
	r.remember()

	fw, err := watch.New(root.Config, w.Debounce, r.onChange, global.Logger)
	if err != nil {
		return err
	}
	return fw.Run(ctx)
}

// regenerator reruns generate when the settings content actually changed.
type regenerator struct {
	global   *Global
	root     *CLI
	generate *GenerateCmd
	last     string
}

func (r *regenerator) remember() {
	if cfg, err := config.Load(r.root.Config); err == nil {
		r.last = cfg.Snapshot()
	}
}

func (r *regenerator) onChange(context.Context) error {
	cfg, err := config.Load(r.root.Config)
	if err != nil {
		return err
	}
	snap := cfg.Snapshot()
	if snap == r.last {
		r.global.Logger.Debug("Settings unchanged, skipping regeneration")
		return nil
	}
	if err := r.generate.Run(r.global, r.root); err != nil {
		return err
	}
	r.last = snap
	return nil
}
