package settings

import (
	"log/slog"

	"git.home.luguber.info/inful/buildsettings/internal/config"
	"git.home.luguber.info/inful/buildsettings/internal/defaults"
	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
	"git.home.luguber.info/inful/buildsettings/internal/logfields"
	"git.home.luguber.info/inful/buildsettings/internal/platform"
	"git.home.luguber.info/inful/buildsettings/internal/vcs"
)

// RootDetector resolves the settings VCS root when the file does not declare one.
type RootDetector func(dir string, rootProjectID dsl.ID) (*dsl.VCSRoot, error)

// Options tune an evaluation.
type Options struct {
	// SettingsDir is where the settings file lives; used for root detection.
	SettingsDir string
	// DetectRoot defaults to vcs.DetectSettingsRoot.
	DetectRoot RootDetector
	Logger     *slog.Logger
}

// Result is an evaluated settings tree.
type Result struct {
	Project *dsl.Project
	Context *dsl.Context
}

// Evaluate builds and validates the project tree declared by cfg. cfg must have
// been prepared by config.Prepare (or loaded with config.Load).
func Evaluate(cfg *config.Config, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DetectRoot == nil {
		opts.DetectRoot = vcs.DetectSettingsRoot
	}

	org, err := organizationDefaults(cfg.Defaults)
	if err != nil {
		return nil, err
	}

	root := dsl.NewProject(dsl.ID(cfg.Project.ID), cfg.Project.Name)
	root.Description = cfg.Project.Description

	settingsRoot, err := resolveSettingsRoot(cfg.Project.SettingsRoot, root.ID, opts)
	if err != nil {
		return nil, err
	}
	root.AddVCSRoot(settingsRoot)

	e := &evaluator{
		ctx:     dsl.NewContext(root.ID, settingsRoot),
		org:     org,
		applier: defaults.NewApplier(org, opts.Logger),
		logger:  opts.Logger,
	}
	if err := e.project(root, &cfg.Project); err != nil {
		return nil, err
	}

	if err := root.Validate(); err != nil {
		return nil, err
	}
	opts.Logger.Info("Settings evaluated",
		logfields.Project(string(root.ID)),
		logfields.Count(root.CountBuildTypes()))
	return &Result{Project: root, Context: e.ctx}, nil
}

func organizationDefaults(dc config.DefaultsConfig) (defaults.Defaults, error) {
	org := defaults.DefaultOrganization()
	if dc.ArtifactRules != "" {
		org.ArtifactRules = dc.ArtifactRules
	}
	if dc.OS != "" {
		os, err := platform.Parse(dc.OS)
		if err != nil {
			return org, serrors.ValidationFailed("defaults.os", err.Error())
		}
		org.OS = os
	}
	if dc.CheckoutMode != "" {
		mode, err := dsl.ParseCheckoutMode(dc.CheckoutMode)
		if err != nil {
			return org, serrors.ValidationFailed("defaults.checkout_mode", err.Error())
		}
		org.CheckoutMode = mode
	}
	return org, nil
}

func resolveSettingsRoot(rc *config.VCSRootConfig, rootID dsl.ID, opts Options) (*dsl.VCSRoot, error) {
	if rc != nil {
		r := vcsRoot(*rc, rootID)
		if rc.ID == "" && rc.Name == "" {
			r.ID = dsl.ToID("Settings", string(rootID))
			r.Name = vcs.RepositoryName(rc.URL)
		}
		return r, nil
	}
	if opts.SettingsDir == "" {
		return nil, serrors.ConfigRequired("project.settings_root")
	}
	return opts.DetectRoot(opts.SettingsDir, rootID)
}

func vcsRoot(rc config.VCSRootConfig, projectID dsl.ID) *dsl.VCSRoot {
	id := dsl.ID(rc.ID)
	if id == "" {
		id = dsl.ToID(rc.Name, string(projectID))
	}
	name := rc.Name
	if name == "" {
		name = vcs.RepositoryName(rc.URL)
	}
	return &dsl.VCSRoot{ID: id, Name: name, URL: rc.URL, Branch: rc.Branch, BranchSpec: rc.BranchSpec}
}

type evaluator struct {
	ctx     *dsl.Context
	org     defaults.Defaults
	applier *defaults.Applier
	logger  *slog.Logger
}

func (e *evaluator) project(p *dsl.Project, pc *config.ProjectConfig) error {
	for _, rc := range pc.VCSRoots {
		p.AddVCSRoot(vcsRoot(rc, p.ID))
	}
	for i := range pc.BuildTypes {
		btc := &pc.BuildTypes[i]
		if _, err := e.applier.BuildType(e.ctx, p, btc.Name, e.customize(p, btc)); err != nil {
			return err
		}
	}
	for i := range pc.SubProjects {
		spc := &pc.SubProjects[i]
		sp := dsl.NewProject(dsl.ID(spc.ID), spc.Name)
		sp.Description = spc.Description
		p.AddSubProject(sp)
		if err := e.project(sp, spc); err != nil {
			return err
		}
	}
	return nil
}
