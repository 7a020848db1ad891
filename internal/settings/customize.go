package settings

import (
	"git.home.luguber.info/inful/buildsettings/internal/config"
	"git.home.luguber.info/inful/buildsettings/internal/defaults"
	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	"git.home.luguber.info/inful/buildsettings/internal/logfields"
	"git.home.luguber.info/inful/buildsettings/internal/platform"
)

// customize returns the init callback applying a build type declaration on top
// of the defaults.
func (e *evaluator) customize(p *dsl.Project, btc *config.BuildTypeConfig) defaults.Init {
	return func(bt *dsl.BuildType) error {
		if btc.OS != "" {
			os, err := platform.Parse(btc.OS)
			if err != nil {
				return err
			}
			if os != e.org.OS {
				defaults.RetargetOS(bt, e.org.OS, os)
				e.logger.Debug("Retargeted build type", logfields.BuildTypeID(string(bt.ID)), logfields.OS(os.Name()))
			}
		}
		if btc.Description != "" {
			bt.Description = btc.Description
		}
		if btc.ArtifactRules != "" {
			bt.ArtifactRules = btc.ArtifactRules
		}
		if btc.CheckoutMode != "" {
			mode, err := dsl.ParseCheckoutMode(btc.CheckoutMode)
			if err != nil {
				return err
			}
			bt.VCS.CheckoutMode = mode
		}
		for _, name := range btc.VCSRoots {
			bt.VCS.Root(e.lookupRoot(p, name))
		}
		bt.SetParams(func(ps *dsl.Params) {
			for _, pc := range btc.Params {
				ps.Param(pc.Name, pc.Value)
			}
		})
		bt.SetRequirements(func(rs *dsl.Requirements) {
			for _, rc := range btc.Requirements {
				*rs = append(*rs, dsl.Requirement{Type: dsl.RequirementType(rc.Type), Name: rc.Name, Value: rc.Value})
			}
		})
		for _, sc := range btc.Steps {
			bt.AddStep(sc.Name, sc.Script)
		}
		return nil
	}
}

// lookupRoot finds a VCS root by id or name in p or its ancestors. Unknown
// references are kept as bare ids so validation reports them.
func (e *evaluator) lookupRoot(p *dsl.Project, ref string) *dsl.VCSRoot {
	for q := p; q != nil; q = q.Parent() {
		for _, r := range q.VCSRoots {
			if string(r.ID) == ref || r.Name == ref {
				return r
			}
		}
	}
	return &dsl.VCSRoot{ID: dsl.ID(ref)}
}
