// Package defaults registers build types with the organization-wide defaults
// applied: artifact rules, an agent OS requirement, the JAVA_HOME parameter and
// on-agent checkout of the settings repository.
package defaults

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
	"git.home.luguber.info/inful/buildsettings/internal/logfields"
	"git.home.luguber.info/inful/buildsettings/internal/naming"
	"git.home.luguber.info/inful/buildsettings/internal/platform"
)

const (
	// AgentOSProperty is the agent property holding the JVM-reported OS name.
	AgentOSProperty = "teamcity.agent.jvm.os.name"
	// JavaHomeParam points builds at the JDK 8 installation.
	JavaHomeParam = "env.JAVA_HOME"
	// DefaultArtifactRules publishes build reports.
	DefaultArtifactRules = "build/reports/** => reports"
	// UseInternalScansServer is the gradle argument routing build scans to the internal server.
	UseInternalScansServer = "-I gradle/init-scripts/build-scan.init.gradle.kts"
)

// Defaults are the values applied to every newly registered build type.
type Defaults struct {
	ArtifactRules string
	OS            platform.OS
	CheckoutMode  dsl.CheckoutMode
}

// DefaultOrganization returns the organization-wide defaults.
func DefaultOrganization() Defaults {
	return Defaults{
		ArtifactRules: DefaultArtifactRules,
		OS:            platform.Linux,
		CheckoutMode:  dsl.CheckoutOnAgent,
	}
}

// AgentRequirement requires the agent's OS name to contain the family's match string.
func AgentRequirement(bt *dsl.BuildType, os platform.OS) {
	bt.SetRequirements(func(r *dsl.Requirements) {
		r.Contains(AgentOSProperty, os.RequirementName())
	})
}

// Java8Home sets JAVA_HOME to the agent-side JDK 8 location parameter of os.
// The reference is resolved by the build server, not here.
func Java8Home(params *dsl.Params, os platform.OS) {
	params.Param(JavaHomeParam, Java8HomeRef(os))
}

// Java8HomeRef is the parameter reference for the JDK 8 location on os.
func Java8HomeRef(os platform.OS) string {
	return fmt.Sprintf("%%%s.java8.oracle.64bit%%", os.Name())
}

// Init customizes a build type after defaults have been applied.
type Init func(bt *dsl.BuildType) error

// Applier creates build types carrying the configured defaults.
type Applier struct {
	defaults Defaults
	logger   *slog.Logger
}

// NewApplier creates an Applier. A nil logger uses slog.Default().
func NewApplier(d Defaults, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{defaults: d, logger: logger}
}

// BuildType creates a build type named name in project, applies defaults, runs
// init and registers the result. The id is derived from name under the project
// id with the root project prefix stripped. When init fails nothing is registered.
func (a *Applier) BuildType(ctx *dsl.Context, project *dsl.Project, name string, init Init) (*dsl.BuildType, error) {
	if name == "" {
		return nil, serrors.ConfigRequired("build_type.name").WithContext("project", string(project.ID))
	}
	if dsl.ToID(name, "") == "" {
		return nil, serrors.UnusableName(name, "it contains no latin letters").WithContext("project", string(project.ID))
	}

	bt := &dsl.BuildType{Name: name}
	bt.ID = dsl.RelativeID(naming.StripRootProject(string(dsl.ToID(name, string(project.ID))), string(ctx.ProjectID)))
	bt.UUID = dsl.StableUUID(bt.ID)
	bt.ArtifactRules = a.defaults.ArtifactRules
	AgentRequirement(bt, a.defaults.OS)
	bt.SetParams(func(p *dsl.Params) {
		Java8Home(p, a.defaults.OS)
	})
	bt.SetVCS(func(v *dsl.VCSSettings) {
		v.Root(ctx.SettingsRoot)
		v.CheckoutMode = a.defaults.CheckoutMode
	})

	if init != nil {
		if err := init(bt); err != nil {
			return nil, serrors.CustomizationFailed(name, err)
		}
	}

	project.Register(bt)
	a.logger.Debug("Registered build type",
		logfields.Project(string(project.ID)),
		logfields.BuildTypeID(string(bt.ID)),
		logfields.BuildType(bt.Name))
	return bt, nil
}
