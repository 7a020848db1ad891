package defaults

import (
	"git.home.luguber.info/inful/buildsettings/internal/dsl"
	"git.home.luguber.info/inful/buildsettings/internal/platform"
)

// RetargetOS moves a build type created with the from defaults onto os: the
// default OS requirement and JAVA_HOME reference are replaced in place.
// Requirements and params added by callers are left alone.
func RetargetOS(bt *dsl.BuildType, from, os platform.OS) {
	for i, r := range bt.Requirements {
		if r.Type == dsl.RequirementContains && r.Name == AgentOSProperty && r.Value == from.RequirementName() {
			bt.Requirements[i].Value = os.RequirementName()
		}
	}
	if v, ok := bt.Params.Get(JavaHomeParam); ok && v == Java8HomeRef(from) {
		Java8Home(&bt.Params, os)
	}
}
