package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "git.home.luguber.info/inful/buildsettings/internal/errors"
)

func TestParseCheckoutMode(t *testing.T) {
	for in, want := range map[string]CheckoutMode{
		"ON_AGENT":  CheckoutOnAgent,
		"on-agent":  CheckoutOnAgent,
		"on_server": CheckoutOnServer,
		" manual ":  CheckoutManual,
		"auto":      CheckoutAuto,
	} {
		got, err := ParseCheckoutMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseCheckoutMode("on-cloud")
	require.Error(t, err)
}

func TestRequirementMatches(t *testing.T) {
	props := map[string]string{"teamcity.agent.jvm.os.name": "Windows Server 2019"}

	tests := []struct {
		name string
		req  Requirement
		want bool
	}{
		{"contains variant os name", Requirement{RequirementContains, "teamcity.agent.jvm.os.name", "Windows"}, true},
		{"contains mismatch", Requirement{RequirementContains, "teamcity.agent.jvm.os.name", "Linux"}, false},
		{"equals is exact", Requirement{RequirementEquals, "teamcity.agent.jvm.os.name", "Windows"}, false},
		{"equals full value", Requirement{RequirementEquals, "teamcity.agent.jvm.os.name", "Windows Server 2019"}, true},
		{"does not contain", Requirement{RequirementDoesNotContain, "teamcity.agent.jvm.os.name", "Linux"}, true},
		{"does not contain missing property", Requirement{RequirementDoesNotContain, "docker.version", "1"}, true},
		{"exists", Requirement{RequirementExists, "teamcity.agent.jvm.os.name", ""}, true},
		{"exists missing", Requirement{RequirementExists, "docker.version", ""}, false},
		{"contains missing property", Requirement{RequirementContains, "docker.version", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Matches(props))
		})
	}
}

func TestParams(t *testing.T) {
	var ps Params
	ps.Param("env.JAVA_HOME", "%linux.java8.oracle.64bit%")
	ps.Param("gradle.opts", "--info")
	ps.Param("env.JAVA_HOME", "/opt/jdk8")

	require.Len(t, ps, 2)
	assert.Equal(t, "env.JAVA_HOME", ps[0].Name)
	v, ok := ps.Get("env.JAVA_HOME")
	assert.True(t, ok)
	assert.Equal(t, "/opt/jdk8", v)
}

func TestParamsExpand(t *testing.T) {
	ps := Params{{Name: "a", Value: "A"}, {Name: "ref", Value: "%b%"}}
	fallback := func(name string) (string, bool) {
		if name == "b" {
			return "B", true
		}
		return "", false
	}

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"%a%", "A"},
		{"x%a%y%b%z", "xAyBz"},
		{"%missing%", "%missing%"},
		{"100%%", "100%"},
		{"%ref%", "%b%"},
		{"dangling %a", "dangling %a"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ps.Expand(tt.in, fallback), tt.in)
	}
	assert.Equal(t, "%b%", ps.Expand("%b%", nil))
}

func TestBuildTypeCompatibleWith(t *testing.T) {
	bt := &BuildType{ID: "Compile", Name: "Compile"}
	bt.SetParams(func(p *Params) { p.Param("os.fragment", "Linux") })
	bt.SetRequirements(func(r *Requirements) {
		r.Contains("teamcity.agent.jvm.os.name", "%os.fragment%")
		r.Exists("env.JAVA_HOME")
	})

	assert.True(t, bt.CompatibleWith(map[string]string{
		"teamcity.agent.jvm.os.name": "Linux",
		"env.JAVA_HOME":              "/opt/jdk",
	}))
	assert.False(t, bt.CompatibleWith(map[string]string{
		"teamcity.agent.jvm.os.name": "Windows 10",
		"env.JAVA_HOME":              "C:\\jdk",
	}))
	assert.False(t, bt.CompatibleWith(map[string]string{
		"teamcity.agent.jvm.os.name": "Linux",
	}))
}

func TestVCSSettingsRoot(t *testing.T) {
	root := &VCSRoot{ID: "Settings", URL: "https://example.com/repo.git"}
	var v VCSSettings
	v.Root(root)
	v.Root(root)
	v.Root(nil)
	assert.Equal(t, []ID{"Settings"}, v.Roots)
}

func TestProjectRegistrationOrder(t *testing.T) {
	p := NewProject("Root", "Root")
	for _, id := range []ID{"C", "A", "B"} {
		p.Register(&BuildType{ID: id, Name: string(id)})
	}

	assert.Equal(t, []ID{"C", "A", "B"}, p.BuildTypesOrder)
	ordered := p.OrderedBuildTypes()
	require.Len(t, ordered, 3)
	assert.Equal(t, ID("C"), ordered[0].ID)
	assert.Equal(t, ID("B"), ordered[2].ID)
	assert.NotNil(t, p.BuildType("A"))
	assert.Nil(t, p.BuildType("Z"))
}

func TestProjectTree(t *testing.T) {
	root := NewProject("Root", "Root")
	sub := NewProject("Root_Sub", "Sub")
	root.AddSubProject(sub)
	root.Register(&BuildType{ID: "A", Name: "A"})
	sub.Register(&BuildType{ID: "B", Name: "B"})
	sub.Register(&BuildType{ID: "C", Name: "C"})

	assert.Same(t, root, sub.Parent())
	assert.Nil(t, root.Parent())
	assert.Equal(t, 3, root.CountBuildTypes())

	var visited []ID
	require.NoError(t, root.Walk(func(p *Project) error {
		visited = append(visited, p.ID)
		return nil
	}))
	assert.Equal(t, []ID{"Root", "Root_Sub"}, visited)

	root.AddVCSRoot(&VCSRoot{ID: "Settings"})
	root.AddVCSRoot(&VCSRoot{ID: "Settings"})
	assert.Len(t, root.VCSRoots, 1)
}

func TestProjectValidate(t *testing.T) {
	t.Run("valid tree", func(t *testing.T) {
		root := NewProject("Root", "Root")
		root.AddVCSRoot(&VCSRoot{ID: "Settings"})
		bt := &BuildType{ID: "Compile", Name: "Compile"}
		bt.VCS.Roots = []ID{"Settings"}
		bt.Requirements.Contains("teamcity.agent.jvm.os.name", "Linux")
		root.Register(bt)
		require.NoError(t, root.Validate())
	})

	t.Run("collects every problem", func(t *testing.T) {
		root := NewProject("Root", "Root")
		sub := NewProject("Root_Sub", "Sub")
		root.AddSubProject(sub)
		root.Register(&BuildType{ID: "Compile", Name: "Compile"})
		sub.Register(&BuildType{ID: "Compile", Name: "Compile again"})
		bad := &BuildType{ID: "1bad", Name: ""}
		bad.Requirements.Exists("")
		bad.VCS.Roots = []ID{"Missing"}
		sub.Register(bad)

		err := root.Validate()
		require.Error(t, err)
		verrs, ok := err.(serrors.ValidationErrors)
		require.True(t, ok)
		assert.Len(t, verrs, 5)
		assert.True(t, serrors.IsCategory(err, serrors.CategoryValidation))
	})

	t.Run("ids are unique across kinds", func(t *testing.T) {
		root := NewProject("Root", "Root")
		root.AddVCSRoot(&VCSRoot{ID: "Root_Tools"})
		sub := NewProject("Root_Release", "Release")
		root.AddSubProject(sub)
		root.Register(&BuildType{ID: "Root", Name: "Same as project"})
		root.Register(&BuildType{ID: "Root_Tools", Name: "Same as root"})
		sub.Register(&BuildType{ID: "Root_Release", Name: "Same as sub-project"})

		err := root.Validate()
		require.Error(t, err)
		verrs, ok := err.(serrors.ValidationErrors)
		require.True(t, ok)
		require.Len(t, verrs, 3)
		assert.Equal(t, "project", verrs[0].Context["conflicts_with"])
		assert.Equal(t, "vcs_root", verrs[1].Context["conflicts_with"])
		assert.Equal(t, "project", verrs[2].Context["conflicts_with"])
	})
}
