package dsl

// Context carries the settings evaluation state that build type helpers need:
// the root project id used for prefix stripping and the VCS root holding the settings.
type Context struct {
	ProjectID    ID
	SettingsRoot *VCSRoot
}

// NewContext creates a Context for the given root project.
func NewContext(projectID ID, settingsRoot *VCSRoot) *Context {
	return &Context{ProjectID: projectID, SettingsRoot: settingsRoot}
}
