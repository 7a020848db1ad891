package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *SettingsError {
	return New(CategoryConfig, SeverityFatal, "settings file not found").
		WithContext("path", path)
}

func ConfigRequired(field string) *SettingsError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ConfigParse(path string, cause error) *SettingsError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "failed to parse settings file").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SettingsError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Model errors

func InvalidID(id, reason string) *SettingsError {
	return New(CategoryValidation, SeverityFatal, "invalid identifier: "+reason).
		WithContext("id", id)
}

func DuplicateID(id string) *SettingsError {
	return New(CategoryValidation, SeverityFatal, "duplicate id").
		WithContext("id", id)
}

func UnusableName(name, reason string) *SettingsError {
	return New(CategoryConfig, SeverityFatal, "name cannot produce an identifier: "+reason).
		WithContext("name", name)
}

func CustomizationFailed(buildType string, cause error) *SettingsError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "build type customization failed").
		WithContext("build_type", buildType)
}

// VCS errors

func VCSDetectError(path string, cause error) *SettingsError {
	return Wrap(cause, CategoryVCS, SeverityFatal, "settings repository detection failed").
		WithContext("path", path)
}

// Output errors

func RenderError(format string, cause error) *SettingsError {
	return Wrap(cause, CategoryRender, SeverityFatal, "settings export failed").
		WithContext("format", format)
}

func FileSystemError(operation string, cause error) *SettingsError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filesystem operation failed").
		WithContext("operation", operation)
}

// Internal errors

func InternalError(message string, cause error) *SettingsError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
