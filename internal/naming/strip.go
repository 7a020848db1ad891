// Package naming normalizes generated build configuration identifiers.
package naming

import "strings"

// Separator joins a parent project id and a child name in generated ids.
const Separator = "_"

// RootPrefix returns the namespacing prefix contributed by a root project id.
func RootPrefix(rootProjectID string) string {
	return rootProjectID + Separator
}

// StripRootProject removes the first occurrence of "<rootProjectID>_" from id.
// Later occurrences are kept so ids that legitimately repeat the root name survive.
// An empty root id leaves id unchanged.
func StripRootProject(id, rootProjectID string) string {
	if rootProjectID == "" {
		return id
	}
	return strings.Replace(id, RootPrefix(rootProjectID), "", 1)
}
