// Package vcs locates the repository that holds the settings being generated
// and describes it as the settings VCS root.
package vcs
