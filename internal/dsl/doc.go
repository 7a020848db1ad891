// Package dsl provides the in-memory object model for CI build server settings:
// projects, build types, requirements, parameters and VCS bindings.
//
// The model is built in a single synchronous evaluation pass. Helpers mutate
// entities directly; Project.Validate runs the structural checks the build
// server would apply (identifier format, duplicate ids) once the tree is complete.
//
// Ambient settings state (the root project id and the repository holding the
// settings) is passed explicitly as a Context value.
package dsl
