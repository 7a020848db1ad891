// Package settings evaluates a settings file into a validated project tree.
//
// Evaluation is a single synchronous pass: every declared build type is created
// through the defaults applier in file order, customized from its declaration,
// and registered in its project. The finished tree is validated once at the end.
package settings
