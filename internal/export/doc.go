// Package export serializes an evaluated project tree for the build server
// and for people: YAML and JSON documents, a Kotlin DSL rendering, and a
// Markdown or HTML summary. Build types always appear in registration order.
package export
