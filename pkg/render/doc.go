// Package render turns a compiled controller definition plus its live state
// into per-field render descriptors: label text, class names (including the
// conditional "required" token), input kind, displayed value and the mapping
// from raw input events to update actions. Descriptors are cheap to build and
// are meant to be re-evaluated after every state change. Concrete runtimes
// (HTML, terminal) live under pkg/renderers and implement Renderer.
package render
