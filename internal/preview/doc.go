// Package preview serves a rendered README over HTTP, rebuilds it when the
// file changes, and writes static builds.
package preview
