// Package render turns README markdown into a standalone, sanitized HTML page.
//
// The pipeline is fixed: relative asset rewriting, GitHub-flavoured markdown
// conversion, allow-list sanitization, anchor hardening, then the themed page
// shell. Every stage is a pure function of its input, and the package-level
// Renderer is safe for concurrent use.
package render
