// Package scaffold writes the files `readme-preview init` adds to a project:
// a CI workflow that runs the strict check, README boilerplate and a
// placeholder screenshot.
package scaffold
