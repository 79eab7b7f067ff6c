// Package repository infers the GitHub owner and name of the project a README
// belongs to. Absence of metadata is an ordinary outcome reported through a
// boolean, never an error.
package repository
