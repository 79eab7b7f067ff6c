// Package errors provides the classified error type used across readme-preview.
//
// Errors carry a category (what kind of failure), a severity (how bad it is)
// and structured context. The CLI adapter maps categories to process exit
// codes and decides how much detail to print.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "could not read file").
//		WithContext("file", path).
//		Build()
package errors
