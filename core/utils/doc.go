// Package utils provides common utility functions for the pantry-manager
// application. It includes lenient type conversion helpers shared by the
// form-facing handlers and the reconcile engine.
package utils
