// Package plan defines the fixed, ordered sequence of build and run steps
// that makes up a validation sweep, and loads it from the HCL document
// embedded in the binary. The plan is authored at build time and is never
// mutated or overridden at runtime.
package plan
