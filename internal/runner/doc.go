// Package runner executes a validation plan strictly in order, one step at a
// time, aborting the sweep at the first failure. Nothing is retried and
// nothing is rolled back; the toolchain owns all side effects.
package runner
