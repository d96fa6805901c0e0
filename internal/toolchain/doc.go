// Package toolchain abstracts the external cargo toolchain behind a small
// capability interface, so the runner's fail-fast logic can be exercised
// without spawning real child processes.
package toolchain
