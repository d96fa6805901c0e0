// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the validation sweep lifecycle, decoupled
// from the CLI entrypoint.
package app
