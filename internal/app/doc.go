// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment (and an optional .env file), builds
// the concrete stores and services, and exposes them via the Wire struct for
// commands to use.
package app
