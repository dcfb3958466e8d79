// Package commands defines the spellblock CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - report       Diff the blocklist against the base word list
//   - check        Report whether words are blocked
//   - categories   Print entry counts per blocklist category
//   - fingerprint  Print a short fingerprint of the blocklist contents
//   - export       Write blocklist.json for the front end
//   - build        Filter the base list and write words.txt plus Merkle proofs
//   - validate     Check a play against length, letter pool, dictionary and blocklist
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (stores, services, logger) before any subcommand runs. Results are written
// to the command's stdout; logs go to stderr.
package commands
