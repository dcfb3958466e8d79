// Package blocklist holds the exact-match word blocklist for the game
// dictionary.
//
// The table is a union of thematic categories assembled once at package
// initialisation and never modified afterwards. Callers only ever see copies:
//
//   - Get returns a fresh Set on every call
//   - Categories returns copied category slices
//   - Contains answers membership without exposing the table
//
// # Matching
//
// A word is blocked iff its lowercased, trimmed form equals an entry. There
// is no substring, prefix or stem matching: "ass" is blocked while
// "assassin", "bass" and "assault" are not.
package blocklist
