// Package venue maps free-text publication venue strings to canonical venue
// names using an ordered keyword rule table.
//
// Matching is a full scan with no early exit: every rule whose keywords match
// is recorded, and the last applicable rule wins. Rule order is therefore a
// priority mechanism — later rules deliberately override earlier ones, and
// user-supplied rules are appended after the built-in table so they always
// take precedence.
package venue
