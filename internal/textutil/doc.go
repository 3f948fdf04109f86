// Package textutil provides the low-level text cleaning primitives used by the
// field formatters and the canonical id builder.
//
// The helpers are deliberately small and pure:
//   - StripDelimiters removes BibTeX value decoration (braces, quotes,
//     trailing commas) from a raw field fragment
//   - LettersOnly reduces text to its ASCII letters for id components
//   - CollapseSpaces folds whitespace runs into single spaces
package textutil
