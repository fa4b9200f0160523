// Package match provides name normalization, Levenshtein distance and
// candidate ranking used to suggest the interface a caller most likely
// meant when it names one that was never declared castable.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Score: similarity of two type names after normalization
//   - Rank: ranks known type names against a requested one
//   - Suggest: the top ranked names above the similarity threshold
package match
