// Package match provides identifier normalization and edit distance for
// lenient member lookup and "did you mean" suggestions.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so OrderID, order_id and orderId compare equal
//   - Levenshtein: computes edit distance between identifiers
//   - Suggest: ranks candidate names by similarity to a missing name
package match
