// Package taggers holds the metadata taggers of the import chain.
//
// Each tagger lives in its own sub-package and implements
// driven.DocumentTagger:
//
//   - pattern: TextPatternTagger, stores regex matches or capture groups
//   - between: TextBetweenTagger, stores text between start and end expressions
//
// Both read the content stream once, decode it to text unless it was already
// parsed, and scan no more than MaxReadSize characters.
package taggers
