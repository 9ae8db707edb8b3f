// Package extract pulls field values out of document text.
//
// Two engines are provided. PatternExtractor scans content with regular
// expressions and stores whole matches or capture groups. BetweenExtractor
// stores the text found between a start and an end expression.
//
// Both work on a bounded rune buffer produced by ReadBounded, so content past
// the configured max read size is never inspected. Expressions use a
// backtracking dialect with lazy quantifiers and lookaround, compiled in
// dot-all mode. Each search is limited by a match timeout; a timeout is
// returned as an error rather than hanging the import.
package extract
