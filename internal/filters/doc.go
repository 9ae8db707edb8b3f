// Package filters holds the document filters of the import chain.
//
//   - content: RegexContentFilter, fires when content matches a regex
//   - metadata: MetadataFilter, fires when metadata matches field/value criteria
//   - keyword: KeywordFilter, fires when content contains a keyword
//
// Each filter fires on its own criterion and hands the outcome to
// handler.Filter, which applies the onMatch policy. A filter that does not
// apply or does not fire accepts the document.
package filters
