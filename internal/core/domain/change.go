package domain

// ChangeType describes what happened to a watched document.
type ChangeType int

const (
	// ChangeCreated means a new document appeared.
	ChangeCreated ChangeType = iota

	// ChangeUpdated means an existing document was modified.
	ChangeUpdated

	// ChangeDeleted means a document was removed or renamed away.
	ChangeDeleted
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change is a single document change reported by a watching source.
// Document is nil for deletions.
type Change struct {
	Type      ChangeType
	Reference string
	Document  *RawDocument
}
