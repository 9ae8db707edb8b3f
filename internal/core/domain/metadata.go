package domain

// Metadata is an ordered multimap of document fields.
// Field insertion order is preserved, as is the order of values within
// a field. Values may repeat. Field names are compared exactly.
//
// A Metadata is scoped to one document and has a single writer at a time,
// so it is not safe for concurrent mutation.
type Metadata struct {
	fields []string
	values map[string][]string
}

// NewMetadata creates an empty metadata store.
func NewMetadata() *Metadata {
	return &Metadata{
		values: make(map[string][]string),
	}
}

// MetadataFrom creates a metadata store from a plain map.
// Fields are inserted in map iteration order, so callers that care about
// field order should use Add instead.
func MetadataFrom(m map[string][]string) *Metadata {
	md := NewMetadata()
	for field, values := range m {
		md.Set(field, values...)
	}
	return md
}

// Get returns the first value of a field.
func (m *Metadata) Get(field string) (string, bool) {
	vals := m.values[field]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// GetAll returns a copy of all values of a field, in insertion order.
// Returns nil if the field is absent.
func (m *Metadata) GetAll(field string) []string {
	vals, ok := m.values[field]
	if !ok {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// Has reports whether the field exists.
func (m *Metadata) Has(field string) bool {
	_, ok := m.values[field]
	return ok
}

// Set replaces all values of a field.
// Setting no values removes the field.
func (m *Metadata) Set(field string, values ...string) {
	if len(values) == 0 {
		m.Remove(field)
		return
	}
	m.ensure()
	if _, ok := m.values[field]; !ok {
		m.fields = append(m.fields, field)
	}
	m.values[field] = append([]string(nil), values...)
}

// Add appends values to a field, creating it if needed.
func (m *Metadata) Add(field string, values ...string) {
	if len(values) == 0 {
		return
	}
	m.ensure()
	if _, ok := m.values[field]; !ok {
		m.fields = append(m.fields, field)
	}
	m.values[field] = append(m.values[field], values...)
}

// Remove deletes a field and returns the values it held.
func (m *Metadata) Remove(field string) []string {
	vals, ok := m.values[field]
	if !ok {
		return nil
	}
	delete(m.values, field)
	for i, f := range m.fields {
		if f == field {
			m.fields = append(m.fields[:i], m.fields[i+1:]...)
			break
		}
	}
	return vals
}

// Fields returns field names in insertion order.
func (m *Metadata) Fields() []string {
	out := make([]string, len(m.fields))
	copy(out, m.fields)
	return out
}

// Len returns the number of fields.
func (m *Metadata) Len() int {
	return len(m.fields)
}

// Clone returns a deep copy.
func (m *Metadata) Clone() *Metadata {
	c := NewMetadata()
	for _, f := range m.fields {
		c.fields = append(c.fields, f)
		c.values[f] = append([]string(nil), m.values[f]...)
	}
	return c
}

// Map returns a plain map copy, mostly useful for serialisation.
func (m *Metadata) Map() map[string][]string {
	out := make(map[string][]string, len(m.fields))
	for _, f := range m.fields {
		out[f] = append([]string(nil), m.values[f]...)
	}
	return out
}

// Equal reports whether both stores hold the same fields with the same
// ordered values. Field order is not significant.
func (m *Metadata) Equal(other *Metadata) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.fields) != len(other.fields) {
		return false
	}
	for f, vals := range m.values {
		ovals, ok := other.values[f]
		if !ok || len(ovals) != len(vals) {
			return false
		}
		for i := range vals {
			if vals[i] != ovals[i] {
				return false
			}
		}
	}
	return true
}

func (m *Metadata) ensure() {
	if m.values == nil {
		m.values = make(map[string][]string)
	}
}
