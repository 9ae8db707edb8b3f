package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	md := NewMetadata()
	require.NotNil(t, md)
	assert.Equal(t, 0, md.Len())
	assert.Empty(t, md.Fields())
}

func TestMetadata_Get(t *testing.T) {
	md := NewMetadata()

	_, ok := md.Get("missing")
	assert.False(t, ok)

	md.Add("title", "first", "second")
	v, ok := md.Get("title")
	require.True(t, ok)
	assert.Equal(t, "first", v)
}

func TestMetadata_AddPreservesOrderAndDuplicates(t *testing.T) {
	md := NewMetadata()
	md.Add("heading", "A")
	md.Add("heading", "B", "A")

	assert.Equal(t, []string{"A", "B", "A"}, md.GetAll("heading"))
}

func TestMetadata_AddNoValues(t *testing.T) {
	md := NewMetadata()
	md.Add("empty")

	assert.False(t, md.Has("empty"))
}

func TestMetadata_SetReplaces(t *testing.T) {
	md := NewMetadata()
	md.Add("f", "1", "2")
	md.Set("f", "3")

	assert.Equal(t, []string{"3"}, md.GetAll("f"))
	assert.Equal(t, 1, md.Len())
}

func TestMetadata_SetEmptyRemoves(t *testing.T) {
	md := NewMetadata()
	md.Set("f", "1")
	md.Set("f")

	assert.False(t, md.Has("f"))
	assert.Nil(t, md.GetAll("f"))
}

func TestMetadata_FieldNamesAreCaseSensitive(t *testing.T) {
	md := NewMetadata()
	md.Set("Title", "upper")
	md.Set("title", "lower")

	assert.Equal(t, 2, md.Len())
	v, _ := md.Get("Title")
	assert.Equal(t, "upper", v)
}

func TestMetadata_Fields_InsertionOrder(t *testing.T) {
	md := NewMetadata()
	md.Add("c", "1")
	md.Add("a", "1")
	md.Add("b", "1")
	md.Add("a", "2")

	assert.Equal(t, []string{"c", "a", "b"}, md.Fields())
}

func TestMetadata_Remove(t *testing.T) {
	md := NewMetadata()
	md.Add("a", "1")
	md.Add("b", "2", "3")
	md.Add("c", "4")

	removed := md.Remove("b")
	assert.Equal(t, []string{"2", "3"}, removed)
	assert.Equal(t, []string{"a", "c"}, md.Fields())
	assert.Nil(t, md.Remove("b"))
}

func TestMetadata_GetAllReturnsCopy(t *testing.T) {
	md := NewMetadata()
	md.Add("f", "1")

	vals := md.GetAll("f")
	vals[0] = "changed"

	v, _ := md.Get("f")
	assert.Equal(t, "1", v)
}

func TestMetadata_CloneIsIndependent(t *testing.T) {
	md := NewMetadata()
	md.Add("f", "1")

	c := md.Clone()
	c.Add("f", "2")
	c.Add("g", "x")

	assert.Equal(t, []string{"1"}, md.GetAll("f"))
	assert.False(t, md.Has("g"))
	assert.True(t, md.Equal(md.Clone()))
}

func TestMetadata_Equal(t *testing.T) {
	a := NewMetadata()
	a.Add("x", "1", "2")
	a.Add("y", "3")

	b := NewMetadata()
	b.Add("y", "3")
	b.Add("x", "1", "2")

	assert.True(t, a.Equal(b))

	b.Add("x", "4")
	assert.False(t, a.Equal(b))

	var nilMD *Metadata
	assert.False(t, a.Equal(nilMD))
	assert.True(t, nilMD.Equal(nil))
}

func TestMetadata_ZeroValueUsable(t *testing.T) {
	var md Metadata
	md.Add("f", "v")

	v, ok := md.Get("f")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMetadataFrom(t *testing.T) {
	md := MetadataFrom(map[string][]string{"a": {"1", "2"}})

	assert.Equal(t, []string{"1", "2"}, md.GetAll("a"))
	assert.Equal(t, map[string][]string{"a": {"1", "2"}}, md.Map())
}
