package repo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, err := m.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, m.Set("k", []byte(`{"a":1}`)))
	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	require.NoError(t, m.Set("k", []byte(`{"a":2}`)))
	got, err = m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), got)

	require.NoError(t, m.Remove("k"))
	_, err = m.Get("k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, m.Remove("k"), "removing an absent key is not an error")
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	v := []byte("abc")
	require.NoError(t, m.Set("k", v))
	v[0] = 'x'
	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestFailingWrapper(t *testing.T) {
	m := NewMemory()
	f := &Failing{KV: m}
	require.NoError(t, f.Set("k", []byte("1")))

	boom := errors.New("boom")
	f.FailSet = boom
	assert.ErrorIs(t, f.Set("k", []byte("2")), boom)

	got, err := f.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got, "failed writes leave the old value")
}
