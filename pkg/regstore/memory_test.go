package regstore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_OpenMissing(t *testing.T) {
	m := NewMemory()
	_, err := m.Open(`SOFTWARE\Clients`)
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestMemory_OpenOrCreateCreatesParents(t *testing.T) {
	m := NewMemory()
	k, err := m.OpenOrCreate(`SOFTWARE\Clients\EdgeUriDeflector`)
	require.NoError(t, err)
	require.NoError(t, k.Close())

	want := map[string]map[string]string{
		`SOFTWARE`:                          {},
		`SOFTWARE\Clients`:                  {},
		`SOFTWARE\Clients\EdgeUriDeflector`: {},
	}
	if diff := cmp.Diff(want, m.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestMemory_CaseInsensitive(t *testing.T) {
	m := NewMemory()
	k, err := m.OpenOrCreate(`Software/Clients`)
	require.NoError(t, err)
	require.NoError(t, k.SetValue("SearchEngine", "Google"))

	k2, err := m.Open(`SOFTWARE\CLIENTS\`)
	require.NoError(t, err)
	v, err := k2.GetValue("searchengine")
	require.NoError(t, err)
	assert.Equal(t, "Google", v)

	require.NoError(t, k2.SetValue("SEARCHENGINE", "DuckDuckGo"))
	assert.Equal(t, map[string]map[string]string{
		`Software`:         {},
		`Software\Clients`: {"SEARCHENGINE": "DuckDuckGo"},
	}, m.Snapshot())
}

func TestMemory_GetValueMissing(t *testing.T) {
	m := NewMemory()
	k, err := m.OpenOrCreate(`a`)
	require.NoError(t, err)
	_, err = k.GetValue("missing")
	assert.ErrorIs(t, err, ErrValueNotFound)
}

func TestMemory_SubkeyOpenOrCreate(t *testing.T) {
	m := NewMemory()
	k, err := m.OpenOrCreate(`EdgeUriDeflector`)
	require.NoError(t, err)
	cmd, err := k.OpenOrCreate(`shell\open\command`)
	require.NoError(t, err)
	require.NoError(t, cmd.SetValue("", `deflector.exe "%1"`))

	got, err := m.Open(`EdgeUriDeflector\shell\open\command`)
	require.NoError(t, err)
	v, err := got.GetValue("")
	require.NoError(t, err)
	assert.Equal(t, `deflector.exe "%1"`, v)
}

func TestMemory_DeleteTree(t *testing.T) {
	m := NewMemory()
	for _, p := range []string{`a\b\c`, `a\bc`, `ab`} {
		_, err := m.OpenOrCreate(p)
		require.NoError(t, err)
	}

	require.NoError(t, m.DeleteTree(`A\B`))
	assert.Equal(t, map[string]map[string]string{
		`a`:    {},
		`a\bc`: {},
		`ab`:   {},
	}, m.Snapshot())

	// deleting again is a no-op
	require.NoError(t, m.DeleteTree(`a\b`))
}

func TestMemory_DeleteValue(t *testing.T) {
	m := NewMemory()
	k, err := m.OpenOrCreate(`a`)
	require.NoError(t, err)
	require.NoError(t, k.SetValue("x", "1"))

	require.NoError(t, m.DeleteValue(`a`, "X"))
	require.NoError(t, m.DeleteValue(`a`, "X"))
	require.NoError(t, m.DeleteValue(`missing`, "X"))
	assert.Equal(t, map[string]map[string]string{`a`: {}}, m.Snapshot())
}

func TestMemory_HandleOnDeletedKey(t *testing.T) {
	m := NewMemory()
	k, err := m.OpenOrCreate(`a`)
	require.NoError(t, err)
	require.NoError(t, m.DeleteTree(`a`))

	assert.ErrorIs(t, k.SetValue("x", "1"), ErrNotExist)
	_, err = k.GetValue("x")
	assert.ErrorIs(t, err, ErrNotExist)
}
