package engine

import (
	"testing"

	"github.com/common-fate/deflector/pkg/regstore"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetUnregistered(t *testing.T) {
	s := Store{Hive: regstore.NewMemory()}
	assert.Equal(t, Default, s.Get())
}

func TestStore_SetGet(t *testing.T) {
	hive := regstore.NewMemory()
	s := Store{Hive: hive}

	require.NoError(t, s.Set(Google))
	assert.Equal(t, Google, s.Get())
	first := hive.Snapshot()

	for _, p := range []Preference{DuckDuckGo, Default} {
		require.NoError(t, s.Set(p))
		assert.Equal(t, p, s.Get())
	}

	// overwriting must only change the value, never the set of keys
	first[`SOFTWARE\Clients\EdgeUriDeflector`][ValueName] = Default.String()
	if diff := cmp.Diff(first, hive.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-first +got):\n%s", diff)
	}
	assert.Len(t, hive.Snapshot(), 3)
}

func TestStore_GetUnknownValue(t *testing.T) {
	hive := regstore.NewMemory()
	key, err := hive.OpenOrCreate(KeyPath)
	require.NoError(t, err)
	require.NoError(t, key.SetValue(ValueName, "Yahoo"))
	require.NoError(t, key.Close())

	s := Store{Hive: hive}
	assert.Equal(t, Default, s.Get())
}

func TestStore_GetKeyWithoutValue(t *testing.T) {
	hive := regstore.NewMemory()
	key, err := hive.OpenOrCreate(KeyPath)
	require.NoError(t, err)
	require.NoError(t, key.Close())

	s := Store{Hive: hive}
	assert.Equal(t, Default, s.Get())
}
