package shares

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func tempBoltStore(t *testing.T) *BoltStore {
	t.Helper()
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewBoltStore(db)
	require.NoError(t, err)
	return store
}

func TestBoltStore_PutAndGet(t *testing.T) {
	store := tempBoltStore(t)

	state := &RegistryState{
		PropertyID: makePropertyID(0x01), TotalShares: 100,
		Holdings: []Holding{
			{Address: makeAddr(0xAA), Shares: 60},
			{Address: makeAddr(0xBB), Shares: 40},
		},
	}
	require.NoError(t, store.PutRegistry(state))

	got, err := store.GetRegistry(state.PropertyID)
	require.NoError(t, err)
	assert.Equal(t, state.TotalShares, got.TotalShares)
	assert.Equal(t, state.Holdings, got.Holdings)
}

func TestBoltStore_GetMissing(t *testing.T) {
	store := tempBoltStore(t)

	_, err := store.GetRegistry(makePropertyID(0x42))
	assert.ErrorIs(t, err, ErrNotIssued)
}

func TestBoltStore_RegistryBackedOps(t *testing.T) {
	store := tempBoltStore(t)
	r := NewRegistry(store)
	prop := makePropertyID(0x01)
	alice, bob := makeAddr(0xAA), makeAddr(0xBB)

	require.NoError(t, r.Issue(prop, 100, alice))
	require.NoError(t, r.Transfer(prop, alice, bob, 25))

	bal, err := r.BalanceOf(bob, prop)
	require.NoError(t, err)
	assert.Equal(t, uint64(25), bal)
}
