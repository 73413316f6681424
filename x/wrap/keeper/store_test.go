package keeper

import (
	"testing"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baron-chain/wrapd/x/wrap/types"
)

func TestStoreLoadUninitialized(t *testing.T) {
	s := NewStore(dbm.NewMemDB())

	_, err := s.Load()
	require.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(dbm.NewMemDB())
	cfg := types.Config{Owner: "creator", LedgerContract: "ledgerX", NativeDenom: "juno"}

	require.NoError(t, s.Save(cfg))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestStoreUpdate(t *testing.T) {
	s := NewStore(dbm.NewMemDB())
	require.NoError(t, s.Save(types.Config{Owner: "creator", NativeDenom: "juno"}))

	err := s.Update(func(cfg types.Config) (types.Config, error) {
		cfg.LedgerContract = "ledgerX"
		return cfg, nil
	})
	require.NoError(t, err)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "ledgerX", got.LedgerContract)
}

func TestStoreUpdateAborts(t *testing.T) {
	s := NewStore(dbm.NewMemDB())
	require.NoError(t, s.Save(types.Config{Owner: "creator", NativeDenom: "juno"}))

	err := s.Update(func(cfg types.Config) (types.Config, error) {
		cfg.LedgerContract = "ledgerX"
		return cfg, assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got.LedgerContract, "failed update must not write")
}

func TestStoreUpdateUninitialized(t *testing.T) {
	s := NewStore(dbm.NewMemDB())

	err := s.Update(func(cfg types.Config) (types.Config, error) {
		return cfg, nil
	})
	require.ErrorIs(t, err, types.ErrNotInitialized)
}
