package keeper

import (
	"github.com/baron-chain/wrapd/x/wrap/types"
)

// Info returns the read-only projection of the wrap configuration. It has
// no side effects and fails only on an uninitialized store.
func (k Keeper) Info() (types.InfoResponse, error) {
	cfg, err := k.store.Load()
	if err != nil {
		return types.InfoResponse{}, err
	}
	return types.InfoResponse{
		LedgerContract: cfg.LedgerContract,
		NativeDenom:    cfg.NativeDenom,
	}, nil
}
