package types

import (
	"context"

	"cosmossdk.io/math"
)

// ConfigStore persists the singleton Config record. The host serializes
// operation calls, so implementations need no locking beyond a plain
// read-modify-write in Update.
type ConfigStore interface {
	// Load returns the record, or ErrNotInitialized when absent.
	Load() (Config, error)
	// Save writes the record unconditionally.
	Save(Config) error
	// Update applies fn to the current record and persists the result.
	// An error from fn aborts with nothing written.
	Update(fn func(Config) (Config, error)) error
}

// AllowanceQuerier reads the allowance owner has granted spender on the
// token ledger at contract. This is the module's only blocking external
// read; it completes before any action is built.
type AllowanceQuerier interface {
	Allowance(ctx context.Context, contract, owner, spender string) (math.Int, error)
}

// AddressValidator checks an identity string against the host's address
// format.
type AddressValidator func(addr string) error
