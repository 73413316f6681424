package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName is the name of the wrap module.
	ModuleName = "wrap"

	// StoreKey is the key under which the module persists its config record.
	StoreKey = ModuleName
)

// Config is the singleton configuration record of a wrap deployment.
// Owner and NativeDenom are fixed at instantiation. LedgerContract starts
// empty and may be set exactly once by the owner; it is immutable afterward.
type Config struct {
	Owner          string `json:"owner"`
	LedgerContract string `json:"ledger_contract"`
	NativeDenom    string `json:"native_denom"`
}

// LedgerBound reports whether the token ledger reference has been set.
func (c Config) LedgerBound() bool {
	return c.LedgerContract != ""
}

// Validate checks the structural invariants of a config record.
func (c Config) Validate() error {
	if c.Owner == "" {
		return ErrInvalidIdentity.Wrap("empty owner")
	}
	if err := sdk.ValidateDenom(c.NativeDenom); err != nil {
		return ErrInvalidIdentity.Wrapf("native denom: %s", err)
	}
	return nil
}

// InfoResponse is the read-only projection of Config served by the info query.
type InfoResponse struct {
	LedgerContract string `json:"ledger_contract"`
	NativeDenom    string `json:"native_denom"`
}
