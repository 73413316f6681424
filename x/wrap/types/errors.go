package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace under which all wrap module errors are registered.
const Codespace = ModuleName

var (
	// ErrUnauthorized covers every policy rejection: a caller that is not
	// the owner, a foreign denom among deposit funds, an allowance below the
	// requested withdrawal, or a receive notification that does not
	// originate from the bound token ledger.
	ErrUnauthorized = errorsmod.Register(Codespace, 2, "unauthorized")

	// ErrNotInitialized is returned when no config record has been saved.
	ErrNotInitialized = errorsmod.Register(Codespace, 3, "wrap config not initialized")

	// ErrAlreadyBound is returned when bind-ledger is attempted after the
	// token ledger reference was set. Kept distinct from ErrUnauthorized;
	// see DESIGN.md.
	ErrAlreadyBound = errorsmod.Register(Codespace, 4, "token ledger already bound")

	// ErrInvalidIdentity is returned when a collaborator-validated address
	// or identity string is malformed.
	ErrInvalidIdentity = errorsmod.Register(Codespace, 5, "invalid identity")

	// ErrOverflow is returned when an amount or a fund sum leaves the token
	// ledger's uint128 range.
	ErrOverflow = errorsmod.Register(Codespace, 6, "amount outside uint128 range")

	// ErrQueryFailed is returned when the allowance query against the token
	// ledger could not be completed.
	ErrQueryFailed = errorsmod.Register(Codespace, 7, "allowance query failed")

	// ErrUnknownRequest is returned by the dispatchers for a message union
	// with no recognized variant set.
	ErrUnknownRequest = errorsmod.Register(Codespace, 8, "unknown request")
)
