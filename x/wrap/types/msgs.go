package types

import (
	"cosmossdk.io/math"
)

// InstantiateMsg creates the deployment's config record. The message sender
// becomes the owner.
type InstantiateMsg struct {
	NativeDenom string `json:"native_denom"`
}

// ExecuteMsg is the JSON execute union. Exactly one field is set.
type ExecuteMsg struct {
	Deposit    *DepositMsg    `json:"deposit,omitempty"`
	Withdraw   *WithdrawMsg   `json:"withdraw,omitempty"`
	BindLedger *BindLedgerMsg `json:"bind_ledger,omitempty"`
	Receive    *ReceiveMsg    `json:"receive,omitempty"`
}

// DepositMsg wraps the native funds attached to the message.
type DepositMsg struct{}

// WithdrawMsg redeems Amount of wrapped tokens via the caller's allowance.
type WithdrawMsg struct {
	Amount math.Int `json:"amount"`
}

// BindLedgerMsg sets the token ledger reference. Owner-only, one-shot.
type BindLedgerMsg struct {
	Contract string `json:"contract"`
}

// ReceiveMsg is the token ledger's transfer notification: Sender already
// sent Amount of tokens to the wrap contract and redeems them.
type ReceiveMsg struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
	Msg    []byte   `json:"msg,omitempty"`
}

// QueryMsg is the JSON query union. Exactly one field is set.
type QueryMsg struct {
	Info *InfoQuery `json:"info,omitempty"`
}

// InfoQuery requests the InfoResponse projection.
type InfoQuery struct{}
