package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Attribute keys and action values attached to every batch.
const (
	AttrKeyAction = "action"
	AttrKeyAmount = "amount"
	AttrKeySender = "sender"

	ActionDeposit           = "deposit"
	ActionWithdraw          = "withdraw"
	ActionReceiveToWithdraw = "receive_to_withdraw"
)

// Attribute is a single observability key/value pair.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewAttribute returns a key/value attribute.
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// MintMsg credits Amount of wrapped tokens to Recipient on the token ledger.
type MintMsg struct {
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// BurnMsg destroys Amount of wrapped tokens held by the wrap contract.
type BurnMsg struct {
	Amount math.Int `json:"amount"`
}

// TransferFromMsg moves Amount from Owner to Recipient on the token ledger,
// consuming an allowance Owner granted to the wrap contract.
type TransferFromMsg struct {
	Owner     string   `json:"owner"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// TokenMsg is the union of calls issued against the token ledger. Exactly
// one field is set.
type TokenMsg struct {
	Mint         *MintMsg         `json:"mint,omitempty"`
	Burn         *BurnMsg         `json:"burn,omitempty"`
	TransferFrom *TransferFromMsg `json:"transfer_from,omitempty"`
}

// LedgerCall targets the bound token ledger with a single TokenMsg.
type LedgerCall struct {
	Contract string   `json:"contract"`
	Msg      TokenMsg `json:"msg"`
}

// BankSend releases native coins from the wrap contract's own balance.
type BankSend struct {
	ToAddress string    `json:"to_address"`
	Amount    sdk.Coins `json:"amount"`
}

// Action is one outgoing call. Exactly one field is set. The host executes
// the actions of a batch strictly in order and stops at the first failure,
// so later actions never run against state an earlier one failed to reach.
type Action struct {
	Ledger *LedgerCall `json:"ledger,omitempty"`
	Bank   *BankSend   `json:"bank,omitempty"`
}

// NewLedgerAction wraps a TokenMsg targeting contract.
func NewLedgerAction(contract string, msg TokenMsg) Action {
	return Action{Ledger: &LedgerCall{Contract: contract, Msg: msg}}
}

// NewBankAction releases coins to the given recipient.
func NewBankAction(toAddress string, amount sdk.Coins) Action {
	return Action{Bank: &BankSend{ToAddress: toAddress, Amount: amount}}
}

// ActionBatch is the ordered result of one operation. It is handed to the
// host's queued execution layer and never persisted.
type ActionBatch struct {
	Actions    []Action    `json:"actions"`
	Attributes []Attribute `json:"attributes"`
}

func batchAttributes(action string, amount math.Int, sender string) []Attribute {
	return []Attribute{
		NewAttribute(AttrKeyAction, action),
		NewAttribute(AttrKeyAmount, amount.String()),
		NewAttribute(AttrKeySender, sender),
	}
}

// DepositBatch builds the single mint crediting the depositor with the
// summed native funds.
func DepositBatch(ledger, depositor string, amount math.Int) ActionBatch {
	return ActionBatch{
		Actions: []Action{
			NewLedgerAction(ledger, TokenMsg{Mint: &MintMsg{Recipient: depositor, Amount: amount}}),
		},
		Attributes: batchAttributes(ActionDeposit, amount, depositor),
	}
}

// WithdrawBatch builds the pull, burn, release sequence. The pull must be
// queued before the burn and the burn before the release.
func WithdrawBatch(ledger, self, withdrawer, denom string, amount math.Int) ActionBatch {
	return ActionBatch{
		Actions: []Action{
			NewLedgerAction(ledger, TokenMsg{TransferFrom: &TransferFromMsg{
				Owner:     withdrawer,
				Recipient: self,
				Amount:    amount,
			}}),
			NewLedgerAction(ledger, TokenMsg{Burn: &BurnMsg{Amount: amount}}),
			NewBankAction(withdrawer, sdk.NewCoins(sdk.NewCoin(denom, amount))),
		},
		Attributes: batchAttributes(ActionWithdraw, amount, withdrawer),
	}
}

// ReceiveBatch builds the burn and release for tokens the ledger already
// moved into the wrap contract's custody; no pull step is needed.
func ReceiveBatch(ledger, originalSender, denom string, amount math.Int) ActionBatch {
	return ActionBatch{
		Actions: []Action{
			NewLedgerAction(ledger, TokenMsg{Burn: &BurnMsg{Amount: amount}}),
			NewBankAction(originalSender, sdk.NewCoins(sdk.NewCoin(denom, amount))),
		},
		Attributes: batchAttributes(ActionReceiveToWithdraw, amount, originalSender),
	}
}
