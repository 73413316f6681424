package keeper

import (
	"context"
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/baron-chain/wrapd/x/wrap/types"
)

// DispatchExecute routes a decoded execute union to its handler. For a
// Receive variant the message sender is the notifying ledger contract, per
// the cw20 send hook convention.
func (k Keeper) DispatchExecute(ctx context.Context, sender string, funds sdk.Coins, msg types.ExecuteMsg) (types.ActionBatch, error) {
	switch {
	case msg.Deposit != nil:
		return k.Deposit(sender, funds)
	case msg.Withdraw != nil:
		return k.Withdraw(ctx, sender, msg.Withdraw.Amount)
	case msg.BindLedger != nil:
		return types.ActionBatch{}, k.BindLedger(sender, msg.BindLedger.Contract)
	case msg.Receive != nil:
		return k.Receive(sender, *msg.Receive)
	default:
		return types.ActionBatch{}, types.ErrUnknownRequest.Wrap("empty execute message")
	}
}

// DispatchQuery routes a decoded query union and returns the JSON-encoded
// response.
func (k Keeper) DispatchQuery(msg types.QueryMsg) ([]byte, error) {
	switch {
	case msg.Info != nil:
		res, err := k.Info()
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	default:
		return nil, types.ErrUnknownRequest.Wrap("empty query message")
	}
}
