package types

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionJSONShape(t *testing.T) {
	act := NewLedgerAction("ledgerX", TokenMsg{Mint: &MintMsg{
		Recipient: "alice",
		Amount:    math.NewInt(10),
	}})

	bz, err := json.Marshal(act)
	require.NoError(t, err)
	// unset union variants must be absent, amounts encode as strings
	assert.JSONEq(t, `{"ledger":{"contract":"ledgerX","msg":{"mint":{"recipient":"alice","amount":"10"}}}}`, string(bz))
}

func TestWithdrawBatchOrder(t *testing.T) {
	batch := WithdrawBatch("ledgerX", "self", "alice", "juno", math.NewInt(4))

	require.Len(t, batch.Actions, 3)
	assert.NotNil(t, batch.Actions[0].Ledger.Msg.TransferFrom)
	assert.NotNil(t, batch.Actions[1].Ledger.Msg.Burn)
	assert.NotNil(t, batch.Actions[2].Bank)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{Owner: "creator", NativeDenom: "juno"}.Validate())
	require.ErrorIs(t, Config{NativeDenom: "juno"}.Validate(), ErrInvalidIdentity)
	require.ErrorIs(t, Config{Owner: "creator", NativeDenom: ""}.Validate(), ErrInvalidIdentity)
}
