package keeper

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/baron-chain/wrapd/x/wrap/types"
)

// metrics label for the bind operation, which emits no batch attributes.
const opBindLedger = "bind_ledger"

// Keeper orchestrates wrap operations. Each handler checks the caller and
// the presented funds against the persisted config and returns the ordered
// action batch for the host's queued execution layer; the keeper never
// executes actions itself and holds no state across calls.
type Keeper struct {
	store        types.ConfigStore
	querier      types.AllowanceQuerier
	validateAddr types.AddressValidator
	self         string
	logger       log.Logger
	metrics      *Metrics
}

// NewKeeper constructs a Keeper. self is the wrap contract's own identity:
// it is the recipient of withdraw pulls and the spender key of the allowance
// query. A nil validator defaults to bech32 account addresses; nil logger
// and metrics default to no-ops.
func NewKeeper(
	store types.ConfigStore,
	querier types.AllowanceQuerier,
	validateAddr types.AddressValidator,
	self string,
	logger log.Logger,
	metrics *Metrics,
) Keeper {
	if validateAddr == nil {
		validateAddr = BechAddressValidator
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if metrics == nil {
		metrics = NopMetrics()
	}
	return Keeper{
		store:        store,
		querier:      querier,
		validateAddr: validateAddr,
		self:         self,
		logger:       logger,
		metrics:      metrics,
	}
}

// BechAddressValidator is the default identity check.
func BechAddressValidator(addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return types.ErrInvalidIdentity.Wrap(err.Error())
	}
	return nil
}

// Instantiate creates the singleton config record. The sender becomes the
// owner; the ledger reference starts unset.
func (k Keeper) Instantiate(sender, nativeDenom string) error {
	cfg := types.Config{
		Owner:       sender,
		NativeDenom: nativeDenom,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := k.store.Save(cfg); err != nil {
		return err
	}
	k.logger.Info("wrap instantiated", "owner", sender, "native_denom", nativeDenom)
	return nil
}

// BindLedger sets the token ledger reference. Only the owner may bind, and
// only while the reference is unset; the binding is permanent.
func (k Keeper) BindLedger(sender, contract string) (err error) {
	defer func() { k.metrics.observe(opBindLedger, err) }()

	cfg, err := k.store.Load()
	if err != nil {
		return err
	}
	if sender != cfg.Owner {
		return types.ErrUnauthorized.Wrap("only the owner may bind the token ledger")
	}
	if cfg.LedgerBound() {
		return types.ErrAlreadyBound
	}
	if err := k.validateAddr(contract); err != nil {
		return err
	}

	err = k.store.Update(func(cfg types.Config) (types.Config, error) {
		cfg.LedgerContract = contract
		return cfg, nil
	})
	if err != nil {
		return err
	}

	k.logger.Info("token ledger bound", "contract", contract)
	return nil
}

// Deposit accepts native funds and mints a matching amount of wrapped
// tokens to the sender. A single foreign denom among the funds rejects the
// whole deposit.
func (k Keeper) Deposit(sender string, funds sdk.Coins) (batch types.ActionBatch, err error) {
	defer func() { k.metrics.observe(types.ActionDeposit, err) }()

	cfg, err := k.store.Load()
	if err != nil {
		return types.ActionBatch{}, err
	}

	total := math.ZeroInt()
	for _, coin := range funds {
		if coin.Denom != cfg.NativeDenom {
			return types.ActionBatch{}, types.ErrUnauthorized.Wrapf("denom %s not accepted", coin.Denom)
		}
		if err := types.ValidateAmount(coin.Amount); err != nil {
			return types.ActionBatch{}, err
		}
		total, err = types.AddChecked(total, coin.Amount)
		if err != nil {
			return types.ActionBatch{}, err
		}
	}

	k.logger.Info("deposit", "sender", sender, "amount", total.String())
	return types.DepositBatch(cfg.LedgerContract, sender, total), nil
}

// Withdraw pulls amount of wrapped tokens from the sender under its granted
// allowance, burns them, and releases the backing native coins. The
// allowance query must complete before any action is built.
func (k Keeper) Withdraw(ctx context.Context, sender string, amount math.Int) (batch types.ActionBatch, err error) {
	defer func() { k.metrics.observe(types.ActionWithdraw, err) }()

	if err := types.ValidateAmount(amount); err != nil {
		return types.ActionBatch{}, err
	}
	cfg, err := k.store.Load()
	if err != nil {
		return types.ActionBatch{}, err
	}

	allowance, qerr := k.querier.Allowance(ctx, cfg.LedgerContract, sender, k.self)
	if qerr != nil {
		return types.ActionBatch{}, types.ErrQueryFailed.Wrap(qerr.Error())
	}
	if amount.GT(allowance) {
		return types.ActionBatch{}, types.ErrUnauthorized.Wrapf(
			"allowance %s below requested %s", allowance, amount)
	}

	k.logger.Info("withdraw", "sender", sender, "amount", amount.String())
	return types.WithdrawBatch(cfg.LedgerContract, k.self, sender, cfg.NativeDenom, amount), nil
}

// Receive handles the token ledger's transfer notification. The tokens are
// already in the wrap contract's custody, so they are burned and the
// backing coins released to the original sender. The notification must come
// from the bound ledger itself.
func (k Keeper) Receive(caller string, msg types.ReceiveMsg) (batch types.ActionBatch, err error) {
	defer func() { k.metrics.observe(types.ActionReceiveToWithdraw, err) }()

	if err := types.ValidateAmount(msg.Amount); err != nil {
		return types.ActionBatch{}, err
	}
	cfg, err := k.store.Load()
	if err != nil {
		return types.ActionBatch{}, err
	}
	if !cfg.LedgerBound() || caller != cfg.LedgerContract {
		return types.ActionBatch{}, types.ErrUnauthorized.Wrap(
			"receive notification not from the bound token ledger")
	}

	k.logger.Info("receive_to_withdraw", "sender", msg.Sender, "amount", msg.Amount.String())
	return types.ReceiveBatch(cfg.LedgerContract, msg.Sender, cfg.NativeDenom, msg.Amount), nil
}
