package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"cosmossdk.io/math"
	dbm "github.com/cometbft/cometbft-db"
	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"

	"github.com/baron-chain/wrapd/x/wrap/keeper"
	"github.com/baron-chain/wrapd/x/wrap/types"
)

const (
	flagHome      = "home"
	flagOutput    = "output"
	flagDBBackend = "db-backend"
	flagSelf      = "self"
	flagFrom      = "from"
	flagAllowance = "allowance"

	envPrefix = "WRAPD"
)

// DefaultNodeHome is the default directory for the wrapd state.
var DefaultNodeHome = os.ExpandEnv("$HOME/") + ".wrapd"

// NewRootCmd creates the root command for wrapd.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "wrapd",
		Short: "Coin wrap daemon: mint wrapped tokens for native coins and redeem them",
		Long: `wrapd drives the coin-wrap module against a local state home.
Operations print the ordered action batch the host would execute; no actions
are executed locally. Withdrawals read the allowance from the --allowance
flag since wrapd is not connected to a live token ledger.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cmd)
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String(flagHome, DefaultNodeHome, "directory for wrapd state")
	pf.String(flagOutput, "json", "output format (json|yaml)")
	pf.String(flagDBBackend, string(dbm.GoLevelDBBackend), "state database backend")
	pf.String(flagSelf, "wrapd", "the wrap contract's own identity")

	rootCmd.AddCommand(
		initCmd(v),
		bindLedgerCmd(v),
		depositCmd(v),
		withdrawCmd(v),
		receiveCmd(v),
		infoCmd(v),
	)
	return rootCmd
}

func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName("wrapd")
	v.AddConfigPath(cast.ToString(v.Get(flagHome)))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

// addFromFlag marks the acting identity of a state-changing command.
func addFromFlag(fs *pflag.FlagSet) {
	fs.String(flagFrom, "", "identity acting as the message sender")
}

// fixedAllowanceQuerier satisfies the allowance read with a flag-supplied
// value in place of a live token ledger.
type fixedAllowanceQuerier struct {
	allowance math.Int
}

func (q fixedAllowanceQuerier) Allowance(_ context.Context, _, _, _ string) (math.Int, error) {
	return q.allowance, nil
}

func openKeeper(v *viper.Viper, querier types.AllowanceQuerier) (keeper.Keeper, func(), error) {
	home := cast.ToString(v.Get(flagHome))
	backend := dbm.BackendType(cast.ToString(v.Get(flagDBBackend)))

	db, err := dbm.NewDB("wrap", backend, filepath.Join(home, "data"))
	if err != nil {
		return keeper.Keeper{}, nil, err
	}

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	metrics := keeper.NewMetrics(prometheus.DefaultRegisterer)
	self := cast.ToString(v.Get(flagSelf))

	k := keeper.NewKeeper(keeper.NewStore(db), querier, nil, self, logger, metrics)
	return k, func() { _ = db.Close() }, nil
}

func printOutput(cmd *cobra.Command, v *viper.Viper, val interface{}) error {
	bz, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return err
	}
	if cast.ToString(v.Get(flagOutput)) == "yaml" {
		var tree interface{}
		if err := json.Unmarshal(bz, &tree); err != nil {
			return err
		}
		if bz, err = yaml.Marshal(tree); err != nil {
			return err
		}
	}
	cmd.Println(string(bz))
	return nil
}

func initCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [native-denom]",
		Short: "Create the wrap config; the --from identity becomes the owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, closeFn, err := openKeeper(v, fixedAllowanceQuerier{allowance: math.ZeroInt()})
			if err != nil {
				return err
			}
			defer closeFn()
			return k.Instantiate(cast.ToString(v.Get(flagFrom)), args[0])
		},
	}
	addFromFlag(cmd.Flags())
	return cmd
}

func bindLedgerCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bind-ledger [contract]",
		Short: "Bind the token ledger contract (owner only, one-shot)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, closeFn, err := openKeeper(v, fixedAllowanceQuerier{allowance: math.ZeroInt()})
			if err != nil {
				return err
			}
			defer closeFn()
			return k.BindLedger(cast.ToString(v.Get(flagFrom)), args[0])
		},
	}
	addFromFlag(cmd.Flags())
	return cmd
}

func depositCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [coins]",
		Short: "Deposit native coins and print the mint action batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			funds, err := sdk.ParseCoinsNormalized(args[0])
			if err != nil {
				return err
			}
			k, closeFn, err := openKeeper(v, fixedAllowanceQuerier{allowance: math.ZeroInt()})
			if err != nil {
				return err
			}
			defer closeFn()

			batch, err := k.Deposit(cast.ToString(v.Get(flagFrom)), funds)
			if err != nil {
				return err
			}
			return printOutput(cmd, v, batch)
		},
	}
	addFromFlag(cmd.Flags())
	return cmd
}

func withdrawCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Redeem wrapped tokens and print the pull/burn/release batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return types.ErrOverflow.Wrapf("invalid amount %q", args[0])
			}
			allowance, ok := math.NewIntFromString(cast.ToString(v.Get(flagAllowance)))
			if !ok {
				return types.ErrQueryFailed.Wrap("invalid --allowance value")
			}

			k, closeFn, err := openKeeper(v, fixedAllowanceQuerier{allowance: allowance})
			if err != nil {
				return err
			}
			defer closeFn()

			batch, err := k.Withdraw(cmd.Context(), cast.ToString(v.Get(flagFrom)), amount)
			if err != nil {
				return err
			}
			return printOutput(cmd, v, batch)
		},
	}
	addFromFlag(cmd.Flags())
	cmd.Flags().String(flagAllowance, "0", "allowance the ledger reports for the --from identity")
	return cmd
}

func receiveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receive [original-sender] [amount]",
		Short: "Replay a ledger receive notification; --from is the notifying contract",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return types.ErrOverflow.Wrapf("invalid amount %q", args[1])
			}

			k, closeFn, err := openKeeper(v, fixedAllowanceQuerier{allowance: math.ZeroInt()})
			if err != nil {
				return err
			}
			defer closeFn()

			batch, err := k.Receive(cast.ToString(v.Get(flagFrom)), types.ReceiveMsg{
				Sender: args[0],
				Amount: amount,
			})
			if err != nil {
				return err
			}
			return printOutput(cmd, v, batch)
		},
	}
	addFromFlag(cmd.Flags())
	return cmd
}

func infoCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the bound ledger contract and native denom",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, closeFn, err := openKeeper(v, fixedAllowanceQuerier{allowance: math.ZeroInt()})
			if err != nil {
				return err
			}
			defer closeFn()

			info, err := k.Info()
			if err != nil {
				return err
			}
			return printOutput(cmd, v, info)
		},
	}
}
