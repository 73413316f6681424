package keeper

import (
	"encoding/json"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/pkg/errors"

	"github.com/baron-chain/wrapd/x/wrap/types"
)

var configKey = []byte(types.StoreKey + "/config")

// Store persists the singleton wrap config as a JSON record in a
// cometbft-db backend: GoLevelDB under the daemon, MemDB in tests.
type Store struct {
	db dbm.DB
}

var _ types.ConfigStore = (*Store)(nil)

// NewStore wraps db as a ConfigStore.
func NewStore(db dbm.DB) *Store {
	return &Store{db: db}
}

// Load implements types.ConfigStore.
func (s *Store) Load() (types.Config, error) {
	bz, err := s.db.Get(configKey)
	if err != nil {
		return types.Config{}, errors.Wrap(err, "read config")
	}
	if len(bz) == 0 {
		return types.Config{}, types.ErrNotInitialized
	}
	var cfg types.Config
	if err := json.Unmarshal(bz, &cfg); err != nil {
		return types.Config{}, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}

// Save implements types.ConfigStore.
func (s *Store) Save(cfg types.Config) error {
	bz, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(s.db.SetSync(configKey, bz), "write config")
}

// Update implements types.ConfigStore. Operation calls are serialized by
// the host, so a plain read-modify-write suffices.
func (s *Store) Update(fn func(types.Config) (types.Config, error)) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg, err = fn(cfg)
	if err != nil {
		return err
	}
	return s.Save(cfg)
}
