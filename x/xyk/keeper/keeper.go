// Package keeper implements the xyk core: the pool registry, the
// constant-product AMM operations, the settlement router, and genesis
// loading (spec.md §4, §5, §6). It consumes a types.LedgerKeeper for
// every balance movement and never touches an account's free balance
// directly.
package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coreswap/xyk/x/xyk/types"
)

// kvStoreProvider lets getStore read the store from any context that
// exposes KVStore directly (sdk.Context does, including the one the test
// harness builds); any other context is unwrapped as an sdk.Context.
type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// Keeper holds everything the xyk core needs: its own store, a logger,
// and the ledger boundary it settles balances through.
type Keeper struct {
	storeKey storetypes.StoreKey
	ledger   types.LedgerKeeper
	logger   log.Logger

	vaultAddress sdk.AccAddress
}

// NewKeeper constructs a Keeper. The vault address is derived once from
// the module's tag bytes, mirroring the source pallet's
// PalletId::into_account_truncating (spec.md §4, Vault).
func NewKeeper(key storetypes.StoreKey, ledger types.LedgerKeeper, logger log.Logger) Keeper {
	return Keeper{
		storeKey:     key,
		ledger:       ledger,
		logger:       logger,
		vaultAddress: sdk.AccAddress(types.ModuleTag[:]),
	}
}

// VaultAddress returns the module's vault: the account that holds every
// pool's reserves and the undistributed treasury/burn accumulators.
func (k Keeper) VaultAddress() sdk.AccAddress {
	return k.vaultAddress
}

func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", "x/"+types.ModuleName)
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}
