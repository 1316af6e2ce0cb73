package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/coreswap/xyk/x/xyk/keeper"
	"github.com/coreswap/xyk/x/xyk/types"
)

// FakeLedger is an in-memory types.LedgerKeeper for tests: a plain map
// of (token, account) balances and per-token total issuance, with no
// existential deposit: Transfer ignores its ExistencePolicy argument.
type FakeLedger struct {
	balances  map[types.TokenID]map[string]math.Uint
	issuance  map[types.TokenID]math.Uint
	nextToken types.TokenID
}

// NewFakeLedger constructs an empty ledger. nextToken is the first id
// CreateNewToken will assign — tests that exercise genesis pass the id
// their fixture expects the first pool's liquidity token to receive.
func NewFakeLedger(nextToken types.TokenID) *FakeLedger {
	return &FakeLedger{
		balances:  make(map[types.TokenID]map[string]math.Uint),
		issuance:  make(map[types.TokenID]math.Uint),
		nextToken: nextToken,
	}
}

// SetBalance seeds account's balance of token, for test fixtures.
func (l *FakeLedger) SetBalance(token types.TokenID, account sdk.AccAddress, amount math.Uint) {
	l.ensureToken(token)
	l.balances[token][account.String()] = amount
	l.issuance[token] = l.issuance[token].Add(amount)
}

func (l *FakeLedger) ensureToken(token types.TokenID) {
	if l.balances[token] == nil {
		l.balances[token] = make(map[string]math.Uint)
	}
	if _, ok := l.issuance[token]; !ok {
		l.issuance[token] = math.ZeroUint()
	}
}

func (l *FakeLedger) FreeBalance(ctx context.Context, token types.TokenID, account sdk.AccAddress) math.Uint {
	l.ensureToken(token)
	bal, ok := l.balances[token][account.String()]
	if !ok {
		return math.ZeroUint()
	}
	return bal
}

func (l *FakeLedger) TotalIssuance(ctx context.Context, token types.TokenID) math.Uint {
	l.ensureToken(token)
	return l.issuance[token]
}

func (l *FakeLedger) EnsureCanWithdraw(ctx context.Context, token types.TokenID, account sdk.AccAddress, amount, remainingAfter math.Uint) error {
	if l.FreeBalance(ctx, token, account).LT(amount) {
		return types.ErrNotEnoughAssets
	}
	return nil
}

func (l *FakeLedger) Transfer(ctx context.Context, token types.TokenID, from, to sdk.AccAddress, amount math.Uint, policy types.ExistencePolicy) error {
	l.ensureToken(token)
	fromBal := l.FreeBalance(ctx, token, from)
	if fromBal.LT(amount) {
		return types.ErrNotEnoughAssets
	}
	l.balances[token][from.String()] = fromBal.Sub(amount)
	l.balances[token][to.String()] = l.FreeBalance(ctx, token, to).Add(amount)
	return nil
}

func (l *FakeLedger) Mint(ctx context.Context, token types.TokenID, account sdk.AccAddress, amount math.Uint) error {
	l.ensureToken(token)
	l.balances[token][account.String()] = l.FreeBalance(ctx, token, account).Add(amount)
	l.issuance[token] = l.issuance[token].Add(amount)
	return nil
}

func (l *FakeLedger) BurnAndSettle(ctx context.Context, token types.TokenID, account sdk.AccAddress, amount math.Uint) error {
	l.ensureToken(token)
	bal := l.FreeBalance(ctx, token, account)
	if bal.LT(amount) {
		return types.ErrNotEnoughAssets
	}
	l.balances[token][account.String()] = bal.Sub(amount)
	l.issuance[token] = l.issuance[token].Sub(amount)
	return nil
}

func (l *FakeLedger) CreateNewToken(ctx context.Context, initialHolder sdk.AccAddress, initialAmount math.Uint) (types.TokenID, error) {
	id := l.nextToken
	l.nextToken++
	l.ensureToken(id)
	l.balances[id][initialHolder.String()] = initialAmount
	l.issuance[id] = initialAmount
	return id, nil
}

func (l *FakeLedger) NextTokenID(ctx context.Context) types.TokenID {
	return l.nextToken
}

var _ types.LedgerKeeper = (*FakeLedger)(nil)

// XykKeeper builds a xyk Keeper backed by a fresh in-memory store and the
// caller's FakeLedger (seeded by the caller), mirroring the dex module's
// DexKeeper(t) test harness.
func XykKeeper(t testing.TB, ledger *FakeLedger) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(storeKey, ledger, log.NewNopLogger())
	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return k, ctx
}
