package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coreswap/xyk/x/xyk/ammmath"
	"github.com/coreswap/xyk/x/xyk/types"
)

// CreatePool creates a brand-new pool for the unordered pair
// {tokenA, tokenB}, pulling amountA and amountB from creator into the
// vault and minting a fresh liquidity token for the pair (spec.md §4.4).
//
// The same-asset check runs after the balance checks below, matching
// the source pallet's precondition order exactly — a pool creation
// request for a single token fails with ErrNotEnoughAssets before it
// ever reaches ErrSameAsset if the caller's balance is also too low.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA types.TokenID, amountA math.Uint, tokenB types.TokenID, amountB math.Uint) (types.TokenID, error) {
	if amountA.IsZero() || amountB.IsZero() {
		return 0, types.ErrZeroAmount
	}
	if k.Contains(ctx, tokenA, tokenB) {
		return 0, types.ErrPoolAlreadyExists
	}
	if k.Contains(ctx, tokenB, tokenA) {
		return 0, types.ErrPoolAlreadyExists
	}

	freeA := k.ledger.FreeBalance(ctx, tokenA, creator)
	freeB := k.ledger.FreeBalance(ctx, tokenB, creator)
	if freeA.LT(amountA) {
		return 0, types.ErrNotEnoughAssets
	}
	if freeB.LT(amountB) {
		return 0, types.ErrNotEnoughAssets
	}
	if err := k.ledger.EnsureCanWithdraw(ctx, tokenA, creator, amountA, freeA.Sub(amountA)); err != nil {
		return 0, types.ErrNotEnoughAssets.Wrap(err.Error())
	}
	if err := k.ledger.EnsureCanWithdraw(ctx, tokenB, creator, amountB, freeB.Sub(amountB)); err != nil {
		return 0, types.ErrNotEnoughAssets.Wrap(err.Error())
	}

	if tokenA == tokenB {
		return 0, types.ErrSameAsset
	}

	vault := k.VaultAddress()
	if err := k.ledger.Transfer(ctx, tokenA, creator, vault, amountA, types.AllowDeath); err != nil {
		return 0, err
	}
	if err := k.ledger.Transfer(ctx, tokenB, creator, vault, amountB, types.AllowDeath); err != nil {
		return 0, err
	}

	initialLiquidity := amountA.Add(amountB)
	liquidityTokenID, err := k.ledger.CreateNewToken(ctx, creator, initialLiquidity)
	if err != nil {
		return 0, err
	}

	if err := k.InsertPool(ctx, tokenA, tokenB, amountA, amountB, liquidityTokenID); err != nil {
		return 0, err
	}

	k.emitEvent(ctx, types.EventTypePoolCreated,
		sdk.NewAttribute(types.AttributeKeySender, creator.String()),
		sdk.NewAttribute(types.AttributeKeyFirstAsset, tokenIDString(tokenA)),
		sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
		sdk.NewAttribute(types.AttributeKeySecondAsset, tokenIDString(tokenB)),
		sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
	)
	return liquidityTokenID, nil
}

// SellAsset sells exactly soldAmount of soldAsset into the
// (soldAsset, boughtAsset) pool and requires the amount received to be
// at least minAmountOut (spec.md §4.4).
func (k Keeper) SellAsset(ctx context.Context, trader sdk.AccAddress, soldAsset, boughtAsset types.TokenID, soldAmount, minAmountOut math.Uint) (math.Uint, error) {
	if !k.Contains(ctx, soldAsset, boughtAsset) {
		return math.ZeroUint(), types.ErrNoSuchPool
	}
	if soldAmount.IsZero() {
		return math.ZeroUint(), types.ErrZeroAmount
	}

	inReserve, _ := k.GetReserve(ctx, soldAsset, boughtAsset)
	outReserve, _ := k.GetReserve(ctx, boughtAsset, soldAsset)

	boughtAmount, err := ammmath.SellPrice(inReserve, outReserve, soldAmount)
	if err != nil {
		return math.ZeroUint(), err
	}

	if k.ledger.FreeBalance(ctx, soldAsset, trader).LT(soldAmount) {
		return math.ZeroUint(), types.ErrNotEnoughAssets
	}
	if boughtAmount.LT(minAmountOut) {
		return math.ZeroUint(), types.ErrInsufficientOutputAmount
	}

	vault := k.VaultAddress()
	if err := k.ledger.Transfer(ctx, soldAsset, trader, vault, soldAmount, types.KeepAlive); err != nil {
		return math.ZeroUint(), err
	}
	if err := k.ledger.Transfer(ctx, boughtAsset, vault, trader, boughtAmount, types.KeepAlive); err != nil {
		return math.ZeroUint(), err
	}

	if err := k.SetReserve(ctx, soldAsset, boughtAsset, inReserve.Add(soldAmount)); err != nil {
		return math.ZeroUint(), err
	}
	if err := k.SetReserve(ctx, boughtAsset, soldAsset, outReserve.Sub(boughtAmount)); err != nil {
		return math.ZeroUint(), err
	}

	if err := k.settleTreasuryAndBurn(ctx, soldAsset, boughtAsset, soldAmount); err != nil {
		return math.ZeroUint(), err
	}

	k.emitEvent(ctx, types.EventTypeAssetsSwapped,
		sdk.NewAttribute(types.AttributeKeySender, trader.String()),
		sdk.NewAttribute(types.AttributeKeySoldAsset, tokenIDString(soldAsset)),
		sdk.NewAttribute(types.AttributeKeySoldAmount, soldAmount.String()),
		sdk.NewAttribute(types.AttributeKeyBoughtAsset, tokenIDString(boughtAsset)),
		sdk.NewAttribute(types.AttributeKeyBoughtAmount, boughtAmount.String()),
	)
	return boughtAmount, nil
}

// BuyAsset buys exactly boughtAmount of boughtAsset out of the
// (soldAsset, boughtAsset) pool, requiring the amount paid to be at
// most maxAmountIn (spec.md §4.4).
func (k Keeper) BuyAsset(ctx context.Context, trader sdk.AccAddress, soldAsset, boughtAsset types.TokenID, boughtAmount, maxAmountIn math.Uint) (math.Uint, error) {
	if !k.Contains(ctx, soldAsset, boughtAsset) {
		return math.ZeroUint(), types.ErrNoSuchPool
	}

	inReserve, _ := k.GetReserve(ctx, soldAsset, boughtAsset)
	outReserve, _ := k.GetReserve(ctx, boughtAsset, soldAsset)

	if outReserve.LTE(boughtAmount) {
		return math.ZeroUint(), types.ErrNotEnoughReserve
	}
	if boughtAmount.IsZero() {
		return math.ZeroUint(), types.ErrZeroAmount
	}

	soldAmount, err := ammmath.BuyPrice(inReserve, outReserve, boughtAmount)
	if err != nil {
		return math.ZeroUint(), err
	}

	if k.ledger.FreeBalance(ctx, soldAsset, trader).LT(soldAmount) {
		return math.ZeroUint(), types.ErrNotEnoughAssets
	}
	if soldAmount.GT(maxAmountIn) {
		return math.ZeroUint(), types.ErrInsufficientInputAmount
	}

	vault := k.VaultAddress()
	if err := k.ledger.Transfer(ctx, soldAsset, trader, vault, soldAmount, types.KeepAlive); err != nil {
		return math.ZeroUint(), err
	}
	if err := k.ledger.Transfer(ctx, boughtAsset, vault, trader, boughtAmount, types.KeepAlive); err != nil {
		return math.ZeroUint(), err
	}

	if err := k.SetReserve(ctx, soldAsset, boughtAsset, inReserve.Add(soldAmount)); err != nil {
		return math.ZeroUint(), err
	}
	if err := k.SetReserve(ctx, boughtAsset, soldAsset, outReserve.Sub(boughtAmount)); err != nil {
		return math.ZeroUint(), err
	}

	if err := k.settleTreasuryAndBurn(ctx, soldAsset, boughtAsset, soldAmount); err != nil {
		return math.ZeroUint(), err
	}

	k.emitEvent(ctx, types.EventTypeAssetsSwapped,
		sdk.NewAttribute(types.AttributeKeySender, trader.String()),
		sdk.NewAttribute(types.AttributeKeySoldAsset, tokenIDString(soldAsset)),
		sdk.NewAttribute(types.AttributeKeySoldAmount, soldAmount.String()),
		sdk.NewAttribute(types.AttributeKeyBoughtAsset, tokenIDString(boughtAsset)),
		sdk.NewAttribute(types.AttributeKeyBoughtAmount, boughtAmount.String()),
	)
	return soldAmount, nil
}

// MintLiquidity deposits firstAmount of firstAsset (plus the
// proportional amount of secondAsset the pool's current ratio
// requires) and mints liquidity shares to provider. expectedSecondAmount,
// if non-nil, caps the second asset amount the caller is willing to pay
// (spec.md §4.4).
func (k Keeper) MintLiquidity(ctx context.Context, provider sdk.AccAddress, firstAsset, secondAsset types.TokenID, firstAmount math.Uint, expectedSecondAmount *math.Uint) (secondAmount, mintedShares math.Uint, err error) {
	liquidityTokenID, found := k.GetLiquidityAsset(ctx, firstAsset, secondAsset)
	if !found {
		return math.ZeroUint(), math.ZeroUint(), types.ErrNoSuchPool
	}
	if !k.Contains(ctx, firstAsset, secondAsset) && !k.Contains(ctx, secondAsset, firstAsset) {
		return math.ZeroUint(), math.ZeroUint(), types.ErrNoSuchPool
	}

	firstReserve, _ := k.GetReserve(ctx, firstAsset, secondAsset)
	secondReserve, _ := k.GetReserve(ctx, secondAsset, firstAsset)
	totalShares := k.ledger.TotalIssuance(ctx, liquidityTokenID)

	secondAmount, mintedShares, err = ammmath.MintComputation(firstReserve, secondReserve, totalShares, firstAmount)
	if err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}

	if expectedSecondAmount != nil && secondAmount.GT(*expectedSecondAmount) {
		return math.ZeroUint(), math.ZeroUint(), types.ErrSecondAssetAmountExceededExpectations
	}
	if firstAmount.IsZero() || secondAmount.IsZero() {
		return math.ZeroUint(), math.ZeroUint(), types.ErrZeroAmount
	}
	if k.ledger.FreeBalance(ctx, firstAsset, provider).LT(firstAmount) {
		return math.ZeroUint(), math.ZeroUint(), types.ErrNotEnoughAssets
	}
	if k.ledger.FreeBalance(ctx, secondAsset, provider).LT(secondAmount) {
		return math.ZeroUint(), math.ZeroUint(), types.ErrNotEnoughAssets
	}

	vault := k.VaultAddress()
	if err := k.ledger.Transfer(ctx, firstAsset, provider, vault, firstAmount, types.KeepAlive); err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}
	if err := k.ledger.Transfer(ctx, secondAsset, provider, vault, secondAmount, types.KeepAlive); err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}
	if err := k.ledger.Mint(ctx, liquidityTokenID, provider, mintedShares); err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}

	if err := k.SetReserve(ctx, firstAsset, secondAsset, firstReserve.Add(firstAmount)); err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}
	if err := k.SetReserve(ctx, secondAsset, firstAsset, secondReserve.Add(secondAmount)); err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}

	k.emitEvent(ctx, types.EventTypeLiquidityMinted,
		sdk.NewAttribute(types.AttributeKeySender, provider.String()),
		sdk.NewAttribute(types.AttributeKeyFirstAsset, tokenIDString(firstAsset)),
		sdk.NewAttribute(types.AttributeKeyAmountA, firstAmount.String()),
		sdk.NewAttribute(types.AttributeKeySecondAsset, tokenIDString(secondAsset)),
		sdk.NewAttribute(types.AttributeKeyAmountB, secondAmount.String()),
		sdk.NewAttribute(types.AttributeKeyLiquidityAsset, tokenIDString(liquidityTokenID)),
		sdk.NewAttribute(types.AttributeKeyLiquidityAmount, secondAmount.String()),
	)
	return secondAmount, mintedShares, nil
}

// BurnLiquidity redeems liquidityAmount of the pair's liquidity token
// for its proportional share of both reserves, then destroys the
// redeemed shares (spec.md §4.4).
func (k Keeper) BurnLiquidity(ctx context.Context, provider sdk.AccAddress, firstAsset, secondAsset types.TokenID, liquidityAmount math.Uint) (firstAmount, secondAmount math.Uint, err error) {
	if !k.Contains(ctx, firstAsset, secondAsset) {
		return math.ZeroUint(), math.ZeroUint(), types.ErrNoSuchPool
	}

	firstReserve, _ := k.GetReserve(ctx, firstAsset, secondAsset)
	secondReserve, _ := k.GetReserve(ctx, secondAsset, firstAsset)
	liquidityTokenID, _ := k.GetLiquidityAsset(ctx, firstAsset, secondAsset)

	providerBalance := k.ledger.FreeBalance(ctx, liquidityTokenID, provider)
	if providerBalance.LT(liquidityAmount) {
		return math.ZeroUint(), math.ZeroUint(), types.ErrNotEnoughAssets
	}
	remaining := providerBalance.Sub(liquidityAmount)
	if err := k.ledger.EnsureCanWithdraw(ctx, liquidityTokenID, provider, liquidityAmount, remaining); err != nil {
		return math.ZeroUint(), math.ZeroUint(), types.ErrNotEnoughAssets.Wrap(err.Error())
	}

	totalShares := k.ledger.TotalIssuance(ctx, liquidityTokenID)
	firstAmount, secondAmount, err = ammmath.BurnAmount(firstReserve, secondReserve, totalShares, liquidityAmount)
	if err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}
	if firstAmount.IsZero() || secondAmount.IsZero() {
		return math.ZeroUint(), math.ZeroUint(), types.ErrZeroAmount
	}

	vault := k.VaultAddress()
	if err := k.ledger.Transfer(ctx, firstAsset, vault, provider, firstAmount, types.KeepAlive); err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}
	if err := k.ledger.Transfer(ctx, secondAsset, vault, provider, secondAmount, types.KeepAlive); err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}

	newFirstReserve := firstReserve.Sub(firstAmount)
	newSecondReserve := secondReserve.Sub(secondAmount)

	if newFirstReserve.IsZero() || newSecondReserve.IsZero() {
		// Either side fully drained: drop the pool outright (spec.md
		// §4.4.5, I2) instead of leaving a dead zero-reserve entry a
		// later swap could still divide against.
		k.RemovePool(ctx, firstAsset, secondAsset)
	} else {
		if err := k.SetReserve(ctx, firstAsset, secondAsset, newFirstReserve); err != nil {
			return math.ZeroUint(), math.ZeroUint(), err
		}
		if err := k.SetReserve(ctx, secondAsset, firstAsset, newSecondReserve); err != nil {
			return math.ZeroUint(), math.ZeroUint(), err
		}
	}

	if err := k.ledger.BurnAndSettle(ctx, liquidityTokenID, provider, liquidityAmount); err != nil {
		return math.ZeroUint(), math.ZeroUint(), err
	}

	k.emitEvent(ctx, types.EventTypeLiquidityBurned,
		sdk.NewAttribute(types.AttributeKeySender, provider.String()),
		sdk.NewAttribute(types.AttributeKeyFirstAsset, tokenIDString(firstAsset)),
		sdk.NewAttribute(types.AttributeKeyAmountA, firstAmount.String()),
		sdk.NewAttribute(types.AttributeKeySecondAsset, tokenIDString(secondAsset)),
		sdk.NewAttribute(types.AttributeKeyAmountB, secondAmount.String()),
		sdk.NewAttribute(types.AttributeKeyLiquidityAsset, tokenIDString(liquidityTokenID)),
		sdk.NewAttribute(types.AttributeKeyLiquidityAmount, secondAmount.String()),
	)
	return firstAmount, secondAmount, nil
}

// GetTokensRequiredForMinting is the read-only mint quote (spec.md
// SPEC_FULL addition, grounded on get_tokens_required_for_minting):
// given a liquidity token id and a target share amount, it returns the
// ordered pair's ids and the amount of each asset minting that many
// shares would currently require. Like its source, it is a point-in-time
// estimate: both reserves and total issuance can move before a mint
// actually executes.
func (k Keeper) GetTokensRequiredForMinting(ctx context.Context, liquidityTokenID types.TokenID, liquidityTokenAmount math.Uint) (firstAsset types.TokenID, firstAmount math.Uint, secondAsset types.TokenID, secondAmount math.Uint, err error) {
	firstAsset, secondAsset, found := k.PairOf(ctx, liquidityTokenID)
	if !found {
		return 0, math.ZeroUint(), 0, math.ZeroUint(), types.ErrNoSuchLiquidityAsset
	}

	firstReserve, _ := k.GetReserve(ctx, firstAsset, secondAsset)
	secondReserve, _ := k.GetReserve(ctx, secondAsset, firstAsset)
	totalShares := k.ledger.TotalIssuance(ctx, liquidityTokenID)

	firstAmount, secondAmount, err = ammmath.MintQuote(firstReserve, secondReserve, totalShares, liquidityTokenAmount)
	if err != nil {
		return 0, math.ZeroUint(), 0, math.ZeroUint(), err
	}
	return firstAsset, firstAmount, secondAsset, secondAmount, nil
}

func (k Keeper) emitEvent(ctx context.Context, eventType string, attrs ...sdk.Attribute) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(eventType, append(attrs, sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName))...),
	)
}

func tokenIDString(id types.TokenID) string {
	return strconv.FormatUint(uint64(id), 10)
}
