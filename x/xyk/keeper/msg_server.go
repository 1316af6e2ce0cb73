package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coreswap/xyk/x/xyk/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the xyk MsgServer interface.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: invalid creator address: %w", err)
	}

	liquidityTokenID, err := ms.Keeper.CreatePool(goCtx, creator, msg.TokenA, msg.AmountA, msg.TokenB, msg.AmountB)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}
	return &types.MsgCreatePoolResponse{LiquidityTokenID: liquidityTokenID}, nil
}

func (ms msgServer) SellAsset(goCtx context.Context, msg *types.MsgSellAsset) (*types.MsgSellAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SellAsset: validate: %w", err)
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SellAsset: invalid trader address: %w", err)
	}

	bought, err := ms.Keeper.SellAsset(goCtx, trader, msg.SoldAsset, msg.BoughtAsset, msg.SoldAmount, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("SellAsset: %w", err)
	}
	return &types.MsgSellAssetResponse{BoughtAmount: bought}, nil
}

func (ms msgServer) BuyAsset(goCtx context.Context, msg *types.MsgBuyAsset) (*types.MsgBuyAssetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("BuyAsset: validate: %w", err)
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("BuyAsset: invalid trader address: %w", err)
	}

	sold, err := ms.Keeper.BuyAsset(goCtx, trader, msg.SoldAsset, msg.BoughtAsset, msg.BoughtAmount, msg.MaxAmountIn)
	if err != nil {
		return nil, fmt.Errorf("BuyAsset: %w", err)
	}
	return &types.MsgBuyAssetResponse{SoldAmount: sold}, nil
}

func (ms msgServer) MintLiquidity(goCtx context.Context, msg *types.MsgMintLiquidity) (*types.MsgMintLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MintLiquidity: validate: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("MintLiquidity: invalid provider address: %w", err)
	}

	secondAmount, minted, err := ms.Keeper.MintLiquidity(goCtx, provider, msg.FirstAsset, msg.SecondAsset, msg.FirstAmount, msg.ExpectedSecondAmount)
	if err != nil {
		return nil, fmt.Errorf("MintLiquidity: %w", err)
	}
	return &types.MsgMintLiquidityResponse{SecondAmount: secondAmount, MintedShares: minted}, nil
}

func (ms msgServer) BurnLiquidity(goCtx context.Context, msg *types.MsgBurnLiquidity) (*types.MsgBurnLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("BurnLiquidity: validate: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("BurnLiquidity: invalid provider address: %w", err)
	}

	first, second, err := ms.Keeper.BurnLiquidity(goCtx, provider, msg.FirstAsset, msg.SecondAsset, msg.LiquidityAmount)
	if err != nil {
		return nil, fmt.Errorf("BurnLiquidity: %w", err)
	}
	return &types.MsgBurnLiquidityResponse{FirstAmount: first, SecondAmount: second}, nil
}
