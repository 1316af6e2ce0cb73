package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Msg structs and MsgServer form the thin dispatch layer in front of the
// keeper (spec.md's core treats this layer as an external collaborator
// it is never responsible for). Hand-written rather than proto-generated:
// these carry no wire encoding of their own here, only the validation
// and routing shape the generated types would have.

type MsgCreatePool struct {
	Creator string
	TokenA  TokenID
	AmountA math.Uint
	TokenB  TokenID
	AmountB math.Uint
}

func (m *MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %s", err)
	}
	if m.TokenA == m.TokenB {
		return ErrSameAsset
	}
	if m.AmountA.IsNil() || m.AmountA.IsZero() || m.AmountB.IsNil() || m.AmountB.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

type MsgCreatePoolResponse struct {
	LiquidityTokenID TokenID
}

type MsgSellAsset struct {
	Trader       string
	SoldAsset    TokenID
	BoughtAsset  TokenID
	SoldAmount   math.Uint
	MinAmountOut math.Uint
}

func (m *MsgSellAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}
	if m.SoldAsset == m.BoughtAsset {
		return ErrSameAsset
	}
	if m.SoldAmount.IsNil() || m.SoldAmount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

type MsgSellAssetResponse struct {
	BoughtAmount math.Uint
}

type MsgBuyAsset struct {
	Trader       string
	SoldAsset    TokenID
	BoughtAsset  TokenID
	BoughtAmount math.Uint
	MaxAmountIn  math.Uint
}

func (m *MsgBuyAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}
	if m.SoldAsset == m.BoughtAsset {
		return ErrSameAsset
	}
	if m.BoughtAmount.IsNil() || m.BoughtAmount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

type MsgBuyAssetResponse struct {
	SoldAmount math.Uint
}

type MsgMintLiquidity struct {
	Provider             string
	FirstAsset           TokenID
	SecondAsset          TokenID
	FirstAmount          math.Uint
	ExpectedSecondAmount *math.Uint
}

func (m *MsgMintLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if m.FirstAsset == m.SecondAsset {
		return ErrSameAsset
	}
	if m.FirstAmount.IsNil() || m.FirstAmount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

type MsgMintLiquidityResponse struct {
	SecondAmount math.Uint
	MintedShares math.Uint
}

type MsgBurnLiquidity struct {
	Provider        string
	FirstAsset      TokenID
	SecondAsset     TokenID
	LiquidityAmount math.Uint
}

func (m *MsgBurnLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if m.FirstAsset == m.SecondAsset {
		return ErrSameAsset
	}
	if m.LiquidityAmount.IsNil() || m.LiquidityAmount.IsZero() {
		return ErrZeroAmount
	}
	return nil
}

type MsgBurnLiquidityResponse struct {
	FirstAmount  math.Uint
	SecondAmount math.Uint
}

// MsgServer is the xyk module's message dispatch surface.
type MsgServer interface {
	CreatePool(goCtx context.Context, msg *MsgCreatePool) (*MsgCreatePoolResponse, error)
	SellAsset(goCtx context.Context, msg *MsgSellAsset) (*MsgSellAssetResponse, error)
	BuyAsset(goCtx context.Context, msg *MsgBuyAsset) (*MsgBuyAssetResponse, error)
	MintLiquidity(goCtx context.Context, msg *MsgMintLiquidity) (*MsgMintLiquidityResponse, error)
	BurnLiquidity(goCtx context.Context, msg *MsgBurnLiquidity) (*MsgBurnLiquidityResponse, error)
}
