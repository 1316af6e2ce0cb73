package types

import (
	"cosmossdk.io/errors"
)

// xyk module sentinel errors. Numbered and registered the same way
// x/dex/types/errors.go registers its own.
var (
	ErrZeroAmount                          = errors.Register(ModuleName, 1, "amount cannot be zero")
	ErrPoolAlreadyExists                   = errors.Register(ModuleName, 2, "pool already exists")
	ErrNotEnoughAssets                     = errors.Register(ModuleName, 3, "not enough assets")
	ErrNoSuchPool                          = errors.Register(ModuleName, 4, "no such pool")
	ErrNoSuchLiquidityAsset                = errors.Register(ModuleName, 5, "no such liquidity asset")
	ErrNotEnoughReserve                    = errors.Register(ModuleName, 6, "not enough reserve")
	ErrInsufficientInputAmount             = errors.Register(ModuleName, 7, "insufficient input amount")
	ErrInsufficientOutputAmount            = errors.Register(ModuleName, 8, "insufficient output amount")
	ErrSameAsset                           = errors.Register(ModuleName, 9, "cannot pool or swap identical asset with itself")
	ErrDivisionByZero                      = errors.Register(ModuleName, 10, "division by zero")
	ErrNotMangataLiquidityAsset            = errors.Register(ModuleName, 11, "liquidity asset is not paired with the native token")
	ErrSecondAssetAmountExceededExpectations = errors.Register(ModuleName, 12, "second asset amount exceeded expectations")
	ErrInvalidGenesis                      = errors.Register(ModuleName, 13, "invalid genesis state")
	ErrInvalidAddress                      = errors.Register(ModuleName, 14, "invalid bech32 address")
)
