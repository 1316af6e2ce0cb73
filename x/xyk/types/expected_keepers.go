package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ExistencePolicy mirrors the ledger's existence-requirement choice for
// a transfer: AllowDeath permits the source account to be reaped if the
// transfer drains it below the existential deposit; KeepAlive refuses
// such a transfer.
type ExistencePolicy int

const (
	AllowDeath ExistencePolicy = iota
	KeepAlive
)

// LedgerKeeper is the boundary the xyk core consumes and never
// implements (§4.3). It is the only way the core moves balances; it
// never manipulates free or locked balances directly.
type LedgerKeeper interface {
	// FreeBalance returns the spendable balance of token held by account.
	FreeBalance(ctx context.Context, token TokenID, account sdk.AccAddress) math.Uint

	// TotalIssuance returns the total circulating supply of token.
	TotalIssuance(ctx context.Context, token TokenID) math.Uint

	// EnsureCanWithdraw reports whether amount can be withdrawn from
	// account leaving remainingAfter behind, without actually moving
	// anything.
	EnsureCanWithdraw(ctx context.Context, token TokenID, account sdk.AccAddress, amount, remainingAfter math.Uint) error

	// Transfer moves amount of token from one account to another under
	// the given existence policy.
	Transfer(ctx context.Context, token TokenID, from, to sdk.AccAddress, amount math.Uint, policy ExistencePolicy) error

	// Mint credits amount of token to account, increasing total issuance.
	Mint(ctx context.Context, token TokenID, account sdk.AccAddress, amount math.Uint) error

	// BurnAndSettle destroys amount of token held by account.
	BurnAndSettle(ctx context.Context, token TokenID, account sdk.AccAddress, amount math.Uint) error

	// CreateNewToken mints a brand new token id, crediting initialAmount
	// to initialHolder, and returns the assigned id.
	CreateNewToken(ctx context.Context, initialHolder sdk.AccAddress, initialAmount math.Uint) (TokenID, error)

	// NextTokenID peeks the id create_new_token would assign next,
	// without allocating it. Used at genesis only (§6).
	NextTokenID(ctx context.Context) TokenID
}
