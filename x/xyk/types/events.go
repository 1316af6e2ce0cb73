package types

// Event types emitted by the xyk module, following x/dex's
// lowercase-with-underscore module_action convention.
const (
	EventTypePoolCreated      = "xyk_pool_created"
	EventTypeAssetsSwapped    = "xyk_assets_swapped"
	EventTypeLiquidityMinted  = "xyk_liquidity_minted"
	EventTypeLiquidityBurned  = "xyk_liquidity_burned"
)

// Event attribute keys.
const (
	AttributeKeySender      = "sender"
	AttributeKeyFirstAsset  = "first_asset_id"
	AttributeKeySecondAsset = "second_asset_id"
	AttributeKeySoldAsset   = "sold_asset_id"
	AttributeKeyBoughtAsset = "bought_asset_id"
	AttributeKeyAmountA     = "first_asset_amount"
	AttributeKeyAmountB     = "second_asset_amount"
	AttributeKeySoldAmount  = "sold_asset_amount"
	AttributeKeyBoughtAmount = "bought_asset_amount"
	AttributeKeyLiquidityAsset = "liquidity_asset_id"

	// AttributeKeyLiquidityAmount is the mint/burn events' trailing
	// field. The source pallet sets it to second_asset_amount rather
	// than the actual liquidity share delta — preserved here rather
	// than fixed (SPEC_FULL.md Open Questions).
	AttributeKeyLiquidityAmount = "liquidity_amount"
)
