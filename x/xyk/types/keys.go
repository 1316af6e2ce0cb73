package types

const (
	// ModuleName is the name of the xyk module, used for error registration
	// and the store key.
	ModuleName = "xyk"

	// StoreKey is the string store key for the xyk module.
	StoreKey = ModuleName
)

// ModuleNamespace is the namespace byte for the xyk module's store keys.
var ModuleNamespace = byte(0x01)

var (
	// PoolKeyPrefix prefixes a directed reserve entry: (tokenIn, tokenOut) -> Balance.
	// Both directions of a live pool are stored under this prefix (I1).
	PoolKeyPrefix = []byte{ModuleNamespace, 0x01}

	// LiquidityAssetKeyPrefix prefixes the (tokenA, tokenB) -> liquidityTokenId index.
	LiquidityAssetKeyPrefix = []byte{ModuleNamespace, 0x02}

	// LiquidityPoolKeyPrefix prefixes the liquidityTokenId -> (tokenA, tokenB) index.
	LiquidityPoolKeyPrefix = []byte{ModuleNamespace, 0x03}

	// TreasuryKeyPrefix prefixes the treasury accumulator: tokenId -> Balance.
	TreasuryKeyPrefix = []byte{ModuleNamespace, 0x04}

	// TreasuryBurnKeyPrefix prefixes the deferred-burn accumulator: tokenId -> Balance.
	TreasuryBurnKeyPrefix = []byte{ModuleNamespace, 0x05}
)

// ModuleTag is the fixed 8-byte module tag the vault account is derived
// from, matching the source pallet's PALLET_ID.
var ModuleTag = [8]byte{'7', '9', 'b', '1', '4', 'c', '9', '6'}

// NativeTokenID is the distinguished native token id used as the
// reference asset for treasury and buy-and-burn settlement.
const NativeTokenID uint32 = 0
