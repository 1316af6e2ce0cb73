package cli

// Flag constants for xyk CLI commands.
const (
	FlagReserveIn   = "reserve-in"
	FlagReserveOut  = "reserve-out"
	FlagAmount      = "amount"
	FlagTotalShares = "total-shares"
)
