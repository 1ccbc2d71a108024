package game

// Chase scoring.
const (
	DotReward     = 10.0
	TimePenalty   = 1.0 // Charged for every runner move, Stop included
	ClearReward   = 500.0
	CaughtPenalty = 500.0
)
