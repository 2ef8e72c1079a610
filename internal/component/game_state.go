package component

// GamePhase is the phase of a round.
type GamePhase int

const (
	Playing GamePhase = iota
	GameOver
)

func (p GamePhase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
