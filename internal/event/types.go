package event

const (
	AngleChanged EventType = "AngleChanged" // Data: float64, disc angle in [0,360)
	DotPlaced    EventType = "DotPlaced"    // Data: component.Placement
	GameOver     EventType = "GameOver"     // Data: int, final score
	GameReset    EventType = "GameReset"    // Data: nil
)
