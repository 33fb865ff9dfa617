package common

const (
	CanvasWidth  = 1200
	CanvasHeight = 800

	TicksPerSecond = 30
	WarnFPS        = 60

	SpawnCount = 1000
)
