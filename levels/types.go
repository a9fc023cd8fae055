// Package levels parses the TMX start layout. It has no dependencies on
// ebitengine, donburi, or resolv. Pure data only.
package levels

// Layout holds everything a run needs from the start map.
type Layout struct {
	Spawn SpawnPoint

	PlatformCount int
	BandHeight    float64
	PlatformMinX  int
	PlatformMaxX  int
}

// SpawnPoint is the player's start position.
type SpawnPoint struct {
	X, Y float64
}
