package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// The screen is not cleared between frames; a scene that has nothing
	// new to show may leave it untouched.
	Draw(screen *ebiten.Image)
}
