package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., the saloon gallery).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Finisher 是一个可选接口，场景结束时通知宿主退出游戏循环
type Finisher interface {
	// Finished 返回 true 表示场景已结束，不再需要 Update/Draw
	Finished() bool
}
