package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 800
)

// Run starts the window and main loop. Each frame it calls update (input,
// camera), then clears the screen and calls draw (viewport, overlays).
// This keeps the graphics layer separate from the scene and console content.
// ESC toggles the console, so it is not the exit key; close via window button.
func Run(title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
