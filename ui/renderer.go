package ui

import (
	"image/color"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"strawberry-snake/config"
	"strawberry-snake/logger"
	"strawberry-snake/ui/tiles"
)

// Fallback colours for tiles whose texture did not load.
var fallbackColors = [tiles.NumSprites]color.RGBA{
	tiles.Ground:     {R: 96, G: 64, B: 40, A: 255},
	tiles.Strawberry: rl.Red,
	tiles.Worm:       {R: 230, G: 140, B: 160, A: 255},
	tiles.WormHead:   {R: 250, G: 110, B: 140, A: 255},
}

type Renderer struct {
	textures [tiles.NumSprites]rl.Texture2D
	loaded   [tiles.NumSprites]bool
	scale    float32
	log      *logger.Logger
}

// NewRenderer loads <spriteDir>/<sprite>.png for every sprite. It must run after
// the window is open. Missing textures are drawn as flat colours.
func NewRenderer(cfg *config.Config, log *logger.Logger) *Renderer {
	r := &Renderer{
		scale: float32(cfg.SpriteScale),
		log:   log,
	}
	for s := tiles.Sprite(0); s < tiles.NumSprites; s++ {
		path := filepath.Join(cfg.SpriteDir, s.String()+".png")
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			log.Warnf("texture %s not loaded, drawing %s as a flat tile", path, s)
			continue
		}
		r.textures[s] = tex
		r.loaded[s] = true
	}
	return r
}

// Draw renders one frame.
func (r *Renderer) Draw(frame tiles.Frame) error {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	size := int32(frame.TileSize)
	for y, row := range frame.Cells {
		for x, s := range row {
			px, py := frame.Position(x, y)
			if r.loaded[s] {
				rl.DrawTextureEx(r.textures[s], rl.Vector2{X: float32(px), Y: float32(py)}, 0, r.scale, rl.White)
				continue
			}
			rl.DrawRectangle(int32(px), int32(py), size, size, fallbackColors[s])
			rl.DrawRectangleLines(int32(px), int32(py), size, size, rl.DarkGray)
		}
	}

	rl.EndDrawing()
	return nil
}

// Close releases the textures. Call before closing the window.
func (r *Renderer) Close() {
	for s := range r.textures {
		if r.loaded[s] {
			rl.UnloadTexture(r.textures[s])
			r.loaded[s] = false
		}
	}
}
