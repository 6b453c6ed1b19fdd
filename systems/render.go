package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/RilyGit/DimaGame/assets"
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/RilyGit/DimaGame/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}

	skyColor    = color.RGBA{R: 52, G: 46, B: 74, A: 255}
	groundColor = color.RGBA{R: 96, G: 70, B: 46, A: 255}
)

// DrawRequest is everything the renderer needs to draw one actor.
type DrawRequest struct {
	SpriteKey   string
	Frame       int
	X, Y        float64 // world position of the frame's top-left corner
	W, H        int     // frame size
	Facing      float64
	Flash       bool // the actor is recoiling from a hit
	HealthRatio float64
}

// DrawRequestFor describes how to draw an actor this frame. The frame is
// anchored bottom-centre on the hitbox and pushed down by the visual offset.
func DrawRequestFor(entry *donburi.Entry) DrawRequest {
	anim := components.Animation.Get(entry)
	actor := components.Actor.Get(entry)
	physics := components.Physics.Get(entry)
	hb := Hitbox(entry)

	return DrawRequest{
		SpriteKey:   anim.SheetKey(),
		Frame:       anim.Animation.Frame,
		X:           hb.CenterX() - float64(anim.FrameWidth)/2,
		Y:           hb.Bottom() + physics.VisualOffsetY - float64(anim.FrameHeight),
		W:           anim.FrameWidth,
		H:           anim.FrameHeight,
		Facing:      actor.Direction,
		Flash:       actor.IsTakingHit,
		HealthRatio: components.Health.Get(entry).Ratio(),
	}
}

// frameCache holds the ebiten images cut from loaded sheets.
type frameCache struct {
	source *assets.Manager
	sheets map[string]*ebiten.Image
	frames map[string][]*ebiten.Image
}

var sprites frameCache

func (c *frameCache) sheet(m *assets.Manager, name string) *ebiten.Image {
	if m == nil || name == "" {
		return nil
	}
	if c.source != m {
		c.source = m
		c.sheets = make(map[string]*ebiten.Image)
		c.frames = make(map[string][]*ebiten.Image)
	}
	if img, ok := c.sheets[name]; ok {
		return img
	}
	src, ok := m.Image(name)
	var img *ebiten.Image
	if ok {
		img = ebiten.NewImageFromImage(src)
	}
	c.sheets[name] = img
	return img
}

func (c *frameCache) frame(m *assets.Manager, req DrawRequest) *ebiten.Image {
	sheet := c.sheet(m, req.SpriteKey)
	if sheet == nil || req.W <= 0 || req.H <= 0 {
		return nil
	}
	frames := c.frames[req.SpriteKey]
	if frames == nil {
		n := sheet.Bounds().Dx() / req.W
		frames = make([]*ebiten.Image, n)
		c.frames[req.SpriteKey] = frames
	}
	if req.Frame < 0 || req.Frame >= len(frames) {
		return nil
	}
	if frames[req.Frame] == nil {
		sx := req.Frame * req.W
		frames[req.Frame] = sheet.SubImage(image.Rect(sx, 0, sx+req.W, req.H)).(*ebiten.Image)
	}
	return frames[req.Frame]
}

// DrawBackground fills the sky.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(skyColor)
}

// DrawGround tiles the ground strip under the camera.
func DrawGround(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State == cfg.GameStateLoading || session.State == cfg.GameStateError {
		return
	}
	camera := GetOrCreateCamera(e)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	groundY := cfg.Physics.GroundLevel

	tile := sprites.sheet(session.Assets, assets.GroundTile)
	if tile == nil {
		vector.FillRect(screen, 0, float32(groundY), float32(width), float32(float64(height)-groundY), groundColor, false)
		return
	}

	size := float64(cfg.Physics.GroundTileSize)
	offset := math.Mod(camera.Position.X, size)
	if offset < 0 {
		offset += size
	}
	for x := -offset; x < float64(width); x += size {
		for y := groundY; y < float64(height); y += size {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(x, y)
			screen.DrawImage(tile, drawOp)
		}
	}
}

// DrawCharacters renders enemies, then the player on top.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	session := GetOrCreateSession(e)
	if session.State == cfg.GameStateLoading || session.State == cfg.GameStateError {
		return
	}
	camera := GetOrCreateCamera(e)

	draw := func(entry *donburi.Entry) {
		drawActor(screen, session.Assets, DrawRequestFor(entry), camera.Position.X, entry.HasComponent(components.Player))
	}
	tags.Enemy.Each(e.World, draw)
	tags.Player.Each(e.World, draw)
}

func drawActor(screen *ebiten.Image, m *assets.Manager, req DrawRequest, camX float64, isPlayer bool) {
	screenX := req.X - camX
	width := float64(screen.Bounds().Dx())
	if screenX+float64(req.W) < 0 || screenX > width {
		return
	}

	img := sprites.frame(m, req)
	if img == nil {
		// No sheet loaded for this action: draw a placeholder box
		c := cfg.LightRed
		if isPlayer {
			c = cfg.Cyan
		}
		vector.FillRect(screen, float32(screenX), float32(req.Y), float32(req.W), float32(req.H), c, false)
		return
	}

	geoM := ebiten.GeoM{}
	if req.Facing < 0 {
		geoM.Scale(-1, 1)
		geoM.Translate(float64(req.W), 0)
	}
	geoM.Translate(screenX, req.Y)

	if req.Flash && assets.FlashShader != nil {
		shaderOp.GeoM = geoM
		shaderOp.Images[0] = img
		shaderOp.Uniforms = map[string]any{"Flash": float32(0.7)}
		b := img.Bounds()
		screen.DrawRectShader(b.Dx(), b.Dy(), assets.FlashShader, shaderOp)
		return
	}

	drawOp.GeoM = geoM
	drawOp.ColorScale.Reset()
	screen.DrawImage(img, drawOp)
}

// DrawHealthBars draws a small bar above every enemy that is still standing.
func DrawHealthBars(e *ecs.ECS, screen *ebiten.Image) {
	if GameState(e) == cfg.GameStateLoading {
		return
	}
	camera := GetOrCreateCamera(e)
	barWidth := cfg.HUD.EnemyBarWidth
	barHeight := 5.0

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Actor.Get(entry).IsAlive {
			return
		}
		req := DrawRequestFor(entry)
		hb := Hitbox(entry)

		x := hb.CenterX() - barWidth/2 - camera.Position.X
		y := req.Y - cfg.HUD.EnemyBarGap - barHeight

		vector.FillRect(screen, float32(x), float32(y), float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.FillRect(screen, float32(x), float32(y), float32(barWidth*req.HealthRatio), float32(barHeight), cfg.Green, false)
	})
}
