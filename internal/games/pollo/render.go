package pollo

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/pollo-run/internal/core"
	"github.com/vovakirdan/pollo-run/internal/games/pollo/sim"
)

// Visual characters for rendering
const (
	GroundChar = '▀'
	EndChar    = '┃'
	CoinChar   = '●'
	BottleChar = '¡'
	FlaskChar  = '◆'
	SplashChar = '✶'
	HeartChar  = '♥'
)

const hudRows = 1

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	RenderSnapshot(dst, g.world.Snapshot())

	switch {
	case g.world.Finished && g.world.Won:
		drawBanner(dst, "YOU WIN!", fmt.Sprintf("Score %d - R restart, Q quit", Score(g.world)))
	case g.world.Finished:
		drawBanner(dst, "GAME OVER", "R restart, Q quit")
	case g.paused:
		drawBanner(dst, "PAUSED", "P resume")
	}
}

// viewport maps world pixels onto screen cells below the HUD.
type viewport struct {
	sx, sy  float64
	cameraX float64
}

func (v viewport) rect(x, y, w, h float64) core.Rect {
	cx := int(math.Floor((x + v.cameraX) * v.sx))
	cy := hudRows + int(math.Floor(y*v.sy))
	cw := max(1, int(math.Round(w*v.sx)))
	ch := max(1, int(math.Round(h*v.sy)))
	return core.NewRect(cx, cy, cw, ch)
}

// RenderSnapshot draws a world snapshot; it is shared with headless output.
func RenderSnapshot(dst *core.Screen, s sim.Snapshot) {
	if s.ViewportW <= 0 || s.ViewportH <= 0 {
		return
	}
	v := viewport{
		sx:      float64(dst.Width()) / s.ViewportW,
		sy:      float64(dst.Height()-hudRows) / s.ViewportH,
		cameraX: s.CameraX,
	}

	floor := v.rect(0, s.FloorY, 1, 1).Y
	dst.DrawHLine(0, floor, dst.Width(), GroundChar, core.ColorBrown)
	end := v.rect(s.EndX, 0, 1, 1)
	for y := hudRows; y < floor; y++ {
		dst.SetColored(end.X, y, EndChar, core.ColorGray)
	}

	for _, sp := range s.Sprites {
		drawSprite(dst, v, sp)
	}
	drawHUD(dst, s)
}

func drawSprite(dst *core.Screen, v viewport, sp sim.Sprite) {
	r := v.rect(sp.X, sp.Y, sp.W, sp.H)
	if r.Right() < 0 || r.X >= dst.Width() {
		return
	}

	switch sp.Kind {
	case sim.SpritePlayer:
		drawBody(dst, r, '█', playerColor(sp.Appearance), sp.Mirror)
	case sim.SpriteChicken:
		drawEnemy(dst, r, '▓', core.ColorWhite, sp)
	case sim.SpriteSmallChicken:
		drawEnemy(dst, r, '▒', core.ColorBrightYellow, sp)
	case sim.SpriteBoss:
		drawBody(dst, r, '█', bossColor(sp.Appearance), sp.Mirror)
	case sim.SpriteCoin:
		drawCentered(dst, r, CoinChar, core.ColorBrightYellow)
	case sim.SpriteBottle:
		drawCentered(dst, r, BottleChar, core.ColorGreen)
	case sim.SpriteProjectile:
		if sp.Appearance == sim.AppearSplash {
			drawCentered(dst, r, SplashChar, core.ColorYellow)
		} else {
			drawCentered(dst, r, FlaskChar, core.ColorGreen)
		}
	}
}

// drawBody fills the sprite rectangle and marks the facing side with an eye.
func drawBody(dst *core.Screen, r core.Rect, fill rune, c core.Color, mirror bool) {
	dst.DrawRect(r, fill, c)
	eyeX := r.Right() - 1
	if mirror {
		eyeX = r.X
	}
	dst.SetColored(eyeX, r.Y, '◉', c)
}

func drawEnemy(dst *core.Screen, r core.Rect, fill rune, c core.Color, sp sim.Sprite) {
	if sp.Appearance == sim.AppearDead {
		drawCentered(dst, r, '✕', core.ColorGray)
		return
	}
	dst.DrawRect(r, fill, c)
	// Alternate the feet to show walking
	feet := "╱╲"
	if sp.Frame%2 == 1 {
		feet = "╲╱"
	}
	dst.DrawTextColored(r.X, r.Bottom()-1, feet, core.ColorOrange)
	dst.SetColored(r.X, r.Y, '◀', core.ColorRed)
}

func drawCentered(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	dst.SetColored(r.X+r.W/2, r.Y+r.H/2, ch, c)
}

func playerColor(appearance string) core.Color {
	switch appearance {
	case sim.AppearHurt:
		return core.ColorRed
	case sim.AppearDead:
		return core.ColorGray
	case sim.AppearJump:
		return core.ColorBlue
	default:
		return core.ColorCyan
	}
}

func bossColor(appearance string) core.Color {
	switch appearance {
	case sim.AppearAlert:
		return core.ColorYellow
	case sim.AppearAttack:
		return core.ColorBrightRed
	case sim.AppearHurt:
		return core.ColorRed
	case sim.AppearDead:
		return core.ColorGray
	default:
		return core.ColorMagenta
	}
}

func drawHUD(dst *core.Screen, s sim.Snapshot) {
	x := 1
	x = drawStat(dst, x, fmt.Sprintf("%c %3d%%", HeartChar, s.Bars.Health), core.ColorRed)
	x = drawStat(dst, x, fmt.Sprintf("%c %d (%d%%)", CoinChar, s.Coins, s.Bars.Coins), core.ColorBrightYellow)
	x = drawStat(dst, x, fmt.Sprintf("%c %d/%d", BottleChar, s.BottleAmount, s.BottleMax), core.ColorGreen)
	if s.Bars.HasBoss {
		x = drawStat(dst, x, "BOSS "+bar(s.Bars.Boss, 10), core.ColorMagenta)
	}
	elapsed := s.Time.Round(time.Second)
	dst.DrawTextColored(max(x, dst.Width()-8), 0, fmt.Sprintf("%6s", elapsed), core.ColorGray)
}

func drawStat(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawTextColored(x, 0, text, c)
	return x + len([]rune(text)) + 2
}

// bar renders percent as a fixed-width gauge.
func bar(percent, width int) string {
	filled := core.Clamp(percent*width/100, 0, width)
	return "[" + strings.Repeat("■", filled) + strings.Repeat("·", width-filled) + "]"
}

func drawBanner(dst *core.Screen, title, hint string) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, title)
	dst.DrawTextCentered(y+1, hint)
}
