package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gones/internal/config"
	"gones/internal/console"
	"gones/internal/input"
	"gones/internal/ppu"
)

// Game wraps a Console plus the ebiten-side presentation state: the blit
// target image, pixel scratch buffer, and the resolved keyboard bindings.
type Game struct {
	console *console.Console
	image   *ebiten.Image
	pixels  []byte
	keys    keyBindings
	debug   bool
}

type keyBindings struct {
	p0, p1 portKeys
}

type portKeys struct {
	up, down, left, right, a, b, start, select_ ebiten.Key
}

// NewGame constructs a Game around an already-loaded Console.
func NewGame(c *console.Console, cfg *config.Config, debug bool) *Game {
	return &Game{
		console: c,
		image:   ebiten.NewImage(ppu.Width, ppu.Height),
		pixels:  make([]byte, ppu.Width*ppu.Height*4),
		keys: keyBindings{
			p0: resolveKeys(cfg.Input.Player1),
			p1: resolveKeys(cfg.Input.Player2),
		},
		debug: debug,
	}
}

func resolveKeys(m config.KeyMapping) portKeys {
	return portKeys{
		up:      lookupKey(m.Up),
		down:    lookupKey(m.Down),
		left:    lookupKey(m.Left),
		right:   lookupKey(m.Right),
		a:       lookupKey(m.A),
		b:       lookupKey(m.B),
		start:   lookupKey(m.Start),
		select_: lookupKey(m.Select),
	}
}

var keyNames = map[string]ebiten.Key{
	"ArrowUp": ebiten.KeyArrowUp, "ArrowDown": ebiten.KeyArrowDown,
	"ArrowLeft": ebiten.KeyArrowLeft, "ArrowRight": ebiten.KeyArrowRight,
	"Enter": ebiten.KeyEnter, "Space": ebiten.KeySpace,
	"KeyA": ebiten.KeyA, "KeyB": ebiten.KeyB, "KeyD": ebiten.KeyD,
	"KeyI": ebiten.KeyI, "KeyJ": ebiten.KeyJ, "KeyK": ebiten.KeyK,
	"KeyM": ebiten.KeyM, "KeyN": ebiten.KeyN, "KeyS": ebiten.KeyS,
	"KeyU": ebiten.KeyU, "KeyW": ebiten.KeyW,
}

func lookupKey(name string) ebiten.Key {
	if k, ok := keyNames[name]; ok {
		return k
	}
	log.Printf("config: unknown key binding %q, ignoring", name)
	return -1
}

func readPort(k portKeys) input.Buttons {
	pressed := func(key ebiten.Key) bool { return key >= 0 && ebiten.IsKeyPressed(key) }
	return input.Buttons{
		A: pressed(k.a), B: pressed(k.b), Select: pressed(k.select_), Start: pressed(k.start),
		Up: pressed(k.up), Down: pressed(k.down), Left: pressed(k.left), Right: pressed(k.right),
	}
}

// Update implements ebiten.Game: polls keyboard state into the controller
// ports, handles Escape-to-pause, then runs one emulation frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.console.Pause()
	}
	g.console.SetInputs(readPort(g.keys.p0), readPort(g.keys.p1))
	g.console.RunFrame()
	return nil
}

// Draw implements ebiten.Game: converts the PPU's 0xAARRGGBB framebuffer
// into the RGBA byte order ebiten.Image.WritePixels expects and blits it
// scaled to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.console.FrameBuffer()
	for i, px := range fb {
		g.pixels[i*4+0] = byte(px >> 16)
		g.pixels[i*4+1] = byte(px >> 8)
		g.pixels[i*4+2] = byte(px)
		g.pixels[i*4+3] = byte(px >> 24)
	}
	g.image.WritePixels(g.pixels)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scaleX := float64(sw) / float64(ppu.Width)
	scaleY := float64(sh) / float64(ppu.Height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	if g.console.Paused() {
		op.ColorScale.ScaleAlpha(0.4)
	}
	screen.DrawImage(g.image, op)
}

// Layout implements ebiten.Game, using the window size the backend reports
// as the logical screen size; Draw stretches the 256x240 frame to fill it
// without preserving the aspect ratio.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
