package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/quiltui/quilt/engine/assets"
	"github.com/quiltui/quilt/engine/core"
	glbackend "github.com/quiltui/quilt/engine/gfx/gl"
	"github.com/quiltui/quilt/engine/gfx/renderer2d"
	"github.com/quiltui/quilt/engine/platform"
	"github.com/quiltui/quilt/engine/profiler"
	"github.com/quiltui/quilt/engine/scratch"
	"github.com/quiltui/quilt/engine/text"
	"github.com/quiltui/quilt/ui"
)

type App struct {
	cfg core.Config

	r2d     *renderer2d.Renderer2D
	fonts   *text.Provider
	mgr     *assets.Manager
	input   *platform.Sampler
	session *ui.Session

	lastFrame time.Time
	tick      int
	stats     renderer2d.Statistics

	debug *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10) // ~1K scope samples
	scratch.Init(a.cfg.ScratchCapacity)

	shaderDir := filepath.Join(a.cfg.Assets.Dir, "shaders")
	vs, err := assets.LoadShader(filepath.Join(shaderDir, "quad.vert"))
	if err != nil {
		panic(err)
	}
	fs, err := assets.LoadShader(filepath.Join(shaderDir, "quad.frag"))
	if err != nil {
		panic(err)
	}
	a.r2d, err = renderer2d.New(vs, fs, 10000)
	if err != nil {
		panic(err)
	}

	font, err := text.LoadTTF(filepath.Join(a.cfg.Assets.Dir, "fonts", a.cfg.UI.Font), a.cfg.UI.FontSize)
	if err != nil {
		panic(err)
	}
	a.fonts = text.NewProvider()
	a.fonts.Add("default", font)

	a.mgr = assets.NewManager(a.cfg.Assets.Dir)
	if _, err := a.mgr.LoadTexture("player", "player.png"); err != nil {
		log.Println("sandbox:", err)
	}
	if _, err := a.mgr.LoadTexture("panel", "panel.png"); err != nil {
		log.Println("sandbox:", err)
	}

	a.input = platform.NewSampler()
	a.session = ui.NewSession(a.r2d)

	e.Layers.Push(&LayerWorld{r2d: a.r2d, mgr: a.mgr}, e)
	e.Layers.Push(NewLayerUI(a), e)
	a.debug = &LayerDebug{app: a}
	e.Layers.Push(a.debug, e)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++
	now := time.Now()
	if a.debug != nil && !a.lastFrame.IsZero() {
		a.debug.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debug.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	// Snapshot of the previous frame; this runs before the layers draw.
	a.stats = a.r2d.Stats()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	a.input.HandleEvent(ev)
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.mgr.Shutdown()
	a.r2d.Shutdown()
}

func main() {
	cfg, err := core.LoadConfig("quilt.toml")
	if err != nil {
		log.Fatal(err)
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(&App{cfg: cfg}, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
