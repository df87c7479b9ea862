package main

import (
	"github.com/quiltui/quilt/engine/assets"
	"github.com/quiltui/quilt/engine/colors"
	"github.com/quiltui/quilt/engine/core"
	"github.com/quiltui/quilt/engine/gfx/renderer2d"
	"github.com/quiltui/quilt/engine/profiler"
	"github.com/quiltui/quilt/engine/scene"
)

// LayerWorld is the camera-driven scene under the interface. It renders
// through its own view-projection; the interface layers above it install
// their own.
type LayerWorld struct {
	cam  *scene.OrthoCamera2D
	ctrl *scene.OrthoController2D
	r2d  *renderer2d.Renderer2D
	mgr  *assets.Manager

	player renderer2d.Region
	t      float32
}

func (l *LayerWorld) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)
	l.cam.SetZoom(4)
	l.ctrl = scene.NewOrthoController2D(l.cam)

	if tex, err := l.mgr.LoadTexture("player-sheet", "player.png"); err == nil {
		tw, th := tex.Size()
		l.player = renderer2d.RegionFromPixels(tex, 0, 0, 32, 32, tw, th)
	}
}

func (l *LayerWorld) OnDetach(e *core.Engine) {}

func (l *LayerWorld) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e, float32(dt))
	l.t += float32(dt)
}

func (l *LayerWorld) OnRender(e *core.Engine, alpha float64) {
	renderEnd := profiler.Start("LayerWorld.OnRender")

	l.r2d.BeginScene(l.cam.VP())
	{
		if l.player.Texture != nil {
			l.r2d.DrawRegion(0, 0, 32, 32, l.player, colors.White, l.t)
		}
		l.r2d.DrawSprite(-48, 0, 16, 16, nil, colors.Cyan, -l.t)
	}
	l.r2d.EndScene()

	renderEnd()
}

func (l *LayerWorld) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.cam.SetViewportPixels(v.W, v.H)
	}
	return false
}
