// Package app wires the editor to the window, input and renderer and runs the
// main loop.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/vecedit/internal/config"
	"github.com/Faultbox/vecedit/internal/editor"
	"github.com/Faultbox/vecedit/internal/engine/input"
	"github.com/Faultbox/vecedit/internal/engine/renderer"
	"github.com/Faultbox/vecedit/internal/engine/window"
	"github.com/Faultbox/vecedit/internal/logger"
)

// App is the running editor instance.
type App struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings *input.Bindings
	editor   *editor.Engine

	// Window size in screen coordinates; pointer events use the same units.
	width, height int
	title         string

	// Paths chosen in the export dialog, consumed on the main thread.
	exports   chan string
	prompting atomic.Bool
}

// New creates the window, GL state and editor.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing editor",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	bindings, err := input.NewBindings(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	a := &App{
		cfg:      cfg,
		bindings: bindings,
		input:    input.New(),
		editor:   editor.New(editorOptions(cfg)),
		exports:  make(chan string, 1),
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:   dw,
		Height:  dh,
		Samples: cfg.Window.Samples,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.resize()
	a.updateTitle()

	logger.Info("editor initialized", zap.Int("bindings", bindings.Len()))
	return a, nil
}

// editorOptions maps the configuration onto engine options.
func editorOptions(cfg *config.Config) editor.Options {
	return editor.Options{
		RotateDegrees: cfg.Editor.RotateDegrees,
		ScalePercent:  cfg.Editor.ScalePercent,
		ZoomIn:        cfg.Editor.ZoomIn,
		ZoomOut:       cfg.Editor.ZoomOut,
		PanFraction:   cfg.Editor.PanFraction,
		PickRadius:    cfg.Editor.PickRadius,
		CurveSamples:  cfg.Editor.CurveSamples,
		AnimationType: cfg.Editor.AnimationType,
		ExportDir:     cfg.Export.Dir,
		ExportPrefix:  cfg.Export.Prefix,
		ExportPNG:     cfg.Export.PNG,
		Logger:        logger.Named("editor"),
	}
}

// Run starts the main loop. It returns when the window is closed or the
// editor enters quit mode.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			a.handle(ev)
		}
		if a.editor.Done() {
			a.running = false
			break
		}
		a.drainExports()
		a.updateTitle()

		a.renderer.Upload(a.editor.Version(), a.editor.Vertices())
		a.renderer.Draw(a.editor.Frame())
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up resources.
func (a *App) Close() {
	logger.Info("closing editor")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		a.resize()

	case input.EventMouseMove:
		a.pointer(ev.MouseX, ev.MouseY)

	case input.EventMouseDown:
		a.pointer(ev.MouseX, ev.MouseY)
		a.editor.Press(ev.Button)

	case input.EventMouseUp:
		a.pointer(ev.MouseX, ev.MouseY)
		a.editor.Release(ev.Button)

	case input.EventKeyDown:
		if ev.Repeat {
			return
		}
		action := a.bindings.Action(ev.Key)
		switch action {
		case editor.ActionNone:
			return
		case editor.ActionExportAs:
			a.promptExport()
			return
		}
		if err := a.editor.Do(action); err != nil {
			logger.Error("action failed", zap.Stringer("action", action), zap.Error(err))
		}
	}
}

// promptExport shows a native save dialog without blocking the loop.
// SDL and GL calls must stay on the main thread, so the chosen path is
// handed back through a.exports.
func (a *App) promptExport() {
	if !a.prompting.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer a.prompting.Store(false)

		path, err := dialog.File().
			Filter("SVG images", "svg").
			Title("Export snapshot").
			SetStartDir(a.cfg.Export.Dir).
			Save()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Warn("export dialog failed", zap.Error(err))
			}
			return
		}
		if filepath.Ext(path) == "" {
			path += ".svg"
		}
		a.exports <- path
	}()
}

func (a *App) drainExports() {
	select {
	case path := <-a.exports:
		if err := a.editor.Export(path); err != nil {
			logger.Error("export failed", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("scene exported", zap.String("path", path))
	default:
	}
}

func (a *App) pointer(x, y int) {
	p := a.editor.PixelToWorld(float32(x), float32(y), a.width, a.height)
	a.editor.PointerMove(p)
}

// resize picks up the current window and drawable sizes.
func (a *App) resize() {
	a.width, a.height = a.window.GetSize()
	a.editor.SetViewport(a.width, a.height)
	a.renderer.Resize(a.window.GetDrawableSize())
}

// updateTitle shows the current mode in the title bar.
func (a *App) updateTitle() {
	title := fmt.Sprintf("%s [%s]", a.cfg.Window.Title, a.editor.Mode())
	if title != a.title {
		a.title = title
		a.window.SetTitle(title)
	}
}
