// Package app runs the demo frame loop.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/demo"
	"github.com/Faultbox/gldemos/internal/engine/debug"
	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/window"
	"github.com/Faultbox/gldemos/internal/logger"
)

// Config holds app configuration.
type Config struct {
	Title         string
	Scene         string
	ScreenshotDir string

	// Settings, if set, is updated from the running demo and written out
	// when the save key is pressed. An empty SettingsPath saves to the
	// user config directory.
	Settings     *config.Config
	SettingsPath string
}

// App owns the window and drives the current scene.
type App struct {
	config  Config
	running bool

	window window.Window
	env    demo.Env
	scenes *demo.Manager
	input  *input.Input
	shots  *debug.ScreenshotCapture
	log    *zap.Logger

	scene          string
	wantScreenshot bool
	// clearColor is the configured backdrop; scenes may swap their own in.
	clearColor mesh.RGBA
}

// New creates the app and schedules cfg.Scene. The window and the render
// context in env must already exist.
func New(w window.Window, env demo.Env, cfg Config) (*App, error) {
	a := &App{
		config:  cfg,
		running: true,
		window:  w,
		env:     env,
		scenes:  demo.NewManager(),
		input:   input.New(),
		shots:   debug.NewScreenshotCapture(cfg.ScreenshotDir, "gldemo"),
		log:     logger.Named("app"),

		clearColor: env.Render.ClearColor(),
	}

	env.Render.SetCanvasSize(w)
	if err := a.changeScene(cfg.Scene); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) changeScene(name string) error {
	s, err := demo.New(name, a.env)
	if err != nil {
		return err
	}
	a.scene = name
	a.scenes.Change(s)
	a.window.SetTitle(fmt.Sprintf("%s - %s", a.config.Title, name))
	a.log.Info("scene selected", zap.String("scene", name))
	return nil
}

// Scene returns the name of the current (or pending) scene.
func (a *App) Scene() string { return a.scene }

// Run runs frames until the window closes, Escape is pressed or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		select {
		case <-ctx.Done():
			a.log.Info("frame loop cancelled", zap.Error(ctx.Err()))
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if err := a.Frame(dt); err != nil {
			return err
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Frame processes input, then updates, renders and presents one frame.
func (a *App) Frame(dt float64) error {
	a.input.Reset()
	a.window.PollEvents(a.input)
	if err := a.handleEvents(); err != nil {
		return err
	}
	if !a.running {
		return nil
	}

	if err := a.scenes.Update(dt); err != nil {
		return fmt.Errorf("update %s: %w", a.scene, err)
	}
	if err := a.scenes.Render(); err != nil {
		return fmt.Errorf("render %s: %w", a.scene, err)
	}

	if a.wantScreenshot {
		a.wantScreenshot = false
		if name, err := a.shots.Capture(a.env.Render); err != nil {
			a.log.Warn("screenshot failed", zap.Error(err))
		} else {
			a.log.Info("screenshot saved", zap.String("file", name))
		}
	}

	a.window.SwapBuffers()
	return nil
}

func (a *App) handleEvents() error {
	for _, e := range a.input.Events() {
		if e.Type == input.EventWindowResize {
			a.env.Render.SetCanvasSize(a.window)
			continue
		}

		switch a.env.Controls.HandleEvent(e) {
		case input.ActionQuit:
			a.running = false
		case input.ActionScreenshot:
			a.wantScreenshot = true
		case input.ActionNextScene:
			if err := a.changeScene(demo.NextName(a.scene)); err != nil {
				return err
			}
		case input.ActionSaveSettings:
			a.saveSettings()
		}
	}
	return nil
}

// saveSettings stores the camera position as the new home, together with
// the camera mode, the current scene and the backdrop. Failures are logged.
func (a *App) saveSettings() {
	s := a.config.Settings
	if s == nil {
		a.log.Warn("save requested without settings")
		return
	}

	cam := a.env.Camera
	s.Camera.Mode = cam.Mode().String()
	s.Camera.Home = cam.Position().Array()
	s.Scene.Name = a.scene
	s.Graphics.ClearColor = a.clearColor.Hex()

	var err error
	if a.config.SettingsPath == "" {
		err = s.Save()
	} else {
		err = s.SaveTo(a.config.SettingsPath)
	}
	if err != nil {
		a.log.Warn("settings not saved", zap.Error(err))
		return
	}
	a.log.Info("settings saved",
		zap.String("scene", a.scene),
		zap.Float32s("home", s.Camera.Home[:]),
	)
}

// Running reports whether the loop would continue.
func (a *App) Running() bool { return a.running }

// Close exits the current scene and releases the render context.
func (a *App) Close() {
	a.log.Info("closing app")

	if err := a.scenes.Close(); err != nil {
		a.log.Warn("scene exit", zap.Error(err))
	}
	a.env.Render.Close()
}
