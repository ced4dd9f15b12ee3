// Package main is the entry point for the GL demos.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/app"
	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/demo"
	"github.com/Faultbox/gldemos/internal/engine/audio"
	"github.com/Faultbox/gldemos/internal/engine/camera"
	"github.com/Faultbox/gldemos/internal/engine/glbackend"
	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/lighting"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/render"
	"github.com/Faultbox/gldemos/internal/engine/window"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

const title = "GL Demos"

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== GL Demos ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()

	if err != nil {
		logger.Error("fatal error", zap.Error(err))
		logger.Sync()
		dialog.Message("%v", err).Title(title).Error()
		os.Exit(1)
	}

	logger.Info("closed normally")
	logger.Sync()
}

func run(ctx context.Context, cfg *config.Config) error {
	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return err
	}
	clearColor, err := mesh.ParseHex(cfg.Graphics.ClearColor)
	if err != nil {
		return fmt.Errorf("graphics.clear_color: %w", err)
	}

	// Window first: it creates the OpenGL context.
	w, err := window.New(window.Config{
		Backend:    cfg.Graphics.Window,
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer w.Close()

	gl, err := glbackend.New()
	if err != nil {
		return err
	}
	rctx, err := render.NewContext(gl)
	if err != nil {
		return err
	}
	rctx.SetClearColor(clearColor)

	home := cfg.Camera.Home
	cam := camera.New(camera.Config{
		Mode: mode,
		Home: math.Vec3{X: home[0], Y: home[1], Z: home[2]},
		FOV:  cfg.Camera.FOV,
		Near: cfg.Camera.Near,
		Far:  cfg.Camera.Far,
	})
	steps := input.DefaultSteps()
	steps.Rotate = cfg.Camera.RotateSpeed
	steps.Dolly = cfg.Camera.DollySpeed

	env := demo.Env{
		Render:   rctx,
		Camera:   cam,
		Controls: input.NewControls(cam, steps),
		Light:    lighting.Default(),
		Scene:    cfg.Scene,
	}

	if cfg.Audio.Enabled {
		snd := audio.New(float64(cfg.Audio.Volume))
		if err := snd.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			defer snd.Close()
			env.Audio = snd
		}
	}

	a, err := app.New(w, env, app.Config{
		Title:         title,
		Scene:         cfg.Scene.Name,
		ScreenshotDir: cfg.Debug.ScreenshotDir,
		Settings:      cfg,
		SettingsPath:  config.ConfigPath(),
	})
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
