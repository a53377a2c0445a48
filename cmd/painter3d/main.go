// Command painter3d renders the built-in scenes to PNG files or draws an
// interactive cube that follows the cursor.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/chazu/painter3d/pkg/config"
	"github.com/chazu/painter3d/pkg/scene"
)

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "painter3d:", err)
		os.Exit(1)
	}
}

// loadConfig reads --config if given, then applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if b := c.String("backend"); b != "" {
		cfg.Render.Backend = b
	}
	if w := c.Int("width"); w > 0 {
		cfg.Viewport.Width = w
	}
	if h := c.Int("height"); h > 0 {
		cfg.Viewport.Height = h
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withApp loads config, builds the logger and App, and runs fn.
func withApp(fn func(*cli.Context, *App) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		logger, err := cfg.Logger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		return fn(c, NewApp(cfg, logger))
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:  "painter3d",
		Usage: "painter's-algorithm renderer for simple solids",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file", EnvVars: []string{"PAINTER3D_CONFIG"}},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "backend", Usage: "fill backend: gogpu or fogleman"},
			&cli.IntFlag{Name: "width", Usage: "viewport width in pixels"},
			&cli.IntFlag{Name: "height", Usage: "viewport height in pixels"},
		},
		Commands: []*cli.Command{
			{
				Name:  "render",
				Usage: "render a built-in scene to a PNG file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "scene", Value: "cube", Usage: "scene name (see 'scenes')"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "painter3d.png", Usage: "output file"},
				},
				Action: withApp(renderCommand),
			},
			{
				Name:   "window",
				Usage:  "open a window with a cube that follows the cursor",
				Action: withApp(func(_ *cli.Context, app *App) error { return runWindow(app) }),
			},
			{
				Name:   "scenes",
				Usage:  "list the built-in scenes and validate them",
				Action: scenesCommand,
			},
		},
	}
}

func renderCommand(c *cli.Context, app *App) error {
	sc, err := buildScene(c.String("scene"))
	if err != nil {
		return err
	}
	cv, err := app.cfg.Canvas()
	if err != nil {
		return err
	}
	defer cv.Close()

	if _, err := app.Render(sc, cv); err != nil {
		return err
	}
	out := c.String("out")
	if err := cv.SavePNG(out); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}
	app.logger.Info("wrote image", zap.String("path", out), zap.String("scene", c.String("scene")))
	return nil
}

func scenesCommand(c *cli.Context) error {
	w := c.App.Writer
	for _, name := range sceneNames() {
		sc, err := buildScene(name)
		if err != nil {
			return err
		}
		findings := scene.Validate(sc)
		status := "ok"
		if err := scene.Err(findings); err != nil {
			status = err.Error()
		}
		fmt.Fprintf(w, "%-8s %3d nodes  %s\n", name, sc.NodeCount(), status)
	}
	return nil
}
