package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"ptable/config"
	"ptable/elements"
	"ptable/grid"
	"ptable/render"
	"ptable/terminal"
	"ptable/viewer"
)

// app wires the loader, placement, viewer and renderer together for one run.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
}

// load reads the element data and places it on the grid.
func (a *app) load() (*grid.Grid, error) {
	var (
		entries []elements.Entry
		err     error
	)
	source := a.cfg.DataFile
	if source == "" {
		source = elements.DefaultSource
		entries, err = elements.LoadDefault()
	} else {
		entries, err = elements.LoadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	a.logger.Debug("elements loaded", "source", source, "count", len(entries))

	g, err := grid.Place(entries)
	if err != nil {
		return nil, fmt.Errorf("place %s: %w", source, err)
	}
	a.logger.Info("table placed", "source", source, "elements", g.Count())
	return g, nil
}

func (a *app) renderer() (*render.Renderer, error) {
	theme, err := config.LoadTheme(a.cfg.ThemeFile)
	if err != nil {
		return nil, err
	}
	caps := render.DetectCapabilities(a.cfg.TerminalMode)
	a.logger.Debug("terminal capabilities", "name", caps.Name, "unicode", caps.Unicode, "color", caps.Color)
	return render.NewRenderer(theme.WithCapabilities(caps), a.logger), nil
}

func (a *app) check() error {
	g, err := a.load()
	if err != nil {
		return err
	}
	rows, cols := g.Size()
	_, err = fmt.Fprintf(a.out, "ok: %d elements placed on a %dx%d grid\n", g.Count(), rows, cols)
	return err
}

// print renders one frame at the minimum size and writes it as text, with
// ANSI colors when color is set.
func (a *app) print(focus int, color bool) error {
	g, err := a.load()
	if err != nil {
		return err
	}
	r, err := a.renderer()
	if err != nil {
		return err
	}

	opts := []viewer.Option{viewer.WithLogger(a.logger)}
	if focus != 0 {
		p, ok := g.Find(focus)
		if !ok {
			return fmt.Errorf("element %d is not on the table", focus)
		}
		opts = append(opts, viewer.WithFocus(p))
	}

	c, err := r.Render(viewer.New(g, opts...).GetState())
	if err != nil {
		return err
	}
	out := c.String()
	if color {
		out = c.ColoredString()
	}
	_, err = fmt.Fprintln(a.out, out)
	return err
}

func (a *app) interactive(ctx context.Context) error {
	g, err := a.load()
	if err != nil {
		return err
	}
	r, err := a.renderer()
	if err != nil {
		return err
	}

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	loop := &terminal.Loop{
		Screen:   screen,
		Viewer:   viewer.New(g, viewer.WithLogger(a.logger)),
		Renderer: r,
		QuitKeys: a.cfg.QuitKeys,
		Logger:   a.logger,
	}
	return loop.Run(ctx)
}
