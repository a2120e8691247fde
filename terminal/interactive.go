// Package terminal connects the viewer to a real terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"ptable/render"
	"ptable/viewer"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultQuitKeys are the runes that request exit.
const DefaultQuitKeys = "qQ"

// Classify maps a terminal key event to a viewer key. Arrow keys and hjkl
// navigate; Escape, Ctrl+C and any rune in quitKeys quit.
func Classify(ev *tcell.EventKey, quitKeys string) viewer.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return viewer.KeyUp
	case tcell.KeyDown:
		return viewer.KeyDown
	case tcell.KeyLeft:
		return viewer.KeyLeft
	case tcell.KeyRight:
		return viewer.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return viewer.KeyQuit
	case tcell.KeyRune:
		// fall through to rune handling
	default:
		return viewer.KeyOther
	}

	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return viewer.KeyOther
	}

	r := ev.Rune()
	if strings.ContainsRune(quitKeys, r) {
		return viewer.KeyQuit
	}
	switch r {
	case 'k':
		return viewer.KeyUp
	case 'j':
		return viewer.KeyDown
	case 'h':
		return viewer.KeyLeft
	case 'l':
		return viewer.KeyRight
	}
	return viewer.KeyOther
}

// Loop runs the interactive viewer on an initialized screen.
type Loop struct {
	Screen   tcell.Screen
	Viewer   *viewer.Viewer
	Renderer *render.Renderer
	QuitKeys string
	Logger   *slog.Logger
}

// Run draws the viewer and processes input until the user confirms exit,
// the screen is finalized, or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	quitKeys := l.QuitKeys
	if quitKeys == "" {
		quitKeys = DefaultQuitKeys
	}

	stop := context.AfterFunc(ctx, func() {
		_ = l.Screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
	})
	defer stop()

	l.Viewer.SetSize(l.Screen.Size())
	if err := l.draw(); err != nil {
		return err
	}

	for {
		switch ev := l.Screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return nil
		case *tcell.EventInterrupt:
			logger.Info("interrupted")
			return ctx.Err()
		case *tcell.EventResize:
			w, h := ev.Size()
			logger.Debug("resize", "width", w, "height", h)
			l.Viewer.SetSize(w, h)
			l.Screen.Sync()
		case *tcell.EventKey:
			if l.Viewer.HandleKey(Classify(ev, quitKeys)) {
				logger.Info("exit confirmed")
				return nil
			}
		default:
			continue
		}

		if err := l.draw(); err != nil {
			return err
		}
	}
}

func (l *Loop) draw() error {
	c, err := l.Renderer.Render(l.Viewer.GetState())
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	l.Screen.Clear()
	c.Blit(l.Screen, 0, 0)
	l.Screen.Show()
	return nil
}

// Open creates and initializes the terminal screen. The caller must call
// Fini on the returned screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}
