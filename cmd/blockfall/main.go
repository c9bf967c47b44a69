// Command blockfall plays blockfall in a window.
//
// Arrow keys or WASD move and rotate, space hard drops, P pauses, Enter confirms,
// Esc goes back and Q quits. With --debug, F1 toggles the inspector windows. F2
// toggles the autoplayer.
package main

import (
	"context"
	"log"
	"os"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/internal/assets"
	"github.com/plus3/blockfall/internal/debugui"
	"github.com/plus3/blockfall/internal/loop"
	"github.com/plus3/blockfall/internal/play"
	"github.com/plus3/blockfall/internal/render"
	"github.com/plus3/blockfall/internal/settings"
	"github.com/plus3/blockfall/scores"
	"github.com/plus3/blockfall/tetris"
	"github.com/urfave/cli/v3"
)

const windowTitle = "Blockfall"

// Game implements ebiten.Game on top of the frame scheduler.
type Game struct {
	Session   *tetris.Session
	Scheduler *loop.Scheduler
	Renderer  *render.Renderer
	Queue     *play.ActionQueue
	Autoplay  *play.AutoplaySystem
	Debug     *debugui.System

	imguiBackend *ebitenbackend.EbitenBackend
}

func (g *Game) Update() error {
	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
	}

	if !g.Debug.Input.WantCaptureKeyboard {
		pollKeys(g.Queue)
	}
	if g.imguiBackend != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.Debug.Visible = !g.Debug.Visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.Autoplay.Enabled = !g.Autoplay.Enabled
	}

	g.Scheduler.Once(time.Second / time.Duration(ebiten.TPS()))

	if g.imguiBackend != nil {
		g.imguiBackend.EndFrame()
	}

	if g.Session.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen)

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.Renderer.Layout.Screen()
}

func main() {
	cmd := &cli.Command{
		Name:   "blockfall",
		Usage:  "play blockfall in a window",
		Flags:  settings.Flags(),
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := settings.FromCommand(cmd)
	if err != nil {
		return err
	}
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	logger := log.Default()

	registry, err := assets.LoadDir(cfg.TextureDir, cfg.CellSize, logger)
	if err != nil {
		return err
	}

	session := tetris.NewSession(cfg.SessionConfig(registry.Count()),
		tetris.WithRandomizer(cfg.Randomizer()),
		tetris.WithStore(scores.NewFileStore(cfg.ScoresPath)),
		tetris.WithLogger(logger),
	)
	renderer := render.New(session, registry, cfg.CellSize)

	queue := &play.ActionQueue{}
	autoplay := &play.AutoplaySystem{Session: session, Queue: queue, Enabled: cfg.Demo}
	cues := &play.CueSystem{Session: session, OnEvent: func(e tetris.Event) {
		switch e.Kind {
		case tetris.EventLevelUp:
			logger.Printf("level %d at score %d", e.Level, e.Score)
		case tetris.EventPhaseChanged:
			if cfg.Debug {
				logger.Printf("phase %s", e.Phase)
			}
		}
	}}
	debug := &debugui.System{Visible: cfg.Debug}

	scheduler := loop.NewScheduler()
	perf := debugui.NewPerformanceStats(scheduler, 120)
	scheduler.Register(perf)
	scheduler.Register(autoplay)
	scheduler.Register(&play.InputSystem{Session: session, Queue: queue})
	scheduler.Register(&play.GravitySystem{Session: session})
	scheduler.Register(cues)
	scheduler.Register(debug)

	game := &Game{
		Session:   session,
		Scheduler: scheduler,
		Renderer:  renderer,
		Queue:     queue,
		Autoplay:  autoplay,
		Debug:     debug,
	}

	width, height := renderer.Layout.Screen()
	if cfg.Debug {
		game.imguiBackend = ebitenbackend.NewEbitenBackend()
		game.imguiBackend.CreateWindow(windowTitle, width+360, height+200)
		imgui.CurrentIO().SetIniFilename("")

		debug.Add(perf.Render)
		inspector := &debugui.SessionInspector{Session: session, Autoplay: autoplay, Cues: cues, Assets: registry}
		debug.Add(inspector.Render)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}

	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	logger.Printf("exiting after %d frames", scheduler.Stats().Frames)
	return nil
}
