package main

import (
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/config"
	"github.com/lixenwraith/wildhunt/content"
	"github.com/lixenwraith/wildhunt/engine"
	"github.com/lixenwraith/wildhunt/render"
	"github.com/lixenwraith/wildhunt/system"
)

const messageLimit = 4

// app binds the terminal to the game; every method runs on the main loop goroutine
type app struct {
	cfg    config.Config
	screen tcell.Screen
	game   *engine.Game
	clock  *engine.Clock

	orchestrator *render.Orchestrator
	metrics      *render.MetricsLayer
	format       *render.Formatter
	messages     *render.MessageLog

	moves          moveState
	mouseX, mouseY int
	width, height  int
}

func newApp(cfg config.Config, screen tcell.Screen, game *engine.Game) *app {
	a := &app{
		cfg:          cfg,
		screen:       screen,
		game:         game,
		clock:        engine.NewClock(engine.SystemTime{}),
		orchestrator: render.NewOrchestrator(screen),
		format:       render.NewFormatter(language.English),
		messages:     render.NewMessageLog(messageLimit),
	}
	a.metrics = render.NewPipeline(a.orchestrator, a.format)
	a.resize(screen.Size())
	return a
}

// resize recomputes the world viewport from the terminal size
func (a *app) resize(w, h int) {
	a.width, a.height = w, h
	a.mouseX, a.mouseY = w/2, (h-render.HUDRows)/2
	a.orchestrator.Resize(w, h)
	a.game.SetViewport(float64(w)*a.cfg.CellWidth, float64(h-render.HUDRows)*a.cfg.CellHeight)
}

// run polls terminal events on a separate goroutine and ticks on the main one
func (a *app) run() {
	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(a.screen, "EVENT POLLER", r)
			}
		}()
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(a.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case ev := <-events:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.step()
		}
	}
}

// handle applies one terminal event; false requests exit
func (a *app) handle(ev tcell.Event) bool {
	if rs, ok := ev.(*tcell.EventResize); ok {
		a.resize(rs.Size())
		return true
	}

	act := translate(ev)
	switch act.kind {
	case actQuit:
		return false
	case actMove:
		a.moves.press(act)
	case actAim:
		a.mouseX, a.mouseY = act.x, act.y
	case actCast:
		if act.mouse {
			a.mouseX, a.mouseY = act.x, act.y
		}
		a.cast(act.index)
	case actNumber:
		a.number(act.index)
	case actTakeLoot:
		a.takeLoot()
	case actSpawn:
		a.game.SpawnEnemy()
	case actToggleSpawn:
		a.game.SetAutoSpawn(!a.game.Snapshot().AutoSpawn)
	case actPause:
		a.clock.Toggle()
	case actMetrics:
		a.metrics.Visible = !a.metrics.Visible
	}
	return true
}

// cast aims at the centre of the last known mouse cell
func (a *app) cast(index int) {
	if a.clock.Paused() {
		return
	}
	x, y := render.Context{CellW: a.cfg.CellWidth, CellH: a.cfg.CellHeight}.CellCenter(a.mouseX, a.mouseY)
	err := a.game.CastAbility(index, x, y)
	switch {
	case err == nil:
	case errors.Is(err, system.ErrInsufficientResource):
		a.messages.Add("Not enough mana")
	case errors.Is(err, system.ErrAbilityOnCooldown), errors.Is(err, system.ErrNoAbility):
	default:
		log.Printf("Cast %d failed: %v", index, err)
	}
}

// number selects a class while none is bound, otherwise spends a stat point
func (a *app) number(n int) {
	snap := a.game.Snapshot()
	if !snap.Player.HasClass() {
		keys := content.ClassKeys()
		if n >= 1 && n <= len(keys) {
			if err := a.game.SelectClass(keys[n-1]); err != nil {
				log.Printf("Select class: %v", err)
			}
		}
		return
	}
	kind := component.StatKind(n - 1)
	if kind >= component.StatCount {
		return
	}
	if err := a.game.AllocateStat(kind); errors.Is(err, system.ErrInsufficientResource) {
		a.messages.Add("No free stat points")
	}
}

func (a *app) takeLoot() {
	items := a.game.TakeLoot()
	if len(items) == 0 {
		a.messages.Add("Inventory empty")
		return
	}
	total := 0
	for _, it := range items {
		total += it.Value * it.Quantity
	}
	a.messages.Add("Took " + a.format.Int(int64(len(items))) + " items worth " + a.format.Int(int64(total)) + "g")
}

// step advances the game by the measured delta and draws a frame
func (a *app) step() {
	dt := a.clock.Step()
	if !a.clock.Paused() {
		a.game.Tick(a.moves.next(), dt)
	}
	for _, ev := range a.game.Events() {
		if msg, ok := render.DescribeEvent(ev, a.format); ok {
			a.messages.Add(msg)
		}
	}

	ctx := render.Context{
		Snap:     a.game.Snapshot(),
		CellW:    a.cfg.CellWidth,
		CellH:    a.cfg.CellHeight,
		Width:    a.width,
		Height:   a.height,
		Paused:   a.clock.Paused(),
		Messages: a.messages.Lines(),
	}
	if a.metrics.Visible {
		ctx.Metrics = a.game.Registry().Lines(a.format.Int, a.format.Float)
	}
	a.orchestrator.RenderFrame(ctx)
}
