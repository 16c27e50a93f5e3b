package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/config"
	"github.com/lixenwraith/wildhunt/engine"
	"github.com/lixenwraith/wildhunt/event"
	"github.com/lixenwraith/wildhunt/status"
	"github.com/lixenwraith/wildhunt/vmath"
)

const (
	testW = 80
	testH = 24
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(testW, testH)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestFrame(t *testing.T, class string) (*engine.Game, Context) {
	t.Helper()
	cfg := config.Default()
	cfg.AutoSpawn = false
	g := engine.New(cfg, vmath.NewFastRand(1))
	if class != "" {
		if err := g.SelectClass(class); err != nil {
			t.Fatalf("SelectClass: %v", err)
		}
	}
	ctx := Context{CellW: cfg.CellWidth, CellH: cfg.CellHeight, Width: testW, Height: testH}
	g.SetViewport(float64(testW)*ctx.CellW, float64(ctx.PlayHeight())*ctx.CellH)
	ctx.Snap = g.Snapshot()
	return g, ctx
}

func rowText(buf *RenderBuffer, y int) string {
	w, _ := buf.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#ff6b6b", RGB{255, 107, 107}, true},
		{"34d399", RGB{52, 211, 153}, true},
		{"#fff", RGB{}, false},
		{"#zzzzzz", RGB{}, false},
		{"", RGB{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseHex(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseHex(%q): expected %v/%v, got %v/%v", tt.in, tt.want, tt.ok, got, ok)
		}
	}
}

func TestBlend(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	if got := Blend(a, b, 0); got != a {
		t.Errorf("Expected dst at alpha 0, got %v", got)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("Expected src at alpha 1, got %v", got)
	}
	if got := Blend(a, b, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected midpoint, got %v", got)
	}
}

func TestCellStyleCarriesColours(t *testing.T) {
	c := Cell{Rune: '@', Fg: RGB{200, 100, 50}, Bg: RGB{1, 2, 3}, Bold: true}
	fg, bg, attr := c.Style().Decompose()
	if fg != tcell.NewRGBColor(200, 100, 50) {
		t.Errorf("Expected fg %v, got %v", c.Fg, fg)
	}
	if bg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("Expected bg %v, got %v", c.Bg, bg)
	}
	if attr&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}
}

func TestFormatterGroupsDigits(t *testing.T) {
	f := NewFormatter(language.English)
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := f.Int(tt.in); got != tt.want {
			t.Errorf("Int(%d): expected %q, got %q", tt.in, tt.want, got)
		}
	}
	if got := f.Ratio(49.6, 50); got != "50/50" {
		t.Errorf("Expected 50/50, got %q", got)
	}
}

func TestOrchestratorOrder(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOrchestrator(screen)

	var order []string
	o.Register(recordLayer{name: "ui", log: &order}, PriorityUI)
	o.Register(recordLayer{name: "bg", log: &order}, PriorityBackground)
	o.Register(recordLayer{name: "ui2", log: &order}, PriorityUI)
	o.Register(recordLayer{name: "player", log: &order}, PriorityPlayer)

	o.RenderFrame(Context{Width: testW, Height: testH})

	want := "bg,player,ui,ui2"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

type recordLayer struct {
	name string
	log  *[]string
}

func (r recordLayer) Render(Context, *RenderBuffer) {
	*r.log = append(*r.log, r.name)
}

func TestFrameDrawsPlayerAndHUD(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOrchestrator(screen)
	NewPipeline(o, NewFormatter(language.English))

	_, ctx := newTestFrame(t, "warrior")
	o.RenderFrame(ctx)
	buf := o.Buffer()

	px, py, ok := ctx.ToCell(ctx.Snap.Player.X, ctx.Snap.Player.Y)
	if !ok {
		t.Fatal("Expected player inside the view")
	}
	cell := buf.Get(px, py)
	if cell.Rune != '@' {
		t.Errorf("Expected '@' at (%d, %d), got %q", px, py, cell.Rune)
	}
	if cell.Fg != (RGB{255, 107, 107}) {
		t.Errorf("Expected warrior colour, got %v", cell.Fg)
	}

	hud := rowText(buf, ctx.PlayHeight())
	for _, want := range []string{"HP 50/50", "MP 30/30", "Lv 1", "Warrior"} {
		if !strings.Contains(hud, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, hud)
		}
	}
	if !strings.Contains(rowText(buf, ctx.PlayHeight()+1), "Cleave") {
		t.Error("Expected ability row to list Cleave")
	}
}

func TestClassMenuShownUntilBound(t *testing.T) {
	screen := newTestScreen(t)
	o := NewOrchestrator(screen)
	NewPipeline(o, NewFormatter(language.English))

	g, ctx := newTestFrame(t, "")
	o.RenderFrame(ctx)
	if !bufferContains(o.Buffer(), "Choose a class") {
		t.Error("Expected class menu before selection")
	}

	if err := g.SelectClass("mage"); err != nil {
		t.Fatal(err)
	}
	ctx.Snap = g.Snapshot()
	o.RenderFrame(ctx)
	if bufferContains(o.Buffer(), "Choose a class") {
		t.Error("Expected class menu hidden after selection")
	}
}

func bufferContains(buf *RenderBuffer, s string) bool {
	_, h := buf.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(buf, y), s) {
			return true
		}
	}
	return false
}

func TestEnemyAndProjectileGlyphs(t *testing.T) {
	_, ctx := newTestFrame(t, "ranger")
	p := ctx.Snap.Player
	ctx.Snap.Enemies = []component.Enemy{{TypeID: "wolf", Color: "#6b7cff", HP: 10, BaseHP: 20}}
	ctx.Snap.Enemies[0].X, ctx.Snap.Enemies[0].Y = p.X+50, p.Y
	ctx.Snap.Projectiles = []component.Projectile{{Kind: component.ProjectileFireball}}
	ctx.Snap.Projectiles[0].X, ctx.Snap.Projectiles[0].Y = p.X-50, p.Y

	buf := NewRenderBuffer(testW, testH)
	EnemyLayer{}.Render(ctx, buf)
	ProjectileLayer{}.Render(ctx, buf)

	ex, ey, _ := ctx.ToCell(p.X+50, p.Y)
	if r := buf.Get(ex, ey).Rune; r != 'W' {
		t.Errorf("Expected wolf glyph, got %q", r)
	}
	fx, fy, _ := ctx.ToCell(p.X-50, p.Y)
	if c := buf.Get(fx, fy); c.Rune != 'o' || c.Fg != RgbFireball {
		t.Errorf("Expected fireball glyph, got %q %v", c.Rune, c.Fg)
	}
}

func TestToCellOutsideView(t *testing.T) {
	ctx := Context{CellW: 10, CellH: 20, Width: 10, Height: 10}
	if _, _, ok := ctx.ToCell(-1, 0); ok {
		t.Error("Expected negative x outside view")
	}
	if _, _, ok := ctx.ToCell(0, float64(ctx.PlayHeight())*20); ok {
		t.Error("Expected HUD rows outside the play area")
	}
	if x, y, ok := ctx.ToCell(95, 139); !ok || x != 9 || y != 6 {
		t.Errorf("Expected (9, 6), got (%d, %d) %v", x, y, ok)
	}
}

func TestMetricsLayerToggle(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyEngineTicks).Store(12345)
	f := NewFormatter(language.English)

	screen := newTestScreen(t)
	o := NewOrchestrator(screen)
	metrics := &MetricsLayer{}
	o.Register(metrics, PriorityOverlay)

	ctx := Context{Width: testW, Height: testH, Metrics: reg.Lines(f.Int, f.Float)}
	o.RenderFrame(ctx)
	if bufferContains(o.Buffer(), "engine.ticks") {
		t.Error("Expected hidden metrics layer to draw nothing")
	}

	metrics.Visible = true
	o.RenderFrame(ctx)
	if !bufferContains(o.Buffer(), "12,345") {
		t.Error("Expected formatted tick count in metrics overlay")
	}
}

func TestMessageLog(t *testing.T) {
	l := NewMessageLog(2)
	l.Add("a")
	l.Add("b")
	l.Add("c")
	if got := strings.Join(l.Lines(), ","); got != "b,c" {
		t.Errorf("Expected b,c, got %s", got)
	}
}

func TestDescribeEvent(t *testing.T) {
	f := NewFormatter(language.English)
	msg, ok := DescribeEvent(event.GameEvent{
		Type:    event.EventLootGained,
		Payload: event.LootGainedPayload{Item: component.LootItem{Name: "Magic Ring", Rarity: component.RarityRare}},
	}, f)
	if !ok || msg != "Found Magic Ring (rare)" {
		t.Errorf("Unexpected message %q %v", msg, ok)
	}
	if _, ok := DescribeEvent(event.GameEvent{Type: event.EventGameReset}, f); ok {
		t.Error("Expected reset to have no message")
	}
}
