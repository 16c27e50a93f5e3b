package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/content"
	"github.com/lixenwraith/wildhunt/parameter"
	"github.com/lixenwraith/wildhunt/system"
)

// gridSpacing is the world distance between background dots
const gridSpacing = 100.0

// GridLayer draws background dots and the world walls
type GridLayer struct{}

func (GridLayer) Render(ctx Context, buf *RenderBuffer) {
	snap := ctx.Snap
	for y := 0; y < ctx.PlayHeight(); y++ {
		for x := 0; x < ctx.Width; x++ {
			wx0 := snap.CameraX + float64(x)*ctx.CellW
			wy0 := snap.CameraY + float64(y)*ctx.CellH
			wx1, wy1 := wx0+ctx.CellW, wy0+ctx.CellH

			if wx0 < 0 || wy0 < 0 || wx1 > snap.WorldW+ctx.CellW || wy1 > snap.WorldH+ctx.CellH {
				continue
			}
			if crosses(wx0, wx1, 0) || crosses(wx0, wx1, snap.WorldW) ||
				crosses(wy0, wy1, 0) || crosses(wy0, wy1, snap.WorldH) {
				buf.SetWithBg(x, y, '#', RgbWall, RgbBackground)
				continue
			}
			if crosses(wx0, wx1, math.Ceil(wx0/gridSpacing)*gridSpacing) &&
				crosses(wy0, wy1, math.Ceil(wy0/gridSpacing)*gridSpacing) {
				buf.SetFgOnly(x, y, '·', RgbGrid)
			}
		}
	}
}

// crosses reports whether v lies in [lo, hi)
func crosses(lo, hi, v float64) bool {
	return v >= lo && v < hi
}

// ParticleLayer draws particles faded by their alpha
type ParticleLayer struct{}

func (ParticleLayer) Render(ctx Context, buf *RenderBuffer) {
	for _, p := range ctx.Snap.Particles {
		x, y, ok := ctx.ToCell(p.X, p.Y)
		if !ok {
			continue
		}
		glyph := '·'
		if p.Size >= parameter.ParticleCritSize {
			glyph = '*'
		}
		buf.BlendFg(x, y, glyph, MustHex(p.Color, RgbHUDText), p.Alpha)
	}
}

var enemyGlyphs = map[string]rune{
	"hydra":  'H',
	"shadow": 'S',
	"wolf":   'W',
	"hive":   'I',
}

// EnemyLayer draws enemies dimmed by missing health
type EnemyLayer struct{}

func (EnemyLayer) Render(ctx Context, buf *RenderBuffer) {
	for _, e := range ctx.Snap.Enemies {
		x, y, ok := ctx.ToCell(e.X, e.Y)
		if !ok {
			continue
		}
		glyph, known := enemyGlyphs[e.TypeID]
		if !known {
			glyph = '?'
		}
		fg := Blend(RgbBackground, MustHex(e.Color, RgbWarning), 0.5+0.5*e.HealthRatio())
		if e.State == component.EnemyAttack {
			buf.SetBold(x, y, glyph, fg)
		} else {
			buf.SetFgOnly(x, y, glyph, fg)
		}
	}
}

// ProjectileLayer draws projectiles by kind
type ProjectileLayer struct{}

func (ProjectileLayer) Render(ctx Context, buf *RenderBuffer) {
	for _, p := range ctx.Snap.Projectiles {
		x, y, ok := ctx.ToCell(p.X, p.Y)
		if !ok {
			continue
		}
		buf.SetFgOnly(x, y, projectileGlyph(p), ProjectileColor(p.Kind))
	}
}

func projectileGlyph(p component.Projectile) rune {
	switch p.Kind {
	case component.ProjectileFireball:
		return 'o'
	case component.ProjectileArrow:
		if math.Abs(p.VX) >= math.Abs(p.VY) {
			return '-'
		}
		return '|'
	case component.ProjectileEnemyShot:
		return '+'
	default:
		return '•'
	}
}

// PlayerLayer draws the avatar in its class colour
type PlayerLayer struct{}

func (PlayerLayer) Render(ctx Context, buf *RenderBuffer) {
	p := ctx.Snap.Player
	x, y, ok := ctx.ToCell(p.X, p.Y)
	if !ok {
		return
	}
	fg := RgbPlayer
	if def, found := content.Class(p.ClassKey); found {
		fg = MustHex(def.Color, RgbPlayer)
	}
	buf.SetBold(x, y, '@', fg)
}

// HUDLayer draws pools, progression, abilities and recent messages below the play area
type HUDLayer struct {
	Format *Formatter
}

func (h HUDLayer) Render(ctx Context, buf *RenderBuffer) {
	top := ctx.PlayHeight()
	for row := 0; row < HUDRows; row++ {
		buf.Fill(0, top+row, ctx.Width, RgbHUDBar)
	}

	p := ctx.Snap.Player
	f := h.Format

	x := buf.Text(0, top, " HP "+f.Ratio(p.HP, p.MaxHP), RgbHP, RgbHUDBar)
	x = buf.Text(x, top, "  MP "+f.Ratio(p.Mana, p.MaxMana), RgbMana, RgbHUDBar)
	x = buf.Text(x, top, "  ST "+f.Ratio(p.Stamina, p.MaxStamina), RgbStamina, RgbHUDBar)
	x = buf.Text(x, top, "  Lv "+f.Int(int64(p.Level)), RgbXP, RgbHUDBar)
	x = buf.Text(x, top, "  XP "+f.Int(int64(p.XP))+"/"+f.Int(int64(p.XPToNext)), RgbXP, RgbHUDBar)
	className := p.ClassName
	if className == "" {
		className = "None"
	}
	buf.Text(x, top, "  "+className, RgbHUDText, RgbHUDBar)

	x = buf.Text(0, top+1, " "+statLine(p.Stats), RgbHUDText, RgbHUDBar)
	if p.FreeStatPoints > 0 {
		x = buf.Text(x, top+1, "  +"+f.Int(int64(p.FreeStatPoints))+" pts", RgbWarning, RgbHUDBar)
	}
	for i, a := range p.Abilities {
		label := "  [" + abilityKey(i) + "] " + a.Name
		if cd := p.Cooldowns[system.CooldownKey(a.Name)]; cd > 0 {
			label += " " + f.Float(cd) + "s"
		}
		x = buf.Text(x, top+1, label, RgbHUDDim, RgbHUDBar)
	}
	buf.Text(x, top+1, "  Inv "+f.Int(int64(len(p.Inventory)))+" ("+f.Int(int64(inventoryValue(p.Inventory)))+"g)", RgbHUDText, RgbHUDBar)

	x = 1
	if ctx.Paused {
		x = buf.Text(x, top+2, "PAUSED  ", RgbWarning, RgbHUDBar)
	}
	if !ctx.Snap.AutoSpawn {
		x = buf.Text(x, top+2, "spawn off  ", RgbHUDDim, RgbHUDBar)
	}
	buf.Text(x, top+2, strings.Join(ctx.Messages, " | "), RgbHUDText, RgbHUDBar)
}

func statLine(s component.Stats) string {
	var b strings.Builder
	for k := component.StatKind(0); k < component.StatCount; k++ {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.ToUpper(k.String()))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(s.Get(k)))
	}
	return b.String()
}

func abilityKey(i int) string {
	if i == 0 {
		return "click"
	}
	return "e"
}

func inventoryValue(items []component.LootItem) int {
	total := 0
	for _, it := range items {
		total += it.Value * it.Quantity
	}
	return total
}

// ClassMenuLayer lists selectable classes until one is bound
type ClassMenuLayer struct{}

func (ClassMenuLayer) Render(ctx Context, buf *RenderBuffer) {
	if ctx.Snap.Player.HasClass() {
		return
	}
	keys := content.ClassKeys()
	lines := make([]string, 0, len(keys)+2)
	lines = append(lines, "Choose a class")
	for i, key := range keys {
		def, _ := content.Class(key)
		lines = append(lines, strconv.Itoa(i+1)+"  "+def.Name+"  "+def.Description)
	}

	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	width += 4
	x0 := (ctx.Width - width) / 2
	y0 := (ctx.PlayHeight() - len(lines) - 2) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}

	for row := 0; row < len(lines)+2; row++ {
		buf.Fill(x0, y0+row, width, RgbHUDBar)
	}
	for i, l := range lines {
		fg := RgbHUDText
		if i > 0 {
			def, _ := content.Class(keys[i-1])
			fg = MustHex(def.Color, RgbHUDText)
		}
		buf.Text(x0+2, y0+1+i, l, fg, RgbHUDBar)
	}
}

// MetricsLayer lists registry metrics in the top-right corner when visible
type MetricsLayer struct {
	Visible bool
}

func (m *MetricsLayer) IsVisible() bool {
	return m.Visible
}

func (m *MetricsLayer) Render(ctx Context, buf *RenderBuffer) {
	width := 0
	for _, l := range ctx.Metrics {
		if n := len(l.Key) + len(l.Value) + 3; n > width {
			width = n
		}
	}
	x0 := ctx.Width - width
	if x0 < 0 {
		x0 = 0
	}
	for i, l := range ctx.Metrics {
		if i >= ctx.PlayHeight() {
			break
		}
		buf.Fill(x0, i, width, RgbHUDBar)
		x := buf.Text(x0+1, i, l.Key, RgbHUDDim, RgbHUDBar)
		buf.Text(x+1, i, l.Value, RgbHUDText, RgbHUDBar)
	}
}

// NewPipeline registers the standard layers and returns the metrics toggle
func NewPipeline(o *Orchestrator, f *Formatter) *MetricsLayer {
	metrics := &MetricsLayer{}
	o.Register(GridLayer{}, PriorityBackground)
	o.Register(ParticleLayer{}, PriorityParticle)
	o.Register(EnemyLayer{}, PriorityEnemy)
	o.Register(ProjectileLayer{}, PriorityProjectile)
	o.Register(PlayerLayer{}, PriorityPlayer)
	o.Register(HUDLayer{Format: f}, PriorityUI)
	o.Register(ClassMenuLayer{}, PriorityOverlay)
	o.Register(metrics, PriorityOverlay)
	return metrics
}
