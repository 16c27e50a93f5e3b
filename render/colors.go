package render

import "github.com/lixenwraith/wildhunt/component"

// Palette (Tokyo Night base)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbGrid       = RGB{41, 46, 66}
	RgbWall       = RGB{86, 95, 137}
	RgbPlayer     = RGB{255, 255, 255}
	RgbHUDText    = RGB{192, 202, 245}
	RgbHUDDim     = RGB{120, 124, 153}
	RgbHUDBar     = RGB{36, 40, 59}
	RgbHP         = RGB{247, 118, 142}
	RgbMana       = RGB{122, 162, 247}
	RgbStamina    = RGB{224, 175, 104}
	RgbXP         = RGB{52, 211, 153}
	RgbWarning    = RGB{255, 158, 100}

	RgbBolt      = RGB{200, 200, 200}
	RgbManaBolt  = RGB{125, 207, 255}
	RgbFireball  = RGB{255, 120, 40}
	RgbArrow     = RGB{220, 200, 150}
	RgbEnemyShot = RGB{187, 154, 247}
)

// RarityColor maps loot rarity to its display colour
func RarityColor(r component.Rarity) RGB {
	switch r {
	case component.RarityUncommon:
		return RGB{52, 211, 153}
	case component.RarityRare:
		return RGB{96, 165, 250}
	default:
		return RgbHUDText
	}
}

// ProjectileColor maps projectile kind to its display colour
func ProjectileColor(k component.ProjectileKind) RGB {
	switch k {
	case component.ProjectileManaBolt:
		return RgbManaBolt
	case component.ProjectileFireball:
		return RgbFireball
	case component.ProjectileArrow:
		return RgbArrow
	case component.ProjectileEnemyShot:
		return RgbEnemyShot
	default:
		return RgbBolt
	}
}
