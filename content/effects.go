package content

import (
	"strings"

	"github.com/lixenwraith/wildhunt/component"
	"github.com/lixenwraith/wildhunt/parameter"
)

// effectCatalog is keyed by lowercased ability name; class-agnostic
var effectCatalog = map[string]component.Effect{
	"cleave": component.MeleeEffect{
		Radius: parameter.CleaveRadius,
		Damage: parameter.CleaveDamage,
	},
	"fortify": component.BuffEffect{
		Reduction: parameter.FortifyReduction,
		Duration:  parameter.FortifyDuration,
	},
	"backstab": component.MeleeEffect{
		Radius:         parameter.StrikeRange,
		Damage:         parameter.BackstabDamage,
		CritChance:     parameter.BackstabCritChance,
		CritMultiplier: parameter.CritMultiplier,
		FirstOnly:      true,
	},
	"shadow step": component.TeleportEffect{
		Range: parameter.ShadowStepRange,
	},
	"mana bolt": component.ProjectileEffect{
		Damage:      parameter.ManaBoltDamage,
		SpeedMin:    parameter.ManaBoltSpeedMin,
		SpeedJitter: parameter.ManaBoltSpeedJitter,
		Shot:        component.ProjectileManaBolt,
	},
	"fireball": component.ProjectileEffect{
		Damage:      parameter.FireballDamage,
		SpeedMin:    parameter.FireballSpeedMin,
		SpeedJitter: parameter.FireballSpeedJitter,
		AOE:         parameter.FireballAOE,
		Shot:        component.ProjectileFireball,
	},
	"arrow shot": component.ProjectileEffect{
		Damage:      parameter.ArrowDamage,
		SpeedMin:    parameter.ArrowSpeedMin,
		SpeedJitter: parameter.ArrowSpeedJitter,
		Accuracy:    parameter.ArrowAccuracy,
		Shot:        component.ProjectileArrow,
	},
	"dash": component.TeleportEffect{
		Range:       parameter.DashRange,
		StaminaCost: parameter.DashStaminaCost,
	},
	"holy strike": component.HealStrikeEffect{
		Range:   parameter.StrikeRange,
		Damage:  parameter.HolyStrikeDamage,
		Healing: parameter.HolyStrikeHealing,
	},
	"light shield": component.BuffEffect{
		Reduction: parameter.LightShieldReduction,
		Duration:  parameter.LightShieldDuration,
	},
}

// GenericEffect is the fallback for names missing from the catalog
var GenericEffect = component.ProjectileEffect{
	Damage:      1,
	SpeedMin:    parameter.GenericSpeedMin,
	SpeedJitter: parameter.GenericSpeedJitter,
	Shot:        component.ProjectileBolt,
}

// ResolveEffect returns the catalog effect for an ability name
// Unknown names yield GenericEffect with known=false
func ResolveEffect(name string) (eff component.Effect, known bool) {
	if eff, ok := effectCatalog[strings.ToLower(name)]; ok {
		return eff, true
	}
	return GenericEffect, false
}

// EffectFor returns def.Effect when set, otherwise the catalog entry for def.Name
func EffectFor(def component.AbilityDef) component.Effect {
	if def.Effect != nil {
		return def.Effect
	}
	eff, _ := ResolveEffect(def.Name)
	return eff
}
