package system

import "errors"

var (
	// ErrInvalidClass is returned for an unknown class key
	ErrInvalidClass = errors.New("invalid class")
	// ErrInsufficientResource is returned when mana or free stat points are short
	ErrInsufficientResource = errors.New("insufficient resource")
	// ErrAbilityOnCooldown is returned while the ability's cooldown is running
	ErrAbilityOnCooldown = errors.New("ability on cooldown")
	// ErrNoAbility is returned for an ability index outside the bound list
	ErrNoAbility = errors.New("no ability at index")
)
