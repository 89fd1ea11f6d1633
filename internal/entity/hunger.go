package entity

import (
	"errors"

	"github.com/samdwyer/doom/internal/display"
)

const (
	// Stomach is how much food the player can hold.
	Stomach = 2000
	// HungerTime is the food left for hunger effects.
	HungerTime = 150

	Hungry = 2 * HungerTime
	Weak   = HungerTime
	Faint  = 1
	// Starve is the food deficit below which the player dies. The classic
	// value is -850; one less is kept on purpose.
	Starve = -851

	// StartFood is spread by 10% when a player is created.
	StartFood = 1300
)

// ErrStarved is returned by Digest when the player starves to death.
var ErrStarved = errors.New("starvation")

// hungerStages is ordered by descending threshold. Below Faint the player
// is dying and the stage stays Faint until digestion ends the game.
var hungerStages = []struct {
	threshold int
	name      string
}{
	{Hungry, "Hungry"},
	{Weak, "Weak"},
	{Faint, "Faint"},
}

var (
	msgHungry = display.Msg("You are starting to get hungry")
	msgWeak   = display.Msg("You are starting to feel weak")
	msgFaint  = display.Msg("You feel too weak from lack of food. You faint")
)

// HungerStage returns the name of the lowest threshold the food is below,
// or "" when the player is fine.
func (p *Player) HungerStage() string {
	stage := ""
	for _, s := range hungerStages {
		if p.Food < s.threshold {
			stage = s.name
		}
	}
	return stage
}

// Metabolism returns the food used this turn. Rings only cost extra while
// the player is above the faint threshold; narrow displays double the cost.
func (p *Player) Metabolism() int {
	cost := 1
	if p.Food > Faint {
		for _, ring := range p.Rings {
			if ring != nil {
				cost += ring.Consumption
			}
		}
	}
	if p.level != nil && p.level.Narrow() {
		cost *= 2
	}
	return cost
}

// Digest burns one turn of food. It returns ErrStarved when the player dies.
func (p *Player) Digest() error {
	old := p.Food
	p.Food -= p.Metabolism()

	switch {
	case p.Food < Starve:
		return ErrStarved

	case p.Food < Faint:
		if p.SkipTurns > 0 || p.rng.Chance(20) {
			p.SkipTurns += p.rng.Between(4, 11)
			p.message(msgFaint)
		}

	case old >= Weak && p.Food < Weak:
		p.message(msgWeak)

	case old >= Hungry && p.Food < Hungry:
		p.message(msgHungry)
	}

	return nil
}
