package entity

import "github.com/samdwyer/doom/internal/world"

// Item is something the player can carry, wear or wield.
type Item struct {
	Kind        world.Tile // Object tile the item is shown as
	Name        string
	ArmorClass  int // Armor only
	Consumption int // Rings only: extra food used per turn
}

// NewAmulet returns the Amulet of Yendor.
func NewAmulet() *Item {
	return &Item{Kind: world.Amulet, Name: "The Amulet of Yendor"}
}

// NewArmor returns a suit of armor with the given armor class.
func NewArmor(name string, ac int) *Item {
	return &Item{Kind: world.Armor, Name: name, ArmorClass: ac}
}

// NewRing returns a ring that costs consumption extra food per turn.
func NewRing(name string, consumption int) *Item {
	return &Item{Kind: world.Ring, Name: name, Consumption: consumption}
}

// NewFood returns a food ration.
func NewFood() *Item {
	return &Item{Kind: world.Food, Name: "Some food"}
}

// IsAmulet returns true for the Amulet of Yendor.
func (i *Item) IsAmulet() bool {
	return i != nil && i.Kind == world.Amulet
}

// String returns the item name.
func (i *Item) String() string {
	if i == nil {
		return "nothing"
	}
	return i.Name
}
