package game

// DefaultName is the player name used when none is configured.
const DefaultName = "Rodney"

// Config holds game configuration options.
type Config struct {
	// Name of the player character.
	Name string

	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = DefaultName
	}
	return c
}
