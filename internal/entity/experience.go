package entity

// MaxXPLevel is the highest experience level a player can reach.
const MaxXPLevel = 21

// xpTable holds the experience needed to advance past each level.
// Index 0 = level 1 (10 XP to reach level 2), index 1 = level 2 (20 XP), etc.
var xpTable = func() [MaxXPLevel - 1]int {
	var t [MaxXPLevel - 1]int
	for i := range t {
		t[i] = 10 << i
	}
	return t
}()

// XPLevel returns the experience level for the given experience points.
func XPLevel(xp int) int {
	level := 1
	for _, need := range xpTable {
		if xp < need {
			break
		}
		level++
	}
	return level
}
