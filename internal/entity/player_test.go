package entity

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/doom/internal/display"
	"github.com/samdwyer/doom/internal/rng"
	"github.com/samdwyer/doom/internal/world"
)

// testLevel is a bare room whose tick only digests.
type testLevel struct {
	*world.Level
	player   *Player
	narrow   bool
	ticks    int
	messages []string
}

func (l *testLevel) Tick() error {
	l.ticks++
	return l.player.Digest()
}

func (l *testLevel) Narrow() bool { return l.narrow }

func (l *testLevel) Message(m display.Message, args ...any) {
	l.messages = append(l.messages, m.Text(l.narrow, args...))
}

func newTestPlayer(seed int64) (*Player, *testLevel, *display.Buffer) {
	const rows, cols = 10, 20
	r := rng.New(seed)
	buf := display.NewBuffer(rows, cols)
	wl := world.NewLevel(1, rows, cols, r, buf, log.New(io.Discard))
	wl.Dig(world.Room{Rows: rows, Cols: cols})

	p := NewPlayer("Rodney", r)
	l := &testLevel{Level: wl, player: p}
	p.Enter(l, 1, 1)
	return p, l, buf
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Rodney", rng.New(42))

	if p.Name != "Rodney" {
		t.Errorf("Name = %q, want %q", p.Name, "Rodney")
	}
	if p.HP != 12 || p.HPMax != 12 {
		t.Errorf("HP = %d(%d), want 12(12)", p.HP, p.HPMax)
	}
	if p.Str != 16 || p.StrMax != 16 {
		t.Errorf("Str = %d(%d), want 16(16)", p.Str, p.StrMax)
	}
	if p.Food != 1230 {
		t.Errorf("Food = %d, want 1230", p.Food)
	}
	if p.Armor != nil || p.Weapon != nil || p.Rings[RingLeft] != nil || p.Rings[RingRight] != nil {
		t.Error("new player should have nothing equipped")
	}
	if p.HungerStage() != "" {
		t.Errorf("HungerStage() = %q, want empty", p.HungerStage())
	}
}

func TestMoveIntoWall(t *testing.T) {
	p, l, _ := newTestPlayer(1)
	food := p.Food

	for _, d := range [][2]int{{-1, 0}, {0, -1}, {-1, -1}} {
		if err := p.Move(d[0], d[1]); err != nil {
			t.Fatalf("Move(%d, %d) error: %v", d[0], d[1], err)
		}
	}

	if row, col := p.Position(); row != 1 || col != 1 {
		t.Errorf("Position() = (%d, %d), want (1, 1)", row, col)
	}
	if p.Food != food {
		t.Errorf("Food = %d, want %d", p.Food, food)
	}
	if l.ticks != 0 {
		t.Errorf("ticks = %d, want 0", l.ticks)
	}
}

func TestMoveOntoFloor(t *testing.T) {
	p, l, buf := newTestPlayer(1)
	food := p.Food
	cost := p.Metabolism()

	if err := p.Move(1, 1); err != nil {
		t.Fatalf("Move error: %v", err)
	}

	if row, col := p.Position(); row != 2 || col != 2 {
		t.Errorf("Position() = (%d, %d), want (2, 2)", row, col)
	}
	if p.Food != food-cost {
		t.Errorf("Food = %d, want %d", p.Food, food-cost)
	}
	if l.ticks != 1 {
		t.Errorf("ticks = %d, want 1", l.ticks)
	}
	if g, _ := buf.Cell(1, 1); g != world.Floor.Glyph() {
		t.Errorf("old cell glyph = %q, want %q", g, world.Floor.Glyph())
	}
	if g, _ := buf.Cell(2, 2); g != Glyph {
		t.Errorf("new cell glyph = %q, want %q", g, Glyph)
	}
}

func TestMoveOntoMonster(t *testing.T) {
	p, l, _ := newTestPlayer(1)
	l.SetTile(2, 1, world.MonsterB)

	if err := p.Move(1, 0); err != nil {
		t.Fatalf("Move error: %v", err)
	}
	if row, col := p.Position(); row != 1 || col != 1 {
		t.Errorf("Position() = (%d, %d), want (1, 1)", row, col)
	}
	if l.ticks != 0 {
		t.Errorf("ticks = %d, want 0", l.ticks)
	}
}

func TestRest(t *testing.T) {
	p, l, _ := newTestPlayer(1)
	food := p.Food

	if err := p.Rest(); err != nil {
		t.Fatalf("Rest error: %v", err)
	}
	if l.ticks != 1 || p.Food != food-1 {
		t.Errorf("after Rest ticks = %d food = %d, want 1 and %d", l.ticks, p.Food, food-1)
	}
}

func TestHungerStage(t *testing.T) {
	tests := []struct {
		food int
		want string
	}{
		{1300, ""},
		{Hungry, ""},
		{Hungry - 1, "Hungry"},
		{Weak, "Hungry"},
		{Weak - 1, "Weak"},
		{Faint, "Weak"},
		{Faint - 1, "Faint"},
		{Starve, "Faint"},
		{Starve - 1, "Faint"},
	}

	p := NewPlayer("Rodney", rng.New(1))
	for _, tt := range tests {
		p.Food = tt.food
		if got := p.HungerStage(); got != tt.want {
			t.Errorf("HungerStage() at food %d = %q, want %q", tt.food, got, tt.want)
		}
	}
}

func TestMetabolism(t *testing.T) {
	p, l, _ := newTestPlayer(1)
	p.Food = 1000

	if got := p.Metabolism(); got != 1 {
		t.Errorf("Metabolism() bare = %d, want 1", got)
	}

	p.Rings[RingLeft] = NewRing("regeneration", 1)
	p.Rings[RingRight] = NewRing("searching", 2)
	if got := p.Metabolism(); got != 4 {
		t.Errorf("Metabolism() with rings = %d, want 4", got)
	}

	l.narrow = true
	if got := p.Metabolism(); got != 8 {
		t.Errorf("Metabolism() narrow = %d, want 8", got)
	}

	p.Food = Faint
	if got := p.Metabolism(); got != 2 {
		t.Errorf("Metabolism() fainting narrow = %d, want 2", got)
	}

	l.narrow = false
	if got := p.Metabolism(); got != 1 {
		t.Errorf("Metabolism() fainting = %d, want 1", got)
	}
}

func TestDigestWeakMessageOnce(t *testing.T) {
	p, l, _ := newTestPlayer(1)
	p.Food = Weak

	if err := p.Digest(); err != nil {
		t.Fatalf("Digest error: %v", err)
	}
	if len(l.messages) != 1 || l.messages[0] != "You are starting to feel weak" {
		t.Fatalf("messages = %q, want one weak warning", l.messages)
	}

	if err := p.Digest(); err != nil {
		t.Fatalf("Digest error: %v", err)
	}
	if len(l.messages) != 1 {
		t.Errorf("messages = %q, want no new message", l.messages)
	}
}

func TestDigestHungryMessageOnce(t *testing.T) {
	p, l, _ := newTestPlayer(1)
	p.Food = Hungry

	for i := 0; i < 3; i++ {
		if err := p.Digest(); err != nil {
			t.Fatalf("Digest error: %v", err)
		}
	}
	if len(l.messages) != 1 || l.messages[0] != "You are starting to get hungry" {
		t.Errorf("messages = %q, want one hungry warning", l.messages)
	}
}

func TestDigestStarvation(t *testing.T) {
	p, _, _ := newTestPlayer(1)

	p.Food = Starve + 1
	if err := p.Digest(); err != nil {
		t.Errorf("Digest at food %d = %v, want nil", Starve+1, err)
	}

	p.Food = Starve
	if err := p.Digest(); err != ErrStarved {
		t.Errorf("Digest at food %d = %v, want ErrStarved", Starve, err)
	}
}

func TestDigestFaintWhileFainted(t *testing.T) {
	p, l, _ := newTestPlayer(1)
	p.Food = 0
	p.SkipTurns = 1

	if err := p.Digest(); err != nil {
		t.Fatalf("Digest error: %v", err)
	}
	if p.SkipTurns < 5 || p.SkipTurns > 11 {
		t.Errorf("SkipTurns = %d, want in [5, 11]", p.SkipTurns)
	}
	if len(l.messages) != 1 || l.messages[0] != "You feel too weak from lack of food. You faint" {
		t.Errorf("messages = %q, want faint message", l.messages)
	}
}

func TestDigestFaintRoll(t *testing.T) {
	fainted := 0
	for seed := int64(1); seed <= 50; seed++ {
		p, l, _ := newTestPlayer(seed)
		p.Food = 0

		// The player was created from the same seed, so the next roll matches.
		r := rng.New(seed)
		r.Spread(StartFood)
		want := r.Chance(20)

		if err := p.Digest(); err != nil {
			t.Fatalf("seed %d: Digest error: %v", seed, err)
		}
		if got := p.SkipTurns > 0; got != want {
			t.Errorf("seed %d: fainted = %v, want %v", seed, got, want)
		}
		if want {
			fainted++
			if p.SkipTurns < 4 || p.SkipTurns > 10 {
				t.Errorf("seed %d: SkipTurns = %d, want in [4, 10]", seed, p.SkipTurns)
			}
			if len(l.messages) != 1 {
				t.Errorf("seed %d: messages = %q, want the faint message", seed, l.messages)
			}
		} else if len(l.messages) != 0 {
			t.Errorf("seed %d: messages = %q, want none", seed, l.messages)
		}
	}
	if fainted == 0 || fainted == 50 {
		t.Errorf("fainted on %d of 50 seeds, want some but not all", fainted)
	}
}

func TestHealLowLevel(t *testing.T) {
	p, _, _ := newTestPlayer(1)
	p.HP = 5

	for i := 0; i < 18; i++ {
		p.Heal()
	}
	if p.HP != 5 {
		t.Fatalf("HP after 18 quiet turns = %d, want 5", p.HP)
	}

	p.Heal()
	if p.HP != 6 {
		t.Errorf("HP after 19 quiet turns = %d, want 6", p.HP)
	}
	if p.quiet != 0 {
		t.Errorf("quiet = %d, want 0 after healing", p.quiet)
	}
}

func TestHealHighLevel(t *testing.T) {
	p, _, _ := newTestPlayer(1)
	p.XP = xpTable[6] // level 8
	p.HP = 5

	p.Heal()
	p.Heal()
	if p.HP != 5 {
		t.Fatalf("HP after 2 quiet turns = %d, want 5", p.HP)
	}
	p.Heal()
	if p.HP != 6 {
		t.Errorf("HP after 3 quiet turns = %d, want 6", p.HP)
	}
}

func TestHealClampsToMax(t *testing.T) {
	p, _, _ := newTestPlayer(1)
	p.XP = xpTable[10] // level 12

	for i := 0; i < 10; i++ {
		p.Heal()
		if p.HP > p.HPMax {
			t.Fatalf("HP = %d exceeds HPMax %d", p.HP, p.HPMax)
		}
	}
}

func TestArmorClass(t *testing.T) {
	p := NewPlayer("Rodney", rng.New(1))
	if got := p.ArmorClass(); got != BareArmorClass {
		t.Errorf("ArmorClass() bare = %d, want %d", got, BareArmorClass)
	}

	p.Armor = NewArmor("ring mail", 4)
	if got := p.ArmorClass(); got != 4 {
		t.Errorf("ArmorClass() = %d, want 4", got)
	}
}

func TestHasAmuletAndInventory(t *testing.T) {
	p := NewPlayer("Rodney", rng.New(1))

	if p.HasAmulet() {
		t.Error("HasAmulet() = true on empty pack")
	}
	if inv := p.Inventory(); len(inv) != 1 || inv[0] != "You are empty handed" {
		t.Errorf("Inventory() = %q", inv)
	}

	p.AddToPack(NewFood())
	p.AddToPack(NewAmulet())

	if !p.HasAmulet() {
		t.Error("HasAmulet() = false after picking up the amulet")
	}
	want := []string{"a) Some food", "b) The Amulet of Yendor"}
	inv := p.Inventory()
	if len(inv) != len(want) {
		t.Fatalf("Inventory() = %q, want %q", inv, want)
	}
	for i := range want {
		if inv[i] != want[i] {
			t.Errorf("Inventory()[%d] = %q, want %q", i, inv[i], want[i])
		}
	}
}

func TestExperienceLevels(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{20, 3},
		{640, 8},
		{10 << 19, MaxXPLevel},
		{1 << 30, MaxXPLevel},
	}

	for _, tt := range tests {
		if got := XPLevel(tt.xp); got != tt.want {
			t.Errorf("XPLevel(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	p := NewPlayer("Rodney", rng.New(1))
	p.Gold = 42
	p.Food = Hungry - 1

	s := p.Status(3)
	if s.Depth != 3 || s.Gold != 42 || s.HP != 12 || s.ArmorClass != 1 || s.XPLevel != 1 {
		t.Errorf("Status() = %+v", s)
	}
	if s.Hunger != "Hungry" {
		t.Errorf("Status().Hunger = %q, want %q", s.Hunger, "Hungry")
	}
}
