package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/doom/internal/world"
)

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	dragon, _ := world.MonsterTile('D')
	fg, _, _ := p.Tile(dragon).Decompose()
	if fg != tcell.NewHexColor(0x228B22) {
		t.Errorf("Dragon color = %v, want #228B22", fg)
	}

	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		t.Fatalf("Failed to load palette.json: %v", err)
	}
	if len(file.Monsters) != 26 {
		t.Errorf("Expected 26 monster colors, got %d", len(file.Monsters))
	}
}

func TestPaletteCoversEveryTile(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	for _, tile := range world.AllTiles() {
		fg, _, _ := p.Tile(tile).Decompose()
		if fg == tcell.ColorDefault {
			t.Errorf("%v has no color", tile)
		}
	}
}

func TestPaletteTileOverridesCategory(t *testing.T) {
	p, err := NewPalette(PaletteFile{
		Categories: map[string]string{"feature": "#0000FF"},
		Tiles:      map[string]string{"Stairs": "#00FF00"},
	})
	if err != nil {
		t.Fatalf("NewPalette() error: %v", err)
	}

	stairs, _, _ := p.Tile(world.Stairs).Decompose()
	door, _, _ := p.Tile(world.Door).Decompose()
	if stairs != tcell.NewHexColor(0x00FF00) {
		t.Errorf("Stairs color = %v, want green", stairs)
	}
	if door != tcell.NewHexColor(0x0000FF) {
		t.Errorf("Door color = %v, want the feature color", door)
	}
}

func TestNewPaletteErrors(t *testing.T) {
	tests := []struct {
		name string
		file PaletteFile
	}{
		{"unknown tile", PaletteFile{Tiles: map[string]string{"Lava": "#FF0000"}}},
		{"bad category color", PaletteFile{Categories: map[string]string{"wall": "#FFF"}}},
		{"bad player color", PaletteFile{Player: StyleDef{Color: "not-a-color"}}},
		{"lowercase monster", PaletteFile{Monsters: []MonsterDef{{Letter: "a", Color: "#FF0000"}}}},
	}

	for _, tt := range tests {
		if _, err := NewPalette(tt.file); err == nil {
			t.Errorf("%s: NewPalette() should fail", tt.name)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GGGGGG", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, err := ParseColor(""); err != nil || c != tcell.ColorDefault {
		t.Errorf("ParseColor(\"\") = %v, %v, want default", c, err)
	}
	if c, err := ParseColor("Yellow"); err != nil || c != tcell.ColorYellow {
		t.Errorf("ParseColor(\"Yellow\") = %v, %v, want yellow", c, err)
	}
	if c, err := ParseColor("#FF0000"); err != nil || c != tcell.NewHexColor(0xFF0000) {
		t.Errorf("ParseColor(\"#FF0000\") = %v, %v, want red", c, err)
	}
}

func TestMonsterDefLetterRune(t *testing.T) {
	def := MonsterDef{Letter: "T", Color: "#708090"}
	if def.LetterRune() != 'T' {
		t.Errorf("Expected letter 'T', got %c", def.LetterRune())
	}
	if (&MonsterDef{}).LetterRune() != '?' {
		t.Error("Empty letter should be '?'")
	}
}
