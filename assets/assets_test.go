package assets

import (
	"testing"
	"testing/fstest"
)

func TestLoadLevelsFromEmbeddedTree(t *testing.T) {
	levels, err := LoadLevels(FS(), "levels")
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}

	first := levels[0]
	if first.PlayerStartX != 100 {
		t.Errorf("start x = %v", first.PlayerStartX)
	}
	if len(first.Enemies) != 1 {
		t.Fatalf("expected one enemy, got %d", len(first.Enemies))
	}
	if e := first.Enemies[0]; e.Kind != "skeleton" || e.OffsetX != 600 {
		t.Errorf("enemy = %+v", e)
	}
	if first.Name != "The Gate" {
		t.Errorf("name = %q", first.Name)
	}
	for i, l := range levels[1:] {
		if len(l.Enemies) <= len(levels[i].Enemies) {
			t.Errorf("level %d should have more enemies than level %d", i+2, i+1)
		}
	}
}

func TestLoadLevelRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="9" tilewidth="64" tileheight="64" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="EnemySpawn">
  <object id="1" x="300" y="386" width="64" height="94"/>
 </objectgroup>
</map>`)},
	}
	if _, err := LoadLevel(fsys, "levels/empty.tmx"); err == nil {
		t.Fatal("expected an error for a map without a player spawn")
	}
}

func TestLoadLevelNameDefaultsToFileName(t *testing.T) {
	fsys := fstest.MapFS{
		"crypt.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="9" tilewidth="64" tileheight="64" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="50" y="400" width="64" height="80"/>
 </objectgroup>
</map>`)},
	}
	level, err := LoadLevel(fsys, "crypt.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if level.Name != "crypt" || len(level.Enemies) != 0 || level.Width != 640 {
		t.Errorf("level = %+v", level)
	}
}
