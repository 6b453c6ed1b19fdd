package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:images all:sounds all:levels
	embedded embed.FS
)

// FS returns the embedded asset tree.
func FS() fs.FS {
	return embedded
}

// EnemySpawn places one enemy relative to the level's player start.
type EnemySpawn struct {
	Kind    string
	OffsetX float64
}

// LevelDef is a static, read-only level definition.
type LevelDef struct {
	Name         string
	Path         string
	PlayerStartX float64
	Enemies      []EnemySpawn
	Width        float64
}

// LoadLevels reads every .tmx file in dir, ordered by file name.
func LoadLevels(fsys fs.FS, dir string) ([]LevelDef, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(path.Ext(entry.Name()), ".tmx") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	levels := make([]LevelDef, 0, len(names))
	for _, name := range names {
		level, err := LoadLevel(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// LoadLevel parses one Tiled map. The map needs a "PlayerSpawn" object group
// with one object; every object in "EnemySpawn" becomes an enemy, its kind
// taken from the "enemyType" property.
func LoadLevel(fsys fs.FS, levelPath string) (LevelDef, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return LevelDef{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := LevelDef{
		Name:  strings.TrimSuffix(path.Base(levelPath), path.Ext(levelPath)),
		Path:  levelPath,
		Width: float64(levelMap.Width * levelMap.TileWidth),
	}

	var (
		foundStart bool
		enemyXs    []float64
	)
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if foundStart || len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			level.PlayerStartX = o.X
			if name := o.Properties.GetString("levelName"); name != "" {
				level.Name = name
			}
			foundStart = true
		case "EnemySpawn":
			for _, o := range og.Objects {
				enemyType := o.Properties.GetString("enemyType")
				level.Enemies = append(level.Enemies, EnemySpawn{Kind: enemyType})
				enemyXs = append(enemyXs, o.X)
			}
		}
	}

	if !foundStart {
		return LevelDef{}, fmt.Errorf("level %s: no player spawn point defined in map", levelPath)
	}
	for i := range level.Enemies {
		level.Enemies[i].OffsetX = enemyXs[i] - level.PlayerStartX
	}
	return level, nil
}
