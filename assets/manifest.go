package assets

// Asset names used outside the per-character sheet tables.
const (
	GroundTile = "ground_dirt"
)

// ManifestEntry maps a logical asset name to its path inside the asset tree.
type ManifestEntry struct {
	Name string
	Path string
	Kind Kind
}

// DefaultManifest lists every asset the game ships with.
var DefaultManifest = []ManifestEntry{
	{"knight_idle", "images/knight/idle.png", KindImage},
	{"knight_run", "images/knight/run.png", KindImage},
	{"knight_jump", "images/knight/jump.png", KindImage},
	{"knight_attack1", "images/knight/attack1.png", KindImage},
	{"knight_attack2", "images/knight/attack2.png", KindImage},
	{"knight_hit", "images/knight/hit.png", KindImage},
	{"knight_death", "images/knight/death.png", KindImage},

	{"skeleton_walk", "images/skeleton/walk.png", KindImage},
	{"skeleton_attack1", "images/skeleton/attack1.png", KindImage},
	{"skeleton_hit", "images/skeleton/hit.png", KindImage},
	{"skeleton_death", "images/skeleton/death.png", KindImage},

	{GroundTile, "images/ground/dirt.png", KindImage},

	{"sound_jump", "sounds/jump.wav", KindSound},
	{"sound_hit", "sounds/hit.wav", KindSound},
	{"sound_skeleton_hit", "sounds/skeleton_hit.wav", KindSound},
	{"sound_blip", "sounds/blip.wav", KindSound},
}

// CriticalAssets must load for the game to start.
var CriticalAssets = []string{"knight_idle", "skeleton_walk"}

// LoadManifest schedules every entry on m and marks CriticalAssets.
func LoadManifest(m *Manager, manifest []ManifestEntry) {
	for _, e := range manifest {
		m.Load(e.Name, e.Path, e.Kind)
	}
	m.SetCritical(CriticalAssets...)
}

// SheetSet reports which named assets are available. *Manager satisfies it.
type SheetSet interface {
	Has(name string) bool
}
