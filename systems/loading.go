package systems

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/RilyGit/DimaGame/assets"
	"github.com/RilyGit/DimaGame/components"
	cfg "github.com/RilyGit/DimaGame/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrCriticalAssets is returned when an asset the game cannot run without
// failed to load.
var ErrCriticalAssets = errors.New("critical assets missing")

var (
	loadOnce    sync.Once
	loadDone    = make(chan struct{})
	loadResult  components.LoadResult
	loadManager atomic.Pointer[assets.Manager]
)

// StartLoading begins loading every asset and level from fsys in the
// background. Only the first call has an effect.
func StartLoading(fsys fs.FS) {
	loadOnce.Do(func() {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Session.LoadTimeout)
			defer cancel()

			m := assets.NewManager(fsys, cfg.Audio.SampleRate)
			loadManager.Store(m)
			loadResult = loadGame(ctx, fsys, m)
			if loadResult.Assets != nil {
				SetAssets(loadResult.Assets)
			}
			close(loadDone)
		}()
	})
}

// PollLoading reports the background load once it has settled.
func PollLoading() (components.LoadResult, bool) {
	select {
	case <-loadDone:
		return loadResult, true
	default:
		return components.LoadResult{}, false
	}
}

// LoadProgress reports how many assets of the background load have settled.
// ok is false before StartLoading.
func LoadProgress() (settled, total int, ok bool) {
	m := loadManager.Load()
	if m == nil {
		return 0, 0, false
	}
	settled, total = m.Progress()
	return settled, total, true
}

// LoadGame loads the asset manifest and the level table concurrently.
func LoadGame(ctx context.Context, fsys fs.FS) components.LoadResult {
	return loadGame(ctx, fsys, assets.NewManager(fsys, cfg.Audio.SampleRate))
}

func loadGame(ctx context.Context, fsys fs.FS, m *assets.Manager) components.LoadResult {
	assets.LoadManifest(m, assets.DefaultManifest)

	var (
		levels   []assets.LevelDef
		assetsOK bool
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		levels, err = assets.LoadLevels(fsys, "levels")
		return err
	})
	g.Go(func() error {
		assetsOK = m.LoadAll(ctx)
		return nil
	})
	err := g.Wait()

	result := components.LoadResult{Assets: m, Levels: levels}
	switch {
	case err != nil:
		result.Err = err
	case !assetsOK:
		result.Err = fmt.Errorf("%w: %s", ErrCriticalAssets, strings.Join(m.MissingCritical(), ", "))
	}

	settled, total := m.Progress()
	logrus.WithFields(logrus.Fields{
		"assets": fmt.Sprintf("%d/%d", settled, total),
		"levels": len(levels),
	}).Info("loading finished")
	return result
}
