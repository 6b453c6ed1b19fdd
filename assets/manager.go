package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Kind is the type of a named asset.
type Kind int

const (
	KindImage Kind = iota
	KindSound
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindSound:
		return "sound"
	}
	return "unknown"
}

// Status is the load outcome of a single asset.
type Status int

const (
	StatusPending Status = iota
	StatusLoaded
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	}
	return "unknown"
}

var (
	ErrNotLoaded         = errors.New("asset not loaded")
	ErrUnsupportedFormat = errors.New("unsupported asset format")
)

// Outcome records how one scheduled asset resolved.
type Outcome struct {
	Name   string
	Path   string
	Kind   Kind
	Status Status
	Err    error
}

type entry struct {
	outcome Outcome
	value   any
}

// Manager loads named images and sounds concurrently. A failed asset never
// aborts the batch; LoadAll only fails when a critical asset is missing.
type Manager struct {
	fsys       fs.FS
	sampleRate int

	group errgroup.Group

	mu       sync.RWMutex
	entries  map[string]*entry
	order    []string
	critical []string
	missing  []string

	audio *audio.Context
}

// NewManager creates a manager reading from fsys. Sounds are decoded to PCM
// at sampleRate.
func NewManager(fsys fs.FS, sampleRate int) *Manager {
	return &Manager{
		fsys:       fsys,
		sampleRate: sampleRate,
		entries:    make(map[string]*entry),
	}
}

// AttachAudio sets the context used by PlaySound.
func (m *Manager) AttachAudio(ctx *audio.Context) {
	m.mu.Lock()
	m.audio = ctx
	m.mu.Unlock()
}

// SetCritical designates assets whose absence makes LoadAll fail.
func (m *Manager) SetCritical(names ...string) {
	m.mu.Lock()
	m.critical = append(m.critical[:0], names...)
	m.mu.Unlock()
}

// Load schedules an asynchronous fetch of path under name. Scheduling the
// same name twice is ignored.
func (m *Manager) Load(name, path string, kind Kind) {
	m.mu.Lock()
	if _, ok := m.entries[name]; ok {
		m.mu.Unlock()
		logrus.WithField("asset", name).Debug("asset already scheduled")
		return
	}
	m.entries[name] = &entry{outcome: Outcome{Name: name, Path: path, Kind: kind, Status: StatusPending}}
	m.order = append(m.order, name)
	m.mu.Unlock()

	m.group.Go(func() error {
		value, err := m.fetch(path, kind)
		m.resolve(name, value, err)
		return nil
	})
}

func (m *Manager) fetch(path string, kind Kind) (any, error) {
	data, err := fs.ReadFile(m.fsys, path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindImage:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", path, err)
		}
		return img, nil
	case KindSound:
		return decodeSound(path, data, m.sampleRate)
	}
	return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedFormat, kind)
}

func (m *Manager) resolve(name string, value any, err error) {
	m.mu.Lock()
	e := m.entries[name]
	if err != nil {
		e.outcome.Status = StatusError
		e.outcome.Err = err
	} else {
		e.outcome.Status = StatusLoaded
		e.value = value
	}
	m.mu.Unlock()

	log := logrus.WithFields(logrus.Fields{"asset": name, "path": e.outcome.Path})
	if err != nil {
		log.WithError(err).Warn("asset failed to load")
		return
	}
	log.Debug("asset loaded")
}

// LoadAll waits for every scheduled fetch and reports whether all critical
// assets loaded. A cancelled ctx reports false without waiting further.
func (m *Manager) LoadAll(ctx context.Context) bool {
	done := make(chan struct{})
	go func() {
		_ = m.group.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		logrus.WithError(ctx.Err()).Error("asset loading interrupted")
		return false
	case <-done:
	}

	m.mu.Lock()
	m.missing = m.missing[:0]
	for _, name := range m.critical {
		e, ok := m.entries[name]
		if !ok || e.outcome.Status != StatusLoaded {
			m.missing = append(m.missing, name)
		}
	}
	missing := append([]string(nil), m.missing...)
	m.mu.Unlock()

	if len(missing) > 0 {
		logrus.WithField("missing", missing).Error("critical assets failed to load")
		return false
	}
	return true
}

// MissingCritical lists the critical assets that failed in the last LoadAll.
func (m *Manager) MissingCritical() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.missing...)
}

// Outcomes returns one outcome per scheduled asset, in scheduling order.
func (m *Manager) Outcomes() []Outcome {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Outcome, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.entries[name].outcome)
	}
	return out
}

// Progress returns how many scheduled assets have settled.
func (m *Manager) Progress() (settled, total int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.outcome.Status != StatusPending {
			settled++
		}
	}
	return settled, len(m.entries)
}

// Get returns the loaded asset, or false when it is unknown, pending or failed.
func (m *Manager) Get(name string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[name]
	if !ok || e.outcome.Status != StatusLoaded {
		return nil, false
	}
	return e.value, true
}

// Has reports whether name loaded successfully.
func (m *Manager) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

func (m *Manager) Image(name string) (image.Image, bool) {
	v, ok := m.Get(name)
	if !ok {
		return nil, false
	}
	img, ok := v.(image.Image)
	return img, ok
}

func (m *Manager) Sound(name string) ([]byte, bool) {
	v, ok := m.Get(name)
	if !ok {
		return nil, false
	}
	pcm, ok := v.([]byte)
	return pcm, ok
}

// PlaySound starts a one-shot playback of a loaded sound. Missing sounds, a
// missing audio context and playback errors are silently ignored.
func (m *Manager) PlaySound(name string, volume float64) {
	m.mu.RLock()
	ctx := m.audio
	m.mu.RUnlock()
	if ctx == nil || volume <= 0 {
		return
	}

	pcm, ok := m.Sound(name)
	if !ok {
		return
	}

	player, err := ctx.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		logrus.WithField("sound", name).WithError(err).Debug("sound playback failed")
		return
	}
	player.SetVolume(volume)
	player.Play()
}
