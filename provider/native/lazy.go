// Package native bridges the catalog capability contract to Lua provider scripts.
package native

import (
	"strings"
	"sync"

	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/log"
)

// Lazy defers script acquisition to the first capability call and memoizes
// the outcome for the lifetime of the process. A provider that fails to load
// permanently reports ErrUnavailable; it is never re-probed per call.
type Lazy struct {
	name string

	once    sync.Once
	adapter *Adapter
	err     error
}

// NewLazy wraps the named provider script without loading it yet.
func NewLazy(name string) *Lazy {
	return &Lazy{name: name}
}

// Name returns the provider name.
func (l *Lazy) Name() string {
	return l.name
}

// Available reports whether the script loaded, forcing the load if needed.
func (l *Lazy) Available() bool {
	_, err := l.load()
	return err == nil
}

// Capabilities lists the loaded script's bound capabilities, nil when the
// script is unavailable.
func (l *Lazy) Capabilities() []string {
	adapter, err := l.load()
	if err != nil {
		return nil
	}
	return adapter.Capabilities()
}

func (l *Lazy) load() (*Adapter, error) {
	l.once.Do(func() {
		l.adapter, l.err = Load(l.name)
		if l.err != nil {
			log.Warnf("Native provider %s unavailable: %v", l.name, l.err)
			return
		}
		log.Infof("Native provider %s loaded, capabilities: %s",
			l.name, strings.Join(l.adapter.Capabilities(), ", "))
	})

	if l.err != nil {
		return nil, catalog.ErrUnavailable
	}
	return l.adapter, nil
}

func (l *Lazy) Recent(page int) ([]catalog.Raw, error) {
	adapter, err := l.load()
	if err != nil {
		return nil, err
	}
	return adapter.Recent(page)
}

func (l *Lazy) TopAiring(page int) ([]catalog.Raw, error) {
	adapter, err := l.load()
	if err != nil {
		return nil, err
	}
	return adapter.TopAiring(page)
}

func (l *Lazy) Genres() ([]string, error) {
	adapter, err := l.load()
	if err != nil {
		return nil, err
	}
	return adapter.Genres()
}

func (l *Lazy) Search(query string) ([]catalog.Raw, error) {
	adapter, err := l.load()
	if err != nil {
		return nil, err
	}
	return adapter.Search(query)
}

func (l *Lazy) Details(id string) (catalog.Raw, error) {
	adapter, err := l.load()
	if err != nil {
		return nil, err
	}
	return adapter.Details(id)
}

func (l *Lazy) Episodes(id string) ([]catalog.Raw, error) {
	adapter, err := l.load()
	if err != nil {
		return nil, err
	}
	return adapter.Episodes(id)
}

func (l *Lazy) Source(episodeID string) (catalog.Raw, error) {
	adapter, err := l.load()
	if err != nil {
		return nil, err
	}
	return adapter.Source(episodeID)
}
