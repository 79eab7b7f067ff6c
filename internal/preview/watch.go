package preview

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/readme-preview/internal/logfields"
)

// DebounceInterval groups bursts of editor writes into a single rebuild.
const DebounceInterval = 300 * time.Millisecond

// Watcher reports changes to a single file. It watches the file's directory
// so that editors which save by replacing the file are still seen.
type Watcher struct {
	fs       *fsnotify.Watcher
	file     string
	debounce time.Duration
}

// NewWatcher starts watching file. Events are only delivered once Run is called.
func NewWatcher(file string) (*Watcher, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", file, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{fs: fsw, file: abs, debounce: DebounceInterval}, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run calls rebuild after each debounced burst of changes to the file until
// ctx is canceled. Rebuilds never overlap.
func (w *Watcher) Run(ctx context.Context, rebuild func()) error {
	trigger, fire, stop := newDebouncer(w.debounce)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fire:
			rebuild()
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			trigger()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	return filepath.Clean(ev.Name) == w.file
}

// Watch is NewWatcher followed by Run; the watcher is closed on return.
func Watch(ctx context.Context, file string, rebuild func()) error {
	w, err := NewWatcher(file)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	return w.Run(ctx, rebuild)
}

// newDebouncer returns a trigger, a channel that fires once per quiet
// period after the last trigger, and a stop function.
func newDebouncer(d time.Duration) (func(), <-chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, func() {
			select {
			case fire <- struct{}{}:
			default:
			}
		})
	}

	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}

	return trigger, fire, stop
}
