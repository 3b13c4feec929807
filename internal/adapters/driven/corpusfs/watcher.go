package corpusfs

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/daisy-days/daisyd/internal/core/ports/driven"
	"github.com/daisy-days/daisyd/internal/logger"
)

// debounceWindow coalesces the burst of events editors emit on save.
const debounceWindow = 200 * time.Millisecond

// Watcher reloads the stores when corpus override files change.
type Watcher struct {
	dir      string
	source   driven.CorpusSource
	docs     driven.DocStore
	concepts driven.ConceptStore

	fsWatcher *fsnotify.Watcher
	cancel    context.CancelFunc
}

// NewWatcher creates a watcher over the corpus override directory.
// The directory must exist.
func NewWatcher(dir string, docs driven.DocStore, concepts driven.ConceptStore) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return &Watcher{
		dir:       dir,
		source:    NewFileSource(dir),
		docs:      docs,
		concepts:  concepts,
		fsWatcher: fsWatcher,
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	go w.handleEvents(ctx)
	logger.Info("watching corpus overrides in %s", w.dir)
}

// Stop cancels the watch loop and releases the OS watch.
func (w *Watcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
	}
	return w.fsWatcher.Close()
}

func (w *Watcher) handleEvents(ctx context.Context) {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isCorpusFile(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("corpus file event: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := Reload(ctx, w.source, w.docs, w.concepts); err != nil {
				// Keep serving the previous snapshot.
				logger.Warn("corpus reload failed, keeping previous snapshot: %v", err)
				continue
			}
			logger.Info("corpus reloaded from %s", w.dir)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logger.Warn("corpus watcher error: %v", err)
		}
	}
}

func (w *Watcher) isCorpusFile(path string) bool {
	base := filepath.Base(path)
	return base == componentsFile || base == conceptsFile
}
