// Package watch reports debounced changes under a set of directories.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/logger"
)

// DefaultDebounce is the quiet period before a burst of events fires.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls OnChange once per burst of file events.
type Watcher struct {
	Dirs     []string
	Debounce time.Duration
	OnChange func(ctx context.Context)
	Log      *logger.Logger
}

// Run watches until ctx is done. Directories that do not exist are skipped;
// subdirectories created later are picked up.
func (w *Watcher) Run(ctx context.Context) error {
	log := w.Log
	if log == nil {
		log = logger.Nop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	for _, root := range w.Dirs {
		if _, err := os.Stat(root); err != nil {
			log.Warn("not watching", "dir", root, "err", err)
			continue
		}
		addTree(fw, root, log)
	}

	// the timer only ever fires into fire; OnChange runs on this goroutine
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if ev.Has(fsnotify.Create) && isDir(ev.Name) {
				addTree(fw, ev.Name, log)
			}
			log.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(debounce)
			pending = true
		case <-timer.C:
			pending = false
			if w.OnChange != nil {
				w.OnChange(ctx)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		}
	}
}

func addTree(fw *fsnotify.Watcher, root string, log *logger.Logger) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("walk", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				log.Warn("watch", "path", path, "err", err)
			}
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
