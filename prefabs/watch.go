package prefabs

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports prefab names whose on-disk override changed. A name is sent
// once its burst of writes has been quiet for the debounce window.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once

	// mtimes is only touched by Poll.
	mtimes map[string]time.Time
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
		mtimes:  make(map[string]time.Time),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll drains pending changes without blocking and returns each changed
// prefab name once, in arrival order. Names whose override still has the
// modification time seen by an earlier Poll are skipped. Watch errors
// collected since the last call are joined into err.
func (w *Watcher) Poll() (names []string, err error) {
	if w == nil {
		return nil, nil
	}

	var errs []error
	for drained := false; !drained; {
		select {
		case e, ok := <-w.Errors:
			if !ok {
				drained = true
				break
			}
			errs = append(errs, e)
		default:
			drained = true
		}
	}

	for {
		select {
		case n, ok := <-w.Events:
			if !ok {
				return names, errors.Join(errs...)
			}
			if slices.Contains(names, n) || !w.modified(n) {
				continue
			}
			names = append(names, n)
		default:
			return names, errors.Join(errs...)
		}
	}
}

// modified records the override's modification time for name and reports
// whether it differs from the last recorded one. A missing override always
// counts as modified so removals fall back to the embedded copy.
func (w *Watcher) modified(name string) bool {
	mt, ok := ModTime(name)
	if !ok {
		delete(w.mtimes, name)
		return true
	}
	if last, seen := w.mtimes[name]; seen && last.Equal(mt) {
		return false
	}
	w.mtimes[name] = mt
	return true
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	var pending []string
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			name := cleanPrefabPath(event.Name)
			if !slices.Contains(pending, name) {
				pending = append(pending, name)
			}
			timer.Reset(debounce)
		case <-timer.C:
			for _, name := range pending {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			pending = pending[:0]
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
