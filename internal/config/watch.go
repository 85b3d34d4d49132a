package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// reloadDelay сглаживает серию событий при сохранении файла редактором.
const reloadDelay = 200 * time.Millisecond

// Watcher перечитывает конфигурацию при изменении файла.
type Watcher struct {
	cfg     *Config
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// Watch начинает следить за файлом конфигурации. Следим за каталогом:
// редакторы часто заменяют файл целиком.
func (c *Config) Watch() (*Watcher, error) {
	path := c.Path()
	if path == "" {
		return nil, ErrInvalid
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		cfg:     c,
		watcher: fw,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go w.loop(filepath.Clean(path))
	return w, nil
}

func (w *Watcher) loop(path string) {
	defer close(w.doneCh)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.cfg.Reload(); err != nil {
				log.Warn("Не удалось перечитать конфигурацию", "err", err)
				continue
			}
			log.Info("Конфигурация перечитана", "path", path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("Ошибка наблюдения за конфигурацией", "err", err)
		}
	}
}

// Close останавливает наблюдение.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		err = w.watcher.Close()
	})
	return err
}
