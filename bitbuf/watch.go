/*
DESCRIPTION
  watch.go adds WatchFile, a BitBuffer source for a capture file that's
  still being written to (e.g. by a concurrent recorder process). It wakes
  the buffer's load path on filesystem write events instead of polling.

AUTHORS
  mpeg1 contributors

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bitbuf

import (
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/ausocean/mpeg1/internal/logging"
)

// WatchedFile is a FileMode BitBuffer paired with an fsnotify watcher, for
// reading a Program Stream that's being appended to as it's consumed (a
// live capture). Close stops the watcher and closes the file.
type WatchedFile struct {
	*BitBuffer
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}
}

// WatchFile opens path and returns a FileMode BitBuffer over it, together
// with a Wait method that blocks until fsnotify reports a change to path.
// Reaching the current end of the file does not end the buffer: a Has or
// Read that comes up short can be retried after Wait and picks up whatever
// has been appended since. Close stops the watch and closes the file.
func WatchFile(path string, log logging.Logger) (*WatchedFile, error) {
	if log == nil {
		log = logging.NoLog{}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "bitbuf: could not open %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "bitbuf: could not create fsnotify watcher")
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		f.Close()
		return nil, errors.Wrapf(err, "bitbuf: could not watch %s", path)
	}

	w := &WatchedFile{
		BitBuffer: NewWithFile(f, true, log),
		watcher:   watcher,
		events:    make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	w.BitBuffer.totalSize = 0 // the file is still growing
	// Unlike loadFromFile, io.EOF here only means nothing new has been
	// written yet, so it does not mark the buffer as ended.
	w.BitBuffer.SetLoadCallback(func(b *BitBuffer) {
		buf := make([]byte, defaultLoadSize)
		n, err := b.file.Read(buf)
		if n > 0 {
			b.Write(buf[:n])
		}
		if err != nil && err != io.EOF {
			b.log.Log(logging.Warning, "bitbuf: file read error", "error", err)
			b.hasEnded = true
		}
	})
	go w.watch()
	return w, nil
}

// watch drains fsnotify events for the lifetime of the WatchedFile. It
// doesn't itself call into BitBuffer (which isn't safe for concurrent use);
// it only exists so the caller's Has/Read retry loop can block on Wait
// instead of busy-polling.
func (w *WatchedFile) watch() {
	for {
		select {
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			select {
			case w.events <- struct{}{}:
			default:
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Wait blocks until a write event has been observed on the watched file, or
// the WatchedFile is closed. Callers typically call this after Has(n)
// returns false, then retry.
func (w *WatchedFile) Wait() {
	select {
	case <-w.events:
	case <-w.done:
	}
}

// Close stops the filesystem watch and closes the underlying file.
func (w *WatchedFile) Close() error {
	close(w.done)
	w.watcher.Close()
	return w.BitBuffer.Close()
}
