package backend

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"git.sr.ht/~whereswaldon/stepchart/render"
)

// Status is one datasource snapshot: the most recently loaded table, or
// the error that prevented loading it.
type Status struct {
	Path  string
	Table *render.Table
	Err   error
}

// Datasource loads a category table from disk and, when following,
// reloads it every time the file changes on disk. A reader-backed
// datasource loads once and cannot follow.
type Datasource struct {
	path   string
	follow bool
	reader io.Reader
}

func NewDatasource(path string, follow bool) *Datasource {
	return &Datasource{path: path, follow: follow}
}

// NewReaderDatasource wraps an already-open CSV stream, like stdin.
func NewReaderDatasource(r io.Reader) *Datasource {
	return &Datasource{reader: r}
}

func (d *Datasource) load() (*render.Table, error) {
	if d.reader != nil {
		return LoadCSV(d.reader)
	}
	if strings.EqualFold(filepath.Ext(d.path), ".xlsx") {
		return LoadXLSX(d.path)
	}
	f, err := os.Open(d.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	// Whole-line reads so a row that is mid-write parses on the next
	// reload instead of poisoning this one.
	return LoadCSV(NewLineReader(f))
}

// Status streams table snapshots until ctx is cancelled. The first
// snapshot is emitted immediately; with following enabled, another
// arrives after every write to the file.
func (d *Datasource) Status(ctx context.Context) <-chan Status {
	out := make(chan Status, 1)
	go func() {
		defer close(out)
		send := func(s Status) {
			select {
			case out <- s:
			case <-ctx.Done():
			}
		}
		emit := func() {
			t, err := d.load()
			send(Status{Path: d.path, Table: t, Err: err})
		}
		emit()
		if !d.follow {
			return
		}
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			send(Status{Path: d.path, Err: err})
			return
		}
		defer watcher.Close()
		if err := watcher.Add(d.path); err != nil {
			send(Status{Path: d.path, Err: err})
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					emit()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(Status{Path: d.path, Err: err})
			}
		}
	}()
	return out
}
