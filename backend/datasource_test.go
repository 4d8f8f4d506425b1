package backend

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReaderDatasource(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ds := NewReaderDatasource(strings.NewReader("quarter,cpu\nQ1,10\n"))
	statuses := ds.Status(ctx)
	s, ok := <-statuses
	if !ok {
		t.Fatal("expected one snapshot")
	}
	if s.Err != nil {
		t.Fatalf("loading: %v", s.Err)
	}
	if s.Table.RowCount() != 1 || s.Table.ColumnCount() != 1 {
		t.Errorf("got %d series x %d categories, want 1x1", s.Table.RowCount(), s.Table.ColumnCount())
	}
	if _, ok := <-statuses; ok {
		t.Error("reader sources cannot follow and should close after one snapshot")
	}
}

func TestFileDatasource(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	path := filepath.Join(t.TempDir(), "table.csv")
	if err := os.WriteFile(path, []byte("quarter,cpu,gpu\nQ1,10,1\nQ2,20,2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ds := NewDatasource(path, false)
	s, ok := <-ds.Status(ctx)
	if !ok {
		t.Fatal("expected one snapshot")
	}
	if s.Err != nil {
		t.Fatalf("loading: %v", s.Err)
	}
	if s.Path != path {
		t.Errorf("snapshot path %q, want %q", s.Path, path)
	}
	if s.Table.RowCount() != 2 {
		t.Errorf("got %d series, want 2", s.Table.RowCount())
	}
}
