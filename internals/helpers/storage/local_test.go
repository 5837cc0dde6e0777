package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	st, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage error: %v", err)
	}
	return st
}

func TestLocalStorage_PutGetDelete(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	key := "certificates/club-1/tok.pdf"
	if err := st.Put(ctx, key, []byte("%PDF-isi"), "application/pdf"); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := st.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != "%PDF-isi" {
		t.Fatalf("Get = %q", got)
	}

	if err := st.Delete(ctx, key); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := st.Get(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get setelah delete = %v, want ErrNotFound", err)
	}
}

func TestLocalStorage_PutOverwrites(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	key := "templates/x/background.png"
	if err := st.Put(ctx, key, []byte("versi-1"), "image/png"); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := st.Put(ctx, key, []byte("versi-2"), "image/png"); err != nil {
		t.Fatalf("Put ulang error: %v", err)
	}

	got, err := st.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != "versi-2" {
		t.Fatalf("regenerate harus menimpa objek lama, dapat %q", got)
	}
}

func TestLocalStorage_NoTempLeftovers(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	if err := st.Put(ctx, "a/b.txt", []byte("x"), "text/plain"); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	var leftovers []string
	filepath.Walk(st.Root, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && strings.HasPrefix(info.Name(), ".upload-") {
			leftovers = append(leftovers, path)
		}
		return nil
	})
	if len(leftovers) != 0 {
		t.Fatalf("file temp tertinggal setelah publish: %v", leftovers)
	}
}

func TestLocalStorage_PathTraversalGuard(t *testing.T) {
	st := newTestStorage(t)
	ctx := context.Background()

	if err := st.Put(ctx, "../../escape.txt", []byte("x"), "text/plain"); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	// objek harus mendarat di dalam root, bukan di luar
	if _, err := os.Stat(filepath.Join(st.Root, "escape.txt")); err != nil {
		t.Fatalf("objek tidak di dalam root: %v", err)
	}
	outside := filepath.Join(st.Root, "..", "..", "escape.txt")
	if _, err := os.Stat(outside); err == nil {
		t.Fatal("traversal key berhasil menulis di luar root")
	}
}

func TestLocalStorage_PublicURL(t *testing.T) {
	st := &LocalStorage{Root: "/tmp/x", PublicBase: "http://localhost:3000/static"}
	if got := st.PublicURL("/a/b.pdf"); got != "http://localhost:3000/static/a/b.pdf" {
		t.Errorf("PublicURL = %q", got)
	}

	st.PublicBase = ""
	if got := st.PublicURL("a/b.pdf"); got != "/static/a/b.pdf" {
		t.Errorf("PublicURL fallback = %q", got)
	}
}
