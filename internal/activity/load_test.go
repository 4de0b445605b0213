package activity

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

type fakeSource struct {
	name  string
	act   Activity
	err   error
	calls *atomic.Int32
}

func (f fakeSource) Name() string { return f.name }

func (f fakeSource) Fetch(ctx context.Context) (Activity, error) {
	if f.calls != nil {
		f.calls.Add(1)
	}
	if f.err != nil {
		return Activity{}, f.err
	}
	return f.act, nil
}

func titled(title string) Activity {
	return Activity{
		Title: title,
		Groups: Groups{
			GroupA: Group{Name: "A", CorrectConcepts: []string{"a"}},
			GroupB: Group{Name: "B", CorrectConcepts: []string{"b"}},
		},
	}
}

func TestLoadAll_PreservesOrder(t *testing.T) {
	var sources []Source
	for _, title := range []string{"one", "two", "three", "four"} {
		sources = append(sources, fakeSource{name: title, act: titled(title)})
	}

	got, err := LoadAll(context.Background(), sources)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 activities, got %d", len(got))
	}
	for i, want := range []string{"one", "two", "three", "four"} {
		if got[i].Title != want {
			t.Errorf("got[%d].Title = %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestLoadAll_AllOrNothing(t *testing.T) {
	boom := errors.New("boom")
	sources := []Source{
		fakeSource{name: "ok", act: titled("ok")},
		fakeSource{name: "bad", err: boom},
	}

	got, err := LoadAll(context.Background(), sources)
	if err == nil {
		t.Fatal("expected error")
	}
	if got != nil {
		t.Errorf("expected no partial result, got %v", got)
	}

	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected *SourceError, got %T", err)
	}
	if srcErr.Source != "bad" {
		t.Errorf("SourceError.Source = %q, want bad", srcErr.Source)
	}
	if !errors.Is(err, boom) {
		t.Error("expected wrapped cause")
	}
}

func TestLoadAll_Empty(t *testing.T) {
	got, err := LoadAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "topics"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "topics"), "cpu.json", nestedJSON)
	writeFile(t, dir, "bitmap.yml", flatYAML)
	path := writeFile(t, dir, "quiz.yaml", "title: Graphics\nsources:\n  - topics/cpu.json\n  - bitmap.yml\n")

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if m.Title != "Graphics" {
		t.Errorf("title = %q", m.Title)
	}

	sources, err := m.Resolve(Resolver{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	acts, err := LoadAll(context.Background(), sources)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if acts[0].Title != "CPU vs GPU" || acts[1].Title != "Bitmap vs Procedural" {
		t.Errorf("unexpected titles: %q, %q", acts[0].Title, acts[1].Title)
	}
}

func TestLoadManifest_NoSources(t *testing.T) {
	path := writeFile(t, t.TempDir(), "quiz.yaml", "title: Empty\n")
	if _, err := LoadManifest(path); err == nil {
		t.Error("expected error for manifest without sources")
	}
}
