package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "website")
	b := NewBuilder(dir)

	if err := b.Build("a portfolio for my photography"); err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, name := range []string{"index.html", "styles.css", "app.js"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	page := string(html)
	if !strings.Contains(page, "a portfolio for my photography") {
		t.Error("description missing from index.html")
	}
	if !strings.Contains(page, "Generated by Nova") {
		t.Error("footer missing from index.html")
	}
}

func TestBuildEscapesDescription(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "website")
	b := NewBuilder(dir)

	if err := b.Build("<script>alert(1)</script>"); err != nil {
		t.Fatalf("Build: %v", err)
	}
	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if strings.Contains(string(html), "<script>alert(1)</script>") {
		t.Error("description was not HTML-escaped")
	}
}

func TestBuildOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "website")
	b := NewBuilder(dir)

	if err := b.Build("first description"); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := b.Build("second description"); err != nil {
		t.Fatalf("Build: %v", err)
	}

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if strings.Contains(string(html), "first description") {
		t.Error("old description survived the rebuild")
	}
	if !strings.Contains(string(html), "second description") {
		t.Error("new description missing")
	}
}

func TestNewBuilderDefaultDir(t *testing.T) {
	if b := NewBuilder(""); b.Dir() != DefaultDir {
		t.Errorf("dir = %q", b.Dir())
	}
}
