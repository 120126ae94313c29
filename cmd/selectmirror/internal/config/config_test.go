package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "selectmirror.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	r, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Selector != "select" {
		t.Errorf("Selector = %q, want select", r.Selector)
	}
	if r.PreventNative || r.RestoreOnDestroy {
		t.Error("interaction flags default on")
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := writeConfig(t, `
document: page.html
selector: "select.country"
interaction:
  prevent_native: true
  restore_on_destroy: true
`)
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Document != "page.html" {
		t.Errorf("Document = %q", r.Document)
	}
	if r.Selector != "select.country" {
		t.Errorf("Selector = %q", r.Selector)
	}
	if !r.PreventNative || !r.RestoreOnDestroy {
		t.Error("interaction flags not read")
	}
}

func TestResolveBadYAML(t *testing.T) {
	dir := writeConfig(t, "selector: [broken")
	if _, err := Resolve(dir); err == nil {
		t.Error("expected parse error")
	}
}
