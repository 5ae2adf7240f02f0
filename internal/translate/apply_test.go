package translate

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/git-pkgs/pyproject/internal/core"
	"github.com/git-pkgs/pyproject/internal/options"
)

func testDoc() *core.Table {
	return core.TableFromMap(map[string]any{
		"project": map[string]any{
			"name":    "pkg",
			"version": "1.0",
			"authors": []any{
				map[string]any{"name": "A", "email": "a@x.com"},
			},
		},
		"tool": map[string]any{
			"setuptools": map[string]any{},
		},
	})
}

func applyTo(t *testing.T, dist *core.Distribution, doc *core.Table, rootDir string) error {
	t.Helper()
	logger := zap.NewNop()
	return Apply(dist, doc, rootDir, options.NewIndex(nil, logger), logger)
}

func TestApplyMinimalDocument(t *testing.T) {
	dist := core.NewDistribution()
	if err := applyTo(t, dist, testDoc(), t.TempDir()); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if dist.Metadata.Name != "pkg" {
		t.Errorf("Name = %q, want %q", dist.Metadata.Name, "pkg")
	}
	if dist.Metadata.Version != "1.0" {
		t.Errorf("Version = %q, want %q", dist.Metadata.Version, "1.0")
	}
	if dist.Metadata.Author != "" {
		t.Errorf("Author = %q, want empty (complete persons go to the email field)", dist.Metadata.Author)
	}
	if dist.Metadata.AuthorEmail != "A <a@x.com>" {
		t.Errorf("AuthorEmail = %q, want %q", dist.Metadata.AuthorEmail, "A <a@x.com>")
	}
}

func TestApplyMissingProjectTable(t *testing.T) {
	doc := core.TableFromMap(map[string]any{
		"tool": map[string]any{"setuptools": map[string]any{}},
	})
	err := applyTo(t, core.NewDistribution(), doc, t.TempDir())
	if err == nil {
		t.Fatal("expected an error for a document without a project table")
	}
	if !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("error %v does not wrap ErrConfiguration", err)
	}
}

func TestApplyIsReproducible(t *testing.T) {
	doc := core.TableFromMap(map[string]any{
		"project": map[string]any{
			"name":         "pkg",
			"version":      "1.0",
			"dependencies": []any{"requests"},
			"optional-dependencies": map[string]any{
				"docs": []any{"sphinx"},
			},
			"scripts": map[string]any{"hello": "pkg.cli:main"},
		},
	})
	dir := t.TempDir()

	first := core.NewDistribution()
	if err := applyTo(t, first, doc, dir); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	second := core.NewDistribution()
	if err := applyTo(t, second, doc, dir); err != nil {
		t.Fatalf("second Apply: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same document diverge:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	want := []string{"requests", "sphinx; extra == 'docs'"}
	if !reflect.DeepEqual(first.Metadata.RequiresDist, want) {
		t.Errorf("RequiresDist = %v, want %v", first.Metadata.RequiresDist, want)
	}
	if !reflect.DeepEqual(first.EntryPoints["console_scripts"], []string{"hello = pkg.cli:main"}) {
		t.Errorf("console_scripts = %v", first.EntryPoints["console_scripts"])
	}
}

func TestApplyToolTableWins(t *testing.T) {
	doc := core.TableFromMap(map[string]any{
		"project": map[string]any{
			"name":      "pkg",
			"version":   "1.0",
			"platforms": []any{"posix"},
		},
		"tool": map[string]any{
			"setuptools": map[string]any{
				"platforms": []any{"any"},
			},
		},
	})
	dist := core.NewDistribution()
	if err := applyTo(t, dist, doc, t.TempDir()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !reflect.DeepEqual(dist.Metadata.Platforms, []string{"any"}) {
		t.Errorf("Platforms = %v, the tool table must win", dist.Metadata.Platforms)
	}
}

func TestApplyToolTableRenames(t *testing.T) {
	doc := core.TableFromMap(map[string]any{
		"project": map[string]any{
			"name":    "pkg",
			"version": "1.0",
		},
		"tool": map[string]any{
			"setuptools": map[string]any{
				"script-files": []any{"scripts/legacy.sh"},
			},
		},
	})
	dist := core.NewDistribution()
	if err := applyTo(t, dist, doc, t.TempDir()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !reflect.DeepEqual(dist.Options.Scripts, []string{"scripts/legacy.sh"}) {
		t.Errorf("Scripts = %v, want the renamed script-files value", dist.Options.Scripts)
	}
}

func TestApplyDynamicLicenseDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "LICENSE"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := core.TableFromMap(map[string]any{
		"project": map[string]any{
			"name":    "pkg",
			"version": "1.0",
			"dynamic": []any{"license"},
		},
		"tool": map[string]any{
			"setuptools": map[string]any{
				"dynamic": map[string]any{},
			},
		},
	})
	dist := core.NewDistribution()
	if err := applyTo(t, dist, doc, dir); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !reflect.DeepEqual(dist.Metadata.LicenseFiles, []string{"LICENSE"}) {
		t.Errorf("LicenseFiles = %v, want [LICENSE]", dist.Metadata.LicenseFiles)
	}
}

func TestApplyKeepsWorkingDirectoryOnFailure(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	doc := core.TableFromMap(map[string]any{
		"project": map[string]any{
			"name":    "pkg",
			"version": "1.0",
			"license": map[string]any{"file": "["},
		},
	})
	if err := applyTo(t, core.NewDistribution(), doc, t.TempDir()); err == nil {
		t.Fatal("expected the malformed license-file pattern to fail finalization")
	}

	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Errorf("working directory changed from %q to %q", before, after)
	}
}
