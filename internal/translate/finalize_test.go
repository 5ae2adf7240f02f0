package translate

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/git-pkgs/pyproject/internal/core"
)

func TestFinalizeRequires(t *testing.T) {
	dist := core.NewDistribution()
	dist.InstallRequires = []string{"requests>=2.0"}
	dist.ExtrasRequire = map[string][]string{
		"docs": {"sphinx"},
		"all":  {"numpy; python_version>'3.8'"},
	}

	if err := FinalizeRequires(dist); err != nil {
		t.Fatalf("FinalizeRequires: %v", err)
	}

	wantReqs := []string{
		"requests>=2.0",
		"numpy; python_version>'3.8' and extra == 'all'",
		"sphinx; extra == 'docs'",
	}
	if !reflect.DeepEqual(dist.Metadata.RequiresDist, wantReqs) {
		t.Errorf("RequiresDist = %v, want %v", dist.Metadata.RequiresDist, wantReqs)
	}
	wantExtras := []string{"all", "docs"}
	if !reflect.DeepEqual(dist.Metadata.ProvidesExtras, wantExtras) {
		t.Errorf("ProvidesExtras = %v, want %v", dist.Metadata.ProvidesExtras, wantExtras)
	}
}

func TestFinalizeRequiresMarkerInExtraKey(t *testing.T) {
	dist := core.NewDistribution()
	dist.ExtrasRequire = map[string][]string{
		"cli:sys_platform=='win32'": {"colorama"},
	}

	if err := FinalizeRequires(dist); err != nil {
		t.Fatalf("FinalizeRequires: %v", err)
	}

	want := []string{"colorama; sys_platform=='win32' and extra == 'cli'"}
	if !reflect.DeepEqual(dist.Metadata.RequiresDist, want) {
		t.Errorf("RequiresDist = %v, want %v", dist.Metadata.RequiresDist, want)
	}
	if len(dist.Metadata.ProvidesExtras) != 1 || dist.Metadata.ProvidesExtras[0] != "cli" {
		t.Errorf("ProvidesExtras = %v, want [cli]", dist.Metadata.ProvidesExtras)
	}
}

func TestFinalizeRequiresIdempotent(t *testing.T) {
	dist := core.NewDistribution()
	dist.InstallRequires = []string{"requests"}
	dist.ExtrasRequire = map[string][]string{"docs": {"sphinx"}}

	if err := FinalizeRequires(dist); err != nil {
		t.Fatal(err)
	}
	first := append([]string(nil), dist.Metadata.RequiresDist...)
	firstExtras := append([]string(nil), dist.Metadata.ProvidesExtras...)

	if err := FinalizeRequires(dist); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(dist.Metadata.RequiresDist, first) {
		t.Errorf("second run changed RequiresDist: %v vs %v", dist.Metadata.RequiresDist, first)
	}
	if !reflect.DeepEqual(dist.Metadata.ProvidesExtras, firstExtras) {
		t.Errorf("second run changed ProvidesExtras: %v vs %v", dist.Metadata.ProvidesExtras, firstExtras)
	}
}

func TestFinalizeLicenseFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"LICENSE", "COPYING.txt", "LICENSE~"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	dist := core.NewDistribution()
	if err := FinalizeLicenseFiles(dist, dir); err != nil {
		t.Fatalf("FinalizeLicenseFiles: %v", err)
	}

	want := []string{"COPYING.txt", "LICENSE"}
	if !reflect.DeepEqual(dist.Metadata.LicenseFiles, want) {
		t.Errorf("LicenseFiles = %v, want %v", dist.Metadata.LicenseFiles, want)
	}
}

func TestFinalizeLicenseFilesExplicitPatterns(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "licenses")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"MIT.txt", "BSD.txt"} {
		if err := os.WriteFile(filepath.Join(sub, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	dist := core.NewDistribution()
	dist.Metadata.LicenseFiles = []string{"licenses/*.txt"}
	if err := FinalizeLicenseFiles(dist, dir); err != nil {
		t.Fatalf("FinalizeLicenseFiles: %v", err)
	}

	want := []string{
		filepath.Join("licenses", "BSD.txt"),
		filepath.Join("licenses", "MIT.txt"),
	}
	if !reflect.DeepEqual(dist.Metadata.LicenseFiles, want) {
		t.Errorf("LicenseFiles = %v, want %v", dist.Metadata.LicenseFiles, want)
	}
}

func TestFinalizeLicenseFilesSingleAttr(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "COPYRIGHT"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	dist := core.NewDistribution()
	dist.Attrs["license_file"] = "COPYRIGHT"
	if err := FinalizeLicenseFiles(dist, dir); err != nil {
		t.Fatalf("FinalizeLicenseFiles: %v", err)
	}
	if len(dist.Metadata.LicenseFiles) != 1 || dist.Metadata.LicenseFiles[0] != "COPYRIGHT" {
		t.Errorf("LicenseFiles = %v, want [COPYRIGHT]", dist.Metadata.LicenseFiles)
	}
}
