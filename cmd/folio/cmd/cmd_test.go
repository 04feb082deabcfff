package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/krisnawm/folio/internal/config"
	"github.com/krisnawm/folio/internal/content"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("folio %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestInitThenContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "folio")
	chdir(t, t.TempDir()) // no stray .env

	out := run(t, "init", "--config", dir)
	if !strings.Contains(out, "Created") {
		t.Fatalf("init output = %q", out)
	}
	for _, name := range []string{config.FileName, config.ContentFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	doc := "name: Jane Doe\ntagline: Go Rust Zig\n"
	if err := os.WriteFile(filepath.Join(dir, config.ContentFileName), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	out = run(t, "content", "--config", dir, "--log-file", filepath.Join(t.TempDir(), "folio.log"))
	p, err := content.Parse([]byte(out))
	if err != nil {
		t.Fatalf("content output does not parse: %v\n%s", err, out)
	}
	if p.Name != "Jane Doe" || p.Tagline != "Go Rust Zig" {
		t.Errorf("content = %+v", p)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
