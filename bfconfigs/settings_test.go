package bfconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/modes"
)

func TestSettings(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{"testdata/bf.cue"}, Schema)
		},
	).Call(func(
		newlineAsZero NewlineAsZero,
		utf8Output UTF8Output,
		capacity TapeCapacity,
	) {
		if !newlineAsZero {
			t.Fatal("newline_as_zero not loaded")
		}
		if utf8Output {
			t.Fatal("utf8_output should default to false")
		}
		if capacity != 16 {
			t.Fatalf("got %v", capacity)
		}
	})
}

func TestDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		loader configs.Loader,
		newlineAsZero NewlineAsZero,
		capacity TapeCapacity,
	) {
		if len(loader.Paths()) != 0 {
			t.Fatalf("got %v", loader.Paths())
		}
		if newlineAsZero {
			t.Fatal()
		}
		if capacity != 0 {
			t.Fatalf("got %v", capacity)
		}
	})
}

func TestSchema(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/bad.cue"}, Schema)
	if err := loader.Err(); err == nil {
		t.Fatal("negative capacity should be rejected")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".bf.cue"), []byte("utf8_output: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	paths := discover([]string{dir, filepath.Join(dir, "none")})
	if len(paths) != 1 || filepath.Base(paths[0]) != ".bf.cue" {
		t.Fatalf("got %v", paths)
	}
}
