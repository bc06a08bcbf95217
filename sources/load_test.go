package sources

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/bf/modes"
)

func TestLoad(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hello.b" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "++[>++++<-]>.")
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "prog.b")
	if err := os.WriteFile(path, []byte("+++.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		load Load,
	) {
		ctx := context.Background()

		src, err := load(ctx, path, nil)
		if err != nil {
			t.Fatal(err)
		}
		if src != "+++.\n" {
			t.Fatalf("got %q", src)
		}

		_, err = load(ctx, filepath.Join(t.TempDir(), "none.b"), nil)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("got %v", err)
		}

		src, err = load(ctx, server.URL+"/hello.b", nil)
		if err != nil {
			t.Fatal(err)
		}
		if src != "++[>++++<-]>." {
			t.Fatalf("got %q", src)
		}

		_, err = load(ctx, server.URL+"/missing.b", nil)
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}

		stdin := bufio.NewReader(strings.NewReader(",.\nA"))
		src, err = load(ctx, "", stdin)
		if err != nil {
			t.Fatal(err)
		}
		if src != ",.\n" {
			t.Fatalf("got %q", src)
		}
		// the rest stays available as program input
		b, err := stdin.ReadByte()
		if err != nil || b != 'A' {
			t.Fatalf("got %q %v", b, err)
		}
	})
}

func TestReadLine(t *testing.T) {
	line, err := ReadLine(bufio.NewReader(strings.NewReader("+.")))
	if err != nil {
		t.Fatal(err)
	}
	if line != "+." {
		t.Fatalf("got %q", line)
	}
	line, err = ReadLine(bufio.NewReader(strings.NewReader("")))
	if err != nil || line != "" {
		t.Fatalf("got %q %v", line, err)
	}
}
