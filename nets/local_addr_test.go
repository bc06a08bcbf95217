package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/bf/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, want := range map[string]bool{
			"127.0.0.1:10000": true,
			"[::1]:80":        true,
			"10.1.2.3":        true,
			"localhost:8080":  true,
			"8.8.8.8:53":      false,
		} {
			got, err := isLocalAddr(addr)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("%s: got %v", addr, got)
			}
		}
	})
}

func TestNoProxyInTest(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
	})
}
