package sources

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/nets"
)

// Load acquires program source. An empty arg reads one line from stdin,
// an http(s) URL is fetched, anything else is a file path.
type Load func(ctx context.Context, arg string, stdin *bufio.Reader) (string, error)

const maxSourceBytes = 64 << 20

func (Module) Load(
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, arg string, stdin *bufio.Reader) (string, error) {
		switch {

		case arg == "":
			logger.DebugContext(ctx, "source from stdin")
			return ReadLine(stdin)

		case strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://"):
			logger.DebugContext(ctx, "source from url", "url", arg)
			return fetch(ctx, client, arg)

		default:
			logger.DebugContext(ctx, "source from file", "path", arg)
			content, err := os.ReadFile(arg)
			if err != nil {
				return "", fmt.Errorf("read source %s: %w", arg, err)
			}
			return string(content), nil
		}
	}
}

// ReadLine returns one line including its newline. End of input yields what was read.
func ReadLine(r *bufio.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read source from stdin: %w", err)
	}
	return line, nil
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch source %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch source %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch source %s: status %s", url, resp.Status)
	}
	content, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return "", fmt.Errorf("fetch source %s: %w", url, err)
	}
	return string(content), nil
}
