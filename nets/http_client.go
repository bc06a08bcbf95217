package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

const fetchTimeout = 30 * time.Second

func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Timeout: fetchTimeout,
		Transport: &http.Transport{
			// proxying is decided by Dialer
			Proxy:       nil,
			DialContext: dialer.DialContext,
		},
	}
}
