package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/akolanti/SheetAPI/internal/config"
)

var (
	pooledClient *http.Client
	once         sync.Once
)

// GetPooledClient returns the shared outbound client used by the LLM
// providers, so repeated analysis calls reuse connections instead of paying
// the handshake each time.
func GetPooledClient() *http.Client {
	once.Do(func() {
		pooledClient = &http.Client{
			Timeout: config.LLMRequestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        config.MaxIdleConns,
				MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
				IdleConnTimeout:     config.IdleConnTimeout,
			},
		}
	})
	return pooledClient
}
