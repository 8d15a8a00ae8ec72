package connector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"autoviz/internal/dataset"
)

const maxAPIResponse = 64 << 20

// LoadAPI fetches a JSON payload from an HTTP endpoint and materializes it
// like LoadJSON. Options.DataPath can point into a nested envelope, e.g.
// "data.results".
func LoadAPI(endpoint string, opt Options) (*dataset.Table, error) {
	timeout := opt.HTTPTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch api: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch api: unexpected status %s", resp.Status)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxAPIResponse))
	if err != nil {
		return nil, fmt.Errorf("read api response: %w", err)
	}

	if opt.DataPath != "" {
		extracted, err := extractPath(raw, opt.DataPath)
		if err != nil {
			return nil, err
		}
		raw = extracted
	}
	return tableFromJSON(raw, opt)
}

// extractPath walks a dotted key path through JSON objects and returns the
// re-encoded value at the end of it.
func extractPath(raw []byte, path string) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode api response: %w", err)
	}
	for _, key := range strings.Split(path, ".") {
		obj, ok := doc.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("connector: data path %q does not resolve to an object", path)
		}
		doc, ok = obj[key]
		if !ok {
			return nil, fmt.Errorf("connector: data path key %q not found", key)
		}
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encode extracted data: %w", err)
	}
	return out, nil
}
