// Package netx holds small HTTP helpers for talking to object storage
// directly, outside the API envelope.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// MaxObjectBytes bounds a single downloaded object.
const MaxObjectBytes = 8 << 20

// Download fetches a public object (e.g. a QR image) and returns its bytes.
// A nil client means http.DefaultClient.
func Download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxObjectBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxObjectBytes {
		return nil, fmt.Errorf("download failed: object larger than %d bytes", MaxObjectBytes)
	}
	return data, nil
}
