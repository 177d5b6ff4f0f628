package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// SheetPoster mirrors event payloads to a spreadsheet webhook (an Apps
// Script endpoint in production). The response body is not interpreted
// beyond the status code.
type SheetPoster struct {
	client *http.Client
}

// NewSheetPoster creates a webhook poster sharing one HTTP client across
// requests. Timeouts come from the caller's context.
func NewSheetPoster() *SheetPoster {
	return &SheetPoster{
		client: &http.Client{},
	}
}

// Post serializes payload as JSON and POSTs it to url.
func (p *SheetPoster) Post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sheet webhook returned status %d", resp.StatusCode)
	}
	return nil
}
