package upstream

import (
	"context"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain"
)

const maxBodyBytes = 8 << 20

// GetJSON fetches url and decodes a 2xx body into dst. A 404 is marked
// domain.ErrNotFound, any other non-2xx domain.ErrUpstreamUnavailable, and an
// undecodable body domain.ErrMalformedPayload.
func (f *Fetcher) GetJSON(ctx context.Context, url string, dst any) error {
	resp, err := f.Fetch(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		statusErr := &StatusError{Upstream: f.name, URL: url, StatusCode: resp.StatusCode}
		discard(resp)
		if resp.StatusCode == http.StatusNotFound {
			return errors.Mark(statusErr, domain.ErrNotFound)
		}
		return errors.Mark(statusErr, domain.ErrUpstreamUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "%s: read body from %s", f.name, url), domain.ErrUpstreamUnavailable)
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return errors.Mark(errors.Wrapf(err, "%s: decode body from %s", f.name, url), domain.ErrMalformedPayload)
	}
	return nil
}
