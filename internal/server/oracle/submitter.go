package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// HTTPSubmitter delivers submissions to the oracle endpoint as JSON POSTs.
// Transient failures are retried with capped exponential backoff; after that
// the submission is abandoned and the request eventually falls to the
// timeout path, so delivery failures never strand funds.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

func NewHTTPSubmitter(endpoint string) *HTTPSubmitter {
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, sub Submission) error {

	body, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("oracle returned %s", resp.Status))
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("oracle rejected submission: %s", resp.Status)
		}

		return nil
	})
}
