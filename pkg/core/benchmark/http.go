package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// HTTPProvider queries a benchmark REST service. The expected response
// shape is {"benchmarks": {"currentRatio": {"average": 2.1, ...}}}.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  zerolog.Logger
}

func NewHTTPProvider(baseURL, apiKey string, logger zerolog.Logger) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

type benchmarksResponse struct {
	Benchmarks map[string]Entry `json:"benchmarks"`
}

func (p *HTTPProvider) GetBenchmarks(ctx context.Context, sector, activity, region string, keys []string) (Set, error) {
	q := url.Values{}
	q.Set("sector", sector)
	if activity != "" {
		q.Set("activity", activity)
	}
	if region != "" {
		q.Set("region", region)
	}
	q.Set("metrics", strings.Join(keys, ","))

	endpoint := fmt.Sprintf("%s/v1/benchmarks?%s", p.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build benchmark request: %w", err)
	}
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch benchmarks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("benchmark service returned %s", resp.Status)
	}

	var body benchmarksResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode benchmark response: %w", err)
	}

	p.logger.Debug().
		Str("sector", sector).
		Int("requested", len(keys)).
		Int("received", len(body.Benchmarks)).
		Msg("benchmarks fetched")

	return body.Benchmarks, nil
}
