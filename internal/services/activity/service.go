package activity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shuv1824/kidsactivities/internal/requestid"
	"github.com/shuv1824/kidsactivities/internal/types"
)

var ErrUnexpectedStatus = errors.New("activity service returned unexpected status")

// ActivityService talks to the remote activity service.
type ActivityService struct {
	httpClient *http.Client
	baseURL    string
}

func NewActivityService(baseURL string, timeout time.Duration) *ActivityService {
	return &ActivityService{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchActivities returns every listed activity.
func (s *ActivityService) FetchActivities(ctx context.Context) ([]types.Activity, error) {
	return s.fetchList(ctx, "/activities", nil)
}

// FetchFeaturedActivities returns the curated carousel activities.
func (s *ActivityService) FetchFeaturedActivities(ctx context.Context) ([]types.Activity, error) {
	return s.fetchList(ctx, "/activities/featured", nil)
}

// FetchPopularActivities returns the n most popular activities.
func (s *ActivityService) FetchPopularActivities(ctx context.Context, n int) ([]types.Activity, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(n))
	return s.fetchList(ctx, "/activities/popular", q)
}

func (s *ActivityService) fetchList(ctx context.Context, path string, query url.Values) ([]types.Activity, error) {
	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %w: %d", path, ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", path, err)
	}

	raws, err := decodeList(body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	return NormalizeAll(raws), nil
}

// decodeList accepts either a bare JSON array or a {"data": [...]} envelope.
func decodeList(body []byte) ([]types.RawActivity, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []types.RawActivity{}, nil
	}

	if trimmed[0] == '[' {
		var list []types.RawActivity
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode activity list: %w", err)
		}
		return list, nil
	}

	var envelope struct {
		Data []types.RawActivity `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode activity envelope: %w", err)
	}
	if envelope.Data == nil {
		return []types.RawActivity{}, nil
	}
	return envelope.Data, nil
}
