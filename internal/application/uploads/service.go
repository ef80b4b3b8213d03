package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrMissingCategory = errors.New("Photo category is required")

// SupabaseClient defines what we need from Supabase storage.
type SupabaseClient interface {
	CreateSignedUploadURL(ctx context.Context, bucket, path string) (string, error)
}

// HTTPClient is a SupabaseClient backed by the storage HTTP API.
type HTTPClient struct {
	BaseURL   string
	SecretKey string
	Client    *http.Client
}

type signedUploadResponse struct {
	SignedURL      string `json:"signedUrl"`
	SignedURLSnake string `json:"signed_url"`
	URL            string `json:"url"` // relative, returned by upload/sign
}

func (c *HTTPClient) CreateSignedUploadURL(ctx context.Context, bucket, path string) (string, error) {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if c.BaseURL == "" {
		return "", errors.New("supabase: SUPABASE_URL is not set")
	}
	if c.SecretKey == "" {
		return "", errors.New("supabase: SUPABASE_SECRET_KEY is not set")
	}
	base := strings.TrimRight(c.BaseURL, "/")
	url := fmt.Sprintf("%s/storage/v1/object/upload/sign/%s/%s", base, bucket, path)
	bodyBytes, _ := json.Marshal(map[string]interface{}{"expiresIn": 3600, "upsert": false})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("apikey", c.SecretKey)
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("supabase request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("supabase error: status %d body: %s", resp.StatusCode, string(respBody))
	}
	var data signedUploadResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return "", fmt.Errorf("supabase response decode: %w", err)
	}
	switch {
	case data.SignedURL != "":
		return data.SignedURL, nil
	case data.SignedURLSnake != "":
		return data.SignedURLSnake, nil
	case data.URL != "":
		u := data.URL
		if u[0] != '/' {
			u = "/" + u
		}
		return base + u, nil
	}
	return "", fmt.Errorf("supabase returned no signed URL, body: %s", string(respBody))
}

// Service hands out signed upload slots in the listing photo bucket.
type Service struct {
	Client      SupabaseClient
	SupabaseURL string
	Bucket      string
	Now         func() time.Time
}

type UploadResult struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Path      string `json:"path"`
}

// GetSignedUploadURL reserves a path for one photo of the given category.
func (s *Service) GetSignedUploadURL(ctx context.Context, category string) (*UploadResult, error) {
	if category == "" {
		return nil, ErrMissingCategory
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	path := fmt.Sprintf("listings/%s/%d-%s.jpg", category, now().UnixMilli(), uuid.NewString()[:8])

	signedURL, err := s.Client.CreateSignedUploadURL(ctx, s.Bucket, path)
	if err != nil {
		return nil, err
	}
	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", strings.TrimRight(s.SupabaseURL, "/"), s.Bucket, path)
	return &UploadResult{UploadURL: signedURL, PublicURL: publicURL, Path: path}, nil
}

// UploadURL returns the public URL of a reserved slot. It satisfies editors.MediaStore.
func (s *Service) UploadURL(ctx context.Context, category string) (string, error) {
	res, err := s.GetSignedUploadURL(ctx, category)
	if err != nil {
		return "", err
	}
	return res.PublicURL, nil
}

// StubStore fabricates a placeholder photo URL derived from the clock.
type StubStore struct {
	Now func() time.Time

	mu   sync.Mutex
	last int64
}

func (s *StubStore) UploadURL(_ context.Context, _ string) (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	s.mu.Lock()
	ms := now().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	s.mu.Unlock()
	return fmt.Sprintf("https://images.unsplash.com/photo-%d?w=400&h=300", ms), nil
}
