package uploads

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	bucket, path string
	err          error
}

func (f *fakeClient) CreateSignedUploadURL(_ context.Context, bucket, path string) (string, error) {
	f.bucket, f.path = bucket, path
	return "https://signed", f.err
}

func TestService_UploadURLReturnsPublicURL(t *testing.T) {
	client := &fakeClient{}
	svc := &Service{
		Client:      client,
		SupabaseURL: "https://proj.supabase.co/",
		Bucket:      "photos",
		Now:         func() time.Time { return time.UnixMilli(1700000000000) },
	}
	url, err := svc.UploadURL(context.Background(), "kitchen")
	require.NoError(t, err)
	assert.Equal(t, "photos", client.bucket)
	assert.Contains(t, client.path, "listings/kitchen/1700000000000-")
	assert.Equal(t, "https://proj.supabase.co/storage/v1/object/public/photos/"+client.path, url)

	_, err = svc.UploadURL(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingCategory)

	client.err = errors.New("denied")
	_, err = svc.UploadURL(context.Background(), "cover")
	assert.Error(t, err)
}

func TestStubStore_TimeDerivedAndDistinct(t *testing.T) {
	s := &StubStore{Now: func() time.Time { return time.UnixMilli(42) }}
	a, err := s.UploadURL(context.Background(), "cover")
	require.NoError(t, err)
	b, err := s.UploadURL(context.Background(), "cover")
	require.NoError(t, err)
	assert.Equal(t, "https://images.unsplash.com/photo-42?w=400&h=300", a)
	assert.Equal(t, "https://images.unsplash.com/photo-43?w=400&h=300", b)
}

func TestHTTPClient_SignedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage/v1/object/upload/sign/photos/a.jpg", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{"url":"storage/v1/object/upload/sign/photos/a.jpg?token=t"}`))
	}))
	defer srv.Close()

	c := &HTTPClient{BaseURL: srv.URL, SecretKey: "secret"}
	got, err := c.CreateSignedUploadURL(context.Background(), "photos", "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/storage/v1/object/upload/sign/photos/a.jpg?token=t", got)

	_, err = (&HTTPClient{}).CreateSignedUploadURL(context.Background(), "photos", "a.jpg")
	assert.Error(t, err)
}
