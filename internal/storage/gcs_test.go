package storage

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	gcs "cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type uploadedObject struct {
	Name        string
	ContentType string
	MediaType   string
	Data        []byte
}

type aclUpdate struct {
	Path   string
	Entity string `json:"entity"`
	Role   string `json:"role"`
}

// fakeGCSServer answers the JSON API requests a Writer and an object ACL
// update make, recording what it received.
type fakeGCSServer struct {
	mu      sync.Mutex
	uploads []uploadedObject
	acls    []aclUpdate
}

func (s *fakeGCSServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/upload/storage/v1/b/"):
		s.handleUpload(w, r)
	case r.Method == http.MethodPut && strings.Contains(r.URL.Path, "/acl/"):
		s.handleACL(w, r)
	default:
		http.Error(w, "unexpected request "+r.Method+" "+r.URL.Path, http.StatusNotImplemented)
	}
}

func (s *fakeGCSServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("uploadType") != "multipart" {
		http.Error(w, "only multipart uploads are supported", http.StatusNotImplemented)
		return
	}

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		http.Error(w, "bad content type", http.StatusBadRequest)
		return
	}
	mr := multipart.NewReader(r.Body, params["boundary"])

	// metadata part, then media part
	metaPart, err := mr.NextPart()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var meta struct {
		Name        string `json:"name"`
		ContentType string `json:"contentType"`
	}
	if err := json.NewDecoder(metaPart).Decode(&meta); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mediaPart, err := mr.NextPart()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data, err := io.ReadAll(mediaPart)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.uploads = append(s.uploads, uploadedObject{
		Name:        meta.Name,
		ContentType: meta.ContentType,
		MediaType:   mediaPart.Header.Get("Content-Type"),
		Data:        data,
	})
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"bucket":      "she-travels-test.appspot.com",
		"name":        meta.Name,
		"contentType": meta.ContentType,
		"size":        strconv.Itoa(len(data)),
	})
}

func (s *fakeGCSServer) handleACL(w http.ResponseWriter, r *http.Request) {
	update := aclUpdate{Path: r.URL.Path}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.acls = append(s.acls, update)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"entity": update.Entity,
		"role":   update.Role,
	})
}

func newTestGCSBucket(t *testing.T) (*GCSBucket, *fakeGCSServer) {
	t.Helper()
	fake := &fakeGCSServer{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := gcs.NewClient(context.Background(),
		option.WithEndpoint(srv.URL+"/storage/v1/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	const name = "she-travels-test.appspot.com"
	return NewGCSBucket(client.Bucket(name), name), fake
}

func TestGCSBucketWriteSetsContentType(t *testing.T) {
	bucket, fake := newTestGCSBucket(t)

	require.NoError(t, bucket.Write(context.Background(), "gallery/hike_1.jpeg", jpegBytes, "image/jpeg"))

	require.Len(t, fake.uploads, 1)
	upload := fake.uploads[0]
	assert.Equal(t, "gallery/hike_1.jpeg", upload.Name)
	assert.Equal(t, "image/jpeg", upload.ContentType)
	assert.Equal(t, "image/jpeg", upload.MediaType)
	assert.Equal(t, jpegBytes, upload.Data)
}

func TestGCSBucketMakePublic(t *testing.T) {
	bucket, fake := newTestGCSBucket(t)

	require.NoError(t, bucket.MakePublic(context.Background(), "events/hike_5.jpeg"))

	require.Len(t, fake.acls, 1)
	acl := fake.acls[0]
	assert.Equal(t, "/storage/v1/b/she-travels-test.appspot.com/o/events/hike_5.jpeg/acl/allUsers", acl.Path)
	assert.Equal(t, "allUsers", acl.Entity)
	assert.Equal(t, "READER", acl.Role)
}

func TestUploadToGCSBucket(t *testing.T) {
	bucket, fake := newTestGCSBucket(t)
	root := t.TempDir()
	writeImage(t, root, "assets/hike_2.jpeg", jpegBytes)

	uploader := NewUploader(bucket, root, zap.NewNop().Sugar())
	result := uploader.Upload(context.Background(), "assets/hike_2.jpeg", "memories/hike_2.jpeg")

	require.True(t, result.OK(), "%v", result.Err)
	assert.Equal(t, "https://storage.googleapis.com/she-travels-test.appspot.com/memories/hike_2.jpeg", result.URL)

	require.Len(t, fake.uploads, 1)
	assert.Equal(t, "image/jpeg", fake.uploads[0].ContentType)
	require.Len(t, fake.acls, 1)
	assert.Equal(t, "allUsers", fake.acls[0].Entity)
	assert.Equal(t, "READER", fake.acls[0].Role)
}
