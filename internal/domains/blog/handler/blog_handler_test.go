package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/blog"
)

// fakeService records the flags the handler passed down.
type fakeService struct {
	blog.Service
	post       *blog.Post
	err        error
	lastFilter blog.PostFilter
	lastUnpub  bool
	lastCount  bool
}

func (f *fakeService) List(ctx context.Context, filter blog.PostFilter) ([]blog.Post, int64, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	return []blog.Post{*f.post}, 1, nil
}

func (f *fakeService) GetBySlugOrID(ctx context.Context, key string, includeUnpublished, countView bool) (*blog.Post, error) {
	f.lastUnpub = includeUnpublished
	f.lastCount = countView
	if f.err != nil {
		return nil, f.err
	}
	return f.post, nil
}

func (f *fakeService) Create(ctx context.Context, req *blog.CreatePostRequest) (*blog.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return f.post, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta *struct {
		Limit   int   `json:"limit"`
		Offset  int   `json:"offset"`
		Total   int64 `json:"total"`
		HasMore bool  `json:"has_more"`
	} `json:"meta"`
}

func setupRouter(svc blog.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBlogHandler(svc)

	r := gin.New()
	r.GET("/blog", h.List)
	r.GET("/blog/:slugOrId", h.Get)
	r.POST("/blog", h.Create)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func samplePost() *blog.Post {
	return &blog.Post{ID: uuid.New(), Title: "Hello", Slug: "hello", Content: "World", Published: true}
}

func TestListWrapsPageInEnvelopeWithMeta(t *testing.T) {
	svc := &fakeService{post: samplePost()}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/blog?limit=5&offset=0", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 5, env.Meta.Limit)
	assert.Equal(t, int64(1), env.Meta.Total)
	assert.False(t, env.Meta.HasMore)

	// no auth on the request, so the service only sees published content
	assert.True(t, svc.lastFilter.PublishedOnly)
}

func TestAnonymousGetCountsViewAdminFlagOff(t *testing.T) {
	svc := &fakeService{post: samplePost()}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/blog/hello", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.False(t, svc.lastUnpub)
	assert.True(t, svc.lastCount)
}

func TestGetMissingPostReturnsNotFoundEnvelope(t *testing.T) {
	svc := &fakeService{err: blog.ErrPostNotFound}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/blog/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestCreateWithoutTitleReturnsValidationEnvelopeNamingTitle(t *testing.T) {
	svc := &fakeService{post: samplePost()}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodPost, "/blog", []byte(`{"content":"Body"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	var details map[string]string
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.Contains(t, details, "title")
}

func TestCreateMalformedBodyIsBadRequest(t *testing.T) {
	svc := &fakeService{post: samplePost()}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodPost, "/blog", []byte(`{not json`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}
