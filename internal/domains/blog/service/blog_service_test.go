package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/blog"
)

// fakeRepo is an in-memory blog.Repository. It mirrors the storage-layer
// contract: server-assigned ids/timestamps, unique slugs, atomic view bumps.
type fakeRepo struct {
	posts map[uuid.UUID]*blog.Post
	clock time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		posts: make(map[uuid.UUID]*blog.Post),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeRepo) slugTaken(slug string, except uuid.UUID) bool {
	for id, p := range f.posts {
		if p.Slug == slug && id != except {
			return true
		}
	}
	return false
}

func (f *fakeRepo) Create(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	if f.slugTaken(p.Slug, uuid.Nil) {
		return nil, blog.ErrDuplicateSlug
	}
	now := f.tick()
	stored := *p
	stored.ID = uuid.New()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	f.posts[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, blog.ErrPostNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			out := *p
			return &out, nil
		}
	}
	return nil, blog.ErrPostNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter blog.PostFilter) ([]blog.Post, int64, error) {
	var matched []blog.Post
	for _, p := range f.posts {
		if filter.PublishedOnly && !p.Published {
			continue
		}
		if filter.Category != "" && (p.Category == nil || *p.Category != filter.Category) {
			continue
		}
		matched = append(matched, *p)
	}
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (f *fakeRepo) Update(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	if _, ok := f.posts[p.ID]; !ok {
		return nil, blog.ErrPostNotFound
	}
	if f.slugTaken(p.Slug, p.ID) {
		return nil, blog.ErrDuplicateSlug
	}
	stored := *p
	stored.UpdatedAt = f.tick()
	f.posts[p.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return blog.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	p, ok := f.posts[id]
	if !ok {
		return blog.ErrPostNotFound
	}
	p.ViewCount++
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateAssignsIDAndDerivesSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	p, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title:   "Hello World",
		Content: "Body",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "hello-world", p.Slug)
	assert.False(t, p.CreatedAt.IsZero())
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestCreateIDsAreUnique(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	a, err := svc.Create(context.Background(), &blog.CreatePostRequest{Title: "One", Content: "x"})
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), &blog.CreatePostRequest{Title: "Two", Content: "x"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateWithoutTitleFailsNamingTitleAndPersistsNothing(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	_, err := svc.Create(context.Background(), &blog.CreatePostRequest{Content: "Body"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "title"))
	assert.Empty(t, repo.posts)
}

func TestCreateDuplicateSlugConflictsAndOriginalUnchanged(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	orig, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "Hello", Slug: "hello", Content: "Original",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "Other", Slug: "hello", Content: "Clone",
	})
	assert.ErrorIs(t, err, blog.ErrDuplicateSlug)

	kept, err := repo.GetByID(context.Background(), orig.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", kept.Content)
	assert.Len(t, repo.posts, 1)
}

func TestUnpublishedPostHiddenFromAnonymous(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	_, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "Hello", Slug: "hello", Content: "World", Published: false,
	})
	require.NoError(t, err)

	// anonymous list excludes it
	posts, total, err := svc.List(context.Background(), blog.PostFilter{PublishedOnly: true, Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Zero(t, total)

	// anonymous detail resolves to not found
	_, err = svc.GetBySlugOrID(context.Background(), "hello", false, true)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)

	// admin sees it
	p, err := svc.GetBySlugOrID(context.Background(), "hello", true, false)
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Slug)
}

func TestPublishedPostViewCountIncrementsOncePerPublicRead(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "Hello", Slug: "hello", Content: "World", Published: false,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &blog.UpdatePostRequest{Published: boolPtr(true)})
	require.NoError(t, err)

	p1, err := svc.GetBySlugOrID(context.Background(), "hello", false, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p1.ViewCount)

	p2, err := svc.GetBySlugOrID(context.Background(), "hello", false, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p2.ViewCount)

	// admin preview does not count a view
	p3, err := svc.GetBySlugOrID(context.Background(), "hello", true, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p3.ViewCount)
}

func TestGetFallsBackToIDLookup(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "Hello", Content: "World", Published: true,
	})
	require.NoError(t, err)

	p, err := svc.GetBySlugOrID(context.Background(), created.ID.String(), false, false)
	require.NoError(t, err)
	assert.Equal(t, created.ID, p.ID)

	_, err = svc.GetBySlugOrID(context.Background(), "not-a-slug-or-uuid", false, false)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}

func TestEmptyPartialUpdateOnlyTouchesUpdatedAt(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "Hello", Slug: "hello", Content: "World", Published: true,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &blog.UpdatePostRequest{})
	require.NoError(t, err)

	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, created.Content, updated.Content)
	assert.Equal(t, created.Published, updated.Published)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateSlugCollisionConflicts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	_, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "First", Slug: "first", Content: "x",
	})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "Second", Slug: "second", Content: "x",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, &blog.UpdatePostRequest{Slug: strPtr("first")})
	assert.ErrorIs(t, err, blog.ErrDuplicateSlug)
}

func TestDeleteThenGetAndDoubleDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), &blog.CreatePostRequest{
		Title: "Hello", Content: "World", Published: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetBySlugOrID(context.Background(), created.ID.String(), true, false)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)

	// double delete reports not found, not silent success
	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}

func TestListEmptyResultIsNotAnError(t *testing.T) {
	svc := NewBlogService(newFakeRepo())

	posts, total, err := svc.List(context.Background(), blog.PostFilter{PublishedOnly: true, Limit: 20})
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	assert.Zero(t, total)
}
