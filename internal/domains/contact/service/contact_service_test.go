package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/infrastructure/email"
)

type fakeRepo struct {
	submissions map[uuid.UUID]*contact.Submission
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{submissions: make(map[uuid.UUID]*contact.Submission)}
}

func (f *fakeRepo) Create(ctx context.Context, s *contact.Submission) (*contact.Submission, error) {
	stored := *s
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	f.submissions[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*contact.Submission, error) {
	s, ok := f.submissions[id]
	if !ok {
		return nil, contact.ErrSubmissionNotFound
	}
	out := *s
	return &out, nil
}

func (f *fakeRepo) List(ctx context.Context, filter contact.SubmissionFilter) ([]contact.Submission, int64, error) {
	var out []contact.Submission
	for _, s := range f.submissions {
		if filter.Unread != nil && s.Read == *filter.Unread {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) SetRead(ctx context.Context, id uuid.UUID, read bool) (*contact.Submission, error) {
	s, ok := f.submissions[id]
	if !ok {
		return nil, contact.ErrSubmissionNotFound
	}
	s.Read = read
	out := *s
	return &out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.submissions[id]; !ok {
		return contact.ErrSubmissionNotFound
	}
	delete(f.submissions, id)
	return nil
}

// fakeMailer signals each send on a channel so tests can wait for the
// detached notification goroutine.
type fakeMailer struct {
	sent chan email.ContactNotificationData
	err  error
}

func newFakeMailer(err error) *fakeMailer {
	return &fakeMailer{sent: make(chan email.ContactNotificationData, 1), err: err}
}

func (f *fakeMailer) SendContactNotification(ctx context.Context, data email.ContactNotificationData) error {
	f.sent <- data
	return f.err
}

func TestSubmitStoresAndNotifiesAsynchronously(t *testing.T) {
	repo := newFakeRepo()
	mailer := newFakeMailer(nil)
	svc := NewContactService(repo, mailer)

	subject := "Hello"
	sub, err := svc.Submit(context.Background(), &contact.CreateSubmissionRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: &subject,
		Message: "Nice site",
	}, "203.0.113.9")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sub.ID)
	require.NotNil(t, sub.ClientIP)
	assert.Equal(t, "203.0.113.9", *sub.ClientIP)
	assert.False(t, sub.Read)

	select {
	case data := <-mailer.sent:
		assert.Equal(t, "Alice", data.Name)
		assert.Equal(t, "alice@example.com", data.Email)
		assert.Equal(t, "Hello", data.Subject)
	case <-time.After(2 * time.Second):
		t.Fatal("notification email was never sent")
	}
}

func TestSubmitSucceedsEvenWhenMailerFails(t *testing.T) {
	repo := newFakeRepo()
	mailer := newFakeMailer(errors.New("smtp down"))
	svc := NewContactService(repo, mailer)

	sub, err := svc.Submit(context.Background(), &contact.CreateSubmissionRequest{
		Name:    "Bob",
		Email:   "bob@example.com",
		Message: "Hi",
	}, "")
	require.NoError(t, err)
	assert.Nil(t, sub.ClientIP)

	// drain so the goroutine finishes before the test exits
	<-mailer.sent
	assert.Len(t, repo.submissions, 1)
}

func TestSubmitValidationFailureStoresNothing(t *testing.T) {
	repo := newFakeRepo()
	mailer := newFakeMailer(nil)
	svc := NewContactService(repo, mailer)

	_, err := svc.Submit(context.Background(), &contact.CreateSubmissionRequest{
		Name:  "Alice",
		Email: "not-an-email",
	}, "")
	require.Error(t, err)
	assert.Empty(t, repo.submissions)

	select {
	case <-mailer.sent:
		t.Fatal("no email should be sent for a rejected submission")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestToggleReadFlipsBothWays(t *testing.T) {
	repo := newFakeRepo()
	svc := NewContactService(repo, newFakeMailer(nil))

	sub, err := svc.Submit(context.Background(), &contact.CreateSubmissionRequest{
		Name: "Alice", Email: "alice@example.com", Message: "Hi",
	}, "")
	require.NoError(t, err)

	marked, err := svc.ToggleRead(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.True(t, marked.Read)

	unmarked, err := svc.ToggleRead(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.False(t, unmarked.Read)
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewContactService(repo, newFakeMailer(nil))

	sub, err := svc.Submit(context.Background(), &contact.CreateSubmissionRequest{
		Name: "Alice", Email: "alice@example.com", Message: "Hi",
	}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), sub.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), sub.ID), contact.ErrSubmissionNotFound)
}
