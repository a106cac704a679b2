package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/achievement"
	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/domains/certification"
	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/domains/skill"
)

// The fakes embed the service interface and override List only; the
// aggregate never touches anything else.

type fakeProjects struct {
	project.Service
	items []project.Project
	err   error
	got   project.ProjectFilter
}

func (f *fakeProjects) List(ctx context.Context, filter project.ProjectFilter) ([]project.Project, int64, error) {
	f.got = filter
	return f.items, int64(len(f.items)), f.err
}

type fakeSkills struct {
	skill.Service
	items []skill.Skill
	err   error
}

func (f *fakeSkills) List(ctx context.Context, filter skill.SkillFilter) ([]skill.Skill, int64, error) {
	return f.items, int64(len(f.items)), f.err
}

type fakeCertifications struct {
	certification.Service
	items []certification.Certification
	err   error
}

func (f *fakeCertifications) List(ctx context.Context, filter certification.CertificationFilter) ([]certification.Certification, int64, error) {
	return f.items, int64(len(f.items)), f.err
}

type fakeAchievements struct {
	achievement.Service
	items []achievement.Achievement
	err   error
}

func (f *fakeAchievements) List(ctx context.Context, filter achievement.AchievementFilter) ([]achievement.Achievement, int64, error) {
	return f.items, int64(len(f.items)), f.err
}

type fakePosts struct {
	blog.Service
	items []blog.Post
	err   error
	got   blog.PostFilter
}

func (f *fakePosts) List(ctx context.Context, filter blog.PostFilter) ([]blog.Post, int64, error) {
	f.got = filter
	return f.items, int64(len(f.items)), f.err
}

func TestGetOverviewAggregatesAllSections(t *testing.T) {
	projects := &fakeProjects{items: []project.Project{{Title: "P1"}, {Title: "P2"}}}
	skills := &fakeSkills{items: []skill.Skill{{Name: "Go"}}}
	certs := &fakeCertifications{items: []certification.Certification{{Name: "C1"}}}
	achievements := &fakeAchievements{items: []achievement.Achievement{{Title: "A1"}}}
	posts := &fakePosts{items: []blog.Post{{Title: "B1"}, {Title: "B2"}, {Title: "B3"}}}

	svc := NewPortfolioService(projects, skills, certs, achievements, posts)

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Len(t, overview.Projects, 2)
	assert.Len(t, overview.Skills, 1)
	assert.Len(t, overview.Certifications, 1)
	assert.Len(t, overview.Achievements, 1)
	assert.Len(t, overview.RecentPosts, 3)

	// the public aggregate only ever sees published content
	assert.True(t, projects.got.PublishedOnly)
	assert.True(t, posts.got.PublishedOnly)
	assert.Equal(t, 3, posts.got.Limit)
}

func TestGetOverviewFailsWholeOnAnySectionError(t *testing.T) {
	boom := errors.New("connection refused")

	svc := NewPortfolioService(
		&fakeProjects{items: []project.Project{{Title: "P1"}}},
		&fakeSkills{err: boom},
		&fakeCertifications{},
		&fakeAchievements{},
		&fakePosts{},
	)

	overview, err := svc.GetOverview(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, overview)
}
