package portfolio

import (
	"portfolio-backend/internal/domains/achievement"
	"portfolio-backend/internal/domains/blog"
	"portfolio-backend/internal/domains/certification"
	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/domains/skill"
)

// Overview is everything the public landing page needs in one response.
type Overview struct {
	Projects       []project.Project             `json:"projects"`
	Skills         []skill.Skill                 `json:"skills"`
	Certifications []certification.Certification `json:"certifications"`
	Achievements   []achievement.Achievement     `json:"achievements"`
	RecentPosts    []blog.Post                   `json:"recent_posts"`
}
