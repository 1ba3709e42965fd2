package model

import (
	"errors"
	"strings"
	"time"

	"blogapi/internal/lifecycle"
)

// DefaultAuthor is used when the acting user has no email.
const DefaultAuthor = "Admin"

// Post is a blog article. This is a pure domain model with no database-specific
// dependencies or tags.
type Post struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Category    string           `json:"category"`
	Excerpt     string           `json:"excerpt"`
	Content     string           `json:"content"`
	Image       string           `json:"image"`
	Status      lifecycle.Status `json:"status"`
	Author      string           `json:"author"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	ScheduledAt *time.Time       `json:"scheduledAt,omitempty"`
}

// PostInput is the accepted shape for post creation.
type PostInput struct {
	Title       string           `json:"title"`
	Category    string           `json:"category"`
	Excerpt     string           `json:"excerpt"`
	Content     string           `json:"content"`
	Image       string           `json:"image"`
	Status      lifecycle.Status `json:"status"`
	ScheduledAt *time.Time       `json:"scheduledAt"`
}

// PostPatch is a partial update. Nil fields are left untouched.
type PostPatch struct {
	Title       *string           `json:"title"`
	Category    *string           `json:"category"`
	Excerpt     *string           `json:"excerpt"`
	Content     *string           `json:"content"`
	Image       *string           `json:"image"`
	Status      *lifecycle.Status `json:"status"`
	ScheduledAt *time.Time        `json:"scheduledAt"`

	// Set by the service, not by clients.
	Author        *string `json:"-"`
	ClearSchedule bool    `json:"-"`
}

// AuthorFor derives the author label from the acting user's email.
func AuthorFor(email string) string {
	if e := strings.TrimSpace(email); e != "" {
		return e
	}
	return DefaultAuthor
}

// NewPost validates in and returns the post to store. Timestamps and id are
// left for the store to assign.
func NewPost(in PostInput, author string, now time.Time) (Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Post{}, invalid("title", "is required")
	}
	status := in.Status
	if status == "" {
		status = lifecycle.Draft
	}
	if err := lifecycle.ValidateSchedule(status, in.ScheduledAt, now); err != nil {
		return Post{}, scheduleError(err)
	}

	p := Post{
		Title:    title,
		Category: strings.TrimSpace(in.Category),
		Excerpt:  in.Excerpt,
		Content:  in.Content,
		Image:    strings.TrimSpace(in.Image),
		Status:   status,
		Author:   AuthorFor(author),
	}
	if status == lifecycle.Scheduled {
		at := in.ScheduledAt.UTC()
		p.ScheduledAt = &at
	}
	return p, nil
}

// Validate checks the patch in isolation. Scheduling requires the publish time
// in the same patch; leaving Scheduled clears any stored time.
func (pp *PostPatch) Validate(now time.Time) error {
	if pp.Title != nil && strings.TrimSpace(*pp.Title) == "" {
		return invalid("title", "is required")
	}
	if pp.Status == nil {
		if pp.ScheduledAt != nil {
			return invalid("scheduledAt", "can only be set together with status Scheduled")
		}
		return nil
	}
	if err := lifecycle.ValidateSchedule(*pp.Status, pp.ScheduledAt, now); err != nil {
		return scheduleError(err)
	}
	if *pp.Status != lifecycle.Scheduled {
		pp.ScheduledAt = nil
		pp.ClearSchedule = true
	}
	return nil
}

// Empty reports whether the patch changes nothing a client can set.
func (pp PostPatch) Empty() bool {
	return pp.Title == nil && pp.Category == nil && pp.Excerpt == nil && pp.Content == nil &&
		pp.Image == nil && pp.Status == nil && pp.ScheduledAt == nil
}

// Apply merges the patch into p. UpdatedAt is the caller's concern.
func (pp PostPatch) Apply(p *Post) {
	if pp.Title != nil {
		p.Title = strings.TrimSpace(*pp.Title)
	}
	if pp.Category != nil {
		p.Category = strings.TrimSpace(*pp.Category)
	}
	if pp.Excerpt != nil {
		p.Excerpt = *pp.Excerpt
	}
	if pp.Content != nil {
		p.Content = *pp.Content
	}
	if pp.Image != nil {
		p.Image = strings.TrimSpace(*pp.Image)
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.ClearSchedule {
		p.ScheduledAt = nil
	}
	if pp.ScheduledAt != nil {
		at := pp.ScheduledAt.UTC()
		p.ScheduledAt = &at
	}
	if pp.Author != nil {
		p.Author = *pp.Author
	}
}

// Lifecycle implements lifecycle.Item.
func (p Post) Lifecycle() (lifecycle.Status, *time.Time) {
	return p.Status, p.ScheduledAt
}

// Visible reports whether the post is public at now.
func (p Post) Visible(now time.Time) bool {
	return lifecycle.Visible(p.Status, p.ScheduledAt, now)
}

// MatchesSearch reports whether term occurs, ignoring case, in the title or
// the excerpt. An empty term matches every post.
func (p Post) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Title), t) || strings.Contains(strings.ToLower(p.Excerpt), t)
}

// Field exposes queryable attributes by their API name.
func (p Post) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "title":
		return p.Title, true
	case "category":
		return p.Category, true
	case "status":
		return string(p.Status), true
	case "author":
		return p.Author, true
	case "createdAt":
		return p.CreatedAt, true
	case "updatedAt":
		return p.UpdatedAt, true
	case "scheduledAt":
		if p.ScheduledAt == nil {
			return nil, true
		}
		return *p.ScheduledAt, true
	}
	return nil, false
}

func scheduleError(err error) error {
	field := "scheduledAt"
	if errors.Is(err, lifecycle.ErrUnknownStatus) {
		field = "status"
	}
	return invalid(field, err.Error())
}
