package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"blogapi/internal/lifecycle"
	"blogapi/internal/live"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// SeedResult reports what Seed did.
type SeedResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	AddedCount int    `json:"addedCount"`
}

// AllCategories is the category label that disables category filtering.
const AllCategories = "All"

// VisibleFilter narrows ListVisible. Zero fields match everything.
type VisibleFilter struct {
	Category string
	// Search is matched against title and excerpt, ignoring case.
	Search string
}

// PostService defines the use cases for blog posts. It is also the live
// source for post subscriptions.
type PostService interface {
	live.Source[model.Post]

	// Create validates the input and stores a new post authored by actorEmail.
	Create(ctx context.Context, in model.PostInput, actorEmail string) (*model.Post, error)

	// Update merges the patch into the post and records actorEmail as author.
	Update(ctx context.Context, id string, patch model.PostPatch, actorEmail string) (*model.Post, error)

	// Delete removes the post. Deleting a missing post succeeds.
	Delete(ctx context.Context, id string) error

	// Get returns any post by ID.
	Get(ctx context.Context, id string) (*model.Post, error)

	// List runs a one-shot query over all posts.
	List(ctx context.Context, q repository.Query) ([]model.Post, error)

	// GetVisible returns the post only if it is publicly visible now.
	GetVisible(ctx context.Context, id string) (*model.Post, error)

	// ListVisible returns publicly visible posts, newest first, narrowed by
	// category and search term.
	ListVisible(ctx context.Context, f VisibleFilter) ([]model.Post, error)

	// Seed inserts the starter posts when the collection is empty.
	Seed(ctx context.Context, actorEmail string) (SeedResult, error)
}

type postService struct {
	repo repository.PostRepository
	feed repository.ChangeFeed
	now  func() time.Time
}

// NewPostService constructs a new PostService. feed may be nil when live
// subscriptions are not needed.
func NewPostService(repo repository.PostRepository, feed repository.ChangeFeed) PostService {
	return &postService{repo: repo, feed: feed, now: time.Now}
}

func (s *postService) Create(ctx context.Context, in model.PostInput, actorEmail string) (*model.Post, error) {
	p, err := model.NewPost(in, actorEmail, s.now())
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &p)
}

func (s *postService) Update(ctx context.Context, id string, patch model.PostPatch, actorEmail string) (*model.Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrIDRequired
	}
	if err := patch.Validate(s.now()); err != nil {
		return nil, err
	}
	// Nothing to change: no write, author and updatedAt stay as they are.
	if patch.Empty() {
		return s.repo.FindByID(ctx, id)
	}
	author := model.AuthorFor(actorEmail)
	patch.Author = &author
	return s.repo.Update(ctx, id, patch)
}

func (s *postService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrIDRequired
	}
	return s.repo.FindByID(ctx, id)
}

func (s *postService) List(ctx context.Context, q repository.Query) ([]model.Post, error) {
	return s.repo.List(ctx, q)
}

func (s *postService) GetVisible(ctx context.Context, id string) (*model.Post, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Visible(s.now()) {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *postService) ListVisible(ctx context.Context, f VisibleFilter) ([]model.Post, error) {
	q := repository.Query{}.Where("status", repository.OpNeq, string(lifecycle.Draft))
	if c := strings.TrimSpace(f.Category); c != "" && c != AllCategories {
		q = q.Where("category", repository.OpEq, c)
	}
	q = q.Sort("createdAt", true)

	posts, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	visible := lifecycle.FilterVisible(posts, s.now())
	if f.Search == "" {
		return visible, nil
	}
	out := visible[:0]
	for _, p := range visible {
		if p.MatchesSearch(f.Search) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Watch implements live.Source.
func (s *postService) Watch(ctx context.Context, q repository.Query) (<-chan live.Snapshot[model.Post], error) {
	src := live.FeedSource[model.Post]{
		Collection: repository.CollectionPosts,
		Feed:       s.feed,
		List:       s.repo.List,
	}
	return src.Watch(ctx, q)
}

func (s *postService) Seed(ctx context.Context, actorEmail string) (SeedResult, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("count posts: %w", err)
	}
	if n > 0 {
		return SeedResult{Success: true, Message: "Database already seeded"}, nil
	}

	now := s.now()
	added := 0
	for _, in := range starterPosts {
		p, err := model.NewPost(in, actorEmail, now)
		if err != nil {
			return SeedResult{AddedCount: added}, err
		}
		if _, err := s.repo.Create(ctx, &p); err != nil {
			return SeedResult{AddedCount: added}, fmt.Errorf("seed %q: %w", p.Title, err)
		}
		added++
	}
	return SeedResult{
		Success:    true,
		Message:    fmt.Sprintf("Successfully added %d blog posts", added),
		AddedCount: added,
	}, nil
}
