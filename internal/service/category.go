package service

import (
	"context"
	"strings"

	"blogapi/internal/live"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// CategoryService defines the use cases for post categories.
type CategoryService interface {
	live.Source[model.Category]

	Create(ctx context.Context, in model.CategoryInput) (*model.Category, error)
	// Delete removes the category. Posts keep their category label.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q repository.Query) ([]model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
	feed repository.ChangeFeed
}

// NewCategoryService constructs a new CategoryService.
func NewCategoryService(repo repository.CategoryRepository, feed repository.ChangeFeed) CategoryService {
	return &categoryService{repo: repo, feed: feed}
}

func (s *categoryService) Create(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	c, err := model.NewCategory(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &c)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *categoryService) List(ctx context.Context, q repository.Query) ([]model.Category, error) {
	return s.repo.List(ctx, q)
}

func (s *categoryService) Watch(ctx context.Context, q repository.Query) (<-chan live.Snapshot[model.Category], error) {
	src := live.FeedSource[model.Category]{
		Collection: repository.CollectionCategories,
		Feed:       s.feed,
		List:       s.repo.List,
	}
	return src.Watch(ctx, q)
}
