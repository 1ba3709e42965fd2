package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapi/internal/lifecycle"
	"blogapi/internal/model"
	"blogapi/internal/repository"
	"blogapi/internal/repository/memory"
	repoMocks "blogapi/internal/repository/mocks"
)

var fixedNow = time.Date(2025, 9, 26, 12, 0, 0, 0, time.UTC)

func newTestPostService(repo repository.PostRepository) *postService {
	return &postService{repo: repo, now: func() time.Time { return fixedNow }}
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         model.PostInput
		email      string
		setupMocks func(mRepo *repoMocks.MockPostRepository)
		wantErrMsg string
		validation bool
	}{
		{
			name:  "happy path",
			in:    model.PostInput{Title: "Hello", Category: "News"},
			email: "ed@example.com",
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Post) bool {
					return p.Title == "Hello" && p.Author == "ed@example.com" && p.Status == lifecycle.Draft
				})).Return(&model.Post{ID: "p1", Title: "Hello"}, nil)
			},
		},
		{
			name:       "validation failure never reaches the store",
			in:         model.PostInput{Title: "Later", Status: lifecycle.Scheduled},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {},
			validation: true,
			wantErrMsg: "scheduledAt: " + lifecycle.ErrScheduleRequired.Error(),
		},
		{
			name: "store error passes through",
			in:   model.PostInput{Title: "Hello"},
			setupMocks: func(mRepo *repoMocks.MockPostRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("permission denied"))
			},
			wantErrMsg: "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPostRepository)
			tt.setupMocks(mRepo)
			s := newTestPostService(mRepo)

			p, err := s.Create(ctx, tt.in, tt.email)

			if tt.wantErrMsg != "" {
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Equal(t, tt.validation, model.IsValidation(err))
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "p1", p.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("sets author and clears schedule", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		status := lifecycle.Published
		mRepo.On("Update", ctx, "p1", mock.MatchedBy(func(pp model.PostPatch) bool {
			return pp.Author != nil && *pp.Author == model.DefaultAuthor && pp.ClearSchedule
		})).Return(&model.Post{ID: "p1", Status: lifecycle.Published}, nil)

		p, err := newTestPostService(mRepo).Update(ctx, "p1", model.PostPatch{Status: &status}, "")

		require.NoError(t, err)
		assert.Equal(t, lifecycle.Published, p.Status)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		_, err := newTestPostService(mRepo).Update(ctx, " ", model.PostPatch{}, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})

	t.Run("scheduled without time is refused", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		status := lifecycle.Scheduled
		_, err := newTestPostService(mRepo).Update(ctx, "p1", model.PostPatch{Status: &status}, "")
		assert.True(t, model.IsValidation(err))
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		mRepo.On("Update", ctx, "gone", mock.Anything).Return(nil, repository.ErrNotFound)

		title := "New"
		_, err := newTestPostService(mRepo).Update(ctx, "gone", model.PostPatch{Title: &title}, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty patch writes nothing", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		current := &model.Post{ID: "p1", Title: "Old", Author: "jane@example.com"}
		mRepo.On("FindByID", ctx, "p1").Return(current, nil).Once()

		p, err := newTestPostService(mRepo).Update(ctx, "p1", model.PostPatch{}, "ed@example.com")

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", p.Author)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		mRepo.AssertExpectations(t)
	})

	t.Run("empty patch on missing post", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		mRepo.On("FindByID", ctx, "gone").Return(nil, repository.ErrNotFound).Once()

		_, err := newTestPostService(mRepo).Update(ctx, "gone", model.PostPatch{}, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockPostRepository)
	mRepo.On("Delete", ctx, "missing").Return(nil)

	s := newTestPostService(mRepo)

	assert.NoError(t, s.Delete(ctx, "missing"))
	assert.ErrorIs(t, s.Delete(ctx, ""), ErrIDRequired)
	mRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	mRepo.AssertExpectations(t)
}

func TestPostService_Visibility(t *testing.T) {
	ctx := context.Background()
	past := fixedNow.Add(-time.Hour)
	future := fixedNow.Add(time.Hour)

	repo := memory.NewPostMemory(nil, func() time.Time { return fixedNow })
	s := newTestPostService(repo)

	mk := func(title, category string, status lifecycle.Status, at *time.Time) string {
		p, err := repo.Create(ctx, &model.Post{Title: title, Category: category, Status: status, ScheduledAt: at})
		require.NoError(t, err)
		return p.ID
	}
	draft := mk("draft", "News", lifecycle.Draft, nil)
	pub := mk("published", "News", lifecycle.Published, nil)
	due := mk("due", "Tech", lifecycle.Scheduled, &past)
	pending := mk("pending", "News", lifecycle.Scheduled, &future)

	visible, err := s.ListVisible(ctx, VisibleFilter{})
	require.NoError(t, err)
	var titles []string
	for _, p := range visible {
		titles = append(titles, p.Title)
	}
	assert.ElementsMatch(t, []string{"published", "due"}, titles)

	news, err := s.ListVisible(ctx, VisibleFilter{Category: "News"})
	require.NoError(t, err)
	require.Len(t, news, 1)
	assert.Equal(t, pub, news[0].ID)

	all, err := s.ListVisible(ctx, VisibleFilter{Category: AllCategories})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = s.GetVisible(ctx, due)
	assert.NoError(t, err)
	_, err = s.GetVisible(ctx, draft)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetVisible(ctx, pending)
	assert.ErrorIs(t, err, ErrNotFound)

	// Status label stays Scheduled after the time passes.
	p, err := s.Get(ctx, due)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.Scheduled, p.Status)
}

func TestPostService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty collection", func(t *testing.T) {
		repo := memory.NewPostMemory(nil, func() time.Time { return fixedNow })
		s := newTestPostService(repo)

		res, err := s.Seed(ctx, "admin@example.com")

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, len(starterPosts), res.AddedCount)

		all, err := repo.List(ctx, repository.Query{})
		require.NoError(t, err)
		for _, p := range all {
			assert.Equal(t, "admin@example.com", p.Author)
		}
	})

	t.Run("already seeded", func(t *testing.T) {
		mRepo := new(repoMocks.MockPostRepository)
		mRepo.On("Count", ctx).Return(3, nil)

		res, err := newTestPostService(mRepo).Seed(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, "Database already seeded", res.Message)
		assert.Zero(t, res.AddedCount)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPostService_Watch(t *testing.T) {
	broker := repository.NewBroker()
	repo := memory.NewPostMemory(broker, func() time.Time { return fixedNow })
	s := &postService{repo: repo, feed: broker, now: func() time.Time { return fixedNow }}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snaps, err := s.Watch(ctx, repository.Query{}.Sort("title", false))
	require.NoError(t, err)

	first := <-snaps
	assert.Empty(t, first.Items)

	_, err = repo.Create(context.Background(), &model.Post{Title: "fresh"})
	require.NoError(t, err)

	select {
	case next := <-snaps:
		require.Len(t, next.Items, 1)
		assert.Equal(t, "fresh", next.Items[0].Title)
	case <-time.After(time.Second):
		t.Fatal("no snapshot after create")
	}
}

// stepClockFrom returns a clock that advances a minute on every call.
func stepClockFrom(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		n++
		return start.Add(time.Duration(n) * time.Minute)
	}
}

func TestPostService_ListVisibleSearch(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPostMemory(nil, stepClockFrom(fixedNow.Add(-24*time.Hour)))
	s := newTestPostService(repo)

	for _, p := range []model.Post{
		{Title: "Needs vs Wants", Excerpt: "Sorting your budget", Category: "Finance", Status: lifecycle.Published},
		{Title: "Morning routine", Excerpt: "Small habits", Category: "Life", Status: lifecycle.Published},
		{Title: "Budget apps", Excerpt: "Tools we like", Category: "Tech", Status: lifecycle.Published},
		{Title: "Budget draft", Excerpt: "unfinished", Category: "Finance", Status: lifecycle.Draft},
		{Title: "Quarterly BUDGET review", Excerpt: "", Category: "Finance", Status: lifecycle.Published},
	} {
		p := p
		_, err := repo.Create(ctx, &p)
		require.NoError(t, err)
	}

	titles := func(posts []model.Post) []string {
		out := make([]string, 0, len(posts))
		for _, p := range posts {
			out = append(out, p.Title)
		}
		return out
	}

	tests := []struct {
		name string
		f    VisibleFilter
		want []string
	}{
		{
			name: "title or excerpt ignoring case, newest first",
			f:    VisibleFilter{Search: "budget"},
			want: []string{"Quarterly BUDGET review", "Budget apps", "Needs vs Wants"},
		},
		{
			name: "combined with category",
			f:    VisibleFilter{Category: "Finance", Search: "Budget"},
			want: []string{"Quarterly BUDGET review", "Needs vs Wants"},
		},
		{
			name: "no match",
			f:    VisibleFilter{Search: "kubernetes"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListVisible(ctx, tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}
