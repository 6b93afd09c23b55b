package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_subject "github.com/jakefish18/wanikani-parser/internal/mocks/subject"
	"github.com/jakefish18/wanikani-parser/internal/subject"
)

func TestResolver_ResolveOne(t *testing.T) {
	ground := &subject.Radical{ID: 7, Meaning: "Ground"}
	notFound := fmt.Errorf("find radical by meaning Ground: %w", subject.ErrNotFound)

	tests := []struct {
		name          string
		setupMock     func(m *mock_subject.MockRadicalRepository)
		backfillErr   error
		want          *subject.Radical
		wantBackfills int32
		wantErr       error
	}{
		{
			name: "found without backfill",
			setupMock: func(m *mock_subject.MockRadicalRepository) {
				m.EXPECT().FindByMeaning(gomock.Any(), "Ground").Return(ground, nil)
			},
			want:          ground,
			wantBackfills: 0,
		},
		{
			name: "found after one backfill",
			setupMock: func(m *mock_subject.MockRadicalRepository) {
				gomock.InOrder(
					m.EXPECT().FindByMeaning(gomock.Any(), "Ground").Return(nil, notFound),
					m.EXPECT().FindByMeaning(gomock.Any(), "Ground").Return(ground, nil),
				)
			},
			want:          ground,
			wantBackfills: 1,
		},
		{
			name: "still missing after backfill",
			setupMock: func(m *mock_subject.MockRadicalRepository) {
				m.EXPECT().FindByMeaning(gomock.Any(), "Ground").Return(nil, notFound).Times(2)
			},
			wantBackfills: 1,
			wantErr:       ErrRadicalNotFound,
		},
		{
			name: "backfill failure",
			setupMock: func(m *mock_subject.MockRadicalRepository) {
				m.EXPECT().FindByMeaning(gomock.Any(), "Ground").Return(nil, notFound)
			},
			backfillErr:   errors.New("listing unavailable"),
			wantBackfills: 1,
		},
		{
			name: "repository failure does not backfill",
			setupMock: func(m *mock_subject.MockRadicalRepository) {
				m.EXPECT().FindByMeaning(gomock.Any(), "Ground").Return(nil, errors.New("connection lost"))
			},
			wantBackfills: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_subject.NewMockRadicalRepository(ctrl)
			tt.setupMock(repo)

			var backfills int32
			r := New(repo, func(ctx context.Context) error {
				atomic.AddInt32(&backfills, 1)
				return tt.backfillErr
			})

			got, err := r.ResolveOne(context.Background(), "Ground")
			assert.Equal(t, tt.wantBackfills, atomic.LoadInt32(&backfills))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				var notFoundErr *RadicalNotFoundError
				require.True(t, errors.As(err, &notFoundErr))
				assert.Equal(t, "Ground", notFoundErr.Meaning)
			case tt.want != nil:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			default:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrRadicalNotFound)
			}
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_subject.NewMockRadicalRepository(ctrl)
	repo.EXPECT().FindByMeaning(gomock.Any(), "Toe").Return(&subject.Radical{ID: 3}, nil)
	repo.EXPECT().FindByMeaning(gomock.Any(), "Ground").Return(&subject.Radical{ID: 1}, nil)

	r := New(repo, func(ctx context.Context) error {
		t.Fatal("backfill must not run")
		return nil
	})

	got, err := r.Resolve(context.Background(), []string{"Toe", "Ground"})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, got)
}

func TestResolver_Resolve_MissingLabelsShareOneBackfill(t *testing.T) {
	tests := []struct {
		name        string
		groundAfter *subject.Radical
		wantIDs     []int64
		wantMissing string
	}{
		{
			name:        "both discovered by the backfill",
			groundAfter: &subject.Radical{ID: 1, Meaning: "Ground"},
			wantIDs:     []int64{3, 1},
		},
		{
			name:        "one still missing after the backfill",
			wantMissing: "Ground",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_subject.NewMockRadicalRepository(ctrl)
			gomock.InOrder(
				repo.EXPECT().FindByMeaning(gomock.Any(), "Toe").Return(nil, subject.ErrNotFound),
				repo.EXPECT().FindByMeaning(gomock.Any(), "Toe").Return(&subject.Radical{ID: 3, Meaning: "Toe"}, nil),
			)
			groundFirst := repo.EXPECT().FindByMeaning(gomock.Any(), "Ground").Return(nil, subject.ErrNotFound)
			if tt.groundAfter != nil {
				gomock.InOrder(groundFirst, repo.EXPECT().FindByMeaning(gomock.Any(), "Ground").Return(tt.groundAfter, nil))
			} else {
				groundFirst.Times(2)
			}

			var backfills int32
			r := New(repo, func(ctx context.Context) error {
				atomic.AddInt32(&backfills, 1)
				return nil
			})

			got, err := r.Resolve(context.Background(), []string{"Toe", "Ground"})
			assert.Equal(t, int32(1), atomic.LoadInt32(&backfills))
			if tt.wantMissing != "" {
				var notFoundErr *RadicalNotFoundError
				require.True(t, errors.As(err, &notFoundErr))
				assert.Equal(t, tt.wantMissing, notFoundErr.Meaning)
				assert.ErrorIs(t, err, ErrRadicalNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestResolver_ConcurrentLookupsShareBackfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_subject.NewMockRadicalRepository(ctrl)

	var mu sync.Mutex
	backfilled := false
	repo.EXPECT().FindByMeaning(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, meaning string) (*subject.Radical, error) {
			mu.Lock()
			defer mu.Unlock()
			if !backfilled {
				return nil, subject.ErrNotFound
			}
			return &subject.Radical{ID: 1, Meaning: meaning}, nil
		}).AnyTimes()

	var backfills, hooks int32
	release := make(chan struct{})
	r := New(repo, func(ctx context.Context) error {
		atomic.AddInt32(&backfills, 1)
		<-release
		mu.Lock()
		backfilled = true
		mu.Unlock()
		return nil
	}, WithBackfillHook(func() { atomic.AddInt32(&hooks, 1) }))

	const callers = 4
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.ResolveOne(context.Background(), "Ground")
			errs <- err
		}()
	}

	// Let every caller reach the shared backfill before it completes.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&backfills))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hooks))
}
