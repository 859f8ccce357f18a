package scoring

import (
	"fmt"
	"testing"
	"time"

	condition "auction-engine/internal/conditionService"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/stretchr/testify/require"
)

func setupScoring(t *testing.T, k, s, n, tt int) (*Service, *repository.MemoryRepo) {
	t.Helper()

	repo := repository.NewMemoryRepo()
	conditions := condition.NewService(repo)
	require.NoError(t, conditions.Seed([]model.Condition{
		{Name: model.ConditionK, Description: "seller limit", Value: k},
		{Name: model.ConditionM, Description: "category limit", Value: 3},
		{Name: model.ConditionS, Description: "max score", Value: s},
		{Name: model.ConditionN, Description: "rating window", Value: n},
		{Name: model.ConditionT, Description: "perfect count", Value: tt},
		{Name: model.ConditionL, Description: "edit distance", Value: 10},
	}))
	return NewService(repo, conditions), repo
}

// rate inserts a rating directly, aged so that higher seq means more recent.
func rate(t *testing.T, repo *repository.MemoryRepo, userID string, seq, score int) {
	t.Helper()
	require.NoError(t, repo.AddRating(model.Rating{
		RatingID:  fmt.Sprintf("%s-r%d", userID, seq),
		ProductID: fmt.Sprintf("p%d", seq),
		RaterID:   "rater",
		RatedID:   userID,
		Score:     score,
		CreatedAt: time.Now().UTC().Add(time.Duration(seq) * time.Second),
	}))
}

func TestScoreOf(t *testing.T) {
	t.Parallel()

	t.Run("no_ratings_scores_max", func(t *testing.T) {
		t.Parallel()

		svc, _ := setupScoring(t, 10, 10, 5, 3)
		score, err := svc.ScoreOf("newcomer")
		require.NoError(t, err)
		require.Equal(t, 10.0, score)
	})

	t.Run("mean_of_recent_ratings", func(t *testing.T) {
		t.Parallel()

		svc, repo := setupScoring(t, 10, 10, 5, 3)
		for seq, score := range []int{6, 7, 8} {
			rate(t, repo, "seller", seq, score)
		}

		score, err := svc.ScoreOf("seller")
		require.NoError(t, err)
		require.Equal(t, 7.0, score)
	})

	t.Run("window_keeps_only_n_most_recent", func(t *testing.T) {
		t.Parallel()

		// Two old 1s pushed out of a window of 3 by three 10s.
		svc, repo := setupScoring(t, 10, 10, 3, 99)
		for seq, score := range []int{1, 1, 10, 10, 10} {
			rate(t, repo, "seller", seq, score)
		}

		score, err := svc.ScoreOf("seller")
		require.NoError(t, err)
		require.Equal(t, 10.0, score)
	})

	t.Run("missing_condition_is_an_error", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		svc := NewService(repo, condition.NewService(repo))
		_, err := svc.ScoreOf("anyone")
		require.Error(t, err)
	})
}

func TestLimitOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		k, s, n   int
		threshold int
		scores    []int
		wantLimit int
	}{
		{name: "no_ratings_full_limit", k: 10, s: 10, n: 5, threshold: 3, scores: nil, wantLimit: 10},
		{name: "scaled_and_rounded", k: 10, s: 10, n: 5, threshold: 3, scores: []int{6, 7, 8}, wantLimit: 7},
		{name: "rounding_up", k: 10, s: 10, n: 5, threshold: 3, scores: []int{5, 6}, wantLimit: 6}, // mean 5.5 scales to 5.5
		{name: "floor_of_one", k: 10, s: 10, n: 5, threshold: 3, scores: []int{1, 1, 1}, wantLimit: 1},
		{name: "perfect_window_grants_full_limit", k: 10, s: 10, n: 5, threshold: 3, scores: []int{10, 10, 10, 1, 1}, wantLimit: 10},
		{name: "two_perfect_below_threshold", k: 10, s: 10, n: 5, threshold: 3, scores: []int{10, 10, 1, 1, 1}, wantLimit: 5}, // mean 4.6
		{name: "small_k", k: 2, s: 10, n: 5, threshold: 3, scores: []int{3, 3}, wantLimit: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := setupScoring(t, tc.k, tc.s, tc.n, tc.threshold)
			for seq, score := range tc.scores {
				rate(t, repo, "user", seq, score)
			}

			limit, err := svc.LimitOf("user")
			require.NoError(t, err)
			require.Equal(t, tc.wantLimit, limit)
		})
	}
}
