package scoring

import (
	"fmt"
	"math"

	condition "auction-engine/internal/conditionService"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
)

// Service derives a user's reputation score and effective listing/bidding
// limit from their rating history. Nothing is cached: every call re-reads
// the ratings, so a freshly recorded rating is visible immediately.
type Service struct {
	ratings    repository.RatingStore
	conditions *condition.Service
}

// NewService creates a new scoring service.
func NewService(ratings repository.RatingStore, conditions *condition.Service) *Service {
	return &Service{ratings: ratings, conditions: conditions}
}

// ScoreOf computes the user's reputation score: the arithmetic mean of the
// N most recent ratings received, clamped to [1, S]. A user with no ratings
// gets the maximum score S.
func (s *Service) ScoreOf(userID string) (float64, error) {
	sMax, err := s.conditions.S()
	if err != nil {
		return 0, err
	}

	window, err := s.recentRatings(userID)
	if err != nil {
		return 0, err
	}
	if len(window) == 0 {
		return float64(sMax), nil
	}

	sum := 0
	for _, r := range window {
		sum += r.Score
	}
	mean := float64(sum) / float64(len(window))

	return clamp(mean, 1, float64(sMax)), nil
}

// LimitOf computes the user's ceiling on simultaneous active listings and
// bids: K scaled by score/S and rounded, floored at 1. A user whose recent
// window holds at least T perfect ratings keeps the full K regardless of
// the mean.
func (s *Service) LimitOf(userID string) (int, error) {
	k, err := s.conditions.K()
	if err != nil {
		return 0, err
	}
	sMax, err := s.conditions.S()
	if err != nil {
		return 0, err
	}
	t, err := s.conditions.T()
	if err != nil {
		return 0, err
	}

	window, err := s.recentRatings(userID)
	if err != nil {
		return 0, err
	}
	if len(window) == 0 {
		// New users score S, so they get the full limit.
		return k, nil
	}

	perfect := 0
	sum := 0
	for _, r := range window {
		sum += r.Score
		if r.Score == sMax {
			perfect++
		}
	}
	if perfect >= t {
		return k, nil
	}

	score := clamp(float64(sum)/float64(len(window)), 1, float64(sMax))
	limit := int(math.Round(float64(k) * score / float64(sMax)))
	if limit < 1 {
		limit = 1
	}
	if limit > k {
		limit = k
	}
	return limit, nil
}

// recentRatings returns the N most recent ratings received by the user.
func (s *Service) recentRatings(userID string) ([]model.Rating, error) {
	n, err := s.conditions.N()
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratings.GetRatingsByRatedUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get ratings for user %s: %w", userID, err)
	}
	if len(ratings) > n {
		ratings = ratings[:n]
	}
	return ratings, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
