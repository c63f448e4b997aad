package repository

import (
	"errors"
	"fmt"
	"log"

	"rtnsite/models"

	"gorm.io/gorm"
)

// FeedbackRepository defines the interface for persisting article feedback
// votes. Persistence is best-effort backing for the in-memory ledger; the
// ledger alone enforces the one-vote-per-session rule at request time.
type FeedbackRepository interface {
	SaveVote(vote *models.FeedbackVote) error
	HasVoted(sessionID string, articleKey string) (bool, error)
	GetCounts(articleKey string) (*models.VoteCounts, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// SaveVote inserts a vote row. The unique index on (session_id, article_key)
// rejects a replayed vote even if the in-memory ledger was bypassed.
func (r *feedbackRepository) SaveVote(vote *models.FeedbackVote) error {
	if vote.SessionID == "" || vote.ArticleKey == "" {
		log.Printf("ERROR: [FeedbackRepository] SaveVote: sessionID and articleKey cannot be empty.")
		return errors.New("session ID and article key cannot be empty")
	}

	if err := r.db.Create(vote).Error; err != nil {
		log.Printf("ERROR: [FeedbackRepository] Failed to save vote for article '%s' (session '%s'): %v", vote.ArticleKey, vote.SessionID, err)
		return fmt.Errorf("failed to save vote for article '%s': %w", vote.ArticleKey, err)
	}

	log.Printf("INFO: [FeedbackRepository] Saved '%s' vote for article '%s' (session '%s').", vote.Choice, vote.ArticleKey, vote.SessionID)
	return nil
}

// HasVoted reports whether the session already has a persisted vote for the
// article.
func (r *feedbackRepository) HasVoted(sessionID string, articleKey string) (bool, error) {
	if sessionID == "" || articleKey == "" {
		return false, errors.New("session ID and article key cannot be empty")
	}

	var count int64
	err := r.db.Model(&models.FeedbackVote{}).
		Where("session_id = ? AND article_key = ?", sessionID, articleKey).
		Count(&count).Error
	if err != nil {
		log.Printf("ERROR: [FeedbackRepository] Failed to check vote for article '%s' (session '%s'): %v", articleKey, sessionID, err)
		return false, fmt.Errorf("failed to check vote for article '%s': %w", articleKey, err)
	}
	return count > 0, nil
}

// GetCounts returns the persisted helpful/unhelpful tallies for an article.
// An article with no votes yields zero counts, not an error.
func (r *feedbackRepository) GetCounts(articleKey string) (*models.VoteCounts, error) {
	if articleKey == "" {
		return nil, errors.New("article key cannot be empty")
	}

	var helpful, unhelpful int64
	if err := r.db.Model(&models.FeedbackVote{}).
		Where("article_key = ? AND choice = ?", articleKey, models.VoteHelpful).
		Count(&helpful).Error; err != nil {
		log.Printf("ERROR: [FeedbackRepository] Failed to count helpful votes for article '%s': %v", articleKey, err)
		return nil, fmt.Errorf("failed to count votes for article '%s': %w", articleKey, err)
	}
	if err := r.db.Model(&models.FeedbackVote{}).
		Where("article_key = ? AND choice = ?", articleKey, models.VoteUnhelpful).
		Count(&unhelpful).Error; err != nil {
		log.Printf("ERROR: [FeedbackRepository] Failed to count unhelpful votes for article '%s': %v", articleKey, err)
		return nil, fmt.Errorf("failed to count votes for article '%s': %w", articleKey, err)
	}

	return &models.VoteCounts{Helpful: int(helpful), Unhelpful: int(unhelpful)}, nil
}
