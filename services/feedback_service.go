package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"rtnsite/models"
	"rtnsite/repository"
)

// ErrAlreadyVoted is returned when a session tries to vote twice on the same
// article. The caller may ignore it or surface a no-op message; no state
// changes.
var ErrAlreadyVoted = errors.New("session has already voted on this article")

// ErrInvalidVoteChoice is returned for a choice outside helpful/unhelpful.
var ErrInvalidVoteChoice = errors.New("invalid vote choice")

// FeedbackService applies at most one helpful/unhelpful vote per article per
// session. The in-memory ledger refuses a second vote on its own, even if
// the UI control was bypassed or a call replayed; the persisted unique index
// backs that up across restarts.
type FeedbackService interface {
	RecordVote(sessionID string, key models.ArticleKey, choice models.VoteChoice) (*models.VoteCounts, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	votes        map[string]map[models.ArticleKey]models.VoteChoice // sessionID -> article -> choice
	mu           sync.Mutex
}

// NewFeedbackService creates a new instance of FeedbackService.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		votes:        make(map[string]map[models.ArticleKey]models.VoteChoice),
	}
}

// RecordVote records the session's vote for the article. The first call per
// (session, article) is accepted and increments the matching counter exactly
// once; any later call is rejected with ErrAlreadyVoted.
func (s *feedbackService) RecordVote(sessionID string, key models.ArticleKey, choice models.VoteChoice) (*models.VoteCounts, error) {
	if sessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}
	if !choice.Valid() {
		log.Printf("WARN: [FeedbackService] Rejected vote with invalid choice '%s' for article '%s'.", choice, key)
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidVoteChoice, choice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessionVotes, exists := s.votes[sessionID]
	if !exists {
		sessionVotes = make(map[models.ArticleKey]models.VoteChoice)
		s.votes[sessionID] = sessionVotes
	}
	if _, voted := sessionVotes[key]; voted {
		log.Printf("INFO: [FeedbackService] Session '%s' already voted on '%s'; rejecting repeat vote.", sessionID, key)
		return nil, ErrAlreadyVoted
	}

	// The ledger is per-process; the store remembers votes across restarts.
	persisted, err := s.feedbackRepo.HasVoted(sessionID, key.String())
	if err != nil {
		errMsg := fmt.Sprintf("failed to check persisted vote for article '%s'", key)
		log.Printf("ERROR: [FeedbackService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	if persisted {
		sessionVotes[key] = choice // remember locally so the next repeat skips the store
		log.Printf("INFO: [FeedbackService] Session '%s' has a persisted vote on '%s'; rejecting repeat vote.", sessionID, key)
		return nil, ErrAlreadyVoted
	}

	vote := &models.FeedbackVote{
		SessionID:  sessionID,
		ArticleKey: key.String(),
		Choice:     choice,
	}
	if err := s.feedbackRepo.SaveVote(vote); err != nil {
		errMsg := fmt.Sprintf("failed to save vote for article '%s'", key)
		log.Printf("ERROR: [FeedbackService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	sessionVotes[key] = choice

	counts, err := s.feedbackRepo.GetCounts(key.String())
	if err != nil {
		errMsg := fmt.Sprintf("failed to fetch vote counts for article '%s'", key)
		log.Printf("ERROR: [FeedbackService] %s: %v", errMsg, err)
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	log.Printf("INFO: [FeedbackService] Recorded '%s' vote for '%s' (session '%s'). Totals: %d helpful / %d unhelpful.",
		choice, key, sessionID, counts.Helpful, counts.Unhelpful)
	return counts, nil
}
