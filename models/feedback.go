package models

import "time"

// VoteChoice is the direction of an article feedback vote.
type VoteChoice string

const (
	VoteHelpful   VoteChoice = "helpful"
	VoteUnhelpful VoteChoice = "unhelpful"
)

// Valid reports whether the choice is one of the two accepted values.
func (c VoteChoice) Valid() bool {
	return c == VoteHelpful || c == VoteUnhelpful
}

// FeedbackVote is a persisted helpful/unhelpful vote. At most one row exists
// per (session, article); the unique index backs up the in-memory ledger's
// single-vote guarantee.
type FeedbackVote struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	SessionID  string     `gorm:"index:idx_session_article,unique;not null" json:"session_id"`
	ArticleKey string     `gorm:"index:idx_session_article,unique;not null" json:"article_key"` // "category/slug" route form
	Choice     VoteChoice `gorm:"not null" json:"choice"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName specifies the table name for the FeedbackVote model.
func (FeedbackVote) TableName() string {
	return "feedback_votes"
}

// VoteCounts is the aggregate feedback tally for one article.
type VoteCounts struct {
	Helpful   int `json:"helpful"`
	Unhelpful int `json:"unhelpful"`
}
