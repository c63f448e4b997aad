package repository

import (
	"testing"

	"rtnsite/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.FeedbackVote{}))
	return db
}

func TestFeedbackRepository(t *testing.T) {
	t.Run("SaveVote then GetCounts tallies by choice", func(t *testing.T) {
		repo := NewFeedbackRepository(newTestDB(t))

		assert.NoError(t, repo.SaveVote(&models.FeedbackVote{SessionID: "s1", ArticleKey: "seo/keyword-research", Choice: models.VoteHelpful}))
		assert.NoError(t, repo.SaveVote(&models.FeedbackVote{SessionID: "s2", ArticleKey: "seo/keyword-research", Choice: models.VoteHelpful}))
		assert.NoError(t, repo.SaveVote(&models.FeedbackVote{SessionID: "s3", ArticleKey: "seo/keyword-research", Choice: models.VoteUnhelpful}))

		counts, err := repo.GetCounts("seo/keyword-research")
		assert.NoError(t, err)
		assert.Equal(t, 2, counts.Helpful)
		assert.Equal(t, 1, counts.Unhelpful)
	})

	t.Run("HasVoted reflects persisted votes per session", func(t *testing.T) {
		repo := NewFeedbackRepository(newTestDB(t))

		voted, err := repo.HasVoted("s1", "seo/keyword-research")
		assert.NoError(t, err)
		assert.False(t, voted)

		assert.NoError(t, repo.SaveVote(&models.FeedbackVote{SessionID: "s1", ArticleKey: "seo/keyword-research", Choice: models.VoteHelpful}))

		voted, err = repo.HasVoted("s1", "seo/keyword-research")
		assert.NoError(t, err)
		assert.True(t, voted)

		voted, err = repo.HasVoted("s2", "seo/keyword-research")
		assert.NoError(t, err)
		assert.False(t, voted)
	})

	t.Run("Unique index rejects a duplicate vote row", func(t *testing.T) {
		repo := NewFeedbackRepository(newTestDB(t))

		assert.NoError(t, repo.SaveVote(&models.FeedbackVote{SessionID: "s1", ArticleKey: "seo/keyword-research", Choice: models.VoteHelpful}))
		err := repo.SaveVote(&models.FeedbackVote{SessionID: "s1", ArticleKey: "seo/keyword-research", Choice: models.VoteUnhelpful})
		assert.Error(t, err)
	})

	t.Run("GetCounts on an unvoted article is zero, not an error", func(t *testing.T) {
		repo := NewFeedbackRepository(newTestDB(t))

		counts, err := repo.GetCounts("web-design/nothing-yet")
		assert.NoError(t, err)
		assert.Equal(t, 0, counts.Helpful)
		assert.Equal(t, 0, counts.Unhelpful)
	})

	t.Run("Empty identifiers are rejected", func(t *testing.T) {
		repo := NewFeedbackRepository(newTestDB(t))

		assert.Error(t, repo.SaveVote(&models.FeedbackVote{SessionID: "", ArticleKey: "a/b"}))
		_, err := repo.HasVoted("", "a/b")
		assert.Error(t, err)
		_, err = repo.GetCounts("")
		assert.Error(t, err)
	})
}
