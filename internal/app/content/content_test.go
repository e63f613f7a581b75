package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogIsPopulated(t *testing.T) {
	catalog := NewCatalog()

	assert.NotEmpty(t, catalog.Quotes)
	assert.NotEmpty(t, catalog.ResourceCategories)
	assert.NotEmpty(t, catalog.Counselors)
	assert.NotEmpty(t, catalog.SeedForumPosts)
	assert.NotEmpty(t, catalog.MoodOptions)
	assert.NotEmpty(t, catalog.AIResponses.Greeting)
	assert.NotZero(t, catalog.Analytics.UserStats.TotalUsers)
}

func TestCounselorByID(t *testing.T) {
	catalog := NewCatalog()

	counselor, ok := catalog.CounselorByID(catalog.Counselors[0].ID)
	require.True(t, ok)
	assert.Equal(t, catalog.Counselors[0].Name, counselor.Name)

	_, ok = catalog.CounselorByID(999)
	assert.False(t, ok)
}

func TestCounselorHasSlot(t *testing.T) {
	counselor := Counselor{
		Availability: map[string][]string{
			"2026-09-01": {"10:00", "14:00"},
		},
	}

	assert.True(t, counselor.HasSlot("2026-09-01", "10:00"))
	assert.False(t, counselor.HasSlot("2026-09-01", "09:00"))
	assert.False(t, counselor.HasSlot("2026-09-02", "10:00"))
}

func TestValidMood(t *testing.T) {
	catalog := NewCatalog()

	for _, option := range catalog.MoodOptions {
		assert.True(t, catalog.ValidMood(option.Value), "value %d", option.Value)
	}
	assert.False(t, catalog.ValidMood(0))
	assert.False(t, catalog.ValidMood(42))
}

func TestBoardSeedsAndPrependsNewPosts(t *testing.T) {
	seed := NewCatalog().SeedForumPosts
	board := NewBoard(seed)

	require.Len(t, board.Posts(), len(seed))

	post := board.Add("Exam stress", "Anyone else overwhelmed?", "maya", "academic", []string{"stress"})
	assert.Equal(t, "maya", post.Author)
	assert.NotEmpty(t, post.Posted)

	posts := board.Posts()
	require.Len(t, posts, len(seed)+1)
	assert.Equal(t, post.ID, posts[0].ID, "newest post must list first")
}

func TestBoardAssignsIncreasingIDsAboveSeed(t *testing.T) {
	seed := []ForumPost{{ID: 7, Title: "seed"}}
	board := NewBoard(seed)

	first := board.Add("a", "b", "x", "general", nil)
	second := board.Add("c", "d", "y", "general", nil)

	assert.Equal(t, 8, first.ID)
	assert.Equal(t, 9, second.ID)
}

func TestBoardBlankAuthorFallsBackToAnonymous(t *testing.T) {
	board := NewBoard(nil)

	post := board.Add("t", "c", "", "general", nil)
	assert.Equal(t, AnonymousAuthor, post.Author)
}

func TestMoodLogRecordsInOrder(t *testing.T) {
	log := NewMoodLog()

	log.Record(2, "rough day")
	log.Record(4, "")

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].Value)
	assert.Equal(t, "rough day", entries[0].Note)
	assert.Equal(t, 4, entries[1].Value)
	assert.False(t, entries[1].At.IsZero())
}
