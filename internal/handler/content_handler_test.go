package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcampus/internal/app/content"
	"mindcampus/internal/app/session"
	"mindcampus/internal/pkg/errs"
)

func TestForumListReturnsSeedPosts(t *testing.T) {
	deps, router := newTestRouter(t)
	signIn(t, deps, session.RoleStudent)

	rec := doJSON(t, router, http.MethodGet, "/api/forum", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Posts []content.ForumPost `json:"posts"`
	}
	decodeData(t, rec, &data)
	assert.Len(t, data.Posts, len(deps.Catalog.SeedForumPosts))
}

func TestForumCreateUsesVisitorName(t *testing.T) {
	deps, router := newTestRouter(t)
	signIn(t, deps, session.RoleStudent)

	rec := doJSON(t, router, http.MethodPost, "/api/forum", map[string]any{
		"title":   "Study group for finals",
		"content": "Anyone want to form one?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Post content.ForumPost `json:"post"`
	}
	decodeData(t, rec, &data)
	assert.Equal(t, "tester", data.Post.Author)
}

func TestForumCreateKeepsGuestsAnonymous(t *testing.T) {
	deps, router := newTestRouter(t)
	_, customErr := deps.Sessions.LoginAsGuest(context.Background())
	require.Nil(t, customErr)

	rec := doJSON(t, router, http.MethodPost, "/api/forum", map[string]any{
		"title":   "Feeling isolated",
		"content": "Hard to talk about this with friends.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Post content.ForumPost `json:"post"`
	}
	decodeData(t, rec, &data)
	assert.Equal(t, content.AnonymousAuthor, data.Post.Author)
}

func TestForumCreateRejectsEmptyPost(t *testing.T) {
	deps, router := newTestRouter(t)
	signIn(t, deps, session.RoleStudent)

	rec := doJSON(t, router, http.MethodPost, "/api/forum", map[string]any{
		"title":   "  ",
		"content": "body",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, errs.ErrPostInvalid, decodeEnvelope(t, rec).Code)
}

func TestMoodCheckInRecordsEntry(t *testing.T) {
	deps, router := newTestRouter(t)
	signIn(t, deps, session.RoleStudent)

	value := deps.Catalog.MoodOptions[0].Value

	rec := doJSON(t, router, http.MethodPost, "/api/mood", map[string]any{
		"value": value,
		"note":  "long week",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	entries := deps.Moods.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, value, entries[0].Value)
	assert.Equal(t, "long week", entries[0].Note)
}

func TestMoodCheckInRejectsValueOffScale(t *testing.T) {
	deps, router := newTestRouter(t)
	signIn(t, deps, session.RoleStudent)

	rec := doJSON(t, router, http.MethodPost, "/api/mood", map[string]any{
		"value": 42,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, errs.ErrMoodInvalid, decodeEnvelope(t, rec).Code)
	assert.Empty(t, deps.Moods.Entries())
}
