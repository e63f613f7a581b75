/*
Package handler provides HTTP handler functions for the platform's content surface:
motivational quotes, the resource library, counselors, the peer-support forum,
mood check-ins, and the admin analytics snapshot.
*/
package handler

import (
	"net/http"
	"strings"

	"mindcampus/internal/app/session"
	"mindcampus/internal/pkg/errs"
	"mindcampus/internal/pkg/req"
	"mindcampus/internal/pkg/resp"
)

// HandleQuotes returns the motivational quote rotation.
func HandleQuotes(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"quotes": deps.Catalog.Quotes,
		})
	}
}

// HandleResources returns the resource library grouped by category.
func HandleResources(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"categories": deps.Catalog.ResourceCategories,
		})
	}
}

// HandleCounselors returns the counselor profiles with their availability.
func HandleCounselors(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"counselors": deps.Catalog.Counselors,
		})
	}
}

// HandleMoodOptions returns the mood check-in scale.
func HandleMoodOptions(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"options": deps.Catalog.MoodOptions,
		})
	}
}

// HandleAnalytics returns the admin analytics snapshot. Access is limited by
// the route allow-list to admins and counselors.
func HandleAnalytics(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, deps.Catalog.Analytics)
	}
}

// HandleForumList returns the forum board, newest post first.
func HandleForumList(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"posts": deps.Board.Posts(),
		})
	}
}

type ForumPostInput struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// HandleForumCreate adds a post to the board. The author name honors the
// visitor's anonymity preference.
func HandleForumCreate(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ForumPostInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Title = strings.TrimSpace(input.Title)
		input.Content = strings.TrimSpace(input.Content)
		if input.Title == "" || input.Content == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrPostInvalid))
			return
		}

		author := ""
		if identity := deps.Sessions.Current(); identity != nil && !identity.IsAnonymous {
			if identity.Preferences == nil || identity.Preferences.AnonymityLevel != session.AnonymityFull {
				author = identity.Name
			}
		}

		post := deps.Board.Add(input.Title, input.Content, author, input.Category, input.Tags)

		resp.RespondSuccess(w, r, map[string]any{
			"post": post,
		})
	}
}

type MoodInput struct {
	Value int    `json:"value"`
	Note  string `json:"note,omitempty"`
}

// HandleMoodCheckIn records a mood check-in for the current visitor session.
func HandleMoodCheckIn(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input MoodInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !deps.Catalog.ValidMood(input.Value) {
			resp.RespondError(w, r, errs.NewError(errs.ErrMoodInvalid))
			return
		}

		entry := deps.Moods.Record(input.Value, strings.TrimSpace(input.Note))

		resp.RespondSuccess(w, r, map[string]any{
			"entry": entry,
		})
	}
}
