package handler

import (
	"context"

	"mindcampus/internal/app/bridge"
	"mindcampus/internal/app/content"
	"mindcampus/internal/app/session"
	"mindcampus/internal/configs"
)

// Asker answers one chat message with exactly one displayable reply string.
// Implemented by the bridge client; tests substitute a stub.
type Asker interface {
	Ask(ctx context.Context, message string) string
}

// AppDeps bundles the collaborators the HTTP handlers operate on.
type AppDeps struct {
	Config     *configs.AppConfig
	Sessions   *session.Store
	Bridge     Asker
	Transcript *bridge.Transcript
	Catalog    *content.Catalog
	Board      *content.Board
	Moods      *content.MoodLog
}
