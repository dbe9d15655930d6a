package services

import "errors"

// Client-visible failure taxonomy. Collaborator (Gemini) failures are not
// part of it: they are always recovered locally with deterministic fallbacks.
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionInactive     = errors.New("session is no longer active")
	ErrNoScenarioAvailable = errors.New("no scenario available for complexity level")
)
