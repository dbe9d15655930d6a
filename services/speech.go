package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
)

// transcription confidence is a placeholder: the model reports none, so a
// fixed estimate is returned alongside the text
const transcriptionConfidence = 0.85

const transcriptionPrompt = "Transcribe this audio recording of spoken English exactly as said. " +
	"Return only the transcribed text, with no commentary or formatting."

// Transcriber converts recorded speech into text
type Transcriber interface {
	Transcribe(ctx context.Context, audioBase64 string) (string, float64, error)
}

// GeminiTranscriber transcribes audio through the Gemini API
type GeminiTranscriber struct {
	gemini *Gemini
}

func NewGeminiTranscriber(gemini *Gemini) *GeminiTranscriber {
	return &GeminiTranscriber{gemini: gemini}
}

func (t *GeminiTranscriber) Transcribe(ctx context.Context, audioBase64 string) (string, float64, error) {
	audio, err := base64.StdEncoding.DecodeString(audioBase64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid base64 audio: %w", err)
	}
	text, err := t.gemini.GenerateWithAudio(ctx, transcriptionPrompt, audio, "audio/wav")
	if err != nil {
		return "", 0, fmt.Errorf("transcription failed: %w", err)
	}
	if text == "" {
		return "", 0, errors.New("empty transcription")
	}
	return text, transcriptionConfidence, nil
}

// MockTranscriber returns canned transcripts keyed by payload length, for
// offline use and tests.
type MockTranscriber struct{}

var mockTranscripts = []string{
	"I completed the user dashboard this week and started working on the API integration.",
	"The project is delayed by two days because the documentation for the third-party API is incomplete.",
	"I need help with the performance optimization. I've been stuck on it for three days.",
	"Everything is on track. I finished the login feature and it's ready for review.",
	"I'm waiting for the design team to send the final mockups before I can proceed.",
}

func (MockTranscriber) Transcribe(_ context.Context, audioBase64 string) (string, float64, error) {
	return mockTranscripts[len(audioBase64)%len(mockTranscripts)], 0.9, nil
}
