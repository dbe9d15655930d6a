package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"fluentwork/models"
)

const (
	defaultScore         = 7.0
	defaultImprovement   = "Practice being more specific when describing your work and challenges."
	defaultFeedbackTip   = "Great practice session! Focus on being more specific when describing your work and any blockers you encounter."
	feedbackCoachPersona = "You are an expert English communication coach for workplace scenarios."
)

// PerformanceScorer evaluates the user's side of a finished conversation.
// Errors are recovered by AnalyzeConversation with DefaultFeedback.
type PerformanceScorer interface {
	Score(ctx context.Context, userMessages []string, scenario *models.Scenario) (models.Feedback, error)
}

// DefaultFeedback is returned for empty transcripts and scorer failures
func DefaultFeedback() models.Feedback {
	return models.Feedback{
		ClarityScore:      defaultScore,
		FluencyScore:      defaultScore,
		ProfessionalScore: defaultScore,
		ImprovementTip:    defaultFeedbackTip,
	}
}

// AnalyzeConversation runs the scorer over the session's USER turns. Zero
// user turns and collaborator failures both yield the fixed default feedback;
// neither is an error from the caller's perspective.
func AnalyzeConversation(ctx context.Context, scorer PerformanceScorer, userMessages []string, scenario *models.Scenario) models.Feedback {
	if len(userMessages) == 0 {
		return DefaultFeedback()
	}
	feedback, err := scorer.Score(ctx, userMessages, scenario)
	if err != nil {
		log.Printf("feedback analysis failed: %v", err)
		return DefaultFeedback()
	}
	return feedback
}

// GeminiScorer scores conversations through the Gemini API
type GeminiScorer struct {
	gemini *Gemini
}

func NewGeminiScorer(gemini *Gemini) *GeminiScorer {
	return &GeminiScorer{gemini: gemini}
}

func buildAnalysisPrompt(userMessages []string, scenario *models.Scenario) string {
	var conversation strings.Builder
	for _, msg := range userMessages {
		conversation.WriteString("User: " + msg + "\n")
	}

	return fmt.Sprintf(`%s

Analyze this workplace 1:1 conversation for a non-native English speaker practicing professional communication.

Scenario: %s
Context: %s

Conversation:
%s
Evaluate on three dimensions (score 0-10):

1. CLARITY (0-10): Did they clearly communicate their main point? Were they specific or vague?
2. FLUENCY (0-10): Natural flow, minimal filler words, coherent sentences
3. PROFESSIONAL (0-10): Workplace-appropriate language, professional tone

Provide scores and identify THE MOST IMPORTANT improvement area. Return ONLY ONE specific, actionable tip.

Format your response as:
CLARITY: [score]
FLUENCY: [score]
PROFESSIONAL: [score]
ONE_IMPROVEMENT: [one specific actionable tip in 1-2 sentences]`,
		feedbackCoachPersona, scenario.PrimaryTopic, scenario.Context, conversation.String())
}

func (s *GeminiScorer) Score(ctx context.Context, userMessages []string, scenario *models.Scenario) (models.Feedback, error) {
	analysis, err := s.gemini.GenerateText(ctx, buildAnalysisPrompt(userMessages, scenario))
	if err != nil {
		return models.Feedback{}, err
	}
	if analysis == "" {
		return models.Feedback{}, errors.New("empty analysis response")
	}
	return ParseAnalysis(analysis), nil
}

var improvementPattern = regexp.MustCompile(`(?is)ONE_IMPROVEMENT:\s*(.+?)(?:\n\n|\z)`)

// ParseAnalysis extracts the scored feedback from the model's free-form
// analysis text. Missing or unparseable fields fall back to their defaults
// rather than failing the whole analysis.
func ParseAnalysis(text string) models.Feedback {
	return models.Feedback{
		ClarityScore:      ExtractScore(text, "CLARITY"),
		FluencyScore:      ExtractScore(text, "FLUENCY"),
		ProfessionalScore: ExtractScore(text, "PROFESSIONAL"),
		ImprovementTip:    ExtractImprovement(text),
		DetailedAnalysis:  text,
	}
}

// ExtractScore pulls the numeric score for one labelled field, clamped to
// [0,10]. A missing or malformed field defaults to 7.0.
func ExtractScore(text, label string) float64 {
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `:\s*(\d+(?:\.\d+)?)`)
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return defaultScore
	}
	score, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return defaultScore
	}
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// ExtractImprovement pulls the single improvement tip, defaulting to a fixed
// generic tip when the label is missing.
func ExtractImprovement(text string) string {
	match := improvementPattern.FindStringSubmatch(text)
	if match == nil {
		return defaultImprovement
	}
	return strings.TrimSpace(match[1])
}

// MockScorer produces heuristic feedback from message statistics, for
// offline use and tests.
type MockScorer struct{}

func (MockScorer) Score(_ context.Context, userMessages []string, _ *models.Scenario) (models.Feedback, error) {
	if len(userMessages) == 0 {
		return DefaultFeedback(), nil
	}

	totalWords := 0
	for _, msg := range userMessages {
		totalWords += len(strings.Fields(msg))
	}
	avgWords := float64(totalWords) / float64(len(userMessages))

	// Message length as a proxy for detail, message count for flow
	clarity := clampScore(avgWords/2, 5, 10)
	fluency := clampScore(6+float64(len(userMessages))*0.5, 0, 10)
	professional := 8.0

	var tip string
	switch {
	case clarity < fluency && clarity < professional:
		tip = "Try to be more specific and provide more details when explaining your work or challenges."
	case fluency < professional:
		tip = "Practice speaking more naturally. Take your time and use complete sentences."
	default:
		tip = "Great job! Consider using more professional phrases like 'I'm working on' instead of 'I'm doing'."
	}

	return models.Feedback{
		ClarityScore:      clarity,
		FluencyScore:      fluency,
		ProfessionalScore: professional,
		ImprovementTip:    tip,
	}, nil
}

func clampScore(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
