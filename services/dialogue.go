package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fluentwork/models"
)

// managerSystemPrompt frames every generation request: the model plays a
// neutral manager in a 1:1, keeping replies short and workplace-casual.
const managerSystemPrompt = `You are a professional, neutral manager in a 1:1 meeting with your team member.

Guidelines:
- Keep responses brief (1-2 sentences maximum)
- Ask natural follow-up questions based on what the user shares
- Be supportive but professional
- If the user mentions delays or blockers, ask about impact or solutions
- If the user is vague, ask for clarification
- Don't be overly enthusiastic or dramatic
- Use casual professional language (like real workplace conversations)

Remember: You're helping an employee practice workplace communication, so respond as a real manager would.`

const wrapUpInstruction = "Wrap up the conversation naturally in 1 sentence. " +
	"Thank them or say something like 'Thanks for the update' or 'Keep me posted'."

// GenerationRequest carries everything the dialogue generator needs for one
// manager turn. UserMessage is the latest user utterance, possibly annotated
// with a surprise-element instruction by the engine; History already
// contains the corresponding USER turn (unannotated).
type GenerationRequest struct {
	Scenario    *models.Scenario
	History     []models.Message
	UserMessage string
	ShouldEnd   bool
}

// DialogueGenerator produces the manager's next line for a session turn.
// Any error it returns is recovered by the engine with a fixed fallback
// reply; it never reaches the HTTP client.
type DialogueGenerator interface {
	NextManagerLine(ctx context.Context, req GenerationRequest) (string, error)
}

// GeminiDialogue generates manager replies through the Gemini API
type GeminiDialogue struct {
	gemini *Gemini
}

func NewGeminiDialogue(gemini *Gemini) *GeminiDialogue {
	return &GeminiDialogue{gemini: gemini}
}

// FormatTranscript renders turn history as a readable transcript for prompts
func FormatTranscript(history []models.Message) string {
	var sb strings.Builder
	for _, msg := range history {
		speaker := "Employee"
		if msg.Role == models.RoleManager {
			speaker = "Manager"
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", speaker, msg.Content))
	}
	return sb.String()
}

// buildDialoguePrompt assembles the full generation prompt: persona, scenario
// context, the conversation so far (excluding the turn being answered, which
// is presented separately so annotations stay out of the stored history),
// and the optional wrap-up instruction.
func buildDialoguePrompt(req GenerationRequest) string {
	history := req.History
	if n := len(history); n > 0 && history[n-1].Role == models.RoleUser {
		history = history[:n-1]
	}

	var sb strings.Builder
	sb.WriteString(managerSystemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Current scenario: %s\nContext: %s\nYour first question was: %s\n\n",
		req.Scenario.PrimaryTopic, req.Scenario.Context, req.Scenario.InitialPrompt))
	sb.WriteString("Conversation so far:\n")
	sb.WriteString(FormatTranscript(history))
	sb.WriteString(fmt.Sprintf("\nThe employee just said: \"%s\"\n", req.UserMessage))
	if req.ShouldEnd {
		sb.WriteString("\n" + wrapUpInstruction + "\n")
	}
	sb.WriteString("\nReply as the manager.")
	return sb.String()
}

func (d *GeminiDialogue) NextManagerLine(ctx context.Context, req GenerationRequest) (string, error) {
	response, err := d.gemini.GenerateText(ctx, buildDialoguePrompt(req))
	if err != nil {
		return "", err
	}
	if response == "" {
		return "", errors.New("empty manager response")
	}
	return response, nil
}

// MockDialogue returns canned manager replies, for offline use and tests
type MockDialogue struct{}

var mockManagerReplies = []string{
	"That sounds good. How's the timeline looking?",
	"I see. Is there anything blocking you?",
	"Understood. What's your plan to move forward?",
	"Makes sense. Do you need any support from me?",
	"Got it. Keep me posted on how it goes.",
	"Thanks for the update. Let me know if anything comes up.",
}

func (MockDialogue) NextManagerLine(_ context.Context, req GenerationRequest) (string, error) {
	exchanges := len(req.History) / 2
	if req.ShouldEnd {
		return mockManagerReplies[len(mockManagerReplies)-1], nil
	}
	if req.Scenario.SurpriseElement != "" && exchanges == 2 {
		return fmt.Sprintf("Hmm, %s. How does that affect things?",
			strings.ToLower(req.Scenario.SurpriseElement)), nil
	}
	idx := exchanges
	if idx >= len(mockManagerReplies) {
		idx = len(mockManagerReplies) - 1
	}
	return mockManagerReplies[idx], nil
}
