package services

import (
	"math/rand"

	"fluentwork/models"
)

// scenarioCatalog is the fixed set of conversation templates, loaded once at
// startup. Easy scenarios are plain status updates, medium ones involve a
// blocker or ambiguity, hard ones require careful communication under
// pressure and all carry a surprise element.
var scenarioCatalog = []models.Scenario{
	{
		ID:              "easy_1",
		PrimaryTopic:    "weekly_progress",
		ComplexityLevel: models.ComplexityEasy,
		Context:         "You had a productive week and completed your assigned tasks.",
		InitialPrompt:   "Hi! How was your week? What did you work on?",
		HelpfulPhrases: []string{
			"I completed...",
			"I'm currently working on...",
			"This week I focused on...",
			"Everything is on track.",
		},
	},
	{
		ID:              "easy_2",
		PrimaryTopic:    "current_tasks",
		ComplexityLevel: models.ComplexityEasy,
		Context:         "You're working on updating the user dashboard with new analytics.",
		InitialPrompt:   "Good morning! What are you currently working on?",
		HelpfulPhrases: []string{
			"I'm working on...",
			"I'm updating the...",
			"I'm making progress on...",
			"I should finish this by...",
		},
	},
	{
		ID:              "easy_3",
		PrimaryTopic:    "completed_task",
		ComplexityLevel: models.ComplexityEasy,
		Context:         "You just finished implementing the login page and it's ready for review.",
		InitialPrompt:   "Hi! I saw you closed the ticket. How did it go?",
		HelpfulPhrases: []string{
			"I finished...",
			"It's ready for review",
			"I implemented...",
			"It went smoothly",
		},
	},
	{
		ID:              "medium_1",
		PrimaryTopic:    "minor_delay",
		ComplexityLevel: models.ComplexityMedium,
		SurpriseElement: "Manager asks about impact on timeline",
		Context:         "Your task is delayed by 2 days because of API documentation issues.",
		InitialPrompt:   "Hey, how's the API integration going?",
		HelpfulPhrases: []string{
			"I'm running into...",
			"There's a delay because...",
			"It will take an extra... days",
			"I estimate I'll finish by...",
		},
	},
	{
		ID:              "medium_2",
		PrimaryTopic:    "need_clarification",
		ComplexityLevel: models.ComplexityMedium,
		SurpriseElement: "Manager asks you to propose a solution",
		Context:         "You're unclear about the requirements for the new feature.",
		InitialPrompt:   "I wanted to check in on the new feature. How's it coming along?",
		HelpfulPhrases: []string{
			"I need clarification on...",
			"I'm not sure about...",
			"Could we discuss...",
			"I have a question about...",
		},
	},
	{
		ID:              "medium_3",
		PrimaryTopic:    "cross_team_dependency",
		ComplexityLevel: models.ComplexityMedium,
		SurpriseElement: "Manager asks when you followed up with other team",
		Context:         "You're waiting on the design team to finalize mockups.",
		InitialPrompt:   "What's the status on the homepage redesign?",
		HelpfulPhrases: []string{
			"I'm waiting for...",
			"I'm blocked by...",
			"Once I receive... I can proceed",
			"I followed up with... team",
		},
	},
	{
		ID:              "medium_4",
		PrimaryTopic:    "technical_blocker",
		ComplexityLevel: models.ComplexityMedium,
		SurpriseElement: "Manager asks if you need additional resources",
		Context:         "You're stuck on a performance issue with database queries.",
		InitialPrompt:   "How's the database optimization task going?",
		HelpfulPhrases: []string{
			"I'm stuck on...",
			"I'm facing a challenge with...",
			"I could use some help with...",
			"I've tried... but...",
		},
	},
	{
		ID:              "medium_5",
		PrimaryTopic:    "changing_requirements",
		ComplexityLevel: models.ComplexityMedium,
		SurpriseElement: "Manager asks how this affects other features",
		Context:         "The requirements changed mid-sprint and you need to revise your approach.",
		InitialPrompt:   "How's the reports feature? I know the requirements were updated.",
		HelpfulPhrases: []string{
			"The requirements changed...",
			"I need to revise...",
			"This means I'll have to...",
			"I'm adjusting my approach",
		},
	},
	{
		ID:              "hard_1",
		PrimaryTopic:    "significant_delay",
		ComplexityLevel: models.ComplexityHard,
		SurpriseElement: "Manager reveals client is waiting on this deliverable",
		Context:         "Your feature is 5 days behind schedule due to unexpected technical challenges.",
		InitialPrompt:   "I need an update on the payment integration. The deadline is approaching.",
		HelpfulPhrases: []string{
			"Unfortunately, we're behind schedule because...",
			"I've encountered unexpected...",
			"My revised estimate is...",
			"Here's what I'm doing to catch up...",
		},
	},
	{
		ID:              "hard_2",
		PrimaryTopic:    "scope_creep",
		ComplexityLevel: models.ComplexityHard,
		SurpriseElement: "Manager suggests adding even more features",
		Context:         "Stakeholders keep requesting additional features beyond the original scope.",
		InitialPrompt:   "How's the customer portal coming? I heard marketing had some ideas.",
		HelpfulPhrases: []string{
			"We're getting requests for...",
			"This is beyond the original scope",
			"If we add this, it will impact...",
			"I suggest we prioritize...",
		},
	},
	{
		ID:              "hard_3",
		PrimaryTopic:    "need_help",
		ComplexityLevel: models.ComplexityHard,
		SurpriseElement: "Manager asks why you didn't mention this earlier",
		Context:         "You've been struggling with a complex algorithm for 3 days and need senior help.",
		InitialPrompt:   "How's the search algorithm refactoring going? You've been on it for a while.",
		HelpfulPhrases: []string{
			"I need assistance with...",
			"I've been struggling with...",
			"Could someone review...",
			"I'd appreciate guidance on...",
		},
	},
	{
		ID:              "hard_4",
		PrimaryTopic:    "conflicting_priorities",
		ComplexityLevel: models.ComplexityHard,
		SurpriseElement: "Manager adds another urgent task",
		Context:         "You have three high-priority tasks and can't complete them all on time.",
		InitialPrompt:   "Quick check-in. What are you focusing on this week?",
		HelpfulPhrases: []string{
			"I'm currently juggling...",
			"I need help prioritizing...",
			"Which should I focus on first?",
			"I can't complete all of these by...",
		},
	},
	{
		ID:              "hard_5",
		PrimaryTopic:    "quality_vs_speed",
		ComplexityLevel: models.ComplexityHard,
		SurpriseElement: "Manager emphasizes quality importance after you mention rushing",
		Context:         "You can meet the deadline but the code quality will suffer, or take 2 more days for proper implementation.",
		InitialPrompt:   "The demo is in 3 days. Is everything ready?",
		HelpfulPhrases: []string{
			"I can meet the deadline, but...",
			"There's a trade-off between...",
			"If we want quality, we need...",
			"I recommend we...",
		},
	},
	{
		ID:              "hard_6",
		PrimaryTopic:    "bug_in_production",
		ComplexityLevel: models.ComplexityHard,
		SurpriseElement: "Manager asks about prevention measures",
		Context:         "A bug you introduced is affecting production users, and you're working on a hotfix.",
		InitialPrompt:   "I heard there's an issue in production. Can you update me?",
		HelpfulPhrases: []string{
			"There's a bug affecting...",
			"I'm working on a hotfix",
			"The issue is caused by...",
			"I'll have it fixed by...",
		},
	},
}

// ScenariosByComplexity returns all catalog scenarios matching a complexity level
func ScenariosByComplexity(level models.ComplexityLevel) []models.Scenario {
	var out []models.Scenario
	for _, s := range scenarioCatalog {
		if s.ComplexityLevel == level {
			out = append(out, s)
		}
	}
	return out
}

// GetScenarioByID looks up a specific scenario in the catalog
func GetScenarioByID(id string) (models.Scenario, bool) {
	for _, s := range scenarioCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return models.Scenario{}, false
}

// complexityForSessions maps a completed-session count to a difficulty tier:
// the first 2 sessions are easy, sessions 3-5 are medium, and from the 6th
// session on every 3rd one is hard with medium in between.
func complexityForSessions(totalSessions int) models.ComplexityLevel {
	switch {
	case totalSessions < 2:
		return models.ComplexityEasy
	case totalSessions < 5:
		return models.ComplexityMedium
	case totalSessions%3 == 0:
		return models.ComplexityHard
	default:
		return models.ComplexityMedium
	}
}

// NextComplexity is the pure tier function used after a session completes:
// it is evaluated against the post-increment completed-session count so the
// displayed level always reflects post-session state.
func NextComplexity(totalSessions int) models.ComplexityLevel {
	return complexityForSessions(totalSessions)
}

// SelectScenario picks a scenario for the user's next session, uniformly at
// random within the tier derived from their already-completed session count.
// The catalog guarantees each tier is non-empty, but an empty tier is still
// reported as ErrNoScenarioAvailable rather than panicking.
func SelectScenario(progress models.UserProgress) (models.Scenario, error) {
	level := complexityForSessions(progress.TotalSessions)
	available := ScenariosByComplexity(level)
	if len(available) == 0 {
		return models.Scenario{}, ErrNoScenarioAvailable
	}
	return available[rand.Intn(len(available))], nil
}
