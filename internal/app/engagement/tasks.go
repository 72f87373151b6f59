package engagement

import (
	"math/rand"
	"time"

	"github.com/tableshare/tableshare/internal/domain"
)

// taskCatalog is the full set of visitor actions. Cooldowns gate how
// often a repeatable task counts again; one-shot tasks never repeat.
var taskCatalog = []domain.Task{
	// ── Learn ──────────────────────────────────────────────────────
	{
		ID: "read-fact", Title: "Read a Hunger Fact",
		Description: "Open today's fact card and learn something new.",
		Icon: "📖", Points: 5, Category: domain.CatLearn,
		Cooldown: time.Hour, Repeatable: true,
	},
	{
		ID: "daily-quiz", Title: "Ace the Daily Quiz",
		Description: "Answer a trivia question about food insecurity correctly.",
		Icon: "🧠", Points: 15, Category: domain.CatLearn,
		Cooldown: 24 * time.Hour, Repeatable: true,
	},
	{
		ID: "watch-story", Title: "Watch a Community Story",
		Description: "Watch one story from a neighbor we've served.",
		Icon: "🎬", Points: 10, Category: domain.CatLearn,
		Cooldown: 12 * time.Hour, Repeatable: true,
	},

	// ── Share ──────────────────────────────────────────────────────
	{
		ID: "share-site", Title: "Spread the Word",
		Description: "Share TableShare with a friend or on social media.",
		Icon: "📣", Points: 20, Category: domain.CatShare,
		Cooldown: 24 * time.Hour, Repeatable: true,
	},
	{
		ID: "invite-friend", Title: "Bring a Friend",
		Description: "Invite someone to explore the partner map with you.",
		Icon: "🤝", Points: 25, Category: domain.CatShare,
		Cooldown: 48 * time.Hour, Repeatable: true,
	},

	// ── Volunteer ──────────────────────────────────────────────────
	{
		ID: "explore-map", Title: "Explore the Map",
		Description: "Find a partner organization near you.",
		Icon: "🗺️", Points: 10, Category: domain.CatVolunteer,
		Cooldown: 6 * time.Hour, Repeatable: true,
	},
	{
		ID: "volunteer-signup", Title: "Sign Up to Volunteer",
		Description: "Submit the volunteer form. We'll match you with a partner.",
		Icon: "🙋", Points: 100, Category: domain.CatVolunteer,
		Cooldown: 0, Repeatable: false,
	},
	{
		ID: "first-visit", Title: "Pull Up a Chair",
		Description: "Welcome to TableShare. Thanks for showing up.",
		Icon: "🪑", Points: 10, Category: domain.CatVolunteer,
		Cooldown: 0, Repeatable: false,
	},

	// ── Donate ─────────────────────────────────────────────────────
	{
		ID: "view-impact", Title: "See Your Impact",
		Description: "Check the live donation counter and meals funded.",
		Icon: "💛", Points: 5, Category: domain.CatDonate,
		Cooldown: 3 * time.Hour, Repeatable: true,
	},
	{
		ID: "pledge-meal", Title: "Pledge a Meal",
		Description: "Add a meal pledge to the community counter.",
		Icon: "🍲", Points: 50, Category: domain.CatDonate,
		Cooldown: 24 * time.Hour, Repeatable: true,
	},
}

// Catalog returns a copy of the full task catalog.
func Catalog() []domain.Task {
	out := make([]domain.Task, len(taskCatalog))
	copy(out, taskCatalog)
	return out
}

// pickDailyTasks selects up to perCategory tasks from each category,
// shuffled by the given seed. The selection is presentation only and
// never touches persisted state.
func pickDailyTasks(pool []domain.Task, perCategory int, seed int64) []domain.Task {
	r := rand.New(rand.NewSource(seed))

	// Shuffle a copy
	shuffled := make([]domain.Task, len(pool))
	copy(shuffled, pool)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	counts := make(map[domain.TaskCategory]int)
	var result []domain.Task
	for _, t := range shuffled {
		if counts[t.Category] >= perCategory {
			continue
		}
		counts[t.Category]++
		result = append(result, t)
	}
	return result
}
