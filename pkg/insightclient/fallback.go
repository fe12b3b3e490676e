package insightclient

import (
	"fmt"
	"time"

	insightdomain "hypotrophy-backend/internal/insight/domain"
	taskdomain "hypotrophy-backend/internal/task/domain"
)

const (
	taskInsightTitle     = "Task Added Successfully"
	progressInsightTitle = "Progress Analysis"
	relevantTaskLimit    = 3
	focusNeglectedMin    = 6
	momentumStrongMin    = 2
)

var personalizedTips = map[taskdomain.Category]string{
	taskdomain.CategoryPersonal:      "Try pairing it with a five-minute reflection at the end of the day.",
	taskdomain.CategoryHealth:        "Lay out everything you need the night before so starting takes zero effort.",
	taskdomain.CategoryCareer:        "Block a specific time on your calendar and treat it like a meeting with yourself.",
	taskdomain.CategoryLearning:      "Short daily sessions beat one long cram, so aim for twenty focused minutes.",
	taskdomain.CategoryRelationships: "Put a reminder on your phone so the moment doesn't slip past you.",
	taskdomain.CategoryFinance:       "Write down the exact number you're aiming for, it makes progress easy to see.",
	taskdomain.CategoryCreativity:    "Give yourself permission to make something messy first, polish comes later.",
	taskdomain.CategoryHome:          "Set a timer for fifteen minutes and stop when it rings, you'll be surprised how far you get.",
}

const genericTip = "Break it into the smallest possible first step and do that one today."

// PersonalizedTip returns the canned tip for a category.
func PersonalizedTip(c taskdomain.Category) string {
	if tip, ok := personalizedTips[c]; ok {
		return tip
	}
	return genericTip
}

// FallbackTaskInsight synthesises the reaction to a new task from history alone.
// Branch precedence: weak, strong, neglected, then the generic tip.
func FallbackTaskInsight(task taskdomain.Task, history []taskdomain.Task, now time.Time) insightdomain.Insight {
	patterns := AnalyzePatterns(history)
	stats := patterns.Stats[task.Category]
	tip := PersonalizedTip(task.Category)

	var content string
	switch {
	case patterns.IsWeak(task.Category):
		content = fmt.Sprintf(
			"I see you're giving %s another go with %q, and I love that! You've finished %d of %d %s tasks so far, so this is a great chance to turn things around. %s",
			task.Category, task.Title, stats.Completed, stats.Total, task.Category, tip)
	case patterns.IsStrong(task.Category):
		content = fmt.Sprintf(
			"Ooh, more %s! You're already at %d%% completion there, so %q is going to feel great to check off. Keep that streak going and maybe stretch yourself a little further this time!",
			task.Category, stats.Rate(), task.Title)
	case patterns.IsNeglected(task.Category):
		content = fmt.Sprintf(
			"Yay, %q takes you into %s, an area we haven't explored much together yet! New territory is exciting. %s",
			task.Title, task.Category, tip)
	default:
		content = fmt.Sprintf(
			"Great choice adding %q to your %s goals! You've been building a nice rhythm in this area. %s",
			task.Title, task.Category, tip)
	}

	category := string(task.Category)
	return insightdomain.Insight{
		ID:            newID(),
		Type:          insightdomain.InsightTypeSuggestion,
		Title:         taskInsightTitle,
		Content:       content,
		Category:      &category,
		CreatedAt:     now,
		RelevantTasks: []string{task.ID},
	}
}

// FallbackProgressInsight synthesises a progress analysis from tasks alone.
// The rate tier always leads; pattern advice is appended when one applies.
func FallbackProgressInsight(tasks []taskdomain.Task, now time.Time) insightdomain.Insight {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	total := len(tasks)
	rate := taskdomain.CompletionRate(completed, total)
	patterns := AnalyzePatterns(tasks)

	content := tieredProgressMessage(completed, total, rate)
	if advice := progressAdvice(patterns); advice != "" {
		content += " " + advice
	}

	return insightdomain.Insight{
		ID:            newID(),
		Type:          insightdomain.InsightTypeEncouragement,
		Title:         progressInsightTitle,
		Content:       content,
		CreatedAt:     now,
		RelevantTasks: firstTaskIDs(tasks, relevantTaskLimit),
	}
}

// progressAdvice follows the tier line with the first pattern that applies:
// strong and neglected, weak, two or more strong, six or more neglected.
func progressAdvice(patterns Patterns) string {
	switch {
	case len(patterns.Strong) > 0 && len(patterns.Neglected) > 0:
		strong := patterns.Strong[0]
		neglected := patterns.Neglected[0]
		return fmt.Sprintf(
			"You're doing amazing in %s with %d%% of those tasks done! I bet the habits that work there could help with %s too. How about adding one small %s task this week and bringing that same energy along?",
			strong, patterns.Stats[strong].Rate(), neglected, neglected)
	case len(patterns.Weak) > 0:
		weak := patterns.Weak[0]
		s := patterns.Stats[weak]
		return fmt.Sprintf(
			"%s looks like your biggest growth opportunity right now (%d of %d done). Pick the easiest one there and knock it out first, small wins build momentum!",
			weak, s.Completed, s.Total)
	case len(patterns.Strong) >= momentumStrongMin:
		return fmt.Sprintf(
			"Look at you go! %s and %s are both going really well. That's serious momentum, so maybe it's time to set a slightly bigger goal!",
			patterns.Strong[0], patterns.Strong[1])
	case len(patterns.Neglected) >= focusNeglectedMin:
		return "You're keeping things nice and focused! When you're ready, try adding a task from an area you haven't touched yet, variety keeps things fun."
	}
	return ""
}

// tieredProgressMessage picks wording by completion rate; thresholds are inclusive.
func tieredProgressMessage(completed, total, rate int) string {
	switch {
	case rate >= 80:
		return fmt.Sprintf("Amazing progress! You've completed %d out of %d tasks (%d%% completion rate). You're on fire! 🔥 Keep up this momentum and consider taking on more challenging goals.", completed, total, rate)
	case rate >= 60:
		return fmt.Sprintf("Great work! You've completed %d out of %d tasks (%d%% completion rate). You're making solid progress. Try breaking down larger tasks into smaller, more manageable steps.", completed, total, rate)
	case rate >= 40:
		return fmt.Sprintf("You've completed %d out of %d tasks (%d%% completion rate). Every step counts! Consider focusing on 2-3 high-priority tasks to build momentum.", completed, total, rate)
	default:
		return fmt.Sprintf("You've started %d tasks and completed %d (%d%% completion rate). Remember, progress over perfection! Start with one small task today to build momentum.", total, completed, rate)
	}
}

func firstTaskIDs(tasks []taskdomain.Task, n int) []string {
	ids := []string{}
	for i, t := range tasks {
		if i == n {
			break
		}
		ids = append(ids, t.ID)
	}
	return ids
}

var cannedSuggestions = map[string][]string{
	"personal": {
		"Spend 10 minutes journaling about your goals",
		"Practice gratitude by listing 3 things you're thankful for",
		"Take a 15-minute walk in nature",
	},
	"health": {
		"Drink 8 glasses of water today",
		"Do 20 minutes of stretching or yoga",
		"Get 7-8 hours of quality sleep tonight",
	},
	"career": {
		"Update your LinkedIn profile with recent achievements",
		"Research one new skill relevant to your field",
		"Reach out to a professional contact for networking",
	},
	"learning": {
		"Read for 30 minutes on a topic you're curious about",
		"Watch an educational video or tutorial",
		"Practice a new skill for 20 minutes",
	},
	"relationships": {
		"Send a thoughtful message to a friend or family member",
		"Plan a small gathering or coffee date",
		"Practice active listening in your next conversation",
	},
	"finance": {
		"Review your monthly budget and expenses",
		"Set up automatic savings for a specific goal",
		"Research one investment or financial planning topic",
	},
	"creativity": {
		"Spend 30 minutes on a creative hobby",
		"Try a new artistic technique or medium",
		"Share your creative work with others",
	},
	"home": {
		"Organize one small area of your living space",
		"Declutter 10 items you no longer need",
		"Add a small plant or decoration to brighten your space",
	},
}

var genericSuggestions = []string{
	"Set a specific, achievable goal for today",
	"Break down a larger goal into smaller steps",
	"Reflect on what you learned this week",
}

// FallbackSuggestions returns the canned ideas for category, or generic ones.
func FallbackSuggestions(category string) []string {
	list, ok := cannedSuggestions[category]
	if !ok {
		list = genericSuggestions
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
