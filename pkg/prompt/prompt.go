// Package prompt builds the Biscuit persona prompts sent to the text model
// and post-processes suggestion lists out of the model's raw reply.
package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"hypotrophy-backend/internal/task/domain"
)

// SuggestionCount is how many suggestions are requested and kept.
const SuggestionCount = 3

const (
	maxRecentCategories = 10
	maxRecentTitles     = 5
)

const persona = `You are Biscuit, a friendly hamster who helps your friend with personal growth. You're enthusiastic, encouraging, and speak directly to them like a supportive friend. Use "you" and "I" naturally. Never say "the user" and never mention that you're an AI.`

// Progress builds the prompt for a progress analysis over tasks.
func Progress(tasks []domain.Task) string {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	rate := domain.CompletionRate(completed, len(tasks))

	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString("\n\nYour friend's progress:\n")
	sb.WriteString(fmt.Sprintf("- Total goals: %d\n", len(tasks)))
	sb.WriteString(fmt.Sprintf("- Completed: %d\n", completed))
	sb.WriteString(fmt.Sprintf("- Success rate: %d%%\n", rate))
	sb.WriteString(fmt.Sprintf("- Areas they're working on: %s\n", strings.Join(RecentCategories(tasks), ", ")))
	sb.WriteString("\nGive them a personal, encouraging message about their progress. Be specific about what they're doing well and give 2 friendly suggestions for what they could try next. ")
	sb.WriteString("Keep it conversational and warm, like a friend cheering them on. Don't use formal language or structure.")
	return sb.String()
}

// Task builds the prompt reacting to a newly added task.
func Task(task domain.Task, history []domain.Task) string {
	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString(fmt.Sprintf("\n\nYour friend just added: %q (%s, %s priority).\n", task.Title, task.Category, task.Priority))
	if task.Description != nil && *task.Description != "" {
		sb.WriteString(fmt.Sprintf("More details: %s\n", *task.Description))
	}

	recent := history
	if len(recent) > maxRecentTitles {
		recent = recent[:maxRecentTitles]
	}
	if len(recent) > 0 {
		sb.WriteString("\nTheir recent goals:\n")
		for _, t := range recent {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", t.Title, t.Category))
		}
	}

	sb.WriteString("\nGive them a warm, encouraging response. Share why you're excited about this goal, give them 1 practical tip to help them succeed, and show how it connects to their other goals. ")
	sb.WriteString("Be conversational and enthusiastic, no formal structure.")
	return sb.String()
}

// Suggestions builds the prompt asking for task ideas in one category.
func Suggestions(category string, history []domain.Task) string {
	var titles []string
	for _, t := range history {
		if string(t.Category) != category {
			continue
		}
		titles = append(titles, "- "+t.Title)
		if len(titles) == maxRecentTitles {
			break
		}
	}

	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString(fmt.Sprintf("\n\nYour friend is interested in %s.", category))
	if len(titles) > 0 {
		sb.WriteString(fmt.Sprintf(" Their recent %s tasks:\n%s\n", category, strings.Join(titles, "\n")))
	} else {
		sb.WriteString(fmt.Sprintf(" They haven't added any %s tasks yet.\n", category))
	}
	sb.WriteString(fmt.Sprintf("\nSuggest exactly %d specific, actionable tasks for %s that would help them grow. ", SuggestionCount, category))
	sb.WriteString("Make them practical and achievable. Write each one on its own line as a numbered list item.")
	return sb.String()
}

// RecentCategories returns the distinct categories of the first ten tasks, in order.
func RecentCategories(tasks []domain.Task) []string {
	recent := tasks
	if len(recent) > maxRecentCategories {
		recent = recent[:maxRecentCategories]
	}

	seen := make(map[domain.Category]bool)
	var out []string
	for _, t := range recent {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		out = append(out, string(t.Category))
	}
	return out
}

var listMarker = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

// ParseSuggestions keeps only marker-prefixed lines, strips the marker and caps the result.
func ParseSuggestions(raw string) []string {
	suggestions := []string{}
	for _, line := range strings.Split(raw, "\n") {
		loc := listMarker.FindStringIndex(line)
		if loc == nil {
			continue
		}
		item := strings.TrimSpace(line[loc[1]:])
		item = strings.Trim(item, "*")
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		suggestions = append(suggestions, item)
		if len(suggestions) == SuggestionCount {
			break
		}
	}
	return suggestions
}
