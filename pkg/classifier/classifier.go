// Package classifier turns a free-text task description into a title,
// an optional description, a category and a priority using keyword tables.
package classifier

import (
	"regexp"
	"strings"

	"hypotrophy-backend/internal/task/domain"
)

// Result is the structured form of a free-text task.
type Result struct {
	Title       string          `json:"title"`
	Description *string         `json:"description,omitempty"`
	Category    domain.Category `json:"category"`
	Priority    domain.Priority `json:"priority"`
}

type categoryRule struct {
	category domain.Category
	pattern  *regexp.Regexp
}

// First match wins, so order matters.
var categoryRules = []categoryRule{
	{domain.CategoryHealth, regexp.MustCompile(`\b(workout|work out|exercis\w*|gym|run|running|jog\w*|yoga|meditat\w*|diet|eat\w*|water|sleep|doctor|dentist|health\w*|fitness|walk\w*|stretch\w*|vitamins?|weight|steps)\b`)},
	{domain.CategoryCareer, regexp.MustCompile(`\b(work|job|meeting|project|career|boss|clients?|resume|cv|interview|promotion|presentation|emails?|office|colleagues?|linkedin|report)\b`)},
	{domain.CategoryLearning, regexp.MustCompile(`\b(learn\w*|study\w*|studies|read\w*|books?|course|class\w*|tutorial|practice|language|research|homework|exam|lesson\w*)\b`)},
	{domain.CategoryFinance, regexp.MustCompile(`\b(budget\w*|money|sav(e|ing|ings)|invest\w*|bank|bills?|pay\w*|tax\w*|expenses?|debt|loan|financ\w*|salary)\b`)},
	{domain.CategoryRelationships, regexp.MustCompile(`\b(friends?|family|mom|mum|dad|partner|date|call|birthday|wife|husband|kids|parents?|relationship|visit\w*|coffee)\b`)},
	{domain.CategoryHome, regexp.MustCompile(`\b(clean\w*|laundry|kitchen|house|home|organi[sz]e|declutter|garden\w*|repair|fix|groceries|grocery|cook\w*|dishes|furniture|vacuum)\b`)},
	{domain.CategoryCreativity, regexp.MustCompile(`\b(writ\w*|draw\w*|paint\w*|music|guitar|piano|art|design\w*|craft\w*|photo\w*|creative|poem|sing\w*|blog)\b`)},
}

var (
	highPriority = regexp.MustCompile(`\b(urgent|asap|important|critical|deadline|emergency|today|now|immediately)\b`)
	lowPriority  = regexp.MustCompile(`\b(someday|eventually|maybe|optional)\b|when i have time`)

	sentenceBreak = regexp.MustCompile(`[.!?]`)
)

// Classify never fails; unrecognised input lands in personal/medium.
func Classify(text string) Result {
	title, description := SplitTitle(text)
	return Result{
		Title:       title,
		Description: description,
		Category:    DetectCategory(text),
		Priority:    DetectPriority(text),
	}
}

func DetectCategory(text string) domain.Category {
	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(lower) {
			return rule.category
		}
	}
	return domain.CategoryPersonal
}

func DetectPriority(text string) domain.Priority {
	lower := strings.ToLower(text)
	switch {
	case highPriority.MatchString(lower):
		return domain.PriorityHigh
	case lowPriority.MatchString(lower):
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
}

// SplitTitle uses the first sentence as the title and joins the rest with ". ".
func SplitTitle(text string) (string, *string) {
	var sentences []string
	for _, part := range sentenceBreak.Split(text, -1) {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}

	switch len(sentences) {
	case 0:
		return strings.TrimSpace(text), nil
	case 1:
		return sentences[0], nil
	}

	rest := strings.Join(sentences[1:], ". ")
	return sentences[0], &rest
}
