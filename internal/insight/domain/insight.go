package domain

import "time"

// InsightType classifies a message from Biscuit
type InsightType string

const (
	InsightTypeSuggestion    InsightType = "suggestion"
	InsightTypeAnalysis      InsightType = "analysis"
	InsightTypeEncouragement InsightType = "encouragement"
	InsightTypeWarning       InsightType = "warning"
)

// Insight is a piece of generated (or locally synthesised) companion text.
// RelevantTasks is advisory; the ids are not checked against stored tasks.
// It is always serialised, as an empty list when there are none.
type Insight struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	Type          InsightType `json:"type" gorm:"index;not null"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	Category      *string     `json:"category,omitempty"`
	CreatedAt     time.Time   `json:"createdAt" gorm:"index"`
	RelevantTasks []string    `json:"relevantTasks" gorm:"serializer:json"`
}

const WelcomeInsightID = "welcome"

// Welcome is shown before the first task exists.
func Welcome(now time.Time) Insight {
	return Insight{
		ID:        WelcomeInsightID,
		Type:      InsightTypeEncouragement,
		Title:     "Welcome to Hypotrophy! 🐹",
		Content:   "Hi! I'm Biscuit, and I'm thrilled you're here! Start by adding your first task or goal, and I'll be right here to cheer you on, celebrate your wins, and help you stay motivated. Let's achieve amazing things together!",
		CreatedAt: now,

		RelevantTasks: []string{},
	}
}
