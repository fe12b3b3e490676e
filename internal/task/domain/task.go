package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Category is one of the fixed life areas a task or goal belongs to
type Category string

const (
	CategoryPersonal      Category = "personal"
	CategoryHealth        Category = "health"
	CategoryCareer        Category = "career"
	CategoryLearning      Category = "learning"
	CategoryRelationships Category = "relationships"
	CategoryFinance       Category = "finance"
	CategoryCreativity    Category = "creativity"
	CategoryHome          Category = "home"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryPersonal,
	CategoryHealth,
	CategoryCareer,
	CategoryLearning,
	CategoryRelationships,
	CategoryFinance,
	CategoryCreativity,
	CategoryHome,
}

// Task represents a to-do item created by the user
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description *string    `json:"description,omitempty"`
	Completed   bool       `json:"completed" gorm:"index;default:false"`
	Category    Category   `json:"category" gorm:"index;default:personal"`
	Priority    Priority   `json:"priority" gorm:"default:medium"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	AIInsight   *string    `json:"aiInsight,omitempty" gorm:"column:ai_insight"`
	Deleted     bool       `json:"deleted,omitempty" gorm:"default:false"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

// SetCompleted flips the completion flag and keeps CompletedAt in step with it.
func (t *Task) SetCompleted(completed bool, now time.Time) {
	if completed && !t.Completed {
		t.CompletedAt = &now
	}
	if !completed {
		t.CompletedAt = nil
	}
	t.Completed = completed
}

// ParseCategory maps free input onto the enumeration, defaulting to personal.
func ParseCategory(c string) Category {
	for _, known := range Categories {
		if string(known) == c {
			return known
		}
	}
	return CategoryPersonal
}

// IsCategory reports whether c is one of the fixed categories.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if string(known) == c {
			return true
		}
	}
	return false
}

func ParsePriority(p string) Priority {
	switch p {
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// CompletionRate returns the completed share of tasks as a rounded percentage.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}
