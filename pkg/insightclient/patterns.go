package insightclient

import (
	taskdomain "hypotrophy-backend/internal/task/domain"
)

const (
	minTasksForPattern = 2
	weakThreshold      = 0.6
	strongThreshold    = 0.8
)

// CategoryStats is the completion record of one category.
type CategoryStats struct {
	Total     int
	Completed int
}

// Ratio is the completed share in [0,1]; zero when the category is empty.
func (s CategoryStats) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// Rate is Ratio as a rounded percentage.
func (s CategoryStats) Rate() int {
	return taskdomain.CompletionRate(s.Completed, s.Total)
}

// Patterns summarises which life areas are going well and which are not.
// Weak, Strong and Neglected follow the order of taskdomain.Categories.
type Patterns struct {
	Stats     map[taskdomain.Category]CategoryStats
	Weak      []taskdomain.Category
	Strong    []taskdomain.Category
	Neglected []taskdomain.Category
}

// AnalyzePatterns computes per-category completion over history.
// A category with fewer than two tasks is neglected regardless of completion.
func AnalyzePatterns(history []taskdomain.Task) Patterns {
	p := Patterns{Stats: make(map[taskdomain.Category]CategoryStats)}
	for _, t := range history {
		s := p.Stats[t.Category]
		s.Total++
		if t.Completed {
			s.Completed++
		}
		p.Stats[t.Category] = s
	}

	for _, c := range taskdomain.Categories {
		s := p.Stats[c]
		switch {
		case s.Total < minTasksForPattern:
			p.Neglected = append(p.Neglected, c)
		case s.Ratio() < weakThreshold:
			p.Weak = append(p.Weak, c)
		case s.Ratio() >= strongThreshold:
			p.Strong = append(p.Strong, c)
		}
	}
	return p
}

func (p Patterns) IsWeak(c taskdomain.Category) bool      { return contains(p.Weak, c) }
func (p Patterns) IsStrong(c taskdomain.Category) bool    { return contains(p.Strong, c) }
func (p Patterns) IsNeglected(c taskdomain.Category) bool { return contains(p.Neglected, c) }

func contains(list []taskdomain.Category, c taskdomain.Category) bool {
	for _, item := range list {
		if item == c {
			return true
		}
	}
	return false
}
