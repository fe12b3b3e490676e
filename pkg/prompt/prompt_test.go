package prompt

import (
	"reflect"
	"strings"
	"testing"

	"hypotrophy-backend/internal/task/domain"
)

func TestParseSuggestions_NumberedList(t *testing.T) {
	got := ParseSuggestions("1. foo\n2. bar\n3. baz\nExtra prose")
	want := []string{"foo", "bar", "baz"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSuggestions() = %q, want %q", got, want)
	}
}

func TestParseSuggestions_CapsAtThree(t *testing.T) {
	raw := "Here are some ideas:\n- walk\n- stretch\n\n* hydrate\n• sleep early"
	got := ParseSuggestions(raw)
	want := []string{"walk", "stretch", "hydrate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSuggestions() = %q, want %q", got, want)
	}
}

func TestParseSuggestions_BoldItemsAndEmptyMarkers(t *testing.T) {
	got := ParseSuggestions("1.\n2) **Plan a budget**\nno marker here")
	want := []string{"Plan a budget"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSuggestions() = %q, want %q", got, want)
	}
}

func TestParseSuggestions_NoMarkers(t *testing.T) {
	got := ParseSuggestions("Just some prose without a list.")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestRecentCategories_DistinctAndBounded(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, domain.Task{Category: domain.CategoryHealth})
	}
	tasks[3].Category = domain.CategoryCareer
	// the eleventh task is outside the window
	tasks = append(tasks, domain.Task{Category: domain.CategoryHome})

	got := RecentCategories(tasks)
	want := []string{"health", "career"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RecentCategories() = %q, want %q", got, want)
	}
}

func TestProgress_EmbedsStats(t *testing.T) {
	tasks := []domain.Task{
		{Title: "a", Category: domain.CategoryHealth, Completed: true},
		{Title: "b", Category: domain.CategoryHealth, Completed: true},
		{Title: "c", Category: domain.CategoryFinance},
	}
	p := Progress(tasks)

	for _, want := range []string{"Biscuit", "Total goals: 3", "Completed: 2", "Success rate: 67%", "health, finance"} {
		if !strings.Contains(p, want) {
			t.Errorf("progress prompt missing %q:\n%s", want, p)
		}
	}
	if !strings.Contains(p, "never mention that you're an AI") {
		t.Error("persona instructions missing")
	}
}

func TestTask_LimitsHistory(t *testing.T) {
	desc := "three times a week"
	task := domain.Task{Title: "Start running", Description: &desc, Category: domain.CategoryHealth, Priority: domain.PriorityHigh}

	var history []domain.Task
	for _, title := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		history = append(history, domain.Task{Title: title, Category: domain.CategoryHome})
	}
	p := Task(task, history)

	if !strings.Contains(p, `"Start running" (health, high priority)`) {
		t.Errorf("missing task line:\n%s", p)
	}
	if !strings.Contains(p, "More details: three times a week") {
		t.Error("missing description")
	}
	if !strings.Contains(p, "- h5 (home)") || strings.Contains(p, "- h6") {
		t.Errorf("history should be capped at five titles:\n%s", p)
	}
}

func TestSuggestions_FiltersByCategory(t *testing.T) {
	history := []domain.Task{
		{Title: "Drink water", Category: domain.CategoryHealth},
		{Title: "File taxes", Category: domain.CategoryFinance},
	}
	p := Suggestions("health", history)
	if !strings.Contains(p, "- Drink water") || strings.Contains(p, "File taxes") {
		t.Errorf("unexpected history filtering:\n%s", p)
	}
	if !strings.Contains(p, "exactly 3") {
		t.Error("prompt should request exactly 3 suggestions")
	}
}
