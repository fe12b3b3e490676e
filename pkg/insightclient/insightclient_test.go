package insightclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	insightdomain "hypotrophy-backend/internal/insight/domain"
	"hypotrophy-backend/internal/insight/dto"
	taskdomain "hypotrophy-backend/internal/task/domain"
)

// ─── Helpers ─────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// tasksIn builds total tasks in category c, the first done of which are completed.
func tasksIn(c taskdomain.Category, total, done int) []taskdomain.Task {
	var out []taskdomain.Task
	for i := 0; i < total; i++ {
		out = append(out, taskdomain.Task{
			ID:        fmt.Sprintf("%s-%d", c, i),
			Title:     fmt.Sprintf("%s task %d", c, i),
			Category:  c,
			Completed: i < done,
		})
	}
	return out
}

func concat(groups ...[]taskdomain.Task) []taskdomain.Task {
	var out []taskdomain.Task
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// ─── AnalyzePatterns ─────────────────────────────────────────────────────────

func TestAnalyzePatterns_Classification(t *testing.T) {
	history := concat(
		tasksIn(taskdomain.CategoryHealth, 2, 1),   // 50% -> weak
		tasksIn(taskdomain.CategoryCareer, 5, 4),   // 80% -> strong
		tasksIn(taskdomain.CategoryLearning, 3, 2), // 67% -> neither
		tasksIn(taskdomain.CategoryFinance, 1, 1),  // one task -> neglected
	)

	p := AnalyzePatterns(history)

	if !reflect.DeepEqual(p.Weak, []taskdomain.Category{taskdomain.CategoryHealth}) {
		t.Errorf("Weak = %v", p.Weak)
	}
	if !reflect.DeepEqual(p.Strong, []taskdomain.Category{taskdomain.CategoryCareer}) {
		t.Errorf("Strong = %v", p.Strong)
	}
	want := []taskdomain.Category{
		taskdomain.CategoryPersonal,
		taskdomain.CategoryRelationships,
		taskdomain.CategoryFinance,
		taskdomain.CategoryCreativity,
		taskdomain.CategoryHome,
	}
	if !reflect.DeepEqual(p.Neglected, want) {
		t.Errorf("Neglected = %v, want %v", p.Neglected, want)
	}
	if p.IsWeak(taskdomain.CategoryLearning) || p.IsStrong(taskdomain.CategoryLearning) || p.IsNeglected(taskdomain.CategoryLearning) {
		t.Error("learning should be in no set")
	}
}

func TestAnalyzePatterns_ThresholdsInclusive(t *testing.T) {
	p := AnalyzePatterns(concat(
		tasksIn(taskdomain.CategoryHealth, 5, 3), // exactly 60% is not weak
		tasksIn(taskdomain.CategoryCareer, 5, 4), // exactly 80% is strong
	))
	if p.IsWeak(taskdomain.CategoryHealth) {
		t.Error("60% should not be weak")
	}
	if !p.IsStrong(taskdomain.CategoryCareer) {
		t.Error("80% should be strong")
	}
}

func TestAnalyzePatterns_CompletedSingleTaskIsNeglected(t *testing.T) {
	p := AnalyzePatterns(tasksIn(taskdomain.CategoryHome, 1, 1))
	if !p.IsNeglected(taskdomain.CategoryHome) || p.IsStrong(taskdomain.CategoryHome) {
		t.Errorf("single completed task should be neglected only: %+v", p)
	}
	if len(p.Neglected) != len(taskdomain.Categories) {
		t.Errorf("all categories should be neglected, got %d", len(p.Neglected))
	}
}

// ─── FallbackTaskInsight ─────────────────────────────────────────────────────

func TestFallbackTaskInsight_Branches(t *testing.T) {
	newTask := taskdomain.Task{ID: "new", Title: "Evening jog", Category: taskdomain.CategoryHealth}

	tests := []struct {
		name    string
		history []taskdomain.Task
		want    string
	}{
		{"weak", tasksIn(taskdomain.CategoryHealth, 2, 1), "another go"},
		{"strong", tasksIn(taskdomain.CategoryHealth, 4, 4), "already at 100% completion"},
		{"neglected", tasksIn(taskdomain.CategoryCareer, 3, 3), "haven't explored much"},
		{"generic", tasksIn(taskdomain.CategoryHealth, 3, 2), "Great choice adding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackTaskInsight(newTask, tt.history, fixedNow)
			if !strings.Contains(got.Content, tt.want) {
				t.Errorf("content %q does not contain %q", got.Content, tt.want)
			}
			if got.Type != insightdomain.InsightTypeSuggestion || got.Title != "Task Added Successfully" {
				t.Errorf("unexpected envelope: %+v", got)
			}
			if got.Category == nil || *got.Category != "health" {
				t.Errorf("Category = %v", got.Category)
			}
			if !reflect.DeepEqual(got.RelevantTasks, []string{"new"}) {
				t.Errorf("RelevantTasks = %v", got.RelevantTasks)
			}
			if !got.CreatedAt.Equal(fixedNow) || got.ID == "" {
				t.Errorf("ID/CreatedAt not set: %+v", got)
			}
		})
	}
}

func TestFallbackTaskInsight_Deterministic(t *testing.T) {
	task := taskdomain.Task{ID: "x", Title: "Budget review", Category: taskdomain.CategoryFinance}
	history := tasksIn(taskdomain.CategoryFinance, 2, 0)

	a := FallbackTaskInsight(task, history, fixedNow)
	b := FallbackTaskInsight(task, history, fixedNow)
	if a.Content != b.Content {
		t.Errorf("content differs for identical history:\n%s\n%s", a.Content, b.Content)
	}
}

// ─── FallbackProgressInsight ─────────────────────────────────────────────────

func TestFallbackProgressInsight_Branches(t *testing.T) {
	var momentum []taskdomain.Task
	momentum = append(momentum, tasksIn(taskdomain.CategoryHealth, 2, 2)...)
	momentum = append(momentum, tasksIn(taskdomain.CategoryCareer, 2, 2)...)
	for _, c := range taskdomain.Categories {
		if c == taskdomain.CategoryHealth || c == taskdomain.CategoryCareer {
			continue
		}
		momentum = append(momentum, tasksIn(c, 3, 2)...)
	}

	tests := []struct {
		name  string
		tasks []taskdomain.Task
		want  string
	}{
		{"strong and neglected", tasksIn(taskdomain.CategoryHealth, 2, 2), "doing amazing in health"},
		{"weak", tasksIn(taskdomain.CategoryHealth, 2, 1), "growth opportunity"},
		{"momentum", momentum, "Look at you go!"},
		{"focus", tasksIn(taskdomain.CategoryHome, 1, 0), "keeping things nice and focused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackProgressInsight(tt.tasks, fixedNow)
			if !strings.Contains(got.Content, tt.want) {
				t.Errorf("content %q does not contain %q", got.Content, tt.want)
			}
			if got.Type != insightdomain.InsightTypeEncouragement || got.Title != "Progress Analysis" {
				t.Errorf("unexpected envelope: %+v", got)
			}
		})
	}
}

func TestFallbackProgressInsight_TierAtEightyPercent(t *testing.T) {
	// 12 of 15 done, no strong or weak area, five neglected areas
	tasks := concat(
		tasksIn(taskdomain.CategoryHealth, 4, 3),
		tasksIn(taskdomain.CategoryCareer, 4, 3),
		tasksIn(taskdomain.CategoryLearning, 4, 3),
		tasksIn(taskdomain.CategoryFinance, 1, 1),
		tasksIn(taskdomain.CategoryRelationships, 1, 1),
		tasksIn(taskdomain.CategoryHome, 1, 1),
	)

	got := FallbackProgressInsight(tasks, fixedNow)
	if !strings.HasPrefix(got.Content, "Amazing progress!") || !strings.Contains(got.Content, "(80% completion rate)") {
		t.Errorf("expected the 80%% tier, got %q", got.Content)
	}
	if !reflect.DeepEqual(got.RelevantTasks, []string{"health-0", "health-1", "health-2"}) {
		t.Errorf("RelevantTasks = %v", got.RelevantTasks)
	}
}

func TestFallbackProgressInsight_TierAtSixtyPercent(t *testing.T) {
	tasks := concat(
		tasksIn(taskdomain.CategoryHealth, 5, 3),
		tasksIn(taskdomain.CategoryCareer, 5, 3),
		tasksIn(taskdomain.CategoryLearning, 5, 3),
	)

	got := FallbackProgressInsight(tasks, fixedNow)
	if !strings.HasPrefix(got.Content, "Great work!") || !strings.Contains(got.Content, "(60% completion rate)") {
		t.Errorf("expected the 60%% tier, got %q", got.Content)
	}
}

func TestFallbackProgressInsight_TierLeadsPatternAdvice(t *testing.T) {
	tests := []struct {
		name   string
		tasks  []taskdomain.Task
		tier   string
		advice string
	}{
		{
			name:   "one strong area at 80%",
			tasks:  tasksIn(taskdomain.CategoryHealth, 5, 4),
			tier:   "Amazing progress! You've completed 4 out of 5 tasks (80% completion rate).",
			advice: "doing amazing in health",
		},
		{
			name: "five single-task areas at 60%",
			tasks: concat(
				tasksIn(taskdomain.CategoryHealth, 1, 1),
				tasksIn(taskdomain.CategoryCareer, 1, 1),
				tasksIn(taskdomain.CategoryLearning, 1, 1),
				tasksIn(taskdomain.CategoryFinance, 1, 0),
				tasksIn(taskdomain.CategoryHome, 1, 0),
			),
			tier:   "Great work! You've completed 3 out of 5 tasks (60% completion rate).",
			advice: "keeping things nice and focused",
		},
		{
			name:   "weak area at 50%",
			tasks:  tasksIn(taskdomain.CategoryCareer, 2, 1),
			tier:   "You've completed 1 out of 2 tasks (50% completion rate).",
			advice: "career looks like your biggest growth opportunity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackProgressInsight(tt.tasks, fixedNow)
			if !strings.HasPrefix(got.Content, tt.tier) {
				t.Errorf("content %q does not start with tier %q", got.Content, tt.tier)
			}
			if !strings.Contains(got.Content, tt.advice) {
				t.Errorf("content %q does not contain advice %q", got.Content, tt.advice)
			}
		})
	}
}

func TestTieredProgressMessage_Boundaries(t *testing.T) {
	tests := []struct {
		rate   int
		prefix string
	}{
		{100, "Amazing progress!"},
		{80, "Amazing progress!"},
		{79, "Great work!"},
		{60, "Great work!"},
		{59, "You've completed"},
		{40, "You've completed"},
		{39, "You've started"},
		{0, "You've started"},
	}
	for _, tt := range tests {
		if got := tieredProgressMessage(1, 1, tt.rate); !strings.HasPrefix(got, tt.prefix) {
			t.Errorf("rate %d: %q does not start with %q", tt.rate, got, tt.prefix)
		}
	}
}

// ─── FallbackSuggestions ─────────────────────────────────────────────────────

func TestFallbackSuggestions(t *testing.T) {
	health := FallbackSuggestions("health")
	if len(health) != 3 || health[0] != "Drink 8 glasses of water today" {
		t.Errorf("health suggestions = %v", health)
	}

	health[0] = "mutated"
	if FallbackSuggestions("health")[0] != "Drink 8 glasses of water today" {
		t.Error("callers must not be able to mutate the canned list")
	}

	if got := FallbackSuggestions("astronomy"); !reflect.DeepEqual(got, genericSuggestions) {
		t.Errorf("unknown category = %v", got)
	}
}

// ─── Client ──────────────────────────────────────────────────────────────────

func newClientWith(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL+"/", srv.Client())
	c.now = func() time.Time { return fixedNow }
	return c
}

func TestClient_ProgressInsightFromAPI(t *testing.T) {
	c := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/ai/insights" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req dto.InsightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Type != "progress" || len(req.Tasks) != 2 {
			t.Errorf("unexpected body %+v", req)
		}
		w.Write([]byte(`{"id":"abc","type":"encouragement","title":"Progress Analysis","content":"You rock!","createdAt":"2026-03-14T08:00:00Z","relevantTasks":["a"]}`))
	})

	got := c.GenerateProgressInsight(context.Background(), tasksIn(taskdomain.CategoryHealth, 2, 1))
	if got.ID != "abc" || got.Content != "You rock!" {
		t.Errorf("unexpected insight %+v", got)
	}
	if !got.CreatedAt.Equal(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", got.CreatedAt)
	}
}

func TestClient_ProgressInsightFallsBackOnServerError(t *testing.T) {
	c := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"AI service not configured"}`))
	})

	tasks := tasksIn(taskdomain.CategoryHealth, 2, 1)
	got := c.GenerateProgressInsight(context.Background(), tasks)
	want := FallbackProgressInsight(tasks, fixedNow)
	if got.Content != want.Content {
		t.Errorf("content = %q, want fallback %q", got.Content, want.Content)
	}
}

func TestClient_TaskInsightFallsBackOnEmptyContent(t *testing.T) {
	c := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"abc","type":"suggestion","content":"  "}`))
	})

	task := taskdomain.Task{ID: "t1", Title: "Call grandma", Category: taskdomain.CategoryRelationships}
	got := c.GenerateTaskInsight(context.Background(), task, nil)
	if got.Title != "Task Added Successfully" || !strings.Contains(got.Content, "Call grandma") {
		t.Errorf("expected fallback insight, got %+v", got)
	}
}

func TestClient_TaskInsightFillsMissingFields(t *testing.T) {
	c := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"suggestion","title":"Task Added Successfully","content":"Nice one!"}`))
	})

	got := c.GenerateTaskInsight(context.Background(), taskdomain.Task{ID: "t1"}, nil)
	if got.ID == "" || !got.CreatedAt.Equal(fixedNow) || got.Content != "Nice one!" {
		t.Errorf("unexpected insight %+v", got)
	}
}

func TestClient_SuggestionsFallbacks(t *testing.T) {
	empty := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"suggestions":[]}`))
	})
	if got := empty.GenerateTaskSuggestions(context.Background(), "finance", nil); !reflect.DeepEqual(got, FallbackSuggestions("finance")) {
		t.Errorf("empty list should fall back, got %v", got)
	}

	remote := newClientWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"suggestions":["a","b"]}`))
	})
	if got := remote.GenerateTaskSuggestions(context.Background(), "finance", nil); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("remote suggestions = %v", got)
	}
}

func TestClient_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, nil)
	got := c.GenerateTaskSuggestions(context.Background(), "health", nil)
	if len(got) == 0 || got[0] != "Drink 8 glasses of water today" {
		t.Errorf("expected canned health suggestions, got %v", got)
	}
}
