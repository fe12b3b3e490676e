package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestFallbackService_PrimarySucceeds(t *testing.T) {
	primary := &stubGenerator{text: "from primary"}
	secondary := &stubGenerator{text: "from secondary"}

	got, err := NewFallbackService(primary, secondary).Generate(context.Background(), "p")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "from primary" || secondary.calls != 0 {
		t.Errorf("got %q, secondary calls %d", got, secondary.calls)
	}
}

func TestFallbackService_FallsBackOnQuota(t *testing.T) {
	primary := &stubGenerator{err: errors.New("googleapi: Error 429: RESOURCE_EXHAUSTED")}
	secondary := &stubGenerator{text: "local answer"}

	got, err := NewFallbackService(primary, secondary).Generate(context.Background(), "p")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "local answer" {
		t.Errorf("got %q", got)
	}
}

func TestFallbackService_BothFail(t *testing.T) {
	primary := &stubGenerator{err: errors.New("boom")}
	secondary := &stubGenerator{err: errors.New("dial tcp: connection refused")}

	_, err := NewFallbackService(primary, secondary).Generate(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error when every provider fails")
	}
}

func TestFallbackService_NoSecondaryReturnsPrimaryError(t *testing.T) {
	want := errors.New("boom")
	_, err := NewFallbackService(&stubGenerator{err: want}, nil).Generate(context.Background(), "p")
	if !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		err        error
		quota      bool
		connection bool
	}{
		{errors.New("429 Too Many Requests"), true, false},
		{errors.New("quota exceeded for project"), true, false},
		{errors.New("dial tcp 127.0.0.1:11434: connection refused"), false, true},
		{errors.New("unexpected EOF"), false, true},
		{errors.New("invalid argument"), false, false},
		{nil, false, false},
	}
	for _, tt := range tests {
		if got := isQuotaError(tt.err); got != tt.quota {
			t.Errorf("isQuotaError(%v) = %v", tt.err, got)
		}
		if got := isConnectionError(tt.err); got != tt.connection {
			t.Errorf("isConnectionError(%v) = %v", tt.err, got)
		}
	}
}

func TestOllamaService_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["model"] != "mistral" || body["stream"] != false {
			t.Errorf("unexpected payload: %v", body)
		}
		w.Write([]byte(`{"response":"  You've got this!  ","done":true}`))
	}))
	defer srv.Close()

	got, err := NewOllamaService(srv.URL, "mistral").Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "You've got this!" {
		t.Errorf("got %q", got)
	}
}

func TestOllamaService_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewOllamaService(srv.URL, "").Generate(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected 404 error, got %v", err)
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"models":[]}`))
	}))
	defer srv.Close()

	code, err := Ping(context.Background(), srv.Client(), srv.URL+"/")
	if err != nil || code != http.StatusOK {
		t.Errorf("Ping() = %d, %v", code, err)
	}
}

func TestNewGenerator_MissingKey(t *testing.T) {
	for _, p := range []ProviderType{ProviderGemini, ProviderAuto, ""} {
		_, closeFn, err := NewGenerator(context.Background(), Config{Provider: p})
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("provider %q: err = %v, want ErrMissingAPIKey", p, err)
		}
		if closeFn == nil {
			t.Errorf("provider %q: close func is nil", p)
		}
	}
}

func TestNewGenerator_OllamaOnly(t *testing.T) {
	cfg := Config{
		Provider:         ProviderAuto,
		GetOllamaBaseURL: func() string { return "http://localhost:11434" },
	}
	gen, _, err := NewGenerator(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}
	if _, ok := gen.(*OllamaService); !ok {
		t.Errorf("expected *OllamaService, got %T", gen)
	}

	cfg.Provider = ProviderOllama
	cfg.GetOllamaBaseURL = nil
	if _, _, err := NewGenerator(context.Background(), cfg); err == nil {
		t.Error("expected error for ollama provider without a base URL source")
	}
}

func TestNewGenerator_OllamaEnabledAtRuntime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"Hi from Biscuit","done":true}`))
	}))
	defer srv.Close()

	baseURL := ""
	gen, _, err := NewGenerator(context.Background(), Config{
		Provider:         ProviderAuto,
		GetOllamaBaseURL: func() string { return baseURL },
	})
	if err != nil {
		t.Fatalf("NewGenerator() error: %v", err)
	}
	if IsConfigured(gen) {
		t.Error("expected generator to be unconfigured before a base URL is set")
	}
	if _, err := gen.Generate(context.Background(), "hi"); !errors.Is(err, ErrOllamaNotConfigured) {
		t.Errorf("expected ErrOllamaNotConfigured, got %v", err)
	}

	baseURL = srv.URL
	if !IsConfigured(gen) {
		t.Error("expected generator to be configured after a base URL is set")
	}
	got, err := gen.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "Hi from Biscuit" {
		t.Errorf("got %q", got)
	}
}

func TestFallbackService_SecondaryEnabledAtRuntime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"local answer","done":true}`))
	}))
	defer srv.Close()

	baseURL := ""
	primary := &stubGenerator{err: errors.New("429 quota exceeded")}
	f := NewFallbackService(primary, NewOllamaServiceWithGetters(
		func() string { return baseURL },
		func() string { return "" },
	))

	if _, err := f.Generate(context.Background(), "hi"); err != primary.err {
		t.Errorf("expected primary error while Ollama is unset, got %v", err)
	}

	baseURL = srv.URL
	got, err := f.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got != "local answer" {
		t.Errorf("got %q", got)
	}
}

func TestIsConfigured(t *testing.T) {
	if IsConfigured(nil) {
		t.Error("nil generator should not be configured")
	}
	if !IsConfigured(&stubGenerator{}) {
		t.Error("generator without runtime settings should be configured")
	}
	if IsConfigured(NewOllamaService("", "")) {
		t.Error("ollama without base URL should not be configured")
	}
	if !IsConfigured(NewFallbackService(&stubGenerator{}, NewOllamaService("", ""))) {
		t.Error("fallback with a usable primary should be configured")
	}
}
