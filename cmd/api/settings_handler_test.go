package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func settingsRouter(settings *RuntimeSettings) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSettingsHandler(settings, nil)
	r := gin.New()
	r.GET("/api/settings/ollama", h.GetOllamaSettings)
	r.PUT("/api/settings/ollama", h.UpdateOllamaSettings)
	r.POST("/api/settings/ollama/test", h.TestOllamaConnection)
	return r
}

func serveJSON(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestRuntimeSettings_Update(t *testing.T) {
	s := NewRuntimeSettings("http://localhost:11434", "llama3")

	s.Update("http://gpu-box:11434", "")
	if s.BaseURL() != "http://gpu-box:11434" {
		t.Errorf("BaseURL = %q", s.BaseURL())
	}
	if s.Model() != "llama3" {
		t.Errorf("empty model should keep the previous one, got %q", s.Model())
	}

	s.Update("http://gpu-box:11434", "mistral")
	if s.Model() != "mistral" {
		t.Errorf("Model = %q, want mistral", s.Model())
	}
}

func TestUpdateOllamaSettings(t *testing.T) {
	settings := NewRuntimeSettings("", "")
	r := settingsRouter(settings)

	w, _ := serveJSON(r, http.MethodPut, "/api/settings/ollama", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing base URL status = %d, want 400", w.Code)
	}

	w, body := serveJSON(r, http.MethodPut, "/api/settings/ollama", `{"ollamaBaseUrl":"http://ollama:11434","ollamaModel":"llama3"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	if body["ollamaModel"] != "llama3" {
		t.Errorf("response model = %v", body["ollamaModel"])
	}

	_, body = serveJSON(r, http.MethodGet, "/api/settings/ollama", "")
	if body["ollamaBaseUrl"] != "http://ollama:11434" {
		t.Errorf("GET base URL = %v", body["ollamaBaseUrl"])
	}
}

func TestTestOllamaConnection(t *testing.T) {
	ollama := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"models":[]}`))
	}))
	defer ollama.Close()

	t.Run("uses current settings without a body", func(t *testing.T) {
		r := settingsRouter(NewRuntimeSettings(ollama.URL, ""))
		w, body := serveJSON(r, http.MethodPost, "/api/settings/ollama/test", "")
		if w.Code != http.StatusOK || body["connected"] != true {
			t.Errorf("status = %d, body %v", w.Code, body)
		}
	})

	t.Run("bad status", func(t *testing.T) {
		r := settingsRouter(NewRuntimeSettings("", ""))
		w, body := serveJSON(r, http.MethodPost, "/api/settings/ollama/test", `{"ollamaBaseUrl":"`+ollama.URL+`/nested"}`)
		if w.Code != http.StatusServiceUnavailable || body["statusCode"] != float64(http.StatusNotFound) {
			t.Errorf("status = %d, body %v", w.Code, body)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		r := settingsRouter(NewRuntimeSettings("", ""))
		w, _ := serveJSON(r, http.MethodPost, "/api/settings/ollama/test", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}
