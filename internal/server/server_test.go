package server

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manash/floralgen/internal/tools"
	"github.com/manash/floralgen/internal/version"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(origins ...string) *Server {
	return New(Config{
		Service:     tools.NewService(tools.Defaults{}, nil),
		CORSOrigins: origins,
	})
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON object: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "ok" || body["version"] != version.Version {
		t.Errorf("body = %v", body)
	}
}

func TestListTools(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/tools", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Tools []struct {
			Name         string `json:"name"`
			ProtocolName string `json:"protocol_name"`
			Params       []struct {
				Name string `json:"name"`
			} `json:"params"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Tools) != 10 {
		t.Fatalf("got %d tools, want 10", len(body.Tools))
	}
	if body.Tools[0].ProtocolName != "enhance_floral_prompt" || len(body.Tools[0].Params) != 4 {
		t.Errorf("tools[0] = %+v", body.Tools[0])
	}
}

func TestCallTool(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		body       string
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name:       "enhance by short name",
			tool:       "enhance",
			body:       `{"user_intent": "romantic spring wedding centerpiece", "occasion": "wedding"}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				if _, ok := body["enhanced_prompt"]; !ok {
					t.Error("missing enhanced_prompt")
				}
			},
		},
		{
			name:       "workflow by protocol name",
			tool:       "generate_floral_workflow",
			body:       `{"user_intent": "cascade of orchids", "model_preference": "sdxl", "steps": 30}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				md := body["metadata"].(map[string]any)
				if md["checkpoint"] != "sd_xl_base_1.0.safetensors" {
					t.Errorf("checkpoint = %v", md["checkpoint"])
				}
				wf := body["workflow"].(map[string]any)
				sampler := wf["5"].(map[string]any)["inputs"].(map[string]any)
				if sampler["steps"] != float64(30) {
					t.Errorf("steps = %v", sampler["steps"])
				}
			},
		},
		{
			name:       "listing without body",
			tool:       "list_color_palettes",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				if _, ok := body["monochromatic"]; !ok {
					t.Error("missing monochromatic palette")
				}
			},
		},
		{
			name:       "unknown tool",
			tool:       "paint",
			body:       `{}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid size",
			tool:       "workflow",
			body:       `{"user_intent": "dome", "output_size": "1024"}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				if !strings.Contains(body["error"].(string), "invalid size") {
					t.Errorf("error = %v", body["error"])
				}
			},
		},
		{
			name:       "invalid argument type",
			tool:       "workflow",
			body:       `{"user_intent": "dome", "steps": "lots"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "fractional steps",
			tool:       "workflow",
			body:       `{"user_intent": "dome", "steps": 2.5}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "enhance without intent",
			tool:       "enhance",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				if !strings.Contains(body["error"].(string), "user_intent is required") {
					t.Errorf("error = %v", body["error"])
				}
			},
		},
		{
			name:       "workflow without body",
			tool:       "generate_floral_workflow",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "occasion with blank name",
			tool:       "occasion",
			body:       `{"occasion": " "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "body is not an object",
			tool:       "enhance",
			body:       `["dome"]`,
			wantStatus: http.StatusBadRequest,
		},
	}

	s := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/tools/"+tt.tool, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d\n%s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.check != nil {
				tt.check(t, decode(t, rec))
			}
		})
	}
}

func TestGetTable(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/api/taxonomy/arrangement_styles", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	for _, category := range []string{"ikebana", "western_classical", "contemporary"} {
		if _, ok := body[category]; !ok {
			t.Errorf("styles missing %s", category)
		}
	}

	raw := rec.Body.String()
	ikebana := strings.Index(raw, `"ikebana":{`)
	western := strings.Index(raw, `"western_classical":{`)
	contemporary := strings.Index(raw, `"contemporary":{`)
	if !(ikebana >= 0 && ikebana < western && western < contemporary) {
		t.Errorf("styles not in table order: ikebana@%d western_classical@%d contemporary@%d", ikebana, western, contemporary)
	}

	rec = do(t, s, http.MethodGet, "/api/taxonomy/vases", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown table status = %d, want 404", rec.Code)
	}
}

func TestGetOccasion(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/api/occasions/Funeral", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, ok := decode(t, rec)["recommendations"]; !ok {
		t.Error("missing recommendations")
	}

	rec = do(t, s, http.MethodGet, "/api/occasions/gala", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "Occasion 'gala' not found" {
		t.Errorf("error = %v", body["error"])
	}
	if got := body["available_occasions"].([]any); len(got) != 4 {
		t.Errorf("available_occasions = %v", got)
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{name: "all origins", origins: nil, origin: "https://any.example", want: "*"},
		{name: "allowed origin", origins: []string{"https://ui.example"}, origin: "https://ui.example", want: "https://ui.example"},
		{name: "other origin", origins: []string{"https://ui.example"}, origin: "https://evil.example", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(tt.origins...)
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	s := New(Config{Logger: slogJSON(&buf)})

	do(t, s, http.MethodGet, "/healthz", "")
	if !strings.Contains(buf.String(), `"path":"/healthz"`) || !strings.Contains(buf.String(), `"status":200`) {
		t.Errorf("log = %q", buf.String())
	}
}

func TestListenAndServe_Shutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	s := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, addr) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr + "/healthz")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		cancel()
		t.Fatalf("server did not start: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() did not return after cancel")
	}
}

func slogJSON(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}
