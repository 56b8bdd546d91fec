package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"agent-switchboard/internal/competency"
	"agent-switchboard/internal/middleware"
	"agent-switchboard/internal/plan"
	"agent-switchboard/internal/routing"
	"agent-switchboard/internal/switchboard"
	"agent-switchboard/pkg/response"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

func newTestRouter(t *testing.T) (*gin.Engine, *plan.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := nopLogger{}
	sw := switchboard.New(routing.NewDetector(), competency.NewChecker(), l)
	store := plan.NewStore()
	h := New(l, sw, plan.New(), store)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/switchboard"), h, middleware.New(l, 6000))
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope response.Resp
	envelope.Data = out
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
}

func TestRouteEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("coordination command switches to manager", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/switchboard/route", map[string]interface{}{
			"message":       "продолжай работать над задачами команды",
			"current_agent": "testing_agent",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
		}

		var data routeResp
		decodeData(t, w, &data)
		if data.Kind != string(switchboard.DecisionSwitchToManager) {
			t.Errorf("expected switch_to_manager, got %s", data.Kind)
		}
	})

	t.Run("off-topic task delegates", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/switchboard/route", map[string]interface{}{
			"message":       "напиши unit-тест для функции sum",
			"current_agent": "uiux_enhancement_agent",
		})
		var data routeResp
		decodeData(t, w, &data)
		if data.Kind != string(switchboard.DecisionDelegate) {
			t.Fatalf("expected delegate, got %s", data.Kind)
		}
		if data.SuggestedAgent != "testing_agent" {
			t.Errorf("expected testing_agent, got %s", data.SuggestedAgent)
		}
	})

	t.Run("unknown agent rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/switchboard/route", map[string]interface{}{
			"message":       "привет",
			"current_agent": "nonexistent",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing message rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/switchboard/route", map[string]interface{}{
			"current_agent": "testing_agent",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestCheckCompetencyEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/switchboard/competency/check", map[string]interface{}{
		"task":  "проведи аудит безопасности базы данных",
		"agent": "security_audit_agent",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
	}

	var data checkResp
	decodeData(t, w, &data)
	if !data.CanHandle {
		t.Errorf("expected security agent to handle an audit task: %+v", data)
	}
	if data.Confidence <= 0 || data.Confidence > 1 {
		t.Errorf("confidence out of range: %f", data.Confidence)
	}
}

func TestEscalateEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("low confidence escalates", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/switchboard/escalate", map[string]interface{}{
			"task":       "сделай что-нибудь",
			"confidence": 0.1,
		})
		var data escalateResp
		decodeData(t, w, &data)
		if !data.Escalate {
			t.Error("expected escalation at low confidence")
		}
	})

	t.Run("confident on-topic task does not escalate", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/switchboard/escalate", map[string]interface{}{
			"task":       "поправь цвет кнопки",
			"confidence": 0.8,
		})
		var data escalateResp
		decodeData(t, w, &data)
		if data.Escalate {
			t.Errorf("unexpected escalation: %s", data.Reason)
		}
	})

	t.Run("zero confidence is a valid value", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/switchboard/escalate", map[string]interface{}{
			"task":       "сделай что-нибудь",
			"confidence": 0.0,
		})
		if w.Code != http.StatusOK {
			t.Errorf("expected 200 for zero confidence, got %d", w.Code)
		}
	})
}

func TestPlanEndpoints(t *testing.T) {
	r, store := newTestRouter(t)

	// Create
	w := doJSON(t, r, http.MethodPost, "/api/v1/switchboard/plan", map[string]interface{}{
		"description": "почини баг с авторизацией",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create plan: unexpected status %d body=%s", w.Code, w.Body.String())
	}

	var created planResp
	decodeData(t, w, &created)
	if created.Kind != string(plan.KindBugfix) {
		t.Errorf("expected bugfix plan, got %s", created.Kind)
	}
	if len(created.Tasks) == 0 {
		t.Fatal("expected template tasks")
	}
	if _, ok := store.Get(created.PlanID); !ok {
		t.Fatal("expected plan saved in store")
	}

	// Progress
	w = doJSON(t, r, http.MethodGet, "/api/v1/switchboard/plan/"+created.PlanID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("progress: unexpected status %d", w.Code)
	}
	var progress planProgressResp
	decodeData(t, w, &progress)
	if progress.Stats.Completed != 0 {
		t.Errorf("expected fresh plan, got %d completed", progress.Stats.Completed)
	}
	if progress.NextTask != created.Tasks[0].ID {
		t.Errorf("expected first task next, got %s", progress.NextTask)
	}

	// Update a task
	path := fmt.Sprintf("/api/v1/switchboard/plan/%s/tasks/%s", created.PlanID, created.Tasks[0].ID)
	w = doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"status": "completed"})
	if w.Code != http.StatusOK {
		t.Fatalf("update task: unexpected status %d body=%s", w.Code, w.Body.String())
	}
	decodeData(t, w, &progress)
	if progress.Stats.Completed != 1 {
		t.Errorf("expected 1 completed, got %d", progress.Stats.Completed)
	}

	// Invalid status rejected by binding
	w = doJSON(t, r, http.MethodPatch, path, map[string]interface{}{"status": "finished"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid status, got %d", w.Code)
	}

	// Unknown plan
	w = doJSON(t, r, http.MethodGet, "/api/v1/switchboard/plan/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown plan, got %d", w.Code)
	}

	// Unknown task
	w = doJSON(t, r, http.MethodPatch,
		fmt.Sprintf("/api/v1/switchboard/plan/%s/tasks/missing", created.PlanID),
		map[string]interface{}{"status": "completed"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown task, got %d", w.Code)
	}
}
