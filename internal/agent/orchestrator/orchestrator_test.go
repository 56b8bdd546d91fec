package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"agent-switchboard/internal/agent"
	"agent-switchboard/internal/competency"
	"agent-switchboard/internal/model"
	"agent-switchboard/internal/plan"
	"agent-switchboard/internal/routing"
	"agent-switchboard/internal/switchboard"
	"agent-switchboard/pkg/archon"
	"agent-switchboard/pkg/llmprovider"
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

// scriptedLLM returns canned responses in order. Safe for concurrent use
// because AdaptBatch fans out calls.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []*llmprovider.Response
	err       error
	callCount int
	lastReq   *llmprovider.Request
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) == 0 {
		return textResponse("ок"), nil
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: text}},
		},
		ProviderName: "scripted",
	}
}

type stubArchon struct {
	resp *archon.SearchResponse
	err  error
}

func (s *stubArchon) Search(ctx context.Context, req archon.SearchRequest) (*archon.SearchResponse, error) {
	return s.resp, s.err
}

func (s *stubArchon) UpdateTask(ctx context.Context, req archon.UpdateTaskRequest) (*archon.UpdateTaskResponse, error) {
	return &archon.UpdateTaskResponse{Success: true}, nil
}

type echoTool struct {
	callCount int
}

func (e *echoTool) Name() string        { return "echo_tool" }
func (e *echoTool) Description() string { return "echoes its input" }
func (e *echoTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (e *echoTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	e.callCount++
	return params, nil
}

func newTestOrchestrator(llm LLMClient, knowledge archon.IArchon) (*Orchestrator, *agent.ToolRegistry, *plan.Store) {
	registry := agent.NewToolRegistry()
	router := switchboard.New(routing.NewDetector(), competency.NewChecker(), nopLogger{})
	store := plan.NewStore()
	return New(llm, registry, router, plan.New(), store, knowledge, nopLogger{}), registry, store
}

func TestProcessQuery_SwitchToManagerWithoutLLM(t *testing.T) {
	llm := &scriptedLLM{}
	o, _, _ := newTestOrchestrator(llm, &stubArchon{resp: &archon.SearchResponse{}})

	res, err := o.ProcessQuery(context.Background(), QueryInput{
		UserID:       "u1",
		CurrentAgent: model.AgentTesting,
		Message:      "переключись на менеджера",
	})
	if err != nil {
		t.Fatalf("ProcessQuery: %v", err)
	}

	if res.Decision.Kind != switchboard.DecisionSwitchToManager {
		t.Errorf("expected switch_to_manager, got %s", res.Decision.Kind)
	}
	if llm.callCount != 0 {
		t.Errorf("expected no LLM calls for a coordination command, got %d", llm.callCount)
	}
	if !strings.Contains(res.Answer, "менеджера") {
		t.Errorf("unexpected answer: %q", res.Answer)
	}
}

func TestProcessQuery_DelegateWithoutLLM(t *testing.T) {
	llm := &scriptedLLM{}
	o, _, _ := newTestOrchestrator(llm, &stubArchon{resp: &archon.SearchResponse{}})

	res, err := o.ProcessQuery(context.Background(), QueryInput{
		UserID:       "u1",
		CurrentAgent: model.AgentUIUX,
		Message:      "напиши unit-тест для функции sum",
	})
	if err != nil {
		t.Fatalf("ProcessQuery: %v", err)
	}

	if res.Decision.Kind != switchboard.DecisionDelegate {
		t.Fatalf("expected delegate, got %s", res.Decision.Kind)
	}
	if res.Decision.SuggestedAgent != model.AgentTesting {
		t.Errorf("expected testing_agent, got %s", res.Decision.SuggestedAgent)
	}
	if llm.callCount != 0 {
		t.Errorf("expected no LLM calls for a delegated task, got %d", llm.callCount)
	}
}

func TestProcessQuery_CreatePlanDirectly(t *testing.T) {
	llm := &scriptedLLM{}
	o, _, store := newTestOrchestrator(llm, &stubArchon{resp: &archon.SearchResponse{}})

	res, err := o.ProcessQuery(context.Background(), QueryInput{
		UserID:       "u1",
		CurrentAgent: model.AgentProjectManager,
		Message:      "составь план по проекту",
	})
	if err != nil {
		t.Fatalf("ProcessQuery: %v", err)
	}

	if res.PlanID == "" {
		t.Fatal("expected a plan id")
	}
	if _, ok := store.Get(res.PlanID); !ok {
		t.Error("expected plan saved in store")
	}
	if !strings.Contains(res.Answer, "План") {
		t.Errorf("expected rendered checklist, got %q", res.Answer)
	}
	if llm.callCount != 0 {
		t.Errorf("expected no LLM calls for plan creation, got %d", llm.callCount)
	}
}

func TestProcessQuery_ToolLoop(t *testing.T) {
	llm := &scriptedLLM{
		responses: []*llmprovider.Response{
			{
				Content: llmprovider.Message{
					Role: "assistant",
					Parts: []llmprovider.Part{{
						FunctionCall: &llmprovider.FunctionCall{
							ID:   "call_1",
							Name: "echo_tool",
							Args: map[string]interface{}{"value": "x"},
						},
					}},
				},
				ProviderName: "scripted",
			},
			textResponse("готово"),
		},
	}

	o, registry, _ := newTestOrchestrator(llm, &stubArchon{
		resp: &archon.SearchResponse{Results: []archon.SearchResult{{Content: "auth uses JWT"}}},
	})
	tool := &echoTool{}
	registry.Register(tool)

	input := QueryInput{
		UserID:       "u1",
		CurrentAgent: model.AgentSecurityAudit,
		Message:      "нужна защита от sql injection",
	}

	res, err := o.ProcessQuery(context.Background(), input)
	if err != nil {
		t.Fatalf("ProcessQuery: %v", err)
	}

	if res.Answer != "готово" {
		t.Errorf("expected final answer, got %q", res.Answer)
	}
	if res.Provider != "scripted" {
		t.Errorf("expected provider recorded, got %q", res.Provider)
	}
	if tool.callCount != 1 {
		t.Errorf("expected tool to run once, got %d", tool.callCount)
	}
	if llm.callCount != 2 {
		t.Errorf("expected 2 LLM calls, got %d", llm.callCount)
	}
	if llm.lastReq.SystemInstruction == nil ||
		!strings.Contains(llm.lastReq.SystemInstruction.Parts[0].Text, "auth uses JWT") {
		t.Error("expected knowledge context in system prompt")
	}

	// Second turn carries the saved history.
	llm.responses = []*llmprovider.Response{textResponse("ещё раз готово")}
	if _, err := o.ProcessQuery(context.Background(), input); err != nil {
		t.Fatalf("second ProcessQuery: %v", err)
	}
	if got := len(llm.lastReq.Messages); got != 3 {
		t.Errorf("expected 2 history messages plus the new one, got %d", got)
	}
}

func TestProcessQuery_UnknownToolReportedToModel(t *testing.T) {
	llm := &scriptedLLM{
		responses: []*llmprovider.Response{
			{
				Content: llmprovider.Message{
					Role: "assistant",
					Parts: []llmprovider.Part{{
						FunctionCall: &llmprovider.FunctionCall{Name: "no_such_tool"},
					}},
				},
			},
			textResponse("извините, инструмент недоступен"),
		},
	}
	o, _, _ := newTestOrchestrator(llm, &stubArchon{resp: &archon.SearchResponse{}})

	res, err := o.ProcessQuery(context.Background(), QueryInput{
		UserID:       "u1",
		CurrentAgent: model.AgentSecurityAudit,
		Message:      "нужна защита от sql injection",
	})
	if err != nil {
		t.Fatalf("ProcessQuery: %v", err)
	}
	if res.Answer == "" {
		t.Error("expected an answer after the unknown-tool observation")
	}

	// The tool error must have been fed back as a tool message.
	foundToolMsg := false
	for _, msg := range llm.lastReq.Messages {
		for _, p := range msg.Parts {
			if p.FunctionResponse != nil && p.FunctionResponse.Name == "no_such_tool" {
				foundToolMsg = true
			}
		}
	}
	if !foundToolMsg {
		t.Error("expected a function response message for the unknown tool")
	}
}

func TestProcessQuery_LLMErrorPropagates(t *testing.T) {
	llm := &scriptedLLM{err: errors.New("all providers down")}
	o, _, _ := newTestOrchestrator(llm, &stubArchon{resp: &archon.SearchResponse{}})

	_, err := o.ProcessQuery(context.Background(), QueryInput{
		UserID:       "u1",
		CurrentAgent: model.AgentSecurityAudit,
		Message:      "нужна защита от sql injection",
	})
	if err == nil {
		t.Fatal("expected error when the LLM fails")
	}
}

func TestAdaptBatch(t *testing.T) {
	llm := &scriptedLLM{}
	o, _, _ := newTestOrchestrator(llm, &stubArchon{resp: &archon.SearchResponse{}})

	results, err := o.AdaptBatch(context.Background(), "объяснение принципов REST", nil)
	if err != nil {
		t.Fatalf("AdaptBatch: %v", err)
	}

	if len(results) != len(AllModalities) {
		t.Fatalf("expected %d adaptations, got %d", len(AllModalities), len(results))
	}
	for _, modality := range AllModalities {
		if results[modality] == "" {
			t.Errorf("missing adaptation for %s", modality)
		}
	}
	if llm.callCount != len(AllModalities) {
		t.Errorf("expected %d LLM calls, got %d", len(AllModalities), llm.callCount)
	}
}

func TestAdaptBatch_ErrorCancels(t *testing.T) {
	llm := &scriptedLLM{err: errors.New("provider down")}
	o, _, _ := newTestOrchestrator(llm, &stubArchon{resp: &archon.SearchResponse{}})

	if _, err := o.AdaptBatch(context.Background(), "текст", []string{"визуал"}); err == nil {
		t.Fatal("expected error to propagate")
	}
}
