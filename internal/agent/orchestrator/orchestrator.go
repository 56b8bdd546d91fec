package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"agent-switchboard/internal/routing"
	"agent-switchboard/internal/switchboard"
	"agent-switchboard/pkg/archon"
	"agent-switchboard/pkg/llmprovider"
)

// ProcessQuery routes one chat message and, when the current agent keeps it,
// runs the ReAct loop: Reason → Act → Observe.
func (o *Orchestrator) ProcessQuery(ctx context.Context, input QueryInput) (*QueryResult, error) {
	decision := o.router.Route(ctx, switchboard.RouteInput{
		Message:      input.Message,
		CurrentAgent: input.CurrentAgent,
	})

	switch decision.Kind {
	case switchboard.DecisionSwitchToManager:
		return &QueryResult{
			Answer:   fmt.Sprintf("Переключаюсь на менеджера проекта: %s", decision.Reason),
			Decision: decision,
		}, nil
	case switchboard.DecisionDelegate:
		return &QueryResult{
			Answer:   fmt.Sprintf("Задача передана агенту %s: %s", decision.SuggestedAgent, decision.Reason),
			Decision: decision,
		}, nil
	}

	// Plan creation is deterministic, no LLM round-trip needed.
	if decision.Action == routing.ActionCreatePlan {
		p := o.planSvc.Build(input.Message)
		o.planStore.Put(p)
		return &QueryResult{
			Answer:   o.planSvc.Render(p),
			Decision: decision,
			PlanID:   p.ID,
		}, nil
	}

	answer, provider, err := o.runAgentLoop(ctx, input)
	if err != nil {
		return nil, err
	}

	return &QueryResult{
		Answer:   answer,
		Decision: decision,
		Provider: provider,
	}, nil
}

func (o *Orchestrator) runAgentLoop(ctx context.Context, input QueryInput) (string, string, error) {
	history := o.loadSession(input.UserID)

	userMsg := llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: input.Message}},
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: o.buildSystemPrompt(ctx, input.Message)}},
		},
		Messages: append(append([]llmprovider.Message{}, history...), userMsg),
		Tools:    o.registry.ToFunctionDefinitions(),
	}

	for step := 0; step < MaxAgentSteps; step++ {
		o.l.Infof(ctx, "%s: step %d/%d", LogPrefixProcessQuery, step+1, MaxAgentSteps)

		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", "", fmt.Errorf("agent LLM error at step %d: %w", step, err)
		}

		if len(resp.Content.Parts) == 0 {
			return "", "", fmt.Errorf(ErrMsgEmptyLLMResponse)
		}

		call := findFunctionCall(resp.Content.Parts)
		if call == nil {
			o.l.Infof(ctx, "%s: finished at step %d", LogPrefixProcessQuery, step+1)
			answer := firstText(resp.Content.Parts)
			o.saveSession(input.UserID, userMsg, resp.Content)
			return answer, resp.ProviderName, nil
		}

		o.l.Infof(ctx, "%s: calling tool %s args=%+v", LogPrefixProcessQuery, call.Name, call.Args)

		var toolResult interface{}
		tool, ok := o.registry.Get(call.Name)
		if !ok {
			o.l.Errorf(ctx, "%s: tool %s not found", LogPrefixProcessQuery, call.Name)
			toolResult = map[string]string{"error": "tool not found"}
		} else {
			res, err := tool.Execute(ctx, call.Args)
			if err != nil {
				o.l.Errorf(ctx, "%s: tool %s failed: %v", LogPrefixProcessQuery, call.Name, err)
				toolResult = map[string]string{"error": err.Error()}
			} else {
				toolResult = res
			}
		}

		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{FunctionCall: call}},
		})
		req.Messages = append(req.Messages, llmprovider.Message{
			Role: "tool",
			Parts: []llmprovider.Part{{
				FunctionResponse: &llmprovider.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: toolResult,
				},
			}},
		})
	}

	o.l.Warnf(ctx, "%s: exceeded max steps (%d)", LogPrefixProcessQuery, MaxAgentSteps)
	return ErrMsgMaxStepsExceeded, "", nil
}

// buildSystemPrompt folds knowledge-base context into the system prompt.
// Search failures degrade to a static fallback rather than failing the chat.
func (o *Orchestrator) buildSystemPrompt(ctx context.Context, query string) string {
	ragContext := archon.FallbackContext

	resp, err := o.knowledge.Search(ctx, archon.SearchRequest{
		Query:      query,
		MatchCount: archon.DefaultMatchCount,
	})
	if err != nil {
		o.l.Warnf(ctx, "%s: knowledge search failed: %v", LogPrefixProcessQuery, err)
	} else if len(resp.Results) > 0 {
		var b strings.Builder
		for _, r := range resp.Results {
			b.WriteString("- ")
			b.WriteString(r.Content)
			b.WriteString("\n")
		}
		ragContext = b.String()
	}

	return SystemPromptAgent + "\n\nКонтекст базы знаний:\n" + ragContext
}

func findFunctionCall(parts []llmprovider.Part) *llmprovider.FunctionCall {
	for _, p := range parts {
		if p.FunctionCall != nil {
			return p.FunctionCall
		}
	}
	return nil
}

func firstText(parts []llmprovider.Part) string {
	for _, p := range parts {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}
