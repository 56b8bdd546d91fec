package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"agent-switchboard/pkg/deepseek"
)

// OpenAIAdapter adapts an OpenAI-compatible chat completion client to the
// Provider interface. DeepSeek, Qwen, and OpenAI itself all speak this
// protocol, differing only in base URL and model name.
type OpenAIAdapter struct {
	name   string
	client deepseek.IDeepSeek
}

// NewOpenAIAdapter creates an adapter over an OpenAI-compatible client.
func NewOpenAIAdapter(name string, client deepseek.IDeepSeek) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements the Provider interface.
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := &deepseek.Request{
		Messages:    convertToWireMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := deepseek.Message{
			Role:    "system",
			Content: req.SystemInstruction.Parts[0].Text,
		}
		wireReq.Messages = append([]deepseek.Message{systemMsg}, wireReq.Messages...)
	}

	if len(req.Tools) > 0 {
		wireReq.Tools = convertToWireTools(req.Tools)
	}

	resp, err := a.client.GenerateContent(ctx, wireReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	return a.convertFromWireResponse(resp), nil
}

// Name returns the provider name.
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name.
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToWireMessages(msgs []Message) []deepseek.Message {
	messages := make([]deepseek.Message, 0, len(msgs))
	for _, msg := range msgs {
		wireMsg := deepseek.Message{
			Role: msg.Role,
		}

		for _, part := range msg.Parts {
			if part.Text != "" && wireMsg.Content == "" {
				wireMsg.Content = part.Text
			}

			if part.FunctionCall != nil {
				fc := part.FunctionCall
				argsJSON, _ := json.Marshal(fc.Args)
				wireMsg.ToolCalls = append(wireMsg.ToolCalls, deepseek.ToolCall{
					ID:   callID(fc.ID, fc.Name),
					Type: "function",
					Function: deepseek.FunctionCall{
						Name:      fc.Name,
						Arguments: string(argsJSON),
					},
				})
			}

			if part.FunctionResponse != nil {
				fr := part.FunctionResponse
				wireMsg.Role = "tool"
				wireMsg.ToolCallID = callID(fr.ID, fr.Name)
				wireMsg.Name = fr.Name
				responseJSON, _ := json.Marshal(fr.Response)
				wireMsg.Content = string(responseJSON)
			}
		}

		messages = append(messages, wireMsg)
	}
	return messages
}

// callID keeps the provider-issued tool call id when present; the fallback
// keeps request and response messages correlated for providers that do not
// echo ids back.
func callID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}

func convertToWireTools(tools []Tool) []deepseek.Tool {
	wireTools := make([]deepseek.Tool, len(tools))
	for i, t := range tools {
		wireTools[i] = deepseek.Tool{
			Type: "function",
			Function: deepseek.Function{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return wireTools
}

func (a *OpenAIAdapter) convertFromWireResponse(resp *deepseek.Response) *Response {
	out := &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{},
		},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) == 0 {
		return out
	}

	choice := resp.Choices[0]

	if choice.Message.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: choice.Message.Content})
	}

	for _, tc := range choice.Message.ToolCalls {
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			args = map[string]interface{}{}
		}
		out.Content.Parts = append(out.Content.Parts, Part{
			FunctionCall: &FunctionCall{
				ID:   tc.ID,
				Name: tc.Function.Name,
				Args: args,
			},
		})
	}

	return out
}
