package deepseek

import "context"

// IDeepSeek defines the interface for the chat completion client.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
