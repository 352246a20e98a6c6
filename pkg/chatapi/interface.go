package chatapi

import "context"

// IChatAPI defines the interface for the hosted chat-completion client.
type IChatAPI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}
