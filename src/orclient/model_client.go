package orclient

import (
	"context"

	"github.com/tripsmith/tripsmith/src/aisdk"
)

var _ aisdk.ModelClient = (*ModelClient)(nil)

// ModelClient represents a client bound to a specific model
type ModelClient struct {
	client *Client
	model  *aisdk.ModelInfo
}

// Model creates a ModelClient bound to the specified model. OpenRouter
// accepts any slug it routes, so the binding is by name; model metadata is
// filled in lazily from the slug.
func (c *Client) Model(ctx context.Context, modelName string) (aisdk.ModelClient, error) {
	if modelName == "" {
		return nil, ErrInvalidModel
	}
	return &ModelClient{
		client: c,
		model:  &aisdk.ModelInfo{ID: modelName, Name: modelName},
	}, nil
}

// CreateChatCompletion creates a chat completion with the bound model
func (mc *ModelClient) CreateChatCompletion(ctx context.Context, req *aisdk.ChatCompletionRequest) (*aisdk.ChatCompletionResponse, error) {
	// Override the model in the request
	req.Model = mc.model.ID

	return mc.client.createChatCompletion(ctx, req)
}

// GetModelInfo returns the model information
func (mc *ModelClient) GetModelInfo() *aisdk.ModelInfo {
	return mc.model
}
