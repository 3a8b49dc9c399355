package gemini

import (
	"context"
	"iter"

	"github.com/fwojciec/aethel"
	"google.golang.org/genai"
)

// ModelsAPI exports modelsAPI for testing.
type ModelsAPI = modelsAPI

// ChatSession exports chatSession for testing.
type ChatSession = chatSession

// NewWithAPI builds a Client over test doubles.
func NewWithAPI(models ModelsAPI, newChat func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (ChatSession, error), opts ...Option) *Client {
	return newClient(models, newChat, opts...)
}

// NewStreamFromIter exports newStream for testing.
func NewStreamFromIter(seq iter.Seq2[*genai.GenerateContentResponse, error]) aethel.Stream {
	return newStream(seq, nil)
}
