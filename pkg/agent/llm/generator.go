package llm

import "context"

const RoleUser = "user"

type Message struct {
	Role    string
	Content string
}

// Completer performs a single chat completion request against a model backend.
type Completer interface {
	Complete(ctx context.Context, messages []Message, temperature float32, model string, seed int) (string, error)
}

// Generator never fails: any error is absorbed and reported as ok == false.
type Generator interface {
	Generate(ctx context.Context, messages []Message, temperature float32, model string, seed int) (string, bool)
}

func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}
