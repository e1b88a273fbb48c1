package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
)

// Store loads the queue state at startup and persists it at save points.
type Store interface {
	Load(ctx context.Context) (queue.State, error)
	Save(ctx context.Context, state queue.State) error
}

func encodeState(state queue.State) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	return data, nil
}

func decodeState(data []byte) (queue.State, error) {
	var state queue.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return state.Normalize(), nil
}
