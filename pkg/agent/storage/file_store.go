package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
	"github.com/NethermindEth/prompt-garden/pkg/agent/sealing"
)

// FileStore keeps the state as plain JSON on disk.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (queue.State, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("initialized new state", "file", s.path)
		return queue.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	state, err := decodeState(data)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded previous state", "file", s.path)
	return state, nil
}

func (s *FileStore) Save(ctx context.Context, state queue.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	if err := sealing.WriteFileAtomic(s.path, data); err != nil {
		return err
	}

	slog.Info("saved state", "file", s.path)
	return nil
}
