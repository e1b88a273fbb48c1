package storage

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
	"github.com/NethermindEth/prompt-garden/pkg/agent/sealing"
)

// SealedStore keeps the state encrypted with a key derived inside the TEE.
type SealedStore struct {
	path    string
	deriver sealing.KeyDeriver
}

var _ Store = (*SealedStore)(nil)

func NewSealedStore(path string, deriver sealing.KeyDeriver) *SealedStore {
	return &SealedStore{
		path:    path,
		deriver: deriver,
	}
}

func (s *SealedStore) Load(ctx context.Context) (queue.State, error) {
	data, err := sealing.ReadSealedFile(ctx, s.deriver, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("initialized new state", "file", s.path)
		return queue.NewState(), nil
	}
	if err != nil {
		return nil, err
	}

	state, err := decodeState(data)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded sealed state", "file", s.path)
	return state, nil
}

func (s *SealedStore) Save(ctx context.Context, state queue.State) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	if err := sealing.WriteSealedFile(ctx, s.deriver, s.path, data); err != nil {
		return err
	}

	slog.Info("saved sealed state", "file", s.path)
	return nil
}
