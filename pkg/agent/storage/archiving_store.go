package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/NethermindEth/prompt-garden/pkg/agent/filestorage"
	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
)

// ArchivingStore pins every successfully saved snapshot. Upload failures are
// logged and do not fail the save.
type ArchivingStore struct {
	Store
	uploader filestorage.Uploader

	mu          sync.Mutex
	lastArchive string
}

func NewArchivingStore(store Store, uploader filestorage.Uploader) *ArchivingStore {
	return &ArchivingStore{
		Store:    store,
		uploader: uploader,
	}
}

func (s *ArchivingStore) Save(ctx context.Context, state queue.State) error {
	if err := s.Store.Save(ctx, state); err != nil {
		return err
	}

	hash, err := s.uploader.UploadJson(ctx, state)
	if err != nil {
		slog.Warn("failed to archive state", "error", err)
		return nil
	}

	s.mu.Lock()
	s.lastArchive = hash
	s.mu.Unlock()

	slog.Info("archived state", "ipfsHash", hash)
	return nil
}

// LastArchive returns the IPFS hash of the most recent archived snapshot.
func (s *ArchivingStore) LastArchive() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastArchive
}
