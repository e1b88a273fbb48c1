package sealing

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Dstack-TEE/dstack/sdk/go/tappd"

	"github.com/NethermindEth/prompt-garden/pkg/agent/debug"
)

const (
	sealingKeyPath    = "/agent/state-sealing"
	sealingKeySubject = "prompt-garden"
	sealingKeyLength  = 32
)

// KeyDeriver is the part of the tappd client used to derive the sealing key.
type KeyDeriver interface {
	DeriveKeyWithSubject(ctx context.Context, path string, subject string) (*tappd.DeriveKeyResponse, error)
}

func NewTappdKeyDeriver(dstackTappdEndpoint string) KeyDeriver {
	return tappd.NewTappdClient(tappd.WithEndpoint(dstackTappdEndpoint))
}

func getSealingKey(ctx context.Context, deriver KeyDeriver) ([]byte, error) {
	sealingKeyResp, err := deriver.DeriveKeyWithSubject(ctx, sealingKeyPath, sealingKeySubject)
	if err != nil {
		return nil, fmt.Errorf("failed to derive sealing key: %w", err)
	}

	sealingKey, err := sealingKeyResp.ToBytes(sealingKeyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to convert sealing key to bytes: %w", err)
	}

	if len(sealingKey) != sealingKeyLength {
		return nil, fmt.Errorf("sealing key has %d bytes, want %d", len(sealingKey), sealingKeyLength)
	}

	return sealingKey, nil
}

func WriteSealedFile(ctx context.Context, deriver KeyDeriver, filePath string, data []byte) error {
	if debug.IsDebugPlainState() {
		return writeFilePlain(filePath, data)
	}

	return writeFileSealed(ctx, deriver, filePath, data)
}

func ReadSealedFile(ctx context.Context, deriver KeyDeriver, filePath string) ([]byte, error) {
	if debug.IsDebugPlainState() {
		return readFilePlain(filePath)
	}

	return readFileSealed(ctx, deriver, filePath)
}

func writeFilePlain(filePath string, data []byte) error {
	return WriteFileAtomic(filePath, data)
}

// WriteFileAtomic writes data to a temp file next to filePath and renames it
// into place, so readers never see a partially written file.
func WriteFileAtomic(filePath string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filePath), filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}

	return nil
}

func readFilePlain(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}

func writeFileSealed(ctx context.Context, deriver KeyDeriver, filePath string, data []byte) error {
	key, err := getSealingKey(ctx, deriver)
	if err != nil {
		return fmt.Errorf("failed to get sealing key: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("failed to create nonce: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, data, nil)

	if err := WriteFileAtomic(filePath, ciphertext); err != nil {
		return fmt.Errorf("failed to write sealed file: %w", err)
	}

	return nil
}

func readFileSealed(ctx context.Context, deriver KeyDeriver, filePath string) ([]byte, error) {
	ciphertext, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sealed file: %w", err)
	}

	key, err := getSealingKey(ctx, deriver)
	if err != nil {
		return nil, fmt.Errorf("failed to get sealing key: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	return plaintext, nil
}
