package settings

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// EncryptableFields lists the gateway settings that must never be stored in
// plaintext.
var EncryptableFields = []string{"store_id", "store_password"}

var ErrNotFound = errors.New("settings: key not found")

// Store keeps gateway settings in the database, sealing sensitive values
// with XChaCha20-Poly1305.
type Store struct {
	db  *sql.DB
	key []byte
}

// NewStore builds a settings store from a hex-encoded 32-byte key.
func NewStore(db *sql.DB, hexKey string) (*Store, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("settings: invalid key encoding: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("settings: key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	return &Store{db: db, key: key}, nil
}

func (s *Store) seal(plaintext string) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

func (s *Store) open(sealed []byte) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", err
	}
	if len(sealed) < aead.NonceSize() {
		return "", errors.New("settings: sealed value too short")
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("settings: decrypt failed: %w", err)
	}
	return string(plaintext), nil
}

// Save upserts one setting, encrypting the value at rest.
func (s *Store) Save(ctx context.Context, name, value string) error {
	sealed, err := s.seal(value)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO gateway_settings (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, name, sealed)
	return err
}

// Get loads and decrypts one setting.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM gateway_settings WHERE name = $1
	`, name).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return s.open(sealed)
}
