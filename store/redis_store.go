// store/redis_store.go
package store

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
)

// RedisStore keeps the session record in Redis, encrypted at rest, so a
// shared kiosk or a fleet of reception seats can hold one session per seat
// outside the local filesystem.
type RedisStore struct {
	client        *redis.Client
	seat          string
	encryptionKey []byte
}

func NewRedisStore(client *redis.Client, seat string, encryptionKey string) (*RedisStore, error) {
	if len(encryptionKey) != 32 {
		return nil, hms_errors.ErrEncryptionKeyInvalid
	}
	return &RedisStore{
		client:        client,
		seat:          seat,
		encryptionKey: []byte(encryptionKey),
	}, nil
}

func (s *RedisStore) key() string {
	return fmt.Sprintf("hms:session:%s", s.seat)
}

func (s *RedisStore) Load(ctx context.Context) (Record, bool, error) {
	encoded, err := s.client.Get(ctx, s.key()).Result()
	if errors.Is(err, redis.Nil) {
		return Record{}, false, nil
	} else if err != nil {
		return Record{}, false, fmt.Errorf("%w: loading from redis: %v", hms_errors.ErrStoreUnavailable, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: not base64: %v", hms_errors.ErrRecordCorrupt, err)
	}
	plaintext, err := s.decrypt(ciphertext)
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: cannot decrypt: %v", hms_errors.ErrRecordCorrupt, err)
	}

	var rec Record
	if err := json.Unmarshal(plaintext, &rec); err != nil {
		return Record{}, false, nil
	}
	if !rec.Complete() {
		return Record{}, false, nil
	}
	return rec, true, nil
}

func (s *RedisStore) Save(ctx context.Context, rec Record) error {
	plaintext, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("serializing session record: %w", err)
	}
	ciphertext, err := s.encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("encrypting session record: %w", err)
	}
	// No TTL on the key. Expiry is enforced by the session manager's own
	// 24-hour clock so the stale-record fallback path still has data.
	if err := s.client.Set(ctx, s.key(), base64.StdEncoding.EncodeToString(ciphertext), 0).Err(); err != nil {
		return fmt.Errorf("%w: storing in redis: %v", hms_errors.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("clearing session in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *RedisStore) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
