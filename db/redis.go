// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/edulock/sebgate/logging"
	"github.com/edulock/sebgate/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Cached exam policies carry quiz config secrets, so cache entries are
	// always encrypted at rest
	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
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

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
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

func examPolicyCacheKey(moduleID int) string {
	return fmt.Sprintf("seb:policy:%d", moduleID)
}

// CacheExamPolicy stores a quiz exam policy under its course-module id.
func CacheExamPolicy(ctx context.Context, policy *model.QuizExamPolicy) error {
	policyJSON, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("failed to marshal exam policy: %w", err)
	}

	encryptedPolicy, err := encrypt(policyJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt exam policy: %w", err)
	}

	ttl := viper.GetDuration("seb.policyCacheTTL")
	err = RedisClient.Set(ctx, examPolicyCacheKey(policy.ModuleID),
		base64.StdEncoding.EncodeToString(encryptedPolicy), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache exam policy: %w", err)
	}

	logger.Debug("Exam policy cached successfully", zap.Int("moduleID", policy.ModuleID))
	return nil
}

// GetCachedExamPolicy returns the cached policy for a module id, or
// redis.Nil via the wrapped error when the entry is absent.
func GetCachedExamPolicy(ctx context.Context, moduleID int) (*model.QuizExamPolicy, error) {
	encoded, err := RedisClient.Get(ctx, examPolicyCacheKey(moduleID)).Result()
	if err != nil {
		return nil, err
	}

	encryptedPolicy, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached exam policy: %w", err)
	}

	policyJSON, err := decrypt(encryptedPolicy)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt cached exam policy: %w", err)
	}

	var policy model.QuizExamPolicy
	if err := json.Unmarshal(policyJSON, &policy); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached exam policy: %w", err)
	}

	return &policy, nil
}

// DeleteCachedExamPolicy evicts the cached policy for a module id.
func DeleteCachedExamPolicy(ctx context.Context, moduleID int) error {
	if err := RedisClient.Del(ctx, examPolicyCacheKey(moduleID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached exam policy: %w", err)
	}
	return nil
}

// RateLimit implements a fixed-window counter per key.
func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := RedisClient.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := RedisClient.Expire(ctx, redisKey, per).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit expiry: %w", err)
		}
	}

	return count <= int64(limit), nil
}
