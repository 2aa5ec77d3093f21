package redis

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpTTL    = 10 * time.Minute
	otpDigits = 6
)

// OTPStore keeps one-time passcodes in Redis.
// Key format: otp:<email>, value is the code, expiring after otpTTL.
type OTPStore struct {
	client *redis.Client
}

// NewOTPStore creates an OTPStore wrapping the given Redis client.
func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

// Issue generates a fresh numeric passcode for the address and stores it
// with a TTL. Issuing again replaces any outstanding code.
func (s *OTPStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode(otpDigits)
	if err != nil {
		return "", fmt.Errorf("otp generate: %w", err)
	}

	if err := s.client.Set(ctx, s.key(email), code, otpTTL).Err(); err != nil {
		return "", fmt.Errorf("otp store: %w", err)
	}
	return code, nil
}

// Consume atomically removes the stored code and reports whether the
// candidate matched it. A code verifies at most once; an absent or expired
// key is simply a mismatch.
func (s *OTPStore) Consume(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.GetDel(ctx, s.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("otp consume: %w", err)
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1, nil
}

func (s *OTPStore) key(email string) string {
	return "otp:" + email
}

// generateCode returns n cryptographically random decimal digits.
func generateCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
