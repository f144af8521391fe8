package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/me/folio/pkg/model"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so a caller cannot tell which part failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// MinPasswordLength applies when new credentials are created, never when
// existing ones are verified.
const MinPasswordLength = 8

// Argon2id parameters. These follow the RFC 9106 low-memory recommendation
// and are encoded into each hash, so they can change without invalidating
// stored credentials.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// HashPassword hashes a plaintext password with Argon2id and returns it in
// PHC string format ($argon2id$v=19$m=...,t=...,p=...$salt$hash).
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether the plaintext password matches the encoded
// Argon2id hash. The comparison is constant-time. A malformed hash returns
// an error; a clean mismatch returns (false, nil).
func VerifyPassword(encoded, password string) (bool, error) {
	salt, key, time, memory, threads, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeHash(encoded string) (salt, key []byte, time, memory uint32, threads uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, errors.New("malformed argon2id hash")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("parse hash version: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("parse hash parameters: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("decode salt: %w", err)
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("decode key: %w", err)
	}
	return salt, key, time, memory, threads, nil
}

// AccountFinder looks up a login-capable account by its lowercase email.
// A nil account with a nil error means "no such account".
type AccountFinder interface {
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
}

// Identity is the result of a successful credential check.
type Identity struct {
	SubjectID string
	Role      string
}

// Verifier checks submitted credentials against stored account hashes.
type Verifier struct {
	accounts AccountFinder
}

// NewVerifier creates a Verifier backed by the given account source.
func NewVerifier(accounts AccountFinder) *Verifier {
	return &Verifier{accounts: accounts}
}

// Verify checks an email/password pair. The email is lowercased before
// lookup. Unknown email and wrong password both return ErrInvalidCredentials;
// store failures are wrapped and returned as-is.
func (v *Verifier) Verify(ctx context.Context, email, password string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := v.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := VerifyPassword(account.PasswordHash, password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	return &Identity{SubjectID: account.ID, Role: string(account.Role)}, nil
}
