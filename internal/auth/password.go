package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"

	"github.com/hnrobert/lumgecos/internal/logger"
	"github.com/hnrobert/lumgecos/internal/usermgr"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserLocked         = errors.New("user is locked")
	ErrUnsupportedHash    = errors.New("unsupported password hash")
)

// suFallback is replaced in tests.
var suFallback = verifyWithSu

func VerifyPassword(ctx context.Context, shadowPath, username, password string) error {
	sh, err := usermgr.LoadShadow(shadowPath)
	if err != nil {
		return err
	}
	se := sh.Find(username)
	if se == nil {
		return ErrInvalidCredentials
	}
	if se.Hash == "" || strings.HasPrefix(se.Hash, "!") || strings.HasPrefix(se.Hash, "*") {
		return ErrUserLocked
	}
	ok, err := verifyCrypt(se.Hash, password)
	if errors.Is(err, ErrUnsupportedHash) {
		logger.Debug("hash for %s not supported natively, trying su", username)
		ok, err = suFallback(ctx, username, password)
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}
	return nil
}

func verifyCrypt(hash, password string) (bool, error) {
	// $1$ (md5-crypt), $5$ (sha256-crypt), $6$ (sha512-crypt).
	// yescrypt ($y$), scrypt ($7$) and bcrypt ($2*$) are left to su.
	crypters := []crypt.Crypter{sha512_crypt.New(), sha256_crypt.New(), md5_crypt.New()}
	for _, c := range crypters {
		if err := c.Verify(hash, []byte(password)); err == nil {
			return true, nil
		}
	}
	if strings.HasPrefix(hash, "$y$") || strings.HasPrefix(hash, "$7$") || strings.HasPrefix(hash, "$2") {
		return false, ErrUnsupportedHash
	}
	return false, nil
}

func HumanAuthError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, ErrUserLocked):
		return "This account is locked."
	case errors.Is(err, ErrAuthBackend):
		return "System authentication is unavailable."
	default:
		return fmt.Sprintf("Authentication failed: %v", err)
	}
}
