package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/me/folio/pkg/model"
)

type fakeAccounts struct {
	accounts map[string]*model.Account
	err      error
}

func (f *fakeAccounts) GetAccountByEmail(_ context.Context, email string) (*model.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[email], nil
}

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("Correct1!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Errorf("unexpected hash format: %s", hash)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Correct1!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	ok, err := VerifyPassword(hash, "Correct1!")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !ok {
		t.Error("expected match for correct password")
	}

	ok, err = VerifyPassword(hash, "Wrong1!")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if ok {
		t.Error("expected mismatch for wrong password")
	}
}

// Same hash, same password, same answer every call: no hidden state.
func TestVerifyPassword_Deterministic(t *testing.T) {
	hash, err := HashPassword("Correct1!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		ok, err := VerifyPassword(hash, "Correct1!")
		if err != nil || !ok {
			t.Fatalf("call %d: ok=%v err=%v, want true,nil", i, ok, err)
		}
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
	}
	for _, encoded := range tests {
		if _, err := VerifyPassword(encoded, "pw"); err == nil {
			t.Errorf("expected error for malformed hash %q", encoded)
		}
	}
}

func TestVerifier_Verify(t *testing.T) {
	hash, err := HashPassword("Correct1!")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	accounts := &fakeAccounts{accounts: map[string]*model.Account{
		"user@test.com": {ID: "acc_1", Email: "user@test.com", PasswordHash: hash, Role: model.RoleAdmin},
	}}
	v := NewVerifier(accounts)
	ctx := context.Background()

	id, err := v.Verify(ctx, "user@test.com", "Correct1!")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if id.SubjectID != "acc_1" {
		t.Errorf("SubjectID = %q, want acc_1", id.SubjectID)
	}
	if id.Role != "admin" {
		t.Errorf("Role = %q, want admin", id.Role)
	}
}

func TestVerifier_Verify_NormalizesEmail(t *testing.T) {
	hash, _ := HashPassword("Correct1!")
	accounts := &fakeAccounts{accounts: map[string]*model.Account{
		"user@test.com": {ID: "acc_1", PasswordHash: hash, Role: model.RoleAdmin},
	}}
	v := NewVerifier(accounts)

	if _, err := v.Verify(context.Background(), "  User@Test.COM ", "Correct1!"); err != nil {
		t.Errorf("Verify with mixed-case email failed: %v", err)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestVerifier_Verify_GenericFailure(t *testing.T) {
	hash, _ := HashPassword("Correct1!")
	accounts := &fakeAccounts{accounts: map[string]*model.Account{
		"user@test.com": {ID: "acc_1", PasswordHash: hash, Role: model.RoleAdmin},
	}}
	v := NewVerifier(accounts)
	ctx := context.Background()

	_, errWrongPassword := v.Verify(ctx, "user@test.com", "Wrong1!")
	_, errUnknownEmail := v.Verify(ctx, "nobody@test.com", "Correct1!")

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", errUnknownEmail)
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Error("failure messages must not distinguish unknown email from wrong password")
	}
}

func TestVerifier_Verify_StoreError(t *testing.T) {
	v := NewVerifier(&fakeAccounts{err: errors.New("connection refused")})
	_, err := v.Verify(context.Background(), "user@test.com", "pw")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("store failure should not look like bad credentials, got %v", err)
	}
}
