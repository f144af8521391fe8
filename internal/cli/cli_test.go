package cli

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/me/folio/internal/auth"
	"github.com/me/folio/internal/store"
)

// runCLI executes the root command against a database under dir.
func runCLI(t *testing.T, dbPath string, args ...string) error {
	t.Helper()
	root := NewRootCmd()
	root.SetArgs(append([]string{"--db", dbPath}, args...))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func openTestStore(t *testing.T, dbPath string) store.Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	st, err := store.NewSQLiteStore(dbPath, logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestUserAddCreatesAdmin(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "folio.db")

	if err := runCLI(t, dbPath, "useradd", "owner@example.com", "--password", "correct horse"); err != nil {
		t.Fatalf("useradd: %v", err)
	}

	st := openTestStore(t, dbPath)
	acct, err := st.GetAccountByEmail(context.Background(), "owner@example.com")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if acct == nil {
		t.Fatal("account not created")
	}
	if !acct.IsAdmin() {
		t.Errorf("role = %q, want admin", acct.Role)
	}

	ok, err := auth.VerifyPassword(acct.PasswordHash, "correct horse")
	if err != nil || !ok {
		t.Errorf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestUserAddRejectsShortPassword(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "folio.db")

	if err := runCLI(t, dbPath, "useradd", "owner@example.com", "--password", "short"); err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestUserAddRejectsBadRole(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "folio.db")

	err := runCLI(t, dbPath, "useradd", "owner@example.com", "--password", "long enough", "--role", "superuser")
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestPasswdRotatesHash(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "folio.db")

	if err := runCLI(t, dbPath, "useradd", "owner@example.com", "--password", "old password"); err != nil {
		t.Fatalf("useradd: %v", err)
	}
	if err := runCLI(t, dbPath, "passwd", "owner@example.com", "--password", "new password"); err != nil {
		t.Fatalf("passwd: %v", err)
	}

	st := openTestStore(t, dbPath)
	acct, err := st.GetAccountByEmail(context.Background(), "owner@example.com")
	if err != nil || acct == nil {
		t.Fatalf("get account: acct=%v err=%v", acct, err)
	}

	if ok, _ := auth.VerifyPassword(acct.PasswordHash, "old password"); ok {
		t.Error("old password still verifies")
	}
	if ok, _ := auth.VerifyPassword(acct.PasswordHash, "new password"); !ok {
		t.Error("new password does not verify")
	}
}

func TestPasswdUnknownEmail(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "folio.db")

	if err := runCLI(t, dbPath, "passwd", "nobody@example.com", "--password", "long enough"); err == nil {
		t.Fatal("expected error for unknown account")
	}
}
