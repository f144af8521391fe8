package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/me/folio/internal/auth"
	"github.com/me/folio/pkg/model"
)

// promptPassword reads a password from stdin. No echo suppression: the
// tool is for local bootstrap, and piped input must keep working.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newUserAddCmd() *cobra.Command {
	var role string
	var password string

	cmd := &cobra.Command{
		Use:   "useradd <email>",
		Short: "Create an account",
		Long:  "Create an account. The first admin account is created this way; the web UI has no self-registration.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.ToLower(strings.TrimSpace(args[0]))
			if !strings.Contains(email, "@") {
				return fmt.Errorf("invalid email: %s", email)
			}
			if role != string(model.RoleAdmin) && role != string(model.RoleSubscriber) {
				return fmt.Errorf("invalid role %q (want admin or subscriber)", role)
			}

			if password == "" {
				var err error
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}
			if len(password) < auth.MinPasswordLength {
				return fmt.Errorf("password must be at least %d characters", auth.MinPasswordLength)
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			st, err := openStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()

			acct := &model.Account{
				ID:           "acct_" + uuid.New().String(),
				Email:        email,
				PasswordHash: hash,
				Role:         model.AccountRole(role),
				CreatedAt:    time.Now().UTC(),
			}
			if err := st.CreateAccount(cmd.Context(), acct); err != nil {
				return fmt.Errorf("create account: %w", err)
			}

			fmt.Printf("Created %s account %s (%s)\n", role, email, acct.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(model.RoleAdmin), "Account role (admin, subscriber)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")

	return cmd
}
