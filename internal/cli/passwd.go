package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/folio/internal/auth"
)

func newPasswdCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd <email>",
		Short: "Change an account's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.ToLower(strings.TrimSpace(args[0]))

			if password == "" {
				var err error
				password, err = promptPassword("New password: ")
				if err != nil {
					return err
				}
			}
			if len(password) < auth.MinPasswordLength {
				return fmt.Errorf("password must be at least %d characters", auth.MinPasswordLength)
			}

			st, err := openStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()

			acct, err := st.GetAccountByEmail(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("look up account: %w", err)
			}
			if acct == nil {
				return fmt.Errorf("no account with email %s", email)
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			acct.PasswordHash = hash

			if err := st.UpdateAccount(cmd.Context(), acct); err != nil {
				return fmt.Errorf("update account: %w", err)
			}

			fmt.Printf("Password updated for %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "New password (prompted when omitted)")

	return cmd
}
