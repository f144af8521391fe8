package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/folio/pkg/model"
)

func newAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()

			accounts, total, err := st.ListAccounts(cmd.Context(), model.ListOptions{Limit: 100})
			if err != nil {
				return fmt.Errorf("list accounts: %w", err)
			}

			if len(accounts) == 0 {
				fmt.Println("No accounts found.")
				return nil
			}

			fmt.Printf("%-42s  %-30s  %-10s  %-16s  %s\n", "ID", "EMAIL", "ROLE", "CREATED", "LAST LOGIN")
			fmt.Printf("%-42s  %-30s  %-10s  %-16s  %s\n", "----", "-----", "----", "-------", "----------")
			for _, a := range accounts {
				lastLogin := "never"
				if !a.LastLoginAt.IsZero() {
					lastLogin = a.LastLoginAt.Format("2006-01-02 15:04")
				}
				fmt.Printf("%-42s  %-30s  %-10s  %-16s  %s\n",
					a.ID, a.Email, a.Role, a.CreatedAt.Format("2006-01-02 15:04"), lastLogin)
			}

			if total > len(accounts) {
				fmt.Printf("\n(%d of %d shown)\n", len(accounts), total)
			}
			return nil
		},
	}
	return cmd
}
