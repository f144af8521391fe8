package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/folio/pkg/model"
)

func newMessagesCmd() *cobra.Command {
	var unreadOnly bool
	var show string

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List contact messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd.Context())
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()

			if show != "" {
				msg, err := st.GetMessage(cmd.Context(), show)
				if err != nil {
					return fmt.Errorf("get message: %w", err)
				}
				if msg == nil {
					return fmt.Errorf("no message with id %s", show)
				}
				fmt.Printf("From:    %s <%s>\n", msg.Name, msg.Email)
				if msg.Subject != "" {
					fmt.Printf("Subject: %s\n", msg.Subject)
				}
				fmt.Printf("Date:    %s\n\n%s\n", msg.CreatedAt.Format("2006-01-02 15:04"), msg.Body)
				if !msg.Read {
					if err := st.MarkMessageRead(cmd.Context(), msg.ID, true); err != nil {
						return fmt.Errorf("mark read: %w", err)
					}
				}
				return nil
			}

			msgs, total, err := st.ListMessages(cmd.Context(), model.ListOptions{
				Limit:      100,
				UnreadOnly: unreadOnly,
			})
			if err != nil {
				return fmt.Errorf("list messages: %w", err)
			}

			if len(msgs) == 0 {
				fmt.Println("No messages found.")
				return nil
			}

			fmt.Printf("%-40s  %-6s  %-24s  %-16s  %s\n", "ID", "READ", "FROM", "DATE", "SUBJECT")
			fmt.Printf("%-40s  %-6s  %-24s  %-16s  %s\n", "----", "----", "----", "----", "-------")
			for _, m := range msgs {
				read := "no"
				if m.Read {
					read = "yes"
				}
				fmt.Printf("%-40s  %-6s  %-24s  %-16s  %s\n",
					m.ID, read, m.Name, m.CreatedAt.Format("2006-01-02 15:04"), m.Subject)
			}

			if total > len(msgs) {
				fmt.Printf("\n(%d of %d shown)\n", len(msgs), total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Show unread messages only")
	cmd.Flags().StringVar(&show, "show", "", "Show one message in full (marks it read)")

	return cmd
}
