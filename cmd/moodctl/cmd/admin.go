package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodify/moodctl/client"
	"github.com/moodify/moodctl/session"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations (admin role required)",
}

var (
	adminUsersPage int
	adminUsersSize int
)

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(a); err != nil {
			return err
		}
		page, err := fetchUsersPage(cmd.Context(), a.api, adminUsersPage, adminUsersSize)
		if err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to load users"))
		}
		if len(page.Content) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		out := cmd.OutOrStdout()
		renderUserTable(out, page.Content)
		pageFooter(out, page.Number, page.TotalPages, page.Last)
		return nil
	},
}

// fetchUsersPage loads a user page, stepping back one page when the
// requested one comes back empty. Deleting the last user on the last
// page otherwise strands the listing on a page that no longer exists.
func fetchUsersPage(ctx context.Context, api *client.Client, page, size int) (client.Page[client.User], error) {
	p, err := api.ListUsers(ctx, page, size)
	if err != nil {
		return client.Page[client.User]{}, err
	}
	if len(p.Content) == 0 && page > 0 {
		return api.ListUsers(ctx, page-1, size)
	}
	return p, nil
}

// checkSelfDelete rejects deleting the session's own account before any
// request is dispatched, independent of server enforcement.
func checkSelfDelete(sess session.Session, targetID int64) error {
	if sess.ID == targetID {
		return fmt.Errorf("you cannot delete your own account")
	}
	return nil
}

var adminUserDeleteYes bool

var adminUserDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireAdmin(a)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := checkSelfDelete(sess, id); err != nil {
			return err
		}
		if !adminUserDeleteYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete user #%d?", id)) {
			fmt.Println("Aborted.")
			return nil
		}
		if err := a.api.DeleteUser(cmd.Context(), id); err != nil {
			if client.IsNotFound(err) {
				return fmt.Errorf("user %d not found", id)
			}
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to delete user"))
		}
		fmt.Printf("User #%d deleted.\n", id)
		return nil
	},
}

var adminRmPostCmd = &cobra.Command{
	Use:   "rm-post <post-id>",
	Short: "Delete any post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(a); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := a.api.DeletePostAsAdmin(cmd.Context(), id); err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to delete post"))
		}
		fmt.Printf("Post #%d deleted.\n", id)
		return nil
	},
}

var adminRmCommentCmd = &cobra.Command{
	Use:   "rm-comment <comment-id>",
	Short: "Delete any comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(a); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := a.api.DeleteCommentAsAdmin(cmd.Context(), id); err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to delete comment"))
		}
		fmt.Printf("Comment #%d deleted.\n", id)
		return nil
	},
}

func init() {
	adminUsersCmd.Flags().IntVar(&adminUsersPage, "page", 0, "Page number (zero-based)")
	adminUsersCmd.Flags().IntVar(&adminUsersSize, "size", client.DefaultPageSize, "Users per page")
	adminUserDeleteCmd.Flags().BoolVarP(&adminUserDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	adminUsersCmd.AddCommand(adminUserDeleteCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminRmPostCmd)
	adminCmd.AddCommand(adminRmCommentCmd)
	rootCmd.AddCommand(adminCmd)
}
