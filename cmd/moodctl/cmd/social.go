package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodify/moodctl/client"
)

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAuth(a); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		lc, err := a.api.LikePost(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to like post"))
		}
		fmt.Printf("Post #%d now has %d likes.\n", id, lc.LikeCount)
		return nil
	},
}

var unlikeCmd = &cobra.Command{
	Use:   "unlike <post-id>",
	Short: "Remove your like from a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAuth(a); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		lc, err := a.api.UnlikePost(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to unlike post"))
		}
		fmt.Printf("Post #%d now has %d likes.\n", id, lc.LikeCount)
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Read and write comments",
}

var (
	commentPage int
	commentSize int
)

var commentListCmd = &cobra.Command{
	Use:   "list <post-id>",
	Short: "List comments on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		page, err := a.api.ListComments(cmd.Context(), id, commentPage, commentSize)
		if err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to load comments"))
		}
		if len(page.Content) == 0 {
			fmt.Println("No comments yet.")
			return nil
		}
		out := cmd.OutOrStdout()
		for _, c := range page.Content {
			renderComment(out, c)
		}
		pageFooter(out, page.Number, page.TotalPages, page.Last)
		return nil
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <post-id> <content>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAuth(a); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		content := strings.TrimSpace(args[1])
		if content == "" {
			return fmt.Errorf("comment content cannot be empty")
		}
		c, err := a.api.CreateComment(cmd.Context(), id, client.CommentRequest{Content: content})
		if err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to add comment"))
		}
		fmt.Printf("Comment #%d added to post #%d.\n", c.ID, id)
		return nil
	},
}

var commentDelCmd = &cobra.Command{
	Use:   "del <comment-id>",
	Short: "Delete one of your comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAuth(a); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := a.api.DeleteComment(cmd.Context(), id); err != nil {
			if client.IsForbidden(err) {
				return fmt.Errorf("you may only delete your own comments")
			}
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to delete comment"))
		}
		fmt.Printf("Comment #%d deleted.\n", id)
		return nil
	},
}

func init() {
	commentListCmd.Flags().IntVar(&commentPage, "page", 0, "Page number (zero-based)")
	commentListCmd.Flags().IntVar(&commentSize, "size", client.DefaultPageSize, "Comments per page")

	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentDelCmd)

	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(unlikeCmd)
	rootCmd.AddCommand(commentCmd)
}
