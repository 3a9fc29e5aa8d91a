package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodify/moodctl/client"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create, inspect and manage mood posts",
}

var postShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		p, err := a.api.GetPost(cmd.Context(), id)
		if err != nil {
			if client.IsNotFound(err) {
				return fmt.Errorf("post %d not found", id)
			}
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to load post"))
		}
		renderPost(cmd.OutOrStdout(), p)
		return nil
	},
}

var createSongURL string

var postCreateCmd = &cobra.Command{
	Use:   "create <content>",
	Short: "Create a new mood post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAuth(a); err != nil {
			return err
		}
		content := strings.TrimSpace(args[0])
		if content == "" {
			return fmt.Errorf("post content cannot be empty")
		}
		p, err := a.api.CreatePost(cmd.Context(), client.PostRequest{
			Content: content,
			SongURL: trimSongURL(createSongURL),
		})
		if err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to create post"))
		}
		fmt.Printf("Post #%d created.\n", p.ID)
		return nil
	},
}

var (
	editContent string
	editSongURL string
)

var postEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireAuth(a)
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		existing, err := a.api.GetPost(cmd.Context(), id)
		if err != nil {
			if client.IsNotFound(err) {
				return fmt.Errorf("post %d not found", id)
			}
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to load post"))
		}
		// Only the author may edit. The backend enforces this too; the
		// check saves a doomed round trip.
		if existing.Author.ID != sess.ID {
			return fmt.Errorf("you are not the author of post %d", id)
		}

		content := strings.TrimSpace(editContent)
		if content == "" {
			content = existing.Content
		}
		song := trimSongURL(editSongURL)
		if !cmd.Flags().Changed("song") {
			song = existing.SongURL
		}

		if _, err := a.api.UpdatePost(cmd.Context(), id, client.PostRequest{
			Content: content,
			SongURL: song,
		}); err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to update post"))
		}
		fmt.Printf("Post #%d updated.\n", id)
		return nil
	},
}

var postDeleteYes bool

var postDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post (author or admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAuth(a); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !postDeleteYes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete post #%d?", id)) {
			fmt.Println("Aborted.")
			return nil
		}
		if err := a.api.DeletePost(cmd.Context(), id); err != nil {
			if client.IsForbidden(err) {
				return fmt.Errorf("you may only delete your own posts")
			}
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to delete post"))
		}
		fmt.Printf("Post #%d deleted.\n", id)
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func init() {
	postCreateCmd.Flags().StringVar(&createSongURL, "song", "", "Song URL matching your mood (optional)")
	postEditCmd.Flags().StringVar(&editContent, "content", "", "Replacement content")
	postEditCmd.Flags().StringVar(&editSongURL, "song", "", "Replacement song URL (empty clears it)")
	postDeleteCmd.Flags().BoolVarP(&postDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postEditCmd)
	postCmd.AddCommand(postDeleteCmd)
	rootCmd.AddCommand(postCmd)
}
