package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moodify/moodctl/client"
)

var (
	feedPage int
	feedSize int
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse the mood post feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAuth(a); err != nil {
			return err
		}
		page, err := a.api.ListPosts(cmd.Context(), feedPage, feedSize)
		if err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "failed to load posts"))
		}
		if len(page.Content) == 0 {
			fmt.Println("No posts yet. Create one with 'moodctl post create'.")
			return nil
		}
		out := cmd.OutOrStdout()
		for i, p := range page.Content {
			if i > 0 {
				fmt.Fprintln(out)
			}
			renderPost(out, p)
		}
		pageFooter(out, page.Number, page.TotalPages, page.Last)
		return nil
	},
}

func init() {
	feedCmd.Flags().IntVar(&feedPage, "page", 0, "Page number (zero-based)")
	feedCmd.Flags().IntVar(&feedSize, "size", client.DefaultPageSize, "Posts per page")
	rootCmd.AddCommand(feedCmd)
}
