package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/moodify/moodctl/client"
)

// renderPost prints one feed entry.
func renderPost(w io.Writer, p client.Post) {
	fmt.Fprintf(w, "#%d  @%s  %s\n", p.ID, p.Author.Username, p.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "  %s\n", p.Content)
	if p.SongURL != nil && *p.SongURL != "" {
		fmt.Fprintf(w, "  song: %s\n", *p.SongURL)
	}
	liked := ""
	if p.LikedByCurrentUser {
		liked = " (liked)"
	}
	fmt.Fprintf(w, "  %d likes%s, %d comments\n", p.LikeCount, liked, p.CommentCount)
}

// renderComment prints one comment line.
func renderComment(w io.Writer, c client.Comment) {
	fmt.Fprintf(w, "#%d  @%s  %s\n  %s\n", c.ID, c.Author.Username, c.CreatedAt.Format("2006-01-02 15:04"), c.Content)
}

// renderUserTable prints an admin user listing.
func renderUserTable(w io.Writer, users []client.User) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLES\tENABLED\tCREATED")
	for _, u := range users {
		enabled := "no"
		if u.Enabled {
			enabled = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.Email, strings.Join(u.Roles, ","), enabled,
			u.CreatedAt.Format("2006-01-02"))
	}
	tw.Flush()
}

// pageFooter prints "page x of y" navigation state under a listing.
func pageFooter(w io.Writer, number, totalPages int, last bool) {
	if totalPages <= 1 {
		return
	}
	hint := fmt.Sprintf("--page %d for next", number+1)
	if last {
		hint = "last page"
	}
	fmt.Fprintf(w, "\npage %d of %d (%s)\n", number+1, totalPages, hint)
}

// confirm asks for a y/N answer on in; anything but y/yes declines.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// trimSongURL maps a blank song flag to nil so the request clears or
// omits the link, matching what the create/edit forms send.
func trimSongURL(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
