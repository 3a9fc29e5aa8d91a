package cmd

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/moodify/moodctl/client"
)

var validate = validator.New()

// registerInput carries the same constraints the registration form
// enforces before the request is dispatched.
type registerInput struct {
	Username string `validate:"required,min=3,max=32"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

var (
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a new Moodify account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := registerInput{
			Username: strings.TrimSpace(args[0]),
			Email:    strings.TrimSpace(registerEmail),
			Password: registerPassword,
		}
		if err := validate.Struct(in); err != nil {
			return fmt.Errorf("invalid input: %w", err)
		}

		user, err := a.api.Register(cmd.Context(), client.RegisterRequest{
			Username: in.Username,
			Email:    in.Email,
			Password: in.Password,
		})
		if err != nil {
			return fmt.Errorf("%s", client.ErrorMessage(err, "registration failed"))
		}
		fmt.Printf("Account %q created. Run 'moodctl login %s' to sign in.\n", user.Username, user.Username)
		return nil
	},
}

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := a.api.Login(cmd.Context(), client.LoginRequest{
			Username: args[0],
			Password: loginPassword,
		})
		if err != nil {
			if client.IsUnauthorized(err) {
				return fmt.Errorf("invalid username or password")
			}
			return fmt.Errorf("%s", client.ErrorMessage(err, "login failed"))
		}
		// The login flow is the single writer of the session store.
		if err := a.sessions.Save(sess); err != nil {
			return fmt.Errorf("persisting session: %w", err)
		}
		fmt.Printf("Logged in as %s.\n", sess.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the persisted session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Clearing an absent session is fine; logout is idempotent.
		if err := a.sessions.Clear(); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := requireAuth(a)
		if err != nil {
			return err
		}
		fmt.Printf("%s (id %d)\n", sess.Username, sess.ID)
		if len(sess.Roles) > 0 {
			fmt.Printf("roles: %s\n", strings.Join(sess.Roles, ", "))
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Password (min 8 characters)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
