// cli/auth_commands.go
package cli

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/medicore-hms/hmsctl/audit"
	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/rbac"
)

func loginCmd(app **App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the hospital backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()

			if password == "" {
				fmt.Print("Password: ")
				raw, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Println()
				if err != nil {
					return err
				}
				password = string(raw)
			}

			if !a.session.Login(ctx, email, password) {
				a.audit.Record(ctx, email, "", "login", "", audit.OutcomeError, nil)
				return hms_errors.ErrLoginFailed
			}

			user := a.session.CurrentUser()
			a.record(ctx, "login", "", audit.OutcomeOK, nil)
			fmt.Printf("Logged in as %s (%s)\n", user.Email, user.RoleName())
			fmt.Printf("Landing page: %s\n", a.session.RedirectPath())
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and purge stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			ctx := cmd.Context()

			a.session.Initialize(ctx)
			a.record(ctx, "logout", "", audit.OutcomeOK, nil)
			a.session.Logout(ctx)
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func whoamiCmd(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the seated user and session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *app
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			user := a.session.CurrentUser()
			verified := "verified"
			if !a.session.IsVerified() {
				verified = "unverified (backend unreachable at startup)"
			}
			fmt.Printf("%s (%s), session %s\n", user.Email, user.RoleName(), verified)
			fmt.Printf("Permissions: %s\n", strings.Join(rbac.Permissions(user.RoleName()), ", "))
			return printJSON(user)
		},
	}
}
