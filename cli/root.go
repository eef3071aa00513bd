// cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	logger "github.com/medicore-hms/hmsctl/logging"
)

// Execute builds the command tree and runs it. Wiring happens once in a
// persistent pre-run so every command sees the same App.
func Execute() {
	var app *App

	rootCmd := &cobra.Command{
		Use:           "hmsctl",
		Short:         "Operator console for the MediCore hospital backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = newApp(cmd.Context())
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	rootCmd.AddCommand(
		loginCmd(&app),
		logoutCmd(&app),
		whoamiCmd(&app),
		patientsCmd(&app),
		staffCmd(&app),
		departmentsCmd(&app),
		labTestsCmd(&app),
		medicinesCmd(&app),
		recordsCmd(&app),
		surgeryTypesCmd(&app),
		billingCmd(&app),
		tokensCmd(&app),
		statsCmd(&app),
		accountCmd(&app),
		exportCmd(&app),
		auditCmd(&app),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
