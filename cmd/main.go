package main

import (
	"io"
	"os"

	"medicompare/cmd/bootstrap"
	"medicompare/internal/delivery/tui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "medicompare",
		Short:         "Compare hospital treatment costs across Indian cities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(wizardCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("medicompare: %v", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MediCompare HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New()
			if err != nil {
				return err
			}

			// Run the application
			return app.Run()
		},
	}
}

func wizardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Walk through login, location, search and hospital detail in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the wizard owns the terminal, so logs are dropped
			app, err := bootstrap.NewCore(io.Discard)
			if err != nil {
				return err
			}
			defer app.Close()

			return tui.Run(cmd.Context(), tui.Dependencies{
				Catalog:  app.Usecases.Catalog,
				Flow:     app.Usecases.Flow,
				Auth:     app.Usecases.Auth,
				Location: app.Usecases.Location,
			})
		},
	}
}
