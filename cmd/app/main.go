package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qtravel/internal/api/controllers"
)

var rootCmd = &cobra.Command{
	Use:     "qtravel",
	Short:   "QTravel trip planning API",
	Long:    `QTravel serves the trip planning API: users, trips, itinerary items, bookings, collaborators, feedback and travel history.`,
	Version: controllers.APIVersion,
	RunE:    runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
