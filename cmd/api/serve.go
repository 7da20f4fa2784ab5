package main

import (
	"os"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the http api",
	RunE: func(c *cobra.Command, args []string) error {
		port, _ := c.Flags().GetInt("port")
		if port == 0 {
			port = secrets.Port
		}
		apiHandler.Logger.Infof("starting api on port %d (commit %s)", port, os.Getenv("commit_hash"))
		return apiHandler.StartApi(port)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on, defaults to the configured port")
}
