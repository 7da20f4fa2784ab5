package main

import (
	"github.com/spf13/cobra"
)

var alertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Email the high risk digest to the configured recipients",
	RunE: func(c *cobra.Command, args []string) error {
		result, err := apiHandler.AlertService.SendHighRiskDigest(newJobContext())
		if err != nil {
			return err
		}
		apiHandler.Logger.Infow("digest finished", "highRisk", result.HighRiskCount, "sent", result.Sent)
		return nil
	},
}
