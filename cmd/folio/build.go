package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		app := folio.New(cfg)
		defer app.Close()
		return app.Build(buildOut)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "dist", "output directory")
	rootCmd.AddCommand(buildCmd)
}
