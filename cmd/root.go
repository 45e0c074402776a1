package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mktlab/estratega/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "estratega",
	Short: "Autoevaluación de estrategia de producto y marca",
	Long:  "Estratega — aplicación de terminal para repasar producto, marca y decisiones de mercado con un quiz adaptativo.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(catalogCmd)
}
