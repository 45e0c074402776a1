package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mktlab/estratega/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate the embedded content and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		fmt.Printf("Diagnóstico: %d preguntas\n", len(cat.Diagnostic()))
		for _, tier := range []catalog.Tier{catalog.TierBasic, catalog.TierIntermediate, catalog.TierAdvanced} {
			fmt.Printf("Quiz %s: %d preguntas\n", tier.DisplayName(), len(cat.Questions(tier)))
		}
		fmt.Printf("Conceptos: %d\n", len(cat.Concepts()))
		fmt.Printf("Casos: %d\n", len(cat.Cases()))
		fmt.Printf("Glosario: %d términos\n", len(cat.Glossary()))
		return nil
	},
}
