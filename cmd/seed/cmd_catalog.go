package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kidsguard/internal/repository"
	"kidsguard/internal/service"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Replace all games and learning modules with the sample catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := service.NewCatalogService(repository.NewCatalogRepository(a.db))
			summary, err := svc.Seed()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %d games and %d learning modules\n", summary.Games, summary.Modules)
			return nil
		},
	}
}
