package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kidsguard/internal/repository"
	"kidsguard/internal/service"
)

func newChildrenCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "children",
		Short: "Create sample child profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := service.NewChildService(repository.NewChildRepository(a.db))
			children, err := svc.CreateSampleChildren(count)
			if err != nil {
				return fmt.Errorf("failed to create children: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, c := range children {
				fmt.Fprintf(out, "  %s (%s)\n", c.Name, c.Username)
			}
			fmt.Fprintf(out, "Created %d children\n", len(children))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 3, "Number of children to create")
	return cmd
}
