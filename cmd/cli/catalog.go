package main

import (
	"github.com/spf13/cobra"

	"github.com/rhyrak/wolf-scheduler/internal/csvio"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the courses in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := loadScheduler()
		if err != nil {
			return err
		}

		rows := sched.CourseCatalog()
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			filtered := [][]string{}
			for _, row := range rows {
				if row[0] == name {
					filtered = append(filtered, row)
				}
			}
			rows = filtered
		}

		csvio.PrintCatalog(cmd.OutOrStdout(), rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringP("name", "n", "", "Only list sections of this course (e.g. \"CSC 216\")")
}
