package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command starts the interactive form
	rootCmd := &cobra.Command{
		Use:   "altmood",
		Short: "Track Altman mood and mania scale ratings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunUI(a.repo, a.cfg, a.state)
		},
	}

	// command for recording one entry without the form
	scales := make([]int, len(ScaleFields))
	var date, timeOfDay string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a rating entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.AddEntry(date, timeOfDay, scales)
			return err
		},
	}
	addCmd.Flags().StringVar(&date, "date", "", "entry date (defaults to today)")
	addCmd.Flags().StringVar(&timeOfDay, "time", "", "entry time (defaults to now)")
	for i, f := range ScaleFields {
		addCmd.Flags().IntVar(&scales[i], f.Name,
			0, fmt.Sprintf("%s rating (%d-%d)", f.Name, ScaleMin, ScaleMax))
	}

	// command for listing all stored entries
	displayCmd := &cobra.Command{
		Use:   "display",
		Short: "Show all stored entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Display()
		},
	}

	// command for deleting an entry by id, or interactively
	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.DeleteInteractive()
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return a.DeleteByID(id)
		},
	}

	// add commands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(deleteCmd)

	return rootCmd
}
