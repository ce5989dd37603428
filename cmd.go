package main

import (
	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command, starts an interactive session
	rootCmd := &cobra.Command{
		Use:           "timeform",
		Short:         "A time entry form computing worked hours",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Session()
		},
	}

	// command for the interactive form
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Fill the form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Session()
		},
	}

	// command for computing the total of rows given as flags
	var rows []string
	var weekends bool
	totalCmd := &cobra.Command{
		Use:   "total",
		Short: "Compute the total time of the given rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var override *bool
			if cmd.Flags().Changed("weekends") {
				override = &weekends
			}
			return a.Total(rows, override)
		},
	}
	totalCmd.Flags().StringArrayVarP(&rows, "row", "r", nil, "Row as DAY,START,END (e.g. 2025-01-10,09:00,17:00), repeatable")
	totalCmd.Flags().BoolVarP(&weekends, "weekends", "w", false, "Include weekends when defaulting empty days")

	// command for printing the day following a date
	var nextWeekends bool
	nextDayCmd := &cobra.Command{
		Use:   "next-day [day]",
		Short: "Print the next eligible day after a YYYY-MM-DD date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.NextDay(args[0], nextWeekends)
		},
	}
	nextDayCmd.Flags().BoolVarP(&nextWeekends, "weekends", "w", false, "Allow saturday and sunday")

	// command for showing or storing the weekend preference
	weekendsCmd := &cobra.Command{
		Use:       "weekends [on|off]",
		Short:     "Show or set whether new rows may fall on weekends",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			if len(args) > 0 {
				value = args[0]
			}
			return a.Weekends(value)
		},
	}

	// add commands
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(nextDayCmd)
	rootCmd.AddCommand(weekendsCmd)

	return rootCmd
}
