package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// withMigrator opens a migrator for the duration of one command.
func withMigrator(open openFunc, opts *options, run func(cmd *cobra.Command, m schemaMigrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		migrator, closer, err := open(cmd.Context(), opts)
		if err != nil {
			return err
		}
		defer closer.Close()

		return run(cmd, migrator)
	}
}

func newUpCmd(open openFunc, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withMigrator(open, opts, func(cmd *cobra.Command, m schemaMigrator) error {
			applied, err := m.Up(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s).\n", applied)
			return nil
		}),
	}
}

func newDownCmd(open openFunc, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: withMigrator(open, opts, func(cmd *cobra.Command, m schemaMigrator) error {
			if err := m.Down(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Rolled back one migration.")
			return nil
		}),
	}
}

func newStatusCmd(open openFunc, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: withMigrator(open, opts, func(cmd *cobra.Command, m schemaMigrator) error {
			states, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tMIGRATION\tAPPLIED AT")
			for _, st := range states {
				appliedAt := "pending"
				if st.Applied {
					appliedAt = st.AppliedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", st.Version, st.Path, appliedAt)
			}
			return tw.Flush()
		}),
	}
}

func newVersionCmd(open openFunc, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: withMigrator(open, opts, func(cmd *cobra.Command, m schemaMigrator) error {
			version, err := m.Version(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		}),
	}
}
