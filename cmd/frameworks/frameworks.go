// Package frameworks implements the frameworks command listing the
// regulatory catalog.
package frameworks

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/clauseguard/clauseguard/internal/catalog"
)

var showRequirements bool

// NewFrameworksCommand creates the frameworks command.
func NewFrameworksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frameworks",
		Short: "List the regulatory frameworks in the catalog",
		Long: `List every framework Clauseguard can score contracts against, with its
region, requirement count, and whether a statutory fine schedule applies.`,
		Example: `  # List frameworks
  clauseguard frameworks

  # Include each framework's requirements and weights
  clauseguard frameworks --requirements`,
		RunE: runFrameworks,
	}

	cmd.Flags().BoolVar(&showRequirements, "requirements", false, "Show requirements and weights per framework")

	return cmd
}

func runFrameworks(cmd *cobra.Command, _ []string) error {
	registry := catalog.Default()
	schedules := catalog.FineSchedules()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tREGION\tREQUIREMENTS\tFINE SCHEDULE")
	for _, fw := range registry.All() {
		hasFines := "no"
		if _, ok := schedules[fw.ID]; ok {
			hasFines = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", fw.ID, fw.Name, fw.Region, len(fw.Requirements), hasFines)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !showRequirements {
		return nil
	}

	for _, fw := range registry.All() {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", fw.Name)
		for _, req := range fw.Requirements {
			fmt.Fprintf(cmd.OutOrStdout(), "  [%2d] %s (%d keywords)\n", req.Weight, req.Name, len(req.Keywords))
		}
	}
	return nil
}

// Run executes the frameworks command with the given arguments.
func Run(args []string) error {
	cmd := NewFrameworksCommand()
	cmd.SetArgs(args)
	cmd.SetOut(os.Stdout)
	return cmd.Execute()
}
