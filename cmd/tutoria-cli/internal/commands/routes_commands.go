package commands

import (
	"fmt"
	"text/tabwriter"

	v1 "github.com/OscarMeza24/SistemaDeTurorias/internal/api/rest/v1"

	"github.com/spf13/cobra"
)

// InitRoutesCommands registers the routes command group
func InitRoutesCommands(rootCmd *cobra.Command) error {
	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "Inspect the named route table",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print every named route with its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMETHOD\tPATH")
			for _, route := range v1.Routes {
				fmt.Fprintf(w, "%s\t%s\t%s\n", route.Name, route.Method, route.Path)
			}
			return w.Flush()
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path NAME",
		Short: "Reverse a route name into its path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := v1.PathFor(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	routesCmd.AddCommand(listCmd, pathCmd)
	rootCmd.AddCommand(routesCmd)
	return nil
}
