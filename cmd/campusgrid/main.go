package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campusgrid",
		Short: "Campus grid geometry engine: outlines, doors, corridors and routes",
	}

	rootCmd.AddCommand(solveCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(routeCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [project-path]",
		Short: "Load the campus, run the geometry pipeline and print the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSolve(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate settings and buildings and report geometry problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route [project-path] [building:door] [building:door]",
		Short: "Route between two doors, inside one building or across the grid",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRoute(args[0], args[1], args[2])
		},
	}
}

func exportCmd() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export [project-path]",
		Short: "Write the campus to DXF, PDF and congestion XLSX files",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.dxf, "dxf", "", "DXF output file")
	cmd.Flags().StringVar(&opts.pdf, "pdf", "", "PDF output file")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "congestion workbook output file")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local editing server",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runServe(args[0], port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
