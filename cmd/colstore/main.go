// Package main contains the cli implementation of the tool. It uses cobra
// package for cli tool implementation.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"colstore/internal/fixture"
	"colstore/internal/operators"
	"colstore/internal/registry"
	"colstore/internal/valuetype"
)

type scanFlags struct {
	column string
	op     string
	value  string
}

func main() {
	reg := registry.New()

	rootCmd := &cobra.Command{
		Use:   "colstore",
		Short: "In-memory columnar storage and scan engine",
	}

	rootCmd.AddCommand(loadCmd(reg))
	rootCmd.AddCommand(listCmd(reg))
	rootCmd.AddCommand(printCmd(reg))
	rootCmd.AddCommand(scanCmd(reg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "load <fixture.toml>",
		Short: "Load a TOML fixture file into the table registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			names, err := fixture.LoadFile(args[0], reg)
			if err != nil {
				return fmt.Errorf("failed to load fixture: %w", err)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("loaded table %q\n", name)
			}
			return nil
		},
	}
}

func listCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the names of every registered table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			names := reg.Names()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func printCmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "print <table>",
		Short: "Print a registered table as an ASCII table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			plan := operators.NewGetTable(reg, args[0])
			printOp := operators.NewPrint(plan, os.Stdout)

			if _, err := plan.Execute(); err != nil {
				return fmt.Errorf("failed to resolve table %q: %w", args[0], err)
			}
			if _, err := printOp.Execute(); err != nil {
				return fmt.Errorf("failed to print table %q: %w", args[0], err)
			}
			return nil
		},
	}
}

func scanCmd(reg *registry.Registry) *cobra.Command {
	flags := &scanFlags{}
	cmd := &cobra.Command{
		Use:   "scan <table>",
		Short: "Scan a table's column against a search value and print the matching rows",
		Long: `Scan builds a small plan over the named table: GetTable feeds a
TableScan over --column, comparing it against --value with --op, and the
result is rendered the same way print renders a table.

Examples:
  colstore scan measurements --column a --op ">=" --value 10
  colstore scan measurements --column b --op "=" --value hello`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScan(reg, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.column, "column", "c", "", "Column name to scan (required)")
	cmd.Flags().StringVarP(&flags.op, "op", "o", "=", "Comparison: =, !=, <, <=, >, >=")
	cmd.Flags().StringVarP(&flags.value, "value", "v", "", "Search value (required)")

	return cmd
}

func runScan(reg *registry.Registry, tableName string, flags *scanFlags) error {
	if flags.column == "" {
		return fmt.Errorf("--column is required")
	}
	if flags.value == "" {
		return fmt.Errorf("--value is required")
	}

	table, err := reg.Get(tableName)
	if err != nil {
		return fmt.Errorf("failed to resolve table %q: %w", tableName, err)
	}

	columnID, err := table.ColumnIDByName(flags.column)
	if err != nil {
		return err
	}
	scanType, err := operators.ParseScanType(flags.op)
	if err != nil {
		return err
	}
	searchValue, err := parseSearchValue(flags.value, table.Schema()[columnID].Type)
	if err != nil {
		return err
	}

	get := operators.NewGetTable(reg, tableName)
	if _, err := get.Execute(); err != nil {
		return err
	}
	scan := operators.NewTableScan(get, columnID, scanType, searchValue)
	if _, err := scan.Execute(); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printOp := operators.NewPrint(scan, os.Stdout)
	if _, err := printOp.Execute(); err != nil {
		return fmt.Errorf("failed to print scan result: %w", err)
	}
	return nil
}

// parseSearchValue converts the CLI's raw --value string into a Variant
// matching the scanned column's declared type.
func parseSearchValue(raw string, t valuetype.ColumnType) (valuetype.Variant, error) {
	switch t {
	case valuetype.Int:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return valuetype.Variant{}, fmt.Errorf("value %q is not a valid int: %w", raw, err)
		}
		return valuetype.Of(int32(n)), nil
	case valuetype.Float:
		n, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return valuetype.Variant{}, fmt.Errorf("value %q is not a valid float: %w", raw, err)
		}
		return valuetype.Of(float32(n)), nil
	case valuetype.Double:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return valuetype.Variant{}, fmt.Errorf("value %q is not a valid double: %w", raw, err)
		}
		return valuetype.Of(n), nil
	case valuetype.String:
		return valuetype.Of(raw), nil
	default:
		return valuetype.Variant{}, fmt.Errorf("unknown column type %q", t)
	}
}
