// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// history.go implements the `bigcalc history` command group: listing,
// clearing, and zstd-compressed export/import of the calculation history.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liuyuxun641102/liuyuxun/internal/db"
	"github.com/liuyuxun641102/liuyuxun/internal/i18n"
)

var errNoStore = errors.New("history store is not initialized (history may be disabled in the config)")

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and manage the calculation history",
	}
	cmd.AddCommand(
		newHistoryListCmd(),
		newHistoryClearCmd(),
		newHistoryExportCmd(),
		newHistoryImportCmd(),
	)
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all stored calculations, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !db.HasStore() {
				return errNoStore
			}
			calcs, err := db.GetAllCalculations()
			if err != nil {
				return err
			}
			if len(calcs) == 0 {
				fmt.Println(i18n.T("cli.history_empty"))
				return nil
			}
			for _, c := range calcs {
				fmt.Println(c.String())
			}
			return nil
		},
	}
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the entire calculation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !db.HasStore() {
				return errNoStore
			}
			if err := db.ClearCalculations(); err != nil {
				return err
			}
			fmt.Println(i18n.T("cli.history_cleared"))
			return nil
		},
	}
}

func newHistoryExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the history to a zstd-compressed JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !db.HasStore() {
				return errNoStore
			}
			n, err := db.CountCalculations()
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if err := db.ExportHistory(db.ActiveStore(), f); err != nil {
				return err
			}
			fmt.Println(i18n.T("cli.history_exported", n, args[0]))
			return nil
		},
	}
}

func newHistoryImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import calculations from a previously exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !db.HasStore() {
				return errNoStore
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			n, err := db.ImportHistory(db.ActiveStore(), f)
			if err != nil {
				return err
			}
			fmt.Println(i18n.T("cli.history_imported", n, args[0]))
			return nil
		},
	}
}
