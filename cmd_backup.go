package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Rshep3087/myspend/ledger"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transactions to a JSON backup",
	Long:  `Write every transaction as a pretty printed JSON array. Use --file - to print to stdout.`,
	RunE:  exportRun,
}

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import transactions from a JSON backup",
	Long: `Import a JSON array of transactions. Every element needs an id, text and amount;
if any element is malformed nothing is imported. Imported transactions are placed above the existing ones.`,
	Args: cobra.ExactArgs(1),
	RunE: importRun,
}

// clearCmd represents the clear command.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all transactions",
	RunE:  clearRun,
}

func init() {
	exportCmd.Flags().StringP("file", "f", ledger.BackupFileName, "Backup file to write")
	clearCmd.Flags().BoolP("yes", "y", false, "Clear without asking for confirmation")
}

func exportRun(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")

	data, err := store.Export()
	if err != nil {
		return err
	}

	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", store.Len(), path)
	return nil
}

func importRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	n, err := store.Import(data)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Import successful! %d transactions added\n", n)
	return nil
}

func clearRun(cmd *cobra.Command, _ []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	var confirmErr error
	cleared := store.Clear(func() bool {
		ok, err := confirm(yes, fmt.Sprintf("Delete all %d transactions?", store.Len()))
		confirmErr = err
		return ok
	})
	if confirmErr != nil {
		return confirmErr
	}

	if !cleared {
		if store.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No transactions to clear")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing cleared")
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "All transactions cleared")
	return nil
}

// confirm asks a yes/no question on the terminal unless yes is already set.
func confirm(yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}

	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return confirmed, nil
}
