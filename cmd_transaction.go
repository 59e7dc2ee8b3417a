package main

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/Rshep3087/myspend/ledger"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction",
	Long:  `Add an income or expense transaction to the top of the list.`,
	RunE:  addRun,
}

// updateCmd represents the update command.
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a transaction",
	Long:  `Update the fields of a transaction given by id. Only the flags you pass are changed.`,
	Args:  cobra.ExactArgs(1),
	RunE:  updateRun,
}

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteRun,
}

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	Long:  `List transactions newest first, optionally filtered by type, category and a search term.`,
	RunE:  listRun,
}

// addTransactionFlags registers the fields shared by add and update.
func addTransactionFlags(c *cobra.Command) {
	c.Flags().String("text", "", "Description of the transaction")
	c.Flags().String("amount", "", "Positive amount, e.g. 50 or 12.30")
	c.Flags().String("type", string(ledger.Expense), "Transaction type (income, expense)")
	c.Flags().String("category", "", "Expense category")
	c.Flags().String("date", "", "Transaction date (YYYY-MM-DD, defaults to today)")
}

func init() {
	addTransactionFlags(addCmd)
	addTransactionFlags(updateCmd)
	addCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	// Mark required flags
	_ = addCmd.MarkFlagRequired("text")
	_ = addCmd.MarkFlagRequired("amount")

	deleteCmd.Flags().BoolP("yes", "y", false, "Delete without asking for confirmation")

	listCmd.Flags().String("type", ledger.All, "Show only this type (all, income, expense)")
	listCmd.Flags().String("category", ledger.All, "Show only this category")
	listCmd.Flags().String("search", "", "Show only transactions whose text contains this")
	listCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func addRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	t, err := store.Add(draftFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}

	log.Debug("transaction added", "id", t.ID)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, t)
	case tableOutputFormat:
		return outputTransactionsTable(cmd, []ledger.Transaction{t}, appConfig.Currency)
	default:
		return errors.New("unsupported output format")
	}
}

// draftFromFlags reads a new transaction from the flags. Income carries no
// category.
func draftFromFlags(cmd *cobra.Command) ledger.Draft {
	flags := cmd.Flags()
	text, _ := flags.GetString("text")
	amount, _ := flags.GetString("amount")
	typ, _ := flags.GetString("type")
	category, _ := flags.GetString("category")
	date, _ := flags.GetString("date")

	d := ledger.Draft{
		Text:     text,
		Amount:   amount,
		Type:     ledger.Type(typ),
		Category: category,
		Date:     date,
	}
	if d.Type == ledger.Income {
		d.Category = ""
	}
	return d
}

// patchFromFlags builds a patch holding only the flags that were set.
func patchFromFlags(cmd *cobra.Command) ledger.Patch {
	var p ledger.Patch
	flags := cmd.Flags()

	if flags.Changed("text") {
		v, _ := flags.GetString("text")
		p.Text = &v
	}
	if flags.Changed("amount") {
		v, _ := flags.GetString("amount")
		p.Amount = &v
	}
	if flags.Changed("type") {
		v, _ := flags.GetString("type")
		typ := ledger.Type(v)
		p.Type = &typ
	}
	if flags.Changed("category") {
		v, _ := flags.GetString("category")
		p.Category = &v
	}
	if flags.Changed("date") {
		v, _ := flags.GetString("date")
		p.Date = &v
	}

	return p
}

func updateRun(cmd *cobra.Command, args []string) error {
	id := args[0]

	updated, err := store.Update(id, patchFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	if !updated {
		return fmt.Errorf("no transaction with id %s", id)
	}

	t, _ := store.Get(id)
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", t.Text, t.ID)
	return nil
}

func deleteRun(cmd *cobra.Command, args []string) error {
	id := args[0]
	yes, _ := cmd.Flags().GetBool("yes")

	t, ok := store.Get(id)
	if !ok {
		return fmt.Errorf("no transaction with id %s", id)
	}

	confirmed, err := confirm(yes, fmt.Sprintf("Delete %q?", t.Text))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
		return nil
	}

	store.Delete(id)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s)\n", t.Text, t.ID)
	return nil
}

func listRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	typ, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	search, _ := cmd.Flags().GetString("search")

	if typ != ledger.All {
		parsed, err := ledger.ParseType(typ)
		if err != nil {
			return fmt.Errorf("invalid type: %s (must be all, income or expense)", typ)
		}
		typ = string(parsed)
	}

	txs := store.Filtered(ledger.Filter{Type: typ, Category: category, Search: search})

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, txs)
	case tableOutputFormat:
		return outputTransactionsTable(cmd, txs, appConfig.Currency)
	default:
		return errors.New("unsupported output format")
	}
}

func outputTransactionsTable(cmd *cobra.Command, txs []ledger.Transaction, currency string) error {
	if len(txs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions")
		return nil
	}

	t := createStyledTable("ID", "DATE", "TEXT", "TYPE", "CATEGORY", "AMOUNT")
	for _, tx := range txs {
		t.Row(tx.ID, tx.Date, tx.Text, string(tx.Type), tx.Label(), formatAmount(tx, currency))
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}

// formatAmount renders an amount in currency, signed by type. Amounts that do
// not parse are shown as stored.
func formatAmount(t ledger.Transaction, currency string) string {
	cents, err := t.Amount.Cents()
	if err != nil {
		return t.Amount.String()
	}

	display := money.New(cents, currency).Display()
	if t.Type == ledger.Income {
		return "+" + display
	}
	return "-" + display
}
