// Command spendings is a small terminal host for the spendings core. It
// drives the feature stores the same way a UI would: dispatch an action,
// wait for the effects to settle, read the state.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/hung-m-dao/spendings-app/internal/config"
	"github.com/hung-m-dao/spendings-app/internal/log"
	"github.com/hung-m-dao/spendings-app/pkg/features"
	"github.com/hung-m-dao/spendings-app/pkg/spendings"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel).WithComponent("spendings")

	client, err := spendings.NewClient(&spendings.ClientOptions{
		BaseURL:      cfg.BaseURL,
		Token:        cfg.APIToken,
		CategoryName: cfg.CategoryName,
		Timeout:      cfg.Timeout,
		SentryDSN:    cfg.SentryDSN,
		Logger:       logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	root := features.NewRoot(client)
	defer root.Store.Close()

	command := "budgets"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "budgets":
		runBudgets(root)
	case "accounts":
		runAccounts(root)
	case "transactions":
		runTransactions(root, os.Args[2:])
	case "add":
		runAdd(root, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		fmt.Fprintln(os.Stderr, "usage: spendings [budgets|accounts|transactions <budget|account> <id>|add <description> <amount> <budget-id> <source-id>]")
		os.Exit(2)
	}
}

func runBudgets(root *features.Root) {
	store := root.NewBudgetsStore()
	defer store.Close()

	store.Dispatch(features.LoadBudgets{})
	store.Wait()

	for _, budget := range root.SharedBudgets().Snapshot() {
		fmt.Printf("%-24s %6d / %-6d remaining %6d (%.0f%%)\n",
			budget.Name, budget.Spent(), budget.AutoBudgetAmount, budget.Remaining(), budget.SpentRatio()*100)
	}
}

func runAccounts(root *features.Root) {
	store := root.NewAccountsStore()
	defer store.Close()

	store.Dispatch(features.LoadAccounts{})
	store.Wait()

	for _, account := range store.State().Accounts {
		fmt.Printf("%-24s %d\n", account.Name, account.CurrentBalance)
	}
}

func runTransactions(root *features.Root, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: spendings transactions <budget|account> <id>")
		os.Exit(2)
	}

	sourceType := features.SourceTypeBudgets
	if args[0] == "account" {
		sourceType = features.SourceTypeAccounts
	}

	store := root.NewTransactionsStore(args[1], sourceType)
	defer store.Close()

	store.Dispatch(features.LoadTransactions{})
	store.Wait()

	for _, transaction := range store.State().Transactions {
		fmt.Printf("%-40s %s\n", transaction.Description, transaction.FormattedAmount())
	}
}

func runAdd(root *features.Root, args []string) {
	if len(args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: spendings add <description> <amount> <budget-id> <source-id>")
		os.Exit(2)
	}

	store := root.NewAddTransactionStore()
	defer store.Close()

	store.Dispatch(features.SetDescription{Value: args[0]})
	store.Dispatch(features.SetAmount{Value: args[1]})
	store.Dispatch(features.SetBudgetID{Value: args[2]})
	store.Dispatch(features.SetSourceID{Value: args[3]})
	store.Dispatch(features.SubmitForm{})
	store.Wait()

	if alert := store.State().Alert; alert != nil {
		fmt.Println(alert.Message)
		if !alert.Success {
			os.Exit(1)
		}
	}
}
