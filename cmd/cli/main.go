package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "artha",
		Short: "Artha CLI tool",
		Long:  `A command line interface for interacting with the Artha personal finance API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Artha API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	summaryCmd := &cobra.Command{
		Use:   "summary [period]",
		Short: "Show income, expense and balance for a period",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			period := "Bulan Ini"
			if len(args) == 1 {
				period = args[0]
			}
			showSummary(period)
		},
	}

	wealthCmd := &cobra.Command{
		Use:   "wealth",
		Short: "Show total assets and spending runway",
		Run: func(cmd *cobra.Command, args []string) {
			showWealth()
		},
	}

	txCmd := &cobra.Command{
		Use:   "transactions",
		Short: "List recent transactions",
		Run: func(cmd *cobra.Command, args []string) {
			listTransactions()
		},
	}

	var (
		addType     string
		addAmount   int64
		addCategory string
		addWallet   string
		addDesc     string
		addRelated  string
		addDate     string
	)
	txAddCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			addTransaction(addType, addAmount, addCategory, addWallet, addDesc, addRelated, addDate)
		},
	}
	txAddCmd.Flags().StringVar(&addType, "type", "expense", "Transaction type (income or expense)")
	txAddCmd.Flags().Int64Var(&addAmount, "amount", 0, "Amount in rupiah")
	txAddCmd.Flags().StringVar(&addCategory, "category", "", "Category name")
	txAddCmd.Flags().StringVar(&addWallet, "wallet", "", "Wallet ID")
	txAddCmd.Flags().StringVar(&addDesc, "desc", "", "Description")
	txAddCmd.Flags().StringVar(&addRelated, "related", "", "Related bill, goal or debt ID")
	txAddCmd.Flags().StringVar(&addDate, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	txAddCmd.MarkFlagRequired("amount")
	txAddCmd.MarkFlagRequired("category")
	txCmd.AddCommand(txAddCmd)

	activateCmd := &cobra.Command{
		Use:   "activate [code]",
		Short: "Activate the account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			activate(args[0])
		},
	}

	rootCmd.AddCommand(summaryCmd, wealthCmd, txCmd, activateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func showSummary(period string) {
	var result struct {
		TotalIncome  int64 `json:"totalIncome"`
		TotalExpense int64 `json:"totalExpense"`
		Balance      int64 `json:"balance"`
	}
	getJSON("/api/v1/reports/summary?period="+url.QueryEscape(period), &result)

	fmt.Printf("Period:  %s\n", period)
	fmt.Printf("Income:  %d\n", result.TotalIncome)
	fmt.Printf("Expense: %d\n", result.TotalExpense)
	fmt.Printf("Balance: %d\n", result.Balance)
}

func showWealth() {
	var result struct {
		TotalAssets       int64  `json:"totalAssets"`
		AvgMonthlyExpense string `json:"avgMonthlyExpense"`
		RunwayMonths      int64  `json:"runwayMonths"`
	}
	getJSON("/api/v1/reports/wealth", &result)

	fmt.Printf("Total assets:        %d\n", result.TotalAssets)
	fmt.Printf("Avg monthly expense: %s\n", result.AvgMonthlyExpense)
	fmt.Printf("Runway (months):     %d\n", result.RunwayMonths)
}

func listTransactions() {
	var result []struct {
		ID          string    `json:"id"`
		Type        string    `json:"type"`
		Category    string    `json:"category"`
		Amount      int64     `json:"amount"`
		Date        time.Time `json:"date"`
		Description string    `json:"description"`
	}
	getJSON("/api/v1/transactions", &result)

	for _, t := range result {
		fmt.Printf("%s  %-8s %-22s %12d  %s\n",
			t.Date.Format("2006-01-02"), t.Type, t.Category, t.Amount, t.Description)
	}
}

func addTransaction(txType string, amount int64, category, walletID, description, relatedID, date string) {
	when := time.Now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			fmt.Printf("Invalid date %q: %v\n", date, err)
			os.Exit(1)
		}
		when = parsed
	}

	payload, _ := json.Marshal(map[string]any{
		"type":        txType,
		"amount":      amount,
		"category":    category,
		"walletId":    walletID,
		"description": description,
		"relatedId":   relatedID,
		"date":        when.Format(time.RFC3339),
	})

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+"/api/v1/transactions", "application/json", strings.NewReader(string(payload)))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var created struct {
		ID string `json:"id"`
	}
	json.Unmarshal(body, &created)
	fmt.Printf("Transaction recorded (id: %s)\n", created.ID)
}

func activate(code string) {
	client := &http.Client{Timeout: timeout}
	body := fmt.Sprintf(`{"code":%q}`, code)
	resp, err := client.Post(baseURL+"/api/v1/activate", "application/json", strings.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Activation FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(payload))
		os.Exit(1)
	}
	fmt.Println("Account activated")
}

func getJSON(path string, out any) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	if err := json.Unmarshal(body, out); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
}
