package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmorales/condoledger/internal/usecase"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "condoledger-cli",
		Short: "CondoLedger CLI tool",
		Long:  `A command line interface for operating the CondoLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the CondoLedger API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated endpoints")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	hashCmd := &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password for seeding user accounts",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			hashPassword(args[0])
		},
	}

	consolidateCmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Run a delinquency consolidation",
		Run: func(cmd *cobra.Command, args []string) {
			consolidate()
		},
	}

	boardCmd := &cobra.Command{
		Use:   "board",
		Short: "Print the delinquency board",
		Run: func(cmd *cobra.Command, args []string) {
			board()
		},
	}

	rootCmd.AddCommand(hashCmd, consolidateCmd, boardCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func hashPassword(password string) {
	hashed, err := usecase.HashPassword(password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hashed)
}

func consolidate() {
	body := request(http.MethodPost, "/api/v1/delinquency/consolidate")

	var result struct {
		UnitsTotal     int `json:"units_total"`
		UnitsProcessed int `json:"units_processed"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Consolidation complete: %d/%d units processed\n", result.UnitsProcessed, result.UnitsTotal)
}

func board() {
	body := request(http.MethodGet, "/api/v1/delinquency")

	var rows []struct {
		Status struct {
			UnitID      int    `json:"unit_id"`
			Balance     string `json:"balance"`
			DaysOverdue int    `json:"days_overdue"`
			Severity    string `json:"severity"`
		} `json:"status"`
		Contact struct {
			Name string `json:"name"`
		} `json:"contact"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-6s %-24s %-10s %-6s %s\n", "UNIT", "NAME", "BALANCE", "DAYS", "SEVERITY")
	for _, row := range rows {
		fmt.Printf("%-6d %-24s %-10s %-6d %s\n",
			row.Status.UnitID,
			row.Contact.Name,
			row.Status.Balance,
			row.Status.DaysOverdue,
			row.Status.Severity,
		)
	}
}

func request(method, path string) []byte {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, strings.NewReader(""))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}
