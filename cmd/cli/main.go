package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dvloznov/finance-dashboard-proxy/internal/api/handlers"
	"github.com/dvloznov/finance-dashboard-proxy/internal/cache"
	"github.com/dvloznov/finance-dashboard-proxy/internal/config"
	"github.com/dvloznov/finance-dashboard-proxy/internal/logger"
	"github.com/dvloznov/finance-dashboard-proxy/internal/notion"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Finance dashboard proxy tools",
	}

	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(invalidateCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and a logger; stderr keeps stdout clean for JSON.
func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: os.Stderr,
	})
	return cfg, log, nil
}

func openCache(cfg *config.Config, log zerolog.Logger) (*cache.Cache, error) {
	store, err := cache.Open(cfg.Cache.URL)
	if err != nil {
		return nil, err
	}
	return cache.New(store, log), nil
}

func fetchCmd() *cobra.Command {
	var warm bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all transactions from Notion and print them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			ctx = logger.WithContext(ctx, log)

			client := notion.NewClient(cfg.Notion.Token, cfg.Notion.DatabaseID,
				notion.WithHTTPClient(&http.Client{Timeout: cfg.Notion.Timeout}),
				notion.WithBaseURL(cfg.Notion.APIURL),
				notion.WithVersion(cfg.Notion.Version),
			)

			c := cache.New(nil, log)
			if warm {
				if c, err = openCache(cfg, log); err != nil {
					return err
				}
				defer c.Close()
				if !c.Enabled() {
					log.Warn().Msg("CACHE_URL is not set; --warm has no effect")
				}
			}

			transactions, err := handlers.NewTransactionsHandler(client, c).Load(ctx)
			if err != nil {
				return fmt.Errorf("fetch failed: %w", err)
			}
			if warm {
				c.Put(ctx, cache.KeyTransactions, transactions, cache.TTLTransactions)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(handlers.TransactionsResponse{
				Transactions: transactions,
				Count:        len(transactions),
			})
		},
	}

	cmd.Flags().BoolVar(&warm, "warm", false, "Also store the result in the configured cache")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Overall deadline for the fetch")

	return cmd
}

func invalidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate",
		Short: "Delete every cached response from the configured cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			c, err := openCache(cfg, log)
			if err != nil {
				return err
			}
			defer c.Close()
			if !c.Enabled() {
				return fmt.Errorf("CACHE_URL is not set")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			keys := cache.Keys()
			if err := c.Invalidate(ctx, keys); err != nil {
				return fmt.Errorf("invalidate failed: %w", err)
			}

			fmt.Printf("Invalidated %d keys: %v\n", len(keys), keys)
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}

			for _, warning := range cfg.Warnings() {
				fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg.Masked())
		},
	}
}
