package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"papertrade/cmd"
	"papertrade/internal"
	"papertrade/internal/quotecache"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "papertrade",
		Short: "paper-trading simulator utilities",
	}
	rootCmd.AddCommand(newQuoteCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote SYMBOL [SYMBOL...]",
		Short: "fetch current quotes for one or more symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			secrets, err := internal.LoadSecrets()
			if err != nil {
				return err
			}
			provider := cmd.NewQuoteProvider(secrets)
			cache := quotecache.New(provider, quotecache.DefaultTTL)

			quotes := cache.GetMany(context.Background(), args)
			if len(quotes) == 0 {
				return fmt.Errorf("no quotes resolved for %v", args)
			}
			internal.Pprint(quotes)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [port]",
		Short: "start the API server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			port := 3009
			if len(args) == 1 {
				p, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid port %q: %w", args[0], err)
				}
				port = p
			}

			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				log.Fatal(err)
			}
			defer cmd.CloseDependencies(apiHandler)

			return apiHandler.StartApi(port)
		},
	}
}
