package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the question cache",
}

var cacheSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove expired cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		n, err := s.Cache().ClearExpired(context.Background())
		if err != nil {
			return fmt.Errorf("sweep cache: %w", err)
		}
		fmt.Printf("Removed %d expired entries.\n", n)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		n, err := s.Cache().Clear(context.Background())
		if err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		fmt.Printf("Removed %d entries.\n", n)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheSweepCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
