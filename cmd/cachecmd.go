package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/schemascout/schemascout/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the on-disk metadata cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cache file location, size, and age",
	RunE:  runCacheInfo,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cache file",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func configuredStore() *cache.Store {
	return cache.NewStore(cfg.Cache.Directory, time.Duration(cfg.Cache.TTLHours)*time.Hour)
}

func runCacheInfo(_ *cobra.Command, _ []string) error {
	store := configuredStore()

	fmt.Printf("Cache file: %s\n", store.Path())
	fmt.Printf("TTL:        %dh\n", cfg.Cache.TTLHours)
	fmt.Printf("Enabled:    %t\n", cfg.Cache.Enabled)

	info, err := os.Stat(store.Path())
	if err != nil {
		fmt.Println("Status:     no cache file on disk")
		return nil
	}

	fmt.Printf("Size:       %d bytes\n", info.Size())
	fmt.Printf("Modified:   %s (%s ago)\n",
		info.ModTime().Format(time.RFC3339), time.Since(info.ModTime()).Round(time.Second))

	return nil
}

func runCacheClear(_ *cobra.Command, _ []string) error {
	store := configuredStore()

	if err := store.Clear(); err != nil {
		return err
	}

	fmt.Println("Cache cleared.")

	return nil
}
