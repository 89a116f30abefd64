// ABOUTME: Root Cobra command and global flags for brightmind CLI.
// ABOUTME: Sets up lifecycle hooks for config loading and journal store initialization.
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2389-research/brightmind/internal/config"
	"github.com/2389-research/brightmind/internal/dashboard"
	"github.com/2389-research/brightmind/internal/journal"
	"github.com/2389-research/brightmind/internal/storage"
)

var globalConfig *config.Config
var globalKV storage.KV
var globalJournal *journal.Store

var ephemeral bool

var rootCmd = &cobra.Command{
	Use:   "brightmind",
	Short: "Private mood journal with streaks and a wellness dashboard",
	Long: `BrightMind - your companion for calm, growth & connection.

Write private journal entries tagged with a mood, keep a daily streak going,
and review your mood breakdown on the dashboard. Everything stays on this machine.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "init" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg

		kv, err := openKV(cfg)
		if err != nil {
			return err
		}
		globalKV = kv

		store, err := journal.Open(kv, cfg.Storage.Key, journal.WithWarnings(warnWriter(cmd)))
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		globalJournal = store
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if globalKV != nil {
			_ = globalKV.Close()
			globalKV = nil
		}
		globalJournal = nil
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep entries in memory only (nothing is written to disk)")
}

func openKV(cfg *config.Config) (storage.KV, error) {
	if ephemeral {
		return storage.NewMemoryKV(), nil
	}
	path, err := cfg.GetStoragePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage path: %w", err)
	}
	kv, err := storage.NewDiskKV(path, storage.WithCacheSize(cfg.Storage.CacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return kv, nil
}

func dashboardOptions() dashboard.Options {
	if globalConfig == nil {
		return dashboard.DefaultOptions
	}
	return dashboard.Options{
		RecentLimit:   globalConfig.Dashboard.RecentLimit,
		TimelineLimit: globalConfig.Dashboard.TimelineLimit,
		PreviewLength: globalConfig.Dashboard.PreviewLength,
	}
}

// warnWriter colours everything written to it as a warning on the command's stderr.
func warnWriter(cmd *cobra.Command) io.Writer {
	return &colorWriter{w: cmd.ErrOrStderr(), c: color.New(color.FgYellow)}
}

func warnf(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(warnWriter(cmd), "Warning: "+format+"\n", args...)
}

type colorWriter struct {
	w io.Writer
	c *color.Color
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	if _, err := cw.c.Fprint(cw.w, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
