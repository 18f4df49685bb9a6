package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aabacada/navihive/internal/config"
	"github.com/aabacada/navihive/internal/document"
	"github.com/aabacada/navihive/internal/library"
	"github.com/aabacada/navihive/internal/logging"
	"github.com/aabacada/navihive/internal/tui"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "navihive [file.md]",
		Short: "Terminal markdown navigator with a section-synced nav bar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listRecent(cmd)
			}
			return open(args[0])
		},
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the navihive version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "navihive", version)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "forget <path>",
		Short: "Remove a document from the recent list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := openLibrary(cfg)
			if err != nil {
				return err
			}
			defer store.Close()
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			return store.Forget(cmd.Context(), path)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func open(arg string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer logger.Sync()

	path, err := filepath.Abs(arg)
	if err != nil {
		return err
	}

	// The recent list is best effort; a broken library never blocks reading.
	if store, err := openLibrary(cfg); err == nil {
		if doc, derr := document.Load(path); derr == nil {
			if _, terr := store.Touch(context.Background(), path, doc.Title, len(doc.Sections)); terr != nil {
				logger.Warn("library touch failed", zap.Error(terr))
			}
		}
		store.Close()
	} else {
		logger.Warn("library unavailable", zap.Error(err))
	}

	logger.Info("opening document", zap.String("path", path), zap.String("version", version))
	return tui.Run(cfg, logger, path)
}

func listRecent(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	store, err := openLibrary(cfg)
	if err != nil {
		return fmt.Errorf("open library: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), 10)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No recent documents. Open one with: navihive <file.md>")
		return nil
	}
	fmt.Fprintln(out, "Recent documents:")
	for _, e := range entries {
		fmt.Fprintf(out, "  %-40s  %2d sections  opened %d times  %s\n",
			e.Title, e.Sections, e.OpenedCount, e.LastOpenedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func openLibrary(cfg config.Config) (*library.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Library.Path), 0o755); err != nil {
		return nil, err
	}
	return library.Open(cfg.Library.Path)
}
