package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apppkg "github.com/kk-code-lab/fexplorer/internal/app"
	"github.com/kk-code-lab/fexplorer/internal/config"
	"github.com/kk-code-lab/fexplorer/internal/explorer"
	"github.com/kk-code-lab/fexplorer/internal/favorites"
	fsutil "github.com/kk-code-lab/fexplorer/internal/fs"
	"github.com/kk-code-lab/fexplorer/internal/listing"
	"github.com/kk-code-lab/fexplorer/internal/logging"
	"github.com/kk-code-lab/fexplorer/internal/paths"
)

func newRootCmd() *cobra.Command {
	var cfgFile string
	loader := config.NewLoader()

	cmd := &cobra.Command{
		Use:   "fexplorer [dir]",
		Short: "Terminal file explorer",
		Long: `fexplorer - Terminal-based file explorer

Browse directories with back/forward history, search and filter the current
folder, rename, delete and create entries, and keep a list of favorites.
Settings come from $HOME/.fexplorer.yaml, FEXPLORER_* environment variables
and flags, in increasing order of precedence.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				loader.Set(config.KeyStartDir, args[0])
			}
			cfg, err := loader.Load(cfgFile)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.fexplorer.yaml)")
	config.RegisterFlags(cmd.Flags())
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func run(cfg config.Config) error {
	logger, err := logging.New(logging.Config{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()
	if cfg.Source != "" {
		logger.Info("config loaded", zap.String("file", cfg.Source))
	}

	fsys := fsutil.NewOS()
	store := favorites.NewFileStore(cfg.FavoritesFile)
	logger.Debug("favorites store", zap.String("file", store.Path()))
	ctrl, err := explorer.New(explorer.Options{
		FS:        fsys,
		Resolver:  paths.NewResolver(fsys),
		Lister:    listing.NewLister(fsys, listing.WithHidden(cfg.ShowHidden)),
		Favorites: store,
		Opener:    apppkg.NewSystemOpener(),
		Logger:    logger,
		StartDir:  cfg.StartDir,
	})
	if err != nil {
		return err
	}

	app, err := apppkg.NewApplication(ctrl, apppkg.Options{
		Presets: listing.MergePresets(listing.DefaultPresets(), cfg.Filters),
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}

	app.Run()

	// Favorites are saved after every change; this flushes the final list.
	return ctrl.Close()
}

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII names display correctly
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fexplorer: %v\n", err)
		os.Exit(1)
	}
}
