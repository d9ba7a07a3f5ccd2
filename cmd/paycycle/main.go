package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/paycycle/internal/config"
	"github.com/mmynk/paycycle/internal/ledger"
	"github.com/mmynk/paycycle/internal/storage/sqlite"
	"github.com/mmynk/paycycle/pkg/logging"
)

// app carries the state shared by subcommands once the config is loaded.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "paycycle",
		Short: "Payday-based household budgets and settlements",
		Long: `paycycle computes budget periods that start on each member's payday,
nets shared expenses between household members and records settlements
against a local ledger database.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./config.yaml or $HOME/.config/paycycle/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "ledger database path (overrides database.path)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	// Bind flags to viper
	_ = a.v.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))
	_ = a.v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(periodCmd())
	rootCmd.AddCommand(debtCmd(a))
	rootCmd.AddCommand(settleCmd(a))
	rootCmd.AddCommand(migrateCmd(a))
	rootCmd.AddCommand(tokenCmd(a))
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, config.Options{ConfigFile: a.cfgFile})
	if err != nil {
		return err
	}
	a.cfg = cfg
	logging.Setup(cfg.Log.Level)
	return nil
}

// openLedger opens the configured database. The caller closes the store.
func (a *app) openLedger() (*ledger.Ledger, *sqlite.SQLiteStore, error) {
	store, err := sqlite.New(a.cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	slog.Debug("Database opened", "path", a.cfg.Database.Path)
	return ledger.New(store), store, nil
}
