package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-qa-api/internal/config"
	"github.com/vfg2006/campaign-qa-api/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:           "qarun",
		Short:         "Campaign QA: valida um brief contra a configuração do Beeswax",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.NewConfig()
			if err != nil {
				return err
			}
			cfg = *loaded

			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				cfg.App.LogLevel = level
			}
			log.Setup(cfg.App.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "", "Nível de log (sobrescreve LOG_LEVEL)")

	root.AddCommand(newRunCmd(&cfg, defaultRunner))
	root.AddCommand(newTokenCmd(&cfg))

	return root
}
