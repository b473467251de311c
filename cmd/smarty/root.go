package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/smarty/config"
	"github.com/viant/smarty/store"
)

// app holds state shared by commands, set up before any command runs
type app struct {
	configFile string
	cfg        config.Config
	logger     *slog.Logger
	store      *store.Service
}

func rootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "smarty",
		Short:         "SMarty modeling project tool",
		Long:          `smarty maintains UML/SMarty modeling project documents: it creates, verifies and summarizes them, generates Java code from class diagrams and imports Java source into class diagrams.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default: ./smarty.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.newCmd(),
		a.diagramCmd(),
		a.exportCmd(),
		a.verifyCmd(),
		a.inspectCmd(),
		a.checksumCmd(),
		a.generateCmd(),
		a.importCmd(),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	v := viper.New()
	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	cfg, err := config.Load(v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())
	a.store = store.New(a.logger)
	return nil
}
