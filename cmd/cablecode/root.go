package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cognicore/cablecode/internal/logging"
	"github.com/cognicore/cablecode/pkg/cablecode"
	"github.com/cognicore/cablecode/pkg/cablecode/config"
)

// app carries the settings shared by every subcommand
type app struct {
	v          *viper.Viper
	configFile string
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "cablecode",
		Short: "Convert cable descriptions into Poliron product codes",
		Long: `cablecode reads cable descriptions from spreadsheets (CSV, HTML tables or
SQLite sheets), classifies each cable as VFD, instrumentation, control or
energy, and appends the vendor code in the "Referência YOFC" column. Rows that
cannot be converted carry a failure marker with the reason.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "Configuration file path (YAML)")
	pf.String("rules-conversion", "", "Conversion rules document (sections and elements)")
	pf.String("rules-patterns", "", "Special patterns document (keywords and attribute rules)")
	pf.String("log-level", "info", "Logging level (debug, info, warn, error)")
	pf.String("log-format", logging.FormatText, "Log format (text, json)")

	a.v.BindPFlag("rules.conversion", pf.Lookup("rules-conversion"))
	a.v.BindPFlag("rules.patterns", pf.Lookup("rules-patterns"))
	a.v.BindPFlag("log-level", pf.Lookup("log-level"))
	a.v.BindPFlag("log-format", pf.Lookup("log-format"))

	rootCmd.AddCommand(
		newConvertCmd(a),
		newClassifyCmd(a),
		newRulesCmd(a),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("CABLECODE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.configFile, err)
		}
	}

	log, err := logging.Setup(a.v.GetString("log-level"), a.v.GetString("log-format"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func (a *app) loader() *config.Loader {
	return &config.Loader{
		ConversionPath: a.v.GetString("rules.conversion"),
		PatternsPath:   a.v.GetString("rules.patterns"),
	}
}

func (a *app) engine() (*cablecode.Engine, error) {
	tables, err := a.loader().Load()
	if err != nil {
		return nil, err
	}
	return cablecode.New(cablecode.Options{Tables: tables})
}
