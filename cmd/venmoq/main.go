package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/venmoq/venmoq/pkg/config"
	"github.com/venmoq/venmoq/pkg/server"
	"github.com/venmoq/venmoq/pkg/service"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "venmoq",
	Short: "Convert Venmo statement exports to Quicken CSV format",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <statement.csv>",
	Short: "Convert a Venmo statement file (or a directory of them)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		initConfig(logger)

		cfg := config.FromViper(viper.GetViper())
		processor := service.NewProcessor(cfg, logger)
		return processor.Process(args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversion HTTP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := newLogger()
		initConfig(logger)

		port, _ := cmd.Flags().GetString("port")
		cfg := config.FromViper(viper.GetViper())
		srv := server.New(cfg, logger)

		addr := fmt.Sprintf("0.0.0.0:%s", port)
		logger.Info("starting server", "addr", addr)
		return srv.Start(addr)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a venmoq.yaml with the default settings",
	RunE: func(_ *cobra.Command, _ []string) error {
		return config.Save("venmoq.yaml", config.Default())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

func newLogger() *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "venmoq",
	}
	if verbose {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
	}
	return log.NewWithOptions(os.Stderr, opts)
}

func initConfig(logger *log.Logger) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("venmoq")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("VENMOQ")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Fatal("failed to read config", "file", viper.ConfigFileUsed(), "error", err)
		}
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is ./venmoq.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	convertCmd.Flags().StringP("output", "o", "", "Output file or directory, - for stdout (default: <input>_for_Quicken.csv)")
	convertCmd.Flags().String("account", "", "Account column value (default: Venmo)")
	convertCmd.Flags().String("date-format", "", "Output date pattern (default: MM/dd/yyyy)")
	_ = viper.BindPFlag("output", convertCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("account", convertCmd.Flags().Lookup("account"))
	_ = viper.BindPFlag("date_format", convertCmd.Flags().Lookup("date-format"))

	serveCmd.Flags().String("port", "3000", "Server port")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
