// Package main provides the lineshell demo CLI: an in-memory phonebook
// interpreter built on the framework. Run with no arguments for an
// interactive session, or pass one command line to run it once and exit.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lineshell/internal/logger"
	"lineshell/internal/output"
	"lineshell/internal/session"
	"lineshell/internal/version"
)

var (
	logLevel string
	logFile  string
	plain    bool
	seedFile string
)

// rootCmd runs the phonebook interpreter. Positional arguments become a
// single one-shot input line.
var rootCmd = &cobra.Command{
	Use:   "lineshell [command line...]",
	Short: "lineshell - line-oriented command interpreter demo",
	Long: `lineshell is an embeddable line-oriented command interpreter framework.
This binary runs the demo phonebook interpreter: interactively by default,
or as a single one-shot command when arguments are given.`,
	Args: cobra.ArbitraryArgs,
	Run:  runInterpreter,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable styled output")
	rootCmd.Flags().StringVar(&seedFile, "seed", "", "YAML file with phonebook entries to preload")

	for _, flag := range []string{"log-level", "log-file", "plain"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A .env next to the binary may carry LINESHELL_* settings; absence
	// is fine.
	_ = godotenv.Load()

	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runInterpreter(_ *cobra.Command, args []string) {
	var printerOpts []output.Option
	if plain {
		printerOpts = append(printerOpts, output.PlainText())
	}
	printer := output.NewPrinter(printerOpts...)

	book := newPhonebook()
	if seedFile != "" {
		if err := book.loadSeed(seedFile); err != nil {
			logger.Fatal("Failed to load seed file", "file", seedFile, "error", err)
		}
	}

	sess, err := session.New(book.builder(), session.WithPrinter(printer))
	if err != nil {
		logger.Fatal("Failed to create session", "error", err)
	}

	if len(args) == 0 {
		printer.Println(version.GetFormattedVersion())
		printer.Println("Type 'help' for commands, 'exit' to quit.")
	}

	if err := sess.Run(args); err != nil {
		logger.Fatal("Session terminated", "error", err)
	}
}
