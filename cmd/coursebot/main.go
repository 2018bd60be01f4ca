// Package main provides the coursebot CLI application entry point.
// coursebot is a rule-based terminal assistant that answers
// frequently-asked questions about the DAI011 programming course.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"coursebot/internal/bot"
	"coursebot/internal/logger"
	"coursebot/internal/output"
	"coursebot/internal/rules"
	"coursebot/internal/shell"
	"coursebot/internal/version"
)

var (
	logLevel  string
	logFile   string
	rulesPath string
	noColor   bool
	noFuzzy   bool
	testMode  bool
)

// rootCmd represents the base command when called without any
// subcommands; the default behavior is to run the interactive chat.
var rootCmd = &cobra.Command{
	Use:   "coursebot",
	Short: "Course Assistant - rule-based course FAQ chatbot",
	Long: `coursebot is a terminal assistant for the DAI011 programming course.
It matches your questions against a table of known patterns and answers
with course information, assessment details, library pointers and
project guidance.`,
	Run: runChat,
}

// chatCmd is the explicit version of the default behavior.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long:  `Start the interactive question-and-answer loop. Type 'quit' to leave.`,
	Run:   runChat,
}

// askCmd answers a single question without entering the loop.
var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask a single question and exit",
	Long: `Answer one question non-interactively and exit. Useful for scripting
and for quick lookups without starting a session.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runAsk,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of coursebot.`,
	Run: func(_ *cobra.Command, _ []string) {
		if err := version.ValidateVersion(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
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
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to a YAML rule set replacing the built-in FAQ rules")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled terminal output")
	rootCmd.PersistentFlags().BoolVar(&noFuzzy, "no-fuzzy", false, "Disable the fuzzy keyword fallback for misspelled input")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run with deterministic plain output")

	for _, flag := range []string{"log-level", "log-file", "rules", "no-color", "no-fuzzy", "test-mode"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env is optional; COURSEBOT_* variables win over it.
	_ = godotenv.Load()

	viper.SetEnvPrefix("COURSEBOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := logger.Configure(viper.GetString("log-level"), viper.GetString("log-file"), viper.GetBool("test-mode")); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// newBot loads the rule table and assembles the bot with the
// configured options.
func newBot() *bot.Bot {
	var (
		table *rules.Table
		err   error
	)
	if path := viper.GetString("rules"); path != "" {
		table, err = rules.LoadFile(path)
	} else {
		table, err = rules.LoadDefault()
	}
	if err != nil {
		logger.Fatal("Failed to load rule set", "error", err)
	}

	opts := []bot.Option{}
	if !viper.GetBool("no-fuzzy") {
		opts = append(opts, bot.WithFallback(rules.NewFallback()))
	}
	return bot.New(table, opts...)
}

// newPrinter builds the printer honoring --no-color and --test-mode.
func newPrinter() *output.Printer {
	opts := []output.Option{}
	if viper.GetBool("no-color") {
		opts = append(opts, output.PlainText())
	}
	if viper.GetBool("test-mode") {
		opts = append(opts, output.TestMode())
	}
	return output.NewPrinter(opts...)
}

func runChat(_ *cobra.Command, _ []string) {
	logger.Info("Starting coursebot",
		"version", version.GetVersion(),
		"dev", version.IsDevelopment())

	b := newBot()
	handler := shell.NewHandler(b, newPrinter())

	// Questions are free text; a command lexer between the prompt and
	// the bot would choke on apostrophes and unbalanced quotes, so the
	// loop reads raw lines from readline directly.
	rl, err := readline.New("you> ")
	if err != nil {
		logger.Fatal("Failed to initialize terminal input", "error", err)
	}
	defer func() { _ = rl.Close() }()

	handler.Run(rl)
}

func runAsk(_ *cobra.Command, args []string) {
	question := strings.Join(args, " ")

	b := newBot()
	resp, ok := b.Reply(question)
	if !ok {
		// Exit keywords and blank input have no answer in one-shot mode.
		return
	}

	newPrinter().BotResponse(b.Name(), resp.Text)
}
