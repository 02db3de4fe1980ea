package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/karnatisrinivas/devops-hunter/internal/config"
	"github.com/karnatisrinivas/devops-hunter/internal/hunt"
	"github.com/karnatisrinivas/devops-hunter/internal/secrets"
)

var (
	flagOut        string
	flagOnly       string
	flagConfig     string
	flagHTMLReport bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "devops-hunter",
	Short:         "Scrape DevOps repos, blogs and job boards into JSON + HTML report",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHunt,
}

func init() {
	rootCmd.Flags().StringVar(&flagOut, "out", "./data", "output directory")
	rootCmd.Flags().StringVar(&flagOnly, "only", "", "run only one subsystem (github|blogs|jobs)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "yaml config file (defaults are built in)")
	rootCmd.Flags().BoolVar(&flagHTMLReport, "html-report", false, "also generate devops_report.html")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the optional GitHub token in the OS keychain",
	}
	tokenCmd.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Store a GitHub token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return secrets.SetGitHubToken(args[0])
		},
	})
	tokenCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored GitHub token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return secrets.DeleteGitHubToken()
		},
	})
	rootCmd.AddCommand(tokenCmd)
}

func runHunt(cmd *cobra.Command, args []string) error {
	switch flagOnly {
	case hunt.OnlyAll, hunt.OnlyGitHub, hunt.OnlyBlogs, hunt.OnlyJobs:
	default:
		return fmt.Errorf("--only must be one of github, blogs, jobs")
	}

	if flagVerbose {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	token := secrets.GitHubToken()
	if token == "" {
		log.Printf("[hunt] no GitHub token; search rate limits will be low")
	}

	h, err := hunt.New(cfg, flagOut, token)
	if err != nil {
		return err
	}

	_, err = h.Run(cmd.Context(), flagOnly, flagHTMLReport)
	return err
}

func main() {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "interrupted")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
