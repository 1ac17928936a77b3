package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Leg3ndary/githubExtract/internal/config"
	"github.com/Leg3ndary/githubExtract/internal/gateway"
	"github.com/Leg3ndary/githubExtract/internal/usecase"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Fetches the profile and repositories and writes the resume snapshot",
	Long: `Fetches the target user's profile and every non-fork repository (100 per
page, most recently updated first), computes statistics, and writes the
result as JSON. Nothing is written if any step fails.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.InheritedFlags().GetString("config")
	verbose, _ := cmd.InheritedFlags().GetBool("verbose")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyExtractFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, verbose).With("run", uuid.NewString())
	if cfg.Token == "" {
		logger.Warn("GITHUB_TOKEN is not set; using unauthenticated requests with lower rate limits")
	}

	// Inject dependencies and run the main business logic.
	githubGateway, err := gateway.NewGitHubGateway(gateway.Options{
		BaseURL:   cfg.APIURL,
		Token:     cfg.Token,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout.Duration,
	}, logger)
	if err != nil {
		return err
	}
	extractor := usecase.NewExtractor(githubGateway, cfg.MaxPages, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := extractor.Run(ctx, cfg.Username, cfg.OutputFile); err != nil {
		return err
	}
	logger.Info("All done! GitHub repository data extracted successfully")
	return nil
}

// applyExtractFlags lets explicitly passed flags win over file and environment settings.
func applyExtractFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("user") {
		cfg.Username, _ = flags.GetString("user")
	}
	if flags.Changed("output") {
		cfg.OutputFile, _ = flags.GetString("output")
	}
	if flags.Changed("api-url") {
		cfg.APIURL, _ = flags.GetString("api-url")
	}
	if flags.Changed("max-pages") {
		cfg.MaxPages, _ = flags.GetInt("max-pages")
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		cfg.Timeout = config.Duration{Duration: timeout}
	}
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("user", "u", "", "Target GitHub user name (default "+config.DefaultUsername+")")
	extractCmd.Flags().StringP("output", "o", "", "Output file (default "+config.DefaultOutputFile+")")
	extractCmd.Flags().String("api-url", "", "GitHub REST API base URL (default "+config.DefaultAPIURL+")")
	extractCmd.Flags().Int("max-pages", config.DefaultMaxPages, "Fail when the user has more than this many pages of repositories (0 = no limit)")
	extractCmd.Flags().Duration("timeout", config.DefaultTimeout, "Per-request timeout (0 = none)")
}
