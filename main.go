package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"home-finder/config"
	"home-finder/enrichment/crime"
	"home-finder/models"
	"home-finder/search/zillow"
	"home-finder/services"
	"home-finder/storage"
	"home-finder/utils"
)

var (
	location     string
	budget       string
	experience   string
	lifestyle    []string
	dealbreakers []string
	answersPath  string
	enrich       bool
	csvPath      string
)

var rootCmd = &cobra.Command{
	Use:   "home-finder",
	Short: "Find homes that match your questionnaire answers",
	Long: `home-finder takes your housing preferences, searches live listings and
shows the best matches with a budget match score.

Budgets: under-200k, 200k-400k, 400k-600k, 600k-1m, over-1m.`,
	SilenceUsage: true,
	RunE:         runSearch,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&location, "location", "l", "", "city and state to search, e.g. \"Austin, TX\"")
	f.StringVarP(&budget, "budget", "b", "", "budget bucket")
	f.StringVar(&experience, "experience", "", "home-buying experience")
	f.StringSliceVar(&lifestyle, "lifestyle", nil, "up to 3 lifestyle priorities")
	f.StringSliceVar(&dealbreakers, "dealbreakers", nil, "up to 5 deal breakers")
	f.StringVarP(&answersPath, "answers", "a", "", "YAML file with questionnaire answers (flags override it)")
	f.BoolVar(&enrich, "enrich", false, "add a crime and safety summary per city (needs GEMINI_API_KEY)")
	f.StringVar(&csvPath, "csv", "", "also export the results to this CSV file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	prefs, err := collectPreferences(cmd)
	if err != nil {
		return err
	}

	if cfg.RapidAPIKey == "" {
		logger.Warn("RAPIDAPI_KEY is not set, the search service will likely reject the request")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := zillow.New(zillow.Options{
		BaseURL: cfg.SearchBaseURL,
		APIKey:  cfg.RapidAPIKey,
		APIHost: cfg.RapidAPIHost,
		Timeout: cfg.SearchTimeout,
	}, logger)

	pipeline := services.NewPipeline(client, services.PipelineOptions{
		DefaultLocation: cfg.DefaultLocation,
		MaxResults:      cfg.MaxResults,
		PriceBackstop:   cfg.PriceBackstop,
	}, logger)

	logger.Info("=== Home search starting ===")
	result := pipeline.Run(ctx, *prefs)
	if result.Error != "" {
		logger.Error("Search failed: %s", result.Error)
	}

	if enrich && len(result.Data) > 0 {
		enrichResults(ctx, cfg, result.Data, logger)
	}

	services.NewPresenter(cmd.OutOrStdout()).Print(*prefs, result.Data)

	if csvPath != "" {
		if err := exportCSV(csvPath, result.Data); err != nil {
			logger.Error("CSV export failed: %v", err)
		} else {
			logger.Info("Results saved to %s", csvPath)
		}
	}
	return nil
}

// collectPreferences merges the answers file with any flags that were set.
func collectPreferences(cmd *cobra.Command) (*models.Preferences, error) {
	prefs := &models.Preferences{}
	if answersPath != "" {
		loaded, err := config.LoadPreferences(answersPath)
		if err != nil {
			return nil, err
		}
		prefs = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("location") {
		prefs.Location = location
	}
	if flags.Changed("budget") {
		prefs.Budget = budget
	}
	if flags.Changed("experience") {
		prefs.Experience = experience
	}
	if flags.Changed("lifestyle") {
		prefs.Lifestyle = lifestyle
	}
	if flags.Changed("dealbreakers") {
		prefs.Dealbreakers = dealbreakers
	}

	if err := config.ValidatePreferences(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func enrichResults(ctx context.Context, cfg *config.Config, props []*models.Property, logger *utils.Logger) {
	agent, err := crime.NewAgent(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Warn("Safety enrichment disabled: %v", err)
		return
	}
	pool := utils.NewWorkerPool(cfg.EnrichConcurrency, cfg.EnrichRateLimitMs)
	services.EnrichAll(ctx, agent, pool, props, logger)
}

func exportCSV(path string, props []*models.Property) error {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		return err
	}
	return writeAll(w, props)
}

func writeAll(w storage.PropertyWriter, props []*models.Property) error {
	if err := w.Write(props); err != nil {
		_ = w.Close()
		return fmt.Errorf("write results: %w", err)
	}
	return w.Close()
}
