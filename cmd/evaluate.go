package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zchutly/rights-finder/internal/filtering"
	"github.com/zchutly/rights-finder/internal/logger"
	"github.com/zchutly/rights-finder/internal/questionnaire"
	"github.com/zchutly/rights-finder/internal/rights"
	"github.com/zchutly/rights-finder/internal/validation"
)

const (
	PromptYes           = "Yes"
	PromptNo            = "No"
	PromptFullReport    = "Show full validation report"
	PromptResultsToFile = "Dump results to file"
)

var errExit = errors.New("exit requested")

var resultsPrompt = promptui.Select{
	Label: "Show details?",
	Items: []string{PromptYes, PromptNo, PromptFullReport, PromptResultsToFile},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a profile against the rights catalog and print the matches",
	Run: func(cmd *cobra.Command, _ []string) {
		evaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringP("profile", "p", "", "path to a JSON file with the profile answers")
	evaluateCmd.Flags().StringP("catalog", "c", "", "path to the rights catalog (json or yaml)")
	evaluateCmd.Flags().BoolP("auto-approve", "y", false, "print the results and exit without prompting")

	viper.BindPFlag("catalog", evaluateCmd.Flags().Lookup("catalog"))
}

// evaluate is the main command for the cli.
func evaluate(cmd *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting the rights-finder", zap.String("version", version))

	profilePath := cmd.Flag("profile").Value.String()
	profile, err := loadProfile(profilePath)
	if err != nil {
		zlog.Fatal("loading profile", zap.Error(err))
	}
	profile = questionnaire.Normalize(profile)

	zlog = logger.WithCommonFields(zlog, catalogPath(config), profilePath)

	catalog := loadCatalog(config, zlog)
	if catalog.Len() == 0 {
		zlog.Info("exiting", zap.String("reason", "catalog is empty"))
		return
	}

	matches, report, err := runPipeline(ctx, config, catalog, profile, zlog)
	if err != nil {
		zlog.Fatal("evaluation failed", zap.Error(err))
	}

	if matches.Len() == 0 {
		zlog.Info("exiting", zap.String("reason", "no rights left after filters"))
		return
	}

	printMatches(matches, config.Matching.TopResults)

	action := PromptNo
	for {
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = resultsPrompt.Run()
			if err != nil {
				zlog.Fatal("exiting", zap.Error(err))
			}
		}

		if err := handleAction(action, zlog, matches, report); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			zlog.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, zlog *zap.Logger, matches *rights.Matches, report *validation.Report) error {
	switch action {
	case PromptYes:
		pretty, _ := json.MarshalIndent(matches.Items, "", "  ")
		fmt.Println(string(pretty))
		return errExit
	case PromptNo:
		return errExit
	case PromptFullReport:
		pretty, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(pretty))
		return nil
	case PromptResultsToFile:
		filename, err := dumpResults(matches, report)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		zlog.Info("dumping results to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// runPipeline executes the filtering steps and the validation pass over the
// surviving matches.
func runPipeline(ctx context.Context, config *Config, catalog *rights.Rights, profile rights.Profile, zlog *zap.Logger) (*rights.Matches, *validation.Report, error) {
	steps := filtering.DefaultSteps()
	if config.Filters != nil {
		for _, name := range config.Filters.Disabled {
			filtering.DisableByName(steps, name, "disabled in config")
		}
	}

	deps := filtering.Deps{
		Logger:  zlog,
		Profile: profile,
	}

	matches, err := filtering.Run(ctx, config.Matching, deps, steps, rights.NewMatches(catalog))
	if err != nil {
		return nil, nil, err
	}

	report := validation.New(*config.Validation).BuildReport(matches, profile)
	return matches, report, nil
}

// loadCatalog resolves and loads the rights catalog. An unreadable catalog
// degrades to an empty one so the caller can report cleanly instead of
// crashing mid-evaluation.
func loadCatalog(config *Config, zlog *zap.Logger) *rights.Rights {
	path := catalogPath(config)
	if path == "" {
		zlog.Warn("no catalog configured",
			zap.String("hint", "set the 'catalog' key in the configuration file, the --catalog flag or RIGHTS_CATALOG"),
		)
		return &rights.Rights{}
	}

	catalog, err := rights.LoadCatalog(path, zlog)
	if err != nil {
		zlog.Warn("catalog unavailable, continuing with an empty one",
			zap.String("catalog", path),
			zap.Error(err),
		)
		return &rights.Rights{}
	}

	zlog.Info("loaded catalog", zap.Int("count", catalog.Len()))
	return catalog
}

func catalogPath(config *Config) string {
	if flag := viper.GetString("catalog"); flag != "" {
		return flag
	}
	if config != nil {
		return config.Catalog
	}
	return ""
}

// loadProfile reads the profile answers from a JSON file, or from stdin when
// path is "-". An empty path yields an empty profile.
func loadProfile(path string) (rights.Profile, error) {
	if path == "" {
		return rights.Profile{}, nil
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var profile rights.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return profile, nil
}

func printMatches(matches *rights.Matches, top int) {
	shown := matches.Items
	if top > 0 && len(shown) > top {
		shown = shown[:top]
	}

	for i, match := range shown {
		value := fmt.Sprintf("%d", match.Value)
		if match.ValueUnknown {
			value = "unknown"
		}
		fmt.Printf("%d. %s (value: %s, confidence: %d)\n", i+1, match.Right.Name, value, match.Confidence)
	}
}

func dumpResults(matches *rights.Matches, report *validation.Report) (string, error) {
	f, err := os.CreateTemp("", app+"-results-*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	payload := struct {
		Matches []*rights.Match    `json:"matches"`
		Report  *validation.Report `json:"report"`
	}{matches.Items, report}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return "", err
	}
	return f.Name(), nil
}
