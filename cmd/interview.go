package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zchutly/rights-finder/internal/logger"
	"github.com/zchutly/rights-finder/internal/questionnaire"
	"github.com/zchutly/rights-finder/internal/rights"
)

const (
	PromptSkip   = "skip"
	PromptFinish = "finish and evaluate"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Answer questions interactively and evaluate the resulting profile",
	Run: func(cmd *cobra.Command, _ []string) {
		interview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)

	interviewCmd.Flags().StringP("catalog", "c", "", "path to the rights catalog (json or yaml)")

	viper.BindPFlag("catalog", interviewCmd.Flags().Lookup("catalog"))
}

func interview(_ *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	catalog := loadCatalog(config, zlog)
	if catalog.Len() == 0 {
		zlog.Info("exiting", zap.String("reason", "catalog is empty"))
		return
	}

	profile, err := collectAnswers(rights.Profile{})
	if err != nil {
		zlog.Fatal("collecting answers", zap.Error(err))
	}
	profile = questionnaire.Normalize(profile)

	zlog.Info("profile collected",
		zap.Int("answers", len(profile)),
		zap.Float64("completion", questionnaire.Completion(profile)),
	)

	matches, report, err := runPipeline(ctx, config, catalog, profile, zlog)
	if err != nil {
		zlog.Fatal("evaluation failed", zap.Error(err))
	}

	if matches.Len() == 0 {
		zlog.Info("exiting", zap.String("reason", "no rights left after filters"))
		return
	}

	printMatches(matches, config.Matching.TopResults)

	for {
		_, action, err := resultsPrompt.Run()
		if err != nil {
			zlog.Fatal("exiting", zap.Error(err))
		}
		if err := handleAction(action, zlog, matches, report); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			zlog.Fatal("exiting", zap.Error(err))
		}
	}
}

// collectAnswers drives the adaptive questionnaire until it has nothing left
// to ask or the user finishes early. A skipped question never writes a value
// into the profile: the key stays absent so downstream eligibility checks
// treat it as unknown.
func collectAnswers(profile rights.Profile) (rights.Profile, error) {
	skipped := make(map[string]bool)

	for {
		profile = questionnaire.Normalize(profile)

		questions := questionnaire.NextQuestions(selectionView(profile, skipped))
		if len(questions) == 0 {
			return profile, nil
		}

		for _, q := range questions {
			answer, err := ask(q)
			if err != nil {
				return nil, err
			}

			if done := recordAnswer(profile, skipped, q.Key, answer); done {
				return profile, nil
			}
		}
	}
}

// recordAnswer applies a single prompt result. It reports true when the user
// asked to finish the interview.
func recordAnswer(profile rights.Profile, skipped map[string]bool, key, answer string) bool {
	switch answer {
	case PromptFinish:
		return true
	case PromptSkip, "":
		skipped[key] = true
	default:
		profile[key] = answer
	}
	return false
}

// selectionView overlays skipped keys on a copy of the profile so the
// questionnaire stops re-asking them. The overlay is for question selection
// only and never reaches the matcher.
func selectionView(profile rights.Profile, skipped map[string]bool) rights.Profile {
	if len(skipped) == 0 {
		return profile
	}

	view := make(rights.Profile, len(profile)+len(skipped))
	for k, v := range profile {
		view[k] = v
	}
	for k := range skipped {
		if !view.Has(k) {
			view[k] = "-"
		}
	}
	return view
}

func ask(q questionnaire.Question) (string, error) {
	if q.Type == questionnaire.TypeChoice {
		sel := promptui.Select{
			Label: q.Text,
			Items: append(append([]string{}, q.Options...), PromptSkip, PromptFinish),
		}
		_, answer, err := sel.Run()
		return answer, err
	}

	in := promptui.Prompt{
		Label: fmt.Sprintf("%s (empty to skip)", q.Text),
	}
	answer, err := in.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
