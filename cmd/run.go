package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/talentscout/internal/interview"
	"github.com/spigell/talentscout/internal/logger"
	"github.com/spigell/talentscout/internal/questions"
	"github.com/spigell/talentscout/internal/storage"
	"github.com/spigell/talentscout/internal/utils"
)

const (
	PromptNewInterview = "Start new interview"
	PromptQuit         = "Quit"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive screening interview",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("count", "n", 0, "questions per technology (3-5); asked interactively when unset")

	viper.BindPFlag("interview.questions-per-technology", runCmd.Flags().Lookup("count"))
}

// run is the interactive interview loop.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interview assistant", zap.String("version", version))

	caller, err := newCaller(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("creating the generation client", zap.Error(err))
	}

	store := storage.NewMemory(0, logger)
	pipeline := questions.NewPipeline(caller, logger)
	out := cmd.OutOrStdout()

	prefilled := config.Candidate
	session := interview.NewSession()

	for {
		profile, err := candidateProfile(prefilled)
		if err != nil {
			if isPromptAbort(err) {
				return
			}
			logger.Fatal("reading candidate profile", zap.Error(err))
		}
		// Only the first interview uses the configured profile.
		prefilled = nil

		perTech, err := questionsPerTechnology(cmd, config.Interview.QuestionsPerTechnology)
		if err != nil {
			if isPromptAbort(err) {
				return
			}
			logger.Fatal("choosing questions per technology", zap.Error(err))
		}

		interviewer := interview.NewInterviewer(pipeline, caller, store, perTech, logger)

		fmt.Fprintln(out, "Generating questions, this may take a moment...")
		entries, err := interviewer.Start(ctx, session, profile)
		if err != nil {
			if errors.Is(err, interview.ErrInvalidProfile) {
				fmt.Fprintf(out, "%s\n\n", err)
				continue
			}
			logger.Fatal("starting the interview", zap.Error(err))
		}
		printEntries(out, entries)

		for !session.Finished() {
			answer, err := answerPrompt().Run()
			if err != nil {
				if !isPromptAbort(err) {
					logger.Error("reading answer", zap.Error(err))
				}
				answer = "exit"
			}
			printEntries(out, interviewer.Handle(ctx, session, answer))
		}

		printSaved(out, store, logger)

		next := promptui.Select{
			Label: "Interview complete",
			Items: []string{PromptNewInterview, PromptQuit},
		}
		_, action, err := next.Run()
		if err != nil || action == PromptQuit {
			return
		}

		interviewer.Reset(session)
	}
}

func candidateProfile(prefilled map[string]any) (interview.Profile, error) {
	if len(prefilled) > 0 {
		return interview.ProfileFromMap(prefilled)
	}
	return askProfile()
}

func askProfile() (interview.Profile, error) {
	var p interview.Profile

	fields := []struct {
		label    string
		validate promptui.ValidateFunc
		target   *string
	}{
		{"Full Name", interview.ValidateName, &p.Name},
		{"Email", interview.ValidateEmail, &p.Email},
		{"Phone (with country code)", interview.ValidatePhone, &p.Phone},
		{"Desired Position(s)", nil, &p.DesiredPositions},
		{"Current Location", nil, &p.Location},
	}

	for _, f := range fields {
		value, err := (&promptui.Prompt{Label: f.label, Validate: f.validate}).Run()
		if err != nil {
			return p, err
		}
		*f.target = value
	}

	years, err := (&promptui.Prompt{
		Label:    "Years of Experience",
		Default:  "0",
		Validate: validateYears,
	}).Run()
	if err != nil {
		return p, err
	}
	p.YearsExperience, _ = strconv.ParseFloat(strings.TrimSpace(years), 64)

	stack, err := (&promptui.Prompt{
		Label:    "Tech Stack (comma-separated)",
		Validate: interview.ValidateTechnologies,
	}).Run()
	if err != nil {
		return p, err
	}
	p.Technologies = utils.SplitList(stack)

	return p.Normalize(), nil
}

func validateYears(input string) error {
	years, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || years < 0 {
		return errors.New("years of experience must be a non-negative number")
	}
	return nil
}

// questionsPerTechnology uses the flag or config value when one was given and
// asks otherwise.
func questionsPerTechnology(cmd *cobra.Command, configured int) (int, error) {
	if cmd.Flags().Changed("count") || viper.InConfig("interview") {
		return questions.ClampCount(configured), nil
	}

	items := make([]string, 0, questions.MaxPerTechnology-questions.MinPerTechnology+1)
	for n := questions.MinPerTechnology; n <= questions.MaxPerTechnology; n++ {
		items = append(items, strconv.Itoa(n))
	}

	sel := promptui.Select{
		Label:     "Questions per technology",
		Items:     items,
		CursorPos: questions.ClampCount(configured) - questions.MinPerTechnology,
	}
	_, choice, err := sel.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(choice)
}

func answerPrompt() *promptui.Prompt {
	return &promptui.Prompt{
		Label: "Your answer (type 'exit' to finish early)",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("answer must not be empty")
			}
			return nil
		},
	}
}

func isPromptAbort(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF)
}

func printEntries(w io.Writer, entries []interview.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "\n[%s]\n%s\n", e.Speaker, e.Text)
	}
	fmt.Fprintln(w)
}

func printSaved(w io.Writer, store *storage.Memory, logger *zap.Logger) {
	saved, ok := store.LastSaved()
	if !ok {
		fmt.Fprintln(w, "Saved candidate (simulated) is not available.")
		return
	}

	pretty, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		logger.Error("rendering saved candidate", zap.Error(err))
		return
	}
	fmt.Fprintf(w, "Interview complete. Candidate saved (simulated):\n%s\n", pretty)
}

