package cmd

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/talentscout/internal/logger"
	"github.com/spigell/talentscout/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for a tech stack without running an interview",
	Run: func(cmd *cobra.Command, _ []string) {
		generateQuestions(cmd)
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)

	questionsCmd.Flags().StringSliceP("tech", "t", nil, "technologies to generate questions for, e.g. Go,React")
	questionsCmd.Flags().Float64P("years", "y", 0, "candidate years of experience")
	questionsCmd.Flags().IntP("count", "n", questions.DefaultPerTechnology, "questions per technology (3-5)")
	questionsCmd.Flags().Bool("offline", false, "skip the model and print the built-in questions")

	questionsCmd.MarkFlagRequired("tech")
}

func generateQuestions(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	techs, _ := cmd.Flags().GetStringSlice("tech")
	years, _ := cmd.Flags().GetFloat64("years")
	count, _ := cmd.Flags().GetInt("count")
	offline, _ := cmd.Flags().GetBool("offline")

	if years < 0 {
		logger.Fatal("years of experience must not be negative", zap.Float64("years", years))
	}
	count = questions.ClampCount(count)

	var blocks []questions.Block
	if offline {
		for _, tech := range techs {
			blocks = append(blocks, questions.Block{
				Technology: tech,
				Source:     questions.SourceFallback,
				Questions:  questions.Fallback(tech, count, years),
			})
		}
	} else {
		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}

		caller, err := newCaller(ctx, config.AI, logger)
		if err != nil {
			logger.Fatal("creating the generation client", zap.Error(err))
		}

		blocks = questions.NewPipeline(caller, logger).GenerateBlocks(ctx, techs, years, count)
	}

	printBlocks(cmd.OutOrStdout(), blocks, years)
}

func printBlocks(w io.Writer, blocks []questions.Block, years float64) {
	fmt.Fprintf(w, "Level: %s\n", questions.Level(years))
	for _, b := range blocks {
		fmt.Fprintf(w, "\n%s (%s):\n", b.Technology, b.Source)
		for i, q := range b.Questions {
			fmt.Fprintf(w, "%d. %s\n", i+1, q.Text)
		}
	}
}
