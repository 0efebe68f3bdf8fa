package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/talentscout/internal/ai"
	"github.com/spigell/talentscout/internal/questions"
)

const (
	app = "talentscout"
)

type Config struct {
	AI        *AIConfig        `mapstructure:"ai"`
	Interview *InterviewConfig `mapstructure:"interview"`

	// Candidate optionally pre-fills the profile; see interview.ProfileFromMap.
	Candidate map[string]any `mapstructure:"candidate"`
}

type AIConfig struct {
	Provider     string       `mapstructure:"provider"`
	APIKey       string       `mapstructure:"api-key"`
	APIKeyFile   string       `mapstructure:"api-key-file"`
	Model        string       `mapstructure:"model"`
	BaseURL      string       `mapstructure:"base-url"`
	MaxLogLength int          `mapstructure:"max-log-length"`
	Retry        *RetryConfig `mapstructure:"retry"`
}

type RetryConfig struct {
	Attempts  int           `mapstructure:"attempts"`
	BaseDelay time.Duration `mapstructure:"base-delay"`
}

type InterviewConfig struct {
	QuestionsPerTechnology int `mapstructure:"questions-per-technology"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentscout is a terminal hiring assistant that runs a technical screening interview",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for key, env := range map[string]string{
		"ai.api-key":      "TALENTSCOUT_API_KEY",
		"ai.api-key-file": "TALENTSCOUT_API_KEY_FILE",
		"ai.provider":     "TALENTSCOUT_PROVIDER",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("ai.provider", "openrouter")
	viper.SetDefault("ai.max-log-length", 200)
	viper.SetDefault("ai.retry.attempts", ai.DefaultAttempts)
	viper.SetDefault("ai.retry.base-delay", ai.DefaultBaseDelay)
	viper.SetDefault("interview.questions-per-technology", questions.DefaultPerTechnology)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentscout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional as long as the api key comes from the environment.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if err := validateConfig(config); err != nil {
		return config, err
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config is required")
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Retry == nil {
		config.AI.Retry = &RetryConfig{}
	}
	if config.AI.Retry.Attempts < 1 {
		return fmt.Errorf("ai.retry.attempts must be at least 1, got %d", config.AI.Retry.Attempts)
	}
	if config.AI.Retry.BaseDelay < 0 {
		return fmt.Errorf("ai.retry.base-delay must not be negative, got %s", config.AI.Retry.BaseDelay)
	}
	if config.Interview == nil {
		config.Interview = &InterviewConfig{QuestionsPerTechnology: questions.DefaultPerTechnology}
	}
	n := config.Interview.QuestionsPerTechnology
	if n < questions.MinPerTechnology || n > questions.MaxPerTechnology {
		return fmt.Errorf("interview.questions-per-technology must be between %d and %d, got %d",
			questions.MinPerTechnology, questions.MaxPerTechnology, n)
	}
	return nil
}
