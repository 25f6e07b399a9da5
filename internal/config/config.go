package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/validator"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	PlayerX   string    `yaml:"player-x" env:"TTT_PLAYER_X" env-default:"human" validate:"strategy"`
	PlayerO   string    `yaml:"player-o" env:"TTT_PLAYER_O" env-default:"human" validate:"strategy"`
	First     string    `yaml:"first" env:"TTT_FIRST" env-default:"x" validate:"oneof=x o random"`
	ShowEval  bool      `yaml:"show-eval" env:"TTT_SHOW_EVAL" env-default:"false"`
	Seed      uint64    `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	NoColor   bool      `yaml:"no-color" env:"TTT_NO_COLOR"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"TTT_OTLP_ENDPOINT"`
	ServiceName  string `yaml:"service-name" env:"TTT_SERVICE_NAME" env-default:"tictactoe" validate:"required"`
}

func init() {
	err := validator.GetValidator().RegisterValidation("strategy", func(fl playground.FieldLevel) bool {
		_, err := bot.Parse(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Errorf("unable to register strategy validation: %w", err))
	}
}

// Load reads the configuration from an optional YAML file and the
// environment, then applies command-line flags and the positional player
// names from args. args excludes the program name.
func Load(args []string, usage io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.Usage = func() {
		fmt.Fprintln(usage, "usage: tictactoe [flags] [player-x] [player-o]")
		fmt.Fprintln(usage, "players: human|h, random|r, randomsmart|rs, eval|e (or easy, medium, hard)")
		fs.PrintDefaults()
	}

	var (
		path     = fs.String("config", "", "path to a YAML config file")
		logLevel = fs.String("log-level", "", "log level: debug, info, warn or error")
		first    = fs.String("first", "", "who moves first: x, o or random")
		showEval = fs.Bool("show-eval", false, "print the evaluator's analysis of every move")
		seed     = fs.Uint64("seed", 0, "seed for the random source, 0 for a random seed")
		noColor  = fs.Bool("no-color", false, "disable colored output")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	conf := &Config{}
	if *path != "" {
		if err := cleanenv.ReadConfig(*path, conf); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			conf.LogLevel = *logLevel
		case "first":
			conf.First = *first
		case "show-eval":
			conf.ShowEval = *showEval
		case "seed":
			conf.Seed = *seed
		case "no-color":
			conf.NoColor = *noColor
		}
	})

	players := fs.Args()
	if len(players) > 2 {
		return nil, fmt.Errorf("expected at most two players, got %d", len(players))
	}
	if len(players) > 0 {
		conf.PlayerX = players[0]
	}
	if len(players) > 1 {
		conf.PlayerO = players[1]
	}

	conf.LogLevel = strings.ToLower(conf.LogLevel)
	conf.First = strings.ToLower(conf.First)

	if err := validator.Struct(conf); err != nil {
		return nil, err
	}
	return conf, nil
}
