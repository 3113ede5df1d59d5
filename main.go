package main

import (
	"context"
	"io"
	"os"

	"omni-client/internal/constants"
	"omni-client/omni"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const programName = "omni-client"

// Logger
var log = logrus.New()

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	initLogger(cfg)

	os.Exit(run(os.Args[1:], cfg, os.Stdout))
}

// run executes one request and returns the process exit code
func run(args []string, cfg Config, out io.Writer) int {
	reporter := omni.NewReporter(out)
	reporter.Banner()

	reporter.Printf("📝 Example Test:")
	reporter.Printf("   Video: %s", constants.ExampleVideoURL)
	reporter.Printf("   Prompt: %s", constants.ExamplePrompt)
	reporter.Printf("")

	videoURL, prompt := constants.ExampleVideoURL, constants.ExamplePrompt
	if len(args) >= 2 {
		videoURL, prompt = args[0], args[1]
		reporter.Printf("Using custom input from command line arguments")
	} else {
		reporter.Printf("Using example video and prompt (no command line args provided)")
		reporter.Printf("Usage: %s <video_url> <prompt>", programName)
	}
	reporter.Printf("")

	request, err := omni.NewRequest(videoURL, prompt)
	if err != nil {
		reporter.Failure(err.Error())
		return 1
	}
	request.Model = cfg.Model

	client := omni.NewClient(omni.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		APIKey:  cfg.APIKey,
		Output:  out,
	})

	log.WithFields(logrus.Fields{
		"base_url":       cfg.BaseURL,
		"timeout":        cfg.Timeout,
		"strip_thinking": cfg.StripThinking,
	}).Debug("Starting request")

	result := client.Run(context.Background(), request, cfg.StripThinking)
	if !result.Success {
		return 1
	}
	return 0
}

func initLogger(cfg Config) {
	switch cfg.LogLevel {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
		if cfg.LogLevel != "" {
			log.Fatalf("Invalid log level: '%s'.", cfg.LogLevel)
		}
	}

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if cfg.LogFile != "" {
		logFile := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		output := io.MultiWriter(os.Stderr, logFile)
		log.SetOutput(output)
		omni.SetLogOutput(output)
	}

	omni.SetLogLevel(log.GetLevel())
}
