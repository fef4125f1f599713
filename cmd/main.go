package main

import (
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/Jamolkhon5/projassist/internal/ai/project/prompts"
	"github.com/Jamolkhon5/projassist/internal/ai/project/service"
	"github.com/Jamolkhon5/projassist/internal/auth"
	"github.com/Jamolkhon5/projassist/internal/cli"
	"github.com/Jamolkhon5/projassist/internal/config"
	"github.com/Jamolkhon5/projassist/internal/llm"
	"github.com/Jamolkhon5/projassist/internal/metrics"
	"github.com/Jamolkhon5/projassist/internal/repository"
)

func main() {
	cfg, err := config.NewConfig(".env")
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	authConfig, err := auth.NewConfig(".auth.env")
	if err != nil {
		log.Fatal(err)
	}

	m := metrics.NewMetrics()
	observers := llm.MultiObserver{m}
	if cfg.LogCalls {
		observers = append(observers, llm.NewLogObserver(os.Stderr))
	}

	client := llm.NewGeminiClient(llm.Config{
		APIKey:   cfg.GeminiApiKey,
		Endpoint: cfg.GeminiEndpoint,
		Model:    cfg.ModelName,
		Timeout:  cfg.ModelTimeout,
	}, observers)
	gateway := llm.NewGateway(client, prompts.FallbackReply)

	store := prompts.Default()
	assistant := service.NewProjectAssistant(store, gateway)

	app := &cli.App{
		Config:    cfg,
		Auth:      authConfig,
		Assistant: assistant,
		Dialogue:  service.NewDialogue(assistant),
		Sessions:  repository.NewRepository(store),
		Metrics:   m,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}
