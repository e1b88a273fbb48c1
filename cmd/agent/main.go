package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NethermindEth/prompt-garden/pkg/agent"
	"github.com/NethermindEth/prompt-garden/pkg/agent/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupResult, err := setup.Setup(ctx)
	if err != nil {
		slog.Error("failed to setup", "error", err)
		return
	}

	agentConfig, err := agent.NewAgentConfigFromSetupResult(setupResult)
	if err != nil {
		slog.Error("failed to create agent config", "error", err)
		return
	}

	agent, err := agent.NewAgent(ctx, agentConfig)
	if err != nil {
		slog.Error("failed to create agent", "error", err)
		return
	}

	if err := agent.Start(ctx); err != nil && ctx.Err() == nil {
		slog.Error("agent stopped", "error", err)
	}
}
