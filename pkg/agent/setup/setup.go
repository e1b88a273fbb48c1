package setup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NethermindEth/prompt-garden/pkg/agent/debug"
)

type SetupResult struct {
	OpenAiApiKey        string
	OpenAiModel         string
	OpenAiBaseUrl       string
	LlmTemperature      float32
	LlmConcurrency      int
	FallbackToDefaults  bool
	StateFile           string
	StateFlushInterval  time.Duration
	DstackTappdEndpoint string
	PinataJwtKey        string
	ApiIpPort           string
}

// LogValue keeps credentials out of logs.
func (s SetupResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("openAiModel", s.OpenAiModel),
		slog.String("openAiBaseUrl", s.OpenAiBaseUrl),
		slog.Any("llmTemperature", s.LlmTemperature),
		slog.Int("llmConcurrency", s.LlmConcurrency),
		slog.Bool("fallbackToDefaults", s.FallbackToDefaults),
		slog.String("stateFile", s.StateFile),
		slog.Duration("stateFlushInterval", s.StateFlushInterval),
		slog.String("dstackTappdEndpoint", s.DstackTappdEndpoint),
		slog.Bool("pinataEnabled", s.PinataJwtKey != ""),
		slog.String("apiIpPort", s.ApiIpPort),
	)
}

func Setup(ctx context.Context) (*SetupResult, error) {
	config, err := NewConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get config from env: %w", err)
	}

	setupResult := newSetupResult(config)

	if debug.IsDebugShowSetup() {
		slog.Info("setup output", "setupOutput", setupResult)
	}

	return setupResult, nil
}

func newSetupResult(config *Config) *SetupResult {
	return &SetupResult{
		OpenAiApiKey:        config.OpenAiApiKey,
		OpenAiModel:         config.OpenAiModel,
		OpenAiBaseUrl:       config.OpenAiBaseUrl,
		LlmTemperature:      config.LlmTemperature,
		LlmConcurrency:      config.LlmConcurrency,
		FallbackToDefaults:  config.FallbackToDefaults,
		StateFile:           config.StateFile,
		StateFlushInterval:  config.StateFlushInterval,
		DstackTappdEndpoint: config.DstackTappdEndpoint,
		PinataJwtKey:        config.PinataJwtKey,
		ApiIpPort:           config.ApiIpPort,
	}
}
