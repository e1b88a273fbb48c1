package setup

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
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

func NewConfigFromEnv() (*Config, error) {
	temperature, err := strconv.ParseFloat(getEnv(EnvLlmTemperature, strconv.FormatFloat(DefaultLlmTemperature, 'f', -1, 64)), 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvLlmTemperature, err)
	}

	concurrency, err := strconv.Atoi(getEnv(EnvLlmConcurrency, strconv.Itoa(DefaultLlmConcurrency)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvLlmConcurrency, err)
	}

	fallback, err := strconv.ParseBool(getEnv(EnvFallbackToDefaults, "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvFallbackToDefaults, err)
	}

	flushInterval, err := time.ParseDuration(getEnv(EnvStateFlushInterval, DefaultStateFlushInterval))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvStateFlushInterval, err)
	}

	config := &Config{
		OpenAiApiKey:        os.Getenv(EnvOpenAiApiKey),
		OpenAiModel:         getEnv(EnvOpenAiModel, DefaultOpenAiModel),
		OpenAiBaseUrl:       os.Getenv(EnvOpenAiBaseUrl),
		LlmTemperature:      float32(temperature),
		LlmConcurrency:      concurrency,
		FallbackToDefaults:  fallback,
		StateFile:           getEnv(EnvStateFile, DefaultStateFile),
		StateFlushInterval:  flushInterval,
		DstackTappdEndpoint: os.Getenv(EnvDstackTappdEndpoint),
		PinataJwtKey:        os.Getenv(EnvPinataJwtKey),
		ApiIpPort:           os.Getenv(EnvApiIpPort),
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.OpenAiApiKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	if c.OpenAiModel == "" {
		return errors.New("OPENAI_MODEL must not be empty")
	}
	if c.LlmTemperature < 0 || c.LlmTemperature > 2 {
		return errors.New("LLM_TEMPERATURE must be between 0 and 2")
	}
	if c.LlmConcurrency <= 0 {
		return errors.New("LLM_CONCURRENCY must be positive")
	}
	if c.StateFile == "" {
		return errors.New("STATE_FILE must not be empty")
	}
	if c.StateFlushInterval <= 0 {
		return errors.New("STATE_FLUSH_INTERVAL must be positive")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
