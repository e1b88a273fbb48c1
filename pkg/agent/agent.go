package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/NethermindEth/prompt-garden/pkg/agent/fetch"
	"github.com/NethermindEth/prompt-garden/pkg/agent/filestorage"
	"github.com/NethermindEth/prompt-garden/pkg/agent/llm"
	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
	"github.com/NethermindEth/prompt-garden/pkg/agent/sealing"
	"github.com/NethermindEth/prompt-garden/pkg/agent/setup"
	"github.com/NethermindEth/prompt-garden/pkg/agent/storage"
)

type Agent struct {
	manager   *queue.Manager
	fetcher   queue.BatchFetcher
	store     storage.Store
	apiRouter *gin.Engine

	flushInterval time.Duration
	apiIpPort     string
}

type AgentConfig struct {
	Fetcher queue.BatchFetcher
	Store   storage.Store

	FlushInterval time.Duration
	ApiIpPort     string
}

const (
	defaultFlushInterval = time.Minute
	shutdownSaveTimeout  = 10 * time.Second
)

func NewAgent(ctx context.Context, config *AgentConfig) (*Agent, error) {
	if config == nil {
		return nil, errors.New("config is nil")
	}
	if config.Store == nil {
		return nil, errors.New("store is nil")
	}

	state, err := config.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	manager, err := queue.NewManager(queue.ManagerOptions{
		Fetcher: config.Fetcher,
		State:   state,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create queue manager: %w", err)
	}

	if config.FlushInterval <= 0 {
		config.FlushInterval = defaultFlushInterval
	}

	agent := &Agent{
		manager:   manager,
		fetcher:   config.Fetcher,
		store:     config.Store,
		apiRouter: nil,

		flushInterval: config.FlushInterval,
		apiIpPort:     config.ApiIpPort,
	}

	agent.apiRouter = agent.generateRouter()

	return agent, nil
}

func NewAgentConfigFromSetupResult(setupResult *setup.SetupResult) (*AgentConfig, error) {
	if setupResult == nil {
		return nil, errors.New("setup result is nil")
	}

	generator := llm.NewRetryingGenerator(
		llm.NewOpenAiCompleter(setupResult.OpenAiApiKey, setupResult.OpenAiBaseUrl),
		llm.RetryOptions{},
	)

	fetcher := fetch.NewFetcher(fetch.FetcherOptions{
		Generator:          generator,
		Model:              setupResult.OpenAiModel,
		Temperature:        setupResult.LlmTemperature,
		Concurrency:        setupResult.LlmConcurrency,
		FallbackToDefaults: setupResult.FallbackToDefaults,
	})

	var store storage.Store = storage.NewFileStore(setupResult.StateFile)
	if setupResult.DstackTappdEndpoint != "" {
		store = storage.NewSealedStore(setupResult.StateFile, sealing.NewTappdKeyDeriver(setupResult.DstackTappdEndpoint))
	}
	if setupResult.PinataJwtKey != "" {
		store = storage.NewArchivingStore(store, filestorage.NewPinataUploader(setupResult.PinataJwtKey))
	}

	return &AgentConfig{
		Fetcher:       fetcher,
		Store:         store,
		FlushInterval: setupResult.StateFlushInterval,
		ApiIpPort:     setupResult.ApiIpPort,
	}, nil
}

// Start serves the API and flushes state periodically until ctx is done, then
// saves the state one last time.
func (a *Agent) Start(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return a.StartServer(groupCtx)
	})
	group.Go(func() error {
		return a.flushState(groupCtx)
	})

	err := group.Wait()

	saveCtx, cancel := context.WithTimeout(context.Background(), shutdownSaveTimeout)
	defer cancel()
	if saveErr := a.Save(saveCtx); saveErr != nil {
		slog.Error("failed to save state on shutdown", "error", saveErr)
	}

	if closer, ok := a.fetcher.(interface{ Close() }); ok {
		closer.Close()
	}

	return err
}

func (a *Agent) flushState(ctx context.Context) error {
	ticker := time.NewTicker(a.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.Save(ctx); err != nil {
				slog.Error("failed to flush state", "error", err)
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (a *Agent) Save(ctx context.Context) error {
	return a.store.Save(ctx, a.manager.Snapshot())
}

func (a *Agent) Take(ctx context.Context, category queue.Category, itemType queue.ItemType, count int) (string, bool, error) {
	return a.manager.Take(ctx, category, itemType, count)
}

func (a *Agent) Question(ctx context.Context, category queue.Category, count int) (string, bool, error) {
	return a.manager.Question(ctx, category, count)
}

func (a *Agent) FlushInterval() time.Duration {
	return a.flushInterval
}
