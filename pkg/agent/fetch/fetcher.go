package fetch

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/NethermindEth/prompt-garden/pkg/agent/extract"
	"github.com/NethermindEth/prompt-garden/pkg/agent/llm"
	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
)

const (
	DefaultModel       = "gpt-4-1106-preview"
	DefaultTemperature = 0.8
	DefaultConcurrency = 16

	maxSeed = 10000
)

type FetcherOptions struct {
	Generator   llm.Generator
	Model       string
	Temperature float32
	Concurrency int

	// TextThemes is served for text themes and expanded into text question
	// prompts. Defaults to DefaultTextThemes.
	TextThemes []string

	// FallbackToDefaults serves the built-in list of a slot when a whole batch
	// yields nothing.
	FallbackToDefaults bool

	Rand *rand.Rand
}

// Fetcher builds the prompts for a refill, sends them to the model
// concurrently and merges every extracted list into one.
type Fetcher struct {
	generator   llm.Generator
	model       string
	temperature float32
	workers     pond.Pool
	textThemes  []string
	fallback    bool
	instruct    *InstructionPool

	randMu sync.Mutex
	rand   *rand.Rand
}

var _ queue.BatchFetcher = (*Fetcher)(nil)

func NewFetcher(opts FetcherOptions) *Fetcher {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Temperature == 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.TextThemes == nil {
		opts.TextThemes = DefaultTextThemes
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Fetcher{
		generator:   opts.Generator,
		model:       opts.Model,
		temperature: opts.Temperature,
		workers:     pond.NewPool(opts.Concurrency),
		textThemes:  opts.TextThemes,
		fallback:    opts.FallbackToDefaults,
		instruct:    NewInstructionPool(opts.TextThemes, rand.New(rand.NewPCG(opts.Rand.Uint64(), opts.Rand.Uint64()))),
		rand:        opts.Rand,
	}
}

// Fetch returns a fresh list for the slot. Failed or unparseable responses
// contribute nothing; lists are concatenated in the order responses complete.
func (f *Fetcher) Fetch(ctx context.Context, category queue.Category, itemType queue.ItemType, count int, theme string) []string {
	listType := queue.ListType(category, itemType)

	if category == queue.CategoryText && itemType == queue.ItemTypeThemes {
		return slices.Clone(f.textThemes)
	}

	prompts := f.selectPrompts(category, itemType, count, theme)
	slog.Info("fetching list", "listType", listType, "count", count, "prompts", len(prompts))

	items := f.gather(ctx, listType, prompts)
	if len(items) == 0 && f.fallback {
		slog.Warn("batch yielded no items, serving defaults", "listType", listType)
		return defaultsFor(category, itemType)
	}

	return items
}

func (f *Fetcher) selectPrompts(category queue.Category, itemType queue.ItemType, count int, theme string) []string {
	calls := CallsNeeded(count, ItemsPerResponse(category, itemType))

	if category == queue.CategoryText {
		f.instruct.Ensure(count)

		prompts := make([]string, 0, calls)
		for range calls {
			prompt, ok := f.instruct.Draw()
			if !ok {
				slog.Warn("instruction pool ran dry", "drawn", len(prompts), "wanted", calls)
				break
			}
			prompts = append(prompts, prompt)
		}
		return prompts
	}

	prompt := ImageThemesPrompt()
	if itemType == queue.ItemTypeQuestions {
		prompt = ImageQuestionsPrompt(theme)
	}

	prompts := make([]string, calls)
	for i := range prompts {
		prompts[i] = prompt
	}
	return prompts
}

func (f *Fetcher) gather(ctx context.Context, listType string, prompts []string) []string {
	var (
		mu    sync.Mutex
		items []string
	)

	group := f.workers.NewGroup()
	for _, prompt := range prompts {
		seed := f.seed()

		group.Submit(func() {
			answer, ok := f.generator.Generate(ctx, llm.UserMessage(prompt), f.temperature, f.model, seed)
			if !ok || answer == "" {
				slog.Info("no response from model", "listType", listType)
				return
			}

			answer = strings.ReplaceAll(answer, "\n", " ")

			extracted, err := extract.Extract(answer)
			if err != nil {
				slog.Info("no valid list found", "listType", listType, "answer", answer, "error", err)
				return
			}

			slog.Info("received new list", "listType", listType, "items", len(extracted))

			mu.Lock()
			items = append(items, extracted...)
			mu.Unlock()
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("batch did not complete", "listType", listType, "error", err)
	}

	return items
}

func (f *Fetcher) seed() int {
	f.randMu.Lock()
	defer f.randMu.Unlock()
	return f.rand.IntN(maxSeed) + 1
}

// Close waits for in-flight requests and stops the worker pool.
func (f *Fetcher) Close() {
	f.workers.StopAndWait()
}

func defaultsFor(category queue.Category, itemType queue.ItemType) []string {
	switch {
	case category == queue.CategoryImages && itemType == queue.ItemTypeThemes:
		return slices.Clone(DefaultImageThemes)
	case category == queue.CategoryImages && itemType == queue.ItemTypeQuestions:
		return slices.Clone(DefaultImageQuestions)
	case category == queue.CategoryText && itemType == queue.ItemTypeQuestions:
		return slices.Clone(DefaultTextQuestions)
	default:
		return slices.Clone(DefaultTextThemes)
	}
}
