package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultRecentSize = 10000
	defaultRecentTTL  = 24 * time.Hour
)

// MaxCount caps the count_needed hint. Larger values are clamped.
const MaxCount = 1000

// BatchFetcher produces a fresh list for a slot. It reports failure as an
// empty result, never as an error.
type BatchFetcher interface {
	Fetch(ctx context.Context, category Category, itemType ItemType, count int, theme string) []string
}

type ManagerOptions struct {
	Fetcher BatchFetcher
	State   State

	// RecentSize and RecentTTL bound the window used to count items served
	// more than once.
	RecentSize int
	RecentTTL  time.Duration
}

type Stats struct {
	Refills          int              `json:"refills"`
	EmptyRefills     int              `json:"empty_refills"`
	Fetched          int              `json:"fetched"`
	Served           int              `json:"served"`
	Repeats          int              `json:"repeats"`
	ThemesForRefills int              `json:"themes_for_refills"`
	ThemeCounters    map[Category]int `json:"theme_counters"`
	QuestionCounters map[Category]int `json:"question_counters"`
}

// Manager hands out items from State and refills exhausted slots. A single
// lock guards the whole state, so at most one refill runs at a time and every
// take is totally ordered with respect to the others.
type Manager struct {
	mu      sync.Mutex
	state   State
	fetcher BatchFetcher
	recent  *expirable.LRU[string, struct{}]
	stats   Stats
}

func NewManager(opts ManagerOptions) (*Manager, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("fetcher is nil")
	}
	if opts.RecentSize <= 0 {
		opts.RecentSize = defaultRecentSize
	}
	if opts.RecentTTL <= 0 {
		opts.RecentTTL = defaultRecentTTL
	}

	state := opts.State
	if state == nil {
		state = NewState()
	}

	return &Manager{
		state:   state.Normalize(),
		fetcher: opts.Fetcher,
		recent:  expirable.NewLRU[string, struct{}](opts.RecentSize, nil, opts.RecentTTL),
	}, nil
}

// Take pops the most recently fetched item of a slot, refilling the slot first
// when it is exhausted. ok is false when no item could be produced.
func (m *Manager) Take(ctx context.Context, category Category, itemType ItemType, count int) (string, bool, error) {
	return m.TakeWithTheme(ctx, category, itemType, count, "")
}

// TakeWithTheme is Take with an explicit theme for question refills. With an
// empty theme one is popped from the category's themes slot.
func (m *Manager) TakeWithTheme(ctx context.Context, category Category, itemType ItemType, count int, theme string) (string, bool, error) {
	if err := category.Validate(); err != nil {
		return "", false, err
	}
	if err := itemType.Validate(); err != nil {
		return "", false, err
	}
	count = max(1, min(count, MaxCount))

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.takeLocked(ctx, category, itemType, count, theme)
	if ok {
		m.observe(item)
	}
	return item, ok, nil
}

func (m *Manager) Question(ctx context.Context, category Category, count int) (string, bool, error) {
	return m.Take(ctx, category, ItemTypeQuestions, count)
}

func (m *Manager) Theme(ctx context.Context, category Category, count int) (string, bool, error) {
	return m.Take(ctx, category, ItemTypeThemes, count)
}

// takeLocked must be called with m.mu held. Theme resolution for a question
// refill re-enters it directly instead of going through the lock again. Only
// items handed to callers are observed, so takeLocked leaves that to them.
func (m *Manager) takeLocked(ctx context.Context, category Category, itemType ItemType, count int, theme string) (string, bool) {
	listType := ListType(category, itemType)
	slot := m.state[category]

	items := slot.list(itemType)
	slog.Debug("queue length", "listType", listType, "items", len(items))

	if len(items) == 0 {
		items = m.refillLocked(ctx, category, itemType, count, theme)
		slot.setList(itemType, items)
		slog.Debug("fetched new list", "listType", listType, "items", len(items))
	}

	if len(items) == 0 {
		return "", false
	}

	last := len(items) - 1
	item := items[last]
	slot.setList(itemType, items[:last])
	slot.count(itemType)

	return item, true
}

// refillLocked ignores cancellation of the caller that triggered it. Callers
// queued on the lock wait for the same batch.
func (m *Manager) refillLocked(ctx context.Context, category Category, itemType ItemType, count int, theme string) []string {
	listType := ListType(category, itemType)
	ctx = context.WithoutCancel(ctx)

	if itemType == ItemTypeQuestions && theme == "" {
		var ok bool
		theme, ok = m.takeLocked(ctx, category, ItemTypeThemes, count, "")
		if ok {
			m.stats.ThemesForRefills++
		}
		if theme == "" && category == CategoryImages {
			slog.Warn("no theme available, skipping refill", "listType", listType)
			m.stats.EmptyRefills++
			return nil
		}
	}

	items := m.fetcher.Fetch(ctx, category, itemType, count, theme)

	m.stats.Refills++
	m.stats.Fetched += len(items)
	if len(items) == 0 {
		m.stats.EmptyRefills++
		slog.Warn("refill yielded no items", "listType", listType, "theme", theme)
	}

	return items
}

func (m *Manager) observe(item string) {
	m.stats.Served++
	if m.recent.Contains(item) {
		m.stats.Repeats++
	}
	m.recent.Add(item, struct{}{})
}

// Snapshot returns a deep copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.stats
	stats.ThemeCounters = make(map[Category]int, len(m.state))
	stats.QuestionCounters = make(map[Category]int, len(m.state))
	for category, slot := range m.state {
		stats.ThemeCounters[category] = slot.ThemeCounter
		stats.QuestionCounters[category] = slot.QuestionCounter
	}
	return stats
}
