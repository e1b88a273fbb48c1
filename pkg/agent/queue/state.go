package queue

import (
	"errors"
	"fmt"
	"slices"
)

type Category string

const (
	CategoryText   Category = "text"
	CategoryImages Category = "images"
)

var Categories = []Category{CategoryText, CategoryImages}

func (c Category) Validate() error {
	if !slices.Contains(Categories, c) {
		return fmt.Errorf("%w: %q, must be 'text' or 'images'", ErrInvalidCategory, string(c))
	}
	return nil
}

type ItemType string

const (
	ItemTypeThemes    ItemType = "themes"
	ItemTypeQuestions ItemType = "questions"
)

func (t ItemType) Validate() error {
	if t != ItemTypeThemes && t != ItemTypeQuestions {
		return fmt.Errorf("%w: %q, must be 'themes' or 'questions'", ErrInvalidItemType, string(t))
	}
	return nil
}

// ListType names a slot, e.g. "images_questions".
func ListType(category Category, itemType ItemType) string {
	return string(category) + "_" + string(itemType)
}

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidItemType = errors.New("invalid item type")
)

// CategoryState holds the two slots of one category. A nil list means the slot
// is exhausted and must be refilled; an empty non-nil list is never stored.
type CategoryState struct {
	Themes          []string `json:"themes"`
	Questions       []string `json:"questions"`
	ThemeCounter    int      `json:"theme_counter"`
	QuestionCounter int      `json:"question_counter"`
}

// State is the persisted shape: category name to its slots and counters.
type State map[Category]*CategoryState

// NewState returns the shape used when no prior state exists.
func NewState() State {
	state := make(State, len(Categories))
	for _, category := range Categories {
		state[category] = &CategoryState{}
	}
	return state
}

// Normalize fills in missing categories and turns empty lists into nil.
// Unknown categories are dropped.
func (s State) Normalize() State {
	normalized := NewState()
	for _, category := range Categories {
		cs, ok := s[category]
		if !ok || cs == nil {
			continue
		}

		*normalized[category] = CategoryState{
			Themes:          nilIfEmpty(cs.Themes),
			Questions:       nilIfEmpty(cs.Questions),
			ThemeCounter:    cs.ThemeCounter,
			QuestionCounter: cs.QuestionCounter,
		}
	}
	return normalized
}

// Clone returns a deep copy.
func (s State) Clone() State {
	clone := make(State, len(s))
	for category, cs := range s {
		if cs == nil {
			continue
		}
		clone[category] = &CategoryState{
			Themes:          slices.Clone(cs.Themes),
			Questions:       slices.Clone(cs.Questions),
			ThemeCounter:    cs.ThemeCounter,
			QuestionCounter: cs.QuestionCounter,
		}
	}
	return clone
}

func (cs *CategoryState) list(itemType ItemType) []string {
	if itemType == ItemTypeThemes {
		return cs.Themes
	}
	return cs.Questions
}

func (cs *CategoryState) setList(itemType ItemType, items []string) {
	items = nilIfEmpty(items)
	if itemType == ItemTypeThemes {
		cs.Themes = items
	} else {
		cs.Questions = items
	}
}

func (cs *CategoryState) count(itemType ItemType) {
	if itemType == ItemTypeThemes {
		cs.ThemeCounter++
	} else {
		cs.QuestionCounter++
	}
}

func nilIfEmpty(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	return items
}
