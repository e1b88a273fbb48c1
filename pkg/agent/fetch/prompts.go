package fetch

import (
	"fmt"

	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
)

// Estimated number of items a single model response contains, per list type.
const (
	TextQuestionsPerResponse  = 10
	ImageQuestionsPerResponse = 20
	ImageThemesPerResponse    = 50
)

const (
	minLevel = 1
	maxLevel = 10
)

const imageThemesPrompt = "Generate a Python list of %d unique and broad creative themes for artistic inspiration. " +
	"Each theme should be no more than four words, open to interpretation, and suitable for various artistic expressions. " +
	"Present the list in a single-line Python list structure."

const imageQuestionsPrompt = "Provide a Python list of %d creative and detailed scenarios for image generation, each inspired by the theme '%s'. " +
	"The scenarios should be diverse, encompassing elements such as natural landscapes, historical settings, futuristic scenes, and imaginative contexts related to '%s'. " +
	"Each element in the list should be a concise but descriptive scenario, designed to inspire visually rich images. " +
	"Format these as elements in a Python list."

const textQuestionPrompt = "Generate a Python list of %d questions or instruct tasks related to the theme '%s', " +
	"each with a complexity level of %d out of 10 and a relevance level to the theme of %d out of 10. " +
	"These tasks should varyingly explore the theme in a manner that is consistent with their assigned complexity and relevance levels, " +
	"allowing for a diverse and insightful engagement with the topic. " +
	"Ensure that the output is formatted as elements in a Python list."

func ImageThemesPrompt() string {
	return fmt.Sprintf(imageThemesPrompt, ImageThemesPerResponse)
}

func ImageQuestionsPrompt(theme string) string {
	return fmt.Sprintf(imageQuestionsPrompt, ImageQuestionsPerResponse, theme, theme)
}

func TextQuestionPrompt(theme string, complexity, relevance int) string {
	return fmt.Sprintf(textQuestionPrompt, TextQuestionsPerResponse, theme, complexity, relevance)
}

// ItemsPerResponse returns the expected yield of one call for a slot. Text
// themes are never generated and report 0.
func ItemsPerResponse(category queue.Category, itemType queue.ItemType) int {
	switch {
	case category == queue.CategoryImages && itemType == queue.ItemTypeThemes:
		return ImageThemesPerResponse
	case category == queue.CategoryImages && itemType == queue.ItemTypeQuestions:
		return ImageQuestionsPerResponse
	case category == queue.CategoryText && itemType == queue.ItemTypeQuestions:
		return TextQuestionsPerResponse
	default:
		return 0
	}
}

// CallsNeeded is ceil(count / perResponse), with at least one call.
func CallsNeeded(count, perResponse int) int {
	if count < 1 {
		count = 1
	}
	if perResponse < 1 {
		return 1
	}
	calls := count / perResponse
	if count%perResponse != 0 {
		calls++
	}
	return calls
}
