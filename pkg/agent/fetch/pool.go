package fetch

import (
	"math/rand/v2"
	"sync"
)

// InstructionPool is an in-memory reservoir of text question prompts not yet
// sent to the model. Prompts are expanded one theme at a time (every
// complexity x relevance combination) and drawn at random without replacement.
type InstructionPool struct {
	mu      sync.Mutex
	themes  []string
	next    int
	prompts []string
	rand    *rand.Rand
}

func NewInstructionPool(themes []string, r *rand.Rand) *InstructionPool {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &InstructionPool{
		themes: themes,
		rand:   r,
	}
}

// Ensure expands themes, cycling through the corpus, until at least n prompts
// are available.
func (p *InstructionPool) Ensure(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.themes) == 0 {
		return
	}

	for len(p.prompts) < n {
		theme := p.themes[p.next]
		p.next = (p.next + 1) % len(p.themes)

		for complexity := minLevel; complexity <= maxLevel; complexity++ {
			for relevance := minLevel; relevance <= maxLevel; relevance++ {
				p.prompts = append(p.prompts, TextQuestionPrompt(theme, complexity, relevance))
			}
		}
	}
}

// Draw removes and returns a random prompt. ok is false once the pool is dry.
func (p *InstructionPool) Draw() (prompt string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.prompts) == 0 {
		return "", false
	}

	i := p.rand.IntN(len(p.prompts))
	last := len(p.prompts) - 1

	prompt = p.prompts[i]
	p.prompts[i] = p.prompts[last]
	p.prompts[last] = ""
	p.prompts = p.prompts[:last]

	return prompt, true
}

func (p *InstructionPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}
