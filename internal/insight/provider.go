// Package insight produces the daily question and the weekly reflection.
//
// The remote boundary is explicit: a Generator returns (text, error) and
// the Provider decides the fallback. Callers never observe an error,
// only slightly different (canned) content.
package insight

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

// Generator is the remote text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg *GenOptions) (string, error)
}

// Provider wraps a Generator with deterministic local fallbacks.
type Provider struct {
	gen  Generator
	pick func(n int) int // index into the fallback bank
}

func NewProvider(gen Generator) *Provider {
	return &Provider{gen: gen, pick: rand.Intn}
}

const questionPrompt = `Generate a single, very short, deep, and reflective daily journaling question.
Language: %s.
Tone: Soulful, minimalist, and poetic.
The goal is a "one line" answer.
Avoid cliché questions.
Output ONLY the question text.`

// DailyQuestion returns one short reflective question in lang. On any
// remote failure or empty result it falls back to a uniformly random
// pick from the static bank for that language.
func (p *Provider) DailyQuestion(ctx context.Context, lang Lang) string {
	lang = normalizeLang(lang)
	langName := "English"
	if lang == LangArabic {
		langName = "Arabic"
	}

	prompt := fmt.Sprintf(questionPrompt, langName)
	text, err := p.gen.Generate(ctx, prompt, &GenOptions{Temperature: 0.85, TopP: 0.9})
	if err == nil {
		if q := strings.TrimSpace(text); q != "" {
			return q
		}
	}

	bank := fallbackQuestions[lang]
	return bank[p.pick(len(bank))]
}

const insightPrompt = `These are 7 journal entries from a user's week (one line each):
%s

Based on these lines, provide a short, compassionate, and poetic reflection about their week.
Language: English.
Limit to 2-3 short sentences.
Tone: Warm, minimalist, Zen-like.`

// WeeklyInsight returns a short reflective paragraph over texts, which
// must already be in the order the caller wants reflected. Empty input
// short-circuits to a fixed message without touching the remote service.
func (p *Provider) WeeklyInsight(ctx context.Context, texts []string) string {
	if len(texts) == 0 {
		return noEntriesInsight
	}

	prompt := fmt.Sprintf(insightPrompt, strings.Join(texts, "\n"))
	text, err := p.gen.Generate(ctx, prompt, nil)
	if err != nil {
		return failedInsightText
	}
	if t := strings.TrimSpace(text); t != "" {
		return t
	}
	return emptyInsightText
}
