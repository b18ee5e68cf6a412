package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text   string
	err    error
	calls  int
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string, _ *GenOptions) (string, error) {
	s.calls++
	s.prompt = prompt
	return s.text, s.err
}

func TestDailyQuestionRemoteSuccess(t *testing.T) {
	gen := &stubGenerator{text: "  What surprised you today?  "}
	p := NewProvider(gen)

	q := p.DailyQuestion(context.Background(), LangEnglish)
	assert.Equal(t, "What surprised you today?", q)
	assert.Contains(t, gen.prompt, "English")
}

func TestDailyQuestionFallsBackOnError(t *testing.T) {
	p := NewProvider(&stubGenerator{err: errors.New("boom")})

	q := p.DailyQuestion(context.Background(), LangEnglish)
	assert.NotEmpty(t, q)
	assert.Contains(t, fallbackQuestions[LangEnglish], q)
}

func TestDailyQuestionFallsBackOnEmpty(t *testing.T) {
	p := NewProvider(&stubGenerator{text: "   "})

	q := p.DailyQuestion(context.Background(), LangArabic)
	assert.Contains(t, fallbackQuestions[LangArabic], q)
}

func TestDailyQuestionUnknownLangDefaultsEnglish(t *testing.T) {
	gen := &stubGenerator{err: errors.New("down")}
	p := NewProvider(gen)

	q := p.DailyQuestion(context.Background(), Lang("fr"))
	assert.Contains(t, fallbackQuestions[LangEnglish], q)
}

func TestDailyQuestionCoversWholeBank(t *testing.T) {
	p := NewProvider(&stubGenerator{err: errors.New("down")})
	seen := map[string]bool{}
	for i := 0; i < len(fallbackQuestions[LangEnglish]); i++ {
		idx := i
		p.pick = func(int) int { return idx }
		seen[p.DailyQuestion(context.Background(), LangEnglish)] = true
	}
	assert.Len(t, seen, len(fallbackQuestions[LangEnglish]))
}

func TestWeeklyInsightEmptySkipsRemote(t *testing.T) {
	gen := &stubGenerator{text: "should not appear"}
	p := NewProvider(gen)

	got := p.WeeklyInsight(context.Background(), nil)
	assert.Equal(t, noEntriesInsight, got)
	assert.Zero(t, gen.calls, "no remote call with zero entries")
}

func TestWeeklyInsightSendsLinesInOrder(t *testing.T) {
	gen := &stubGenerator{text: "A gentle week."}
	p := NewProvider(gen)

	texts := []string{"t9", "t8", "t7", "t6", "t5", "t4", "t3"}
	got := p.WeeklyInsight(context.Background(), texts)

	require.Equal(t, "A gentle week.", got)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.prompt, strings.Join(texts, "\n"))
}

func TestWeeklyInsightFallbacks(t *testing.T) {
	p := NewProvider(&stubGenerator{err: errors.New("timeout")})
	assert.Equal(t, failedInsightText, p.WeeklyInsight(context.Background(), []string{"x"}))

	p = NewProvider(&stubGenerator{text: "  "})
	assert.Equal(t, emptyInsightText, p.WeeklyInsight(context.Background(), []string{"x"}))
}
