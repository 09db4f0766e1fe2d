package qa

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advisorqa/internal/catalog"
	"advisorqa/internal/classify"
	"advisorqa/internal/models"
	"advisorqa/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	st, err := store.NewMemory(catalog.Default())
	require.NoError(t, err)
	return NewService(st), st
}

func TestAskMatchedHighConfidence(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Ask(ctx, &models.QuestionRequest{Question: "What's the YTD performance vs S&P 500?"})
	require.NoError(t, err)

	assert.Equal(t, models.QuestionMatched, resp.Status)
	assert.Equal(t, models.ConfidenceHigh, resp.Confidence)
	require.NotNil(t, resp.Answer)
	assert.Equal(t, "ytd-performance", resp.Answer.ID)
	assert.NotNil(t, resp.Answer.Data)
	assert.Empty(t, resp.Message)

	counts, _ := st.CountQuestionsByStatus(ctx)
	assert.Equal(t, int64(1), counts[models.QuestionMatched])
	assert.Zero(t, counts[models.QuestionPending])
}

func TestAskNoMatchPersonal(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Ask(ctx, &models.QuestionRequest{Question: "What is my advisor's phone number?"})
	require.NoError(t, err)

	assert.Equal(t, models.QuestionNoMatch, resp.Status)
	require.NotNil(t, resp.Answer)
	assert.Equal(t, classify.CategoryPersonal, resp.Answer.Category)
	assert.Equal(t, resp.Message, resp.Answer.Content)

	data, ok := resp.Answer.Data.(models.FallbackData)
	require.True(t, ok)
	assert.True(t, data.IsUnmatched)
	assert.Equal(t, classify.CategoryPersonal, data.FallbackType)
	assert.Equal(t, "View Account Details", data.ActionText)

	counts, _ := st.CountQuestionsByStatus(ctx)
	assert.Equal(t, int64(1), counts[models.QuestionNoMatch])
}

func TestAskAdviceGoesToReview(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Ask(ctx, &models.QuestionRequest{Question: "Should I sell my Tesla position?"})
	require.NoError(t, err)

	assert.Equal(t, models.QuestionReview, resp.Status)
	assert.Nil(t, resp.Answer)
	assert.NotEmpty(t, resp.Message)

	review, err := st.GetQuestionsForReview(ctx)
	require.NoError(t, err)
	require.Len(t, review, 1)
	assert.Equal(t, resp.ID, review[0].ID)
	assert.Equal(t, classify.CategoryFinancialAdvice, review[0].Category)
}

func TestAskGeneralFallback(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Ask(context.Background(), &models.QuestionRequest{Question: "Tell me a joke"})
	require.NoError(t, err)

	assert.Equal(t, models.QuestionNoMatch, resp.Status)
	require.NotNil(t, resp.Answer)
	assert.Equal(t, "fallback-general", resp.Answer.ID)
	assert.Contains(t, resp.Answer.Content, "added to the queue")
}

func TestAskPlaceholdersDoNotChangeStoredQuestion(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	// Force the question into review so it can be read back
	svc.WithRules(classify.Rules{{Category: "manual", Review: true}})

	req := &models.QuestionRequest{
		Question:     "What's {benchmark} doing this week?",
		Placeholders: models.Placeholders{{Key: "benchmark", Value: "S&P 500"}},
	}
	resp, err := svc.Ask(ctx, req)
	require.NoError(t, err)
	require.Equal(t, models.QuestionReview, resp.Status)

	review, _ := st.GetQuestionsForReview(ctx)
	require.Len(t, review, 1)
	assert.Equal(t, "What's {benchmark} doing this week?", review[0].Text)
	assert.Equal(t, "What's {benchmark} doing this week?", req.Question)
	v, ok := review[0].Placeholders.Get("benchmark")
	assert.True(t, ok)
	assert.Equal(t, "S&P 500", v)
}

func TestAskPlaceholdersAffectMatching(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Ask(context.Background(), &models.QuestionRequest{
		Question:     "What's {index} performance?",
		Placeholders: models.Placeholders{{Key: "index", Value: "S&P 500"}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.QuestionMatched, resp.Status)
	assert.Equal(t, models.ConfidenceMedium, resp.Confidence)
}

func TestAskSeesAppendedAnswers(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, st.CreateAnswer(ctx, &models.Answer{
		ID:       "rmd",
		Title:    "Required Minimum Distributions",
		Content:  "Your RMD for this year is $14,200.",
		Keywords: []string{"rmd"},
		Phrases:  []string{"required minimum distribution"},
	}))

	resp, err := svc.Ask(ctx, &models.QuestionRequest{Question: "What is my required minimum distribution?"})
	require.NoError(t, err)
	assert.Equal(t, models.QuestionMatched, resp.Status)
	assert.Equal(t, "rmd", resp.Answer.ID)
}

type failingStore struct {
	*store.Memory
}

func (f failingStore) GetAllAnswers(ctx context.Context) ([]models.Answer, error) {
	return nil, errors.New("connection reset")
}

func TestAskStoreFailure(t *testing.T) {
	mem, err := store.NewMemory(nil)
	require.NoError(t, err)
	svc := NewService(failingStore{mem})

	_, err = svc.Ask(context.Background(), &models.QuestionRequest{Question: "anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")

	counts, err := mem.CountQuestionsByStatus(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts, "a failed request must not leave a logged question")
}

func TestFallbackShape(t *testing.T) {
	a := Fallback(classify.Rule{Category: "market_data", Message: "m", ActionText: "View Market Data"})
	assert.Equal(t, "fallback-market_data", a.ID)
	assert.Equal(t, models.AnswerTypeText, a.AnswerType)
	data := a.Data.(models.FallbackData)
	assert.Equal(t, "market_data", data.FallbackType)
	assert.True(t, data.IsUnmatched)
}
