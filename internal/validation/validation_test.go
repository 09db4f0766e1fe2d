package validation

import (
	"strings"
	"testing"

	"advisorqa/internal/models"
)

func fields(errs Errors) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateQuestionRequest(t *testing.T) {
	tests := []struct {
		name   string
		req    models.QuestionRequest
		fields []string
	}{
		{"valid minimal", models.QuestionRequest{Question: "What's my YTD return?"}, nil},
		{"single char", models.QuestionRequest{Question: "?"}, nil},
		{"empty question", models.QuestionRequest{Question: ""}, []string{"question"}},
		{"whitespace question", models.QuestionRequest{Question: "   \n"}, []string{"question"}},
		{"too long", models.QuestionRequest{Question: strings.Repeat("a", 1001)}, []string{"question"}},
		{"max length", models.QuestionRequest{Question: strings.Repeat("a", 1000)}, nil},
		{
			"valid context",
			models.QuestionRequest{Question: "q", Context: &models.QuestionContext{
				Accounts: []string{"acct-1"}, Timeframe: "ytd", SelectionMode: models.SelectionGroup,
			}},
			nil,
		},
		{
			"bad selection mode",
			models.QuestionRequest{Question: "q", Context: &models.QuestionContext{SelectionMode: "all"}},
			[]string{"context.selectionMode"},
		},
		{
			"empty account",
			models.QuestionRequest{Question: "q", Context: &models.QuestionContext{Accounts: []string{"a", ""}}},
			[]string{"context.accounts"},
		},
		{
			"empty placeholder name",
			models.QuestionRequest{Question: "q", Placeholders: models.Placeholders{{Key: " ", Value: "x"}}},
			[]string{"placeholders"},
		},
		{
			"several failures",
			models.QuestionRequest{Question: "", Context: &models.QuestionContext{SelectionMode: "x"}},
			[]string{"question", "context.selectionMode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateQuestionRequest(&tt.req)
			got := fields(errs)
			if strings.Join(got, ",") != strings.Join(tt.fields, ",") {
				t.Errorf("ValidateQuestionRequest() fields = %v, want %v", got, tt.fields)
			}
			if errs.OK() != (len(tt.fields) == 0) {
				t.Errorf("OK() = %v, want %v", errs.OK(), len(tt.fields) == 0)
			}
		})
	}
}

func TestValidateAnswer(t *testing.T) {
	valid := func() models.Answer {
		return models.Answer{
			ID:       "cash-balance",
			Title:    "Cash Balance",
			Content:  "You hold $12,000 in cash.",
			Keywords: []string{"cash"},
		}
	}

	tests := []struct {
		name   string
		mutate func(a *models.Answer)
		fields []string
	}{
		{"valid", func(a *models.Answer) {}, nil},
		{"generated id", func(a *models.Answer) { a.ID = "" }, nil},
		{"phrases only", func(a *models.Answer) { a.Keywords = nil; a.Phrases = []string{"cash balance"} }, nil},
		{"bad id", func(a *models.Answer) { a.ID = "../etc" }, []string{"id"}},
		{"missing title", func(a *models.Answer) { a.Title = "" }, []string{"title"}},
		{"missing content", func(a *models.Answer) { a.Content = " " }, []string{"content"}},
		{"no tokens", func(a *models.Answer) { a.Keywords = nil }, []string{"keywords"}},
		{"blank keyword", func(a *models.Answer) { a.Keywords = []string{"cash", ""} }, []string{"keywords"}},
		{"blank phrase", func(a *models.Answer) { a.Phrases = []string{" "} }, []string{"phrases"}},
		{"bad answer type", func(a *models.Answer) { a.AnswerType = "video" }, []string{"answerType"}},
		{"known answer type", func(a *models.Answer) { a.AnswerType = models.AnswerTypeChart }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid()
			tt.mutate(&a)
			got := fields(ValidateAnswer(&a))
			if strings.Join(got, ",") != strings.Join(tt.fields, ",") {
				t.Errorf("ValidateAnswer() fields = %v, want %v", got, tt.fields)
			}
		})
	}
}

func TestValidateFeedback(t *testing.T) {
	tests := []struct {
		name       string
		req        models.FeedbackRequest
		fields     []string
		questionID bool
	}{
		{"valid down", models.FeedbackRequest{AnswerID: "ytd", Sentiment: "down", Reasons: []string{"incorrect_data"}}, nil, false},
		{"valid up", models.FeedbackRequest{AnswerID: "ytd", Sentiment: "up"}, nil, false},
		{
			"with question id",
			models.FeedbackRequest{AnswerID: "ytd", Sentiment: "up", QuestionID: "6f1c3a52-8d3e-4b8f-9d6b-1b2f0f7c9a10"},
			nil, true,
		},
		{"bad question id", models.FeedbackRequest{AnswerID: "ytd", Sentiment: "up", QuestionID: "nope"}, []string{"questionId"}, false},
		{"missing answer", models.FeedbackRequest{Sentiment: "up"}, []string{"answerId"}, false},
		{"bad sentiment", models.FeedbackRequest{AnswerID: "ytd", Sentiment: "meh"}, []string{"sentiment"}, false},
		{"unknown reason", models.FeedbackRequest{AnswerID: "ytd", Sentiment: "down", Reasons: []string{"too_slow"}}, []string{"reasons"}, false},
		{"long comment", models.FeedbackRequest{AnswerID: "ytd", Sentiment: "down", Comment: strings.Repeat("x", 2001)}, []string{"comment"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qid, errs := ValidateFeedback(&tt.req)
			got := fields(errs)
			if strings.Join(got, ",") != strings.Join(tt.fields, ",") {
				t.Errorf("ValidateFeedback() fields = %v, want %v", got, tt.fields)
			}
			if (qid != nil) != tt.questionID {
				t.Errorf("ValidateFeedback() questionID = %v, want present=%v", qid, tt.questionID)
			}
		})
	}
}

func TestValidateAnswerID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"ytd-performance", true},
		{"ans_1", true},
		{"", false},
		{"has space", false},
		{"path/traversal", false},
		{"日本語", false},
		{strings.Repeat("a", 101), false},
	}

	for _, tt := range tests {
		if got := ValidateAnswerID(tt.id); got != tt.want {
			t.Errorf("ValidateAnswerID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
