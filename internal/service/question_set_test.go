package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSetJSON(t *testing.T, count int) string {
	t.Helper()
	questions := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, Question{
			Question: fmt.Sprintf("Question %d?", i+1),
			Options:  map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			Answer:   "A",
		})
	}
	raw, err := json.Marshal(QuestionSet{Questions: questions})
	require.NoError(t, err)
	return string(raw)
}

func TestParseQuestionSetValid(t *testing.T) {
	set, err := ParseQuestionSet(validSetJSON(t, QuestionCount))
	require.NoError(t, err)
	require.Len(t, set.Questions, QuestionCount)
	assert.Equal(t, "Question 1?", set.Questions[0].Question)
	assert.Equal(t, "A", set.Questions[0].Answer)
}

func TestParseQuestionSetStripsCodeFence(t *testing.T) {
	fenced := "```json\n" + validSetJSON(t, QuestionCount) + "\n```"
	set, err := ParseQuestionSet(fenced)
	require.NoError(t, err)
	assert.Len(t, set.Questions, QuestionCount)
}

func TestParseQuestionSetInvalidJSON(t *testing.T) {
	_, err := ParseQuestionSet("the model apologizes and cannot comply")
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Raw, "apologizes")
}

func TestParseQuestionSetWrongTypeIsSchemaViolation(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"questions is a string", `{"questions": "not a list"}`},
		{"questions is an object", `{"questions": {"question": "q"}}`},
		{"options is a string", `{"questions": [{"question": "q", "options": "A-D", "answer": "A"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseQuestionSet(tc.in)
			var violation *SchemaViolationError
			require.ErrorAs(t, err, &violation)
			var malformed *MalformedResponseError
			assert.False(t, errors.As(err, &malformed))
		})
	}
}

func TestParseQuestionSetWrongCount(t *testing.T) {
	for _, count := range []int{0, 3, 6} {
		_, err := ParseQuestionSet(validSetJSON(t, count))
		var violation *SchemaViolationError
		require.ErrorAs(t, err, &violation, "count %d should be rejected", count)
		assert.Contains(t, violation.Reason, "expected 5 questions")
	}
}

func TestParseQuestionSetMissingOptionKey(t *testing.T) {
	questions := make([]Question, QuestionCount)
	for i := range questions {
		questions[i] = Question{
			Question: "q",
			Options:  map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			Answer:   "B",
		}
	}
	delete(questions[2].Options, "D")
	raw, err := json.Marshal(QuestionSet{Questions: questions})
	require.NoError(t, err)

	_, err = ParseQuestionSet(string(raw))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	assert.Contains(t, violation.Reason, "question 3")
}

func TestParseQuestionSetExtraOptionKey(t *testing.T) {
	questions := make([]Question, QuestionCount)
	for i := range questions {
		questions[i] = Question{
			Question: "q",
			Options:  map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			Answer:   "C",
		}
	}
	questions[0].Options = map[string]string{"A": "a", "B": "b", "C": "c", "D": "d", "E": "e"}
	raw, err := json.Marshal(QuestionSet{Questions: questions})
	require.NoError(t, err)

	_, err = ParseQuestionSet(string(raw))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
}

func TestParseQuestionSetAnswerOutOfRange(t *testing.T) {
	questions := make([]Question, QuestionCount)
	for i := range questions {
		questions[i] = Question{
			Question: "q",
			Options:  map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			Answer:   "A",
		}
	}
	questions[4].Answer = "E"
	raw, err := json.Marshal(QuestionSet{Questions: questions})
	require.NoError(t, err)

	_, err = ParseQuestionSet(string(raw))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	assert.Contains(t, violation.Reason, `"E"`)
}

func TestParseQuestionSetEmptyQuestionText(t *testing.T) {
	questions := make([]Question, QuestionCount)
	for i := range questions {
		questions[i] = Question{
			Question: "q",
			Options:  map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
			Answer:   "A",
		}
	}
	questions[1].Question = "   "
	raw, err := json.Marshal(QuestionSet{Questions: questions})
	require.NoError(t, err)

	_, err = ParseQuestionSet(string(raw))
	var violation *SchemaViolationError
	require.ErrorAs(t, err, &violation)
	assert.Contains(t, violation.Reason, "question 2")
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no tag", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractJSON(tc.in))
		})
	}
}

func TestSchemaViolationErrorIsNotMalformed(t *testing.T) {
	_, err := ParseQuestionSet(validSetJSON(t, 2))
	var malformed *MalformedResponseError
	assert.False(t, errors.As(err, &malformed))
}
