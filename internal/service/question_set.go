package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// QuestionCount is the exact number of questions a generated set must
// contain. The scorer indexes answers by position, so the count and the
// option keys are enforced before anything is persisted.
const QuestionCount = 5

var optionKeys = []string{"A", "B", "C", "D"}

// Question is one validated multiple-choice entry.
type Question struct {
	Question string            `json:"question"`
	Options  map[string]string `json:"options"`
	Answer   string            `json:"answer"`
}

// QuestionSet is the top-level structure the generator must emit.
type QuestionSet struct {
	Questions []Question `json:"questions"`
}

// MalformedResponseError means the generator's output was not valid
// JSON at all. Raw is kept for diagnostics.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("model returned invalid JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaViolationError means the output parsed but does not encode a
// valid question set. Detail carries the offending payload.
type SchemaViolationError struct {
	Reason string
	Detail interface{}
}

func (e *SchemaViolationError) Error() string {
	return "model returned questions in an invalid structure: " + e.Reason
}

// ExtractJSON strips a surrounding markdown code fence, which chat
// models emit even when told not to. Anything else passes through.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:] // drop the fence language tag line
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// ParseQuestionSet validates a raw model reply against the contract:
// a top-level "questions" array of exactly five entries, each with a
// question text, options keyed exactly A-D, and an answer that is one
// of those letters. Validation is all-or-nothing; a single bad entry
// rejects the whole set.
func ParseQuestionSet(raw string) (*QuestionSet, error) {
	cleaned := ExtractJSON(raw)

	var set QuestionSet
	if err := json.Unmarshal([]byte(cleaned), &set); err != nil {
		// Valid JSON of the wrong shape (questions not a list, options
		// not an object) is a structural problem, not a parse failure.
		if json.Valid([]byte(cleaned)) {
			return nil, &SchemaViolationError{
				Reason: err.Error(),
				Detail: json.RawMessage(cleaned),
			}
		}
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}

	if len(set.Questions) != QuestionCount {
		return nil, &SchemaViolationError{
			Reason: fmt.Sprintf("expected %d questions, got %d", QuestionCount, len(set.Questions)),
			Detail: set.Questions,
		}
	}

	for i, q := range set.Questions {
		if err := validateQuestion(q); err != nil {
			return nil, &SchemaViolationError{
				Reason: fmt.Sprintf("question %d: %v", i+1, err),
				Detail: q,
			}
		}
	}

	return &set, nil
}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("missing question text")
	}
	if q.Options == nil {
		return fmt.Errorf("missing options")
	}
	if len(q.Options) != len(optionKeys) {
		return fmt.Errorf("options must have exactly keys A, B, C, D")
	}
	for _, k := range optionKeys {
		if _, ok := q.Options[k]; !ok {
			return fmt.Errorf("options missing key %q", k)
		}
	}
	if !isOptionKey(q.Answer) {
		return fmt.Errorf("answer %q is not one of A, B, C, D", q.Answer)
	}
	return nil
}

func isOptionKey(s string) bool {
	for _, k := range optionKeys {
		if s == k {
			return true
		}
	}
	return false
}
