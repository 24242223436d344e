package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is a single answer choice: a letter key and its display text.
type Option struct {
	Letter string
	Text   string
}

// OptionList keeps answer choices in the order they appear in the question
// bank. A plain map would lose that order on unmarshal.
type OptionList []Option

// UnmarshalJSON decodes a JSON object into an OptionList, preserving key
// order by walking the token stream.
func (o *OptionList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("options: expected JSON object, got %v", tok)
	}

	var list OptionList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		letter, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("options: expected string key, got %v", keyTok)
		}

		var text string
		if err := dec.Decode(&text); err != nil {
			return fmt.Errorf("options: value for %q: %w", letter, err)
		}
		list = append(list, Option{Letter: letter, Text: text})
	}

	*o = list
	return nil
}

// Get returns the text for a letter.
func (o OptionList) Get(letter string) (string, bool) {
	for _, opt := range o {
		if opt.Letter == letter {
			return opt.Text, true
		}
	}
	return "", false
}

// Letters returns the option letters in display order.
func (o OptionList) Letters() []string {
	letters := make([]string, len(o))
	for i, opt := range o {
		letters[i] = opt.Letter
	}
	return letters
}

// Question represents a single record from the questions.json bank.
// Several fields come in two variants (Kyrgyz-first with a legacy fallback);
// use the accessor methods rather than reading those fields directly.
type Question struct {
	ID            string     `json:"id"`
	QuestionKG    string     `json:"question_kg"`
	Text          string     `json:"text"`
	Options       OptionList `json:"options"`
	Answer        string     `json:"answer"`
	Correct       string     `json:"correct"`
	ExplanationKG string     `json:"explanation_kg"`
	Explanation   string     `json:"explanation"`
	Difficulty    string     `json:"difficulty"`
	Topic         string     `json:"topic"`
	Image         string     `json:"image"`
}

// DisplayText returns the question text, preferring the Kyrgyz variant.
func (q *Question) DisplayText() string {
	return firstNonEmpty(q.QuestionKG, q.Text, "Суроо жок")
}

// CorrectLetter returns the correct option letter ("answer" preferred over
// the legacy "correct" field). Empty when the record carries neither.
func (q *Question) CorrectLetter() string {
	return firstNonEmpty(q.Answer, q.Correct, "")
}

// ExplanationText returns the explanation, preferring the Kyrgyz variant,
// or "" when the question has none.
func (q *Question) ExplanationText() string {
	return firstNonEmpty(q.ExplanationKG, q.Explanation, "")
}

// DifficultyTag returns the difficulty, or "unknown" when untagged.
func (q *Question) DifficultyTag() string {
	if q.Difficulty == "" {
		return "unknown"
	}
	return q.Difficulty
}

// firstNonEmpty returns the first non-empty string, falling back to def.
func firstNonEmpty(a, b, def string) string {
	if a != "" {
		return a
	}
	if b != "" {
		return b
	}
	return def
}
