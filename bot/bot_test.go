package bot

import (
	"errors"
	"testing"

	"github.com/bekmurza/satkgbot/models"
	"github.com/bekmurza/satkgbot/quiz"
)

func TestNoticeMapping(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{quiz.ErrBadPosition, msgGotoFormat},
		{quiz.ErrQuestionNotFound, msgNoQuestion},
		{quiz.ErrTopicNotFound, msgNoSuchTopic},
		{quiz.ErrNothingToReview, msgNothingToReview},
		{quiz.ErrFirstQuestion, msgFirstQuestion},
		{quiz.ErrLastQuestion, msgLastQuestion},
		{quiz.ErrLevelEmpty, msgLevelEmpty},
		{quiz.ErrLevelComplete, msgLevelComplete},
		{errors.New("network down"), ""},
	}

	for _, tc := range tests {
		if got := notice(tc.err); got != tc.want {
			t.Errorf("notice(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestQuestionKeyboard(t *testing.T) {
	q := &models.Question{
		ID: "q7",
		Options: models.OptionList{
			{Letter: "A", Text: "1"},
			{Letter: "B", Text: "2"},
			{Letter: "C", Text: "3"},
			{Letter: "D", Text: "4"},
		},
	}

	markup := questionKeyboard(q, "12", quiz.ModeSequential)
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("expected 2 keyboard rows, got %d", len(markup.InlineKeyboard))
	}

	answers := markup.InlineKeyboard[0]
	if len(answers) != 4 {
		t.Fatalf("expected 4 answer buttons, got %d", len(answers))
	}
	// The payload must round-trip everything Evaluate needs
	if got := *answers[1].CallbackData; got != "answer|q7|B|sequential|12" {
		t.Errorf("answer payload = %q", got)
	}

	nav := markup.InlineKeyboard[1]
	if len(nav) != 2 {
		t.Fatalf("expected 2 nav buttons, got %d", len(nav))
	}
	if got := *nav[0].CallbackData; got != "nav_prev|12" {
		t.Errorf("prev payload = %q", got)
	}
	if got := *nav[1].CallbackData; got != "nav_next|12" {
		t.Errorf("next payload = %q", got)
	}
}

func TestQuestionKeyboardNoOptions(t *testing.T) {
	markup := questionKeyboard(&models.Question{ID: "q0"}, "1", quiz.ModeManual)
	if len(markup.InlineKeyboard) != 1 {
		t.Fatalf("expected nav row only, got %d rows", len(markup.InlineKeyboard))
	}
}

func TestSeenSet(t *testing.T) {
	b := &Bot{seen: make(map[int64]struct{})}

	if b.hasSeen(5) {
		t.Error("fresh user should be unseen")
	}
	b.markSeen(5)
	if !b.hasSeen(5) {
		t.Error("user should be seen after markSeen")
	}
	if b.hasSeen(6) {
		t.Error("other users stay unseen")
	}
}
