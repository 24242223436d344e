package bot

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bekmurza/satkgbot/models"
	"github.com/bekmurza/satkgbot/quiz"
)

// Present implements quiz.Presenter: the question text with its options,
// answer buttons in one row and Prev/Next in a second, with the image
// attached when the file exists on disk.
func (b *Bot) Present(userID int64, q *models.Question, pos string, total int, mode quiz.Mode) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Суроо %s / %d\n", pos, total)
	sb.WriteString("────────────────────────\n")
	sb.WriteString(q.DisplayText())
	sb.WriteString("\n\nЖооп варианттары:\n")
	for _, opt := range q.Options {
		fmt.Fprintf(&sb, "%s) %s\n", opt.Letter, opt.Text)
	}
	text := strings.TrimRight(sb.String(), "\n")

	markup := questionKeyboard(q, pos, mode)

	if q.Image != "" {
		imagePath := filepath.Join(b.assetsDir, q.Image)
		if _, err := os.Stat(imagePath); err == nil {
			photo := tgbotapi.NewPhoto(userID, tgbotapi.FilePath(imagePath))
			photo.Caption = text
			photo.ReplyMarkup = markup
			_, err := b.api.Send(photo)
			if err == nil {
				return nil
			}
			log.Printf("Error sending image %s: %v, falling back to text", imagePath, err)
		}
	}

	msg := tgbotapi.NewMessage(userID, text)
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

// Feedback implements quiz.Presenter: the graded-answer message, always
// including the explanation block.
func (b *Bot) Feedback(userID int64, out *quiz.Outcome) error {
	var result string
	if out.Correct {
		result = "✅ Туура!"
	} else {
		result = fmt.Sprintf("❌ Туура эмес.\nТуура жооп: %s) %s", out.CorrectLetter, out.CorrectText)
	}

	msg := tgbotapi.NewMessage(userID, fmt.Sprintf("%s\n\nТүшүндүрмө:\n%s", result, out.Explanation))
	_, err := b.api.Send(msg)
	return err
}

// questionKeyboard builds the answer-letter row and the Prev/Next row.
// Answer payloads carry everything Evaluate needs; navigation payloads
// carry only the current position.
func questionKeyboard(q *models.Question, pos string, mode quiz.Mode) tgbotapi.InlineKeyboardMarkup {
	var answerRow []tgbotapi.InlineKeyboardButton
	for _, letter := range q.Options.Letters() {
		data := fmt.Sprintf("%s%s|%s|%s|%s", cbAnswer, q.ID, letter, mode, pos)
		answerRow = append(answerRow, tgbotapi.NewInlineKeyboardButtonData(letter, data))
	}

	navRow := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Previous", cbNavPrev+pos),
		tgbotapi.NewInlineKeyboardButtonData("➡️ Next", cbNavNext+pos),
	}

	if len(answerRow) == 0 {
		return tgbotapi.NewInlineKeyboardMarkup(navRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(answerRow, navRow)
}

// sendIntro sends the welcome message with the level and shortcut buttons.
func (b *Bot) sendIntro(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Жеңил", cbLevel+"easy")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Орточо", cbLevel+"medium")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Кыйын", cbLevel+"hard")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🎲 Random суроо", cbIntroRandom)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("ℹ️ Командалар", cbIntroHelp)),
	)

	msg := tgbotapi.NewMessage(chatID, msgIntro)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending intro: %v", err)
	}
}

// sendMessage sends a plain text message
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// sendCallbackResponse acknowledges a callback query
func (b *Bot) sendCallbackResponse(callbackID string) {
	callback := tgbotapi.NewCallback(callbackID, "")
	if _, err := b.api.Request(callback); err != nil {
		log.Printf("Error sending callback response: %v", err)
	}
}
