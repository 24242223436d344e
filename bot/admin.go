package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleAdmin renders the analytics summary for the configured admin.
// Anyone else gets no reply at all.
func (b *Bot) handleAdmin(message *tgbotapi.Message) {
	userID := message.From.ID
	if b.adminID == 0 || userID != b.adminID {
		return
	}

	if !b.analytics.Enabled() {
		b.sendMessage(userID, "Аналитика базасы туташтырылган эмес.")
		return
	}

	lines := []string{
		"📈 Аналитика:",
		fmt.Sprintf("DAU бүгүн: %d", b.analytics.DAUToday()),
		fmt.Sprintf("Аракеттер бүгүн: %d", b.analytics.AttemptsToday()),
		fmt.Sprintf("Аракеттер бардыгы: %d", b.analytics.AttemptsTotal()),
		fmt.Sprintf("Тактык: %.1f%%", b.analytics.Accuracy()),
		fmt.Sprintf("Retention D1: %.1f%%", b.analytics.RetentionD1()),
	}

	if top := b.analytics.TopUsers(10); len(top) > 0 {
		lines = append(lines, "", "Топ колдонуучулар (7 күн):")
		for i, uc := range top {
			lines = append(lines, fmt.Sprintf("%d. %d — %d туура жооп", i+1, uc.UserID, uc.Count))
		}
	}

	if perDay := b.analytics.AttemptsPerDay(14); len(perDay) > 0 {
		lines = append(lines, "", "Аракеттер күн боюнча (14 күн):")
		for _, dc := range perDay {
			lines = append(lines, fmt.Sprintf("• %s: %d", dc.Date, dc.Count))
		}
	}

	b.sendMessage(userID, strings.Join(lines, "\n"))
}
