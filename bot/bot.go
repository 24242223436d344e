package bot

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bekmurza/satkgbot/analytics"
	"github.com/bekmurza/satkgbot/catalog"
	"github.com/bekmurza/satkgbot/config"
	"github.com/bekmurza/satkgbot/quiz"
)

// Bot represents the Telegram bot
type Bot struct {
	api       *tgbotapi.BotAPI
	engine    *quiz.Engine
	catalog   *catalog.Catalog
	analytics *analytics.Store
	adminID   int64
	assetsDir string

	seenMu sync.Mutex
	seen   map[int64]struct{}
}

const (
	cmdStart  = "/start"
	cmdRandom = "/random"
	cmdGoto   = "/goto"
	cmdStats  = "/stats"
	cmdReview = "/review_wrong"
	cmdTopics = "/topics"
	cmdTopic  = "/topic"
	cmdAdmin  = "/admin"

	cbAnswer      = "answer|"
	cbNavPrev     = "nav_prev|"
	cbNavNext     = "nav_next|"
	cbLevel       = "level|"
	cbIntroRandom = "intro_random"
	cbIntroHelp   = "intro_help"
)

// New creates a new bot instance
func New(cfg *config.Config, cat *catalog.Catalog, store *analytics.Store) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	botAPI.Debug = os.Getenv("DEBUG") == "true"

	b := &Bot{
		api:       botAPI,
		catalog:   cat,
		analytics: store,
		adminID:   cfg.AdminID,
		assetsDir: filepath.Dir(cfg.QuestionsPath),
		seen:      make(map[int64]struct{}),
	}
	b.engine = quiz.NewEngine(cat, b, nil)

	return b, nil
}

// Start starts the bot and listens for updates
func (b *Bot) Start() {
	log.Println("Starting bot polling...")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
		} else if update.Message != nil {
			b.handleMessage(update.Message)
		}
	}
}

// handleMessage processes incoming messages
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	userID := message.From.ID
	text := message.Text
	log.Printf("Received message from %s (ID: %d): %s", message.From.UserName, userID, text)

	switch {
	case strings.HasPrefix(text, cmdStart):
		b.handleStart(message)
	case text == cmdRandom:
		b.logCommand(userID, "random")
		b.replyOnError(userID, b.engine.Random(userID))
	case strings.HasPrefix(text, cmdGoto):
		b.handleGoto(message)
	case text == cmdStats:
		b.logCommand(userID, "stats")
		b.handleStats(message)
	case text == cmdReview:
		b.logCommand(userID, "review_wrong")
		b.replyOnError(userID, b.engine.Review(userID))
	case text == cmdTopics:
		b.logCommand(userID, "topics")
		b.handleTopics(message)
	case strings.HasPrefix(text, cmdTopic):
		b.handleTopic(message)
	case text == cmdAdmin:
		b.handleAdmin(message)
	default:
		b.handleFallback(message)
	}
}

// handleStart handles the /start command
func (b *Bot) handleStart(message *tgbotapi.Message) {
	userID := message.From.ID
	b.markSeen(userID)

	from := message.From
	go func() {
		b.analytics.EnsureUser(userID, from.UserName, from.FirstName, from.LastName)
		b.analytics.LogEvent(userID, "user_start", nil)
	}()

	b.sendIntro(message.Chat.ID)
}

// handleGoto handles "/goto N"
func (b *Bot) handleGoto(message *tgbotapi.Message) {
	userID := message.From.ID
	parts := strings.Fields(message.Text)
	if len(parts) != 2 {
		b.sendMessage(userID, msgGotoFormat)
		return
	}

	b.logCommand(userID, "goto")
	b.replyOnError(userID, b.engine.Goto(userID, parts[1]))
}

// handleTopic handles "/topic <name>"
func (b *Bot) handleTopic(message *tgbotapi.Message) {
	userID := message.From.ID
	parts := strings.SplitN(message.Text, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		b.sendMessage(userID, msgTopicFormat)
		return
	}

	b.logCommand(userID, "topic")
	b.replyOnError(userID, b.engine.Topic(userID, parts[1]))
}

// handleStats renders the user's in-memory statistics
func (b *Bot) handleStats(message *tgbotapi.Message) {
	userID := message.From.ID
	stats := b.engine.Ledger().Snapshot(userID)

	if stats.Total == 0 {
		b.sendMessage(userID, msgNoStats)
		return
	}

	acc := float64(stats.Correct) / float64(stats.Total) * 100

	lines := []string{
		"📊 Сенин статистикаң:",
		fmt.Sprintf("Бардык суроолор: %d", stats.Total),
		fmt.Sprintf("Туура жооптор: %d (%.1f%%)", stats.Correct, acc),
		"",
	}

	if len(stats.ByDiff) > 0 {
		lines = append(lines, "Деңгээл боюнча:")
		diffs := make([]string, 0, len(stats.ByDiff))
		for diff := range stats.ByDiff {
			diffs = append(diffs, diff)
		}
		sort.Strings(diffs)
		for _, diff := range diffs {
			d := stats.ByDiff[diff]
			a := float64(d.Correct) / float64(d.Total) * 100
			lines = append(lines, fmt.Sprintf("• %s: %d/%d (%.1f%%)", diff, d.Correct, d.Total, a))
		}
	} else {
		lines = append(lines, "Деңгээл боюнча маалымат жок.")
	}

	lines = append(lines, fmt.Sprintf("\nКайталай турган суроолор (wrong): %d", len(stats.Wrong)))
	if len(stats.Wrong) > 0 {
		sample := make([]string, 0, len(stats.Wrong))
		for pos := range stats.Wrong {
			sample = append(sample, pos)
		}
		sort.Strings(sample)
		if len(sample) > 10 {
			sample = sample[:10]
		}
		lines = append(lines, "Мисалы: "+strings.Join(sample, ", "))
	}

	b.sendMessage(userID, strings.Join(lines, "\n"))
}

// handleTopics lists the known topics
func (b *Bot) handleTopics(message *tgbotapi.Message) {
	topics := b.catalog.Topics()
	if len(topics) == 0 {
		b.sendMessage(message.From.ID, msgNoTopics)
		return
	}

	lines := []string{"Бар болгон темалар:"}
	for _, t := range topics {
		lines = append(lines, fmt.Sprintf("• %s (%d суроо)", t.Name, t.Count))
	}
	lines = append(lines, msgTopicUsage)

	b.sendMessage(message.From.ID, strings.Join(lines, "\n"))
}

// handleFallback answers non-command text: intro for new users, a short
// help otherwise. Unknown slash commands are ignored.
func (b *Bot) handleFallback(message *tgbotapi.Message) {
	if strings.HasPrefix(message.Text, "/") {
		return
	}

	userID := message.From.ID
	if !b.hasSeen(userID) {
		b.markSeen(userID)
		b.sendIntro(message.Chat.ID)
		return
	}

	b.sendMessage(message.Chat.ID, msgUnknown)
}

// handleCallback processes callback queries from inline buttons
func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	userID := callback.From.ID
	data := callback.Data
	log.Printf("Handling callback from user %s (ID: %d) with data: %s", callback.From.UserName, userID, data)

	// Acknowledge immediately to prevent "query is too old" errors
	b.sendCallbackResponse(callback.ID)

	switch {
	case strings.HasPrefix(data, cbAnswer):
		b.handleAnswer(userID, data)
	case strings.HasPrefix(data, cbNavPrev):
		pos := strings.TrimPrefix(data, cbNavPrev)
		b.replyOnError(userID, b.engine.Prev(userID, pos))
	case strings.HasPrefix(data, cbNavNext):
		pos := strings.TrimPrefix(data, cbNavNext)
		b.replyOnError(userID, b.engine.Next(userID, pos))
	case strings.HasPrefix(data, cbLevel):
		difficulty := strings.TrimPrefix(data, cbLevel)
		b.logCommand(userID, "level_"+difficulty)
		b.sendMessage(userID, fmt.Sprintf("Тандалды: %s\nМына биринчи суроо:", difficulty))
		b.replyOnError(userID, b.engine.SelectLevel(userID, difficulty))
	case data == cbIntroRandom:
		b.logCommand(userID, "intro_random")
		b.replyOnError(userID, b.engine.Random(userID))
	case data == cbIntroHelp:
		b.sendMessage(userID, msgHelp)
	default:
		log.Printf("Unknown callback data: %s", data)
	}
}

// handleAnswer grades a submitted answer. Payload: answer|id|letter|mode|pos
func (b *Bot) handleAnswer(userID int64, data string) {
	parts := strings.Split(data, "|")
	if len(parts) != 5 {
		log.Printf("Invalid answer callback format: %s", data)
		return
	}
	questionID, choice, mode, pos := parts[1], parts[2], quiz.Mode(parts[3]), parts[4]

	out, err := b.engine.Evaluate(userID, questionID, choice, mode, pos)
	if out == nil {
		// Lookup failed; nothing was recorded
		b.replyOnError(userID, err)
		return
	}

	go b.analytics.LogAttempt(userID, out.Question.ID, out.Position, choice,
		out.CorrectLetter, out.Correct, out.Question.Difficulty, out.Question.Topic)

	// A non-nil error alongside an outcome is the sequential continuation
	// notice (level finished or empty); the answer feedback itself has
	// already gone out through the presenter
	b.replyOnError(userID, err)
}

// replyOnError maps a core error to its Kyrgyz notice. Nil is a no-op;
// unexpected errors are logged only.
func (b *Bot) replyOnError(userID int64, err error) {
	if err == nil {
		return
	}
	if text := notice(err); text != "" {
		b.sendMessage(userID, text)
		return
	}
	log.Printf("Error handling update for user %d: %v", userID, err)
}

// notice translates core sentinel errors into user-visible messages
func notice(err error) string {
	switch {
	case errors.Is(err, quiz.ErrBadPosition):
		return msgGotoFormat
	case errors.Is(err, quiz.ErrQuestionNotFound):
		return msgNoQuestion
	case errors.Is(err, quiz.ErrTopicNotFound):
		return msgNoSuchTopic
	case errors.Is(err, quiz.ErrNothingToReview):
		return msgNothingToReview
	case errors.Is(err, quiz.ErrFirstQuestion):
		return msgFirstQuestion
	case errors.Is(err, quiz.ErrLastQuestion):
		return msgLastQuestion
	case errors.Is(err, quiz.ErrLevelEmpty):
		return msgLevelEmpty
	case errors.Is(err, quiz.ErrLevelComplete):
		return msgLevelComplete
	}
	return ""
}

func (b *Bot) markSeen(userID int64) {
	b.seenMu.Lock()
	defer b.seenMu.Unlock()
	b.seen[userID] = struct{}{}
}

func (b *Bot) hasSeen(userID int64) bool {
	b.seenMu.Lock()
	defer b.seenMu.Unlock()
	_, ok := b.seen[userID]
	return ok
}

// logCommand records command usage as an analytics event, fire-and-forget
func (b *Bot) logCommand(userID int64, name string) {
	go b.analytics.LogEvent(userID, "command", map[string]any{"command": name})
}
