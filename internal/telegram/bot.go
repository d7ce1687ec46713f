package telegram

import (
	"fmt"
	"strings"

	"go-xscraper/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// FormatBatch renders a submitted batch as a MarkdownV2 message.
func FormatBatch(handle string, posts []models.Post) string {
	msgText := fmt.Sprintf("🐦 *@%s*: %d posts submitted\n", escapeMarkdown(handle), len(posts))

	likes, views, withViews := 0, 0, 0
	for _, p := range posts {
		likes += p.Likes
		if p.HasViews() {
			views += p.Views
			withViews++
		}
	}
	msgText += fmt.Sprintf("❤️ %d likes\n", likes)
	if withViews > 0 {
		msgText += fmt.Sprintf("👀 %d views across %d posts\n", views, withViews)
	}

	if len(posts) > 0 && posts[0].Text != "" {
		latest := posts[0].Text
		if r := []rune(latest); len(r) > 120 {
			latest = string(r[:120]) + "…"
		}
		msgText += fmt.Sprintf("📝 %s\n", escapeMarkdown(latest))
	}
	return msgText
}

func (b *Bot) SendBatch(handle string, posts []models.Post) error {
	msg := tgbotapi.NewMessage(b.chatID, FormatBatch(handle, posts))
	msg.ParseMode = "MarkdownV2"
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
