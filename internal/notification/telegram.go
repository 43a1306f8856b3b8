package notification

import (
	"context"
	"fmt"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier пишет о бронированиях в операционный чат.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, e *domain.Experience) {
	text := fmt.Sprintf(
		"*New booking %s*\n\n"+"Experience: %s\n"+"Date: %s, %s\n"+"Guests: %d\n"+"Total: ₹%s",
		b.ReferenceID, experienceTitle(e), b.BookingDate.Format("02.01.2006"), b.TimeSlot,
		b.Quantity, b.Total.StringFixed(2),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, e *domain.Experience) {
	text := fmt.Sprintf(
		"*Booking %s cancelled*\n\n"+"Experience: %s\n"+"Date: %s, %s\n"+"Released spots: %d",
		b.ReferenceID, experienceTitle(e), b.BookingDate.Format("02.01.2006"), b.TimeSlot, b.Quantity,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

func experienceTitle(e *domain.Experience) string {
	if e == nil {
		return "(removed)"
	}
	return e.Title
}
