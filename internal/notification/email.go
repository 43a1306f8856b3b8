package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/wb-go/wbf/logger"
	mail "gopkg.in/mail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// EmailNotifier шлет клиенту письма о подтверждении и отмене.
// Без SMTP-хоста работает как no-op.
type EmailNotifier struct {
	dialer *mail.Dialer
	from   string
	logger logger.Logger
}

func NewEmailNotifier(cfg SMTPConfig, logger logger.Logger) *EmailNotifier {
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &EmailNotifier{logger: logger}
	}

	return &EmailNotifier{
		dialer: mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

func (n *EmailNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking, e *domain.Experience) {
	n.send(ctx, b, "Booking Confirmed - "+b.ReferenceID, confirmationBody(b, e))
}

func (n *EmailNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, e *domain.Experience) {
	n.send(ctx, b, "Booking Cancelled - "+b.ReferenceID, cancellationBody(b, e))
}

func (n *EmailNotifier) send(ctx context.Context, b *domain.Booking, subject, body string) {
	if n.dialer == nil {
		n.logger.Debug("email skipped (smtp disabled)", logger.String("reference_id", b.ReferenceID))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("reference_id", b.ReferenceID))
		return
	}

	m := mail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", b.CustomerEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Error("failed to send email",
			logger.String("reference_id", b.ReferenceID),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Info("email sent",
		logger.String("reference_id", b.ReferenceID),
		logger.String("subject", subject),
	)
}

func confirmationBody(b *domain.Booking, e *domain.Experience) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", b.CustomerName)
	fmt.Fprintf(&sb, "Your booking %s is confirmed.\n\n", b.ReferenceID)
	fmt.Fprintf(&sb, "Experience: %s\n", experienceTitle(e))
	if e != nil && e.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", e.Location)
	}
	fmt.Fprintf(&sb, "Date: %s\n", b.BookingDate.Format("Monday, 02 January 2006"))
	fmt.Fprintf(&sb, "Time: %s\n", b.TimeSlot)
	fmt.Fprintf(&sb, "Guests: %d\n\n", b.Quantity)
	fmt.Fprintf(&sb, "Subtotal: ₹%s\n", b.Subtotal.StringFixed(2))
	if b.Discount.IsPositive() {
		fmt.Fprintf(&sb, "Discount: -₹%s\n", b.Discount.StringFixed(2))
	}
	fmt.Fprintf(&sb, "CGST (9%%): ₹%s\n", b.CGST.StringFixed(2))
	fmt.Fprintf(&sb, "SGST (9%%): ₹%s\n", b.SGST.StringFixed(2))
	fmt.Fprintf(&sb, "Total: ₹%s\n", b.Total.StringFixed(2))
	return sb.String()
}

func cancellationBody(b *domain.Booking, e *domain.Experience) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", b.CustomerName)
	fmt.Fprintf(&sb, "Your booking %s for %s on %s has been cancelled.\n",
		b.ReferenceID, experienceTitle(e), b.BookingDate.Format("02 January 2006"))
	fmt.Fprintf(&sb, "A refund of ₹%s will be processed to your original payment method.\n", b.Total.StringFixed(2))
	return sb.String()
}
