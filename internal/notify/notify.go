package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v5"
	"go.uber.org/zap"

	"github.com/rewear/exchange/internal/model"
)

type Config struct {
	Domain      string `mapstructure:"domain"`
	APIKey      string `mapstructure:"api_key"`
	SenderEmail string `mapstructure:"sender_email"`
	SenderName  string `mapstructure:"sender_name"`
}

// Service sends swap lifecycle emails. Delivery is best effort: the ledger
// never waits on it and a failure only logs.
type Service struct {
	client  mailgun.Mailgun
	cfg     Config
	logger  *zap.Logger
	enabled bool
}

func NewService(cfg Config, logger *zap.Logger) *Service {
	enabled := cfg.Domain != "" && cfg.APIKey != ""

	var client mailgun.Mailgun
	if enabled {
		client = mailgun.NewMailgun(cfg.APIKey)
	} else {
		logger.Info("mailgun not configured, swap notifications disabled")
	}

	return &Service{client: client, cfg: cfg, logger: logger, enabled: enabled}
}

func (s *Service) IsEnabled() bool { return s.enabled }

func (s *Service) SwapRequestCreated(receiver *model.User, requester *model.User, item *model.Item) {
	s.send(receiver,
		fmt.Sprintf("New swap request for %q", item.Title),
		fmt.Sprintf("Hi %s,\n\n%s wants to swap for your item %q. Review the request on your dashboard.\n",
			receiver.FirstName, requester.Username, item.Title))
}

func (s *Service) SwapRequestAccepted(requester *model.User, item *model.Item) {
	s.send(requester,
		fmt.Sprintf("Your swap request for %q was accepted", item.Title),
		fmt.Sprintf("Hi %s,\n\nGood news: your swap request for %q was accepted. Arrange the exchange with the other member.\n",
			requester.FirstName, item.Title))
}

func (s *Service) SwapRequestRejected(requester *model.User, item *model.Item) {
	s.send(requester,
		fmt.Sprintf("Your swap request for %q was declined", item.Title),
		fmt.Sprintf("Hi %s,\n\nYour swap request for %q was declined. The item stays listed, so you can still redeem it with points.\n",
			requester.FirstName, item.Title))
}

func (s *Service) send(to *model.User, subject, body string) {
	if !s.enabled || to == nil {
		return
	}

	message := mailgun.NewMessage(
		s.cfg.Domain,
		fmt.Sprintf("%s <%s>", s.cfg.SenderName, s.cfg.SenderEmail),
		subject,
		body,
		to.Email,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.client.Send(ctx, message); err != nil {
		s.logger.Warn("failed to send notification email",
			zap.String("to", to.Email),
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}
