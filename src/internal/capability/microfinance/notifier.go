package microfinance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

const notificationChannel = "SMS"
const messagePrefix = "[SOLIDARITY MF]"

type Notifier struct{}

func NewNotifier() Notifier {
	return Notifier{}
}

func (Notifier) OperatorName() string {
	return operatorName
}

func (Notifier) Channel() string {
	return notificationChannel
}

func (n Notifier) SendTransactionNotification(accountNumber string, amount decimal.Decimal, balance decimal.Decimal) domain.NotificationOutcome {
	return n.deliver(fmt.Sprintf("%s Operation of %s recorded on account %s. Balance: %s. Thank you for saving with us.",
		messagePrefix, amount.StringFixed(2), accountNumber, balance.StringFixed(2)))
}

func (n Notifier) SendWelcomeNotification(accountNumber string, clientName string) domain.NotificationOutcome {
	return n.deliver(fmt.Sprintf("%s Welcome %s! Account %s opened. Your savings build your community.",
		messagePrefix, clientName, accountNumber))
}

func (n Notifier) SendSecurityAlert(accountNumber string, reason string) domain.NotificationOutcome {
	return n.deliver(fmt.Sprintf("%s Security notice on account %s: %s. Visit your branch agent.",
		messagePrefix, accountNumber, reason))
}

func (Notifier) deliver(message string) domain.NotificationOutcome {
	return domain.NotificationOutcome{
		Delivered:        true,
		FormattedMessage: message,
		Channel:          notificationChannel,
		OperatorName:     operatorName,
	}
}
