package bank

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

const notificationChannel = "EMAIL"
const messagePrefix = "[ATLANTIC BANK]"

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
	return n.deliver(fmt.Sprintf("%s Transaction of %s processed on account %s. Available balance: %s.",
		messagePrefix, amount.StringFixed(2), accountNumber, balance.StringFixed(2)))
}

func (n Notifier) SendWelcomeNotification(accountNumber string, clientName string) domain.NotificationOutcome {
	return n.deliver(fmt.Sprintf("%s Welcome %s! Your account %s is now active.",
		messagePrefix, clientName, accountNumber))
}

func (n Notifier) SendSecurityAlert(accountNumber string, reason string) domain.NotificationOutcome {
	return n.deliver(fmt.Sprintf("%s Security alert on account %s: %s. Contact your branch if this was not you.",
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
