package mobilemoney

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/api-sage/multiop-transaction-engine/src/internal/domain"
)

const notificationChannel = "SMS"
const messagePrefix = "[SWIFTCASH]"

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
	return n.deliver(fmt.Sprintf("%s You moved %s on wallet %s. New balance: %s. Dial *126# for details.",
		messagePrefix, amount.StringFixed(2), accountNumber, balance.StringFixed(2)))
}

func (n Notifier) SendWelcomeNotification(accountNumber string, clientName string) domain.NotificationOutcome {
	return n.deliver(fmt.Sprintf("%s Hello %s, wallet %s is ready. Welcome aboard!",
		messagePrefix, clientName, accountNumber))
}

func (n Notifier) SendSecurityAlert(accountNumber string, reason string) domain.NotificationOutcome {
	return n.deliver(fmt.Sprintf("%s ALERT on wallet %s: %s. Reply STOP to freeze your wallet.",
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
