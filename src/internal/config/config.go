package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultHTTPAddr = ":8080"
const defaultChannelID = "EngineApp"
const defaultFraudLimit = "5000000"

type Config struct {
	HTTPAddr string

	// DatabaseDSN selects the postgres-backed transaction log when set;
	// otherwise history stays in memory.
	DatabaseDSN string

	ChannelID      string
	ChannelKeyHash string

	FraudDefaultLimit decimal.Decimal
}

func Load() (Config, error) {
	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	fraudLimitRaw := strings.TrimSpace(os.Getenv("FRAUD_DEFAULT_LIMIT"))
	if fraudLimitRaw == "" {
		fraudLimitRaw = defaultFraudLimit
	}
	fraudLimit, err := decimal.NewFromString(fraudLimitRaw)
	if err != nil {
		return Config{}, fmt.Errorf("FRAUD_DEFAULT_LIMIT must be numeric: %w", err)
	}
	if fraudLimit.LessThanOrEqual(decimal.Zero) {
		return Config{}, fmt.Errorf("FRAUD_DEFAULT_LIMIT must be greater than zero")
	}

	return Config{
		HTTPAddr:          httpAddr,
		DatabaseDSN:       strings.TrimSpace(os.Getenv("DATABASE_DSN")),
		ChannelID:         channelID,
		ChannelKeyHash:    strings.TrimSpace(os.Getenv("CHANNEL_KEY_HASH")),
		FraudDefaultLimit: fraudLimit,
	}, nil
}
