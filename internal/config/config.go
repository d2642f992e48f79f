package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Fees     FeesConfig
	Checkout CheckoutConfig
	Coupons  CouponsConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type FeesConfig struct {
	VATPercent int64
	DisplayVAT bool
	Currency   string
}

type CheckoutConfig struct {
	// ProcessingDelay is the artificial wait before an order completes.
	// It has no failure branch and is never cancelled.
	ProcessingDelay time.Duration
}

type CouponsConfig struct {
	ApplyLimit  int
	ApplyWindow time.Duration
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverHost := os.Getenv("SERVER_HOST")
	if serverHost == "" {
		serverHost = "localhost"
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080"
	}

	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %w", op, err)
	}

	serverCfg := ServerConfig{
		Host: serverHost,
		Port: serverPort,
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisCfg := RedisConfig{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	}

	vatPercentStr := os.Getenv("VAT_PERCENT")
	if vatPercentStr == "" {
		vatPercentStr = "15"
	}

	vatPercent, err := strconv.ParseInt(vatPercentStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid VAT_PERCENT: %w", op, err)
	}

	displayVAT := true
	if v := os.Getenv("DISPLAY_VAT"); v != "" {
		displayVAT, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid DISPLAY_VAT: %w", op, err)
		}
	}

	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "MUR"
	}

	feesCfg := FeesConfig{
		VATPercent: vatPercent,
		DisplayVAT: displayVAT,
		Currency:   currency,
	}

	processingDelayMsStr := os.Getenv("PROCESSING_DELAY_MS")
	if processingDelayMsStr == "" {
		processingDelayMsStr = "2000"
	}

	processingDelayMs, err := strconv.Atoi(processingDelayMsStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid PROCESSING_DELAY_MS: %w", op, err)
	}

	checkoutCfg := CheckoutConfig{
		ProcessingDelay: time.Duration(processingDelayMs) * time.Millisecond,
	}

	couponApplyLimitStr := os.Getenv("COUPON_APPLY_LIMIT")
	if couponApplyLimitStr == "" {
		couponApplyLimitStr = "10"
	}

	couponApplyLimit, err := strconv.Atoi(couponApplyLimitStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid COUPON_APPLY_LIMIT: %w", op, err)
	}

	couponsCfg := CouponsConfig{
		ApplyLimit:  couponApplyLimit,
		ApplyWindow: 1 * time.Minute,
	}

	return &Config{
		Server:   serverCfg,
		Redis:    redisCfg,
		Fees:     feesCfg,
		Checkout: checkoutCfg,
		Coupons:  couponsCfg,
	}, nil
}
