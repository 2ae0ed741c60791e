package model

// ================ Config ================
type ConversationConfig struct {
	// IdleTimeout is parsed with time.ParseDuration at bootstrap.
	IdleTimeout string `envconfig:"CONVERSATION_IDLE_TIMEOUT" default:"30m"`
}

type BotConfig struct {
	// Style selects the renderer personality: "corporate" or "street".
	Style string `envconfig:"BOT_STYLE" default:"corporate"`
	// VendorID scopes pause/auto-silence bookkeeping. Single-tenant
	// deployments keep the default.
	VendorID string `envconfig:"BOT_VENDOR_ID" default:"default"`
}

type PaymentConfig struct {
	BaseURL string `envconfig:"PAYMENT_BASE_URL" default:"https://pay.kofa.shop"`
}
