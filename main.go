package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/juggernaut7777/kofa/internal/api"
	"github.com/juggernaut7777/kofa/internal/bot/conversation"
	"github.com/juggernaut7777/kofa/internal/bot/dialogue"
	"github.com/juggernaut7777/kofa/internal/bot/model"
	"github.com/juggernaut7777/kofa/internal/bot/search"
	"github.com/juggernaut7777/kofa/internal/core"
	"github.com/juggernaut7777/kofa/internal/inventory"
	"github.com/juggernaut7777/kofa/internal/payment"
	"github.com/juggernaut7777/kofa/internal/respond"
	"github.com/juggernaut7777/kofa/internal/vendor"
	logx "github.com/juggernaut7777/kofa/pkg/logger"
	pkgredis "github.com/juggernaut7777/kofa/pkg/redis"
)

// AppConfig defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":8080"`

	// Infrastructure
	Redis pkgredis.Config

	// Bot configs
	Conversation model.ConversationConfig
	Bot          model.BotConfig
	Payment      model.PaymentConfig
}

func main() {
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		logx.Warn().Err(err).Msg("could not load .env file")
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	env := core.ParseEnvironment(envCfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})

	idleTimeout, err := time.ParseDuration(envCfg.Conversation.IdleTimeout)
	if err != nil {
		logx.Fatal().Err(err).Str("value", envCfg.Conversation.IdleTimeout).Msg("invalid CONVERSATION_IDLE_TIMEOUT")
	}

	var store conversation.Store
	if envCfg.Redis.Enabled() {
		rdb, err := envCfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise Redis client")
		}
		defer rdb.Close()
		store = conversation.NewRedisStore(rdb, idleTimeout)
		logx.Info().Msg("conversation state backed by Redis")
	} else {
		store = conversation.NewMemoryStore(idleTimeout)
		logx.Info().Msg("conversation state kept in memory")
	}

	inv := inventory.NewMemoryInventory(inventory.DefaultCatalog())
	payments := payment.NewMockGenerator(envCfg.Payment.BaseURL)
	vendors := vendor.NewRegistry(vendor.DefaultSilenceDuration)
	engine := dialogue.NewEngine(store, search.NewResolver(nil), payments)
	renderer := respond.NewRenderer(respond.ParseStyle(envCfg.Bot.Style))

	handler := api.NewHandler(engine, renderer, inv, payments, vendors, envCfg.Bot.VendorID)
	router := api.NewRouter(handler)

	logx.Info().
		Str("addr", envCfg.ListenAddr).
		Str("env", env.String()).
		Str("style", string(renderer.Style())).
		Msg("starting server")

	if err := http.ListenAndServe(envCfg.ListenAddr, router); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}
