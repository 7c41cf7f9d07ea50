package bootstrap

import (
	"log/slog"

	"gin-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
	fx.Invoke(logConfigSummary),
)

// ConfigSections splits the loaded Config so constructors depend only on the section they read.
// Test apps that supply their own Config reuse it.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.DBConfig { return cfg.DB },
	func(cfg config.Config) config.JWTConfig { return cfg.JWT },
	func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	func(cfg config.Config) config.ShopifyConfig { return cfg.Shopify },
	func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
	func(cfg config.Config) config.AppConfig { return cfg.App },
)

// logConfigSummary never logs secrets; only whether they are set.
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"shopify_enabled", cfg.Shopify.Enabled(),
		"stripe_key_set", cfg.Stripe.SecretKey != "",
		"app_base_url", cfg.App.BaseURL,
		"currency", cfg.App.Currency)
}
