package components

import (
	"campus-barter/internal/handler"
	"campus-barter/internal/handler/api"
	"campus-barter/internal/handler/middleware"
	"campus-barter/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewCookieConfig,
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewIntentHandler,
		api.NewMatchHandler,
		api.NewCreditHandler,
		api.NewLostFoundHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCookieConfig(cfg config.Config) config.CookieConfig {
	return cfg.Cookie
}

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	item *api.ItemHandler,
	intent *api.IntentHandler,
	match *api.MatchHandler,
	credit *api.CreditHandler,
	lostFound *api.LostFoundHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		User:      user,
		Item:      item,
		Intent:    intent,
		Match:     match,
		Credit:    credit,
		LostFound: lostFound,
	}
}
