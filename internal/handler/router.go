package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campus-barter/internal/handler/api"
	"campus-barter/internal/handler/middleware"
	"campus-barter/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	User      *api.UserHandler
	Item      *api.ItemHandler
	Intent    *api.IntentHandler
	Match     *api.MatchHandler
	Credit    *api.CreditHandler
	LostFound *api.LostFoundHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.GetUser},
				{Method: http.MethodGet, Path: "/:id/stats", Handler: h.User.GetUserStats},
			})
		}

		items := apiGroup.Group("/items")
		items.Use(authMiddleware.RequireAuth())
		{
			addRoutes(items, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Item.CreateItem},
				{Method: http.MethodGet, Path: "", Handler: h.Item.ListItems},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Item.ListMyItems},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Item.GetItem},
			})
		}

		barter := apiGroup.Group("/barter")
		barter.Use(authMiddleware.RequireAuth())
		{
			addRoutes(barter, []route{
				{Method: http.MethodPost, Path: "/intents", Handler: h.Intent.SubmitIntent},
				{Method: http.MethodGet, Path: "/intents", Handler: h.Intent.ListMyIntents},
			})
		}

		matches := apiGroup.Group("/matches")
		matches.Use(authMiddleware.RequireAuth())
		{
			addRoutes(matches, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Match.ListMyMatches},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Match.GetMatch},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Match.AcceptMatch},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Match.RejectMatch},
			})
		}

		credits := apiGroup.Group("/eco-credits")
		credits.Use(authMiddleware.RequireAuth())
		{
			addRoutes(credits, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Credit.GetMyCredits},
				{Method: http.MethodGet, Path: "/leaderboard", Handler: h.Credit.Leaderboard},
			})
		}

		lostFound := apiGroup.Group("/lost-found")
		lostFound.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lostFound, []route{
				{Method: http.MethodPost, Path: "", Handler: h.LostFound.CreatePosting},
				{Method: http.MethodGet, Path: "", Handler: h.LostFound.ListPostings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.LostFound.GetPosting},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
