package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the station's HTTP surface for the desk UI.
func SetupRouter(
	gc *controllers.GuestController,
	cc *controllers.CheckoutController,
	rc *controllers.RoomController,
	dc *controllers.DashboardController,
	perms middleware.PermissionSet,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		guests := api.Group("/guests")
		{
			guests.GET("", middleware.RequirePermission(perms, middleware.PermGuestsView), gc.GetGuests)
			guests.POST("", middleware.RequirePermission(perms, middleware.PermGuestsEdit), gc.CreateGuest)

			// must come before /:id/... so "export" doesn't hit the id routes
			guests.GET("/export", middleware.RequirePermission(perms, middleware.PermGuestsExport), gc.ExportGuests)

			checkout := guests.Group("/:id/checkout", middleware.RequirePermission(perms, middleware.PermGuestsEdit))
			{
				checkout.POST("", cc.Begin)
				checkout.GET("", cc.GetDraft)
				checkout.PUT("", cc.UpdateDraft)
				checkout.POST("/submit", cc.Submit)
				checkout.DELETE("", cc.Cancel)
			}
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", middleware.RequirePermission(perms, middleware.PermRoomsView), rc.GetRooms)
		}

		api.GET("/dashboard", middleware.RequirePermission(perms, middleware.PermDashboard), dc.GetDashboard)
		api.GET("/status", dc.GetStatus)
		api.POST("/refresh", middleware.RequirePermission(perms, middleware.PermGuestsView), dc.Refresh)
	}

	return r
}
