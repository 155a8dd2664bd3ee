package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/arifrizal16/sahasrara/internal/http/handlers"
	"github.com/arifrizal16/sahasrara/internal/http/middleware"
)

// BuildRouter wires the route table. The session gate runs on every request;
// it decides per-path whether authentication is required.
func BuildRouter(ah *handlers.AuthHandlers, th *handlers.TransactionHandlers, rh *handlers.ReportHandlers, gate *middleware.SessionGate, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(extra...)
	r.Use(gate.Handle())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/login", ah.Login)
	auth.GET("/logout", ah.Logout)
	auth.GET("/check", ah.Check)
	auth.POST("/change-pin", ah.ChangePIN)
	auth.GET("/accounts", ah.Accounts)

	tx := r.Group("/api/transactions")
	tx.GET("", th.List)
	tx.POST("", th.Create)
	tx.PUT("", th.Update)
	tx.DELETE("", th.Delete)

	reports := r.Group("/api/reports")
	reports.GET("/revenue", rh.Revenue)
	reports.GET("/export", rh.Export)

	return r
}
