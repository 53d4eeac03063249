package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/pawmart/pawmart/internal/server/http/handlers"
	"github.com/pawmart/pawmart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. The webhook
// route stays outside the gzip/decompress chain so the raw body reaching
// signature verification is byte-identical to what the gateway sent.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	serviceHandler := handlers.NewServiceHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade, facade)
	orderHandler := handlers.NewOrderHandler(facade)
	appointmentHandler := handlers.NewAppointmentHandler(facade)
	commentHandler := handlers.NewCommentHandler(facade)
	contactHandler := handlers.NewContactHandler(facade)

	api := engine.Group("/api")
	api.POST("/webhook", paymentHandler.Webhook)

	compressed := api.Group("")
	compressed.Use(middleware.DecompressRequest())
	compressed.Use(gzip.Gzip(gzip.DefaultCompression))

	user := compressed.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/me", authHandler.Me)

	public := compressed.Group("")
	public.GET("/product", productHandler.List)
	public.GET("/product/:id", productHandler.Get)
	public.GET("/service", serviceHandler.List)
	public.GET("/service/:id", serviceHandler.Get)
	public.GET("/comment/product/:id", middleware.AuthOptional(facade), commentHandler.ListByProduct)
	public.POST("/contact", contactHandler.Create)

	authed := compressed.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/payment/create-checkout-session", paymentHandler.CreateCheckoutSession)
	authed.GET("/order", orderHandler.List)
	authed.GET("/order/:id", orderHandler.Get)
	authed.POST("/appointment", appointmentHandler.Book)
	authed.GET("/appointment", appointmentHandler.List)
	authed.DELETE("/appointment/:id", appointmentHandler.Cancel)
	authed.POST("/comment", commentHandler.Create)

	admin := compressed.Group("")
	admin.Use(middleware.AuthRequired(facade))
	admin.Use(middleware.AdminRequired())
	admin.POST("/product", productHandler.Create)
	admin.PUT("/product/:id", productHandler.Update)
	admin.DELETE("/product/:id", productHandler.Delete)
	admin.POST("/service", serviceHandler.Create)
	admin.PUT("/service/:id", serviceHandler.Update)
	admin.DELETE("/service/:id", serviceHandler.Delete)
	admin.PATCH("/order/:id/status", orderHandler.UpdateStatus)
	admin.DELETE("/order/:id", orderHandler.Delete)
	admin.PATCH("/appointment/:id/status", appointmentHandler.UpdateStatus)
	admin.PATCH("/comment/:id/status", commentHandler.UpdateStatus)
	admin.DELETE("/comment/:id", commentHandler.Delete)
	admin.GET("/contact", contactHandler.List)
	admin.DELETE("/contact/:id", contactHandler.Delete)

	return engine
}
