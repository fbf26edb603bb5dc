// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	deliverymiddleware "storefront/internal/delivery/middleware"
	"storefront/internal/delivery/web"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	AccountHandler      *handler.AccountHandler
	CatalogHandler      *handler.CatalogHandler
	OrderHandler        *handler.OrderHandler
	WalletHandler       *handler.WalletHandler
	NotificationHandler *handler.NotificationHandler
	TicketHandler       *handler.TicketHandler
	ShopHandler         *handler.ShopHandler
	UploadHandler       *handler.UploadHandler
	SettingsHandler     *handler.SettingsHandler
	UserAdminHandler    *handler.UserAdminHandler
	EventHandler        *handler.EventHandler
	WebHandler          *web.Handler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         *deliverymiddleware.RateLimiter
	Metrics             *deliverymiddleware.Metrics
	Availability        repository.Availability
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	auth         *handler.AuthHandler
	account      *handler.AccountHandler
	catalog      *handler.CatalogHandler
	order        *handler.OrderHandler
	wallet       *handler.WalletHandler
	notification *handler.NotificationHandler
	ticket       *handler.TicketHandler
	shop         *handler.ShopHandler
	upload       *handler.UploadHandler
	settings     *handler.SettingsHandler
	userAdmin    *handler.UserAdminHandler
	event        *handler.EventHandler
	web          *web.Handler
	authMW       *middleware.AuthMiddleware
	rateLimiter  *deliverymiddleware.RateLimiter
	metrics      *deliverymiddleware.Metrics
	availability repository.Availability
	config       *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:         params.AuthHandler,
		account:      params.AccountHandler,
		catalog:      params.CatalogHandler,
		order:        params.OrderHandler,
		wallet:       params.WalletHandler,
		notification: params.NotificationHandler,
		ticket:       params.TicketHandler,
		shop:         params.ShopHandler,
		upload:       params.UploadHandler,
		settings:     params.SettingsHandler,
		userAdmin:    params.UserAdminHandler,
		event:        params.EventHandler,
		web:          params.WebHandler,
		authMW:       params.AuthMiddleware,
		rateLimiter:  params.RateLimiter,
		metrics:      params.Metrics,
		availability: params.Availability,
		config:       params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Infrastructure
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	e.POST("/internal/events/push", r.event.HandlePush)

	// Server-rendered pages
	r.web.RegisterRoutes(e)

	r.registerAPIRoutes(e.Group("/api"))
}

func (r *router) registerAPIRoutes(api *echo.Group) {
	// Routes that work without a database
	api.GET("/settings/public", r.settings.Public)
	api.POST("/auth/logout", r.auth.Logout)

	db := api.Group("", middleware.RequireDatabase(r.availability))

	// Public
	db.POST("/auth/register", r.auth.Register, r.rateLimiter.Handle)
	db.POST("/auth/login", r.auth.Login, r.rateLimiter.Handle)
	db.GET("/auth/me", r.auth.Me)
	db.GET("/categories", r.catalog.ListCategories)
	db.GET("/products", r.catalog.ListProducts)
	db.GET("/products/search", r.catalog.SearchProducts)
	db.GET("/products/:id", r.catalog.GetProduct)
	db.GET("/shops/:slug", r.catalog.GetShop)

	// Authenticated self: every usecase call is scoped to the session user
	self := db.Group("", r.authMW.RequireSession)
	{
		self.GET("/profile", r.account.GetProfile)
		self.PATCH("/profile", r.account.UpdateProfile)

		self.GET("/addresses", r.account.ListAddresses)
		self.POST("/addresses", r.account.CreateAddress)
		self.PATCH("/addresses/:id", r.account.UpdateAddress)
		self.DELETE("/addresses/:id", r.account.DeleteAddress)

		self.GET("/favorites", r.catalog.ListFavorites)
		self.POST("/favorites", r.catalog.AddFavorite)
		self.DELETE("/favorites/:productId", r.catalog.RemoveFavorite)

		self.POST("/orders", r.order.Checkout)
		self.GET("/orders", r.order.ListMine)
		self.GET("/orders/:id", r.order.GetMine)
		self.POST("/orders/:id/cancel", r.order.Cancel)

		self.GET("/wallet", r.wallet.Overview)
		self.GET("/wallet/addresses/:currency/qr", r.wallet.DepositQR)
		self.GET("/deposits", r.wallet.ListMyDeposits)
		self.POST("/deposits", r.wallet.CreateDeposit)
		self.GET("/withdrawals", r.wallet.ListMyWithdrawals)
		self.POST("/withdrawals", r.wallet.CreateWithdrawal)

		self.GET("/notifications", r.notification.List)
		self.PATCH("/notifications/:id/read", r.notification.MarkRead)
		self.POST("/notifications/read-all", r.notification.MarkAllRead)

		self.GET("/tickets", r.ticket.ListMine)
		self.POST("/tickets", r.ticket.Create)
		self.GET("/tickets/:id", r.ticket.GetMine)
		self.POST("/tickets/:id/messages", r.ticket.Reply)

		self.GET("/shop/verification", r.shop.GetVerification)
		self.POST("/shop/verification", r.shop.SubmitVerification)

		self.POST("/upload", r.upload.Upload, r.rateLimiter.Handle)
	}

	// Seller: the usecase checks canSell and an active shop on every call
	seller := self.Group("/seller")
	{
		seller.GET("/shop", r.shop.SellerGetShop)
		seller.PATCH("/shop", r.shop.SellerUpdateShop)
		seller.GET("/products", r.shop.SellerListProducts)
		seller.POST("/products", r.shop.SellerCreateProduct)
		seller.PATCH("/products/:id", r.shop.SellerUpdateProduct)
		seller.DELETE("/products/:id", r.shop.SellerDeleteProduct)
		seller.GET("/orders", r.shop.SellerListOrders)
		seller.PATCH("/orders/:id/status", r.shop.SellerUpdateOrderStatus)
	}

	// Staff: ADMIN or MANAGER
	staff := self.Group("/admin", r.authMW.RequireRole(entity.StaffRoles()...))
	{
		staff.GET("/categories", r.catalog.AdminListCategories)
		staff.POST("/categories", r.catalog.AdminCreateCategory)
		staff.PATCH("/categories/:id", r.catalog.AdminUpdateCategory)
		staff.DELETE("/categories/:id", r.catalog.AdminDeleteCategory)

		staff.GET("/products", r.catalog.AdminListProducts)
		staff.POST("/products", r.catalog.AdminCreateProduct)
		staff.PATCH("/products/:id", r.catalog.AdminUpdateProduct)
		staff.DELETE("/products/:id", r.catalog.AdminDeleteProduct)

		staff.GET("/orders", r.order.AdminList)
		staff.PATCH("/orders/:id/status", r.order.AdminUpdateStatus)

		staff.GET("/deposits", r.wallet.AdminListDeposits)
		staff.PATCH("/deposits/:id", r.wallet.AdminReviewDeposit)
		staff.GET("/withdrawals", r.wallet.AdminListWithdrawals)
		staff.PATCH("/withdrawals/:id", r.wallet.AdminReviewWithdrawal)
		staff.GET("/crypto-addresses", r.wallet.AdminListCryptoAddresses)

		staff.POST("/notifications", r.notification.AdminSend)

		staff.GET("/tickets", r.ticket.AdminList)
		staff.GET("/tickets/:id", r.ticket.AdminGet)
		staff.PATCH("/tickets/:id", r.ticket.AdminUpdateStatus)
		staff.POST("/tickets/:id/messages", r.ticket.AdminReply)

		staff.GET("/verifications", r.shop.AdminListVerifications)
		staff.PATCH("/verifications/:id", r.shop.AdminReviewVerification)

		staff.GET("/settings", r.settings.AdminGet)
		staff.GET("/users", r.userAdmin.List)
	}

	// Admin only: crypto addresses, settings writes and account access
	admin := staff.Group("", r.authMW.RequireRole(entity.RoleAdmin))
	{
		admin.PUT("/crypto-addresses/:currency", r.wallet.AdminSetCryptoAddress)
		admin.DELETE("/crypto-addresses/:currency", r.wallet.AdminDeleteCryptoAddress)
		admin.PUT("/settings", r.settings.AdminUpdate)
		admin.PATCH("/users/:id", r.userAdmin.UpdateAccess)
		admin.POST("/users/:id/balance", r.userAdmin.AdjustBalance)
	}
}
