// Package web renders the storefront's server-side pages.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"golang.org/x/text/message/catalog"
)

const (
	localeCookie       = "locale"
	localeCookieMaxAge = 365 * 24 * 60 * 60
	homeProductLimit   = 12
	maintenancePath    = "/maintenance"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "terms", "privacy", "maintenance"}

// HandlerParams holds dependencies for the page handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	CatalogUC  usecase.CatalogUsecase
	SettingsUC usecase.SettingsUsecase
}

// Handler serves the HTML pages.
type Handler struct {
	cfg        *config.Config
	logger     *slog.Logger
	catalogUC  usecase.CatalogUsecase
	settingsUC usecase.SettingsUsecase
	locales    *util.LocaleResolver
	messages   catalog.Catalog
	pages      map[string]*template.Template
	now        func() time.Time
}

// pageData is what every template receives.
type pageData struct {
	Locale     string
	Locales    []string
	Title      string
	Year       int
	T          func(string) string
	Categories []*entity.Category
	Products   []*entity.Product
	Message    string
}

// NewHandler parses the embedded templates once.
func NewHandler(params HandlerParams) (*Handler, error) {
	funcs := template.FuncMap{"price": formatPrice}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s template", name)
		}
		pages[name] = tmpl
	}

	return &Handler{
		cfg:        params.Config,
		logger:     params.Logger,
		catalogUC:  params.CatalogUC,
		settingsUC: params.SettingsUC,
		locales:    util.NewLocaleResolver(params.Config.Locale.Supported, params.Config.Locale.Default),
		messages:   newMessageCatalog(params.Config.Locale.Default),
		pages:      pages,
		now:        time.Now,
	}, nil
}

// RegisterRoutes mounts the pages on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home, h.maintenanceGate)
	e.GET("/terms", h.Terms)
	e.GET("/privacy", h.Privacy)
	e.GET(maintenancePath, h.Maintenance)
}

// Home shows the category sidebar and the latest published products.
// Catalog failures render empty lists instead of an error page.
func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	data := h.newPageData(c, "home.title")

	categories, err := h.catalogUC.ListCategories(ctx)
	if err != nil {
		logger.Warn("Failed to load categories for home page", slog.Any("error", err))
	} else {
		data.Categories = categories
	}

	page, err := h.catalogUC.ListProducts(ctx, &usecase.ProductListQuery{
		PageQuery: usecase.PageQuery{Page: 1, Limit: homeProductLimit},
		Category:  c.QueryParam("category"),
	})
	if err != nil {
		logger.Warn("Failed to load products for home page", slog.Any("error", err))
	} else {
		data.Products = page.Products
	}

	return h.render(c, http.StatusOK, "home", data)
}

func (h *Handler) Terms(c echo.Context) error {
	return h.render(c, http.StatusOK, "terms", h.newPageData(c, "terms.title"))
}

func (h *Handler) Privacy(c echo.Context) error {
	return h.render(c, http.StatusOK, "privacy", h.newPageData(c, "privacy.title"))
}

func (h *Handler) Maintenance(c echo.Context) error {
	data := h.newPageData(c, "maintenance.title")
	if settings, err := h.settingsUC.Public(c.Request().Context()); err == nil && settings.MaintenanceMode {
		data.Message = settings.MaintenanceMessage
	}

	return h.render(c, http.StatusOK, "maintenance", data)
}

// maintenanceGate redirects non-staff visitors while maintenance mode is on.
// A failed settings read leaves the store open.
func (h *Handler) maintenanceGate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings, err := h.settingsUC.Public(c.Request().Context())
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Failed to read maintenance flag", slog.Any("error", err))

			return next(c)
		}
		if !settings.MaintenanceMode {
			return next(c)
		}
		if claims, ok := apimiddleware.GetClaims(c); ok && claims.Role.IsStaff() {
			return next(c)
		}

		base := util.RedirectBase(c.Request(), h.cfg.HTTP.TrustProxyHeaders, h.cfg.HTTP.AppURL)

		return c.Redirect(http.StatusFound, base+maintenancePath)
	}
}

func (h *Handler) newPageData(c echo.Context, titleKey string) *pageData {
	locale := h.resolveLocale(c)
	t := translator(h.messages, locale)

	return &pageData{
		Locale:  locale,
		Locales: h.cfg.Locale.Supported,
		Title:   t(titleKey),
		Year:    h.now().Year(),
		T:       t,
	}
}

// resolveLocale picks the page language and remembers an explicit choice in a cookie.
func (h *Handler) resolveLocale(c echo.Context) string {
	query := c.QueryParam("lang")
	var cookieValue string
	if cookie, err := c.Cookie(localeCookie); err == nil {
		cookieValue = cookie.Value
	}

	locale := h.locales.Resolve(query, cookieValue, c.Request().Header.Get("Accept-Language"))
	if query != "" && h.locales.IsSupported(query) && locale != cookieValue {
		c.SetCookie(&http.Cookie{
			Name:     localeCookie,
			Value:    locale,
			Path:     "/",
			MaxAge:   localeCookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return locale
}

func (h *Handler) render(c echo.Context, status int, name string, data *pageData) error {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		return errors.Wrapf(err, "failed to render %s page", name)
	}

	return c.HTMLBlob(status, buf.Bytes())
}

func formatPrice(v any) string {
	switch amount := v.(type) {
	case decimal.Decimal:
		return util.FormatPrice(amount)
	case *decimal.Decimal:
		if amount == nil {
			return ""
		}

		return util.FormatPrice(*amount)
	default:
		return ""
	}
}
