package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pageFixtures struct {
	echo       *echo.Echo
	catalogUC  *mockUsecase.MockCatalogUsecase
	settingsUC *mockUsecase.MockSettingsUsecase
	tokenSvc   *mockService.MockTokenService
}

func createTestPages(t *testing.T) pageFixtures {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	tokenSvc := mockService.NewMockTokenService(t)

	handler, err := NewHandler(HandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		CatalogUC:  catalogUC,
		SettingsUC: settingsUC,
	})
	require.NoError(t, err)

	authMW := apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
		TokenSvc: tokenSvc,
		AuthUC:   mockUsecase.NewMockAuthUsecase(t),
		Config:   cfg,
	})

	e := echo.New()
	e.Use(authMW.Resolve)
	handler.RegisterRoutes(e)

	return pageFixtures{echo: e, catalogUC: catalogUC, settingsUC: settingsUC, tokenSvc: tokenSvc}
}

func (f pageFixtures) get(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestHome_RendersCategoriesAndProducts(t *testing.T) {
	fx := createTestPages(t)
	fx.settingsUC.EXPECT().Public(mock.Anything).Return(&usecase.PublicSettings{}, nil)
	fx.catalogUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{
		{ID: uuid.New(), Name: "Dresses", Slug: "dresses", IsActive: true},
	}, nil)
	fx.catalogUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(q *usecase.ProductListQuery) bool {
			return q.Page == 1 && q.Limit == homeProductLimit
		})).
		Return(&usecase.ProductPage{Products: []*entity.Product{
			{ID: uuid.New(), Name: "Linen shirt", Price: decimal.RequireFromString("1234.5"), Stock: 3},
		}}, nil)

	rec := fx.get(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Dresses")
	assert.Contains(t, body, "Linen shirt")
	assert.Contains(t, body, "1 234.50 $")
	assert.Contains(t, body, `<html lang="en">`)
}

func TestHome_CatalogFailureRendersEmptyLists(t *testing.T) {
	fx := createTestPages(t)
	fx.settingsUC.EXPECT().Public(mock.Anything).Return(&usecase.PublicSettings{}, nil)
	fx.catalogUC.EXPECT().ListCategories(mock.Anything).Return(nil, errors.New("db down"))
	fx.catalogUC.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	rec := fx.get(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nothing here yet")
}

func TestHome_MaintenanceRedirectsVisitors(t *testing.T) {
	fx := createTestPages(t)
	fx.settingsUC.EXPECT().Public(mock.Anything).Return(&usecase.PublicSettings{MaintenanceMode: true}, nil)

	rec := fx.get(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://example.com/maintenance", rec.Header().Get(echo.HeaderLocation))
}

func TestHome_MaintenanceLetsStaffThrough(t *testing.T) {
	fx := createTestPages(t)
	fx.settingsUC.EXPECT().Public(mock.Anything).Return(&usecase.PublicSettings{MaintenanceMode: true}, nil)
	fx.tokenSvc.EXPECT().Parse("staff-token").Return(&service.SessionClaims{UserID: uuid.New(), Role: entity.RoleManager}, nil)
	fx.catalogUC.EXPECT().ListCategories(mock.Anything).Return(nil, nil)
	fx.catalogUC.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(&usecase.ProductPage{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: "staff-token"})
	rec := fx.get(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHome_MaintenanceRedirectHonoursForwardedHost(t *testing.T) {
	fx := createTestPages(t)
	fx.settingsUC.EXPECT().Public(mock.Anything).Return(&usecase.PublicSettings{MaintenanceMode: true}, nil)
	fx.tokenSvc.EXPECT().Parse("user-token").Return(&service.SessionClaims{UserID: uuid.New(), Role: entity.RoleUser}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer user-token")
	rec := fx.get(req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://example.com/maintenance", rec.Header().Get(echo.HeaderLocation))
}

func TestStaticPages_ResolveLocale(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		cookie     string
		acceptLang string
		wantLang   string
		wantText   string
		wantCookie bool
	}{
		{name: "default", path: "/terms", wantLang: "en", wantText: "Terms of service"},
		{name: "query wins and is remembered", path: "/privacy?lang=ru", cookie: "en", wantLang: "ru", wantText: "Политика конфиденциальности", wantCookie: true},
		{name: "cookie", path: "/terms", cookie: "ru", acceptLang: "en-US", wantLang: "ru", wantText: "Условия использования"},
		{name: "accept language", path: "/terms", acceptLang: "ru-RU,ru;q=0.9", wantLang: "ru", wantText: "Условия использования"},
		{name: "unsupported query falls through", path: "/terms?lang=xx", wantLang: "en", wantText: "Terms of service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPages(t)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: localeCookie, Value: tt.cookie})
			}
			if tt.acceptLang != "" {
				req.Header.Set("Accept-Language", tt.acceptLang)
			}

			rec := fx.get(req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `<html lang="`+tt.wantLang+`">`)
			assert.Contains(t, rec.Body.String(), tt.wantText)
			assert.Equal(t, tt.wantCookie, len(rec.Result().Cookies()) > 0)
		})
	}
}

func TestMaintenancePage_ShowsConfiguredMessage(t *testing.T) {
	fx := createTestPages(t)
	fx.settingsUC.EXPECT().Public(mock.Anything).Return(&usecase.PublicSettings{
		MaintenanceMode:    true,
		MaintenanceMessage: "Inventory count until 6pm",
	}, nil)

	rec := fx.get(httptest.NewRequest(http.MethodGet, "/maintenance", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Inventory count until 6pm")
}
