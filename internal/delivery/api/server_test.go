package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/middleware"
	"storefront/internal/delivery/web"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/storage"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// serverFixtures holds the routed Echo instance and the mocks behind it.
type serverFixtures struct {
	echo         *echo.Echo
	availability *mockRepo.MockAvailability
	tokenSvc     *mockService.MockTokenService
	authUC       *mockUsecase.MockAuthUsecase
	catalogUC    *mockUsecase.MockCatalogUsecase
	settingsUC   *mockUsecase.MockSettingsUsecase
	walletUC     *mockUsecase.MockWalletUsecase
	userAdminUC  *mockUsecase.MockUserAdminUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := serverFixtures{
		availability: mockRepo.NewMockAvailability(t),
		tokenSvc:     mockService.NewMockTokenService(t),
		authUC:       mockUsecase.NewMockAuthUsecase(t),
		catalogUC:    mockUsecase.NewMockCatalogUsecase(t),
		settingsUC:   mockUsecase.NewMockSettingsUsecase(t),
		walletUC:     mockUsecase.NewMockWalletUsecase(t),
		userAdminUC:  mockUsecase.NewMockUserAdminUsecase(t),
	}

	authMW := apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
		TokenSvc: fx.tokenSvc,
		AuthUC:   fx.authUC,
		Config:   cfg,
	})
	pages, err := web.NewHandler(web.HandlerParams{
		Config:     cfg,
		Logger:     logger,
		CatalogUC:  fx.catalogUC,
		SettingsUC: fx.settingsUC,
	})
	require.NoError(t, err)

	params := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC, AuthMiddleware: authMW, Logger: logger}),
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
			ProfileUC: mockUsecase.NewMockProfileUsecase(t),
			AddressUC: mockUsecase.NewMockAddressUsecase(t),
		}),
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC:      fx.catalogUC,
			CatalogAdminUC: mockUsecase.NewMockCatalogAdminUsecase(t),
			FavoriteUC:     mockUsecase.NewMockFavoriteUsecase(t),
		}),
		OrderHandler:        handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t)}),
		WalletHandler:       handler.NewWalletHandler(handler.WalletHandlerParams{WalletUC: fx.walletUC}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: mockUsecase.NewMockNotificationUsecase(t)}),
		TicketHandler:       handler.NewTicketHandler(handler.TicketHandlerParams{TicketUC: mockUsecase.NewMockTicketUsecase(t)}),
		ShopHandler: handler.NewShopHandler(handler.ShopHandlerParams{
			VerificationUC: mockUsecase.NewMockVerificationUsecase(t),
			SellerUC:       mockUsecase.NewMockSellerUsecase(t),
		}),
		UploadHandler: handler.NewUploadHandler(handler.UploadHandlerParams{
			UploadUC: impl.NewUploadService(impl.UploadServiceParams{
				Storage: storage.NewBucketStorage(memblob.OpenBucket(nil), "https://cdn.test"),
				Config:  cfg,
				Logger:  logger,
			}),
			Logger: logger,
		}),
		SettingsHandler:  handler.NewSettingsHandler(handler.SettingsHandlerParams{SettingsUC: fx.settingsUC}),
		UserAdminHandler: handler.NewUserAdminHandler(handler.UserAdminHandlerParams{UserAdminUC: fx.userAdminUC}),
		EventHandler:     handler.NewEventHandler(handler.EventHandlerParams{Config: cfg, Logger: logger, SettingsUC: fx.settingsUC}),
		WebHandler:       pages,
		AuthMiddleware:   authMW,
		RateLimiter:      middleware.NewRateLimiter(cfg),
		Metrics:          middleware.NewMetrics(),
		Availability:     fx.availability,
		Config:           cfg,
	}
	fx.echo = NewEcho(cfg, logger, params)

	return fx
}

// signIn makes token resolve to an account with role.
func (f serverFixtures) signIn(token string, role entity.Role) uuid.UUID {
	userID := uuid.New()
	f.tokenSvc.EXPECT().Parse(token).Return(&service.SessionClaims{UserID: userID, Role: role}, nil)
	f.authUC.EXPECT().CurrentUser(mock.Anything, userID).Return(&entity.User{ID: userID, Role: role}, nil)

	return userID
}

func (f serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func newJSONRequest(method, path, body, token string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: token})
	}

	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.ErrorResponse {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_AuthenticatedRoutesRejectAnonymousCallers(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)

	rec := fx.do(newJSONRequest(http.MethodGet, "/api/wallet", "", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "UNAUTHENTICATED", body.Code)
	assert.Nil(t, body.Details)
}

func TestServer_StaffRoutesRejectCustomers(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)
	fx.signIn("customer", entity.RoleUser)

	rec := fx.do(newJSONRequest(http.MethodGet, "/api/admin/users", "", "customer"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)
}

func TestServer_ManagerCannotUseAdminOnlyRoutes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPut, "/api/admin/settings", `{"maintenanceMode":true}`},
		{http.MethodPut, "/api/admin/crypto-addresses/btc", `{"address":"bc1qxyz"}`},
		{http.MethodDelete, "/api/admin/crypto-addresses/BTC", ""},
		{http.MethodPatch, "/api/admin/users/" + uuid.NewString(), `{"role":"ADMIN"}`},
		{http.MethodPost, "/api/admin/users/" + uuid.NewString() + "/balance", `{"amount":"10"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			fx := createTestServer(t)
			fx.availability.EXPECT().Configured().Return(true)
			fx.signIn("manager", entity.RoleManager)

			rec := fx.do(newJSONRequest(tt.method, tt.path, tt.body, "manager"))

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)
		})
	}
}

func TestServer_ManagerReadsSettings(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)
	fx.signIn("manager", entity.RoleManager)
	fx.settingsUC.EXPECT().Get(mock.Anything).Return(&entity.SiteSettings{SupportEmail: "help@shop.test"}, nil)

	rec := fx.do(newJSONRequest(http.MethodGet, "/api/admin/settings", "", "manager"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "help@shop.test")
}

func TestServer_AdminUpdatesSettings(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)
	adminID := fx.signIn("admin", entity.RoleAdmin)
	fx.settingsUC.EXPECT().
		Update(mock.Anything, adminID, mock.MatchedBy(func(in *usecase.UpdateSettingsInput) bool {
			return in.MaintenanceMode != nil && *in.MaintenanceMode
		})).
		Return(&entity.SiteSettings{MaintenanceMode: true}, nil)

	rec := fx.do(newJSONRequest(http.MethodPut, "/api/admin/settings", `{"maintenanceMode":true}`, "admin"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_DatabaseNotConfigured(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(false)
	fx.settingsUC.EXPECT().Public(mock.Anything).Return(&usecase.PublicSettings{}, nil)

	rec := fx.do(newJSONRequest(http.MethodGet, "/api/categories", "", ""))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "DATABASE_NOT_CONFIGURED", decodeError(t, rec).Code)

	rec = fx.do(newJSONRequest(http.MethodGet, "/api/settings/public", "", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"maintenanceMode":false}`, rec.Body.String())
}

func TestServer_RegisterValidationFailure(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)

	rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"not-an-email","password":"short"}`, ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.Contains(t, rec.Body.String(), `"field":"email"`)
	assert.Contains(t, rec.Body.String(), `"field":"password"`)
}

func TestServer_MalformedBody(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)

	rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/login", `{"email":`, ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestServer_LoginSetsSessionCookie(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)
	user := &entity.User{ID: uuid.New(), Email: "ann@shop.test", Role: entity.RoleUser}
	fx.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ann@shop.test", Password: "correct horse"}).
		Return(&usecase.SessionOutput{User: user, Token: "signed", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/login",
		`{"email":"ann@shop.test","password":"correct horse"}`, ""))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.AuthCookieName, cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotContains(t, rec.Body.String(), "signed")
}

func TestServer_LoginRejectsBadCredentials(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)
	fx.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/login", `{"email":"ann@shop.test","password":"nope"}`, ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
}

func TestServer_MeForAnonymousCaller(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)

	rec := fx.do(newJSONRequest(http.MethodGet, "/api/auth/me", "", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":null}`, rec.Body.String())
}

func TestServer_ProductNotFound(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)
	productID := uuid.New()
	fx.catalogUC.EXPECT().GetProduct(mock.Anything, productID).Return(nil, errors.WithStack(domainerrors.ErrProductNotFound))

	rec := fx.do(newJSONRequest(http.MethodGet, "/api/products/"+productID.String(), "", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeError(t, rec).Code)
}

func TestServer_InvalidPathID(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)

	rec := fx.do(newJSONRequest(http.MethodGet, "/api/products/not-a-uuid", "", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestServer_UnexpectedErrorsAreOpaque(t *testing.T) {
	fx := createTestServer(t)
	fx.availability.EXPECT().Configured().Return(true)
	userID := fx.signIn("customer", entity.RoleUser)
	fx.walletUC.EXPECT().Overview(mock.Anything, userID).Return(nil, errors.New("connection reset by peer"))

	rec := fx.do(newJSONRequest(http.MethodGet, "/api/wallet", "", "customer"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestServer_HealthAndMetrics(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/health"`)
}

func newPushRequest(t *testing.T, event *service.CacheEvent) *http.Request {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(raw),
			"attributes": map[string]string{"request_id": "req-42"},
			"messageId":  "m-1",
		},
		"subscription": "projects/test/subscriptions/settings",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/internal/events/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestServer_PushEventApplied(t *testing.T) {
	fx := createTestServer(t)
	fx.settingsUC.EXPECT().
		HandleEvent(mock.Anything, mock.MatchedBy(func(e *service.CacheEvent) bool {
			return e.Type == constants.EventSettingsUpdated
		})).
		Return(nil)

	rec := fx.do(newPushRequest(t, &service.CacheEvent{Type: constants.EventSettingsUpdated}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_PushEventRetriedOnFailure(t *testing.T) {
	fx := createTestServer(t)
	fx.settingsUC.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(errors.New("cache unavailable"))

	rec := fx.do(newPushRequest(t, &service.CacheEvent{Type: constants.EventSettingsUpdated}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_PushEventMalformed(t *testing.T) {
	fx := createTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/internal/events/push",
		strings.NewReader(`{"message":{"data":"%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := fx.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// newUploadRequest builds a multipart POST /api/upload with one "file" part of contentType.
func newUploadRequest(t *testing.T, token, fileName, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set(echo.HeaderContentType, contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("folder", "products"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: token})

	return req
}

func TestUpload_ThroughServer(t *testing.T) {
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	tests := []struct {
		name        string
		fileName    string
		contentType string
		size        int
		wantStatus  int
		wantCode    string
	}{
		{name: "plain text is not an image", fileName: "notes.txt", contentType: "text/plain", size: 64, wantStatus: http.StatusBadRequest, wantCode: "INVALID_FILE_TYPE"},
		{name: "six megabyte image", fileName: "huge.png", contentType: "image/png", size: 6 << 20, wantStatus: http.StatusBadRequest, wantCode: "FILE_TOO_LARGE"},
		{name: "image at the limit", fileName: "dress.png", contentType: "image/png", size: 5 << 20, wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t)
			fx.availability.EXPECT().Configured().Return(true)
			fx.signIn("buyer-token", entity.RoleUser)

			content := make([]byte, tt.size)
			copy(content, pngHeader)

			rec := fx.do(newUploadRequest(t, "buyer-token", tt.fileName, tt.contentType, content))

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)

				return
			}

			var out usecase.UploadOutput
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.True(t, strings.HasPrefix(out.URL, "https://cdn.test/products/"), out.URL)
			assert.True(t, strings.HasSuffix(out.Key, "-dress.png"), out.Key)
		})
	}
}
