package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/api/middleware"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set("session", &middleware.Session{UserID: userID})
	}

	return c, rec
}

func TestWalletHandler_DepositQR(t *testing.T) {
	walletUC := mockUsecase.NewMockWalletUsecase(t)
	h := NewWalletHandler(WalletHandlerParams{WalletUC: walletUC})

	png := []byte{0x89, 'P', 'N', 'G'}
	walletUC.EXPECT().DepositQR(mock.Anything, "USDT").Return(png, nil).Once()

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/api/wallet/addresses/usdt/qr", nil), uuid.New())
	c.SetParamNames("currency")
	c.SetParamValues("usdt")

	require.NoError(t, h.DepositQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestWalletHandler_DepositQRUnknownCurrency(t *testing.T) {
	walletUC := mockUsecase.NewMockWalletUsecase(t)
	h := NewWalletHandler(WalletHandlerParams{WalletUC: walletUC})

	walletUC.EXPECT().DepositQR(mock.Anything, "DOGE").Return(nil, domainerrors.ErrCryptoAddressNotFound).Once()

	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil), uuid.New())
	c.SetParamNames("currency")
	c.SetParamValues("doge")

	require.NoError(t, h.DepositQR(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "CRYPTO_ADDRESS_NOT_FOUND", body.Code)
}

func TestWalletHandler_OverviewWithoutSession(t *testing.T) {
	h := NewWalletHandler(WalletHandlerParams{WalletUC: mockUsecase.NewMockWalletUsecase(t)})

	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil), uuid.Nil)

	assert.ErrorIs(t, h.Overview(c), domainerrors.ErrUnauthenticated)
}

func multipartUpload(t *testing.T, folder, name string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("folder", folder))
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestUploadHandler_Upload(t *testing.T) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	userID := uuid.New()

	uploadUC.EXPECT().
		Upload(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UploadInput) bool {
			body, err := io.ReadAll(in.Body)

			return err == nil && in.Folder == "products" && in.FileName == "dress.png" &&
				in.Size == 5 && string(body) == "image"
		})).
		Return(&usecase.UploadOutput{URL: "/uploads/products/a.png", Key: "products/a.png"}, nil).
		Once()

	c, rec := newContext(multipartUpload(t, "products", "dress.png", []byte("image")), userID)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"url":"/uploads/products/a.png","key":"products/a.png"}`, rec.Body.String())
}

func TestUploadHandler_TooLarge(t *testing.T) {
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: slog.Default()})
	userID := uuid.New()

	uploadUC.EXPECT().Upload(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrFileTooLarge.WithDetails("maximum size is 5.0 MiB")).
		Once()

	c, rec := newContext(multipartUpload(t, "", "big.png", []byte("x")), userID)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "FILE_TOO_LARGE")
}
