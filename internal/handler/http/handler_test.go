package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/service"
	"github.com/buckylist/bucky/models"
)

// ---- Fake services ----

type fakeAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	tokenDuration time.Duration
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return models.User{}, nil
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.createTokenFn != nil {
		return f.createTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

func (f *fakeAuthService) TokenDuration() time.Duration {
	if f.tokenDuration != 0 {
		return f.tokenDuration
	}
	return time.Hour
}

type fakeBucketListService struct {
	createFn func(ctx context.Context, ownerID int64, req models.BucketListCreateRequest) (models.BucketList, error)
	getFn    func(ctx context.Context, bucketlistID int64) (models.BucketList, error)
	listFn   func(ctx context.Context, userID int64, titleQuery string, limit int) ([]models.BucketList, error)
	updateFn func(ctx context.Context, bucketlistID, ownerID int64, patch models.BucketListPatch) (models.BucketList, error)
	deleteFn func(ctx context.Context, bucketlistID, ownerID int64) error
}

func (f *fakeBucketListService) Create(ctx context.Context, ownerID int64, req models.BucketListCreateRequest) (models.BucketList, error) {
	if f.createFn != nil {
		return f.createFn(ctx, ownerID, req)
	}
	return models.BucketList{}, nil
}

func (f *fakeBucketListService) Get(ctx context.Context, bucketlistID int64) (models.BucketList, error) {
	if f.getFn != nil {
		return f.getFn(ctx, bucketlistID)
	}
	return models.BucketList{}, nil
}

func (f *fakeBucketListService) ListForUser(ctx context.Context, userID int64, titleQuery string, limit int) ([]models.BucketList, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID, titleQuery, limit)
	}
	return nil, nil
}

func (f *fakeBucketListService) Update(ctx context.Context, bucketlistID, ownerID int64, patch models.BucketListPatch) (models.BucketList, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, bucketlistID, ownerID, patch)
	}
	return models.BucketList{}, nil
}

func (f *fakeBucketListService) Delete(ctx context.Context, bucketlistID, ownerID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, bucketlistID, ownerID)
	}
	return nil
}

type fakeItemService struct {
	createFn func(ctx context.Context, bucketlistID, ownerID int64, req models.ItemCreateRequest) (models.Item, error)
	getFn    func(ctx context.Context, bucketlistID, itemID int64) (models.Item, error)
	listFn   func(ctx context.Context, bucketlistID int64) ([]models.Item, error)
	updateFn func(ctx context.Context, bucketlistID, itemID, ownerID int64, patch models.ItemPatch) (models.Item, error)
	deleteFn func(ctx context.Context, bucketlistID, itemID, ownerID int64) error
}

func (f *fakeItemService) Create(ctx context.Context, bucketlistID, ownerID int64, req models.ItemCreateRequest) (models.Item, error) {
	if f.createFn != nil {
		return f.createFn(ctx, bucketlistID, ownerID, req)
	}
	return models.Item{}, nil
}

func (f *fakeItemService) Get(ctx context.Context, bucketlistID, itemID int64) (models.Item, error) {
	if f.getFn != nil {
		return f.getFn(ctx, bucketlistID, itemID)
	}
	return models.Item{}, nil
}

func (f *fakeItemService) List(ctx context.Context, bucketlistID int64) ([]models.Item, error) {
	if f.listFn != nil {
		return f.listFn(ctx, bucketlistID)
	}
	return nil, nil
}

func (f *fakeItemService) Update(ctx context.Context, bucketlistID, itemID, ownerID int64, patch models.ItemPatch) (models.Item, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, bucketlistID, itemID, ownerID, patch)
	}
	return models.Item{}, nil
}

func (f *fakeItemService) Delete(ctx context.Context, bucketlistID, itemID, ownerID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, bucketlistID, itemID, ownerID)
	}
	return nil
}

// ---- Helpers ----

// authedAs returns a fakeAuthService whose ParseToken accepts any bearer
// token as the given user.
func authedAs(userID int64) *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: userID}, nil
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		logger:   logger.Nop(),
	}
}

func doRequest(t *testing.T, h *Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	router := h.Init()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func bearerHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer some.jwt.token"}
}

func basicHeader(email, password string) map[string]string {
	cred := base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
	return map[string]string{"Authorization": "Basic " + cred}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v (body: %s)", err, rr.Body.String())
	}
	return body
}

func assertErrorBody(t *testing.T, rr *httptest.ResponseRecorder, wantStatus int, wantCategory string) {
	t.Helper()

	if rr.Code != wantStatus {
		t.Fatalf("expected status %d, got %d (body: %s)", wantStatus, rr.Code, rr.Body.String())
	}

	body := decodeBody(t, rr)
	if body["error"] != wantCategory {
		t.Errorf("expected error category %q, got %q", wantCategory, body["error"])
	}
	if _, ok := body["message"]; !ok {
		t.Error("expected a message field in the error payload")
	}
}
