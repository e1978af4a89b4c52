package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/heshafoods/hesha-api/internal/application"
	"github.com/heshafoods/hesha-api/internal/domain/entity"
	"github.com/heshafoods/hesha-api/internal/domain/repository"
	handlers "github.com/heshafoods/hesha-api/internal/interface/http"
	"github.com/heshafoods/hesha-api/pkg/mailer"
	"github.com/heshafoods/hesha-api/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

// envelope mirrors response.APIResponse for decoding in assertions.
type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type memUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[int64]*entity.User
	nextID  int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}, byID: map[int64]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	r.nextID++
	u.ID = r.nextID
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) UpdateAddress(_ context.Context, userID int64, address json.RawMessage) error {
	if u, ok := r.byID[userID]; ok {
		u.Address = address
	}
	// unknown user id is a silent no-op, as in storage
	return nil
}

type memOrderRepo struct {
	orders []entity.Order
}

func (r *memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.orders = append(r.orders, *o)
	return nil
}

func (r *memOrderRepo) ListByUser(_ context.Context, userID int64) ([]entity.Order, error) {
	out := make([]entity.Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID != nil && *r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

type capturingNotifier struct {
	sent []mailer.OrderNotification
}

func (n *capturingNotifier) SendOrderNotification(_ context.Context, m mailer.OrderNotification) {
	n.sent = append(n.sent, m)
}

type testAPI struct {
	engine   *gin.Engine
	users    *memUserRepo
	orders   *memOrderRepo
	notifier *capturingNotifier
}

func newTestAPI() *testAPI {
	logger, _ := logtest.NewNullLogger()
	users := newMemUserRepo()
	orders := &memOrderRepo{}
	notifier := &capturingNotifier{}

	userSvc := application.NewUserService(users, logger)
	orderSvc := application.NewOrderService(orders, users, notifier, logger)
	catalog := application.NewCatalog()

	uh := handlers.NewUserHandler(userSvc, logger)
	oh := handlers.NewOrderHandler(orderSvc, logger)
	ph := handlers.NewProductHandler(catalog)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/signup", uh.SignUp)
	api.POST("/login", uh.LogIn)
	api.POST("/user/address", uh.UpdateAddresses)
	api.POST("/orders", oh.Place)
	api.GET("/orders/:user_id", oh.ListForUser)
	api.GET("/products", ph.List)

	return &testAPI{engine: r, users: users, orders: orders, notifier: notifier}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func (a *testAPI) signup(t *testing.T, name, email, password string) int64 {
	t.Helper()
	w, env := a.do(t, http.MethodPost, "/api/signup", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	var data struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}
