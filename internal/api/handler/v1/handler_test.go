package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolhub/portal/internal/cache"
	"github.com/schoolhub/portal/internal/pkg/inflight"
	"github.com/schoolhub/portal/internal/repository"
	"github.com/schoolhub/portal/internal/repository/dao"
	"github.com/schoolhub/portal/internal/service"
	"github.com/schoolhub/portal/internal/session"
)

const (
	loginOK = `{"status":"success","message":"ยินดีต้อนรับ","data":{"token":"tok-1","user":{
		"user_uname":"teacher01","user_fname":"Somchai","user_lname":"Jaidee","user_nat_id":"1100100100100",
		"roles":["teacher"],
		"profiles":{"teacher":{"tea_id":"T1","teacher_classes":[{"class":{"class_level":"M1","class_room":"1"}}]}}}}}`

	provincesOK = `{"status":"success","data":[{"id":1,"name_th":"กรุงเทพมหานคร","amphure":[
		{"id":10,"name_th":"พระนคร","tambon":[{"id":100,"name_th":"พระบรมมหาราชวัง","zip_code":10200}]}]}]}`
)

// schoolAPI fakes the remote school API and counts the calls per path.
type schoolAPI struct {
	t       *testing.T
	calls   map[string]*int32
	login   string
	status  int
	address func(w http.ResponseWriter, r *http.Request)
}

func newSchoolAPI(t *testing.T) *schoolAPI {
	return &schoolAPI{
		t:      t,
		calls:  map[string]*int32{"/user/login": new(int32), "/provinces": new(int32), "/address": new(int32)},
		login:  loginOK,
		status: http.StatusOK,
		address: func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"status":"success","message":"saved"}`)
		},
	}
}

func (a *schoolAPI) count(path string) int {
	return int(atomic.LoadInt32(a.calls[path]))
}

func (a *schoolAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if c, ok := a.calls[r.URL.Path]; ok {
		atomic.AddInt32(c, 1)
	}

	switch r.URL.Path {
	case "/user/login":
		w.WriteHeader(a.status)
		_, _ = io.WriteString(w, a.login)
	case "/provinces":
		_, _ = io.WriteString(w, provincesOK)
	case "/address":
		a.address(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// dropConnection closes the connection without a response.
func dropConnection(w http.ResponseWriter, _ *http.Request) {
	conn, _, err := w.(http.Hijacker).Hijack()
	if err == nil {
		_ = conn.Close()
	}
}

func newTestRouter(t *testing.T, api *schoolAPI) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	return newTestRouterAt(t, srv.URL)
}

func newTestRouterAt(t *testing.T, baseURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cookies, err := session.NewCookies("test-secret", false, time.Hour)
	require.NoError(t, err)

	client := dao.NewClient(baseURL, nil, 5*time.Second)
	guard := inflight.New(nil, time.Minute)

	authSvc := service.NewAuthService(repository.NewUserRepository(dao.NewUserDAO(client)), guard)
	geoSvc := service.NewGeoService(repository.NewGeoRepository(dao.NewGeoDAO(client)), cache.New(nil, time.Hour))
	addressSvc := service.NewAddressService(repository.NewAddressRepository(dao.NewAddressDAO(client)), geoSvc, guard)

	authHandler := NewAuthHandler(authSvc, cookies)
	addressHandler := NewAddressHandler(geoSvc, addressSvc, cookies)

	r := gin.New()
	r.GET("/", HandleHealthcheck)
	r.GET("/auth/login", authHandler.HandleLoginScreen)
	r.POST("/auth/login", authHandler.HandleLogin)
	r.POST("/auth/logout", authHandler.HandleLogout)
	r.GET("/address/provinces", addressHandler.HandleGetProvinces)
	r.GET("/address/form", addressHandler.HandleGetForm)
	r.POST("/address", addressHandler.HandleSubmitAddress)

	return r
}

func perform(r *gin.Engine, method, target, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func login(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()

	rec := perform(r, http.MethodPost, "/auth/login", `{"username":"teacher01","password":"pass123","remember_me":true}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Result().Cookies()
}

func TestHandleHealthcheck(t *testing.T) {
	r := newTestRouter(t, newSchoolAPI(t))

	rec := perform(r, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleLogin(t *testing.T) {
	r := newTestRouter(t, newSchoolAPI(t))

	rec := perform(r, http.MethodPost, "/auth/login", `{"username":"teacher01","password":"pass123","remember_me":true}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Notification struct {
			Icon    string `json:"icon"`
			Title   string `json:"title"`
			Text    string `json:"text"`
			TimerMS int    `json:"timer_ms"`
		} `json:"notification"`
		RoleInfo struct {
			Icon  string `json:"icon"`
			Title string `json:"title"`
			Text  string `json:"text"`
		} `json:"role_info"`
		SummaryText string `json:"summary_text"`
	}
	decode(t, rec, &body)

	assert.Equal(t, "info", body.RoleInfo.Icon)
	assert.Equal(t, "ข้อมูลผู้ใช้งาน", body.RoleInfo.Title)
	assert.Equal(t, body.SummaryText, body.RoleInfo.Text)
	assert.Equal(t, "success", body.Notification.Icon)
	assert.Equal(t, titleLoginSuccess, body.Notification.Title)
	assert.Equal(t, "ยินดีต้อนรับ", body.Notification.Text)
	assert.Equal(t, 1500, body.Notification.TimerMS)
	assert.Contains(t, body.SummaryText, "ชื่อผู้ใช้: teacher01")
	assert.Contains(t, body.SummaryText, "M1 /1")

	cookies := rec.Result().Cookies()
	require.NotNil(t, findCookie(cookies, session.TokenKey))
	remembered := findCookie(cookies, session.RememberedUsernameKey)
	require.NotNil(t, remembered)
	assert.Equal(t, "teacher01", remembered.Value)

	screen := perform(r, http.MethodGet, "/auth/login", "", cookies)
	assert.JSONEq(t, `{"remembered_username":"teacher01","remember_me":true,"logged_in":true}`, screen.Body.String())
}

func TestHandleLogin_WithoutRememberMeClearsUsername(t *testing.T) {
	r := newTestRouter(t, newSchoolAPI(t))

	rec := perform(r, http.MethodPost, "/auth/login", `{"username":"teacher01","password":"pass123"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	remembered := findCookie(rec.Result().Cookies(), session.RememberedUsernameKey)
	require.NotNil(t, remembered)
	assert.Equal(t, -1, remembered.MaxAge)
}

func TestHandleLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		status     int
		login      string
		wantStatus int
		wantText   string
		wantCalls  int
	}{
		{
			name:       "empty fields",
			body:       `{"username":"","password":""}`,
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantCalls:  0,
		},
		{
			name:       "wrong password",
			body:       `{"username":"teacher01","password":"nope"}`,
			status:     http.StatusUnauthorized,
			login:      `{"status":"error","message":"รหัสผ่านไม่ถูกต้อง"}`,
			wantStatus: http.StatusUnauthorized,
			wantText:   "รหัสผ่านไม่ถูกต้อง",
			wantCalls:  1,
		},
		{
			name:       "success without token",
			body:       `{"username":"teacher01","password":"pass123"}`,
			status:     http.StatusOK,
			login:      `{"status":"success","message":"ok","data":{"user":{}}}`,
			wantStatus: http.StatusBadGateway,
			wantText:   "ไม่สามารถเข้าสู่ระบบได้",
			wantCalls:  1,
		},
		{
			name:       "success with broken user",
			body:       `{"username":"teacher01","password":"pass123"}`,
			status:     http.StatusOK,
			login:      `{"status":"success","data":{"token":"tok-1","user":{"roles":"teacher"}}}`,
			wantStatus: http.StatusBadGateway,
			wantText:   "ไม่สามารถเข้าสู่ระบบได้",
			wantCalls:  1,
		},
		{
			name:       "server error without message",
			body:       `{"username":"teacher01","password":"pass123"}`,
			status:     http.StatusInternalServerError,
			login:      ``,
			wantStatus: http.StatusBadGateway,
			wantText:   "ไม่สามารถเข้าสู่ระบบได้",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newSchoolAPI(t)
			if tt.status != 0 {
				api.status = tt.status
				api.login = tt.login
			}
			r := newTestRouter(t, api)

			rec := perform(r, http.MethodPost, "/auth/login", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, api.count("/user/login"))
			assert.Nil(t, findCookie(rec.Result().Cookies(), session.TokenKey))

			var body struct {
				Notification struct {
					Icon string `json:"icon"`
					Text string `json:"text"`
				} `json:"notification"`
			}
			decode(t, rec, &body)
			assert.Equal(t, "error", body.Notification.Icon)
			assert.NotEmpty(t, body.Notification.Text)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, body.Notification.Text)
			}
		})
	}
}

func TestHandleLogin_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	r := newTestRouterAt(t, srv.URL)

	rec := perform(r, http.MethodPost, "/auth/login", `{"username":"teacher01","password":"pass123"}`, nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body struct {
		Notification struct {
			Text string `json:"text"`
		} `json:"notification"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "ไม่สามารถเข้าสู่ระบบได้", body.Notification.Text)
}

func TestHandleLogin_NumericPhoneStillLogsIn(t *testing.T) {
	api := newSchoolAPI(t)
	api.login = `{"status":"success","message":"ok","data":{"token":"tok-1","user":{
		"user_uname":"teacher01","user_phone":812345678,"roles":["teacher"],
		"profiles":{"teacher":{"tea_id":"T1"}}}}}`
	r := newTestRouter(t, api)

	rec := perform(r, http.MethodPost, "/auth/login", `{"username":"teacher01","password":"pass123"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotNil(t, findCookie(rec.Result().Cookies(), session.TokenKey))
	assert.Contains(t, rec.Body.String(), "812345678")
}

func TestHandleLogout(t *testing.T) {
	r := newTestRouter(t, newSchoolAPI(t))
	cookies := login(t, r)

	rec := perform(r, http.MethodPost, "/auth/logout", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	token := findCookie(rec.Result().Cookies(), session.TokenKey)
	require.NotNil(t, token)
	assert.True(t, token.MaxAge < 0)
}

func TestHandleGetProvinces(t *testing.T) {
	api := newSchoolAPI(t)
	r := newTestRouter(t, api)

	for i := 0; i < 2; i++ {
		rec := perform(r, http.MethodGet, "/address/provinces", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"options":[{"id":1,"name":"กรุงเทพมหานคร"}]}`, rec.Body.String())
	}

	assert.Equal(t, 1, api.count("/provinces"))
}

func TestHandleGetForm(t *testing.T) {
	r := newTestRouter(t, newSchoolAPI(t))

	rec := perform(r, http.MethodGet, "/address/form?province=1&district=10&subdistrict=100", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Form struct {
			PostalCode string `json:"postal_code"`
		} `json:"form"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "10200", body.Form.PostalCode)

	rec = perform(r, http.MethodGet, "/address/form?province=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSubmitAddress(t *testing.T) {
	api := newSchoolAPI(t)
	var got map[string]any
	api.address = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"status":"success","message":"saved"}`)
	}
	r := newTestRouter(t, api)
	cookies := login(t, r)

	rec := perform(r, http.MethodPost, "/address",
		`{"addr_etc":"99/1 <b>ซอย 5</b>","province_id":1,"district_id":10,"subdistrict_id":100}`, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "99/1 ซอย 5", got["addr_etc"])
	assert.Equal(t, "พระบรมมหาราชวัง", got["addr_sub_dist"])
	assert.Equal(t, "พระนคร", got["addr_dist"])
	assert.Equal(t, "กรุงเทพมหานคร", got["addr_prv"])
	assert.Equal(t, "10200", got["addr_pos_code"])
	assert.Nil(t, got["addr_tel_home"])
	assert.Nil(t, got["house_reg_num"])
	assert.Equal(t, "current", got["addr_type"])

	var body struct {
		Notification struct {
			Title string `json:"title"`
		} `json:"notification"`
		Form struct {
			State      string `json:"state"`
			PostalCode string `json:"postal_code"`
		} `json:"form"`
	}
	decode(t, rec, &body)
	assert.Equal(t, titleAddressSaved, body.Notification.Title)
	assert.Empty(t, body.Form.PostalCode)
}

func TestHandleSubmitAddress_Errors(t *testing.T) {
	complete := `{"addr_etc":"99/1","province_id":1,"district_id":10,"subdistrict_id":100}`

	tests := []struct {
		name       string
		body       string
		loggedIn   bool
		wantStatus int
		wantText   string
	}{
		{
			name:       "incomplete",
			body:       `{"addr_etc":"","province_id":0,"district_id":0,"subdistrict_id":0}`,
			loggedIn:   true,
			wantStatus: http.StatusBadRequest,
			wantText:   service.ErrAddressIncomplete.Error(),
		},
		{
			name:       "not logged in",
			body:       complete,
			wantStatus: http.StatusUnauthorized,
			wantText:   service.ErrNotLoggedIn.Error(),
		},
		{
			name:       "incomplete without session and bad phone",
			body:       `{"addr_etc":"","province_id":0,"addr_tel_home":"12"}`,
			wantStatus: http.StatusBadRequest,
			wantText:   service.ErrAddressIncomplete.Error(),
		},
		{
			name:       "no session and bad phone",
			body:       `{"addr_etc":"99/1","province_id":1,"district_id":10,"subdistrict_id":100,"addr_tel_home":"12"}`,
			wantStatus: http.StatusUnauthorized,
			wantText:   service.ErrNotLoggedIn.Error(),
		},
		{
			name:       "bad home phone",
			body:       `{"addr_etc":"99/1","province_id":1,"district_id":10,"subdistrict_id":100,"addr_tel_home":"12ab"}`,
			loggedIn:   true,
			wantStatus: http.StatusBadRequest,
			wantText:   "เบอร์โทรศัพท์บ้านไม่ถูกต้อง",
		},
		{
			name:       "bad address type",
			body:       `{"addr_etc":"99/1","province_id":1,"district_id":10,"subdistrict_id":100,"addr_type":"office"}`,
			loggedIn:   true,
			wantStatus: http.StatusBadRequest,
			wantText:   "ประเภทที่อยู่ไม่ถูกต้อง",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newSchoolAPI(t)
			r := newTestRouter(t, api)

			var cookies []*http.Cookie
			if tt.loggedIn {
				cookies = login(t, r)
			}

			rec := perform(r, http.MethodPost, "/address", tt.body, cookies)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, 0, api.count("/address"))
			if tt.wantText != "" {
				assert.True(t, strings.Contains(rec.Body.String(), tt.wantText), rec.Body.String())
			}
		})
	}
}

func TestHandleSubmitAddress_RemoteFailure(t *testing.T) {
	tests := []struct {
		name       string
		handler    func(w http.ResponseWriter, r *http.Request)
		wantStatus int
		wantText   string
	}{
		{
			name: "server message",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = io.WriteString(w, `{"status":"error","message":"ข้อมูลซ้ำ"}`)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantText:   "ข้อมูลซ้ำ",
		},
		{
			name:       "unreachable",
			handler:    dropConnection,
			wantStatus: http.StatusBadGateway,
			wantText:   "ไม่สามารถติดต่อเซิร์ฟเวอร์ได้",
		},
		{
			name: "fallback",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusBadGateway,
			wantText:   "ไม่สามารถบันทึกข้อมูลได้",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newSchoolAPI(t)
			api.address = tt.handler
			r := newTestRouter(t, api)
			cookies := login(t, r)

			rec := perform(r, http.MethodPost, "/address",
				`{"addr_etc":"99/1","province_id":1,"district_id":10,"subdistrict_id":100}`, cookies)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Notification struct {
					Text string `json:"text"`
				} `json:"notification"`
			}
			decode(t, rec, &body)
			assert.Equal(t, tt.wantText, body.Notification.Text)
		})
	}
}
