package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"association-console/internal/backend"
	"association-console/internal/repositories"
	"association-console/pkg/config"
	"association-console/pkg/eventbus"
	"association-console/pkg/filestorage"
	"association-console/pkg/service"
	"association-console/pkg/validation"
)

// fakeAssociationAPI keeps dispatches in memory the way the REST backend does.
type fakeAssociationAPI struct {
	mu         sync.Mutex
	dispatches []map[string]interface{}
	tokens     []string
}

func (f *fakeAssociationAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, r.Header.Get("Authorization"))
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/EquipmentDispatch":
		_ = json.NewEncoder(w).Encode(f.dispatches)

	case r.Method == http.MethodPost && r.URL.Path == "/EquipmentDispatch":
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if _, _, err := r.FormFile("pdfFile"); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = fmt.Fprint(w, `{"title":"validation","errors":{"PdfFile":["The pdf is required."]}}`)
			return
		}
		d := map[string]interface{}{
			"id":                 len(f.dispatches) + 1,
			"medicalEquipmentId": 7,
			"beneficiary":        r.FormValue("beneficiary"),
			"patientPhone":       r.FormValue("patientPhone"),
			"patientCIN":         r.FormValue("patientCIN"),
			"coordinator":        r.FormValue("coordinator"),
			"responsiblePerson":  r.FormValue("responsiblePerson"),
			"dispatchDate":       r.FormValue("dispatchDate") + "T00:00:00",
			"returnDate":         nil,
			"pdfFilePath":        "uploads/dispatch.pdf",
		}
		f.dispatches = append(f.dispatches, d)
		_ = json.NewEncoder(w).Encode(d)

	case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/return"):
		var body struct {
			ReturnDate string `json:"returnDate"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		for _, d := range f.dispatches {
			if r.URL.Path == fmt.Sprintf("/EquipmentDispatch/%v/return", d["id"]) {
				d["returnDate"] = body.ReturnDate + "T00:00:00"
				_ = json.NewEncoder(w).Encode(d)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	default:
		c.data[key] = fmt.Sprint(v)
	}
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type ConsoleTestSuite struct {
	suite.Suite
	Echo    *echo.Echo
	API     *fakeAssociationAPI
	Backend *httptest.Server
	Bus     *eventbus.Bus
}

func (s *ConsoleTestSuite) SetupTest() {
	s.API = &fakeAssociationAPI{}
	s.Backend = httptest.NewServer(s.API)

	storage, err := filestorage.NewLocalFileStorage(s.T().TempDir())
	s.Require().NoError(err)

	s.Bus = eventbus.New(zap.NewNop())
	s.Echo = echo.New()
	s.Echo.Validator = validation.New()

	InitRouter(s.Echo, Dependencies{
		Backend:     backend.New(s.Backend.URL, 5*time.Second, zap.NewNop()),
		Cache:       &memoryCache{data: map[string]string{}},
		FileStorage: storage,
		Bus:         s.Bus,
		JWT:         service.NewJWTService(),
		Config: &config.Config{
			Batch:   config.BatchConfig{MaxQuantity: 50},
			Storage: config.StorageConfig{DraftTTL: time.Hour},
		},
		Logger: zap.NewNop(),
	})
}

func (s *ConsoleTestSuite) TearDownTest() {
	s.Bus.Wait()
	s.Backend.Close()
}

func (s *ConsoleTestSuite) do(req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	req.Header.Set(echo.HeaderAuthorization, "Bearer test-token")
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	var body map[string]interface{}
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func dispatchForm(t *testing.T, phone string, withPDF bool) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"medicalEquipmentId": "7",
		"beneficiary":        "Salma",
		"patientPhone":       phone,
		"patientCIN":         "01234567",
		"coordinator":        "Amina",
		"responsiblePerson":  "Youssef",
		"dispatchDate":       "2024-05-01",
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withPDF {
		part, err := w.CreateFormFile("pdfFile", "engagement.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4\nsigned\n%%EOF"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func (s *ConsoleTestSuite) listView(view string) []interface{} {
	rec, body := s.do(httptest.NewRequest(http.MethodGet, "/api/dispatches?view="+view, nil))
	s.Require().Equal(http.StatusOK, rec.Code)
	return body["body"].(map[string]interface{})["list"].([]interface{})
}

func (s *ConsoleTestSuite) TestDispatchLifecycle() {
	buf, contentType := dispatchForm(s.T(), "22123456", true)
	req := httptest.NewRequest(http.MethodPost, "/api/dispatches", buf)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec, body := s.do(req)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Equal(true, body["status"])

	ongoing := s.listView("ongoing")
	s.Require().Len(ongoing, 1)
	s.Equal("Salma", ongoing[0].(map[string]interface{})["beneficiary"])
	s.Empty(s.listView("completed"))

	req = httptest.NewRequest(http.MethodPatch, "/api/dispatches/1/return", strings.NewReader(`{"returnDate":"2024-05-03"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec, _ = s.do(req)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	s.Empty(s.listView("ongoing"))
	completed := s.listView("completed")
	s.Require().Len(completed, 1)
	s.Equal("2024-05-03T00:00:00", completed[0].(map[string]interface{})["returnDate"])

	rec, _ = s.do(httptest.NewRequest(http.MethodPatch, "/api/dispatches/1/return", nil))
	s.Equal(http.StatusConflict, rec.Code)

	for _, token := range s.API.tokens {
		s.Equal("Bearer test-token", token)
	}
}

func (s *ConsoleTestSuite) TestCreateDispatch_FieldErrors() {
	buf, contentType := dispatchForm(s.T(), "1234", false)
	req := httptest.NewRequest(http.MethodPost, "/api/dispatches", buf)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec, body := s.do(req)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Equal(false, body["status"])
	fields := body["body"].(map[string]interface{})["fields"].(map[string]interface{})
	s.Contains(fields, "patientPhone")
	s.Contains(fields, "pdfFile", "the missing PDF is reported with the form errors")
	s.Empty(s.API.tokens, "nothing reaches the backend")
}

func (s *ConsoleTestSuite) TestRequiresBearerToken() {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dispatches", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ConsoleTestSuite) TestUnknownView() {
	rec, body := s.do(httptest.NewRequest(http.MethodGet, "/api/dispatches?view=lost", nil))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(body["body"].(map[string]interface{})["fields"], "view")
}

func (s *ConsoleTestSuite) TestMetricsEndpoint() {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "go_goroutines")
}

func TestConsoleTestSuite(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}
