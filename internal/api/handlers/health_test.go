package handlers

import (
	"errors"
	"net/http"
	"testing"

	"contact-form-backend/internal/mocks"
	"contact-form-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HealthHandlerTestSuite defines the test suite for HealthHandler
type HealthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSubmissionServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *HealthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSubmissionServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := NewHealthHandler(suite.mockService)
	suite.httpSuite.Router.GET("/health", handler.Health)
	suite.httpSuite.Router.GET("/health/ready", handler.Ready)
	suite.httpSuite.Router.GET("/health/live", handler.Live)
}

// TearDownTest cleans up after each test
func (suite *HealthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HealthHandlerTestSuite) TestHealthy() {
	suite.mockService.EXPECT().Ready(gomock.Any()).Return(map[string]error{
		"database":        nil,
		"submissions_log": nil,
	})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var resp HealthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal("healthy", resp.Status)
	suite.Equal(Version, resp.Version)
	suite.Equal("healthy", resp.Services["database"])
	suite.Equal("healthy", resp.Services["submissions_log"])
}

func (suite *HealthHandlerTestSuite) TestUnhealthy() {
	suite.mockService.EXPECT().Ready(gomock.Any()).Return(map[string]error{
		"database":        errors.New("sql: database is closed"),
		"submissions_log": nil,
	})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var resp HealthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusServiceUnavailable, &resp)
	suite.Equal("unhealthy", resp.Status)
	suite.Contains(resp.Services["database"], "database is closed")
}

func (suite *HealthHandlerTestSuite) TestReady() {
	suite.mockService.EXPECT().Ready(gomock.Any()).Return(map[string]error{"database": nil, "submissions_log": nil})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(true, resp["ready"])
}

func (suite *HealthHandlerTestSuite) TestNotReady() {
	suite.mockService.EXPECT().Ready(gomock.Any()).Return(map[string]error{
		"database":        nil,
		"submissions_log": errors.New("permission denied"),
	})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusServiceUnavailable, &resp)
	suite.Equal(false, resp["ready"])
	services := resp["services"].(map[string]interface{})
	suite.Equal("not ready: permission denied", services["submissions_log"])
}

func (suite *HealthHandlerTestSuite) TestLive() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Equal(true, resp["alive"])
}

// TestHealthHandlerTestSuite runs the test suite
func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
