package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"firmdesk-backend/internal/api/handlers"
	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/mocks"
	"firmdesk-backend/internal/service"
	"firmdesk-backend/internal/tenant"
	"firmdesk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ClientHandlerTestSuite defines the test suite for ClientHandler
type ClientHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockClientServiceInterface
	handler     *handlers.ClientHandler
	httpSuite   *testutils.HTTPTestSuite
	tenantCtx   *tenant.Context
}

// SetupTest sets up the test suite
func (suite *ClientHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockClientServiceInterface(suite.ctrl)

	suite.handler = handlers.NewClientHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.tenantCtx = &tenant.Context{
		OrganizationID: uuid.New(),
		UserID:         uuid.New(),
		Role:           models.MembershipRoleStaff,
	}

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(testutils.WithTenant(suite.tenantCtx))
	clients := v1.Group("/clients")
	{
		clients.POST("", suite.handler.CreateClient)
		clients.GET("", suite.handler.ListClients)
		clients.GET("/:id", suite.handler.GetClient)
		clients.PUT("/:id", suite.handler.UpdateClient)
		clients.DELETE("/:id", suite.handler.DeleteClient)
	}
}

// TearDownTest cleans up after each test
func (suite *ClientHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateClient tests the CreateClient handler
func (suite *ClientHandlerTestSuite) TestCreateClient() {
	suite.T().Run("Success", func(t *testing.T) {
		clientID := uuid.New()
		requestBody := map[string]interface{}{
			"name":        "Kaieteur Hardware Ltd",
			"email":       "accounts@kaieteurhw.gy",
			"client_type": "business",
		}

		expectedResponse := &service.ClientResponse{
			ID:             clientID,
			OrganizationID: suite.tenantCtx.OrganizationID,
			Name:           "Kaieteur Hardware Ltd",
			ClientType:     models.ClientTypeBusiness,
			Status:         models.ClientStatusActive,
		}

		suite.mockService.EXPECT().
			Create(suite.tenantCtx, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/clients", requestBody)

		var response service.ClientResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, clientID, response.ID)
		assert.Equal(t, suite.tenantCtx.OrganizationID, response.OrganizationID)
	})

	suite.T().Run("Forbidden", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":        "Kaieteur Hardware Ltd",
			"client_type": "business",
		}

		suite.mockService.EXPECT().
			Create(suite.tenantCtx, gomock.Any()).
			Return(nil, apperrors.ErrInsufficientRole).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/clients", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "role does not permit")
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/api/v1/clients",
			nil, map[string]string{"Content-Type": "application/json"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetClient tests the GetClient handler
func (suite *ClientHandlerTestSuite) TestGetClient() {
	suite.T().Run("Success", func(t *testing.T) {
		clientID := uuid.New()
		expectedResponse := &service.ClientResponse{
			ID:             clientID,
			OrganizationID: suite.tenantCtx.OrganizationID,
			Name:           "Savitri Ramnarine",
			ClientType:     models.ClientTypeIndividual,
			Status:         models.ClientStatusActive,
		}

		suite.mockService.EXPECT().
			GetByID(suite.tenantCtx, clientID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/clients/%s", clientID), nil)

		var response service.ClientResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, clientID, response.ID)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		clientID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(suite.tenantCtx, clientID).
			Return(nil, apperrors.ErrClientNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/clients/%s", clientID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "client not found")
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/clients/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid client ID")
	})
}

// TestListClients tests the ListClients handler
func (suite *ClientHandlerTestSuite) TestListClients() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.ClientListResponse{
			Clients: []service.ClientResponse{
				{
					ID:             uuid.New(),
					OrganizationID: suite.tenantCtx.OrganizationID,
					Name:           "Kaieteur Hardware Ltd",
				},
			},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			List(suite.tenantCtx, gomock.Any(), 1, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/clients", nil)

		var response service.ClientListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Clients, 1)
		assert.Equal(t, int64(1), response.Total)
	})
}

// TestUpdateClient tests the UpdateClient handler
func (suite *ClientHandlerTestSuite) TestUpdateClient() {
	suite.T().Run("NotFound", func(t *testing.T) {
		clientID := uuid.New()
		requestBody := map[string]interface{}{
			"name":        "Renamed Client",
			"client_type": "business",
			"status":      "active",
		}

		suite.mockService.EXPECT().
			Update(suite.tenantCtx, clientID, gomock.Any()).
			Return(nil, apperrors.ErrClientNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/clients/%s", clientID), requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "client not found")
	})
}

// TestDeleteClient tests the DeleteClient handler
func (suite *ClientHandlerTestSuite) TestDeleteClient() {
	suite.T().Run("Success", func(t *testing.T) {
		clientID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.tenantCtx, clientID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/clients/%s", clientID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Conflict", func(t *testing.T) {
		clientID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.tenantCtx, clientID).
			Return(apperrors.NewReferentialIntegrityError("client", "documents, invoices")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/clients/%s", clientID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "")
	})
}

// TestClientHandlerTestSuite runs the test suite
func TestClientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}
