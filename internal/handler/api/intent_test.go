//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campus-barter/internal/handler/api"
	reqdto "campus-barter/internal/handler/dto/request"
	resdto "campus-barter/internal/handler/dto/response"
	"campus-barter/internal/usecase/commands"
	"campus-barter/internal/usecase/queries"
	"campus-barter/tests/common/builder"
	"campus-barter/tests/common/httptest"
	"campus-barter/tests/common/testutil"
	commandsmock "campus-barter/tests/mock/commands"
	queriesmock "campus-barter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IntentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockIntentCommands
	mockQueries  *queriesmock.MockIntentQueries
	handler      *api.IntentHandler
	userID       uuid.UUID
}

func (s *IntentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockIntentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockIntentQueries(s.mockCtrl)
	s.handler = api.NewIntentHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock middleware behavior
	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	authed.POST("/barter/intents", s.handler.SubmitIntent)
	authed.GET("/barter/intents", s.handler.ListMyIntents)
}

func (s *IntentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIntentHandlerSuite(t *testing.T) {
	suite.Run(t, new(IntentHandlerTestSuite))
}

func (s *IntentHandlerTestSuite) TestSubmitIntent() {
	url := "/barter/intents"

	itemID := uuid.New()
	reqBody := reqdto.CreateIntentRequest{
		ItemID:       itemID,
		WantCategory: "electronics",
	}

	intentView := builder.NewIntentBuilder().
		WithOwner(s.userID, "Asha Verma").
		WithItem(itemID, "Calculus Textbook", "books").
		BuildView()

	s.Run("success: 201 with no match yet", func() {
		s.mockCommands.EXPECT().SubmitIntent(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.SubmitIntentResult{Intent: intentView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SubmitIntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.False(response.MatchFound)
		s.Nil(response.Match)
		s.Equal(commands.NoMatchMessage, response.Message)
		s.Equal(intentView.ID, response.BarterIntent.ID)
	})

	s.Run("success: 201 with a direct match", func() {
		score := 4.0
		found := &commands.FoundMatch{
			ID:          uuid.New(),
			Kind:        "direct",
			Score:       &score,
			Explanation: "Perfect 2-way match found! Asha and Rohan have what each other wants.",
			Flow:        "Asha (Calculus Textbook) ↔ Rohan (Calculator)",
		}
		s.mockCommands.EXPECT().SubmitIntent(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.SubmitIntentResult{Intent: intentView, Match: found}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SubmitIntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.MatchFound)
		s.Require().NotNil(response.Match)
		s.Equal(found.ID, response.Match.ID)
		s.Equal("direct", response.Match.Kind)
		s.Empty(response.Message)
	})

	s.Run("error: 400 on malformed body", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("item_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 when item is unknown", func() {
		s.mockCommands.EXPECT().SubmitIntent(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})

	s.Run("error: 403 when item belongs to someone else", func() {
		s.mockCommands.EXPECT().SubmitIntent(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrItemNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Item does not belong to user")
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().SubmitIntent(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid barter intent data")
	})
}

func (s *IntentHandlerTestSuite) TestListMyIntents() {
	url := "/barter/intents"

	s.Run("success: returns the caller's active intents", func() {
		views := []*queries.IntentView{
			builder.NewIntentBuilder().WithOwner(s.userID, "Asha Verma").BuildView(),
			builder.NewIntentBuilder().WithOwner(s.userID, "Asha Verma").WithWant("books").BuildView(),
		}
		s.mockQueries.EXPECT().ListActiveByOwner(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal(views[1].WantCategory, response[1].WantCategory)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListActiveByOwner(gomock.Any(), s.userID).
			Return(nil, assert.AnError).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
