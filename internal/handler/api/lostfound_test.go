//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"campus-barter/internal/handler/api"
	resdto "campus-barter/internal/handler/dto/response"
	"campus-barter/internal/usecase/commands"
	"campus-barter/internal/usecase/queries"
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

type LostFoundHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLostFoundCommands
	mockQueries  *queriesmock.MockLostFoundQueries
	handler      *api.LostFoundHandler
	userID       uuid.UUID
}

func (s *LostFoundHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLostFoundCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLostFoundQueries(s.mockCtrl)
	s.handler = api.NewLostFoundHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	group := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	group.POST("/lost-found", s.handler.CreatePosting)
	group.GET("/lost-found", s.handler.ListPostings)
	group.GET("/lost-found/:id", s.handler.GetPosting)
}

func (s *LostFoundHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLostFoundHandlerSuite(t *testing.T) {
	suite.Run(t, new(LostFoundHandlerTestSuite))
}

// nestedErrorBody is the httperr.Response body shape used by this handler.
type nestedErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *LostFoundHandlerTestSuite) postingView() *queries.LostFoundView {
	return &queries.LostFoundView{
		ID:        uuid.New(),
		UserID:    s.userID,
		ItemName:  "Black Umbrella",
		Category:  "accessories",
		Kind:      "lost",
		Active:    true,
		CreatedAt: time.Now(),
	}
}

func (s *LostFoundHandlerTestSuite) TestCreatePosting() {
	url := "/lost-found"
	reqBody := map[string]any{
		"item_name": "Black Umbrella",
		"category":  "accessories",
		"kind":      "lost",
	}

	s.Run("success: 201 with the stored posting", func() {
		view := s.postingView()
		s.mockCommands.EXPECT().CreatePosting(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.CreatePostingResult{PostingID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LostFoundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Black Umbrella", response.ItemName)
		s.Equal("lost", response.Kind)
	})

	s.Run("error: 400 when kind is not lost or found", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("kind", "misplaced"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
		var errBody nestedErrorBody
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &errBody))
		s.Contains(errBody.Error.Message, "Invalid request format")
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().CreatePosting(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		assert.Equal(s.T(), http.StatusUnprocessableEntity, rec.Code)
		var errBody nestedErrorBody
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &errBody))
		s.Contains(errBody.Error.Message, "Invalid posting data")
	})
}

func (s *LostFoundHandlerTestSuite) TestGetPosting() {
	s.Run("success: 200 with the posting", func() {
		view := s.postingView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lost-found/"+view.ID.String(), nil, "")

		var response resdto.LostFoundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lost-found/not-a-uuid", nil, "")
		assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 when the posting does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrPostingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lost-found/"+id.String(), nil, "")

		assert.Equal(s.T(), http.StatusNotFound, rec.Code)
		var errBody nestedErrorBody
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &errBody))
		s.Contains(errBody.Error.Message, "Posting not found")
	})
}

func (s *LostFoundHandlerTestSuite) TestListPostings() {
	s.Run("success: 200 with kind filter applied", func() {
		views := []*queries.LostFoundView{s.postingView(), s.postingView()}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.LostFoundFilter{Kind: "lost"}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lost-found?kind=lost", nil, "")

		var response []*resdto.LostFoundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/lost-found", nil, "")
		assert.Equal(s.T(), http.StatusInternalServerError, rec.Code)
	})
}
