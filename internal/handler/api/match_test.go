//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"campus-barter/internal/handler/api"
	resdto "campus-barter/internal/handler/dto/response"
	"campus-barter/internal/usecase/commands"
	"campus-barter/internal/usecase/queries"
	"campus-barter/tests/common/builder"
	"campus-barter/tests/common/httptest"
	commandsmock "campus-barter/tests/mock/commands"
	queriesmock "campus-barter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMatchCommands
	mockQueries  *queriesmock.MockMatchQueries
	handler      *api.MatchHandler
	userID       uuid.UUID
}

func (s *MatchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMatchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMatchQueries(s.mockCtrl)
	s.handler = api.NewMatchHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock middleware behavior
	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", s.userID)
	})
	authed.GET("/matches", s.handler.ListMyMatches)
	authed.GET("/matches/:id", s.handler.GetMatch)
	authed.POST("/matches/:id/accept", s.handler.AcceptMatch)
	authed.POST("/matches/:id/reject", s.handler.RejectMatch)
}

func (s *MatchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchHandlerSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}

func (s *MatchHandlerTestSuite) TestGetMatch() {
	view := builder.NewMatchBuilder().BuildView()
	url := "/matches/" + view.ID.String()

	s.Run("success: participant sees the match", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
		s.Len(response.Participants, 2)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/matches/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid match ID")
	})

	s.Run("error: 404 for unknown match", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).
			Return(nil, queries.ErrMatchNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Match not found")
	})

	s.Run("error: 403 for outsiders", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).
			Return(nil, queries.ErrMatchAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "User is not part of this match")
	})
}

func (s *MatchHandlerTestSuite) TestAcceptMatch() {
	matchID := uuid.New()
	url := "/matches/" + matchID.String() + "/accept"

	s.Run("success: acceptance recorded, match still pending", func() {
		s.mockCommands.EXPECT().AcceptMatch(gomock.Any(), matchID, s.userID).
			Return(&commands.AcceptMatchResult{
				MatchID:    matchID,
				Status:     "pending",
				AcceptedBy: []uuid.UUID{s.userID},
				Message:    commands.MatchAcceptedMessage,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.AcceptMatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("pending", response.Status)
		s.Equal(commands.MatchAcceptedMessage, response.Message)
	})

	s.Run("success: final acceptance completes the match", func() {
		other := uuid.New()
		s.mockCommands.EXPECT().AcceptMatch(gomock.Any(), matchID, s.userID).
			Return(&commands.AcceptMatchResult{
				MatchID:    matchID,
				Status:     "completed",
				AcceptedBy: []uuid.UUID{other, s.userID},
				Message:    commands.MatchCompletedMessage,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.AcceptMatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
		s.Equal(commands.MatchCompletedMessage, response.Message)
		s.Len(response.AcceptedBy, 2)
	})

	s.Run("error: 404 for unknown match", func() {
		s.mockCommands.EXPECT().AcceptMatch(gomock.Any(), matchID, s.userID).
			Return(nil, commands.ErrMatchNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Match not found")
	})

	s.Run("error: 403 for outsiders", func() {
		s.mockCommands.EXPECT().AcceptMatch(gomock.Any(), matchID, s.userID).
			Return(nil, commands.ErrNotParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "User is not part of this match")
	})

	s.Run("error: 409 when the completion block fails", func() {
		s.mockCommands.EXPECT().AcceptMatch(gomock.Any(), matchID, s.userID).
			Return(nil, commands.ErrCompletionTransaction).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Match completion failed; please retry")
	})
}

func (s *MatchHandlerTestSuite) TestRejectMatch() {
	matchID := uuid.New()
	url := "/matches/" + matchID.String() + "/reject"

	s.Run("success: 204 on rejection", func() {
		s.mockCommands.EXPECT().RejectMatch(gomock.Any(), matchID, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the match is already resolved", func() {
		s.mockCommands.EXPECT().RejectMatch(gomock.Any(), matchID, s.userID).
			Return(commands.ErrMatchNotPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Match is already resolved")
	})

	s.Run("error: 403 for outsiders", func() {
		s.mockCommands.EXPECT().RejectMatch(gomock.Any(), matchID, s.userID).
			Return(commands.ErrNotParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "User is not part of this match")
	})
}
