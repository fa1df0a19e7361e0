package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/stagedraw/internal/models"
	participantRepo "github.com/KirkDiggler/stagedraw/internal/repositories/participant"
	participantMocks "github.com/KirkDiggler/stagedraw/internal/repositories/participant/mocks"
	winnerRepo "github.com/KirkDiggler/stagedraw/internal/repositories/winner"
	winnerMocks "github.com/KirkDiggler/stagedraw/internal/repositories/winner/mocks"
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockParticipantRepo *participantMocks.MockRepository
	mockWinnerRepo      *winnerMocks.MockRepository
	service             *Service
	ctx                 context.Context

	testNow time.Time
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockParticipantRepo = participantMocks.NewMockRepository(s.mockCtrl)
	s.mockWinnerRepo = winnerMocks.NewMockRepository(s.mockCtrl)

	s.ctx = context.Background()
	s.testNow = time.Date(2026, 8, 1, 19, 30, 45, 0, time.UTC)

	service, err := New(&Config{
		ParticipantRepo: s.mockParticipantRepo,
		WinnerRepo:      s.mockWinnerRepo,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *ExportServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (s *ExportServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{WinnerRepo: s.mockWinnerRepo})
	s.Error(err)

	_, err = New(&Config{ParticipantRepo: s.mockParticipantRepo})
	s.Error(err)
}

func (s *ExportServiceTestSuite) TestWriteWinnersCSV() {
	s.mockWinnerRepo.EXPECT().
		ListWinners(s.ctx, &winnerRepo.ListWinnersInput{}).
		Return(&winnerRepo.ListWinnersOutput{Winners: []*models.Winner{
			{
				ID:            "w-1",
				ParticipantID: "p-1",
				Name:          "Alice Zhang",
				Tag:           "EMP-0142",
				Contact:       "alice@example.com",
				PrizeName:     "Grand Prize",
				DrawSession:   "session-1",
				WonAt:         s.testNow,
			},
			{
				ID:            "w-2",
				ParticipantID: "p-2",
				Name:          "Bob Lee",
				Tag:           "EMP-0007",
				Contact:       "bob@example.com",
				PrizeName:     "Grand Prize",
				DrawSession:   "session-1",
				WonAt:         s.testNow.Add(time.Minute),
			},
		}}, nil)

	s.mockParticipantRepo.EXPECT().
		ListParticipants(s.ctx, &participantRepo.ListParticipantsInput{}).
		Return(&participantRepo.ListParticipantsOutput{Participants: []*models.Participant{
			// p-1 still lingers in the pool; the export must not list a
			// winner in the remaining block
			{ID: "p-1", Name: "Alice Zhang", Tag: "EMP-0142", Contact: "alice@example.com", JoinedAt: s.testNow},
			{ID: "p-3", Name: "Carol Diaz", Tag: "EMP-0314", Contact: "carol@example.com", JoinedAt: s.testNow},
		}}, nil)

	var buf bytes.Buffer
	err := s.service.WriteWinnersCSV(s.ctx, &buf)
	s.Require().NoError(err)

	expected := strings.Join([]string{
		"No,Name,ID-tag,Contact,Prize,Date,Time",
		"1,Alice Zhang,EMP-0142,alice@example.com,Grand Prize,2026-08-01,19:30:45",
		"2,Bob Lee,EMP-0007,bob@example.com,Grand Prize,2026-08-01,19:31:45",
		",,,,,,",
		"No,Name,ID-tag,Contact,Prize,Date,Time",
		"1,Carol Diaz,EMP-0314,carol@example.com,,,",
		"",
	}, "\n")
	s.Equal(expected, buf.String())
}

func (s *ExportServiceTestSuite) TestWriteWinnersCSVEmpty() {
	s.mockWinnerRepo.EXPECT().
		ListWinners(s.ctx, &winnerRepo.ListWinnersInput{}).
		Return(&winnerRepo.ListWinnersOutput{Winners: []*models.Winner{}}, nil)

	s.mockParticipantRepo.EXPECT().
		ListParticipants(s.ctx, &participantRepo.ListParticipantsInput{}).
		Return(&participantRepo.ListParticipantsOutput{Participants: []*models.Participant{}}, nil)

	var buf bytes.Buffer
	err := s.service.WriteWinnersCSV(s.ctx, &buf)
	s.Require().NoError(err)

	expected := strings.Join([]string{
		"No,Name,ID-tag,Contact,Prize,Date,Time",
		",,,,,,",
		"No,Name,ID-tag,Contact,Prize,Date,Time",
		"",
	}, "\n")
	s.Equal(expected, buf.String())
}
