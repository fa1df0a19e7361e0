package winner

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2026, 8, 1, 19, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testWinner(id, participantID, sessionID string, wonAt time.Time) *models.Winner {
	return &models.Winner{
		ID:            id,
		ParticipantID: participantID,
		Name:          "Alice Zhang",
		Tag:           "EMP-0142",
		Contact:       "alice@example.com",
		PrizeID:       "test-prize-id",
		PrizeName:     "Grand Prize",
		DrawSession:   sessionID,
		WonAt:         wonAt,
	}
}

func (s *RedisRepositoryTestSuite) TestAddAndListWinners() {
	winners := []*models.Winner{
		s.testWinner("w-2", "p-2", "session-1", s.testNow.Add(time.Second)),
		s.testWinner("w-1", "p-1", "session-1", s.testNow),
	}

	err := s.repo.AddWinners(context.Background(), &AddWinnersInput{Winners: winners})
	s.Require().NoError(err)

	out, err := s.repo.ListWinners(context.Background(), &ListWinnersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Winners, 2)

	// Ordered by win time
	s.Equal("w-1", out.Winners[0].ID)
	s.Equal("w-2", out.Winners[1].ID)

	s.Equal("p-1", out.Winners[0].ParticipantID)
	s.Equal("Grand Prize", out.Winners[0].PrizeName)
	s.Equal("session-1", out.Winners[0].DrawSession)
}

func (s *RedisRepositoryTestSuite) TestAddWinnersValidation() {
	err := s.repo.AddWinners(context.Background(), &AddWinnersInput{})
	s.Error(err)

	err = s.repo.AddWinners(context.Background(), &AddWinnersInput{
		Winners: []*models.Winner{{ParticipantID: "p-1", DrawSession: "session-1"}},
	})
	s.Error(err)

	err = s.repo.AddWinners(context.Background(), &AddWinnersInput{
		Winners: []*models.Winner{{ID: "w-1", ParticipantID: "p-1"}},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestListSessionWinners() {
	winners := []*models.Winner{
		s.testWinner("w-1", "p-1", "session-1", s.testNow),
		s.testWinner("w-2", "p-2", "session-1", s.testNow.Add(time.Second)),
		s.testWinner("w-3", "p-3", "session-2", s.testNow.Add(2*time.Second)),
	}

	err := s.repo.AddWinners(context.Background(), &AddWinnersInput{Winners: winners})
	s.Require().NoError(err)

	out, err := s.repo.ListSessionWinners(context.Background(), &ListSessionWinnersInput{
		SessionID: "session-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Winners, 2)

	ids := map[string]bool{}
	for _, w := range out.Winners {
		ids[w.ID] = true
	}
	s.True(ids["w-1"])
	s.True(ids["w-2"])
}

func (s *RedisRepositoryTestSuite) TestListSessionWinnersUnknownSession() {
	out, err := s.repo.ListSessionWinners(context.Background(), &ListSessionWinnersInput{
		SessionID: "never-finalized",
	})
	s.Require().NoError(err)
	s.Empty(out.Winners)
}

func (s *RedisRepositoryTestSuite) TestDeleteWinner() {
	winners := []*models.Winner{
		s.testWinner("w-1", "p-1", "session-1", s.testNow),
		s.testWinner("w-2", "p-2", "session-1", s.testNow.Add(time.Second)),
	}

	err := s.repo.AddWinners(context.Background(), &AddWinnersInput{Winners: winners})
	s.Require().NoError(err)

	err = s.repo.DeleteWinner(context.Background(), &DeleteWinnerInput{WinnerID: "w-1"})
	s.Require().NoError(err)

	out, err := s.repo.ListWinners(context.Background(), &ListWinnersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Winners, 1)
	s.Equal("w-2", out.Winners[0].ID)

	// The session index entry must go too
	sessionOut, err := s.repo.ListSessionWinners(context.Background(), &ListSessionWinnersInput{
		SessionID: "session-1",
	})
	s.Require().NoError(err)
	s.Require().Len(sessionOut.Winners, 1)
	s.Equal("w-2", sessionOut.Winners[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDeleteWinnerNotFound() {
	err := s.repo.DeleteWinner(context.Background(), &DeleteWinnerInput{WinnerID: "missing"})
	s.Require().ErrorIs(err, ErrWinnerNotFound)
}
