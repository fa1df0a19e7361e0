package shuffle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

type SamplerTestSuite struct {
	suite.Suite
	sampler *Sampler
	pool    []*models.Participant
}

func (s *SamplerTestSuite) SetupTest() {
	// Fixed seed so failures reproduce
	s.sampler = New(&Config{Seed: 42})

	s.pool = make([]*models.Participant, 0, 20)
	for i := 0; i < 20; i++ {
		s.pool = append(s.pool, &models.Participant{
			ID:   fmt.Sprintf("participant-%d", i),
			Name: fmt.Sprintf("Participant %d", i),
		})
	}
}

func TestSamplerTestSuite(t *testing.T) {
	suite.Run(t, new(SamplerTestSuite))
}

func (s *SamplerTestSuite) TestPickReturnsRequestedCount() {
	picked := s.sampler.Pick(s.pool, 5)
	s.Len(picked, 5)
}

func (s *SamplerTestSuite) TestPickCapsAtPoolSize() {
	picked := s.sampler.Pick(s.pool, 100)
	s.Len(picked, len(s.pool))
}

func (s *SamplerTestSuite) TestPickNeverRepeatsAnIdentity() {
	for trial := 0; trial < 50; trial++ {
		picked := s.sampler.Pick(s.pool, 10)

		seen := make(map[string]bool, len(picked))
		for _, p := range picked {
			s.False(seen[p.ID], "identity %s picked twice", p.ID)
			seen[p.ID] = true
		}
	}
}

func (s *SamplerTestSuite) TestPickLeavesInputUnmodified() {
	original := make([]*models.Participant, len(s.pool))
	copy(original, s.pool)

	s.sampler.Pick(s.pool, 10)

	for i := range original {
		s.Same(original[i], s.pool[i])
	}
}

func (s *SamplerTestSuite) TestPickEmptyPool() {
	picked := s.sampler.Pick(nil, 3)
	s.Empty(picked)
}

func (s *SamplerTestSuite) TestPickZeroCount() {
	picked := s.sampler.Pick(s.pool, 0)
	s.Empty(picked)
}

func (s *SamplerTestSuite) TestPickIsSeedDeterministic() {
	a := New(&Config{Seed: 7}).Pick(s.pool, 5)
	b := New(&Config{Seed: 7}).Pick(s.pool, 5)

	s.Require().Len(b, len(a))
	for i := range a {
		s.Equal(a[i].ID, b[i].ID)
	}
}

func (s *SamplerTestSuite) TestPickNameFromPool() {
	name := s.sampler.PickName(s.pool)

	found := false
	for _, p := range s.pool {
		if p.Name == name {
			found = true
			break
		}
	}
	s.True(found, "rolling name %q not in pool", name)
}

func (s *SamplerTestSuite) TestPickNameEmptyPool() {
	s.Equal("", s.sampler.PickName(nil))
}
