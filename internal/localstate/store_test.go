package localstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/stagedraw/internal/models"
)

type StoreTestSuite struct {
	suite.Suite
	dir   string
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.dir = s.T().TempDir()

	store, err := New(&Config{
		Dir:  s.dir,
		Role: models.RolePrimary,
	})
	s.Require().NoError(err)
	s.store = store
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Role: models.RolePrimary})
	s.Error(err)

	_, err = New(&Config{Dir: s.dir})
	s.Error(err)
}

func (s *StoreTestSuite) TestFreshStoreHasNothingProcessed() {
	s.False(s.store.IsProcessed("session-1"))
}

func (s *StoreTestSuite) TestMarkProcessed() {
	s.Require().NoError(s.store.MarkProcessed("session-1"))

	s.True(s.store.IsProcessed("session-1"))
	s.False(s.store.IsProcessed("session-2"))
}

func (s *StoreTestSuite) TestTrackSessionClearsProcessedFlag() {
	s.Require().NoError(s.store.MarkProcessed("session-1"))
	s.Require().NoError(s.store.TrackSession("session-2"))

	s.False(s.store.IsProcessed("session-1"))
	s.False(s.store.IsProcessed("session-2"))
}

func (s *StoreTestSuite) TestStateSurvivesReload() {
	s.Require().NoError(s.store.MarkProcessed("session-1"))

	reloaded, err := New(&Config{
		Dir:  s.dir,
		Role: models.RolePrimary,
	})
	s.Require().NoError(err)

	s.True(reloaded.IsProcessed("session-1"))
}

func (s *StoreTestSuite) TestRolesDoNotShareState() {
	s.Require().NoError(s.store.MarkProcessed("session-1"))

	vip, err := New(&Config{
		Dir:  s.dir,
		Role: models.RoleVIP,
	})
	s.Require().NoError(err)

	s.False(vip.IsProcessed("session-1"))
}

func (s *StoreTestSuite) TestCorruptFileStartsFresh() {
	path := filepath.Join(s.dir, "controller-primary.json")
	s.Require().NoError(os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := New(&Config{
		Dir:  s.dir,
		Role: models.RolePrimary,
	})
	s.Require().NoError(err)

	s.False(store.IsProcessed("session-1"))
}
