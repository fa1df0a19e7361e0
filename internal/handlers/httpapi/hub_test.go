package httpapi

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/stagedraw/internal/display"
)

type HubTestSuite struct {
	suite.Suite
	hub    *Hub
	server *httptest.Server
}

func (s *HubTestSuite) SetupTest() {
	s.hub = NewHub()
	s.server = httptest.NewServer(s.hub)
}

func (s *HubTestSuite) TearDownTest() {
	s.server.Close()
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

func (s *HubTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

func (s *HubTestSuite) clientCount() int {
	s.hub.mu.RLock()
	defer s.hub.mu.RUnlock()
	return len(s.hub.clients)
}

func (s *HubTestSuite) TestBroadcastDeliversToConnectedDisplay() {
	conn := s.dial()
	defer conn.Close()

	s.Require().Eventually(func() bool { return s.clientCount() == 1 },
		time.Second, 10*time.Millisecond)

	s.hub.Broadcast(display.View{State: display.ViewStateSpinning, RollingName: "Alice Zhang"})

	var view display.View
	s.Require().NoError(conn.ReadJSON(&view))
	s.Equal(display.ViewStateSpinning, view.State)
	s.Equal("Alice Zhang", view.RollingName)
}

func (s *HubTestSuite) TestBroadcastWhileDisplaysDisconnect() {
	conns := make([]*websocket.Conn, 0, 4)
	for i := 0; i < 4; i++ {
		conns = append(conns, s.dial())
	}

	s.Require().Eventually(func() bool { return s.clientCount() == 4 },
		time.Second, 10*time.Millisecond)

	// Hammer broadcasts while every display drops mid-stream; a send
	// racing a disconnect must never hit a closed channel
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			s.hub.Broadcast(display.View{
				State:       display.ViewStateSpinning,
				RollingName: fmt.Sprintf("name-%d", i),
			})
		}
	}()

	var wg sync.WaitGroup
	for _, conn := range conns {
		wg.Add(1)
		go func(conn *websocket.Conn) {
			defer wg.Done()
			conn.Close()
		}(conn)
	}
	wg.Wait()
	<-done

	// The read loops notice the closed connections and unregister
	s.Require().Eventually(func() bool { return s.clientCount() == 0 },
		2*time.Second, 10*time.Millisecond)

	s.hub.Broadcast(display.View{State: display.ViewStateReady})
}

func (s *HubTestSuite) TestDisconnectedDisplayIsDropped() {
	conn := s.dial()

	s.Require().Eventually(func() bool { return s.clientCount() == 1 },
		time.Second, 10*time.Millisecond)

	s.Require().NoError(conn.Close())

	s.Require().Eventually(func() bool { return s.clientCount() == 0 },
		2*time.Second, 10*time.Millisecond)

	// Broadcasting to an empty hub stays a no-op
	s.hub.Broadcast(display.View{State: display.ViewStateReady})
	s.Equal(0, s.clientCount())
}
