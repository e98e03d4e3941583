package node

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/SystemBuilders/ChainList/internal/listservice"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckValidPort(t *testing.T) {
	tests := []struct {
		port string
		ok   bool
	}{
		{"61111", true},
		{"0", true},
		{"65535", true},
		{"65536", false},
		{"-1", false},
		{"port", false},
	}
	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			err := checkValidPort(tt.port)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	log := zerolog.New(os.Stdout).With().Logger().Level(zerolog.Disabled)
	ls := listservice.NewSimpleListService(log)

	_, err := NewServer(ls, *listservice.NewSimpleConfig("127.0.0.1", "70000"))
	assert.Equal(t, ErrInvalidPort, err)

	server, err := NewServer(ls, *listservice.NewSimpleConfig("127.0.0.1", "61111"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:61111", server.Addr)

	ts := httptest.NewServer(server.Handler)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/lists", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var res listservice.CreateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	_, err = listservice.ParseID(res.ListID)
	assert.NoError(t, err)
}

func newTestListService() listservice.ListService {
	log := zerolog.New(os.Stdout).With().Logger().Level(zerolog.Disabled)
	return listservice.NewSimpleListService(log)
}

func TestStartPortInUse(t *testing.T) {
	log := zerolog.Nop()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	errChan := make(chan error, 1)
	go func() {
		errChan <- Start(newTestListService(), *listservice.NewSimpleConfig(host, port), log)
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return on a port already in use")
	}
}

func TestStartInvalidPort(t *testing.T) {
	err := Start(newTestListService(), *listservice.NewSimpleConfig("127.0.0.1", "99999"), zerolog.Nop())
	assert.Equal(t, ErrInvalidPort, err)
}

func TestServeShutsDownOnSignal(t *testing.T) {
	// Reserve a free port, then release it for the server.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	server, err := NewServer(newTestListService(), *listservice.NewSimpleConfig(host, port))
	require.NoError(t, err)

	interrupt := make(chan os.Signal, 1)
	errChan := make(chan error, 1)
	go func() {
		errChan <- serve(server, zerolog.Nop(), interrupt)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Post("http://"+addr+"/lists", "application/json", nil)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusCreated
	}, 5*time.Second, 10*time.Millisecond)

	interrupt <- os.Interrupt

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + 5*time.Second):
		t.Fatal("server did not shut down after the signal")
	}

	_, err = http.Post("http://"+addr+"/lists", "application/json", nil)
	assert.Error(t, err)
}

func TestGracefulShutdownReturnsOnStop(t *testing.T) {
	server := &http.Server{}
	stop := make(chan struct{})
	done := make(chan struct{})

	go gracefulShutdown(server, zerolog.Nop(), make(chan os.Signal), stop, done)
	close(stop)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("gracefulShutdown kept waiting after stop was closed")
	}
}
