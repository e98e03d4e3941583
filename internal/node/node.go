package node

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SystemBuilders/ChainList/internal/listservice"
	"github.com/SystemBuilders/ChainList/internal/routing"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Error provides constant error strings to the driver functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
const (
	ErrInvalidPort = Error("port number must be between 0 and 65535")
)

const shutdownTimeout = 10 * time.Second

// NewServer builds the http server for the list service on the
// configured address.
func NewServer(ls listservice.ListService, scfg listservice.SimpleConfig) (*http.Server, error) {
	if err := checkValidPort(scfg.Port()); err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	router = routing.SetupRouting(ls, router)

	return &http.Server{
		Handler: router,
		Addr:    scfg.IP() + ":" + scfg.Port(),
	}, nil
}

// Start begins the node's operation as a http server. It blocks until
// the server fails or a ^C signal has shut it down.
func Start(ls listservice.ListService, scfg listservice.SimpleConfig, log zerolog.Logger) error {
	server, err := NewServer(ls, scfg)
	if err != nil {
		return err
	}

	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interruptChan)

	return serve(server, log, interruptChan)
}

// serve runs the server until it fails or a signal arrives on interrupt.
// The shutdown goroutine has always returned by the time serve does.
func serve(server *http.Server, log zerolog.Logger, interrupt <-chan os.Signal) error {
	stop := make(chan struct{})
	done := make(chan struct{})
	go gracefulShutdown(server, log, interrupt, stop, done)

	log.Info().Str("addr", server.Addr).Msg("starting server")
	err := server.ListenAndServe()
	close(stop)
	<-done
	if err != http.ErrServerClosed {
		return err
	}
	return nil
}

// gracefulShutdown shuts down the server on getting a ^C signal. It
// returns without touching the server once stop is closed.
func gracefulShutdown(server *http.Server, log zerolog.Logger, interrupt <-chan os.Signal, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	// Block until we receive our signal.
	select {
	case <-interrupt:
	case <-stop:
		return
	}

	// Create a deadline to wait for currently serving items.
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("shutting down")
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return err
	}
	if portInt < 0 || portInt > 65535 {
		return ErrInvalidPort
	}
	return nil
}
