// Package callback exposes the HTTP webhook the oracle posts decryption
// results to. It is a separate surface from the participant gRPC endpoint
// because the oracle is not a participant and carries no access token; the
// decryption proof is its credential.
package callback

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matchvault/matchvault/internal/logging"
	"github.com/matchvault/matchvault/internal/server/engine"
	"github.com/matchvault/matchvault/internal/shared"
)

// Payload is the callback body posted by the oracle. The proof is
// base64-encoded.
type Payload struct {
	RequestID int64  `json:"request_id" binding:"required"`
	Value     int64  `json:"value"`
	Proof     string `json:"proof" binding:"required"`
}

type Server struct {
	address string
	engine  *engine.Engine
	logger  logging.Logger
}

func NewServer(address string, e *engine.Engine, l logging.Logger) *Server {
	return &Server{
		address: address,
		engine:  e,
		logger:  l.With("module", "callback_server"),
	}
}

// Router builds the gin handler. Split out of Run so tests can drive it
// through httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/v1/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/v1/oracle/callback", s.handleCallback)

	return r
}

func (s *Server) handleCallback(c *gin.Context) {

	var p Payload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	proof, err := base64.StdEncoding.DecodeString(p.Proof)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed proof"})
		return
	}

	if err := s.engine.Resolve(c.Request.Context(), p.RequestID, p.Value, proof); err != nil {
		s.logger.Warn(c.Request.Context(), "callback rejected",
			"request_id", p.RequestID, "error", err.Error())
		c.JSON(callbackStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}

func callbackStatus(err error) int {
	switch {
	case errors.Is(err, shared.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrorProofInvalid):
		return http.StatusForbidden
	case errors.Is(err, shared.ErrorInvalidState), errors.Is(err, shared.ErrorPaused):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping callback server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "callback server shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting callback server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
