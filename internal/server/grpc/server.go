// Package grpc exposes the participant-facing MatchVault service. Handlers
// translate sentinel errors into gRPC status codes; the access-token
// interceptor resolves the calling principal for authenticated methods.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/matchvault/matchvault/internal/logging"
	pb "github.com/matchvault/matchvault/internal/proto"
	"github.com/matchvault/matchvault/internal/server/engine"
	"github.com/matchvault/matchvault/internal/server/principals"
	"github.com/matchvault/matchvault/internal/server/profiles"
)

type GRPCServer struct {
	pb.UnimplementedMatchVaultServiceServer
	address    string
	principals *principals.Service
	profiles   *profiles.Service
	engine     *engine.Engine
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, ps *principals.Service, prs *profiles.Service, e *engine.Engine, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		principals: ps,
		profiles:   prs,
		engine:     e,
		jwtSecret:  []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterMatchVaultServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
