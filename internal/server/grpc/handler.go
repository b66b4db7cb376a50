package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/matchvault/matchvault/internal/proto"
	"github.com/matchvault/matchvault/internal/server/matches"
	"github.com/matchvault/matchvault/internal/shared"
)

// toStatus maps sentinel errors onto gRPC status codes. Precondition
// failures are FailedPrecondition so clients can distinguish them from
// genuinely broken requests.
func toStatus(err error) error {
	switch {
	case errors.Is(err, shared.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, shared.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, shared.ErrorNotAuthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, shared.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, shared.ErrorInvalidState),
		errors.Is(err, shared.ErrorAlreadyRevealed),
		errors.Is(err, shared.ErrorTooEarly),
		errors.Is(err, shared.ErrorExpired),
		errors.Is(err, shared.ErrorPaused),
		errors.Is(err, shared.ErrorNothingToWithdraw):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, shared.ErrorInsufficientFee),
		errors.Is(err, shared.ErrorInvalidPartner),
		errors.Is(err, shared.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, shared.ErrorProofInvalid):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, shared.ErrorTransferFailed):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) RegisterPrincipal(ctx context.Context, req *pb.RegisterPrincipalRequest) (*pb.RegisterPrincipalResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.principals.Register(ctx, req.Address, req.Salt, req.Verifier)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "address", result.Address)
	return &pb.RegisterPrincipalResponse{Address: result.Address}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	result, err := s.principals.GetSalt(ctx, req.Address)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.principals.Login(ctx, req.Address, req.VerifierCandidate)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) SubmitProfile(ctx context.Context, req *pb.SubmitProfileRequest) (*pb.SubmitProfileResponse, error) {

	p, err := s.profiles.Submit(ctx, callerPrincipal(ctx), req.Category, req.SubA, req.SubB)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, toStatus(err)
	}

	return &pb.SubmitProfileResponse{
		CategoryHandle: p.CategoryHandle,
		SubAHandle:     p.SubAHandle,
		SubBHandle:     p.SubBHandle,
	}, nil
}

func (s *GRPCServer) SubmitMatch(ctx context.Context, req *pb.SubmitMatchRequest) (*pb.SubmitMatchResponse, error) {

	id, err := s.engine.SubmitMatch(ctx, callerPrincipal(ctx), req.Partner, req.FeePaid)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.SubmitMatchResponse{MatchId: id}, nil
}

func (s *GRPCServer) RequestReveal(ctx context.Context, req *pb.RequestRevealRequest) (*pb.RequestRevealResponse, error) {

	id, err := s.engine.RequestReveal(ctx, req.MatchId, callerPrincipal(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.RequestRevealResponse{RequestId: id}, nil
}

func (s *GRPCServer) ClaimTimeout(ctx context.Context, req *pb.ClaimTimeoutRequest) (*pb.ClaimTimeoutResponse, error) {

	if err := s.engine.ClaimTimeout(ctx, req.MatchId, callerPrincipal(ctx)); err != nil {
		return nil, toStatus(err)
	}

	return &pb.ClaimTimeoutResponse{}, nil
}

func (s *GRPCServer) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {

	amount, err := s.engine.Withdraw(ctx, callerPrincipal(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.WithdrawResponse{Amount: amount}, nil
}

func (s *GRPCServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {

	amount, err := s.engine.Balance(ctx, callerPrincipal(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.GetBalanceResponse{Amount: amount}, nil
}

func (s *GRPCServer) GetMatch(ctx context.Context, req *pb.GetMatchRequest) (*pb.GetMatchResponse, error) {

	m, err := s.engine.GetMatch(ctx, req.MatchId, callerPrincipal(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.GetMatchResponse{Match: matchToProto(m)}, nil
}

func (s *GRPCServer) ForceRefund(ctx context.Context, req *pb.ForceRefundRequest) (*pb.ForceRefundResponse, error) {

	if err := s.engine.ForceRefund(ctx, req.MatchId, callerPrincipal(ctx)); err != nil {
		return nil, toStatus(err)
	}

	return &pb.ForceRefundResponse{}, nil
}

func (s *GRPCServer) SetPaused(ctx context.Context, req *pb.SetPausedRequest) (*pb.SetPausedResponse, error) {

	if err := s.engine.SetPaused(ctx, callerPrincipal(ctx), req.Paused); err != nil {
		return nil, toStatus(err)
	}

	return &pb.SetPausedResponse{}, nil
}

func (s *GRPCServer) WithdrawPlatformFees(ctx context.Context, req *pb.WithdrawPlatformFeesRequest) (*pb.WithdrawPlatformFeesResponse, error) {

	amount, err := s.engine.WithdrawPlatformFees(ctx, callerPrincipal(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.WithdrawPlatformFeesResponse{Amount: amount}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}

func matchToProto(m *matches.Match) *pb.Match {
	return &pb.Match{
		Id:              m.ID,
		Requester:       m.Requester,
		Partner:         m.Partner,
		Revealed:        m.Revealed,
		RevealedScore:   m.RevealedScore,
		FeePaid:         m.FeePaid,
		Status:          string(m.Status),
		CreatedAt:       m.CreatedAt.Unix(),
		TimeoutDeadline: m.TimeoutDeadline.Unix(),
	}
}
