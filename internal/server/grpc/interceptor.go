package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/matchvault/matchvault/internal/proto"
	"github.com/matchvault/matchvault/internal/server/auth"
)

type ctxKey string

const principalKey ctxKey = "principal"

// openMethods can be called without an access token.
var openMethods = map[string]bool{
	pb.MatchVaultService_RegisterPrincipal_FullMethodName: true,
	pb.MatchVaultService_GetSalt_FullMethodName:           true,
	pb.MatchVaultService_Login_FullMethodName:             true,
	pb.MatchVaultService_Ping_FullMethodName:              true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !openMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get("access_token")
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		principal, err := auth.GetPrincipalFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, principalKey, principal)
	}

	return handler(ctx, req)
}

// callerPrincipal returns the principal placed on the context by the
// interceptor, or "" for unauthenticated calls.
func callerPrincipal(ctx context.Context) string {
	principal, _ := ctx.Value(principalKey).(string)
	return principal
}
