package principals

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/matchvault/matchvault/internal/server/auth"
	"github.com/matchvault/matchvault/internal/server/config"
	"github.com/matchvault/matchvault/internal/server/refreshtokens"
	"github.com/matchvault/matchvault/internal/shared"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type Service struct {
	repo                         Repository
	refreshTokenRepo             refreshtokens.Repository
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewService(repo Repository, refreshTokenRepo refreshtokens.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                         repo,
		refreshTokenRepo:             refreshTokenRepo,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

func (s *Service) Register(ctx context.Context, address string, salt, verifier []byte) (*Principal, error) {

	if address == "" {
		return nil, shared.ErrorValidation
	}

	p := &Principal{
		Address:  address,
		Salt:     salt,
		Verifier: verifier,
	}

	p, err := s.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, shared.ErrorAlreadyExists) {
			return nil, shared.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating principal: %v", err)
	}

	return p, nil
}

func (s *Service) getRandomSalt() []byte {
	return shared.GenerateRandByteArray(32)
}

// GetSalt returns the principal's registered salt. Unknown addresses get a
// random salt so the endpoint does not leak which principals exist.
func (s *Service) GetSalt(ctx context.Context, address string) ([]byte, error) {

	p, err := s.repo.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return s.getRandomSalt(), nil
		}
		return nil, shared.ErrorInternal
	}

	return p.Salt, nil
}

func (s *Service) generateAccessToken(p *Principal) (string, error) {
	return auth.GenerateToken(p.Address, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *Service) generateRefreshToken() (string, error) {
	return shared.MakeRandHexString(32)
}

func (s *Service) checkVerifier(verifier []byte, verifierCandidate []byte) bool {
	return subtle.ConstantTimeCompare(verifier, verifierCandidate) == 1
}

func (s *Service) Login(ctx context.Context, address string, verifierCandidate []byte) (*TokenPair, error) {

	p, err := s.repo.GetByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorUnauthorized
		}
		return nil, shared.ErrorInternal
	}

	if !s.checkVerifier(p.Verifier, verifierCandidate) {
		return nil, shared.ErrorUnauthorized
	}

	accessToken, err := s.generateAccessToken(p)
	if err != nil {
		return nil, shared.ErrorInternal
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, shared.ErrorInternal
	}

	err = s.refreshTokenRepo.Create(ctx, p.Address, refreshToken, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, shared.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
