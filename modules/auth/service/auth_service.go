package service

import (
	"context"
	"encoding/json"
	"time"

	"campus-recommender/core/cache"
	"campus-recommender/core/config"
	"campus-recommender/core/constants"
	"campus-recommender/core/errors"
	"campus-recommender/core/logger"
	"campus-recommender/core/utils"
	"campus-recommender/modules/auth/dto"
	"campus-recommender/modules/auth/entity"
	"campus-recommender/modules/auth/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// AuthService handles registration, login and token revocation
type AuthService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GoogleAuthURL(ctx context.Context) (string, *errors.AppError)
	GoogleCallback(ctx context.Context, req *dto.GoogleCallbackRequest) (*dto.TokenResponse, *errors.AppError)
}

func NewAuthService(repo repository.UserRepositoryInterface, cache cache.Cache) AuthServiceInterface {
	return &AuthService{
		repo:  repo,
		cache: cache,
	}
}

// Register creates a new account with a bcrypt password hash
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError) {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check email", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Email already registered", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
	}

	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create user", err)
	}

	return dto.ToUserResponse(created), nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil || !utils.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Logout blacklists the token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "Invalid token", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:BlacklistToken", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke token", err)
	}

	return nil
}

func (s *AuthService) googleOAuthConfig() *oauth2.Config {
	cfg := config.Get()
	return &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleAuthURL creates a state-protected consent URL
func (s *AuthService) GoogleAuthURL(ctx context.Context) (string, *errors.AppError) {
	state := utils.GenerateRandomString(32)
	if err := s.cache.SetOAuthState(ctx, state, 10*time.Minute); err != nil {
		logger.Error("AuthService:GoogleAuthURL:SetOAuthState", "error", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to store OAuth state", err)
	}

	return s.googleOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// GoogleCallback exchanges the code, fetches the Google profile and
// signs the user in, creating a student account on first sign-in
func (s *AuthService) GoogleCallback(ctx context.Context, req *dto.GoogleCallbackRequest) (*dto.TokenResponse, *errors.AppError) {
	ok, err := s.cache.ConsumeOAuthState(ctx, req.State)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify OAuth state", err)
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired OAuth state", nil)
	}

	oauthCfg := s.googleOAuthConfig()
	token, err := oauthCfg.Exchange(ctx, req.Code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange", "error", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Failed to exchange authorization code", err)
	}

	resp, err := oauthCfg.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:UserInfo", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch Google profile", err)
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Invalid Google profile response", err)
	}

	user, err := s.repo.GetUserByEmail(ctx, info.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		user, err = s.repo.CreateUser(ctx, &entity.User{
			Name:  info.Name,
			Email: info.Email,
			Role:  constants.RoleStudent,
		})
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create user", err)
		}
	}

	accessToken, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.TokenResponse{AccessToken: accessToken, TokenType: "bearer"}, nil
}
