package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"health-predict-backend/internal/converter"
	"health-predict-backend/internal/delivery/dto"
	"health-predict-backend/internal/domain/entity"
	"health-predict-backend/internal/domain/repository"
	"health-predict-backend/pkg/jwt"
	"health-predict-backend/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	// ErrInvalidCredentials is deliberately the same for "no such account"
	// and "wrong password" so responses cannot be used to enumerate emails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	// ErrStoreUnavailable replaces raw store errors on the way out; the
	// underlying cause is logged, never sent to the caller.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	DoctorLogin(ctx context.Context, req *dto.DoctorLoginRequest) (*dto.DoctorAuthResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorRepository
	jwtService   *jwt.JWTService
	storeTimeout time.Duration
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	jwtService *jwt.JWTService,
	storeTimeout time.Duration,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		jwtService:   jwtService,
		storeTimeout: storeTimeout,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	hashed, err := password.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    req.Email,
		Password: hashed,
		FullName: req.FullName,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, ErrStoreUnavailable
	}

	token, err := u.jwtService.Generate(user.ID.String(), user.Email, "")
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, ErrStoreUnavailable
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.Generate(user.ID.String(), user.Email, "")
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    converter.UserToResponse(user),
	}, nil
}

// DoctorLogin authenticates against the doctor directory. When the submitted
// email matches no doctor, a demo fallback kicks in: the password is checked
// against the default doctor's hash, and on a match the caller is logged in
// as the default doctor. Anyone knowing the shared seed password can reach a
// doctor session through an arbitrary email; this is intentional demo
// behavior, kept as-is.
func (u *authUsecase) DoctorLogin(ctx context.Context, req *dto.DoctorLoginRequest) (*dto.DoctorAuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	doctor, err := u.doctorRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find doctor by email: %+v", err)
		return nil, ErrStoreUnavailable
	}

	if doctor == nil {
		defaultDoctor, err := u.doctorRepo.FindDefault(ctx)
		if err != nil {
			u.log.Warnf("Failed to find default doctor: %+v", err)
			return nil, ErrStoreUnavailable
		}
		if defaultDoctor != nil && password.Verify(req.Password, defaultDoctor.Password) {
			doctor = defaultDoctor
		}
	}

	if doctor == nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(req.Password, doctor.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.Generate(strconv.FormatUint(uint64(doctor.ID), 10), doctor.Email, jwt.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	return &dto.DoctorAuthResponse{
		Message: "Doctor login successful",
		Token:   token,
		Doctor:  converter.DoctorToSummary(doctor),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, ErrStoreUnavailable
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks for a PostgreSQL unique constraint violation on
// the named constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
