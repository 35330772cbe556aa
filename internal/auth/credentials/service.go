package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Tharusha999/isdn-sub001/internal/auth"
	"github.com/Tharusha999/isdn-sub001/internal/db"
	"github.com/Tharusha999/isdn-sub001/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrServiceUnavailable = errors.New("identity store unavailable")
)

const uniqueViolation = "23505"

// Service is the credential gateway: it turns a (username, password)
// pair, plus optional registration fields, into a validated Identity.
// It holds no state between calls.
type Service struct {
	db *db.DB
}

func NewService(db *db.DB) *Service {
	return &Service{db: db}
}

// Authenticate looks the username up in the operator table first and
// falls through to the customer table. The two tables are disjoint;
// an operator row always carries an explicit role, a customer row is
// always a customer.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (auth.Identity, error) {

	var (
		id           uuid.UUID
		identity     auth.Identity
		roleTag      string
		passwordHash string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, full_name, role, password_hash
		FROM operators
		WHERE LOWER(username) = LOWER($1)
	`, username).Scan(
		&id,
		&identity.Username,
		&identity.Email,
		&identity.FullName,
		&roleTag,
		&passwordHash,
	)

	if err == sql.ErrNoRows {
		roleTag = string(auth.RoleCustomer)
		err = s.db.QueryRowContext(ctx, `
			SELECT id, username, email, full_name, password_hash
			FROM customers
			WHERE LOWER(username) = LOWER($1)
		`, username).Scan(
			&id,
			&identity.Username,
			&identity.Email,
			&identity.FullName,
			&passwordHash,
		)
	}

	if err == sql.ErrNoRows {
		// hide whether the account exists
		return auth.Identity{}, ErrInvalidCredentials
	}

	if err != nil {
		return auth.Identity{}, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if err := VerifyPassword(passwordHash, password); err != nil {
		return auth.Identity{}, ErrInvalidCredentials
	}

	identity.ID = id.String()
	identity.Role, _ = auth.ParseRole(roleTag)

	s.recordActivity(ctx, identity.Username, "login",
		"signed in as "+string(identity.Role))

	return identity, nil
}

// Register creates a new customer account. Role is always customer;
// operator accounts are provisioned out of band. Retrying after a
// partial failure is guarded only by the store's uniqueness
// constraint, surfaced as ErrDuplicateUsername.
func (s *Service) Register(
	ctx context.Context,
	username string,
	password string,
	fullName string,
	email string,
) (auth.Identity, error) {

	hash, err := HashPassword(password)
	if err != nil {
		return auth.Identity{}, err
	}

	identity := auth.Identity{
		Username: username,
		Email:    email,
		FullName: fullName,
		Role:     auth.RoleCustomer,
	}

	var id uuid.UUID
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO customers (username, password_hash, full_name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, username, hash, fullName, email).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return auth.Identity{}, ErrDuplicateUsername
		}
		return auth.Identity{}, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	identity.ID = id.String()

	s.recordActivity(ctx, identity.Username, "register", "customer account created")

	return identity, nil
}

// recordActivity appends to the activity feed. Best-effort: a feed
// write must never fail an authentication that already succeeded.
func (s *Service) recordActivity(ctx context.Context, actor, action, detail string) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity_log (actor, action, detail)
		VALUES ($1, $2, $3)
	`, actor, action, detail)

	if err != nil {
		logger.Warn("activity log write failed", map[string]any{
			"actor":  actor,
			"action": action,
			"error":  err.Error(),
		})
	}
}
