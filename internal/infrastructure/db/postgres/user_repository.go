package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/userhub/accounts-api/internal/api/metrics"
	"github.com/userhub/accounts-api/internal/core/domain"
	"github.com/userhub/accounts-api/internal/core/ports"
)

// userColumns fixes the column order shared by every statement and scanUser.
const userColumns = "id, firstname, lastname, middlename, fullname, username, email, " +
	"account_status, date_of_birth, gender, avatar, phone_number, password, " +
	"created_at, updated_at, otp_id, last_available_at"

// Optional text fields are coerced through NULLIF so an absent value is
// stored as NULL, not as an empty string. The conflict target makes a
// colliding email a silent no-op: no row comes back and Create reports
// domain.ErrEmailTaken instead of a constraint violation.
const insertUser = `
INSERT INTO user_information (
    id, gender, firstname, lastname, middlename,
    fullname, username, email, date_of_birth, avatar, phone_number,
    password
) VALUES (
    $1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''),
    NULLIF($6, ''), NULLIF($7, ''), $8, $9, NULLIF($10, ''), NULLIF($11, ''),
    $12
) ON CONFLICT (email) DO NOTHING
RETURNING ` + userColumns

// UserRepository binds the user table shape to the persistence contract.
type UserRepository struct {
	pool *pgxpool.Pool
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a new row with a server-generated identity. The attributes
// payload carries an already-hashed password; cleartext never reaches this
// layer.
func (r *UserRepository) Create(ctx context.Context, attrs domain.UserAttributes) (*domain.User, error) {
	defer observe("create", time.Now())

	gender := domain.GenderUnspecified
	if attrs.Gender != nil {
		gender = *attrs.Gender
	}

	row := r.pool.QueryRow(ctx, insertUser,
		uuid.New(),
		string(gender),
		orEmpty(attrs.Firstname),
		orEmpty(attrs.Lastname),
		orEmpty(attrs.Middlename),
		orEmpty(attrs.Fullname),
		orEmpty(attrs.Username),
		strings.TrimSpace(orEmpty(attrs.Email)),
		attrs.DateOfBirth,
		orEmpty(attrs.Avatar),
		orEmpty(attrs.PhoneNumber),
		orEmpty(attrs.Password),
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmailTaken
		}
		return nil, storageErr("insert user", err)
	}
	return user, nil
}

// FindByPK looks up exactly one row by primary key.
func (r *UserRepository) FindByPK(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	defer observe("find_by_pk", time.Now())

	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM user_information WHERE id = $1", id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("find user by pk", err)
	}
	return user, nil
}

// Find looks up exactly one row matching the conjunction of the predicate's
// field=value pairs. Keys outside the column allow-list fail before any
// statement is issued; values are always bound, never spliced into the SQL.
func (r *UserRepository) Find(ctx context.Context, predicate map[string]any) (*domain.User, error) {
	sql, args, err := buildFindQuery(predicate)
	if err != nil {
		return nil, err
	}

	defer observe("find", time.Now())

	user, err := scanUser(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("find user", err)
	}
	return user, nil
}

// scanUser reads one row in userColumns order, coercing NULLs back to the
// domain's zero values and parsing the enum columns.
func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u                                                 domain.User
		firstname, lastname, middlename, fullname         *string
		username, email, avatar, phoneNumber, password    *string
		accountStatus, gender                             *string
		dateOfBirth, createdAt, updatedAt, lastAvailable  *time.Time
		otpID                                             *uuid.UUID
	)

	if err := row.Scan(
		&u.ID, &firstname, &lastname, &middlename, &fullname, &username, &email,
		&accountStatus, &dateOfBirth, &gender, &avatar, &phoneNumber, &password,
		&createdAt, &updatedAt, &otpID, &lastAvailable,
	); err != nil {
		return nil, err
	}

	u.Firstname = orEmpty(firstname)
	u.Lastname = orEmpty(lastname)
	u.Middlename = orEmpty(middlename)
	u.Fullname = orEmpty(fullname)
	u.Username = orEmpty(username)
	u.Email = orEmpty(email)
	u.Avatar = orEmpty(avatar)
	u.PhoneNumber = orEmpty(phoneNumber)
	u.PasswordHash = orEmpty(password)
	u.DateOfBirth = dateOfBirth
	u.CreatedAt = createdAt
	u.UpdatedAt = updatedAt
	u.LastAvailableAt = lastAvailable
	u.OTPID = otpID

	if accountStatus != nil {
		status, err := domain.ParseAccountStatus(*accountStatus)
		if err != nil {
			return nil, err
		}
		u.AccountStatus = status
	}

	parsedGender, err := domain.ParseGender(orEmpty(gender))
	if err != nil {
		return nil, err
	}
	u.Gender = parsedGender

	return &u, nil
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func observe(op string, start time.Time) {
	metrics.StorageOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
}
