package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and removal against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrConflict], with the
//     violated constraint name in [Error.Constraint].
//   - value too long → [ErrInvalidData].
//   - anything else → [ErrUnexpected].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const op = "users.create"
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(usersTable).
		Columns("username", "email", "password").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, newError(op, KindUnexpected, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.wrap(op, err)
	}
	created.PasswordHash = user.PasswordHash

	return created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "users.find_by_id", sq.Eq{"id": id})
}

// FindUserByEmail is the credential lookup used by login: unlike the other
// finders it also reads the password hash. The match ignores case.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "users.find_by_email"
	log := logger.FromContext(ctx)

	query, args, err := selectUsers().
		Column("password").
		Where(equalFold("email", email)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, newError(op, KindUnexpected, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	var u models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.UserID, &u.Username, &u.Email, &u.CreatedAt, &u.UpdatedAt, &u.PasswordHash)
	if err != nil {
		wrapped := r.db.wrap(op, err)
		if KindOf(wrapped) != KindNotFound {
			log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		}
		return models.User{}, wrapped
	}

	return u, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "users.find_by_username", equalFold("username", username))
}

// ListUsers returns every account ordered by creation time, newest first.
// Password hashes are never selected.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "users.list"
	log := logger.FromContext(ctx)

	query, args, err := selectUsers().OrderBy(newestFirst).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, newError(op, KindUnexpected, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
		return nil, r.db.wrap(op, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning row")
			return nil, newError(op, KindUnexpected, fmt.Errorf("%w: %w", ErrScanningRow, err))
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating rows")
		return nil, r.db.wrap(op, fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return users, nil
}

// DeleteUser removes the user with the given id in a single statement and
// returns the removed row. A missing id yields [ErrNotFound]; rows still
// referencing the user yield [ErrReferenced].
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	const op = "users.delete"
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return models.User{}, newError(op, KindUnexpected, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	deleted, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		wrapped := r.db.wrap(op, err)
		if KindOf(wrapped) != KindNotFound {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		}
		return models.User{}, wrapped
	}

	return deleted, nil
}

func (r *userRepository) findOne(ctx context.Context, op string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUsers().Where(where).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Str("op", op).Msg("error building query")
		return models.User{}, newError(op, KindUnexpected, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		wrapped := r.db.wrap(op, err)
		if KindOf(wrapped) != KindNotFound {
			log.Err(err).Str("func", "*userRepository.findOne").Str("op", op).Msg("error finding user")
		}
		return models.User{}, wrapped
	}

	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Username, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
