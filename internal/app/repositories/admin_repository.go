package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

const adminUsernameConstraint = "admins_username_key"

var adminColumns = []string{"id", "username", "password", "full_name", "email", "created_at", "updated_at"}

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	admin := &models.Admin{}
	err := row.Scan(&admin.ID, &admin.Username, &admin.Password, &admin.FullName, &admin.Email, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Create inserts a new admin and fills in its generated fields
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if err := validation.Struct(admin); err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("admins").
		Columns("username", "password", "full_name", "email").
		Values(admin.Username, admin.Password, admin.FullName, admin.Email).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admin SQL")
		return fmt.Errorf("failed to build create admin query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, adminUsernameConstraint) {
			return apperrors.ErrUsernameTaken
		}
		if dberrors.IsNotNullViolation(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrMissingAttrs, err)
		}
		logger.Error().Err(err).Str("username", admin.Username).Msg("Error executing create admin query")
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByUsername retrieves an admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

func (r *AdminRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns...).
		From("admins").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin SQL")
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Interface("where", where).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin: %w", err)
	}
	return admin, nil
}

// Update applies the present fields of update in a single statement
func (r *AdminRepository) Update(ctx context.Context, id int64, update models.AdminUpdate) (*models.Admin, error) {
	if update.IsEmpty() {
		return nil, apperrors.ErrNothingToChange
	}

	sql, args, err := r.sb.Update("admins").
		SetMap(update.Columns()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, username, password, full_name, email, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update admin SQL")
		return nil, fmt.Errorf("failed to build update admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, adminUsernameConstraint) {
			return nil, apperrors.ErrUsernameTaken
		}
		logger.Error().Err(err).Int64("adminID", id).Msg("Error executing update admin query")
		return nil, fmt.Errorf("error updating admin: %w", err)
	}
	return admin, nil
}
