package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"codequest/internal/database"
	"codequest/internal/domain/skill"
	"codequest/internal/domain/user"
)

const userColumns = `id, username, email, name, password_hash, bio, skills, level, xp, created_at, updated_at`

// UserRepository persists user records in the users table. The email unique
// constraint plus the single-statement upsert keeps the id and email keys
// consistent without any explicit locking.
type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) Put(ctx context.Context, u user.User) error {
	skills, err := marshalSkills(u.Skills)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
INSERT INTO users (id, username, email, name, password_hash, bio, skills, level, xp, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
	username = EXCLUDED.username,
	email = EXCLUDED.email,
	name = EXCLUDED.name,
	password_hash = EXCLUDED.password_hash,
	bio = EXCLUDED.bio,
	skills = EXCLUDED.skills,
	level = EXCLUDED.level,
	xp = EXCLUDED.xp,
	updated_at = EXCLUDED.updated_at`,
		u.ID, u.Username, u.Email, u.Name, u.PasswordHash, u.Bio, skills, u.Level, u.XP, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	var skillsRaw []byte
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.Name, &u.PasswordHash,
		&u.Bio, &skillsRaw, &u.Level, &u.XP, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	if len(skillsRaw) > 0 {
		if err := json.Unmarshal(skillsRaw, &u.Skills); err != nil {
			return user.User{}, err
		}
	}
	return u, nil
}

func marshalSkills(skills []skill.Skill) ([]byte, error) {
	if skills == nil {
		skills = []skill.Skill{}
	}
	return json.Marshal(skills)
}

var _ user.Repository = (*UserRepository)(nil)
