package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	userColumns = `id, email, password, full_name, phone, role, avatar_url, created_at, updated_at`

	listUsersQuery    = `SELECT ` + userColumns + ` FROM profiles ORDER BY id`
	getUserByIDQuery  = `SELECT ` + userColumns + ` FROM profiles WHERE id = $1`
	getUserByEmailQry = `SELECT ` + userColumns + ` FROM profiles WHERE email = $1`

	insertUserQuery = `
		INSERT INTO profiles (email, password, full_name, phone, role, avatar_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	updateUserQuery = `
		UPDATE profiles
		SET email = $1,
			password = $2,
			full_name = $3,
			phone = $4,
			role = $5,
			avatar_url = $6,
			updated_at = $7
		WHERE id = $8
	`
	deleteUserQuery = `DELETE FROM profiles WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	out := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserByEmailQry, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	if user.Role == "" {
		user.Role = RoleCustomer
	}
	var id int
	err := r.db.QueryRow(
		insertUserQuery,
		user.Email,
		user.Password,
		user.FullName,
		user.Phone,
		user.Role,
		user.AvatarURL,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return User{}, err
	}
	user.ID = id
	return user, nil
}

func (r *PostgresRepository) Update(id int, user User) (User, error) {
	result, err := r.db.Exec(
		updateUserQuery,
		user.Email,
		user.Password,
		user.FullName,
		user.Phone,
		user.Role,
		user.AvatarURL,
		user.UpdatedAt,
		id,
	)
	if err != nil {
		return User{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	result, err := r.db.Exec(deleteUserQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(scanner interface{ Scan(dest ...any) error }) (User, error) {
	u := User{}
	var (
		avatar    sql.NullString
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	if err := scanner.Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FullName,
		&u.Phone,
		&u.Role,
		&avatar,
		&createdAt,
		&updatedAt,
	); err != nil {
		return User{}, err
	}
	if avatar.Valid {
		u.AvatarURL = &avatar.String
	}
	if createdAt.Valid {
		u.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		u.UpdatedAt = updatedAt.String
	}
	return u, nil
}
