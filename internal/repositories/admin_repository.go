package repositories

import (
	"database/sql"

	"doctorkays/internal/models"
)

type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByID(id int) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	Update(admin *models.Admin) error
}

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) Create(admin *models.Admin) error {
	const q = `
		INSERT INTO admins (first_name, last_name, email, contact, address1, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		admin.FirstName,
		admin.LastName,
		admin.Email,
		admin.Contact,
		admin.Address1,
		admin.PasswordHash,
	).Scan(&admin.ID, &admin.CreatedAt)
}

func (r *adminRepository) GetByID(id int) (*models.Admin, error) {
	const q = `
		SELECT id, first_name, last_name, email,
		       COALESCE(contact,''), COALESCE(address1,''),
		       password_hash, created_at
		FROM admins
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, id))
}

func (r *adminRepository) GetByEmail(email string) (*models.Admin, error) {
	const q = `
		SELECT id, first_name, last_name, email,
		       COALESCE(contact,''), COALESCE(address1,''),
		       password_hash, created_at
		FROM admins
		WHERE email = $1
	`
	return r.scanOne(r.DB.QueryRow(q, email))
}

func (r *adminRepository) scanOne(row *sql.Row) (*models.Admin, error) {
	a := &models.Admin{}
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email,
		&a.Contact, &a.Address1,
		&a.PasswordHash, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *adminRepository) Update(admin *models.Admin) error {
	const q = `
		UPDATE admins
		SET first_name=$1, last_name=$2, email=$3,
		    contact=$4, address1=$5, password_hash=$6
		WHERE id=$7
	`
	_, err := r.DB.Exec(q,
		admin.FirstName,
		admin.LastName,
		admin.Email,
		admin.Contact,
		admin.Address1,
		admin.PasswordHash,
		admin.ID,
	)
	return err
}
