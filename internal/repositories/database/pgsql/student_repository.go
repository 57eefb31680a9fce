package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/policyzen/policyzen_app/internal/apperrors"
	"github.com/policyzen/policyzen_app/internal/core/domain"
	portsrepo "github.com/policyzen/policyzen_app/internal/core/ports/repositories"
	"github.com/policyzen/policyzen_app/internal/models"
	"github.com/policyzen/policyzen_app/internal/utils/mapping"
)

const studentColumns = `student_id, company_id, name, email, student_code, sum_insured, date_of_joining, created_at, created_by, last_updated_at, last_updated_by`

type PgxStudentRepository struct {
	BaseRepository
}

func newPgxStudentRepository(pool *pgxpool.Pool) portsrepo.StudentRepositoryFacade {
	return &PgxStudentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StudentRepositoryFacade = (*PgxStudentRepository)(nil)

func (r *PgxStudentRepository) SaveStudent(ctx context.Context, student domain.Student) error {
	m := mapping.ToModelStudent(student)
	query := `
		INSERT INTO students (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StudentID,
		m.CompanyID,
		m.Name,
		m.Email,
		m.StudentCode,
		m.SumInsured,
		m.DateOfJoining,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save student "+student.StudentID, err)
	}
	return nil
}

func (r *PgxStudentRepository) UpdateStudent(ctx context.Context, student domain.Student) error {
	m := mapping.ToModelStudent(student)
	query := `
		UPDATE students
		SET name = $2,
		    email = $3,
		    student_code = $4,
		    sum_insured = $5,
		    date_of_joining = $6,
		    last_updated_at = $7,
		    last_updated_by = $8
		WHERE student_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.StudentID,
		m.Name,
		m.Email,
		m.StudentCode,
		m.SumInsured,
		m.DateOfJoining,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update student "+student.StudentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStudentRepository) DeleteStudent(ctx context.Context, studentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1;`, studentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete student "+studentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStudentRepository) FindStudentByID(ctx context.Context, studentID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1;`
	var m models.Student
	err := r.Pool.QueryRow(ctx, query, studentID).Scan(
		&m.StudentID,
		&m.CompanyID,
		&m.Name,
		&m.Email,
		&m.StudentCode,
		&m.SumInsured,
		&m.DateOfJoining,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find student "+studentID, err)
	}
	student := mapping.ToDomainStudent(m)
	return &student, nil
}

func (r *PgxStudentRepository) FindStudentsByIDs(ctx context.Context, studentIDs []string) (map[string]domain.Student, error) {
	if len(studentIDs) == 0 {
		return map[string]domain.Student{}, nil
	}
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, studentIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query students by ids", err)
	}
	defer rows.Close()

	students := make(map[string]domain.Student, len(studentIDs))
	for rows.Next() {
		m, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students[m.StudentID] = mapping.ToDomainStudent(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating student rows", err)
	}
	return students, nil
}

func (r *PgxStudentRepository) ListStudents(ctx context.Context, companyID string, limit int, offset int) ([]domain.Student, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE company_id = $1
		ORDER BY name, student_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query students for company "+companyID, err)
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		m, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, mapping.ToDomainStudent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating student rows", err)
	}
	return students, nil
}

func scanStudent(rows pgx.Rows) (models.Student, error) {
	var m models.Student
	err := rows.Scan(
		&m.StudentID,
		&m.CompanyID,
		&m.Name,
		&m.Email,
		&m.StudentCode,
		&m.SumInsured,
		&m.DateOfJoining,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Student{}, apperrors.NewAppError(500, "failed to scan student row", err)
	}
	return m, nil
}
