package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// RevenueRow é um agendamento confirmado com o preço atual do serviço.
type RevenueRow struct {
	AppointmentID uint      `db:"appointment_id"`
	Date          time.Time `db:"date"`
	ServiceID     uint      `db:"service_id"`
	ServiceName   string    `db:"service_name"`
	Price         float64   `db:"price"`
}

type Repository interface {
	ConfirmedRevenue(ctx context.Context, since time.Time) ([]RevenueRow, error)
}

type SQLRepository struct {
	db *sqlx.DB
}

var _ Repository = (*SQLRepository)(nil)

// Open abre uma conexão própria (lib/pq) só para leitura de relatórios.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("reports: connect: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

const confirmedRevenueQuery = `
SELECT a.id                                  AS appointment_id,
       a.date                                AS date,
       a.service_id                          AS service_id,
       COALESCE(s.name, 'Unknown Service')   AS service_name,
       COALESCE(s.price, 0)::float8          AS price
  FROM appointments a
  LEFT JOIN services s ON s.id = a.service_id
 WHERE a.status = 'confirmed'
   AND a.date >= $1
 ORDER BY a.date ASC`

func (r *SQLRepository) ConfirmedRevenue(ctx context.Context, since time.Time) ([]RevenueRow, error) {
	var rows []RevenueRow
	if err := r.db.SelectContext(ctx, &rows, confirmedRevenueQuery, since); err != nil {
		return nil, fmt.Errorf("reports: confirmed revenue: %w", err)
	}
	return rows, nil
}
