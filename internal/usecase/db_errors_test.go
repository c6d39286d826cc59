package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"postgres match", &pgconn.PgError{Code: "23505", ConstraintName: "idx_accounts_email"}, "email", true},
		{"postgres other constraint", &pgconn.PgError{Code: "23505", ConstraintName: "idx_professionals_account_id"}, "email", false},
		{"postgres fk code", &pgconn.PgError{Code: "23503", ConstraintName: "idx_accounts_email"}, "email", false},
		{"postgres wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uni_accounts_email"}), "EMAIL", true},
		{"mysql match", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.c' for key 'accounts.idx_accounts_email'"}, "email", true},
		{"mysql other number", &mysql.MySQLError{Number: 1452, Message: "email"}, "email", false},
		{"gorm translated", gorm.ErrDuplicatedKey, "email", true},
		{"any constraint", &pgconn.PgError{Code: "23505", ConstraintName: "whatever"}, "", true},
		{"plain error", errors.New("boom"), "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateKeyError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("isDuplicateKeyError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsForeignKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"postgres", &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_patient"}, true},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, false},
		{"mysql referenced", &mysql.MySQLError{Number: 1451}, true},
		{"mysql missing parent", &mysql.MySQLError{Number: 1452}, true},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062}, false},
		{"gorm translated", fmt.Errorf("delete: %w", gorm.ErrForeignKeyViolated), true},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isForeignKeyError(tt.err, ""); got != tt.want {
				t.Errorf("isForeignKeyError() = %v, want %v", got, tt.want)
			}
		})
	}
}
