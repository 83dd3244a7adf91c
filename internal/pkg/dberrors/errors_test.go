package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email_lower"}

	if !IsUniqueViolation(unique) {
		t.Error("expected unique violation to be detected")
	}
	if !IsUniqueViolation(fmt.Errorf("error creating user: %w", unique)) {
		t.Error("expected wrapped unique violation to be detected")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation must not count as unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("non-pg error must not count as unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	emailDup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email_lower"}

	if !IsDuplicateConstraintError(emailDup, "uq_users_email_lower") {
		t.Error("expected match on the named constraint")
	}
	if !IsDuplicateConstraintError(fmt.Errorf("wrapped: %w", emailDup), "uq_users_email_lower") {
		t.Error("expected match through wrapping")
	}
	if IsDuplicateConstraintError(emailDup, "uq_categories_name_lower") {
		t.Error("must not match a different constraint name")
	}
	if IsDuplicateConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "uq_users_email_lower"}, "uq_users_email_lower") {
		t.Error("must require the unique-violation code")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}

	if !IsForeignKeyViolation(fk) {
		t.Error("expected foreign key violation to be detected")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation must not count as foreign key violation")
	}
}
