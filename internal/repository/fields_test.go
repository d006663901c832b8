package repository

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/fitstack/trainings-api/internal/errs"
)

func TestFieldSetProjection(t *testing.T) {
	fs := NewFieldSet("id", "title", "created_at")

	if got, want := fs.Projection(), "id, title, created_at"; got != want {
		t.Errorf("Projection() = %q, want %q", got, want)
	}

	// Projection is cached; a second call must return the same string.
	if fs.Projection() != fs.Projection() {
		t.Error("Projection() not stable across calls")
	}
}

func TestFieldSetNamesReturnsCopy(t *testing.T) {
	fs := NewFieldSet("id", "title")

	names := fs.Names()
	names[0] = "mutated"

	if got := fs.Names()[0]; got != "id" {
		t.Errorf("Names() leaked internal slice: got %q", got)
	}
}

func TestFieldSetHas(t *testing.T) {
	fs := NewFieldSet("id", "title")

	if !fs.Has("title") {
		t.Error("Has(title) = false, want true")
	}
	if fs.Has("password_hash") {
		t.Error("Has(password_hash) = true, want false")
	}
}

func TestDecomposeOrdering(t *testing.T) {
	fs := NewFieldSet("id", "title", "price", "created_at")

	// Keys follow field set declaration order regardless of map iteration.
	changes := map[string]any{
		"created_at": "x",
		"title":      "abc",
		"price":      4.5,
	}

	for range 10 {
		keys, values, placeholders, err := fs.Decompose(changes)
		if err != nil {
			t.Fatalf("Decompose() error = %v", err)
		}

		if want := []string{"title", "price", "created_at"}; !reflect.DeepEqual(keys, want) {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
		if want := []any{"abc", 4.5, "x"}; !reflect.DeepEqual(values, want) {
			t.Fatalf("values = %v, want %v", values, want)
		}
		if want := []string{"$1", "$2", "$3"}; !reflect.DeepEqual(placeholders, want) {
			t.Fatalf("placeholders = %v, want %v", placeholders, want)
		}
	}
}

func TestDecomposeEmptyChanges(t *testing.T) {
	fs := NewFieldSet("id", "title")

	_, _, _, err := fs.Decompose(map[string]any{})
	if err == nil {
		t.Fatal("Decompose(empty) error = nil, want invalid input")
	}
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Errorf("Decompose(empty) error = %v, want INVALID_INPUT", err)
	}
}

func TestDecomposeUnknownColumn(t *testing.T) {
	fs := NewFieldSet("id", "title")

	_, _, _, err := fs.Decompose(map[string]any{"title": "x", "evil; DROP TABLE": 1})
	if err == nil {
		t.Fatal("Decompose(unknown column) error = nil, want invalid input")
	}
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(err.Error(), "evil; DROP TABLE") {
		t.Errorf("error %q does not name the offending column", err.Error())
	}
}

func TestSetClause(t *testing.T) {
	got := SetClause([]string{"title", "price"})
	if want := "title = $1, price = $2"; got != want {
		t.Errorf("SetClause() = %q, want %q", got, want)
	}
}

func TestWhereClause(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		start int
		want  string
	}{
		{"single from one", []string{"id"}, 1, "id = $1"},
		{"multiple from one", []string{"role", "email"}, 1, "role = $1 AND email = $2"},
		{"offset start", []string{"status"}, 3, "status = $3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WhereClause(tt.keys, tt.start); got != tt.want {
				t.Errorf("WhereClause(%v, %d) = %q, want %q", tt.keys, tt.start, got, tt.want)
			}
		})
	}
}

func TestEntityFieldSetsContainKeyColumns(t *testing.T) {
	tests := []struct {
		name string
		fs   FieldSet
		cols []string
	}{
		{"users", userFields, []string{"id", "username", "password_hash", "deleted_at"}},
		{"clients", clientFields, []string{"id", "user_id", "status", "expiration_date"}},
		{"memberships", membershipFields, []string{"id", "access_level", "price"}},
		{"exercises", exerciseFields, []string{"id", "title", "complexity_lvl"}},
		{"trainings", trainingFields, []string{"id", "client_id", "training_type"}},
		{"training exercises", trainingExerciseFields, []string{"training_id", "exercise_id", "order_in_training"}},
		{"payments", paymentFields, []string{"id", "client_id", "payment_status"}},
		{"reports", reportFields, []string{"id", "report_date_start", "new_users"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, col := range tt.cols {
				if !tt.fs.Has(col) {
					t.Errorf("%s field set missing column %q", tt.name, col)
				}
			}
		})
	}
}
