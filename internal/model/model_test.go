package model

import (
	"strings"
	"testing"
	"time"
)

func TestCreateUserMapDefaults(t *testing.T) {
	r := CreateUser{Username: "anna", Password: "s3cretpass", Email: "anna@example.com"}
	m := r.Map("$2a$10$hash")

	if m["role"] != RoleUser {
		t.Errorf("role = %v, want %v", m["role"], RoleUser)
	}
	if m["password_hash"] != "$2a$10$hash" {
		t.Errorf("password_hash = %v, want supplied hash", m["password_hash"])
	}
	if _, ok := m["password"]; ok {
		t.Error("plaintext password leaked into change-set")
	}
	if _, ok := m["created_at"].(time.Time); !ok {
		t.Errorf("created_at = %T, want time.Time", m["created_at"])
	}
}

func TestCreateUserMapKeepsExplicitRole(t *testing.T) {
	r := CreateUser{Username: "anna", Password: "s3cretpass", Email: "anna@example.com", Role: RoleTrainer}
	if m := r.Map("h"); m["role"] != RoleTrainer {
		t.Errorf("role = %v, want %v", m["role"], RoleTrainer)
	}
}

func TestCreateTrainingMapDefaults(t *testing.T) {
	r := CreateTraining{ClientID: 4, Title: "Leg day"}
	m := r.Map()

	if m["training_type"] != TrainingOther {
		t.Errorf("training_type = %v, want %v", m["training_type"], TrainingOther)
	}
	if m["intensity"] != IntensityVeryLow {
		t.Errorf("intensity = %v, want %v", m["intensity"], IntensityVeryLow)
	}
	if m["duration_min"] != 45 {
		t.Errorf("duration_min = %v, want 45", m["duration_min"])
	}
	if _, ok := m["date_of_train"]; ok {
		t.Error("nil date_of_train must be omitted from the change-set")
	}
}

func TestCreateClientMapDefaultsStatus(t *testing.T) {
	r := CreateClient{
		UserID: 1, MembershipID: 2,
		FirstName: "Maris", LastName: "Ozols", PhoneNumber: "+37120000000",
		Gender: GenderMale, DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	m := r.Map()

	if m["status"] != ClientActive {
		t.Errorf("status = %v, want %v", m["status"], ClientActive)
	}
	if _, ok := m["weight_kg"]; ok {
		t.Error("nil weight_kg must be omitted from the change-set")
	}
}

func TestPatchUserMapOnlySetFields(t *testing.T) {
	email := "new@example.com"
	r := PatchUser{Email: &email}
	m := r.Map()

	if len(m) != 1 {
		t.Fatalf("len(Map()) = %d, want 1: %v", len(m), m)
	}
	if m["email"] != email {
		t.Errorf("email = %v, want %q", m["email"], email)
	}
}

func TestPatchUserMapCarriesPassword(t *testing.T) {
	pw := "n3w-passphrase"
	r := PatchUser{Password: &pw}
	m := r.Map()

	if m["password"] != pw {
		t.Fatalf("Map() = %v, want plaintext under \"password\" for the repository to hash", m)
	}
}

func TestCheckRecordValid(t *testing.T) {
	records := []interface{ CheckRecord() error }{
		User{Role: RoleAdmin},
		Client{Gender: GenderFemale, Status: ClientActive},
		Training{TrainingType: TrainingCardio, Intensity: IntensityHigh},
	}
	for _, rec := range records {
		if err := rec.CheckRecord(); err != nil {
			t.Errorf("%T.CheckRecord() error = %v, want nil", rec, err)
		}
	}
}

func TestCheckRecordBadEnum(t *testing.T) {
	tests := []struct {
		name   string
		record interface{ CheckRecord() error }
		field  string
	}{
		{"user role", User{Role: "SUPERUSER"}, "role"},
		{"client gender", Client{Gender: "UNKNOWN", Status: ClientActive}, "gender"},
		{"client status", Client{Gender: GenderMale, Status: "DORMANT"}, "status"},
		{"training type", Training{TrainingType: "JOGGING", Intensity: IntensityLow}, "training_type"},
		{"training intensity", Training{TrainingType: TrainingYoga, Intensity: "MAX"}, "intensity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.CheckRecord()
			if err == nil {
				t.Fatal("CheckRecord() error = nil, want enum error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %q", err, tt.field)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	ok := LoginRequest{Username: "anna", Password: "longenough"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	short := LoginRequest{Username: "ab", Password: "pw"}
	if err := short.Validate(); err == nil {
		t.Error("Validate() error = nil, want length violations")
	}
}

func TestVerifyCodeRequestValidate(t *testing.T) {
	ok := VerifyCodeRequest{Code: "042137"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	for _, bad := range []string{"", "1234", "12345678", "abcdef"} {
		if err := (&VerifyCodeRequest{Code: bad}).Validate(); err == nil {
			t.Errorf("Validate(%q) error = nil, want violation", bad)
		}
	}
}

func TestCreateTrainingWithExercisesValidate(t *testing.T) {
	ok := CreateTrainingWithExercises{
		CreateTraining: CreateTraining{ClientID: 1, Title: "Push"},
		ExerciseIDs:    []int64{3, 1, 2},
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	empty := CreateTrainingWithExercises{
		CreateTraining: CreateTraining{ClientID: 1, Title: "Push"},
	}
	if err := empty.Validate(); err == nil {
		t.Error("Validate() error = nil, want required exercise_ids")
	}
}
