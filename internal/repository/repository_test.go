package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bus_depot/internal/geo"
	"bus_depot/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func TestMechanicCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMechanicRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "mechanics"`).
		WithArgs("AB123", "Ivan Petrov", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mec := &models.Mechanic{PassportNumber: "AB123", FullName: "Ivan Petrov", ExperienceYears: 5}
	if err := repo.Create(context.Background(), mec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMechanicCreateDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMechanicRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "mechanics"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	mec := &models.Mechanic{PassportNumber: "AB123", FullName: "Ivan Petrov", ExperienceYears: 5}
	err := repo.Create(context.Background(), mec)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("err = %v, want ErrAlreadyExists", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMechanicGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMechanicRepository(db)

	rows := sqlmock.NewRows([]string{"passport_number", "full_name", "experience_years"}).
		AddRow("AB123", "Ivan Petrov", 5)
	mock.ExpectQuery(`SELECT \* FROM "mechanics" WHERE passport_number = \$1`).
		WithArgs("AB123", 1).
		WillReturnRows(rows)

	mec, err := repo.Get(context.Background(), "AB123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if mec.FullName != "Ivan Petrov" || mec.ExperienceYears != 5 {
		t.Fatalf("unexpected mechanic: %+v", mec)
	}
}

func TestMechanicGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMechanicRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "mechanics"`).
		WillReturnRows(sqlmock.NewRows([]string{"passport_number", "full_name", "experience_years"}))

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMechanicUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMechanicRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "mechanics" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	mec := &models.Mechanic{FullName: "Nobody", ExperienceYears: 1}
	err := repo.Update(context.Background(), "missing", mec)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMechanicDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMechanicRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "mechanics" WHERE passport_number = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMechanicList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMechanicRepository(db)

	rows := sqlmock.NewRows([]string{"passport_number", "full_name", "experience_years"}).
		AddRow("AB123", "Ivan Petrov", 5).
		AddRow("CD456", "Pavel Sidorov", 12)
	mock.ExpectQuery(`SELECT \* FROM "mechanics"`).WillReturnRows(rows)

	mecs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(mecs) != 2 {
		t.Fatalf("len = %d, want 2", len(mecs))
	}
}

func TestStopGetByCoordinates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStopRepository(db)

	lat := geo.FromFloat(40.0)
	lng := geo.FromFloat(-73.0)

	mock.ExpectQuery(`SELECT \* FROM "stops" WHERE latitude_e6 = \$1 AND longitude_e6 = \$2`).
		WithArgs(int64(lat), int64(lng), 1).
		WillReturnRows(sqlmock.NewRows([]string{"latitude_e6", "longitude_e6", "stop_name", "address"}))

	_, err := repo.Get(context.Background(), lat, lng)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	rows := sqlmock.NewRows([]string{"latitude_e6", "longitude_e6", "stop_name", "address"}).
		AddRow(int64(lat), int64(lng), "Central", "1 Main St")
	mock.ExpectQuery(`SELECT \* FROM "stops" WHERE latitude_e6 = \$1 AND longitude_e6 = \$2`).
		WithArgs(int64(lat), int64(lng), 1).
		WillReturnRows(rows)

	stop, err := repo.Get(context.Background(), lat, lng)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stop.Latitude != lat || stop.Longitude != lng {
		t.Fatalf("coordinates did not round-trip: %+v", stop)
	}
}

func TestRouteStopDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRouteStopRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "route_stops"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), geo.FromFloat(40.0), geo.FromFloat(-73.0), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"pgconn 23505", &pgconn.PgError{Code: "23505"}, true},
		{"pq 23505", &pq.Error{Code: "23505"}, true},
		{"gorm sentinel", gorm.ErrDuplicatedKey, true},
		{"pgconn other", &pgconn.PgError{Code: "23503"}, false},
		{"record not found", gorm.ErrRecordNotFound, false},
		{"plain error", errors.New("boom"), false},
	}
	for _, c := range cases {
		if got := isUniqueViolation(c.err); got != c.want {
			t.Errorf("%s: isUniqueViolation = %v, want %v", c.name, got, c.want)
		}
	}
}
