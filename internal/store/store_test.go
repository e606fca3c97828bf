package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/store"
	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/storetest"
)

type widget struct {
	WidgetID int64  `gorm:"column:widget_id;primaryKey;autoIncrement:false"`
	Name     string `gorm:"column:name"`
}

func (widget) TableName() string { return "widgets" }

func newRepo(t *testing.T) (*gorm.DB, *store.Repository[widget]) {
	db := storetest.Open(t, &widget{})
	return db, store.NewRepository[widget](db, "widget_id", "Widget")
}

func TestRepository_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	_, repo := newRepo(t)

	require.NoError(t, repo.Create(ctx, &widget{WidgetID: 7, Name: "gauge"}))

	got, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, widget{WidgetID: 7, Name: "gauge"}, *got)

	require.NoError(t, repo.Delete(ctx, 7))

	_, err = repo.Get(ctx, 7)
	assert.Equal(t, apierr.KindNotFound, apierr.KindOf(err))
	assert.EqualError(t, err, "Widget not found")
}

func TestRepository_DuplicateCreate(t *testing.T) {
	ctx := context.Background()
	_, repo := newRepo(t)

	require.NoError(t, repo.Create(ctx, &widget{WidgetID: 1, Name: "a"}))
	err := repo.Create(ctx, &widget{WidgetID: 1, Name: "b"})
	require.Error(t, err)
	assert.Equal(t, apierr.KindDuplicate, apierr.KindOf(err))
	assert.EqualError(t, err, "Widget ID already exists")
}

func TestRepository_DeleteMissingIsNotFound(t *testing.T) {
	_, repo := newRepo(t)
	err := repo.Delete(context.Background(), 404)
	assert.Equal(t, apierr.KindNotFound, apierr.KindOf(err))
}

func TestRepository_StoreFailureSurfacesMessage(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), store.GormConfig(nil))
	require.NoError(t, err)
	repo := store.NewRepository[widget](db, "widget_id", "Widget")

	mock.ExpectQuery(`SELECT \* FROM "widgets"`).
		WillReturnError(errors.New("connection reset by peer"))

	_, err = repo.Get(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, apierr.KindStore, apierr.KindOf(err))
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFind_EmptyIsNonNil(t *testing.T) {
	db, _ := newRepo(t)
	rows, err := store.Find[widget](db.Model(&widget{}), "Widget")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, store.IsDuplicate(gorm.ErrDuplicatedKey))
	assert.True(t, store.IsDuplicate(&pgconn.PgError{Code: "23505"}))
	assert.False(t, store.IsDuplicate(&pgconn.PgError{Code: "23503"}))
	assert.True(t, store.IsDuplicate(errors.New("UNIQUE constraint failed: zones.zone_id")))
	assert.False(t, store.IsDuplicate(errors.New("no such table")))
}

func TestWithConn_RunsOnPinnedConnection(t *testing.T) {
	db, repo := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &widget{WidgetID: 1, Name: "a"}))

	var count int64
	err := store.WithConn(ctx, db, func(conn *gorm.DB) error {
		return conn.Model(&widget{}).Count(&count).Error
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// the pool has one connection; a second scope only works if the first was released
	err = store.WithConn(ctx, db, func(conn *gorm.DB) error {
		return errors.New("fail inside scope")
	})
	assert.EqualError(t, err, "fail inside scope")
	require.NoError(t, store.WithConn(ctx, db, func(conn *gorm.DB) error {
		return conn.Model(&widget{}).Count(&count).Error
	}))
}

func TestDialectExpressions(t *testing.T) {
	db := storetest.Open(t)
	assert.Equal(t, "CAST(strftime('%m', m.date) AS INTEGER)", store.MonthOfYear(db, "m.date"))
	assert.Equal(t, "strftime('%Y-%m', m.date)", store.YearMonth(db, "m.date"))

	var month int
	require.NoError(t, db.Raw("SELECT "+store.MonthOfYear(db, "?"), "2024-03-05 00:00:00+00:00").Scan(&month).Error)
	assert.Equal(t, 3, month)
}

func TestTime_Scan(t *testing.T) {
	want := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	for _, in := range []any{
		"2024-03-05 10:30:00+00:00",
		[]byte("2024-03-05T10:30:00Z"),
		"2024-03-05 12:30:00+02:00",
		want.In(time.FixedZone("X", 3600)),
	} {
		var got store.Time
		require.NoError(t, got.Scan(in))
		assert.True(t, want.Equal(got.Time), "%v", in)
	}

	var got store.Time
	assert.Error(t, got.Scan(42))
	assert.Error(t, got.Scan("yesterday"))
}
