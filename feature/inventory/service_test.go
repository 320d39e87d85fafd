package inventory

import (
	"context"
	"testing"
	"time"

	"pantry-manager/core/session"
	"pantry-manager/feature/inventory/models"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewService(db, zap.NewNop()), mock
}

var sess = session.Session{Username: "alice"}

func validRequest() models.CreateRequest {
	return models.CreateRequest{
		Name:       "Tomato",
		Category:   "Vegetables",
		Quantity:   "3",
		Unit:       "pcs",
		Expiration: "2026-09-15",
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.CreateRequest)
	}{
		{"Blank Name", func(r *models.CreateRequest) { r.Name = "  " }},
		{"Unknown Category", func(r *models.CreateRequest) { r.Category = "Candy" }},
		{"Unknown Unit", func(r *models.CreateRequest) { r.Unit = "cups" }},
		{"Zero Quantity", func(r *models.CreateRequest) { r.Quantity = "0" }},
		{"Negative Quantity", func(r *models.CreateRequest) { r.Quantity = "-2" }},
		{"Unparseable Quantity", func(r *models.CreateRequest) { r.Quantity = "lots" }},
		{"Bad Date", func(r *models.CreateRequest) { r.Expiration = "15.09.2026" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Create(ctx, sess, req)
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}
}

func TestCreate_Success(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `inventory_items`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	item, err := svc.Create(context.Background(), sess, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "alice", item.Owner)
	assert.Equal(t, "Tomato", item.Name)
	// The normalized key is what the uniqueness index and search run on.
	assert.Equal(t, "tomato", item.NameKey)
	assert.Equal(t, 3.0, item.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateNameUnit(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `inventory_items`").
		WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), sess, validRequest())
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestDelete_NotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `inventory_items`").
		WithArgs("alice", 42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.Delete(context.Background(), sess, 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSnapshot(t *testing.T) {
	svc, mock := newTestService(t)
	expiration := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "owner", "name", "name_key", "unit", "category", "quantity", "expiration"}).
		AddRow(1, "alice", "Tomato", "tomato", "pcs", "Vegetables", 3.0, expiration).
		AddRow(2, "alice", "Milk", "milk", "l", "Dairy", 1.5, expiration)

	mock.ExpectQuery("SELECT \\* FROM `inventory_items` WHERE owner = \\?").
		WithArgs("alice").
		WillReturnRows(rows)

	snapshot, err := svc.Snapshot(context.Background(), "alice")
	require.NoError(t, err)

	require.Len(t, snapshot, 2)
	assert.Equal(t, "1", snapshot[0].ID)
	assert.Equal(t, "Tomato", snapshot[0].Name)
	assert.Equal(t, 1.5, snapshot[1].Quantity)
	assert.Equal(t, expiration, snapshot[1].Expiration)
}

func TestStatusSummary(t *testing.T) {
	svc, mock := newTestService(t)
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "owner", "name", "unit", "quantity", "expiration"}).
		AddRow(1, "alice", "Old Milk", "l", 1.0, today.AddDate(0, 0, -2)).
		AddRow(2, "alice", "Yogurt", "pcs", 4.0, today.AddDate(0, 0, 3)).
		AddRow(3, "alice", "Rice", "kg", 2.0, today.AddDate(0, 2, 0))

	mock.ExpectQuery("SELECT \\* FROM `inventory_items` WHERE owner = \\?").
		WithArgs("alice").
		WillReturnRows(rows)

	summary, err := svc.StatusSummary(context.Background(), sess, "", "", today)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 1, summary.ExpiringSoon)
	assert.Equal(t, 1, summary.Good)
}
