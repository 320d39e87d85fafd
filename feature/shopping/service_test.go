package shopping

import (
	"context"
	"testing"

	"pantry-manager/core/reconcile"
	"pantry-manager/core/session"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestDelete_NotFound(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `shopping_list_lines`").
		WithArgs("alice", 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.Delete(context.Background(), session.Session{Username: "alice"}, 7)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestApplyMerge_Insert(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `shopping_list_lines`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := svc.ApplyMerge(context.Background(), "alice", []reconcile.LineOp{
		{Type: reconcile.LineInsert, Name: "Eggs", Unit: "pcs", Quantity: 2},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMerge_InsertSkipsNonPositive(t *testing.T) {
	svc, mock := newTestService(t)

	// No expectations: a non-positive insert never reaches the database.
	err := svc.ApplyMerge(context.Background(), "alice", []reconcile.LineOp{
		{Type: reconcile.LineInsert, Name: "Eggs", Unit: "pcs", Quantity: 0},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMerge_Update(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `shopping_list_lines` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.ApplyMerge(context.Background(), "alice", []reconcile.LineOp{
		{Type: reconcile.LineUpdate, LineID: "9", Name: "milk", Unit: "l", Quantity: 3},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMerge_UpdateToNonPositiveDeletes(t *testing.T) {
	svc, mock := newTestService(t)

	// A line never survives with a non-positive quantity.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `shopping_list_lines`").
		WithArgs("alice", uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.ApplyMerge(context.Background(), "alice", []reconcile.LineOp{
		{Type: reconcile.LineUpdate, LineID: "9", Name: "milk", Unit: "l", Quantity: 0},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMerge_BadLineID(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.ApplyMerge(context.Background(), "alice", []reconcile.LineOp{
		{Type: reconcile.LineUpdate, LineID: "not-a-number", Quantity: 3},
	})
	assert.Error(t, err)
}
