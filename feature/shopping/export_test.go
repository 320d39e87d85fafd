package shopping

import (
	"context"
	"testing"

	"pantry-manager/core/session"
	"pantry-manager/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func expectListQuery(m sqlmock.Sqlmock) {
	rows := sqlmock.NewRows([]string{"id", "owner", "name", "name_key", "unit", "quantity"}).
		AddRow(1, "alice", "Eggs", "eggs", "pcs", 2.0).
		AddRow(2, "alice", "Milk", "milk", "l", 1.5)

	m.ExpectQuery("SELECT \\* FROM `shopping_list_lines` WHERE owner = \\?").
		WithArgs("alice").
		WillReturnRows(rows)
}

func TestExport_RendersPDFWithoutClient(t *testing.T) {
	svc, mock := newTestService(t)
	expectListQuery(mock)

	exporter := NewExporter(svc, nil, "pantry-exports", zap.NewNop())

	doc, objectName, err := exporter.Export(context.Background(), session.Session{Username: "alice"})
	require.NoError(t, err)

	assert.True(t, len(doc) > 0)
	assert.Equal(t, "%PDF", string(doc[:4]))
	// No client means no archive attempt.
	assert.Empty(t, objectName)
}

func TestExport_ArchivesToStorage(t *testing.T) {
	svc, dbMock := newTestService(t)
	expectListQuery(dbMock)

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "pantry-exports").Return(true, nil)
	client.On("PutObject", mock.Anything, "pantry-exports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	exporter := NewExporter(svc, client, "pantry-exports", zap.NewNop())

	doc, objectName, err := exporter.Export(context.Background(), session.Session{Username: "alice"})
	require.NoError(t, err)

	assert.True(t, len(doc) > 0)
	assert.Contains(t, objectName, "exports/alice/shopping-list-")
	client.AssertExpectations(t)
}

func TestExport_ArchiveFailureIsBestEffort(t *testing.T) {
	svc, dbMock := newTestService(t)
	expectListQuery(dbMock)

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "pantry-exports").Return(false, assert.AnError)

	exporter := NewExporter(svc, client, "pantry-exports", zap.NewNop())

	// A storage failure is logged; the caller still gets the document.
	doc, objectName, err := exporter.Export(context.Background(), session.Session{Username: "alice"})
	require.NoError(t, err)
	assert.True(t, len(doc) > 0)
	assert.Empty(t, objectName)
}
