package shopping

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"pantry-manager/core/reconcile"
	"pantry-manager/core/session"
	"pantry-manager/core/storage"

	"github.com/go-pdf/fpdf"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Exporter renders the shopping list as a PDF and archives a copy in object
// storage. The archive is best-effort: a storage failure is logged and the
// caller still gets the document.
type Exporter struct {
	service *Service
	client  storage.Client
	bucket  string
	logger  *zap.Logger
}

// NewExporter creates a new exporter. The client may be nil, in which case
// exports are rendered but not archived.
func NewExporter(service *Service, client storage.Client, bucket string, logger *zap.Logger) *Exporter {
	return &Exporter{service: service, client: client, bucket: bucket, logger: logger}
}

// Export renders the owner's shopping list as a PDF, archives it, and
// returns the document bytes plus the archive object name (empty when
// archiving was skipped or failed).
func (e *Exporter) Export(ctx context.Context, sess session.Session) ([]byte, string, error) {
	lines, err := e.service.List(ctx, sess)
	if err != nil {
		return nil, "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Shopping List")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if len(lines) == 0 {
		pdf.Cell(0, 8, "No items found in your shopping list.")
	}
	for i, line := range lines {
		entry := fmt.Sprintf("%d. %s - Quantity: %s %s",
			i+1, line.Name, reconcile.FormatQuantity(line.Quantity), line.Unit)
		pdf.Cell(0, 8, entry)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render shopping list pdf: %w", err)
	}

	objectName := e.archive(ctx, sess.Username, buf.Bytes())
	return buf.Bytes(), objectName, nil
}

// archive uploads the document under exports/<owner>/, creating the bucket
// on first use. Returns the object name, or "" when skipped or failed.
func (e *Exporter) archive(ctx context.Context, owner string, doc []byte) string {
	if e.client == nil {
		return ""
	}

	exists, err := e.client.BucketExists(ctx, e.bucket)
	if err != nil {
		e.logger.Warn("Export archive skipped: bucket check failed", zap.Error(err))
		return ""
	}
	if !exists {
		if err := e.client.MakeBucket(ctx, e.bucket, minio.MakeBucketOptions{}); err != nil {
			e.logger.Warn("Export archive skipped: bucket creation failed", zap.Error(err))
			return ""
		}
	}

	objectName := fmt.Sprintf("exports/%s/shopping-list-%s.pdf", owner, time.Now().Format("20060102-150405"))
	_, err = e.client.PutObject(ctx, e.bucket, objectName,
		bytes.NewReader(doc), int64(len(doc)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		e.logger.Warn("Export archive failed", zap.Error(err), zap.String("object", objectName))
		return ""
	}

	return objectName
}
