package audit

import (
	"context"
	"encoding/json"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

// Recorder persiste entradas de auditoria (gorm em produção, memória em teste).
type Recorder interface {
	Record(ctx context.Context, entry *models.AuditLog) error
}

type Logger struct {
	recorder Recorder
}

func New(recorder Recorder) *Logger {
	return &Logger{recorder: recorder}
}

func (l *Logger) Log(
	ctx context.Context,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.recorder.Record(ctx, &entry)
}
