package service_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
)

type SupportService interface {
	CreateMessage(ctx context.Context, userID int64, req models.CreateSupportMessageRequest) (commons.Response[models.SupportMessageResponse], error)
	ListMessages(ctx context.Context, userID int64) (commons.Response[[]models.SupportMessageResponse], error)
	ReplyMessage(ctx context.Context, messageID int64, req models.ReplySupportMessageRequest) (commons.Response[models.SupportMessageResponse], error)
}
