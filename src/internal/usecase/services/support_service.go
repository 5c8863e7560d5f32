package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.SupportService = (*SupportService)(nil)

type SupportService struct {
	messageRepo repo_interfaces.SupportMessageRepository
}

func NewSupportService(messageRepo repo_interfaces.SupportMessageRepository) *SupportService {
	return &SupportService{messageRepo: messageRepo}
}

func (s *SupportService) CreateMessage(ctx context.Context, userID int64, req models.CreateSupportMessageRequest) (commons.Response[models.SupportMessageResponse], error) {
	logger.Info("support service create message request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.SupportMessageResponse](commons.MessageValidationFailed, err.Error()), err
	}

	if req.ResponseTo != nil {
		parent, err := s.messageRepo.GetByID(ctx, *req.ResponseTo)
		if err == nil && parent.UserID != userID {
			err = commons.ErrRecordNotFound
		}
		if err != nil {
			logger.Error("support service create message parent lookup failed", err, logger.Fields{
				"userId":     userID,
				"responseTo": *req.ResponseTo,
			})
			if errors.Is(err, commons.ErrRecordNotFound) {
				return commons.NotFound[models.SupportMessageResponse]("Support message"), err
			}
			return commons.ErrorResponse[models.SupportMessageResponse]("failed to send message", "Unable to send message right now"), err
		}
	}

	created, err := s.messageRepo.Create(ctx, domain.SupportMessage{
		UserID:     userID,
		Message:    strings.TrimSpace(req.Message),
		ResponseTo: req.ResponseTo,
	})
	if err != nil {
		logger.Error("support service create message repository failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.SupportMessageResponse]("failed to send message", "Unable to send message right now"), err
	}

	return commons.SuccessResponse("message sent successfully", toSupportMessageResponse(created)), nil
}

// ListMessages returns the caller's thread oldest first, admin replies included.
func (s *SupportService) ListMessages(ctx context.Context, userID int64) (commons.Response[[]models.SupportMessageResponse], error) {
	messages, err := s.messageRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Error("support service list messages failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[[]models.SupportMessageResponse]("failed to list messages", "Unable to fetch messages right now"), err
	}

	response := make([]models.SupportMessageResponse, 0, len(messages))
	for _, message := range messages {
		response = append(response, toSupportMessageResponse(message))
	}

	return commons.SuccessResponse("messages fetched successfully", response), nil
}

func (s *SupportService) ReplyMessage(ctx context.Context, messageID int64, req models.ReplySupportMessageRequest) (commons.Response[models.SupportMessageResponse], error) {
	logger.Info("support service reply request", logger.Fields{
		"messageId": messageID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.SupportMessageResponse](commons.MessageValidationFailed, err.Error()), err
	}

	parent, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		logger.Error("support service reply parent lookup failed", err, logger.Fields{
			"messageId": messageID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.SupportMessageResponse]("Support message"), err
		}
		return commons.ErrorResponse[models.SupportMessageResponse]("failed to send reply", "Unable to send reply right now"), err
	}

	responseTo := parent.ID
	created, err := s.messageRepo.Create(ctx, domain.SupportMessage{
		UserID:      parent.UserID,
		Message:     strings.TrimSpace(req.Message),
		IsFromAdmin: true,
		ResponseTo:  &responseTo,
	})
	if err != nil {
		logger.Error("support service reply repository failed", err, logger.Fields{
			"messageId": messageID,
		})
		return commons.ErrorResponse[models.SupportMessageResponse]("failed to send reply", "Unable to send reply right now"), err
	}

	logger.Info("support service reply success", logger.Fields{
		"messageId": messageID,
		"replyId":   created.ID,
		"userId":    created.UserID,
	})

	return commons.SuccessResponse("reply sent successfully", toSupportMessageResponse(created)), nil
}

func toSupportMessageResponse(message domain.SupportMessage) models.SupportMessageResponse {
	return models.SupportMessageResponse{
		ID:          message.ID,
		UserID:      message.UserID,
		Message:     message.Message,
		IsFromAdmin: message.IsFromAdmin,
		ResponseTo:  message.ResponseTo,
		CreatedAt:   message.CreatedAt.Format(time.RFC3339),
	}
}
