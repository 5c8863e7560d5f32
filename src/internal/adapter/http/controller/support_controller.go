package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi"
)

type SupportController struct {
	service service_interfaces.SupportService
}

func NewSupportController(service service_interfaces.SupportService) *SupportController {
	return &SupportController{service: service}
}

func (c *SupportController) RegisterRoutes(r chi.Router, userAuth, adminAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(passthrough(userAuth))
		r.Post("/support-messages", c.createMessage)
		r.Get("/support-messages", c.listMessages)
	})

	r.With(adminOnly(adminAuth)).Post("/admin/support-messages/{id}/reply", c.reply)
}

func (c *SupportController) createMessage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[models.SupportMessageResponse](w, r, start)
	if !ok {
		return
	}
	req, ok := decodeJSON[models.CreateSupportMessageRequest, models.SupportMessageResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.CreateMessage(r.Context(), userID, req)
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *SupportController) listMessages(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[[]models.SupportMessageResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.ListMessages(r.Context(), userID)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *SupportController) reply(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	messageID, ok := pathID[models.SupportMessageResponse](w, r, start, "id")
	if !ok {
		return
	}
	req, ok := decodeJSON[models.ReplySupportMessageRequest, models.SupportMessageResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.ReplyMessage(r.Context(), messageID, req)
	respond(w, r, start, http.StatusCreated, response, err)
}
