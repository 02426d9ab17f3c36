package handlers

import (
	"strconv"

	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/services"
	"github.com/frctlprdx/community-sub000/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{eventService: services.NewEventService(db)}
}

type EventResponse struct {
	response.Envelope
	Event *models.Event `json:"event"`
}

type EventListResponse struct {
	response.Envelope
	Events []models.Event `json:"events"`
}

// Create adds an event listing
// POST /api/event/post
func (h *EventHandler) Create(c *gin.Context) {
	var req services.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewValidation("Body permintaan tidak valid"))
		return
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, EventResponse{
		Envelope: response.OK("Event berhasil dibuat"),
		Event:    event,
	})
}

// List returns all events sorted by date ascending
// GET /api/event/get
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, EventListResponse{
		Envelope: response.OK("ok"),
		Events:   events,
	})
}

// ListByCreator returns events created by one user
// GET /api/event/get/:id
func (h *EventHandler) ListByCreator(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.NewValidation("ID tidak valid"))
		return
	}

	events, err := h.eventService.ListByCreator(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, EventListResponse{
		Envelope: response.OK("ok"),
		Events:   events,
	})
}

// Update changes an event
// PUT /api/event/update/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.NewValidation("ID event tidak valid"))
		return
	}

	var req services.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewValidation("Body permintaan tidak valid"))
		return
	}

	event, err := h.eventService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, EventResponse{
		Envelope: response.OK("Event berhasil diperbarui"),
		Event:    event,
	})
}

// Delete removes an event
// DELETE /api/event/delete/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.NewValidation("ID event tidak valid"))
		return
	}

	if err := h.eventService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.OK("Event berhasil dihapus"))
}
