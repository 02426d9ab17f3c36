package services

import (
	"errors"
	"time"

	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/utils"
	"github.com/frctlprdx/community-sub000/pkg/response"
	"gorm.io/gorm"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
	CreatedByID *uint  `json:"createdById"`
}

type UpdateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ImageURL    string `json:"imageUrl"`
}

// parseEventDate accepts RFC3339 or a bare YYYY-MM-DD date.
func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, response.NewValidation("Format tanggal tidak valid", "date")
	}
	return t, nil
}

func (s *EventService) Create(req *CreateEventRequest) (*models.Event, error) {
	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return nil, response.NewValidation("Title dan date wajib diisi", missing...)
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, err
	}

	event := models.Event{
		Title:       utils.CleanText(req.Title),
		Description: utils.CleanText(req.Description),
		Date:        date,
		ImageURL:    req.ImageURL,
		CreatedByID: req.CreatedByID,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns all events sorted by date ascending.
func (s *EventService) List() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListByCreator returns the events created by the given user id.
func (s *EventService) ListByCreator(createdByID uint) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where("created_by_id = ?", createdByID).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) Update(eventID uint, req *UpdateEventRequest) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("Event tidak ditemukan")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = utils.CleanText(req.Title)
	}
	if req.Description != "" {
		updates["description"] = utils.CleanText(req.Description)
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.Date != "" {
		date, err := parseEventDate(req.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = date
	}

	if len(updates) > 0 {
		if err := s.db.Model(&event).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&event, eventID).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Delete(eventID uint) error {
	var event models.Event
	if err := s.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("Event tidak ditemukan")
		}
		return err
	}
	return s.db.Delete(&models.Event{}, eventID).Error
}
