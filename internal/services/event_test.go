package services

import (
	"net/http"
	"testing"
)

func TestCreateEvent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	event, err := svc.Create(&CreateEventRequest{
		Title:       "Gathering Tahunan",
		Description: "Bertemu di taman kota",
		Date:        "2026-10-01",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if event.ID == 0 {
		t.Error("event should have an id")
	}
	if event.Date.Year() != 2026 || event.Date.Month() != 10 {
		t.Errorf("date = %v, expected 2026-10-01", event.Date)
	}
}

func TestCreateEvent_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	_, err := svc.Create(&CreateEventRequest{Description: "tanpa judul"})
	assertAppError(t, err, http.StatusBadRequest, "Title dan date wajib diisi")
}

func TestCreateEvent_BadDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	_, err := svc.Create(&CreateEventRequest{Title: "Acara", Date: "besok"})
	assertAppError(t, err, http.StatusBadRequest, "Format tanggal tidak valid")
}

func TestListEvents_SortedByDateAsc(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	dates := []string{"2026-12-01", "2026-09-15", "2026-11-20"}
	for i, d := range dates {
		if _, err := svc.Create(&CreateEventRequest{Title: "Acara", Date: d}); err != nil {
			t.Fatalf("create event %d error = %v", i, err)
		}
	}

	events, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, expected 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Date.Before(events[i-1].Date) {
			t.Errorf("events not sorted by date ascending: %v after %v", events[i].Date, events[i-1].Date)
		}
	}
}

func TestListEventsByCreator(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	creator := uint(7)
	if _, err := svc.Create(&CreateEventRequest{Title: "Milik 7", Date: "2026-10-01", CreatedByID: &creator}); err != nil {
		t.Fatalf("create error = %v", err)
	}
	other := uint(8)
	if _, err := svc.Create(&CreateEventRequest{Title: "Milik 8", Date: "2026-10-02", CreatedByID: &other}); err != nil {
		t.Fatalf("create error = %v", err)
	}

	events, err := svc.ListByCreator(7)
	if err != nil {
		t.Fatalf("ListByCreator() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, expected 1", len(events))
	}
	if events[0].Title != "Milik 7" {
		t.Errorf("title = %q, expected %q", events[0].Title, "Milik 7")
	}
}

func TestUpdateEvent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	event, err := svc.Create(&CreateEventRequest{Title: "Lama", Date: "2026-10-01"})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	updated, err := svc.Update(event.ID, &UpdateEventRequest{Title: "Baru", Date: "2026-11-01"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "Baru" {
		t.Errorf("title = %q, expected %q", updated.Title, "Baru")
	}
	if updated.Date.Month() != 11 {
		t.Errorf("date month = %d, expected 11", updated.Date.Month())
	}
}

func TestUpdateEvent_Unknown(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	_, err := svc.Update(42, &UpdateEventRequest{Title: "Baru"})
	assertAppError(t, err, http.StatusBadRequest, "Event tidak ditemukan")
}

func TestDeleteEvent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEventService(db)

	event, err := svc.Create(&CreateEventRequest{Title: "Acara", Date: "2026-10-01"})
	if err != nil {
		t.Fatalf("create error = %v", err)
	}

	if err := svc.Delete(event.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	events, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events = %d, expected 0 after delete", len(events))
	}
}
