package services

import (
	"net/http"
	"testing"

	"github.com/frctlprdx/community-sub000/internal/models"
)

func TestCreateGallery(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGalleryService(db)

	community := models.Community{Name: "Fotografi"}
	if err := db.Create(&community).Error; err != nil {
		t.Fatalf("seed community error = %v", err)
	}

	item, err := svc.Create(&CreateGalleryRequest{
		Title:       "Hunting Foto",
		ImageURL:    "https://res.cloudinary.com/demo/hunting.jpg",
		CommunityID: community.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if item.ID == 0 {
		t.Error("gallery item should have an id")
	}
	if item.CommunityID != community.ID {
		t.Errorf("community id = %d, expected %d", item.CommunityID, community.ID)
	}
}

func TestCreateGallery_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGalleryService(db)

	_, err := svc.Create(&CreateGalleryRequest{ImageURL: "https://res.cloudinary.com/x.jpg"})
	assertAppError(t, err, http.StatusBadRequest, "Title dan communityId wajib diisi")
}

func TestCreateGallery_UnknownCommunity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGalleryService(db)

	_, err := svc.Create(&CreateGalleryRequest{Title: "Foto", CommunityID: 42})
	assertAppError(t, err, http.StatusBadRequest, "Komunitas tidak ditemukan")
}

func TestListGalleryByCommunity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewGalleryService(db)

	community := models.Community{Name: "Fotografi"}
	if err := db.Create(&community).Error; err != nil {
		t.Fatalf("seed community error = %v", err)
	}
	other := models.Community{Name: "Robotik"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed community error = %v", err)
	}

	for _, title := range []string{"Satu", "Dua"} {
		if _, err := svc.Create(&CreateGalleryRequest{Title: title, CommunityID: community.ID}); err != nil {
			t.Fatalf("create error = %v", err)
		}
	}
	if _, err := svc.Create(&CreateGalleryRequest{Title: "Lain", CommunityID: other.ID}); err != nil {
		t.Fatalf("create error = %v", err)
	}

	items, err := svc.ListByCommunity(community.ID)
	if err != nil {
		t.Fatalf("ListByCommunity() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("items = %d, expected 2", len(items))
	}
}
