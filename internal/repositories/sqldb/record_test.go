package sqldb

import (
	"context"
	"testing"
	"time"

	"db-console-api/internal/models"
	"db-console-api/internal/repositories"
	"db-console-api/internal/testdb"
)

func newRecordRepo(t *testing.T) (*RecordRepository, context.Context) {
	t.Helper()
	db := testdb.New(t)
	session := testdb.Session(t, db)
	return ForSession(session, testdb.Logger()).records, session.Context()
}

func TestRecordRepository_CreateAndGetByID(t *testing.T) {
	repo, ctx := newRecordRepo(t)

	created, err := repo.Create(ctx, &models.Record{
		Title:       "Widget",
		Description: "A small widget",
		Category:    "parts",
		Status:      "active",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected database-assigned ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be populated")
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	if fetched.Title != "Widget" || fetched.Category != "parts" || fetched.Status != "active" {
		t.Errorf("fetched = %+v", fetched)
	}
	if !fetched.CreatedAt.Equal(created.CreatedAt.Time) {
		t.Errorf("CreatedAt = %v, want %v", fetched.CreatedAt, created.CreatedAt)
	}
}

func TestRecordRepository_GetByID_NotFound(t *testing.T) {
	repo, ctx := newRecordRepo(t)

	_, err := repo.GetByID(ctx, 9999999)
	if !repositories.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if msg := repositories.ClientMessage(err, ""); msg != "Record not found" {
		t.Errorf("message = %q, want %q", msg, "Record not found")
	}
}

func TestRecordRepository_Update(t *testing.T) {
	repo, ctx := newRecordRepo(t)

	created, err := repo.Create(ctx, &models.Record{Title: "Before", Status: "active"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	updated, err := repo.Update(ctx, &models.Record{
		ID:       created.ID,
		Title:    "After",
		Category: "misc",
		Status:   "archived",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "After" || updated.Status != "archived" || updated.Category != "misc" {
		t.Errorf("updated = %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt.Time) {
		t.Errorf("UpdatedAt %v should be after %v", updated.UpdatedAt, created.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt.Time) {
		t.Errorf("CreatedAt changed from %v to %v", created.CreatedAt, updated.CreatedAt)
	}

	_, err = repo.Update(ctx, &models.Record{ID: 9999999, Title: "Ghost"})
	if !repositories.IsNotFound(err) {
		t.Errorf("expected not found updating missing record, got %v", err)
	}
}

func TestRecordRepository_Delete(t *testing.T) {
	repo, ctx := newRecordRepo(t)

	created, err := repo.Create(ctx, &models.Record{Title: "Doomed", Status: "active"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); !repositories.IsNotFound(err) {
		t.Errorf("second Delete should be not found, got %v", err)
	}

	if _, err := repo.GetByID(ctx, created.ID); !repositories.IsNotFound(err) {
		t.Errorf("GetByID after Delete should be not found, got %v", err)
	}
}

func TestRecordRepository_List(t *testing.T) {
	repo, ctx := newRecordRepo(t)

	seed := []models.Record{
		{Title: "Widget", Description: "blue", Category: "parts", Status: "active"},
		{Title: "Gadget", Description: "contains a WIDGET", Category: "tools", Status: "active"},
		{Title: "Sprocket", Description: "", Category: "parts", Status: "active"},
	}
	for i := range seed {
		if _, err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	tests := []struct {
		name   string
		filter repositories.ListFilter
		want   []string
	}{
		{"no filter newest first", repositories.ListFilter{}, []string{"Sprocket", "Gadget", "Widget"}},
		{"search is case-insensitive over title and description", repositories.ListFilter{Search: "widg"}, []string{"Gadget", "Widget"}},
		{"category exact match", repositories.ListFilter{Category: "parts"}, []string{"Sprocket", "Widget"}},
		{"search and category", repositories.ListFilter{Search: "widg", Category: "tools"}, []string{"Gadget"}},
		{"category is not a substring match", repositories.ListFilter{Category: "part"}, []string{}},
		{"no match", repositories.ListFilter{Search: "nothing-matches"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if records == nil {
				t.Fatal("List should return an empty slice, not nil")
			}
			if len(records) != len(tt.want) {
				t.Fatalf("List returned %d records, want %d", len(records), len(tt.want))
			}
			for i, title := range tt.want {
				if records[i].Title != title {
					t.Errorf("records[%d].Title = %q, want %q", i, records[i].Title, title)
				}
			}
		})
	}
}
