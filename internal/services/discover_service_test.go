package services

import (
	"context"
	"testing"

	"breate/backend/internal/db/repositories"
	models "breate/backend/internal/models/gorm"
)

func TestDiscoverService_Users_Filters(t *testing.T) {
	gdb := setupTestDB(t)
	users := repositories.NewUserRepository(gdb)
	svc := NewDiscoverService(users, NewProjectService(repositories.NewProjectRepository(gdb), nil))

	creator := models.Archetype{Name: "Creator"}
	innovator := models.Archetype{Name: "Innovator"}
	if err := gdb.Create(&creator).Error; err != nil {
		t.Fatalf("Failed to create archetype: %v", err)
	}
	if err := gdb.Create(&innovator).Error; err != nil {
		t.Fatalf("Failed to create archetype: %v", err)
	}
	tier := models.Tier{Name: "Base", Level: 1}
	if err := gdb.Create(&tier).Error; err != nil {
		t.Fatalf("Failed to create tier: %v", err)
	}

	alice := createTestUser(t, gdb, "alice@example.com", "AliceMaker")
	gdb.Model(alice).Updates(map[string]any{"archetype_id": creator.ID, "tier_id": tier.ID})
	bob := createTestUser(t, gdb, "bob@example.com", "bobby")
	gdb.Model(bob).Update("archetype_id", innovator.ID)
	createTestUser(t, gdb, "carol@example.com", "carol")

	all, err := svc.Users(context.Background(), "", nil, nil)
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 users, got %d", len(all))
	}

	// Partial username match is case-insensitive.
	byName, err := svc.Users(context.Background(), "alice", nil, nil)
	if err != nil {
		t.Fatalf("Users with username failed: %v", err)
	}
	if len(byName) != 1 || *byName[0].Username != "AliceMaker" {
		t.Errorf("Username filter gave %v", byName)
	}
	if byName[0].Archetype == nil || *byName[0].Archetype != "Creator" {
		t.Errorf("Archetype name not resolved: %v", byName[0].Archetype)
	}

	byArchetype, err := svc.Users(context.Background(), "", &innovator.ID, nil)
	if err != nil {
		t.Fatalf("Users with archetype failed: %v", err)
	}
	if len(byArchetype) != 1 || *byArchetype[0].Username != "bobby" {
		t.Errorf("Archetype filter gave %v", byArchetype)
	}

	// Filters combine with AND, so a mismatched pair yields nothing.
	none, err := svc.Users(context.Background(), "bobby", &creator.ID, nil)
	if err != nil {
		t.Fatalf("Users with combined filters failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no match for AND-combined filters, got %v", none)
	}

	byTier, err := svc.Users(context.Background(), "", nil, &tier.ID)
	if err != nil {
		t.Fatalf("Users with tier failed: %v", err)
	}
	if len(byTier) != 1 || *byTier[0].Username != "AliceMaker" {
		t.Errorf("Tier filter gave %v", byTier)
	}
}
