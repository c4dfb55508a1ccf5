package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"breate/backend/internal/db/repositories"
	"breate/backend/internal/models/dtos"
	models "breate/backend/internal/models/gorm"
)

func seedCoalition(t *testing.T, gdb *gorm.DB, name, focus, location string, members ...*models.User) *models.Coalition {
	t.Helper()

	c := &models.Coalition{Name: name}
	if focus != "" {
		c.Focus = &focus
	}
	if location != "" {
		c.Location = &location
	}
	for _, m := range members {
		c.Members = append(c.Members, *m)
	}
	if err := gdb.Create(c).Error; err != nil {
		t.Fatalf("Failed to create coalition %s: %v", name, err)
	}
	return c
}

func memberNamed(members []dtos.CoalitionMember, username string) *dtos.CoalitionMember {
	for i := range members {
		if members[i].Username != nil && *members[i].Username == username {
			return &members[i]
		}
	}
	return nil
}

func TestCoalitionService_List_SearchAndRegion(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewCoalitionService(repositories.NewCoalitionRepository(gdb))

	seedCoalition(t, gdb, "Render Guild", "3D art", "Berlin")
	seedCoalition(t, gdb, "Sound Collective", "audio", "Lisbon")

	all, err := svc.List(context.Background(), "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 coalitions, got %d", len(all))
	}

	// Search matches name case-insensitively.
	byName, err := svc.List(context.Background(), "render", "")
	if err != nil {
		t.Fatalf("List with search failed: %v", err)
	}
	if len(byName) != 1 || byName[0].Name != "Render Guild" {
		t.Errorf("Search narrowed to %v", byName)
	}

	byRegion, err := svc.List(context.Background(), "", "Lisbon")
	if err != nil {
		t.Fatalf("List with region failed: %v", err)
	}
	if len(byRegion) != 1 || byRegion[0].Name != "Sound Collective" {
		t.Errorf("Region filter gave %v", byRegion)
	}
}

func TestCoalitionService_Get_MembersWithReferenceNames(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewCoalitionService(repositories.NewCoalitionRepository(gdb))

	archetype := models.Archetype{Name: "Creator"}
	if err := gdb.Create(&archetype).Error; err != nil {
		t.Fatalf("Failed to create archetype: %v", err)
	}
	alice := createTestUser(t, gdb, "alice@example.com", "alice")
	gdb.Model(alice).Update("archetype_id", archetype.ID)
	bob := createTestUser(t, gdb, "bob@example.com", "bob")

	c := seedCoalition(t, gdb, "Render Guild", "", "", alice, bob)

	detail, err := svc.Get(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(detail.Members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(detail.Members))
	}
	member := memberNamed(detail.Members, "alice")
	if member == nil {
		t.Fatal("alice missing from member list")
	}
	if member.Archetype == nil || *member.Archetype != "Creator" {
		t.Errorf("Member archetype not resolved: %v", member.Archetype)
	}
}

func TestCoalitionService_Get_NotFound(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewCoalitionService(repositories.NewCoalitionRepository(gdb))

	_, err := svc.Get(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
