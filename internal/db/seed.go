package db

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"breate/backend/internal/logging"
	models "breate/backend/internal/models/gorm"
)

func strptr(s string) *string { return &s }

var seedArchetypes = []models.Archetype{
	{Name: "Creator", Description: strptr("Visionary builders who bring ideas to life.")},
	{Name: "Creative", Description: strptr("Expressive individuals skilled in storytelling and design.")},
	{Name: "Innovator", Description: strptr("Thinkers who challenge norms and create new approaches.")},
	{Name: "Systems Thinker", Description: strptr("Analytical minds who design scalable systems.")},
}

var seedTiers = []models.Tier{
	{Name: "Base", Level: 1, Description: strptr("Entry-level creators starting out.")},
	{Name: "Standard", Level: 2, Description: strptr("Intermediate users gaining experience.")},
	{Name: "Professional", Level: 3, Description: strptr("Experts with consistent contributions.")},
}

var seedCoalitions = []models.Coalition{
	{Name: "University of Ghana", Description: strptr("Academic creative ecosystem"), Focus: strptr("Education"), Location: strptr("Ghana")},
	{Name: "Tech for Good", Description: strptr("Builders using tech for social impact"), Focus: strptr("Innovation"), Location: strptr("Africa")},
}

// SeedReferenceData inserts the fixed archetype, tier and coalition rows,
// keyed by unique name so reruns are no-ops. The three groups are independent
// and run concurrently.
func SeedReferenceData(db *gorm.DB) error {
	var g errgroup.Group

	g.Go(func() error {
		for _, a := range seedArchetypes {
			a := a
			err := db.Where(models.Archetype{Name: a.Name}).FirstOrCreate(&a).Error
			if err != nil {
				return fmt.Errorf("seed archetype %q: %w", a.Name, err)
			}
		}
		return nil
	})

	g.Go(func() error {
		for _, t := range seedTiers {
			t := t
			err := db.Where(models.Tier{Name: t.Name}).FirstOrCreate(&t).Error
			if err != nil {
				return fmt.Errorf("seed tier %q: %w", t.Name, err)
			}
		}
		return nil
	})

	g.Go(func() error {
		for _, c := range seedCoalitions {
			c := c
			err := db.Where(models.Coalition{Name: c.Name}).FirstOrCreate(&c).Error
			if err != nil {
				return fmt.Errorf("seed coalition %q: %w", c.Name, err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logging.Info("Reference data seeded",
		"archetypes", len(seedArchetypes),
		"tiers", len(seedTiers),
		"coalitions", len(seedCoalitions),
	)
	return nil
}
