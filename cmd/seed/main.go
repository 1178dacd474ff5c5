package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gallery/internal/auth"
	"gallery/internal/config"
	"gallery/internal/db"
	"gallery/internal/model"
	"gallery/internal/repository"
)

const adminEmail = "admin@gallery.local"

type seedArtwork struct {
	Title      string
	Artist     string
	Medium     string
	Dimensions string
	Price      int64
	Category   model.ArtworkCategory
	Year       int
	Available  bool
	Featured   bool
}

var seedArtists = []model.Artist{
	{Name: "Amara Okafor", Country: "Kenya", City: "Diani", Bio: "Paints the light of the Kenyan coast in oil and watercolor.", Featured: true, Verified: true},
	{Name: "Kesi Mwalimu", Country: "Tanzania", City: "Dar es Salaam", Bio: "Abstract painter working in acrylic.", Verified: true},
	{Name: "Jengo Tembo", Country: "Kenya", City: "Mombasa", Bio: "Mixed media work built from found coastal materials."},
}

var seedArtworks = []seedArtwork{
	{Title: "Ocean Waves at Sunset", Artist: "Amara Okafor", Medium: "Oil on Canvas", Dimensions: "120x80cm", Price: 25000, Category: model.CategoryPainting, Year: 2024, Available: true, Featured: true},
	{Title: "Abstract Dreams", Artist: "Kesi Mwalimu", Medium: "Acrylic on Canvas", Dimensions: "100x70cm", Price: 15000, Category: model.CategoryPainting, Year: 2024},
	{Title: "Coastal Harmony", Artist: "Jengo Tembo", Medium: "Mixed Media", Dimensions: "90x90cm", Price: 35000, Category: model.CategoryMixedMedia, Year: 2023, Available: true},
	{Title: "Sunrise Over Kilifi", Artist: "Amara Okafor", Medium: "Watercolor", Dimensions: "60x40cm", Price: 22000, Category: model.CategoryPainting, Year: 2024, Available: true},
}

func slugify(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	artists, created, err := seedArtistRows(ctx, repository.NewArtistRepository(gormDB))
	if err != nil {
		log.Fatalf("Failed to seed artists: %v", err)
	}
	log.Printf("  - Artists created: %d", created)

	created, err = seedArtworkRows(ctx, repository.NewArtworkRepository(gormDB), artists)
	if err != nil {
		log.Fatalf("Failed to seed artworks: %v", err)
	}
	log.Printf("  - Artworks created: %d", created)

	created, err = seedExhibitions(ctx, repository.NewExhibitionRepository(gormDB), artists)
	if err != nil {
		log.Fatalf("Failed to seed exhibitions: %v", err)
	}
	log.Printf("  - Exhibitions created: %d", created)

	token, err := auth.NewJWTService(cfg.JWTSecret).Issue("seed-admin", adminEmail, auth.RoleAdmin, auth.AdminTokenExpiry)
	if err != nil {
		log.Fatalf("Failed to issue admin token: %v", err)
	}
	log.Printf("Seed completed successfully!")
	fmt.Printf("Admin token (valid %s):\nBearer %s\n", auth.AdminTokenExpiry, token)
}

// seedArtistRows creates missing artists and returns every seed artist by name.
func seedArtistRows(ctx context.Context, repo repository.ArtistRepository) (map[string]*model.Artist, int, error) {
	byName := make(map[string]*model.Artist, len(seedArtists))
	created := 0
	for _, a := range seedArtists {
		artist := a
		artist.Slug = slugify(a.Name)
		existing, err := repo.FindBySlug(ctx, artist.Slug)
		if err == nil {
			byName[a.Name] = existing
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, created, fmt.Errorf("error checking artist %s: %w", artist.Slug, err)
		}
		if err := repo.Create(ctx, &artist); err != nil {
			return nil, created, fmt.Errorf("error creating artist %s: %w", artist.Slug, err)
		}
		byName[a.Name] = &artist
		created++
	}
	return byName, created, nil
}

func seedArtworkRows(ctx context.Context, repo repository.ArtworkRepository, artists map[string]*model.Artist) (int, error) {
	created := 0
	for _, s := range seedArtworks {
		slug := slugify(s.Title)
		_, err := repo.FindBySlug(ctx, slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("error checking artwork %s: %w", slug, err)
		}
		artist, ok := artists[s.Artist]
		if !ok {
			return created, fmt.Errorf("artwork %s: unknown artist %s", slug, s.Artist)
		}
		artwork := &model.Artwork{
			Title:       s.Title,
			Slug:        slug,
			Description: s.Title + " by " + s.Artist + ".",
			Medium:      s.Medium,
			Dimensions:  s.Dimensions,
			Year:        s.Year,
			Price:       decimal.NewFromInt(s.Price),
			Currency:    "USD",
			Category:    s.Category,
			Available:   s.Available,
			Featured:    s.Featured,
			ArtistID:    artist.ID,
		}
		if err := repo.Create(ctx, artwork); err != nil {
			return created, fmt.Errorf("error creating artwork %s: %w", slug, err)
		}
		created++
	}
	return created, nil
}

func seedExhibitions(ctx context.Context, repo repository.ExhibitionRepository, artists map[string]*model.Artist) (int, error) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	shows := []model.Exhibition{
		{
			Title:       "Coastal Light",
			Description: "Paintings of the Swahili coast.",
			StartDate:   now.AddDate(0, 0, -10),
			EndDate:     now.AddDate(0, 1, 0),
			Location:    "Main Gallery",
			Status:      model.ExhibitionCurrent,
			Featured:    true,
			Artists:     []model.Artist{*artists["Amara Okafor"]},
		},
		{
			Title:                "New Voices",
			Description:          "Emerging East African artists.",
			StartDate:            now.AddDate(0, 2, 0),
			EndDate:              now.AddDate(0, 3, 0),
			Location:             "Project Room",
			Status:               model.ExhibitionUpcoming,
			RegistrationRequired: true,
			Artists:              []model.Artist{*artists["Kesi Mwalimu"], *artists["Jengo Tembo"]},
		},
	}

	created := 0
	for i := range shows {
		show := &shows[i]
		show.Slug = slugify(show.Title)
		_, err := repo.FindBySlug(ctx, show.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("error checking exhibition %s: %w", show.Slug, err)
		}
		if err := repo.Create(ctx, show); err != nil {
			return created, fmt.Errorf("error creating exhibition %s: %w", show.Slug, err)
		}
		created++
	}
	return created, nil
}
