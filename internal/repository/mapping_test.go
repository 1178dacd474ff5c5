package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"gallery/internal/listquery"
	"gallery/internal/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "gallery:gallery@tcp(127.0.0.1:3306)/gallery?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func findSQL(t *testing.T, m Mapping, dest interface{}, q listquery.Query) string {
	t.Helper()
	db := dryRunDB(t)
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		tx = tx.Model(dest).Select(m.Selects())
		tx, err := m.Where(tx, q.Where)
		require.NoError(t, err)
		tx, err = m.Order(tx, q.Sort)
		require.NoError(t, err)
		return tx.Offset(q.Skip()).Limit(q.Limit).Find(dest)
	})
}

func TestMapping_Clauses(t *testing.T) {
	tests := []struct {
		name     string
		clause   listquery.Clause
		contains []string
	}{
		{
			name:     "equality",
			clause:   listquery.Equal{Field: "category", Value: "PAINTING"},
			contains: []string{"artworks.category = 'PAINTING'"},
		},
		{
			name:     "substring is case insensitive",
			clause:   listquery.Contains{Field: "medium", Value: "Oil"},
			contains: []string{"LOWER(artworks.medium) LIKE '%oil%'"},
		},
		{
			name:     "closed range",
			clause:   listquery.Range{Field: "price", Min: decimal.NewFromInt(500), Max: decimal.NewFromInt(2000)},
			contains: []string{"artworks.price >= ", "artworks.price <= "},
		},
		{
			name:     "open range",
			clause:   listquery.Range{Field: "year", Min: 2000},
			contains: []string{"artworks.year >= 2000"},
		},
		{
			name:   "related substring",
			clause: listquery.RelatedContains{Relation: "artist", Field: "name", Value: "Wanjiru"},
			contains: []string{
				"artworks.artist_id IN (SELECT artists.id FROM artists WHERE LOWER(artists.name) LIKE '%wanjiru%' AND artists.deleted_at IS NULL)",
			},
		},
		{
			name: "search group",
			clause: listquery.AnyOf{Clauses: []listquery.Clause{
				listquery.Contains{Field: "title", Value: "sun"},
				listquery.Contains{Field: "description", Value: "sun"},
			}},
			contains: []string{"((LOWER(artworks.title) LIKE '%sun%') OR (LOWER(artworks.description) LIKE '%sun%'))"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := findSQL(t, ArtworkMapping, &[]model.Artwork{}, listquery.Query{
				Where: []listquery.Clause{tt.clause},
				Page:  1,
				Limit: 12,
			})
			for _, want := range tt.contains {
				assert.Contains(t, sql, want)
			}
			assert.Contains(t, sql, "`artworks`.`deleted_at` IS NULL")
		})
	}
}

func TestMapping_LikeWildcardsEscaped(t *testing.T) {
	assert.Equal(t, `%50\% off%`, likePattern("50% OFF"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%c:\\d%`, likePattern(`C:\d`))
}

func TestMapping_Order(t *testing.T) {
	t.Run("plain column with tiebreaker", func(t *testing.T) {
		sql := findSQL(t, ArtworkMapping, &[]model.Artwork{}, listquery.Query{
			Sort:  listquery.Sort{Field: "price", Direction: listquery.Asc},
			Page:  2,
			Limit: 2,
		})
		assert.Contains(t, sql, "ORDER BY artworks.price ASC,artworks.id ASC")
		assert.Contains(t, sql, "LIMIT 2 OFFSET 2")
	})

	t.Run("related column joins live rows only", func(t *testing.T) {
		sql := findSQL(t, ArtworkMapping, &[]model.Artwork{}, listquery.Query{
			Sort:  listquery.Sort{Field: "artist.name", Direction: listquery.Desc},
			Page:  1,
			Limit: 12,
		})
		assert.Contains(t, sql, "LEFT JOIN artists ON artists.id = artworks.artist_id AND artists.deleted_at IS NULL")
		assert.Contains(t, sql, "ORDER BY artists.name DESC")
		assert.True(t, strings.HasPrefix(sql, "SELECT artworks.*"))
	})

	t.Run("relation without soft delete joins on the key only", func(t *testing.T) {
		m := ArtworkMapping
		rel := m.Relations["artist"]
		rel.SoftDelete = false
		m.Relations = map[string]Relation{"artist": rel}

		sql := findSQL(t, m, &[]model.Artwork{}, listquery.Query{
			Sort:  listquery.Sort{Field: "artist.name", Direction: listquery.Asc},
			Page:  1,
			Limit: 12,
		})
		assert.Contains(t, sql, "LEFT JOIN artists ON artists.id = artworks.artist_id ")
		assert.NotContains(t, sql, "artists.deleted_at")
	})

	t.Run("derived aggregate is computed in the query", func(t *testing.T) {
		sql := findSQL(t, ArtistMapping, &[]model.Artist{}, listquery.Query{
			Sort:  listquery.Sort{Field: "artworkCount", Direction: listquery.Desc},
			Page:  1,
			Limit: 12,
		})
		sub := ArtistMapping.Derived["artworkCount"].Expr
		assert.Contains(t, sql, sub+" AS artwork_count")
		assert.Contains(t, sql, "ORDER BY "+sub+" DESC")
		assert.Contains(t, sql, "artworks.available = TRUE")
	})
}

func TestMapping_UnknownFieldFails(t *testing.T) {
	db := dryRunDB(t)

	_, err := ArtworkMapping.Where(db, []listquery.Clause{listquery.Equal{Field: "nope", Value: 1}})
	assert.Error(t, err)

	_, err = ArtworkMapping.Order(db, listquery.Sort{Field: "gallery.name"})
	assert.Error(t, err)
}

func TestListStore_CountIgnoresWindow(t *testing.T) {
	db := dryRunDB(t)
	store := newListStore[model.Artwork](db, ArtworkMapping)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var n int64
		q, err := ArtworkMapping.Where(tx.Model(&model.Artwork{}), []listquery.Clause{listquery.Equal{Field: "available", Value: true}})
		require.NoError(t, err)
		return q.Count(&n)
	})
	assert.Contains(t, sql, "SELECT count(*) FROM `artworks`")
	assert.NotContains(t, sql, "LIMIT")

	_, err := store.Count(context.Background(), nil)
	assert.NoError(t, err)
}
