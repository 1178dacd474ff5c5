package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/internal/events"
	"gallery/internal/listquery"
)

func TestMemStore_FilterSortWindow(t *testing.T) {
	artist := NewArtist("Amani Otieno")
	store := ArtworkStore(
		NewArtwork("A", artist, 300),
		NewArtwork("B", artist, 900),
		NewArtwork("C", artist, 600),
		NewArtwork("D", artist, 100, Unavailable()),
	)
	q := listquery.Query{
		Where: []listquery.Clause{
			listquery.Equal{Field: "available", Value: true},
			listquery.Range{Field: "price", Min: decimal.NewFromInt(200)},
		},
		Sort:  listquery.Sort{Field: "price", Direction: listquery.Desc},
		Page:  1,
		Limit: 2,
	}

	n, err := store.Count(context.Background(), q.Where)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	rows, err := store.Find(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].Title)
	assert.Equal(t, "C", rows[1].Title)
}

func TestMemStore_RelatedAndSearch(t *testing.T) {
	wanjiru := NewArtist("Wanjiru Kamau")
	otieno := NewArtist("Amani Otieno")
	store := ArtworkStore(NewArtwork("Sunset", wanjiru, 100), NewArtwork("Harbour", otieno, 100))

	n, err := store.Count(context.Background(), []listquery.Clause{
		listquery.RelatedContains{Relation: "artist", Field: "name", Value: "WANJ"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.Count(context.Background(), []listquery.Clause{
		listquery.AnyOf{Clauses: []listquery.Clause{
			listquery.Contains{Field: "title", Value: "harb"},
			listquery.RelatedContains{Relation: "artist", Field: "name", Value: "wanjiru"},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMockBus(t *testing.T) {
	bus := NewMockBus()
	bus.Emit(context.Background(), events.New(events.TopicOrderCreated, nil))
	assert.Equal(t, []string{events.TopicOrderCreated}, bus.Topics())
}
