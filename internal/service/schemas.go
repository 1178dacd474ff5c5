package service

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"gallery/internal/listquery"
	"gallery/internal/model"
)

// MinArtworkYear is the earliest accepted value of the year filter.
const MinArtworkYear = 1900

func enumValues[T ~string](values ...T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// ArtworkSchema is the list schema of /artworks. The year filter is capped at the
// year of now.
func ArtworkSchema(now time.Time) listquery.Schema {
	return listquery.Schema{
		Resource: "artworks",
		Params: []listquery.Param{
			{Name: "category", Type: listquery.Enum, Values: enumValues(model.ArtworkCategories...), Op: listquery.OpEqual, Field: "category"},
			{Name: "medium", Type: listquery.String, Op: listquery.OpContains, Field: "medium"},
			{Name: "minPrice", Type: listquery.Decimal, Rule: "gte=0", Op: listquery.OpMin, Field: "price"},
			{Name: "maxPrice", Type: listquery.Decimal, Rule: "gte=0", Op: listquery.OpMax, Field: "price"},
			{Name: "artist", Type: listquery.String, Op: listquery.OpRelatedContains, Field: "artist.name"},
			{Name: "year", Type: listquery.Int, Rule: "gte=" + strconv.Itoa(MinArtworkYear) + ",lte=" + strconv.Itoa(now.Year()), Op: listquery.OpEqual, Field: "year"},
			{Name: "available", Type: listquery.Bool, Op: listquery.OpEqual, Field: "available"},
			{Name: "featured", Type: listquery.Bool, Op: listquery.OpEqual, Field: "featured"},
		},
		Search: []string{"title", "description", "artist.name"},
		Sorts: []listquery.SortKey{
			{Name: "price", Field: "price"},
			{Name: "title", Field: "title"},
			{Name: "artist", Field: "artist.name"},
			{Name: "year", Field: "year"},
			{Name: "created", Field: "createdAt"},
		},
		DefaultSort:  "created",
		DefaultOrder: listquery.Desc,
	}
}

// ArtistArtworkSchema is ArtworkSchema restricted to one artist's work.
func ArtistArtworkSchema(now time.Time, artistID uuid.UUID) listquery.Schema {
	s := ArtworkSchema(now)
	s.Resource = "artist artworks"
	s.Implicit = func(listquery.Params, time.Time) []listquery.Clause {
		return []listquery.Clause{listquery.Equal{Field: "artistId", Value: artistID}}
	}
	return s
}

// ArtistSchema is the list schema of /artists.
func ArtistSchema() listquery.Schema {
	return listquery.Schema{
		Resource: "artists",
		Params: []listquery.Param{
			{Name: "country", Type: listquery.String, Op: listquery.OpContains, Field: "country"},
			{Name: "featured", Type: listquery.Bool, Op: listquery.OpEqual, Field: "featured"},
			{Name: "verified", Type: listquery.Bool, Op: listquery.OpEqual, Field: "verified"},
		},
		Search: []string{"name", "bio"},
		Sorts: []listquery.SortKey{
			{Name: "name", Field: "name"},
			{Name: "country", Field: "country"},
			{Name: "artworkCount", Field: "artworkCount"},
			{Name: "created", Field: "createdAt"},
		},
		DefaultSort:  "name",
		DefaultOrder: listquery.Asc,
	}
}

// ExhibitionSchema is the list schema of /exhibitions. Without a status filter,
// exhibitions that have already ended are hidden.
func ExhibitionSchema() listquery.Schema {
	return listquery.Schema{
		Resource: "exhibitions",
		Params: []listquery.Param{
			{Name: "status", Type: listquery.Enum, Values: enumValues(model.ExhibitionUpcoming, model.ExhibitionCurrent, model.ExhibitionPast, model.ExhibitionCancelled), Op: listquery.OpEqual, Field: "status"},
			{Name: "featured", Type: listquery.Bool, Op: listquery.OpEqual, Field: "featured"},
			{Name: "registrationRequired", Type: listquery.Bool, Op: listquery.OpEqual, Field: "registrationRequired"},
		},
		Search: []string{"title", "description"},
		Sorts: []listquery.SortKey{
			{Name: "startDate", Field: "startDate"},
			{Name: "title", Field: "title"},
			{Name: "created", Field: "createdAt"},
		},
		DefaultSort:  "startDate",
		DefaultOrder: listquery.Desc,
		Implicit: func(p listquery.Params, now time.Time) []listquery.Clause {
			if _, ok := p.Filters["status"]; ok {
				return nil
			}
			return []listquery.Clause{listquery.Range{Field: "endDate", Min: now}}
		},
	}
}

// OrderSchema is the list schema of the admin order list.
func OrderSchema() listquery.Schema {
	return listquery.Schema{
		Resource: "orders",
		Params: []listquery.Param{
			{Name: "status", Type: listquery.Enum, Values: enumValues(model.OrderPending, model.OrderConfirmed, model.OrderProcessing, model.OrderShipped, model.OrderDelivered, model.OrderCancelled, model.OrderRefunded), Op: listquery.OpEqual, Field: "status"},
			{Name: "paymentStatus", Type: listquery.Enum, Values: enumValues(model.PaymentPending, model.PaymentProcessing, model.PaymentCompleted, model.PaymentFailed, model.PaymentCancelled, model.PaymentRefunded), Op: listquery.OpEqual, Field: "paymentStatus"},
		},
		Search: []string{"orderNumber", "email", "customerName"},
		Sorts: []listquery.SortKey{
			{Name: "created", Field: "createdAt"},
			{Name: "total", Field: "totalAmount"},
		},
		DefaultSort:  "created",
		DefaultOrder: listquery.Desc,
	}
}

// MessageSchema is the list schema of the admin contact message list.
func MessageSchema() listquery.Schema {
	return listquery.Schema{
		Resource: "messages",
		Search:   []string{"name", "email", "subject"},
		Sorts: []listquery.SortKey{
			{Name: "created", Field: "createdAt"},
			{Name: "name", Field: "name"},
		},
		DefaultSort:  "created",
		DefaultOrder: listquery.Desc,
	}
}
