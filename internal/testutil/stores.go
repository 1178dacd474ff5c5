package testutil

import (
	"gallery/internal/model"
)

// ArtworkField reads the logical list fields of an artwork.
func ArtworkField(w model.Artwork, field string) any {
	switch field {
	case "id":
		return w.ID
	case "title":
		return w.Title
	case "description":
		return w.Description
	case "medium":
		return w.Medium
	case "category":
		return w.Category
	case "price":
		return w.Price
	case "year":
		return w.Year
	case "available":
		return w.Available
	case "featured":
		return w.Featured
	case "artistId":
		return w.ArtistID
	case "createdAt":
		return w.CreatedAt
	case "artist.name":
		if w.Artist == nil {
			return nil
		}
		return w.Artist.Name
	}
	panic("testutil: unknown artwork field " + field)
}

// ArtworkStore returns a MemStore of artworks.
func ArtworkStore(artworks ...model.Artwork) *MemStore[model.Artwork] {
	return NewMemStore[model.Artwork](ArtworkField, nil, artworks...)
}

// ArtistStore returns a MemStore of artists whose artworkCount is derived from
// the available artworks in catalog.
func ArtistStore(catalog []model.Artwork, artists ...model.Artist) *MemStore[model.Artist] {
	count := func(a model.Artist) int64 {
		var n int64
		for _, w := range catalog {
			if w.ArtistID == a.ID && w.Available {
				n++
			}
		}
		return n
	}
	field := func(a model.Artist, field string) any {
		switch field {
		case "id":
			return a.ID
		case "name":
			return a.Name
		case "bio":
			return a.Bio
		case "country":
			return a.Country
		case "featured":
			return a.Featured
		case "verified":
			return a.Verified
		case "createdAt":
			return a.CreatedAt
		case "artworkCount":
			return count(a)
		}
		panic("testutil: unknown artist field " + field)
	}
	decorate := func(a model.Artist) model.Artist {
		a.ArtworkCount = count(a)
		return a
	}
	return NewMemStore[model.Artist](field, decorate, artists...)
}

// ExhibitionField reads the logical list fields of an exhibition.
func ExhibitionField(e model.Exhibition, field string) any {
	switch field {
	case "id":
		return e.ID
	case "title":
		return e.Title
	case "description":
		return e.Description
	case "status":
		return e.Status
	case "featured":
		return e.Featured
	case "registrationRequired":
		return e.RegistrationRequired
	case "startDate":
		return e.StartDate
	case "endDate":
		return e.EndDate
	case "createdAt":
		return e.CreatedAt
	case "artworkCount":
		return e.ArtworkCount
	case "registrationCount":
		return e.RegistrationCount
	}
	panic("testutil: unknown exhibition field " + field)
}

// ExhibitionStore returns a MemStore of exhibitions.
func ExhibitionStore(exhibitions ...model.Exhibition) *MemStore[model.Exhibition] {
	return NewMemStore[model.Exhibition](ExhibitionField, nil, exhibitions...)
}

// OrderField reads the logical list fields of an order.
func OrderField(o model.Order, field string) any {
	switch field {
	case "id":
		return o.ID
	case "orderNumber":
		return o.OrderNumber
	case "email":
		return o.Email
	case "customerName":
		return o.CustomerName
	case "status":
		return o.Status
	case "paymentStatus":
		return o.PaymentStatus
	case "totalAmount":
		return o.TotalAmount
	case "createdAt":
		return o.CreatedAt
	}
	panic("testutil: unknown order field " + field)
}

// MessageField reads the logical list fields of a contact message.
func MessageField(m model.ContactMessage, field string) any {
	switch field {
	case "id":
		return m.ID
	case "name":
		return m.Name
	case "email":
		return m.Email
	case "subject":
		return m.Subject
	case "createdAt":
		return m.CreatedAt
	}
	panic("testutil: unknown message field " + field)
}
