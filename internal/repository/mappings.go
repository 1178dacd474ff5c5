package repository

// Field names below are the logical names used by the list schemas in the service layer.

var ArtworkMapping = Mapping{
	Table: "artworks",
	Columns: map[string]string{
		"title":       "artworks.title",
		"description": "artworks.description",
		"medium":      "artworks.medium",
		"category":    "artworks.category",
		"price":       "artworks.price",
		"year":        "artworks.year",
		"available":   "artworks.available",
		"featured":    "artworks.featured",
		"artistId":    "artworks.artist_id",
		"createdAt":   "artworks.created_at",
	},
	Relations: map[string]Relation{
		"artist": {
			Table:      "artists",
			LocalKey:   "artworks.artist_id",
			ForeignKey: "artists.id",
			Columns:    map[string]string{"name": "artists.name"},
			SoftDelete: true,
		},
	},
}

var ArtistMapping = Mapping{
	Table: "artists",
	Columns: map[string]string{
		"name":      "artists.name",
		"bio":       "artists.bio",
		"country":   "artists.country",
		"featured":  "artists.featured",
		"verified":  "artists.verified",
		"createdAt": "artists.created_at",
	},
	Derived: map[string]Derived{
		"artworkCount": {
			Expr:  "(SELECT COUNT(*) FROM artworks WHERE artworks.artist_id = artists.id AND artworks.available = TRUE AND artworks.deleted_at IS NULL)",
			Alias: "artwork_count",
		},
	},
}

var ExhibitionMapping = Mapping{
	Table: "exhibitions",
	Columns: map[string]string{
		"title":                "exhibitions.title",
		"description":          "exhibitions.description",
		"status":               "exhibitions.status",
		"featured":             "exhibitions.featured",
		"registrationRequired": "exhibitions.registration_required",
		"startDate":            "exhibitions.start_date",
		"endDate":              "exhibitions.end_date",
		"createdAt":            "exhibitions.created_at",
	},
	Derived: map[string]Derived{
		"artworkCount": {
			Expr:  "(SELECT COUNT(*) FROM exhibition_artworks WHERE exhibition_artworks.exhibition_id = exhibitions.id)",
			Alias: "artwork_count",
		},
		"registrationCount": {
			Expr:  "(SELECT COUNT(*) FROM exhibition_registrations WHERE exhibition_registrations.exhibition_id = exhibitions.id)",
			Alias: "registration_count",
		},
	},
}

var OrderMapping = Mapping{
	Table: "orders",
	Columns: map[string]string{
		"orderNumber":   "orders.order_number",
		"email":         "orders.email",
		"customerName":  "orders.customer_name",
		"status":        "orders.status",
		"paymentStatus": "orders.payment_status",
		"totalAmount":   "orders.total_amount",
		"createdAt":     "orders.created_at",
	},
}

var ContactMessageMapping = Mapping{
	Table: "contact_messages",
	Columns: map[string]string{
		"name":      "contact_messages.name",
		"email":     "contact_messages.email",
		"subject":   "contact_messages.subject",
		"createdAt": "contact_messages.created_at",
	},
}
