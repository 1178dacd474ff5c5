package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/response"
	"gallery/internal/service"
)

// CatalogHandler serves the public catalog.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListArtworks godoc
// @Summary List artworks
// @Tags catalog
// @Produce json
// @Param category query string false "Category" Enums(PAINTING, SCULPTURE, PHOTOGRAPHY, MIXED_MEDIA, DIGITAL, PRINT, TEXTILE, CERAMIC, JEWELRY, OTHER)
// @Param medium query string false "Medium substring"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param artist query string false "Artist name substring"
// @Param year query int false "Year"
// @Param available query bool false "Only available"
// @Param featured query bool false "Only featured"
// @Param search query string false "Search title, description and artist"
// @Param sortBy query string false "Sort key" Enums(price, title, artist, year, created)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page" minimum(1)
// @Param limit query int false "Page size" minimum(1) maximum(100)
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /artworks [get]
func (h *CatalogHandler) ListArtworks(c echo.Context) error {
	res, err := h.catalog.ListArtworks(c.Request().Context(), c.QueryParams())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.FromResult(res))
}

// GetArtwork godoc
// @Summary Get an artwork and count the view
// @Tags catalog
// @Produce json
// @Param slug path string true "Artwork slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /artworks/{slug} [get]
func (h *CatalogHandler) GetArtwork(c echo.Context) error {
	artwork, err := h.catalog.GetArtwork(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, artwork)
}

// ListArtists godoc
// @Summary List artists
// @Tags catalog
// @Produce json
// @Param country query string false "Country substring"
// @Param featured query bool false "Only featured"
// @Param verified query bool false "Only verified"
// @Param search query string false "Search name and bio"
// @Param sortBy query string false "Sort key" Enums(name, country, artworkCount, created)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /artists [get]
func (h *CatalogHandler) ListArtists(c echo.Context) error {
	res, err := h.catalog.ListArtists(c.Request().Context(), c.QueryParams())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.FromResult(res))
}

// GetArtist godoc
// @Summary Get an artist
// @Tags catalog
// @Produce json
// @Param slug path string true "Artist slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /artists/{slug} [get]
func (h *CatalogHandler) GetArtist(c echo.Context) error {
	artist, err := h.catalog.GetArtist(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, artist)
}

// ListArtistArtworks godoc
// @Summary List the artworks of an artist
// @Description Accepts the same parameters as /artworks.
// @Tags catalog
// @Produce json
// @Param slug path string true "Artist slug"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /artists/{slug}/artworks [get]
func (h *CatalogHandler) ListArtistArtworks(c echo.Context) error {
	res, err := h.catalog.ListArtistArtworks(c.Request().Context(), c.Param("slug"), c.QueryParams())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.FromResult(res))
}

// ListExhibitions godoc
// @Summary List exhibitions
// @Description Without a status filter, exhibitions that already ended are left out.
// @Tags catalog
// @Produce json
// @Param status query string false "Status" Enums(UPCOMING, CURRENT, PAST, CANCELLED)
// @Param featured query bool false "Only featured"
// @Param registrationRequired query bool false "Registration required"
// @Param search query string false "Search title and description"
// @Param sortBy query string false "Sort key" Enums(startDate, title, created)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /exhibitions [get]
func (h *CatalogHandler) ListExhibitions(c echo.Context) error {
	res, err := h.catalog.ListExhibitions(c.Request().Context(), c.QueryParams())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.FromResult(res))
}

// GetExhibition godoc
// @Summary Get an exhibition
// @Tags catalog
// @Produce json
// @Param slug path string true "Exhibition slug"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exhibitions/{slug} [get]
func (h *CatalogHandler) GetExhibition(c echo.Context) error {
	exhibition, err := h.catalog.GetExhibition(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, exhibition)
}
