package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	salondomain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/media"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

// ======================================================
// HANDLER
// ======================================================

type SalonHandler struct {
	create     *ucSalon.CreateSalon
	list       *ucSalon.ListSalons
	nearby     *ucSalon.SearchNearby
	mine       *ucSalon.ListMySalons
	get        *ucSalon.GetSalon
	update     *ucSalon.UpdateSalon
	reactivate *ucSalon.ReactivateSalon
	remove     *ucSalon.DeleteSalon
	upload     *ucSalon.UploadSalonImage
}

func NewSalonHandler(
	create *ucSalon.CreateSalon,
	list *ucSalon.ListSalons,
	nearby *ucSalon.SearchNearby,
	mine *ucSalon.ListMySalons,
	get *ucSalon.GetSalon,
	update *ucSalon.UpdateSalon,
	reactivate *ucSalon.ReactivateSalon,
	remove *ucSalon.DeleteSalon,
	upload *ucSalon.UploadSalonImage,
) *SalonHandler {
	return &SalonHandler{
		create:     create,
		list:       list,
		nearby:     nearby,
		mine:       mine,
		get:        get,
		update:     update,
		reactivate: reactivate,
		remove:     remove,
		upload:     upload,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SalonRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Province    *string `json:"province"`
	PostalCode  *string `json:"postalCode"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Website     *string `json:"website"`
	Timezone    *string `json:"timezone"`

	Services     *[]models.SalonService `json:"services"`
	OpeningHours *models.OpeningHours   `json:"openingHours"`
}

func (r SalonRequest) fields() ucSalon.Fields {
	return ucSalon.Fields{
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		City:         r.City,
		Province:     r.Province,
		PostalCode:   r.PostalCode,
		Phone:        r.Phone,
		Email:        r.Email,
		Website:      r.Website,
		Timezone:     r.Timezone,
		Services:     r.Services,
		OpeningHours: r.OpeningHours,
	}
}

type NearbyRequest struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	MaxDistance *float64 `json:"maxDistance"`
}

var ErrImageRequired = httperr.Validation("image_required", "An image file is required in the \"image\" field")

// ======================================================
// PUBLIC
// ======================================================

func (h *SalonHandler) List(c *gin.Context) {
	f := salondomain.Filter{
		City:     c.Query("city"),
		Services: splitList(c.Query("services")),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}

	lat, err := queryFloat(c, "latitude")
	if err != nil {
		fail(c, err)
		return
	}
	lon, err := queryFloat(c, "longitude")
	if err != nil {
		fail(c, err)
		return
	}
	maxDistance, err := queryFloat(c, "maxDistance")
	if err != nil {
		fail(c, err)
		return
	}

	if lat != nil && lon != nil {
		f.Near = &salondomain.Near{Lat: *lat, Lon: *lon}
		if maxDistance != nil {
			f.Near.MaxDistanceKm = *maxDistance
		}
	}

	res, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, res.Salons, httpresp.NewPagination(res.Page, res.Limit, res.Total))
}

func (h *SalonHandler) Nearby(c *gin.Context) {
	var req NearbyRequest
	if !bindJSON(c, &req) {
		return
	}

	salons, err := h.nearby.Execute(c.Request.Context(), ucSalon.NearbyInput{
		Lat:           req.Latitude,
		Lon:           req.Longitude,
		MaxDistanceKm: req.MaxDistance,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Items(c, "", salons)
}

func (h *SalonHandler) Get(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "", s)
}

// ======================================================
// OWNER
// ======================================================

func (h *SalonHandler) Create(c *gin.Context) {
	var req SalonRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.create.Execute(c.Request.Context(), middleware.CurrentIdentity(c), req.fields())
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "Salon created successfully", s)
}

func (h *SalonHandler) Mine(c *gin.Context) {
	salons, err := h.mine.Execute(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Items(c, "", salons)
}

func (h *SalonHandler) Update(c *gin.Context) {
	var req SalonRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.update.Execute(
		c.Request.Context(),
		middleware.CurrentIdentity(c),
		c.Param("id"),
		req.fields(),
	)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "Salon updated successfully", s)
}

func (h *SalonHandler) Reactivate(c *gin.Context) {
	s, err := h.reactivate.Execute(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "Salon reactivated successfully", s)
}

func (h *SalonHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, "Salon deleted successfully", nil)
}

func (h *SalonHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+(1<<20))

	fh, err := c.FormFile("image")
	if err != nil {
		fail(c, ErrImageRequired)
		return
	}
	if fh.Size > media.MaxUploadBytes {
		fail(c, media.ErrImageTooLarge)
		return
	}

	file, err := fh.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer file.Close()

	s, err := h.upload.Execute(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"), file)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, "Image uploaded successfully", s)
}
