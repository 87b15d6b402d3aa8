package handlers

import (
	"bytes"
	"fmt"

	"github.com/autohaus/autohaus/internal/models"
	"github.com/autohaus/autohaus/internal/services"
	"github.com/autohaus/autohaus/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AutoGetHandler handles read-only routes
type AutoGetHandler struct {
	DB *gorm.DB
}

// PageInfo carries the pagination metadata of a search response
type PageInfo struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
}

// AutoPage is the envelope of a search response
type AutoPage struct {
	Content []models.Auto `json:"content"`
	Page    PageInfo      `json:"page"`
}

// GetAutoByID handles GET /rest/:id
// @Summary Get a car by ID
// @Description Get a single car record including its model name
// @Tags Autos
// @Produce json
// @Param id path int true "Record ID"
// @Param If-None-Match header string false "Cached entity tag"
// @Success 200 {object} models.Auto
// @Success 304
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rest/{id} [get]
func (h *AutoGetHandler) GetAutoByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, fmt.Sprintf("Ungueltige ID: %s", c.Params("id")))
	}

	auto, err := services.FindAutoByID(h.DB, uint64(id), false)
	if err != nil {
		return handleServiceError(c, err)
	}

	tag := etag(auto.Version)
	if c.Get(fiber.HeaderIfNoneMatch) == tag {
		return c.SendStatus(fiber.StatusNotModified)
	}

	c.Set(fiber.HeaderETag, tag)
	return c.Status(fiber.StatusOK).JSON(auto)
}

// GetAutos handles GET /rest
// @Summary Search cars
// @Description Search car records by criteria, paginated
// @Tags Autos
// @Produce json
// @Param modell query string false "Substring of the model name"
// @Param fgnr query string false "Vehicle identification number"
// @Param art query string false "COUPE, LIMO or KOMBI"
// @Param preis query number false "Upper price bound"
// @Param lieferbar query bool false "Availability"
// @Param sport query bool false "Tagged SPORT"
// @Param komfort query bool false "Tagged KOMFORT"
// @Param gelaende query bool false "Tagged GELAENDE"
// @Param page query int false "1-based page number"
// @Param size query int false "Page size, 0 for all"
// @Success 200 {object} AutoPage
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rest [get]
func (h *AutoGetHandler) GetAutos(c *fiber.Ctx) error {
	kriterien := parseSuchkriterien(c)
	pageable := services.CreatePageable(c.Query("page"), c.Query("size"))

	slice, err := services.FindAutos(h.DB, kriterien, pageable)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(AutoPage{
		Content: slice.Content,
		Page: PageInfo{
			Size:          slice.Pageable.Size,
			Number:        slice.Pageable.Number,
			TotalElements: slice.TotalElements,
			TotalPages:    slice.TotalPages(),
		},
	})
}

// GetFile handles GET /rest/file/:id
// @Summary Download the file of a car
// @Description Stream the binary file attached to a car record
// @Tags Autos
// @Produce octet-stream
// @Param id path int true "Record ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rest/file/{id} [get]
func (h *AutoGetHandler) GetFile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, fmt.Sprintf("Ungueltige ID: %s", c.Params("id")))
	}

	file, err := services.FindFileByAutoID(h.DB, uint64(id))
	if err != nil {
		return handleServiceError(c, err)
	}
	if file == nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("Keine Datei zum Auto mit der ID %d gefunden", id))
	}

	c.Set(fiber.HeaderContentType, file.Mimetype)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", file.Filename))
	return c.Status(fiber.StatusOK).SendStream(bytes.NewReader(file.Data), len(file.Data))
}
