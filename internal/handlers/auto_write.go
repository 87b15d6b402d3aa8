package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/autohaus/autohaus/internal/services"
	"github.com/autohaus/autohaus/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AutoWriteHandler handles mutating routes
type AutoWriteHandler struct {
	DB     *gorm.DB
	Mailer *services.Mailer
}

// PostAuto handles POST /rest
// @Summary Create a car
// @Description Create a new car record with model name and images
// @Tags Autos
// @Accept json
// @Produce json
// @Param body body AutoDTO true "New record"
// @Success 201
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rest [post]
func (h *AutoWriteHandler) PostAuto(c *fiber.Ctx) error {
	var dto AutoDTO
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Ungueltiger Request-Body: %v", err),
			fiber.StatusBadRequest, "body")
	}

	if problems := dto.Validate(true); len(problems) > 0 {
		return utils.ErrorResponse(c, strings.Join(problems, "; "),
			fiber.StatusBadRequest, "validation")
	}

	id, err := services.CreateAuto(h.DB, h.Mailer, dto.ToModel(true))
	if err != nil {
		return handleServiceError(c, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("%s/%d", c.BaseURL()+c.Path(), id))
	return c.SendStatus(fiber.StatusCreated)
}

// PutAuto handles PUT /rest/:id
// @Summary Update a car
// @Description Update an existing car record, guarded by its version
// @Tags Autos
// @Accept json
// @Param id path int true "Record ID"
// @Param If-Match header string true "Entity tag of the known version"
// @Param body body AutoDTO true "Changed record"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 412 {object} utils.ErrorResponseStruct
// @Failure 428 {object} utils.ErrorResponseStruct
// @Router /rest/{id} [put]
func (h *AutoWriteHandler) PutAuto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, fmt.Sprintf("Ungueltige ID: %s", c.Params("id")))
	}

	version := c.Get(fiber.HeaderIfMatch)
	if version == "" {
		return utils.PreconditionResponse(c, fiber.StatusPreconditionRequired,
			"Header \"If-Match\" fehlt")
	}

	var dto AutoDTO
	if err := c.BodyParser(&dto); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Ungueltiger Request-Body: %v", err),
			fiber.StatusBadRequest, "body")
	}

	if problems := dto.Validate(false); len(problems) > 0 {
		return utils.ErrorResponse(c, strings.Join(problems, "; "),
			fiber.StatusBadRequest, "validation")
	}

	newVersion, err := services.UpdateAuto(h.DB, uint64(id), version, dto.ToModel(false))
	if err != nil {
		return handleServiceError(c, err)
	}

	c.Set(fiber.HeaderETag, etag(newVersion))
	return c.SendStatus(fiber.StatusNoContent)
}

// PostFile handles POST /rest/:id
// @Summary Upload a file for a car
// @Description Attach a binary file to a car record, replacing any existing one
// @Tags Autos
// @Accept mpfd
// @Param id path int true "Record ID"
// @Param file formData file true "File to upload"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rest/{id} [post]
func (h *AutoWriteHandler) PostFile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, fmt.Sprintf("Ungueltige ID: %s", c.Params("id")))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, "Multipart-Feld \"file\" fehlt",
			fiber.StatusBadRequest, "file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "file")
	}

	mimetype := fileHeader.Header.Get(fiber.HeaderContentType)
	if _, err := services.AddFile(h.DB, uint64(id), fileHeader.Filename, mimetype, data); err != nil {
		return handleServiceError(c, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("%s/rest/file/%d", c.BaseURL(), id))
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAuto handles DELETE /rest/:id
// @Summary Delete a car
// @Description Delete a car record with all dependent rows
// @Tags Autos
// @Param id path int true "Record ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /rest/{id} [delete]
func (h *AutoWriteHandler) DeleteAuto(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	if _, err := services.DeleteAuto(h.DB, uint64(id)); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
