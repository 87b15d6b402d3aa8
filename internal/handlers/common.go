package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/autohaus/autohaus/internal/services"
	"github.com/autohaus/autohaus/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// parseSuchkriterien extracts search criteria from query parameters.
// Pagination keys are handled separately and skipped here.
func parseSuchkriterien(c *fiber.Ctx) services.Suchkriterien {
	kriterien := make(services.Suchkriterien)

	args := c.Context().QueryArgs()
	for key, value := range args.All() {
		name := strings.TrimSpace(string(key))
		if name == "" || name == "page" || name == "size" {
			continue
		}
		kriterien[name] = string(value)
	}

	return kriterien
}

// handleServiceError maps typed service errors to HTTP responses
func handleServiceError(c *fiber.Ctx, err error) error {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return utils.NotFoundResponse(c, notFound.Error())
	}

	var invalidKey *services.InvalidKeyError
	if errors.As(err, &invalidKey) {
		return utils.NotFoundResponse(c, invalidKey.Error())
	}

	var invalidValue *services.InvalidValueError
	if errors.As(err, &invalidValue) {
		return utils.NotFoundResponse(c, invalidValue.Error())
	}

	var fgnrExists *services.FgnrExistsError
	if errors.As(err, &fgnrExists) {
		return utils.ErrorResponse(c, fgnrExists.Error(), fiber.StatusUnprocessableEntity, "fgnr")
	}

	var versionInvalid *services.VersionInvalidError
	if errors.As(err, &versionInvalid) {
		return utils.PreconditionResponse(c, fiber.StatusPreconditionFailed, versionInvalid.Error())
	}

	var versionOutdated *services.VersionOutdatedError
	if errors.As(err, &versionOutdated) {
		return utils.PreconditionResponse(c, fiber.StatusPreconditionFailed, versionOutdated.Error())
	}

	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "internal")
}

// etag formats a version as a quoted entity tag
func etag(version int) string {
	return fmt.Sprintf(`"%d"`, version)
}
