package graphql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/autohaus/autohaus/internal/models"
	"github.com/autohaus/autohaus/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ctxKey int

const sessionCookieKey ctxKey = iota

// Resolver executes the GraphQL operations against the service layer.
type Resolver struct {
	DB     *gorm.DB
	Mailer *services.Mailer
}

// Handler builds the Fiber handler serving POST /graphql.
func Handler(db *gorm.DB, mailer *services.Mailer) (fiber.Handler, error) {
	resolver := &Resolver{DB: db, Mailer: mailer}
	schema, err := buildSchema(resolver)
	if err != nil {
		return nil, err
	}

	return func(c *fiber.Ctx) error {
		var body struct {
			Query         string                 `json:"query"`
			OperationName string                 `json:"operationName"`
			Variables     map[string]interface{} `json:"variables"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []fiber.Map{{"message": "invalid request body"}},
			})
		}

		ctx := context.WithValue(c.UserContext(), sessionCookieKey, c.Cookies("cookie_session"))

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			OperationName:  body.OperationName,
			VariableValues: body.Variables,
			Context:        ctx,
		})

		return c.Status(fiber.StatusOK).JSON(result)
	}, nil
}

// requireRoles validates the session cookie from the request context
// against the given roles.
func requireRoles(ctx context.Context, roles []string) error {
	cookie, _ := ctx.Value(sessionCookieKey).(string)
	if cookie == "" {
		return fmt.Errorf("nicht authentifiziert")
	}
	if _, err := services.ValidateSession(cookie, roles); err != nil {
		return fmt.Errorf("keine Berechtigung: %w", err)
	}
	return nil
}

func (r *Resolver) auto(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	auto, err := services.FindAutoByID(r.DB, id, false)
	if err != nil {
		return nil, err
	}
	return *auto, nil
}

func (r *Resolver) autos(p graphql.ResolveParams) (interface{}, error) {
	kriterien := make(services.Suchkriterien)
	if input, ok := p.Args["suchkriterien"].(map[string]interface{}); ok {
		for key, value := range input {
			switch v := value.(type) {
			case string:
				kriterien[key] = v
			case bool:
				kriterien[key] = strconv.FormatBool(v)
			}
		}
	}

	pageable := services.Pageable{Number: 0, Size: 0}
	slice, err := services.FindAutos(r.DB, kriterien, pageable)
	if err != nil {
		return nil, err
	}
	return slice.Content, nil
}

func (r *Resolver) create(p graphql.ResolveParams) (interface{}, error) {
	if err := requireRoles(p.Context, []string{"admin", "user"}); err != nil {
		return nil, err
	}

	input, _ := p.Args["input"].(map[string]interface{})
	auto := autoFromInput(input, true)

	id, err := services.CreateAuto(r.DB, r.Mailer, auto)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"id": strconv.FormatUint(id, 10)}, nil
}

func (r *Resolver) update(p graphql.ResolveParams) (interface{}, error) {
	if err := requireRoles(p.Context, []string{"admin", "user"}); err != nil {
		return nil, err
	}

	input, _ := p.Args["input"].(map[string]interface{})
	id, err := parseID(input["id"])
	if err != nil {
		return nil, err
	}
	version, _ := input["version"].(int)

	auto := autoFromInput(input, false)
	newVersion, err := services.UpdateAuto(r.DB, id, fmt.Sprintf(`"%d"`, version), auto)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"version": newVersion}, nil
}

func (r *Resolver) delete(p graphql.ResolveParams) (interface{}, error) {
	if err := requireRoles(p.Context, []string{"admin"}); err != nil {
		return nil, err
	}

	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}
	return services.DeleteAuto(r.DB, id)
}

func parseID(arg interface{}) (uint64, error) {
	str, ok := arg.(string)
	if !ok {
		return 0, fmt.Errorf("ungueltige ID: %v", arg)
	}
	id, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ungueltige ID: %s", str)
	}
	return id, nil
}

func autoFromInput(input map[string]interface{}, withRefs bool) *models.Auto {
	auto := &models.Auto{}

	if fgnr, ok := input["fgnr"].(string); ok {
		auto.Fgnr = fgnr
	}
	if art, ok := input["art"].(string); ok {
		auto.Art = art
	}
	if preis, ok := input["preis"].(float64); ok {
		auto.Preis = decimal.NewFromFloat(preis)
	}
	if rabatt, ok := input["rabatt"].(float64); ok {
		auto.Rabatt = decimal.NewFromFloat(rabatt)
	}
	if lieferbar, ok := input["lieferbar"].(bool); ok {
		auto.Lieferbar = lieferbar
	}
	if datum, ok := input["datum"].(string); ok {
		if t, err := time.Parse("2006-01-02", datum); err == nil {
			auto.Datum = models.NewDate(t)
		}
	}
	if tags, ok := input["schlagwoerter"].([]interface{}); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				auto.Schlagwoerter = append(auto.Schlagwoerter, s)
			}
		}
	}

	if withRefs {
		if modell, ok := input["modell"].(map[string]interface{}); ok {
			if name, ok := modell["modell"].(string); ok {
				auto.Modell = &models.Modell{Modell: name}
			}
		}
		if bilder, ok := input["bilder"].([]interface{}); ok {
			for _, raw := range bilder {
				bild, ok := raw.(map[string]interface{})
				if !ok {
					continue
				}
				beschriftung, _ := bild["beschriftung"].(string)
				contentType, _ := bild["contentType"].(string)
				auto.Bilder = append(auto.Bilder, models.Bild{
					Beschriftung: beschriftung,
					ContentType:  contentType,
				})
			}
		}
	}

	return auto
}

func sourceAuto(p graphql.ResolveParams) (models.Auto, bool) {
	switch src := p.Source.(type) {
	case models.Auto:
		return src, true
	case *models.Auto:
		return *src, true
	}
	return models.Auto{}, false
}

func resolvePreis(p graphql.ResolveParams) (interface{}, error) {
	auto, ok := sourceAuto(p)
	if !ok {
		return nil, nil
	}
	return auto.Preis.InexactFloat64(), nil
}

func resolveRabatt(p graphql.ResolveParams) (interface{}, error) {
	auto, ok := sourceAuto(p)
	if !ok {
		return nil, nil
	}
	return auto.Rabatt.String() + " %", nil
}

func resolveDatum(p graphql.ResolveParams) (interface{}, error) {
	auto, ok := sourceAuto(p)
	if !ok {
		return nil, nil
	}
	return auto.Datum.Time().Format("2006-01-02"), nil
}

func resolveModell(p graphql.ResolveParams) (interface{}, error) {
	auto, ok := sourceAuto(p)
	if !ok || auto.Modell == nil {
		return nil, nil
	}
	return auto.Modell.Modell, nil
}
