package graphql

import (
	"github.com/graphql-go/graphql"
)

// buildSchema wires the query and mutation trees to the resolver.
func buildSchema(r *Resolver) (graphql.Schema, error) {
	autoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Auto",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"version":       &graphql.Field{Type: graphql.Int},
			"fgnr":          &graphql.Field{Type: graphql.String},
			"art":           &graphql.Field{Type: graphql.String},
			"preis":         &graphql.Field{Type: graphql.Float, Resolve: resolvePreis},
			"rabatt":        &graphql.Field{Type: graphql.String, Resolve: resolveRabatt},
			"lieferbar":     &graphql.Field{Type: graphql.Boolean},
			"datum":         &graphql.Field{Type: graphql.String, Resolve: resolveDatum},
			"schlagwoerter": &graphql.Field{Type: graphql.NewList(graphql.String)},
			"modell":        &graphql.Field{Type: graphql.String, Resolve: resolveModell},
		},
	})

	suchkriterienInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SuchkriterienInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"modell":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"fgnr":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"art":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"lieferbar": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	modellInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ModellInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"modell": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	bildInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "BildInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"beschriftung": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"contentType":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	autoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AutoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"fgnr":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"art":           &graphql.InputObjectFieldConfig{Type: graphql.String},
			"preis":         &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"rabatt":        &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"lieferbar":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"datum":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"schlagwoerter": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
			"modell":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(modellInput)},
			"bilder":        &graphql.InputObjectFieldConfig{Type: graphql.NewList(bildInput)},
		},
	})

	autoUpdateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AutoUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":            &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"version":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"fgnr":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"art":           &graphql.InputObjectFieldConfig{Type: graphql.String},
			"preis":         &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"rabatt":        &graphql.InputObjectFieldConfig{Type: graphql.Float},
			"lieferbar":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
			"datum":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"schlagwoerter": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
		},
	})

	createPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreatePayload",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.ID},
		},
	})

	updatePayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "UpdatePayload",
		Fields: graphql.Fields{
			"version": &graphql.Field{Type: graphql.Int},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"auto": &graphql.Field{
				Type: autoType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.auto,
			},
			"autos": &graphql.Field{
				Type: graphql.NewList(autoType),
				Args: graphql.FieldConfigArgument{
					"suchkriterien": &graphql.ArgumentConfig{Type: suchkriterienInput},
				},
				Resolve: r.autos,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"create": &graphql.Field{
				Type: createPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(autoInput)},
				},
				Resolve: r.create,
			},
			"update": &graphql.Field{
				Type: updatePayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(autoUpdateInput)},
				},
				Resolve: r.update,
			},
			"delete": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.delete,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
