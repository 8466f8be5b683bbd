// Package graph exposes the catalog through a GraphQL schema that mirrors
// the REST surface: the same filter, page and mutation semantics, the same
// authorizer in front of every mutation.
package graph

import (
	"time"

	"productcatalog/internal/domain"
	"productcatalog/internal/services"

	"github.com/graphql-go/graphql"
)

type Resolver struct {
	Store services.ProductStore
	Auth  services.AuthService
}

func (r Resolver) service(p graphql.ResolveParams) services.ProductService {
	return services.ProductService{Store: r.Store, RequestID: requestIDFrom(p.Context)}
}

// authorize enforces the bearer-token contract on a mutation. The header
// travels on the request context; failures become GraphQL error entries,
// never MutationResult values.
func (r Resolver) authorize(p graphql.ResolveParams) error {
	_, err := r.Auth.Authorize(authHeaderFrom(p.Context))
	return err
}

func NewSchema(r Resolver) (graphql.Schema, error) {
	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					product, ok := p.Source.(domain.Product)
					if !ok {
						return nil, nil
					}
					return product.ID.Hex(), nil
				},
			},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	mutationResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "MutationResult",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"id":      &graphql.Field{Type: graphql.String},
		},
	})

	tokenType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"token":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"expiresAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	productInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allProducts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType))),
				Args: graphql.FieldConfigArgument{
					"nameContains": &graphql.ArgumentConfig{Type: graphql.String},
					"minPrice":     &graphql.ArgumentConfig{Type: graphql.Float},
					"maxPrice":     &graphql.ArgumentConfig{Type: graphql.Float},
					"limit":        &graphql.ArgumentConfig{Type: graphql.Int},
					"skip":         &graphql.ArgumentConfig{Type: graphql.Int},
					"sortField":    &graphql.ArgumentConfig{Type: graphql.String},
					"direction":    &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					filter, page := readParams(p.Args)
					return r.service(p).List(p.Context, filter, page)
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					product, err := r.service(p).GetByID(p.Context, stringArg(p.Args, "id"))
					if domain.IsNotFound(err) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return product, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(tokenType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					token, expiresAt, err := r.Auth.Issue(p.Context, stringArg(p.Args, "username"), stringArg(p.Args, "password"))
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{
						"token":     token,
						"expiresAt": expiresAt.Format(time.RFC3339),
					}, nil
				},
			},
			"addProduct": &graphql.Field{
				Type: graphql.NewNonNull(mutationResultType),
				Args: graphql.FieldConfigArgument{
					"product": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := r.authorize(p); err != nil {
						return nil, err
					}
					return r.service(p).Create(p.Context, productArg(p.Args))
				},
			},
			"updateProduct": &graphql.Field{
				Type: graphql.NewNonNull(mutationResultType),
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"product": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := r.authorize(p); err != nil {
						return nil, err
					}
					return r.service(p).Update(p.Context, stringArg(p.Args, "id"), productArg(p.Args))
				},
			},
			"deleteProduct": &graphql.Field{
				Type: graphql.NewNonNull(mutationResultType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if err := r.authorize(p); err != nil {
						return nil, err
					}
					return r.service(p).Delete(p.Context, stringArg(p.Args, "id"))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func readParams(args map[string]interface{}) (domain.FilterSpec, domain.PageSpec) {
	var filter domain.FilterSpec
	page := domain.DefaultPage()

	if s, ok := args["nameContains"].(string); ok {
		filter.NameContains = &s
	}
	if f, ok := args["minPrice"].(float64); ok {
		filter.MinPrice = &f
	}
	if f, ok := args["maxPrice"].(float64); ok {
		filter.MaxPrice = &f
	}
	if n, ok := args["limit"].(int); ok {
		page.Limit = n
	}
	if n, ok := args["skip"].(int); ok {
		page.Skip = n
	}
	if s, ok := args["sortField"].(string); ok && s != "" {
		page.SortField = s
	}
	if s, ok := args["direction"].(string); ok && s != "" {
		page.Direction = s
	}
	return filter, page
}

func productArg(args map[string]interface{}) domain.ProductInput {
	var in domain.ProductInput
	raw, ok := args["product"].(map[string]interface{})
	if !ok {
		return in
	}
	if s, ok := raw["name"].(string); ok {
		in.Name = s
	}
	if f, ok := raw["price"].(float64); ok {
		in.Price = f
	}
	return in
}

func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}
