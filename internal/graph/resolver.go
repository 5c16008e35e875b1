package graph

import (
	"database/sql"

	"loopa-be/internal/category"
	"loopa-be/internal/order"
	"loopa-be/internal/product"
	"loopa-be/internal/sample"
	"loopa-be/internal/user"

	"github.com/99designs/gqlgen/graphql"
)

type Resolver struct {
	DB          *sql.DB
	ProductSvc  product.Service
	CategorySvc category.Service
	OrderSvc    order.Service
	SampleSvc   sample.Service
	UserRepo    user.Repository
}

func NewSchema(r *Resolver) graphql.ExecutableSchema {
	return NewExecutableSchema(Config{
		Resolvers: r,
		Directives: DirectiveRoot{
			Auth: AuthDirective,
		},
	})
}

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
