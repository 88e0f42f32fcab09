package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// psql renders every statement with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns    = []string{"id", "username", "email", "created_at", "updated_at"}
	productColumns = []string{"id", "name", "price", "quantity", "description", "created_at", "updated_at"}
)

const (
	usersTable    = "users"
	productsTable = "products"

	newestFirst   = "created_at DESC"
	cheapestFirst = "price ASC"
	lowestStock   = "quantity ASC"
)

// returning renders a RETURNING clause for cols.
func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

func selectUsers() sq.SelectBuilder {
	return psql.Select(userColumns...).From(usersTable)
}

// equalFold matches column against value ignoring case. It pairs with the
// unique indexes on lower(email) and lower(username).
func equalFold(column, value string) sq.Sqlizer {
	return sq.Expr("lower("+column+") = lower(?)", value)
}

func selectProducts() sq.SelectBuilder {
	return psql.Select(productColumns...).From(productsTable)
}
