package postgres

import sq "github.com/Masterminds/squirrel"

const tableCities = "cities"

var cityColumns = []string{"id", "post_code", "name"}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
