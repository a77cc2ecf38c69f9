package sqlconfig

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactionsQuery_BusinessOnly(t *testing.T) {
	businessID := uuid.Must(uuid.NewV4())

	sql, args, err := listTransactionsQuery(&TransactionFilter{BusinessID: businessID, Limit: 50}).Build(context.Background())
	require.NoError(t, err)

	assert.Contains(t, sql, `"business_id" = $1`)
	assert.Contains(t, sql, "LIMIT 50")
	assert.NotContains(t, sql, "ILIKE")
	assert.NotContains(t, sql, `"created_at" >=`)
	assert.Equal(t, []any{businessID}, args)
}

func TestListTransactionsQuery_SinceAndSearch(t *testing.T) {
	businessID := uuid.Must(uuid.NewV4())
	since := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	sql, args, err := listTransactionsQuery(&TransactionFilter{
		BusinessID: businessID,
		Type:       "sale",
		Since:      since,
		Search:     "50%_off",
	}).Build(context.Background())
	require.NoError(t, err)

	assert.Contains(t, sql, `"type" = $2`)
	assert.Contains(t, sql, `"created_at" >= $3`)
	assert.Contains(t, sql, `"description" ILIKE $4`)
	assert.Contains(t, sql, `"customer_name" ILIKE $5`)
	assert.Contains(t, sql, " OR ")
	assert.NotContains(t, sql, "LIMIT")

	require.Len(t, args, 5)
	assert.Equal(t, since, args[2])
	assert.Equal(t, `%50\%\_off%`, args[3])
	assert.Equal(t, args[3], args[4])
}
