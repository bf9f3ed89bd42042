package analytics

import (
	"testing"

	"payflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Pagination(t *testing.T) {
	records := numberedPayments(23)

	tests := []struct {
		name         string
		params       QueryParams
		wantPage     int
		wantPages    int
		wantFirstID  string
		wantRowCount int
	}{
		{
			name:         "first page",
			params:       QueryParams{Page: 1, PageSize: 10},
			wantPage:     1,
			wantPages:    3,
			wantFirstID:  "pi_01",
			wantRowCount: 10,
		},
		{
			name:         "last partial page",
			params:       QueryParams{Page: 3, PageSize: 10},
			wantPage:     3,
			wantPages:    3,
			wantFirstID:  "pi_21",
			wantRowCount: 3,
		},
		{
			name:         "page past the end is clamped",
			params:       QueryParams{Page: 5, PageSize: 10},
			wantPage:     3,
			wantPages:    3,
			wantFirstID:  "pi_21",
			wantRowCount: 3,
		},
		{
			name:         "negative page clamps to first",
			params:       QueryParams{Page: -2, PageSize: 10},
			wantPage:     1,
			wantPages:    3,
			wantFirstID:  "pi_01",
			wantRowCount: 10,
		},
		{
			name:         "non-positive page size falls back to default",
			params:       QueryParams{Page: 2, PageSize: 0},
			wantPage:     2,
			wantPages:    3,
			wantFirstID:  "pi_11",
			wantRowCount: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Query(records, PaymentQuery, tt.params)

			assert.Equal(t, 23, page.TotalItems)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantPage, page.Page)
			require.Len(t, page.Rows, tt.wantRowCount)
			assert.Equal(t, tt.wantFirstID, page.Rows[0].ID)
		})
	}
}

func TestQuery_EmptyCollectionHasOnePage(t *testing.T) {
	page := Query([]models.Payment{}, PaymentQuery, QueryParams{Page: 4, PageSize: 10})

	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.NotNil(t, page.Rows)
	assert.Empty(t, page.Rows)
}

func TestQuery_Search(t *testing.T) {
	records := []models.Payment{
		paymentFor("pi_alice", "Alice Smith", "alice@example.com", models.PaymentStatusSucceeded),
		paymentFor("pi_bob", "Bob Jones", "bob@example.com", models.PaymentStatusFailed),
		payment("pi_anon", 500, models.PaymentStatusPending, refDate),
	}

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{"case insensitive name", "ALICE", []string{"pi_alice"}},
		{"email substring", "bob@", []string{"pi_bob"}},
		{"payment id", "pi_an", []string{"pi_anon"}},
		{"shared domain", "example.com", []string{"pi_alice", "pi_bob"}},
		{"empty term matches all", "", []string{"pi_alice", "pi_bob", "pi_anon"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Query(records, PaymentQuery, QueryParams{SearchTerm: tt.term, Page: 1, PageSize: 10})
			assert.Equal(t, tt.wantIDs, ids(page.Rows))
		})
	}
}

func TestQuery_AnonymousPaymentNeverMatchesCustomerSearch(t *testing.T) {
	records := []models.Payment{payment("pi_1", 100, models.PaymentStatusSucceeded, refDate)}

	page := Query(records, PaymentQuery, QueryParams{SearchTerm: "anonymous", Page: 1})
	assert.Empty(t, page.Rows)
}

func TestQuery_StatusFilter(t *testing.T) {
	records := []models.Payment{
		paymentFor("pi_1", "Alice Smith", "alice@example.com", models.PaymentStatusSucceeded),
		paymentFor("pi_2", "Alice Brown", "brown@example.com", models.PaymentStatusFailed),
		paymentFor("pi_3", "Carol White", "carol@example.com", models.PaymentStatusSucceeded),
	}

	t.Run("all disables the filter", func(t *testing.T) {
		page := Query(records, PaymentQuery, QueryParams{FilterValue: FilterAll, Page: 1})
		assert.Equal(t, 3, page.TotalItems)
	})

	t.Run("exact status match", func(t *testing.T) {
		page := Query(records, PaymentQuery, QueryParams{FilterValue: "succeeded", Page: 1})
		assert.Equal(t, []string{"pi_1", "pi_3"}, ids(page.Rows))
	})

	t.Run("filter and search combine with AND", func(t *testing.T) {
		page := Query(records, PaymentQuery, QueryParams{SearchTerm: "alice", FilterValue: "succeeded", Page: 1})
		assert.Equal(t, []string{"pi_1"}, ids(page.Rows))
	})

	t.Run("unknown status matches nothing", func(t *testing.T) {
		page := Query(records, PaymentQuery, QueryParams{FilterValue: "disputed", Page: 1})
		assert.Equal(t, 0, page.TotalItems)
		assert.Equal(t, 1, page.TotalPages)
	})
}

func TestQuery_CustomersIgnoreFilterValue(t *testing.T) {
	customers := []models.Customer{
		{ID: "cus_1", Name: "Alice Smith", Email: "alice@example.com"},
		{ID: "cus_2", Name: "Bob Jones", Email: "bob@example.com"},
	}

	page := Query(customers, CustomerQuery, QueryParams{SearchTerm: "JONES", FilterValue: "succeeded", Page: 1})

	require.Len(t, page.Rows, 1)
	assert.Equal(t, "cus_2", page.Rows[0].ID)
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	records := numberedPayments(5)
	before := append([]models.Payment(nil), records...)

	page := Query(records, PaymentQuery, QueryParams{Page: 1, PageSize: 2})
	page.Rows[0].ID = "changed"

	assert.Equal(t, before, records)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(23, 10))
	assert.Equal(t, 3, TotalPages(23, -1))
}

func ids(payments []models.Payment) []string {
	out := make([]string, 0, len(payments))
	for _, p := range payments {
		out = append(out, p.ID)
	}
	return out
}
