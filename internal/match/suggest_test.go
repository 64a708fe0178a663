package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"Closed", "InProgress", "Completed", "Cancelled"}

	assert.Equal(t, []string{"Completed"}, Suggest("Complete", candidates, 3))
	assert.Equal(t, []string{"InProgress"}, Suggest("in_progress", candidates, 0))
	assert.Empty(t, Suggest("Archived", candidates, 3))
	assert.Len(t, Suggest("C", []string{"C", "c"}, 1), 1)
}

func TestFindNormalized(t *testing.T) {
	got, ok := FindNormalized("customer_id", []string{"ID", "CustomerID"})
	assert.True(t, ok)
	assert.Equal(t, "CustomerID", got)

	_, ok = FindNormalized("Total", []string{"TotalCents"})
	assert.False(t, ok)
}
