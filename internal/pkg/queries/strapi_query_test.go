package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryEncode(t *testing.T) {
	tests := []struct {
		name     string
		query    *Query
		expected string
	}{
		{
			name:     "nil query",
			query:    nil,
			expected: "",
		},
		{
			name:     "populate all",
			query:    New().Populate("*"),
			expected: "populate=*",
		},
		{
			name:     "email is escaped, brackets are not",
			query:    New().Eq("a@b.com", "Email").Eq("2025-04-09", "Date"),
			expected: "filters[Email][$eq]=a%40b.com&filters[Date][$eq]=2025-04-09",
		},
		{
			name:     "plus sign in email survives",
			query:    New().Eq("jane+clinic@b.com", "Email"),
			expected: "filters[Email][$eq]=jane%2Bclinic%40b.com",
		},
		{
			name:     "relation filter with membership operator",
			query:    New().Filter(OpIn, "Dentist", "categories", "Name").Populate("*"),
			expected: "filters[categories][Name][$in]=Dentist&populate=*",
		},
		{
			name:     "filter without operator",
			query:    New().Filter(OpNone, "7", "doctor").Eq("2025-04-09", "Date"),
			expected: "filters[doctor]=7&filters[Date][$eq]=2025-04-09",
		},
		{
			name:     "nested populate keeps order",
			query:    New().Eq("a@b.com", "Email").PopulatePath("url", "doctor", "populate", "Image", "populate", "0").Populate("*"),
			expected: "filters[Email][$eq]=a%40b.com&populate[doctor][populate][Image][populate][0]=url&populate=*",
		},
		{
			name:     "sort",
			query:    New().Eq("a@b.com", "email").Sort("createdAt", "desc"),
			expected: "filters[email][$eq]=a%40b.com&sort[0]=createdAt:desc",
		},
		{
			name:     "doctor name with spaces",
			query:    New().Populate("*").Eq("Dr Who", "doctor", "Name"),
			expected: "filters[doctor][Name][$eq]=Dr+Who&populate=*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.Encode())
		})
	}
}

func TestQueryParams(t *testing.T) {
	params := New().Eq("a@b.com", "Email").Populate("*").Params()

	assert.Equal(t, map[string]string{
		"filters[Email][$eq]": "a%40b.com",
		"populate":            "*",
	}, params)
	assert.Empty(t, New().Params())
}

func TestQueryFilters(t *testing.T) {
	q := New().Eq("x", "Email")

	assert.False(t, q.IsEmpty())
	assert.Equal(t, []Filter{{Path: []string{"Email"}, Operator: OpEq, Value: "x"}}, q.Filters())
}
