package repository

import (
	"strings"
	"testing"

	"fleet-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestDriverListQueryDefaults(t *testing.T) {
	query, args := driverListQuery(entity.DriverFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY d.id ASC")
	assert.Equal(t, []interface{}{DefaultPerPage, 0}, args)
}

func TestDriverListQueryNameFilter(t *testing.T) {
	name := "John"
	query, args := driverListQuery(entity.DriverFilter{Name: &name})

	assert.Contains(t, query, "(u.first_name LIKE BINARY ? OR u.last_name LIKE BINARY ?)")
	assert.Equal(t, []interface{}{"%John%", "%John%", DefaultPerPage, 0}, args)
}

func TestDriverListQueryCombinedFilters(t *testing.T) {
	name := "John"
	address := "Main Road"
	capacity := 4
	query, args := driverListQuery(entity.DriverFilter{
		Name:            &name,
		Address:         &address,
		VehicleCapacity: &capacity,
	})

	assert.Contains(t, query, "WHERE")
	assert.Contains(t, query, "d.home_address LIKE ?")
	assert.Contains(t, query, "EXISTS (SELECT 1 FROM vehicles v WHERE v.driver_id = d.id AND v.passenger_capacity = ?)")
	// Conditions combine conjunctively in declaration order.
	assert.Less(t,
		strings.Index(query, "u.first_name LIKE BINARY"),
		strings.Index(query, "d.home_address LIKE"))
	assert.Equal(t, []interface{}{"%John%", "%John%", "%Main Road%", 4, DefaultPerPage, 0}, args)
}

func TestDriverListQuerySortByName(t *testing.T) {
	query, _ := driverListQuery(entity.DriverFilter{SortByName: true})
	assert.Contains(t, query, "ORDER BY u.first_name ASC, u.last_name ASC, d.id ASC")

	query, _ = driverListQuery(entity.DriverFilter{SortByName: true, SortDescending: true})
	assert.Contains(t, query, "ORDER BY u.first_name DESC, u.last_name DESC, d.id ASC")
}

func TestDriverListQueryPagination(t *testing.T) {
	_, args := driverListQuery(entity.DriverFilter{Page: 3, PerPage: 5})
	assert.Equal(t, []interface{}{5, 10}, args)
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", page: 0, perPage: 0, wantLimit: DefaultPerPage, wantOffset: 0},
		{name: "first page", page: 1, perPage: 10, wantLimit: 10, wantOffset: 0},
		{name: "later page", page: 4, perPage: 25, wantLimit: 25, wantOffset: 75},
		{name: "negative page clamps", page: -2, perPage: 10, wantLimit: 10, wantOffset: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := pageBounds(tc.page, tc.perPage)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}
