package repository

import (
	"testing"
	"time"

	"fleet-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestVehicleListQueryDefaults(t *testing.T) {
	query, args := vehicleListQuery(entity.VehicleFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY id ASC")
	assert.Equal(t, []interface{}{DefaultPerPage, 0}, args)
}

func TestVehicleListQueryMakeIsExactMatch(t *testing.T) {
	vehicleMake := "Toyota"
	query, args := vehicleListQuery(entity.VehicleFilter{Make: &vehicleMake})

	assert.Contains(t, query, "vehicle_make = ?")
	assert.NotContains(t, query, "vehicle_make LIKE")
	assert.Equal(t, []interface{}{"Toyota", DefaultPerPage, 0}, args)
}

func TestVehicleListQueryServiceDateIsUpperBound(t *testing.T) {
	cutoff := time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)
	query, args := vehicleListQuery(entity.VehicleFilter{ServiceDate: &cutoff})

	assert.Contains(t, query, "date_of_last_service <= ?")
	assert.Equal(t, []interface{}{cutoff, DefaultPerPage, 0}, args)
}

func TestVehicleListQueryModelYear(t *testing.T) {
	year := 2019
	query, args := vehicleListQuery(entity.VehicleFilter{ModelYear: &year, Page: 2, PerPage: 20})

	assert.Contains(t, query, "model_year = ?")
	assert.Equal(t, []interface{}{2019, 20, 20}, args)
}
