package utils_test

import (
	"testing"

	"fleet-service/src/internal/config"
	"fleet-service/src/internal/model"
	"fleet-service/src/pkg/utils"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestTranslateValidationErrorListDriver(t *testing.T) {
	validate := config.NewValidator(viper.New())

	tests := []struct {
		name    string
		request model.ListDriverRequest
		want    string
	}{
		{
			name:    "name too long",
			request: model.ListDriverRequest{Name: strPtr("Christopher")},
			want:    "The name must not be greater than 10 characters.",
		},
		{
			name:    "blank name",
			request: model.ListDriverRequest{Name: strPtr("   ")},
			want:    "The name must be a string.",
		},
		{
			name:    "capacity below range",
			request: model.ListDriverRequest{VehicleCapacity: intPtr(1)},
			want:    "The vehicle capacity must be at least 2.",
		},
		{
			name:    "capacity above range",
			request: model.ListDriverRequest{VehicleCapacity: intPtr(11)},
			want:    "The vehicle capacity must not be greater than 10.",
		},
		{
			name:    "unknown sort column",
			request: model.ListDriverRequest{SortBy: "surname"},
			want:    "The selected sort by is invalid.",
		},
		{
			name:    "unknown order direction",
			request: model.ListDriverRequest{Order: "sideways"},
			want:    "The selected order is invalid.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.request)
			require.Error(t, err)
			assert.Equal(t, tc.want, utils.TranslateValidationError(err))
		})
	}
}

func TestTranslateValidationErrorCreateDriver(t *testing.T) {
	validate := config.NewValidator(viper.New())

	valid := model.CreateDriverRequest{
		IDNumber:    "9202204720082",
		PhoneNumber: "0821234567",
		HomeAddress: "12 Main Road, Cape Town",
		FirstName:   "John",
		LastName:    "Johnson",
		LicenceType: "B",
	}
	require.NoError(t, validate.Struct(valid))

	tests := []struct {
		name   string
		mutate func(r *model.CreateDriverRequest)
		want   string
	}{
		{
			name:   "missing id number",
			mutate: func(r *model.CreateDriverRequest) { r.IDNumber = "" },
			want:   "The ID number is required",
		},
		{
			name:   "id number not numeric",
			mutate: func(r *model.CreateDriverRequest) { r.IDNumber = "92022O472008A" },
			want:   "The ID number must be a number.",
		},
		{
			name:   "id number wrong length",
			mutate: func(r *model.CreateDriverRequest) { r.IDNumber = "920220472" },
			want:   "The ID number must be 13 digits.",
		},
		{
			name:   "phone number wrong length",
			mutate: func(r *model.CreateDriverRequest) { r.PhoneNumber = "082123" },
			want:   "The phone number must be 10 digits.",
		},
		{
			name:   "missing home address",
			mutate: func(r *model.CreateDriverRequest) { r.HomeAddress = "" },
			want:   "The home address is required",
		},
		{
			name:   "invalid licence type",
			mutate: func(r *model.CreateDriverRequest) { r.LicenceType = "E" },
			want:   "The selected licence type is invalid.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := valid
			tc.mutate(&request)

			err := validate.Struct(request)
			require.Error(t, err)
			assert.Equal(t, tc.want, utils.TranslateValidationError(err))
		})
	}
}

func TestTranslateValidationErrorPatchDriver(t *testing.T) {
	validate := config.NewValidator(viper.New())

	err := validate.Struct(model.PatchDriverRequest{ID: 1})
	require.Error(t, err)
	assert.Equal(t, "The ID number is required", utils.TranslateValidationError(err))

	assert.NoError(t, validate.Struct(model.PatchDriverRequest{ID: 1, PhoneNumber: strPtr("0821234567")}))
	assert.NoError(t, validate.Struct(model.PatchDriverRequest{ID: 1, IDNumber: strPtr("9202204720082")}))
}

func TestTranslateValidationErrorDates(t *testing.T) {
	validate := config.NewValidator(viper.New())

	err := validate.Struct(model.ListVehicleRequest{ServiceDate: strPtr("21-03-2024")})
	require.Error(t, err)
	assert.Equal(t, "The service date is not a valid date.", utils.TranslateValidationError(err))

	assert.NoError(t, validate.Struct(model.ListVehicleRequest{ServiceDate: strPtr("2024-03-21")}))
}
