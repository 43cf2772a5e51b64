package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/gateway/messaging"
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/model/converter"
	"fleet-service/src/internal/repository"
	httpError "fleet-service/src/pkg/http-error"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	dateLayout = "2006-01-02"

	// Placeholder identity attached to every provisioned driver account.
	placeholderEmail    = "sa@lulaloop.co.za"
	placeholderPassword = "password"
)

type DriverUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	DriverRepository  repository.DriverStore
	UserRepository    repository.UserStore
	LicenseRepository repository.LicenseStore
	VehicleRepository repository.VehicleStore
	Config            *viper.Viper
	Redis             redis.UniversalClient
	DriverProducer    *messaging.DriverProducer
}

func NewDriverUseCase(
	logger log.Log,
	validate *validator.Validate,
	driverRepository repository.DriverStore,
	userRepository repository.UserStore,
	licenseRepository repository.LicenseStore,
	vehicleRepository repository.VehicleStore,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
	driverProducer *messaging.DriverProducer,
) *DriverUseCase {
	return &DriverUseCase{
		Log:               logger,
		Validate:          validate,
		DriverRepository:  driverRepository,
		UserRepository:    userRepository,
		LicenseRepository: licenseRepository,
		VehicleRepository: vehicleRepository,
		Config:            cfg,
		Redis:             redisClient,
		DriverProducer:    driverProducer,
	}
}

// List applies the conjunctive filters, sorting and pagination. An empty
// page is framed as a not-found error carrying an empty collection, per the
// API's documented convention.
func (c *DriverUseCase) List(ctx context.Context, request *model.ListDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		errObj.Data = make([]model.DriverResponse, 0)
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "List", utils.ConvertString(request))
		return result
	}

	filter := entity.DriverFilter{
		Name:            request.Name,
		Address:         request.Address,
		VehicleCapacity: request.VehicleCapacity,
		SortByName:      request.SortBy == "name",
		SortDescending:  request.Order == "desc",
		Page:            request.Page,
		PerPage:         request.PerPage,
	}

	rows, err := c.DriverRepository.FindAll(ctx, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Drivers not found!"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("failed to list drivers: %v", err), "List", "")
		return result
	}
	if len(rows) == 0 {
		errObj := httpError.NewNotFound()
		errObj.Message = "Drivers not found!"
		errObj.Data = make([]model.DriverResponse, 0)
		result.Error = errObj
		return result
	}

	driverIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		driverIDs = append(driverIDs, row.ID)
	}
	vehiclesByDriver, err := c.VehicleRepository.FindByDriverIDs(ctx, driverIDs)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Drivers not found!"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("failed to load vehicles: %v", err), "List", "")
		return result
	}

	result.Data = converter.DriversToResponse(rows, vehiclesByDriver)
	return result
}

// Create provisions the user, license and driver together. The user gets a
// placeholder email and a bcrypt-hashed placeholder password.
func (c *DriverUseCase) Create(ctx context.Context, request *model.CreateDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "Create", "")
		return result
	}

	idNumber, err := strconv.ParseInt(request.IDNumber, 10, 64)
	if err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = "The ID number must be a number."
		result.Error = errObj
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Driver account could not be created!"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("failed to hash password: %v", err), "Create", "")
		return result
	}

	user := &entity.User{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		PhoneNumber: request.PhoneNumber,
		Email:       placeholderEmail,
		Password:    string(hashed),
	}
	license := &entity.License{LicenseType: request.LicenceType}
	driver := &entity.Driver{IDNumber: idNumber}
	driver.HomeAddress.String = request.HomeAddress
	driver.HomeAddress.Valid = true

	if err := c.DriverRepository.CreateAccount(ctx, user, license, driver); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Driver account could not be created!"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("failed to create driver account: %v", err), "Create", "")
		return result
	}

	c.publishDriverEvent(model.EventActionCreated, driver.ID)

	row := &entity.DriverAccountRow{
		ID:          driver.ID,
		IDNumber:    driver.IDNumber,
		HomeAddress: driver.HomeAddress,
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
	}
	row.LicenseID.Int64 = license.ID
	row.LicenseID.Valid = true
	row.LicenseType.String = license.LicenseType
	row.LicenseType.Valid = true

	result.Data = converter.DriverToResponse(row, nil)
	return result
}

func (c *DriverUseCase) Get(ctx context.Context, request *model.GetDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		return result
	}

	if cached := c.cachedDriver(ctx, request.ID); cached != nil {
		result.Data = cached
		return result
	}

	row, err := c.DriverRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Could not find driver account!"
		errObj.Data = make([]model.DriverResponse, 0)
		result.Error = errObj
		return result
	}

	vehicles, err := c.VehicleRepository.FindByDriverID(ctx, row.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Could not find driver account!"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("failed to load vehicles: %v", err), "Get", "")
		return result
	}

	response := converter.DriverToResponse(row, vehicles)
	c.cacheDriver(ctx, request.ID, response)
	result.Data = response
	return result
}

// UpdateDetails applies the grouped field semantics: home_address and
// last_trip_date update the driver only as a pair, first_name and last_name
// the user as a pair, licence_type the license on its own.
func (c *DriverUseCase) UpdateDetails(ctx context.Context, request *model.UpdateDriverDetailsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "UpdateDetails", "")
		return result
	}

	row, err := c.DriverRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Driver account could not be updated!"
		result.Error = errObj
		return result
	}

	if request.HomeAddress != nil && request.LastTripDate != nil {
		lastTrip, err := time.Parse(dateLayout, *request.LastTripDate)
		if err != nil {
			errObj := httpError.NewUnprocessableEntity()
			errObj.Message = "The last trip date is not a valid date."
			result.Error = errObj
			return result
		}
		if err := c.DriverRepository.UpdateDetails(ctx, row.ID, *request.HomeAddress, lastTrip); err != nil {
			return c.updateFailed(err, "UpdateDetails")
		}
		row.HomeAddress.String = *request.HomeAddress
		row.HomeAddress.Valid = true
		row.DateOfLastTrip.Time = lastTrip
		row.DateOfLastTrip.Valid = true
	}

	if request.FirstName != nil && request.LastName != nil {
		if err := c.UserRepository.UpdateName(ctx, row.UserID, *request.FirstName, *request.LastName); err != nil {
			return c.updateFailed(err, "UpdateDetails")
		}
		row.FirstName = *request.FirstName
		row.LastName = *request.LastName
	}

	if request.LicenceType != nil && row.LicenseID.Valid {
		if err := c.LicenseRepository.UpdateType(ctx, row.LicenseID.Int64, *request.LicenceType); err != nil {
			return c.updateFailed(err, "UpdateDetails")
		}
		row.LicenseType.String = *request.LicenceType
		row.LicenseType.Valid = true
	}

	c.invalidateDriver(ctx, row.ID)
	c.publishDriverEvent(model.EventActionUpdated, row.ID)

	result.Data = converter.DriverToDetailsResponse(row)
	return result
}

// Patch updates id_number and phone_number independently; either may be
// supplied alone.
func (c *DriverUseCase) Patch(ctx context.Context, request *model.PatchDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "Patch", "")
		return result
	}

	row, err := c.DriverRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Driver account could not be updated!"
		result.Error = errObj
		return result
	}

	if request.IDNumber != nil {
		idNumber, err := strconv.ParseInt(*request.IDNumber, 10, 64)
		if err != nil {
			errObj := httpError.NewUnprocessableEntity()
			errObj.Message = "The ID number must be a number."
			result.Error = errObj
			return result
		}
		if err := c.DriverRepository.UpdateIDNumber(ctx, row.ID, idNumber); err != nil {
			return c.updateFailed(err, "Patch")
		}
		row.IDNumber = idNumber
	}

	if request.PhoneNumber != nil {
		if err := c.UserRepository.UpdatePhone(ctx, row.UserID, *request.PhoneNumber); err != nil {
			return c.updateFailed(err, "Patch")
		}
		row.PhoneNumber = *request.PhoneNumber
	}

	c.invalidateDriver(ctx, row.ID)
	c.publishDriverEvent(model.EventActionUpdated, row.ID)

	result.Data = converter.DriverToUpdateResponse(row)
	return result
}

// DeleteDetails removes only the license; the driver and user rows survive.
func (c *DriverUseCase) DeleteDetails(ctx context.Context, request *model.GetDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		return result
	}

	row, err := c.DriverRepository.FindByID(ctx, request.ID)
	if err != nil || !row.LicenseID.Valid {
		errObj := httpError.NewNotFound()
		errObj.Message = "Driver information could not be deleted!"
		result.Error = errObj
		return result
	}

	if err := c.LicenseRepository.Delete(ctx, row.LicenseID.Int64); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Driver information could not be deleted!"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("failed to delete license: %v", err), "DeleteDetails", "")
		return result
	}

	c.invalidateDriver(ctx, row.ID)
	c.publishDriverEvent(model.EventActionUpdated, row.ID)
	return result
}

// DeleteAccount removes the user and license; the driver row and its
// vehicles cascade away at the storage layer.
func (c *DriverUseCase) DeleteAccount(ctx context.Context, request *model.GetDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		return result
	}

	row, err := c.DriverRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Driver account could not be deleted!"
		result.Error = errObj
		return result
	}

	if err := c.DriverRepository.DeleteAccount(ctx, row); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Driver account could not be deleted!"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("failed to delete driver account: %v", err), "DeleteAccount", "")
		return result
	}

	c.invalidateDriver(ctx, row.ID)
	c.publishDriverEvent(model.EventActionDeleted, row.ID)
	return result
}

// ListVehicles returns the vehicles owned by one driver.
func (c *DriverUseCase) ListVehicles(ctx context.Context, request *model.GetDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		return result
	}

	row, err := c.DriverRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Driver vehicle(s) not found!"
		errObj.Data = make([]model.VehicleResponse, 0)
		result.Error = errObj
		return result
	}

	vehicles, err := c.VehicleRepository.FindByDriverID(ctx, row.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Driver vehicle(s) not found!"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("failed to load vehicles: %v", err), "ListVehicles", "")
		return result
	}
	if len(vehicles) == 0 {
		errObj := httpError.NewNotFound()
		errObj.Message = "Driver vehicle(s) not found!"
		errObj.Data = make([]model.VehicleResponse, 0)
		result.Error = errObj
		return result
	}

	result.Data = converter.VehiclesToResponse(vehicles)
	return result
}

func (c *DriverUseCase) updateFailed(err error, scope string) utils.Result {
	errObj := httpError.NewInternalServerError()
	errObj.Message = "Driver account could not be updated!"
	c.Log.Error("driver-usecase", fmt.Sprintf("update failed: %v", err), scope, "")
	return utils.Result{Error: errObj}
}

func (c *DriverUseCase) publishDriverEvent(action string, driverID int64) {
	if c.DriverProducer == nil {
		return
	}
	// Best effort; a broker outage must not fail the request.
	_ = c.DriverProducer.SendLifecycle(action, driverID)
}

func (c *DriverUseCase) driverCacheKey(id int64) string {
	return fmt.Sprintf("fleet:driver:%d", id)
}

func (c *DriverUseCase) cacheTTL() time.Duration {
	seconds := c.Config.GetInt("redis.cache_ttl_seconds")
	if seconds <= 0 {
		seconds = 300
	}
	return time.Duration(seconds) * time.Second
}

func (c *DriverUseCase) cachedDriver(ctx context.Context, id int64) *model.DriverResponse {
	if c.Redis == nil {
		return nil
	}
	raw, err := c.Redis.Get(ctx, c.driverCacheKey(id)).Result()
	if err != nil {
		return nil
	}
	var response model.DriverResponse
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		return nil
	}
	return &response
}

func (c *DriverUseCase) cacheDriver(ctx context.Context, id int64, response *model.DriverResponse) {
	if c.Redis == nil {
		return
	}
	raw, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, c.driverCacheKey(id), raw, c.cacheTTL()).Err(); err != nil {
		c.Log.Warn("driver-usecase", fmt.Sprintf("failed to cache driver: %v", err), "cacheDriver", "")
	}
}

func (c *DriverUseCase) invalidateDriver(ctx context.Context, id int64) {
	if c.Redis == nil {
		return
	}
	if err := c.Redis.Del(ctx, c.driverCacheKey(id)).Err(); err != nil {
		c.Log.Warn("driver-usecase", fmt.Sprintf("failed to invalidate driver cache: %v", err), "invalidateDriver", "")
	}
}
