package usecase

import (
	"context"
	"fmt"
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
	"github.com/spf13/viper"
)

type VehicleUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	DriverRepository  repository.DriverStore
	VehicleRepository repository.VehicleStore
	Config            *viper.Viper
	VehicleProducer   *messaging.VehicleProducer

	// now is swappable so the model-age filter is testable.
	now func() time.Time
}

func NewVehicleUseCase(
	logger log.Log,
	validate *validator.Validate,
	driverRepository repository.DriverStore,
	vehicleRepository repository.VehicleStore,
	cfg *viper.Viper,
	vehicleProducer *messaging.VehicleProducer,
) *VehicleUseCase {
	return &VehicleUseCase{
		Log:               logger,
		Validate:          validate,
		DriverRepository:  driverRepository,
		VehicleRepository: vehicleRepository,
		Config:            cfg,
		VehicleProducer:   vehicleProducer,
		now:               time.Now,
	}
}

// List filters vehicles by make, service-date threshold and model age. The
// age filter resolves to model_year == current year minus age.
func (c *VehicleUseCase) List(ctx context.Context, request *model.ListVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		errObj.Data = make([]model.VehicleResponse, 0)
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "List", utils.ConvertString(request))
		return result
	}

	filter := entity.VehicleFilter{
		Make:    request.Make,
		Page:    request.Page,
		PerPage: request.PerPage,
	}
	if request.ServiceDate != nil {
		serviceDate, err := time.Parse(dateLayout, *request.ServiceDate)
		if err != nil {
			errObj := httpError.NewUnprocessableEntity()
			errObj.Message = "The service date is not a valid date."
			result.Error = errObj
			return result
		}
		filter.ServiceDate = &serviceDate
	}
	if request.Age != nil {
		modelYear := c.now().Year() - *request.Age
		filter.ModelYear = &modelYear
	}

	vehicles, err := c.VehicleRepository.FindAll(ctx, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Vehicles not found!"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("failed to list vehicles: %v", err), "List", "")
		return result
	}
	if len(vehicles) == 0 {
		errObj := httpError.NewNotFound()
		errObj.Message = "Vehicles not found!"
		errObj.Data = make([]model.VehicleResponse, 0)
		result.Error = errObj
		return result
	}

	result.Data = converter.VehiclesToResponse(vehicles)
	return result
}

// Create rejects a second vehicle with the same plate for the same driver
// and returns the existing vehicle as the error payload.
func (c *VehicleUseCase) Create(ctx context.Context, request *model.CreateVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Create", "")
		return result
	}

	if _, err := c.DriverRepository.FindByID(ctx, request.DriverID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Vehicle could not be created!"
		result.Error = errObj
		return result
	}

	existing, err := c.VehicleRepository.FindByPlateForDriver(ctx, request.DriverID, request.LicensePlateNumber)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Vehicle could not be created!"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("failed to check plate: %v", err), "Create", "")
		return result
	}
	if existing != nil {
		errObj := httpError.NewConflict()
		errObj.Message = "Vehicle already exists!"
		errObj.Data = converter.VehicleToResponse(existing)
		result.Error = errObj
		return result
	}

	vehicle, errObj := c.vehicleFromRequest(request.LicensePlateNumber, request.VehicleMake, request.VehicleModel,
		request.ModelYear, *request.Insured, request.DateOfLastService, request.PassengerCapacity, request.DriverID)
	if errObj != nil {
		result.Error = errObj
		return result
	}

	if err := c.VehicleRepository.Create(ctx, vehicle); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Vehicle could not be created!"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("failed to create vehicle: %v", err), "Create", "")
		return result
	}

	c.publishVehicleEvent(model.EventActionCreated, vehicle.ID, vehicle.DriverID)

	result.Data = converter.VehicleToResponse(vehicle)
	return result
}

// Update replaces every field of the vehicle.
func (c *VehicleUseCase) Update(ctx context.Context, request *model.UpdateVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Update", "")
		return result
	}

	if _, err := c.VehicleRepository.FindByID(ctx, request.ID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Vehicle details could not be updated."
		result.Error = errObj
		return result
	}

	vehicle, errObj := c.vehicleFromRequest(request.LicensePlateNumber, request.VehicleMake, request.VehicleModel,
		request.ModelYear, *request.Insured, request.DateOfLastService, request.PassengerCapacity, request.DriverID)
	if errObj != nil {
		result.Error = errObj
		return result
	}
	vehicle.ID = request.ID

	if err := c.VehicleRepository.Update(ctx, vehicle); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Vehicle details could not be updated."
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("failed to update vehicle: %v", err), "Update", "")
		return result
	}

	c.publishVehicleEvent(model.EventActionUpdated, vehicle.ID, vehicle.DriverID)

	result.Data = converter.VehicleToResponse(vehicle)
	return result
}

func (c *VehicleUseCase) Delete(ctx context.Context, request *model.DeleteVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = utils.TranslateValidationError(err)
		result.Error = errObj
		return result
	}

	vehicle, err := c.VehicleRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = "Vehicle could not be deleted."
		result.Error = errObj
		return result
	}

	if err := c.VehicleRepository.Delete(ctx, vehicle.ID); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Vehicle could not be deleted."
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("failed to delete vehicle: %v", err), "Delete", "")
		return result
	}

	c.publishVehicleEvent(model.EventActionDeleted, vehicle.ID, vehicle.DriverID)
	return result
}

func (c *VehicleUseCase) vehicleFromRequest(plate, vehicleMake, vehicleModel string, modelYear int, insured bool,
	serviceDate string, capacity int, driverID int64) (*entity.Vehicle, *httpError.CommonError) {

	vehicle := &entity.Vehicle{
		LicensePlateNumber: plate,
		VehicleMake:        vehicleMake,
		VehicleModel:       vehicleModel,
		ModelYear:          modelYear,
		Insured:            insured,
		PassengerCapacity:  capacity,
		DriverID:           driverID,
	}

	parsed, err := time.Parse(dateLayout, serviceDate)
	if err != nil {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = "The date of last service is not a valid date."
		return nil, errObj
	}
	vehicle.DateOfLastService.Time = parsed
	vehicle.DateOfLastService.Valid = true

	return vehicle, nil
}

func (c *VehicleUseCase) publishVehicleEvent(action string, vehicleID, driverID int64) {
	if c.VehicleProducer == nil {
		return
	}
	// Best effort; a broker outage must not fail the request.
	_ = c.VehicleProducer.SendLifecycle(action, vehicleID, driverID)
}
