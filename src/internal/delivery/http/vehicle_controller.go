package http

import (
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/usecase"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type VehicleController struct {
	Log     log.Log
	UseCase *usecase.VehicleUseCase
}

func NewVehicleController(useCase *usecase.VehicleUseCase, logger log.Log) *VehicleController {
	return &VehicleController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *VehicleController) List(ctx *fiber.Ctx) error {
	request := new(model.ListVehicleRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("VehicleController.List", "failed to parse query", "error", err.Error())
		return utils.ResponseError(badRequest(err), ctx)
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Vehicles found!", fiber.StatusOK, ctx)
}

func (c *VehicleController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateVehicleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("VehicleController.Create", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(badRequest(err), ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Vehicle created!", fiber.StatusCreated, ctx)
}

func (c *VehicleController) Update(ctx *fiber.Ctx) error {
	request := new(model.UpdateVehicleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("VehicleController.Update", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(badRequest(err), ctx)
	}
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(badRequest(err), ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Vehicle details updated.", fiber.StatusOK, ctx)
}

func (c *VehicleController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(badRequest(err), ctx)
	}

	result := c.UseCase.Delete(ctx.Context(), &model.DeleteVehicleRequest{ID: int64(id)})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "Vehicle deleted!", fiber.StatusOK, ctx)
}
