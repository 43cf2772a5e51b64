package http

import (
	"fleet-service/src/internal/model"
	"fleet-service/src/internal/usecase"
	httpError "fleet-service/src/pkg/http-error"
	"fleet-service/src/pkg/log"
	"fleet-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type DriverController struct {
	Log     log.Log
	UseCase *usecase.DriverUseCase
}

func NewDriverController(useCase *usecase.DriverUseCase, logger log.Log) *DriverController {
	return &DriverController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *DriverController) List(ctx *fiber.Ctx) error {
	request := new(model.ListDriverRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("DriverController.List", "failed to parse query", "error", err.Error())
		return utils.ResponseError(badRequest(err), ctx)
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Drivers found!", fiber.StatusOK, ctx)
}

func (c *DriverController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateDriverRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.Create", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(badRequest(err), ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Driver account created!", fiber.StatusCreated, ctx)
}

func (c *DriverController) Get(ctx *fiber.Ctx) error {
	request, err := driverIDRequest(ctx)
	if err != nil {
		return utils.ResponseError(badRequest(err), ctx)
	}

	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Found driver account!", fiber.StatusOK, ctx)
}

func (c *DriverController) UpdateDetails(ctx *fiber.Ctx) error {
	request := new(model.UpdateDriverDetailsRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.UpdateDetails", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(badRequest(err), ctx)
	}
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(badRequest(err), ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.UpdateDetails(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Driver information updated!", fiber.StatusOK, ctx)
}

func (c *DriverController) Patch(ctx *fiber.Ctx) error {
	request := new(model.PatchDriverRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.Patch", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(badRequest(err), ctx)
	}
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(badRequest(err), ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.Patch(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Driver account updated!", fiber.StatusOK, ctx)
}

func (c *DriverController) DeleteDetails(ctx *fiber.Ctx) error {
	request, err := driverIDRequest(ctx)
	if err != nil {
		return utils.ResponseError(badRequest(err), ctx)
	}

	result := c.UseCase.DeleteDetails(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "Driver information deleted!", fiber.StatusOK, ctx)
}

func (c *DriverController) DeleteAccount(ctx *fiber.Ctx) error {
	request, err := driverIDRequest(ctx)
	if err != nil {
		return utils.ResponseError(badRequest(err), ctx)
	}

	result := c.UseCase.DeleteAccount(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(nil, "Driver account deleted!", fiber.StatusOK, ctx)
}

func (c *DriverController) ListVehicles(ctx *fiber.Ctx) error {
	request, err := driverIDRequest(ctx)
	if err != nil {
		return utils.ResponseError(badRequest(err), ctx)
	}

	result := c.UseCase.ListVehicles(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Driver vehicle(s) found!", fiber.StatusOK, ctx)
}

func driverIDRequest(ctx *fiber.Ctx) (*model.GetDriverRequest, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return nil, err
	}
	return &model.GetDriverRequest{ID: int64(id)}, nil
}

func badRequest(err error) *httpError.CommonError {
	errObj := httpError.NewBadRequest()
	errObj.Message = err.Error()
	return errObj
}
