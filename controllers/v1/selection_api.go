package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruitment-backend/controllers"
	"recruitment-backend/lib/selection"
	stagehistoryhandler "recruitment-backend/lib/stage-history"
	"recruitment-backend/middleware"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	selectionapimodels "recruitment-backend/models/api/selection"
)

type selectionApiController struct {
	controllers.BaseAPIController
}

func InitSelectionApiRouters(app *fiber.App) {
	controller := selectionApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Put("decision/:stage", controller.decide)   // решение по этапу отбора
			idRouter.Put("approve", controller.approve)          // пройти текущий этап
			idRouter.Put("reject", controller.reject)            // отклонить с текущего этапа
			idRouter.Get("history", controller.history)          // журнал этапов
			idRouter.Get("active-stage", controller.activeStage) // текущий активный этап
		})
	})
}

// @Summary Решение по этапу отбора
// @Tags Отбор
// @Description Решение ревьюера по указанному этапу отбора
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"ИД заявки"
// @Param   stage			path	string	true	"Этап (administration/psychotest/interview/final)"
// @Param 	bodyderParams	body	selectionapimodels.Decision	true	"Решение"
// @Success 200 {object} apimodels.Response{data=selectionapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/decision/{stage} [put]
func (c *selectionApiController) decide(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stage := models.SelectionStage(ctx.Params("stage"))
	decision := selectionapimodels.Decision{}
	if err := c.BodyParser(ctx, &decision); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := selection.Instance.Decide(applicationID, stage, decision, middleware.GetUserID(ctx))
	if err != nil {
		if models.IsValidationError(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Пройти текущий этап
// @Tags Отбор
// @Description Перевод заявки на следующий этап с текущего статуса
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"ИД заявки"
// @Param 	body			body	selectionapimodels.Decision	true	"Данные решения"
// @Success 200 {object} apimodels.Response{data=selectionapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/approve [put]
func (c *selectionApiController) approve(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	decision := selectionapimodels.Decision{}
	if err := c.BodyParser(ctx, &decision); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := selection.Instance.Approve(applicationID, decision, middleware.GetUserID(ctx))
	if err != nil {
		if models.IsValidationError(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отклонить заявку
// @Tags Отбор
// @Description Отклонение заявки с текущего этапа
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"ИД заявки"
// @Param 	body			body	selectionapimodels.Decision	true	"Комментарий"
// @Success 200 {object} apimodels.Response{data=selectionapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/reject [put]
func (c *selectionApiController) reject(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	decision := selectionapimodels.Decision{}
	if err := c.BodyParser(ctx, &decision); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := selection.Instance.Reject(applicationID, decision.Notes, middleware.GetUserID(ctx))
	if err != nil {
		if models.IsValidationError(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Журнал этапов
// @Tags Отбор
// @Description Хронологический журнал этапов по заявке
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"ИД заявки"
// @Success 200 {object} apimodels.Response{data=[]selectionapimodels.StageHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/history [get]
func (c *selectionApiController) history(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := stagehistoryhandler.Instance.List(applicationID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Активный этап
// @Tags Отбор
// @Description Текущий незакрытый этап заявки
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"ИД заявки"
// @Success 200 {object} apimodels.Response{data=selectionapimodels.StageHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/active-stage [get]
func (c *selectionApiController) activeStage(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := stagehistoryhandler.Instance.GetActive(applicationID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}
