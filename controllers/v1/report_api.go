package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"recruitment-backend/controllers"
	pdfexport "recruitment-backend/lib/export/pdf"
	xlsexport "recruitment-backend/lib/export/xls"
	"recruitment-backend/lib/report"
	stagehistoryhandler "recruitment-backend/lib/stage-history"
	"recruitment-backend/middleware"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	reportapimodels "recruitment-backend/models/api/report"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("report", func(router fiber.Router) {
		router.Get("export/xlsx", controller.exportXlsx) // выгрузка отчетов в xlsx
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)                  // отчет по заявке
			idRouter.Put("decision", controller.decide)       // финальное решение по отчету
			idRouter.Get("export/pdf", controller.exportPdf)  // выгрузка отчета в pdf
		})
	})
}

// @Summary Отчет по заявке
// @Tags Отчет
// @Description Итоговый отчет по заявке кандидата
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"ИД заявки"
// @Success 200 {object} apimodels.Response{data=reportapimodels.ReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/{id} [get]
func (c *reportApiController) get(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := report.Instance.GetByApplication(applicationID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Финальное решение
// @Tags Отчет
// @Description Финальное решение HR по готовому отчету
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"ИД заявки"
// @Param 	body			body	reportapimodels.FinalDecisionRequest	true	"Решение"
// @Success 200 {object} apimodels.Response{data=reportapimodels.ReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/{id}/decision [put]
func (c *reportApiController) decide(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	request := reportapimodels.FinalDecisionRequest{}
	if err := c.BodyParser(ctx, &request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := report.Instance.FinalizeDecision(applicationID,
		models.FinalDecision(request.Decision), request.Notes, middleware.GetUserID(ctx))
	if err != nil {
		if models.IsValidationError(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Выгрузка отчетов
// @Tags Отчет
// @Description Выгрузка всех отчетов в xlsx
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/export/xlsx [get]
func (c *reportApiController) exportXlsx(ctx *fiber.Ctx) error {
	list, err := report.Instance.List()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := xlsexport.Instance.ExportReportList(list)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="reports.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Выгрузка отчета в pdf
// @Tags Отчет
// @Description Выгрузка отчета по заявке в pdf
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"ИД заявки"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/{id}/export/pdf [get]
func (c *reportApiController) exportPdf(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := report.Instance.GetByApplication(applicationID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	history, err := stagehistoryhandler.Instance.List(applicationID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	body, err := pdfexport.GenerateReport(view, history)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="report_%s.pdf"`, applicationID))
	return ctx.Status(fiber.StatusOK).Send(body)
}
