package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/application/ticket/usecases"
	"taskboard/internal/shared/logger"
	"taskboard/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC *usecases.CreateTicketUseCase
	listTicketsUC  *usecases.ListProjectTicketsUseCase
	getTicketUC    *usecases.GetTicketUseCase
	updateTicketUC *usecases.UpdateTicketUseCase
	deleteTicketUC *usecases.DeleteTicketUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	listTicketsUC *usecases.ListProjectTicketsUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	updateTicketUC *usecases.UpdateTicketUseCase,
	deleteTicketUC *usecases.DeleteTicketUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		logger:         logger,
	}
}

type CreateTicketRequest struct {
	ProjectID      uint      `json:"project_id" binding:"required"`
	Title          string    `json:"title" binding:"required"`
	Description    string    `json:"description"`
	EstimationDate time.Time `json:"estimation_date" binding:"required"`
	AssigneeIDs    []uint    `json:"assignee_ids"`
}

type UpdateTicketRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	EstimationDate *time.Time `json:"estimation_date"`
	AssigneeIDs    *[]uint    `json:"assignee_ids"`
	LabelIDs       *[]uint    `json:"label_ids"`
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request body", "error", err)
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		ProjectID:      req.ProjectID,
		CallerID:       callerID,
		Title:          req.Title,
		Description:    req.Description,
		EstimationDate: req.EstimationDate,
		AssigneeIDs:    req.AssigneeIDs,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.Created(c, result)
}

func (h *TicketHandler) ListProjectTickets(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "projectId")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListProjectTicketsCommand{
		ProjectID: projectID,
		CallerID:  callerID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketCommand{
		TicketID: ticketID,
		CallerID: callerID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update ticket request body", "error", err)
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:       ticketID,
		CallerID:       callerID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		EstimationDate: req.EstimationDate,
		AssigneeIDs:    req.AssigneeIDs,
		LabelIDs:       req.LabelIDs,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
		CallerID: callerID,
	}); err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OKMessage(c, "ticket deleted")
}
