package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/application/comment/usecases"
	"taskboard/internal/shared/logger"
	"taskboard/internal/shared/utils"
)

type CommentHandler struct {
	createCommentUC *usecases.CreateCommentUseCase
	listCommentsUC  *usecases.ListTicketCommentsUseCase
	updateCommentUC *usecases.UpdateCommentUseCase
	deleteCommentUC *usecases.DeleteCommentUseCase
	logger          logger.Interface
}

func NewCommentHandler(
	createCommentUC *usecases.CreateCommentUseCase,
	listCommentsUC *usecases.ListTicketCommentsUseCase,
	updateCommentUC *usecases.UpdateCommentUseCase,
	deleteCommentUC *usecases.DeleteCommentUseCase,
	logger logger.Interface,
) *CommentHandler {
	return &CommentHandler{
		createCommentUC: createCommentUC,
		listCommentsUC:  listCommentsUC,
		updateCommentUC: updateCommentUC,
		deleteCommentUC: deleteCommentUC,
		logger:          logger,
	}
}

type CreateCommentRequest struct {
	TicketID uint   `json:"ticket_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create comment request body", "error", err)
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createCommentUC.Execute(c.Request.Context(), usecases.CreateCommentCommand{
		TicketID: req.TicketID,
		CallerID: callerID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.Created(c, result)
}

func (h *CommentHandler) ListTicketComments(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "ticketId")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListTicketCommentsCommand{
		TicketID: ticketID,
		CallerID: callerID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	commentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update comment request body", "error", err)
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateCommentUC.Execute(c.Request.Context(), usecases.UpdateCommentCommand{
		CommentID: commentID,
		CallerID:  callerID,
		Content:   req.Content,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	commentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		CommentID: commentID,
		CallerID:  callerID,
	}); err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OKMessage(c, "comment deleted")
}
