package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/application/project/usecases"
	"taskboard/internal/shared/logger"
	"taskboard/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC *usecases.CreateProjectUseCase
	listProjectsUC  *usecases.ListProjectsUseCase
	getProjectUC    *usecases.GetProjectUseCase
	updateProjectUC *usecases.UpdateProjectUseCase
	deleteProjectUC *usecases.DeleteProjectUseCase
	addMemberUC     *usecases.AddMemberUseCase
	removeMemberUC  *usecases.RemoveMemberUseCase
	addAdminUC      *usecases.AddAdminUseCase
	removeAdminUC   *usecases.RemoveAdminUseCase
	createLabelUC   *usecases.CreateLabelUseCase
	listLabelsUC    *usecases.ListLabelsUseCase
	deleteLabelUC   *usecases.DeleteLabelUseCase
	logger          logger.Interface
}

func NewProjectHandler(
	createProjectUC *usecases.CreateProjectUseCase,
	listProjectsUC *usecases.ListProjectsUseCase,
	getProjectUC *usecases.GetProjectUseCase,
	updateProjectUC *usecases.UpdateProjectUseCase,
	deleteProjectUC *usecases.DeleteProjectUseCase,
	addMemberUC *usecases.AddMemberUseCase,
	removeMemberUC *usecases.RemoveMemberUseCase,
	addAdminUC *usecases.AddAdminUseCase,
	removeAdminUC *usecases.RemoveAdminUseCase,
	createLabelUC *usecases.CreateLabelUseCase,
	listLabelsUC *usecases.ListLabelsUseCase,
	deleteLabelUC *usecases.DeleteLabelUseCase,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC: createProjectUC,
		listProjectsUC:  listProjectsUC,
		getProjectUC:    getProjectUC,
		updateProjectUC: updateProjectUC,
		deleteProjectUC: deleteProjectUC,
		addMemberUC:     addMemberUC,
		removeMemberUC:  removeMemberUC,
		addAdminUC:      addAdminUC,
		removeAdminUC:   removeAdminUC,
		createLabelUC:   createLabelUC,
		listLabelsUC:    listLabelsUC,
		deleteLabelUC:   deleteLabelUC,
		logger:          logger,
	}
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type CreateLabelRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type MemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create project request body", "error", err)
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		CreatorID:   callerID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.Created(c, result)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.listProjectsUC.Execute(c.Request.Context(), usecases.ListProjectsCommand{
		UserID: callerID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectCommand{
		ProjectID: projectID,
		CallerID:  callerID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update project request body", "error", err)
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateProjectUC.Execute(c.Request.Context(), usecases.UpdateProjectCommand{
		ProjectID:   projectID,
		CallerID:    callerID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	if err := h.deleteProjectUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{
		ProjectID: projectID,
		CallerID:  callerID,
	}); err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OKMessage(c, "project deleted")
}

func (h *ProjectHandler) AddMember(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid add member request body", "error", err)
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addMemberUC.Execute(c.Request.Context(), usecases.AddMemberCommand{
		ProjectID: projectID,
		CallerID:  callerID,
		UserID:    req.UserID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	userID, err := utils.ParseUintParam(c, "userId")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.removeMemberUC.Execute(c.Request.Context(), usecases.RemoveMemberCommand{
		ProjectID: projectID,
		CallerID:  callerID,
		UserID:    userID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *ProjectHandler) AddAdmin(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid add admin request body", "error", err)
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.addAdminUC.Execute(c.Request.Context(), usecases.AddAdminCommand{
		ProjectID: projectID,
		CallerID:  callerID,
		UserID:    req.UserID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *ProjectHandler) RemoveAdmin(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	userID, err := utils.ParseUintParam(c, "userId")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.removeAdminUC.Execute(c.Request.Context(), usecases.RemoveAdminCommand{
		ProjectID: projectID,
		CallerID:  callerID,
		UserID:    userID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *ProjectHandler) CreateLabel(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create label request body", "error", err)
		utils.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createLabelUC.Execute(c.Request.Context(), usecases.CreateLabelCommand{
		ProjectID: projectID,
		CallerID:  callerID,
		Name:      req.Name,
		Color:     req.Color,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.Created(c, result)
}

func (h *ProjectHandler) ListLabels(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.listLabelsUC.Execute(c.Request.Context(), usecases.ListLabelsCommand{
		ProjectID: projectID,
		CallerID:  callerID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *ProjectHandler) DeleteLabel(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	labelID, err := utils.ParseUintParam(c, "labelId")
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	if err := h.deleteLabelUC.Execute(c.Request.Context(), usecases.DeleteLabelCommand{
		ProjectID: projectID,
		LabelID:   labelID,
		CallerID:  callerID,
	}); err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OKMessage(c, "label deleted")
}
