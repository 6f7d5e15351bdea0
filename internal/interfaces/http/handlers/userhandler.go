package handlers

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/application/user/usecases"
	"taskboard/internal/shared/logger"
	"taskboard/internal/shared/utils"
)

type UserHandler struct {
	getProfileUC  *usecases.GetProfileUseCase
	searchUsersUC *usecases.SearchUsersUseCase
	logger        logger.Interface
}

func NewUserHandler(
	getProfileUC *usecases.GetProfileUseCase,
	searchUsersUC *usecases.SearchUsersUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getProfileUC:  getProfileUC,
		searchUsersUC: searchUsersUC,
		logger:        logger,
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileCommand{
		UserID: callerID,
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	if _, err := utils.CallerID(c); err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	result, err := h.searchUsersUC.Execute(c.Request.Context(), usecases.SearchUsersCommand{
		Fragment: c.Query("email"),
	})
	if err != nil {
		utils.ErrorFromErr(c, err)
		return
	}

	utils.OK(c, result)
}
