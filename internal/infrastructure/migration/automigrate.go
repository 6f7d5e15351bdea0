package migration

import (
	"taskboard/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProjectModel{},
		&models.ProjectMemberModel{},
		&models.LabelModel{},
		&models.TicketModel{},
		&models.TicketAssigneeModel{},
		&models.TicketLabelModel{},
		&models.CommentModel{},
	}
}
