package usecases

import (
	"context"

	"taskboard/internal/application/comment/dto"
	"taskboard/internal/domain/ticket"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type UpdateCommentCommand struct {
	CommentID uint
	CallerID  uint
	Content   string
}

// UpdateCommentUseCase edits a comment's content. Author only; roles grant no
// override, so even the project owner cannot edit someone else's comment.
type UpdateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewUpdateCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error) {
	c, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		return nil, err
	}

	if !c.IsAuthor(cmd.CallerID) {
		return nil, errors.NewForbiddenError("access denied")
	}

	if err := c.UpdateContent(cmd.Content); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update comment", "error", err, "comment_id", cmd.CommentID)
		return nil, errors.NewInternalError("failed to update comment")
	}

	uc.logger.Infow("comment updated", "comment_id", cmd.CommentID, "author_id", cmd.CallerID)

	result := dto.NewCommentDTO(c)
	return &result, nil
}
