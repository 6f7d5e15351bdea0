package usecases

import (
	"context"

	"taskboard/internal/domain/ticket"
	"taskboard/internal/shared/errors"
	"taskboard/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
	CallerID  uint
}

// DeleteCommentUseCase removes a comment. Author only, same as editing.
type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	c, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		return err
	}

	if !c.IsAuthor(cmd.CallerID) {
		return errors.NewForbiddenError("access denied")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", cmd.CommentID)
		return errors.NewInternalError("failed to delete comment")
	}

	uc.logger.Infow("comment deleted", "comment_id", cmd.CommentID, "author_id", cmd.CallerID)
	return nil
}
