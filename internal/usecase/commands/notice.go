package commands

import (
	"context"

	"gas-agency/internal/domain/audit"
	"gas-agency/internal/domain/notice"
	"gas-agency/internal/infra"
	"gas-agency/internal/pkg/errs"
	"gas-agency/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrNoticeTargetNotFound = errs.New("notice target customer not found")
	ErrNoticeStoreFailed    = errs.New("notice store operation failed")
)

type PostNoticeRequest struct {
	Message          string
	TargetType       string
	TargetCustomerID *uuid.UUID
}

type NoticeWriteRepository interface {
	Insert(ctx context.Context, n *notice.Notice) error
}

type NoticeCommands interface {
	Post(ctx context.Context, adminID uuid.UUID, req PostNoticeRequest) (uuid.UUID, error)
}

type noticeCommandsImpl struct {
	notices   NoticeWriteRepository
	customers queries.CustomerReadStore
	effects   SideEffects
}

func NewNoticeCommands(notices NoticeWriteRepository, customers queries.CustomerReadStore, effects SideEffects) NoticeCommands {
	return &noticeCommandsImpl{
		notices:   notices,
		customers: customers,
		effects:   effects,
	}
}

// Post publishes a notice. A specific notice is validated against the
// customer roster before anything is written; an invalid target produces no
// row and no side effects.
func (n *noticeCommandsImpl) Post(ctx context.Context, adminID uuid.UUID, req PostNoticeRequest) (uuid.UUID, error) {
	targetType, err := notice.NewTargetType(req.TargetType)
	if err != nil {
		return uuid.Nil, err
	}

	var (
		entity      *notice.Notice
		targetEmail string
	)
	switch targetType {
	case notice.TargetGlobal:
		entity, err = notice.NewGlobalNotice(req.Message, adminID)
		if err != nil {
			return uuid.Nil, err
		}
	case notice.TargetSpecific:
		if req.TargetCustomerID == nil {
			return uuid.Nil, notice.ErrMissingTarget
		}
		target, findErr := n.customers.FindByID(ctx, *req.TargetCustomerID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return uuid.Nil, errs.Mark(findErr, ErrNoticeTargetNotFound)
			}
			return uuid.Nil, errs.Mark(findErr, ErrNoticeStoreFailed)
		}
		entity, err = notice.NewCustomerNotice(req.Message, adminID, target.ID)
		if err != nil {
			return uuid.Nil, err
		}
		targetEmail = target.Email
	}

	if err := n.notices.Insert(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, ErrNoticeTargetNotFound)
		}
		return uuid.Nil, errs.Mark(err, ErrNoticeStoreFailed)
	}

	if targetEmail != "" {
		n.effects.Email(ctx, targetEmail, "Notice from your gas agency", entity.Message())
	}
	n.effects.Audit(ctx, audit.NewEntry(adminID.String(), audit.ActorAdmin,
		audit.ActionNoticePosted, entity.Message()))

	return entity.ID(), nil
}
