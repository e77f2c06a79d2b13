package notice

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage      = errors.New("notice message must not be empty")
	ErrMessageTooLong    = errors.New("notice message must be at most 2000 characters")
	ErrInvalidTargetType = errors.New("invalid notice target type")
	ErrMissingTarget     = errors.New("specific notice requires a target customer")
)

type TargetType string

const (
	TargetGlobal   TargetType = "global"
	TargetSpecific TargetType = "specific"
)

func (t TargetType) String() string {
	return string(t)
}

func (t TargetType) IsValid() bool {
	return t == TargetGlobal || t == TargetSpecific
}

func NewTargetType(s string) (TargetType, error) {
	tt := TargetType(s)
	if !tt.IsValid() {
		return "", ErrInvalidTargetType
	}
	return tt, nil
}

// Notice is append-only; there is no mutation or deletion path.
type Notice struct {
	id               uuid.UUID
	message          string
	targetType       TargetType
	targetCustomerID *uuid.UUID
	postedBy         uuid.UUID
	createdAt        time.Time
}

func NewGlobalNotice(message string, postedBy uuid.UUID) (*Notice, error) {
	msg, err := validateMessage(message)
	if err != nil {
		return nil, err
	}
	return &Notice{
		id:         uuid.New(),
		message:    msg,
		targetType: TargetGlobal,
		postedBy:   postedBy,
	}, nil
}

func NewCustomerNotice(message string, postedBy, targetCustomerID uuid.UUID) (*Notice, error) {
	msg, err := validateMessage(message)
	if err != nil {
		return nil, err
	}
	if targetCustomerID == uuid.Nil {
		return nil, ErrMissingTarget
	}
	return &Notice{
		id:               uuid.New(),
		message:          msg,
		targetType:       TargetSpecific,
		targetCustomerID: &targetCustomerID,
		postedBy:         postedBy,
	}, nil
}

func ReconstructNotice(
	id uuid.UUID,
	message string,
	targetType TargetType,
	targetCustomerID *uuid.UUID,
	postedBy uuid.UUID,
	createdAt time.Time,
) *Notice {
	return &Notice{
		id:               id,
		message:          message,
		targetType:       targetType,
		targetCustomerID: targetCustomerID,
		postedBy:         postedBy,
		createdAt:        createdAt,
	}
}

func validateMessage(message string) (string, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return "", ErrEmptyMessage
	}
	if len(msg) > 2000 {
		return "", ErrMessageTooLong
	}
	return msg, nil
}

func (n *Notice) IsGlobal() bool {
	return n.targetType == TargetGlobal
}

func (n *Notice) ID() uuid.UUID                { return n.id }
func (n *Notice) Message() string              { return n.message }
func (n *Notice) TargetType() TargetType       { return n.targetType }
func (n *Notice) TargetCustomerID() *uuid.UUID { return n.targetCustomerID }
func (n *Notice) PostedBy() uuid.UUID          { return n.postedBy }
func (n *Notice) CreatedAt() time.Time         { return n.createdAt }
