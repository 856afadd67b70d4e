package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rewear/exchange/internal/model"
)

var ErrSwapRequestNotFound = errors.New("SWAP_REQUEST_NOT_FOUND")

type SwapRequestRepository interface {
	Create(ctx context.Context, request *model.SwapRequest) error
	GetByID(id int64) (*model.SwapRequest, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.SwapRequest, error)
	UpdateStatus(ctx context.Context, id int64, to model.SwapStatus, completedAt *time.Time, from ...model.SwapStatus) error
	Delete(ctx context.Context, id int64) error
	ListByRequester(requesterID int64) ([]model.SwapRequest, error)
	ListByReceiver(receiverID int64) ([]model.SwapRequest, error)
	CountSettledByRequester(requesterID int64) (int64, error)
	CountCompleted() (int64, error)
}

type SwapRequest struct {
	db *gorm.DB
}

func NewSwapRequestRepository(db *gorm.DB) SwapRequestRepository {
	return &SwapRequest{db: db}
}

func (s *SwapRequest) Create(ctx context.Context, request *model.SwapRequest) error {
	db := GetTx(ctx, s.db)
	return db.Create(request).Error
}

func (s *SwapRequest) GetByID(id int64) (*model.SwapRequest, error) {
	var request model.SwapRequest

	err := s.db.Where("id = ?", id).First(&request).Error
	if err == nil {
		return &request, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSwapRequestNotFound
	}

	return nil, err
}

// GetByIDForUpdate locks the request row so a cancel racing an accept on the
// same request serializes on it.
func (s *SwapRequest) GetByIDForUpdate(ctx context.Context, id int64) (*model.SwapRequest, error) {
	db := GetTx(ctx, s.db)

	var request model.SwapRequest
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&request).Error
	if err == nil {
		return &request, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSwapRequestNotFound
	}

	return nil, err
}

// UpdateStatus advances the request only from one of the expected statuses.
// ErrNoRowsAffected signals a terminal or concurrently-changed request.
func (s *SwapRequest) UpdateStatus(ctx context.Context, id int64, to model.SwapStatus, completedAt *time.Time, from ...model.SwapStatus) error {
	db := GetTx(ctx, s.db)

	updates := map[string]any{"status": to}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}

	query := db.Model(&model.SwapRequest{}).Where("id = ?", id)
	if len(from) > 0 {
		query = query.Where("status IN ?", from)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (s *SwapRequest) Delete(ctx context.Context, id int64) error {
	db := GetTx(ctx, s.db)

	result := db.Where("id = ?", id).Delete(&model.SwapRequest{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSwapRequestNotFound
	}

	return nil
}

func (s *SwapRequest) ListByRequester(requesterID int64) ([]model.SwapRequest, error) {
	return s.list("requester_id = ?", requesterID)
}

func (s *SwapRequest) ListByReceiver(receiverID int64) ([]model.SwapRequest, error) {
	return s.list("receiver_id = ?", receiverID)
}

func (s *SwapRequest) list(cond string, arg any) ([]model.SwapRequest, error) {
	var requests []model.SwapRequest

	err := s.db.
		Preload("Requester").
		Preload("Item").
		Preload("Item.User").
		Preload("Item.Category").
		Preload("OfferedItem").
		Where(cond, arg).
		Order("created_at DESC").
		Find(&requests).Error

	return requests, err
}

// CountSettledByRequester counts the requester's accepted and completed
// requests, the "successful swaps" figure on the dashboard.
func (s *SwapRequest) CountSettledByRequester(requesterID int64) (int64, error) {
	var count int64
	err := s.db.Model(&model.SwapRequest{}).
		Where("requester_id = ? AND status IN ?", requesterID,
			[]model.SwapStatus{model.SwapStatusAccepted, model.SwapStatusCompleted}).
		Count(&count).Error
	return count, err
}

func (s *SwapRequest) CountCompleted() (int64, error) {
	var count int64
	err := s.db.Model(&model.SwapRequest{}).
		Where("status = ?", model.SwapStatusCompleted).
		Count(&count).Error
	return count, err
}
