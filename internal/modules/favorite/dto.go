package favorite

import "warrantly/internal/domain"

type ToggleRequest struct {
	Type     domain.FavoriteType `json:"type" validate:"required"`
	TargetID string              `json:"target_id" validate:"required"`
}
