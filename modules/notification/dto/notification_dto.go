package dto

import (
	"github.com/google/uuid"
)

// ===================== Request DTOs =====================

type MarkAsReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

type CreateNotificationRequest struct {
	UserID  uuid.UUID              `json:"user_id"`
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	Type    string                 `json:"type"`
	Data    map[string]interface{} `json:"data"`
}

// ===================== Response DTOs =====================

type UnreadCountResponse struct {
	Count int `json:"count"`
}
