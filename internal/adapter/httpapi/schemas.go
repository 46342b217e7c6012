package httpapi

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assetbook/backend/internal/domain"
)

// Request schemas validate the shape of incoming payloads before anything
// reaches the services: blank-after-trim strings are rejected here, not in the
// data layer.

type createCategoryRequest struct {
	Name        string          `json:"name"`
	TargetRatio decimal.Decimal `json:"target_ratio"`
}

func (r createCategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name cannot be empty or blank")
	}
	return nil
}

type updateCategoryRequest struct {
	Name        string          `json:"name"`
	TargetRatio decimal.Decimal `json:"target_ratio"`
}

func (r updateCategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name cannot be empty or blank")
	}
	return nil
}

type createGroupingRequest struct {
	AssetMasterID string `json:"asset_master_id"`
	CategoryID    string `json:"category_id"`
}

func (r createGroupingRequest) Validate() error {
	if strings.TrimSpace(r.AssetMasterID) == "" {
		return errors.New("asset_master_id cannot be empty or blank")
	}
	if strings.TrimSpace(r.CategoryID) == "" {
		return errors.New("category_id cannot be empty or blank")
	}
	return nil
}

type updateGroupingRequest struct {
	CategoryID string `json:"category_id"`
}

func (r updateGroupingRequest) Validate() error {
	if strings.TrimSpace(r.CategoryID) == "" {
		return errors.New("category_id cannot be empty or blank")
	}
	return nil
}

type createHoldingRequest struct {
	AssetMasterID string          `json:"asset_master_id"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

func (r createHoldingRequest) Validate() error {
	if strings.TrimSpace(r.AssetMasterID) == "" {
		return errors.New("asset_master_id cannot be empty or blank")
	}
	return nil
}

type updateHoldingRequest struct {
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

func (r updateHoldingRequest) Validate() error {
	return nil
}

type accountRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r accountRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username cannot be empty or blank")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email cannot be empty or blank")
	}
	return nil
}

type catalogAssetRequest struct {
	Name         string  `json:"name"`
	TickerSymbol *string `json:"ticker_symbol"`
}

func (r catalogAssetRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name cannot be empty or blank")
	}
	return nil
}

// Response views serialize entities as flat field records.

type categoryResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Name        string          `json:"name"`
	TargetRatio decimal.Decimal `json:"target_ratio"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func newCategoryResponse(c *domain.AssetCategory) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		AccountID:   c.AccountID,
		Name:        c.Name,
		TargetRatio: c.TargetRatio,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func newCategoryListResponse(categories []*domain.AssetCategory) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryResponse(c))
	}
	return out
}

type groupingResponse struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	AssetMasterID string    `json:"asset_master_id"`
	CategoryID    string    `json:"category_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newGroupingResponse(g *domain.Grouping) groupingResponse {
	return groupingResponse{
		ID:            g.ID,
		AccountID:     g.AccountID,
		AssetMasterID: g.AssetMasterID,
		CategoryID:    g.CategoryID,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func newGroupingListResponse(groupings []*domain.Grouping) []groupingResponse {
	out := make([]groupingResponse, 0, len(groupings))
	for _, g := range groupings {
		out = append(out, newGroupingResponse(g))
	}
	return out
}

type holdingResponse struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"account_id"`
	AssetMasterID string          `json:"asset_master_id"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func newHoldingResponse(h *domain.Holding) holdingResponse {
	return holdingResponse{
		ID:            h.ID,
		AccountID:     h.AccountID,
		AssetMasterID: h.AssetMasterID,
		CurrentAmount: h.CurrentAmount,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

func newHoldingListResponse(holdings []*domain.Holding) []holdingResponse {
	out := make([]holdingResponse, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, newHoldingResponse(h))
	}
	return out
}

type accountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type catalogAssetResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TickerSymbol *string   `json:"ticker_symbol"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newCatalogAssetResponse(a *domain.AssetMaster) catalogAssetResponse {
	return catalogAssetResponse{
		ID:           a.ID,
		Name:         a.Name,
		TickerSymbol: a.TickerSymbol,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
