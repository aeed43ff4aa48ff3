package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// FoodItemUsecase は /food-item の業務ロジック。
type FoodItemUsecase struct {
	foodItemRepo repo.FoodItemRepository
	auditRepo    repo.AuditLogRepository
	uploadDir    string
}

// DI
func NewFoodItemUsecase(
	foodItemRepo repo.FoodItemRepository,
	auditRepo repo.AuditLogRepository,
	uploadDir string,
) *FoodItemUsecase {
	return &FoodItemUsecase{
		foodItemRepo: foodItemRepo,
		auditRepo:    auditRepo,
		uploadDir:    uploadDir,
	}
}

// FoodItemDTO is the wire shape: price travels as a 2-decimal string.
type FoodItemDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Available   bool    `json:"available"`
	Image       *string `json:"image"`
	Type        string  `json:"type"`
}

func toFoodItemDTO(f model.FoodItem) FoodItemDTO {
	return FoodItemDTO{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price.StringFixed(2),
		Available:   f.Available,
		Image:       f.Image,
		Type:        string(f.Type),
	}
}

type FoodItemCreateInput struct {
	Name        string
	Description string
	Price       string
	Available   *bool
	Type        string
}

type FoodItemUpdateInput struct {
	Name        *string
	Description *string
	Price       *string
	Available   *bool
	Type        *string
}

// List returns the whole catalog; availability is not filtered, callers
// hide unavailable items themselves.
func (u *FoodItemUsecase) List(ctx context.Context) ([]FoodItemDTO, error) {
	items, err := u.foodItemRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]FoodItemDTO, 0, len(items))
	for _, f := range items {
		out = append(out, toFoodItemDTO(f))
	}
	return out, nil
}

func (u *FoodItemUsecase) Get(ctx context.Context, id int64) (FoodItemDTO, error) {
	f, err := u.foodItemRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return FoodItemDTO{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toFoodItemDTO(f), nil
}

func (u *FoodItemUsecase) Create(ctx context.Context, userID int64, in FoodItemCreateInput) (FoodItemDTO, error) {
	if userID <= 0 {
		return FoodItemDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return FoodItemDTO{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return FoodItemDTO{}, err
	}

	foodType := model.FoodTypeMainCourse
	if in.Type != "" {
		foodType = model.FoodType(in.Type)
		if !foodType.Valid() {
			return FoodItemDTO{}, NewHTTPError(http.StatusBadRequest, "invalid type")
		}
	}

	f := model.FoodItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Type:        foodType,
	}
	if in.Available != nil {
		f.Available = *in.Available
	}

	created, err := u.foodItemRepo.Create(ctx, f)
	if err != nil {
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, userID, model.AuditActionCreateFoodItem, created.ID, nil, &created)
	return toFoodItemDTO(created), nil
}

// Update replaces every writable field (PUT).
func (u *FoodItemUsecase) Update(ctx context.Context, userID int64, id int64, in FoodItemCreateInput) (FoodItemDTO, error) {
	if userID <= 0 {
		return FoodItemDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return FoodItemDTO{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}

	price, err := parsePrice(in.Price)
	if err != nil {
		return FoodItemDTO{}, err
	}

	foodType := model.FoodTypeMainCourse
	if in.Type != "" {
		foodType = model.FoodType(in.Type)
		if !foodType.Valid() {
			return FoodItemDTO{}, NewHTTPError(http.StatusBadRequest, "invalid type")
		}
	}

	before, err := u.foodItemRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return FoodItemDTO{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after := before
	after.Name = in.Name
	after.Description = in.Description
	after.Price = price
	after.Type = foodType
	after.Available = false
	if in.Available != nil {
		after.Available = *in.Available
	}

	if err := u.foodItemRepo.Update(ctx, after); err != nil {
		if err == repo.ErrNotFound {
			return FoodItemDTO{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, userID, model.AuditActionUpdateFoodItem, id, &before, &after)
	return toFoodItemDTO(after), nil
}

// PartialUpdate changes only the fields present in the request (PATCH).
func (u *FoodItemUsecase) PartialUpdate(ctx context.Context, userID int64, id int64, in FoodItemUpdateInput) (FoodItemDTO, error) {
	if userID <= 0 {
		return FoodItemDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	before, err := u.foodItemRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return FoodItemDTO{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	after := before
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return FoodItemDTO{}, NewHTTPError(http.StatusBadRequest, "name is required")
		}
		after.Name = *in.Name
	}
	if in.Description != nil {
		after.Description = *in.Description
	}
	if in.Price != nil {
		price, err := parsePrice(*in.Price)
		if err != nil {
			return FoodItemDTO{}, err
		}
		after.Price = price
	}
	if in.Available != nil {
		after.Available = *in.Available
	}
	if in.Type != nil {
		foodType := model.FoodType(*in.Type)
		if !foodType.Valid() {
			return FoodItemDTO{}, NewHTTPError(http.StatusBadRequest, "invalid type")
		}
		after.Type = foodType
	}

	if err := u.foodItemRepo.Update(ctx, after); err != nil {
		if err == repo.ErrNotFound {
			return FoodItemDTO{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, userID, model.AuditActionUpdateFoodItem, id, &before, &after)
	return toFoodItemDTO(after), nil
}

// Delete removes the item; order lines keep their rows with the food
// reference nulled out.
func (u *FoodItemUsecase) Delete(ctx context.Context, userID int64, id int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	before, err := u.foodItemRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.foodItemRepo.Delete(ctx, id); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, userID, model.AuditActionDeleteFoodItem, id, &before, nil)
	return nil
}

// UploadImage stores the file under uploadDir with a random name and
// saves its URL on the item.
func (u *FoodItemUsecase) UploadImage(ctx context.Context, userID int64, id int64, filename string, src io.Reader) (FoodItemDTO, error) {
	if userID <= 0 {
		return FoodItemDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	before, err := u.foodItemRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return FoodItemDTO{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext
	dir := filepath.Join(u.uploadDir, "food_item")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	url := "/uploads/food_item/" + name
	after := before
	after.Image = &url

	if err := u.foodItemRepo.Update(ctx, after); err != nil {
		return FoodItemDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, userID, model.AuditActionUploadImage, id, &before, &after)
	return toFoodItemDTO(after), nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if price.IsNegative() {
		return decimal.Decimal{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if price.Exponent() < -2 {
		return decimal.Decimal{}, NewHTTPError(http.StatusBadRequest, "ensure that there are no more than 2 decimal places.")
	}
	return price, nil
}

// AuditLogDTO is one catalog change as returned by the log endpoint.
type AuditLogDTO struct {
	ID           int64     `json:"id"`
	ActorUserID  int64     `json:"actor_user_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   int64     `json:"resource_id"`
	Before       string    `json:"before"`
	After        string    `json:"after"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuditLogQueryInput struct {
	Action     string
	ResourceID *int64
	Limit      int
	Offset     int
}

// AuditLogs returns the catalog change history, newest first.
func (u *FoodItemUsecase) AuditLogs(ctx context.Context, userID int64, in AuditLogQueryInput) ([]AuditLogDTO, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	filter := repo.AuditLogFilter{
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	if in.Action != "" {
		action := model.AuditAction(in.Action)
		if !action.Valid() {
			return nil, NewHTTPError(http.StatusBadRequest, "invalid action")
		}
		filter.Action = &action
	}
	if in.ResourceID != nil {
		resourceType := model.AuditResourceFoodItem
		filter.ResourceType = &resourceType
		filter.ResourceID = in.ResourceID
	}

	logs, err := u.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]AuditLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, AuditLogDTO{
			ID:           l.ID,
			ActorUserID:  l.ActorUserID,
			Action:       string(l.Action),
			ResourceType: string(l.ResourceType),
			ResourceID:   l.ResourceID,
			Before:       l.BeforeJSON,
			After:        l.AfterJSON,
			CreatedAt:    l.CreatedAt,
		})
	}
	return out, nil
}

// audit is best effort: a failed log write never fails the request.
func (u *FoodItemUsecase) audit(ctx context.Context, actorID int64, action model.AuditAction, resourceID int64, before, after *model.FoodItem) {
	entry := model.AuditLog{
		ActorUserID:  actorID,
		Action:       action,
		ResourceType: model.AuditResourceFoodItem,
		ResourceID:   resourceID,
	}
	if before != nil {
		if b, err := json.Marshal(toFoodItemDTO(*before)); err == nil {
			entry.BeforeJSON = string(b)
		}
	}
	if after != nil {
		if b, err := json.Marshal(toFoodItemDTO(*after)); err == nil {
			entry.AfterJSON = string(b)
		}
	}

	_ = u.auditRepo.Create(ctx, entry)
}
