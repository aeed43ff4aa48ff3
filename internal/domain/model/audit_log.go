package model

import "time"

// カタログ操作のログ
type AuditAction string

const (
	AuditActionCreateFoodItem AuditAction = "CREATE_FOOD_ITEM"
	AuditActionUpdateFoodItem AuditAction = "UPDATE_FOOD_ITEM"
	AuditActionDeleteFoodItem AuditAction = "DELETE_FOOD_ITEM"
	AuditActionUploadImage    AuditAction = "UPLOAD_FOOD_ITEM_IMAGE"
)

func (a AuditAction) Valid() bool {
	switch a {
	case AuditActionCreateFoodItem, AuditActionUpdateFoodItem,
		AuditActionDeleteFoodItem, AuditActionUploadImage:
		return true
	}
	return false
}

type AuditResourceType string

const (
	AuditResourceFoodItem AuditResourceType = "food_item"
)

// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
type AuditLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	ActorUserID int64 `gorm:"not null;index" json:"actor_user_id"`

	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`
	ResourceID   int64             `gorm:"not null;index" json:"resource_id"`

	// JSON文字列で保存する。
	BeforeJSON string `gorm:"type:text" json:"before_json"`
	AfterJSON  string `gorm:"type:text" json:"after_json"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
