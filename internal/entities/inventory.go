package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type ItemStatus string

const (
	ItemStatusInStock  ItemStatus = "in_stock"
	ItemStatusLent     ItemStatus = "lent"
	ItemStatusConsumed ItemStatus = "consumed"
	ItemStatusDisposed ItemStatus = "disposed"
	ItemStatusLost     ItemStatus = "lost"
)

type HistoryAction string

const (
	HistoryActionCreate HistoryAction = "create"
	HistoryActionMove   HistoryAction = "move"
	HistoryActionLend   HistoryAction = "lend"
	HistoryActionReturn HistoryAction = "return"
	HistoryActionUpdate HistoryAction = "update"
	HistoryActionDelete HistoryAction = "delete"
)

// ItemUnit is a measurement unit label. The UI offers these as presets but
// the store accepts any value.
type ItemUnit string

// DefaultUnit is used when an item is created without a unit.
const DefaultUnit ItemUnit = "个"

// Units lists the built-in measurement units, grouped the way the item form
// presents them.
var Units = []ItemUnit{
	"个", "件", "只", // 通用
	"盒", "箱", "包", "袋", // 包装
	"卷", "张", "本", // 纸类
	"瓶", "罐", "桶", // 液体/容器
	"套", "组", "对", // 组合
	"米", "厘米", // 长度
	"克", "千克", // 重量
}

// StringList stores an ordered list of strings as a JSON text column.
// Insertion order is preserved; membership lookups go through sqlite's
// json_each.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Location is a top-level grouping of rooms, e.g. "home" or "office".
// At most one location should be the default; the seed initializer keeps
// that property, the store does not enforce it.
type Location struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	IsDefault   bool   `gorm:"index" json:"isDefault,omitempty"`
	CreatedAt   int64  `gorm:"index" json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

type Room struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	LocationID  string `gorm:"index;size:36" json:"locationId,omitempty"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	CreatedAt   int64  `gorm:"index" json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// Container belongs to exactly one room and never moves to another room;
// only items move between containers. Code is the QR scan identifier.
type Container struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	RoomID      string `gorm:"index;size:36" json:"roomId"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	Code        string `gorm:"index;size:200" json:"code"`
	DeletedAt   *int64 `gorm:"index" json:"deletedAt,omitempty"`
	CreatedAt   int64  `gorm:"index" json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// Active reports whether the container has not been soft-deleted.
func (c Container) Active() bool {
	return c.DeletedAt == nil
}

// Item is the tracked physical object. RoomID is a denormalized copy of the
// container's room; every write path that changes ContainerID keeps it in
// sync. Both are nil when the item is unlinked (its container or room was
// deleted).
type Item struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"index;size:200" json:"name"`
	Alias       string     `gorm:"size:200" json:"alias,omitempty"`
	RoomID      *string    `gorm:"index;size:36" json:"roomId,omitempty"`
	ContainerID *string    `gorm:"index;size:36" json:"containerId,omitempty"`
	Quantity    int        `json:"quantity"`
	Unit        ItemUnit   `gorm:"size:20" json:"unit"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	Status      ItemStatus `gorm:"index;size:20" json:"status"`
	LentTo      string     `gorm:"size:100" json:"lentTo,omitempty"`
	LentAt      *int64     `json:"lentAt,omitempty"`
	ImageID     *string    `gorm:"size:36" json:"imageId,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   int64      `gorm:"index" json:"createdAt"`
	UpdatedAt   int64      `json:"updatedAt"`
}

// Image holds an item photo inline as an encoded data URL.
type Image struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ItemID    string `gorm:"index;size:36" json:"itemId"`
	DataURL   string `gorm:"type:text" json:"dataUrl"`
	MimeType  string `gorm:"size:50" json:"mimeType"`
	Size      int64  `json:"size"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	CreatedAt int64  `gorm:"index" json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// ItemHistory is an append-only audit record derived from item mutations.
// Rows are never updated or deleted once written; the ids they reference
// may stop resolving (deleted containers and rooms) and consumers handle
// that themselves.
type ItemHistory struct {
	ID              string        `gorm:"primaryKey;size:36" json:"id"`
	ItemID          string        `gorm:"index;size:36" json:"itemId"`
	Action          HistoryAction `gorm:"index;size:20" json:"action"`
	FromContainerID *string       `gorm:"size:36" json:"fromContainerId,omitempty"`
	ToContainerID   *string       `gorm:"size:36" json:"toContainerId,omitempty"`
	FromRoomID      *string       `gorm:"size:36" json:"fromRoomId,omitempty"`
	ToRoomID        *string       `gorm:"size:36" json:"toRoomId,omitempty"`
	LentTo          string        `gorm:"size:100" json:"lentTo,omitempty"`
	Note            string        `gorm:"size:500" json:"note,omitempty"`
	CreatedAt       int64         `gorm:"index" json:"createdAt"`
	UpdatedAt       int64         `json:"updatedAt"`
}

// TagCategory maps item-name keywords to suggested tags. IsCustom separates
// user-defined categories from the seeded built-ins.
type TagCategory struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"index;size:100" json:"name"`
	Keywords    StringList `gorm:"type:text" json:"keywords"`
	Suggestions StringList `gorm:"type:text" json:"suggestions"`
	IsCustom    bool       `gorm:"index" json:"isCustom"`
	CreatedAt   int64      `gorm:"index" json:"createdAt"`
	UpdatedAt   int64      `json:"updatedAt"`
}

// Setting is a key/value row for store-level bookkeeping (backup state).
type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

func (Location) TableName() string     { return "locations" }
func (Room) TableName() string        { return "rooms" }
func (Container) TableName() string   { return "containers" }
func (Item) TableName() string        { return "items" }
func (Image) TableName() string       { return "images" }
func (ItemHistory) TableName() string { return "item_history" }
func (TagCategory) TableName() string { return "tag_categories" }
func (Setting) TableName() string     { return "settings" }
