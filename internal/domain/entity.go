package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type User struct {
	Id           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SavedPrompt struct {
	Id              string     `gorm:"primaryKey" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	OptimizedPrompt string     `gorm:"not null" json:"optimizedPrompt"`
	Tips            StringList `gorm:"type:text" json:"tips"`
	Purpose         string     `json:"purpose"`
	IsPublic        bool       `gorm:"default:false" json:"isPublic"`
	UserId          string     `gorm:"index;not null" json:"userId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Session is the caller identity resolved from a bearer token. A nil
// session means the caller is unauthenticated.
type Session struct {
	UserId string
	Email  string
}

// StringList stores a string slice as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}

	b, err := json.Marshal(l)

	if err != nil {
		return nil, err
	}

	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported string list column type")
	}
}
