package model

// roles
type Role struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:nazwa;type:varchar(250);not null;uniqueIndex" validate:"required,max=250"`
	Description string `gorm:"column:opis;type:text"`

	// Cooks []Cook `gorm:"foreignKey:RoleID"`: не нужно для CRUD, подгружаем отдельно
}

func (Role) TableName() string { return TableRoles }
