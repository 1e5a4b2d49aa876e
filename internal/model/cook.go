package model

// BirthDateLayout is the ISO date format of cooks.data_urodzenia.
const BirthDateLayout = "2006-01-02"

// cooks
type Cook struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName string `gorm:"column:imie;type:text;not null" validate:"required"`
	LastName  string `gorm:"column:nazwisko;type:text;not null" validate:"required"`

	// Stored as text exactly as given; validated as YYYY-MM-DD.
	BirthDate string `gorm:"column:data_urodzenia;type:text;not null" validate:"required,datetime=2006-01-02"`

	RoleID int64 `gorm:"column:role_id;not null;index" validate:"gt=0"`

	Role *Role `gorm:"foreignKey:RoleID" validate:"-"`
}

func (Cook) TableName() string { return TableCooks }
