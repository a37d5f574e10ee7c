package model

type Unit struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Nama string `json:"nama"`
}

func (Unit) TableName() string {
	return "unit"
}
