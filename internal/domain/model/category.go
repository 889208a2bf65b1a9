package model

import "freshcart/internal/i18n"

type Category struct {
	ID     string `gorm:"type:varchar(64);primaryKey" json:"id"`
	NameEn string `gorm:"column:name_en;type:varchar(255);not null" json:"name_en"`
	NameTa string `gorm:"column:name_ta;type:varchar(255)" json:"name_ta"`
	// アイコン名（Package など）と色トークン
	Icon  string `gorm:"type:varchar(50)" json:"icon"`
	Color string `gorm:"type:varchar(100)" json:"color"`
}

func (c Category) Name() i18n.Localized {
	return i18n.Localized{En: c.NameEn, Ta: c.NameTa}
}
