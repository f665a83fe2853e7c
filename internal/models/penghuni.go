package models

// Penghuni is a tenant. Tenants exist independently of rooms; the link
// to a room lives in Penghuni_Kamar only (the older direct IdKamar
// column is not carried forward).
type Penghuni struct {
	Id           uint   `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	Nama         string `gorm:"column:Nama;type:text;not null" json:"Nama"`
	Umur         int    `gorm:"column:Umur;not null" json:"Umur"`
	JenisKelamin string `gorm:"column:JenisKelamin;type:text;not null" json:"JenisKelamin"`
	NoTelp       string `gorm:"column:NoTelp;type:text;not null" json:"NoTelp"`

	// Local file references captured by the app's image picker; the
	// backend never reads the bytes.
	FotoPenghuni *string `gorm:"column:FotoPenghuni" json:"FotoPenghuni,omitempty"`
	FotoKTP      *string `gorm:"column:FotoKTP" json:"FotoKTP,omitempty"`
}

// TableName pins the original table name
func (Penghuni) TableName() string {
	return "Penghuni"
}
