package models

// Kosan is a boarding-house property. Column names follow the original
// mobile app schema so an existing database file keeps working.
type Kosan struct {
	Id        uint   `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	NamaKosan string `gorm:"column:NamaKosan;type:text;not null" json:"NamaKosan"`
	Kota      string `gorm:"column:Kota;type:text;not null" json:"Kota"`
	Alamat    string `gorm:"column:Alamat;type:text;not null" json:"Alamat"`

	// Harga is the default monthly rent; rooms may override it.
	Harga int `gorm:"column:Harga;not null" json:"Harga"`

	// JumlahKamar is a denormalized room count, maintained only by the
	// room create/delete transactions. Always 0 on a fresh property.
	JumlahKamar int `gorm:"column:JumlahKamar;not null;default:0" json:"JumlahKamar"`

	TipeKosan TipeKosan `gorm:"column:TipeKosan;type:text;not null" json:"TipeKosan"`
	ImageUri  string    `gorm:"column:ImageUri;type:text" json:"ImageUri"`
}

// TipeKosan is the gender designation of a property
type TipeKosan string

const (
	TipeKosanLakiLaki  TipeKosan = "Laki-Laki"
	TipeKosanPerempuan TipeKosan = "Perempuan"
)

// IsValid reports whether the value is one of the known designations
func (t TipeKosan) IsValid() bool {
	return t == TipeKosanLakiLaki || t == TipeKosanPerempuan
}

// TableName pins the original table name
func (Kosan) TableName() string {
	return "Kosan"
}
