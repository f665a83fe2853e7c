package models

// Kamar is a single room belonging to a Kosan.
type Kamar struct {
	Id      uint `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	KosanId uint `gorm:"column:KosanId;not null;index:idx_kamar_kosan_id" json:"KosanId"`

	// NoKam is the display room number, unique within a property by
	// convention only; the schema does not enforce it.
	NoKam int `gorm:"column:NoKam;not null" json:"NoKam"`

	StatusKamar StatusKamar `gorm:"column:StatusKamar;not null;default:0" json:"StatusKamar"`

	// Harga overrides the property-level rent when set.
	Harga    *int    `gorm:"column:Harga" json:"Harga,omitempty"`
	ImageUri *string `gorm:"column:ImageUri" json:"ImageUri,omitempty"`
}

// StatusKamar is the occupancy flag of a room
type StatusKamar int

const (
	StatusKamarKosong StatusKamar = 0
	StatusKamarTerisi StatusKamar = 1
)

// Terisi reports whether the room currently has an active occupancy
func (k *Kamar) Terisi() bool {
	return k.StatusKamar == StatusKamarTerisi
}

// TableName pins the original table name
func (Kamar) TableName() string {
	return "Kamar"
}
