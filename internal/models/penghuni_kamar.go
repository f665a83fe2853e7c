package models

import "time"

// PenghuniKamar is an occupancy record linking a tenant to a room for a
// date range. A room accumulates historical rows over time; at most one
// of them may be active (enforced by the occupancy repository, not the
// schema).
type PenghuniKamar struct {
	Id         uint `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	KamarId    uint `gorm:"column:KamarId;not null;index:idx_penghuni_kamar_kamar_id" json:"KamarId"`
	PenghuniId uint `gorm:"column:PenghuniId;not null;index:idx_penghuni_kamar_penghuni_id" json:"PenghuniId"`

	TanggalMasuk  *time.Time `gorm:"column:TanggalMasuk;type:date" json:"TanggalMasuk,omitempty"`
	TanggalKeluar *time.Time `gorm:"column:TanggalKeluar;type:date" json:"TanggalKeluar,omitempty"`

	StatusPembayaran *StatusPembayaran `gorm:"column:StatusPembayaran" json:"StatusPembayaran,omitempty"`
}

// StatusPembayaran is the payment flag of an occupancy record
type StatusPembayaran int

const (
	StatusPembayaranBelumLunas StatusPembayaran = 0
	StatusPembayaranLunas      StatusPembayaran = 1
)

// TableName pins the original table name
func (PenghuniKamar) TableName() string {
	return "Penghuni_Kamar"
}

// DetailKamar is one row of the denormalized room listing: every room of
// a property joined against its occupancy record and tenant, if any.
// Rooms without a tenant carry nil tenant fields.
type DetailKamar struct {
	KamarId     uint        `json:"KamarId"`
	KosanId     uint        `json:"KosanId"`
	NoKam       int         `json:"NoKam"`
	StatusKamar StatusKamar `json:"StatusKamar"`
	Harga       *int        `json:"Harga,omitempty"`
	ImageUri    *string     `json:"ImageUri,omitempty"`

	TransId          *uint             `json:"TransId,omitempty"`
	TanggalMasuk     *time.Time        `json:"TanggalMasuk,omitempty"`
	TanggalKeluar    *time.Time        `json:"TanggalKeluar,omitempty"`
	StatusPembayaran *StatusPembayaran `json:"StatusPembayaran,omitempty"`

	PenghuniId *uint   `json:"PenghuniId,omitempty"`
	Nama       *string `json:"Nama,omitempty"`
}
