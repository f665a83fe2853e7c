package repository

import "errors"

// Domain errors surfaced to callers. Handlers map these onto HTTP
// statuses; everything else is a wrapped storage error.
var (
	// ErrNotFound is returned by lookups and updates that matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrKamarHasTransaksi refuses deletion of a room that has occupancy
	// records, historical or current.
	ErrKamarHasTransaksi = errors.New("kamar memiliki transaksi terkait dan tidak dapat dihapus")

	// ErrPenghuniHasTransaksi refuses deletion of a tenant still
	// referenced by occupancy records.
	ErrPenghuniHasTransaksi = errors.New("penghuni memiliki transaksi terkait dan tidak dapat dihapus")

	// ErrKamarTerisi refuses a second active occupancy for a room.
	ErrKamarTerisi = errors.New("kamar sudah terisi")

	// ErrTanggalInvalid rejects an occupancy whose move-out date falls
	// before its move-in date.
	ErrTanggalInvalid = errors.New("tanggal keluar tidak bisa sebelum tanggal masuk")
)
