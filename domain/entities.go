package domain

import "time"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "sahasrara_session"

// Account roles
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
	RoleOwner = "OWNER"
)

// Account represents a staff account that can authenticate with a PIN
type Account struct {
	ID        uint
	Name      string
	Email     string
	PINHash   string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session is the client-held proof of a successful PIN login. It travels in
// a signed cookie; the server keeps no copy.
type Session struct {
	Authenticated bool
	UserID        uint
	UserName      string
	UserRole      string
	IssuedAt      time.Time
	ExpiresAt     time.Time
	RememberMe    bool
}

// Expired reports whether the session lifetime has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// LoginResult represents a successful login outcome
type LoginResult struct {
	Account *Account
	Session *Session
	Token   string
}

// Sex is the stored representation of the baby's sex.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// SexFromCode maps the external two-valued code (L/P) to the stored value.
// Anything other than "L" maps to FEMALE, matching the intake form contract.
func SexFromCode(code string) Sex {
	if code == "L" {
		return SexMale
	}
	return SexFemale
}

// Code maps the stored value back to the external L/P code.
func (s Sex) Code() string {
	if s == SexMale {
		return "L"
	}
	return "P"
}

// TreatmentType is one of the fixed spa service categories.
type TreatmentType string

const (
	TreatmentPijatBayi         TreatmentType = "pijat_bayi"
	TreatmentBabySwimming      TreatmentType = "baby_swimming"
	TreatmentPerawatanKulit    TreatmentType = "perawatan_kulit"
	TreatmentStimulasiSensorik TreatmentType = "stimulasi_sensorik"
	TreatmentYogaBayi          TreatmentType = "yoga_bayi"
	TreatmentPaketLengkap      TreatmentType = "paket_lengkap"
	TreatmentAquaTherapy       TreatmentType = "aqua_therapy"
	TreatmentBabyGym           TreatmentType = "baby_gym"
)

var treatmentLabels = map[TreatmentType]string{
	TreatmentPijatBayi:         "Pijat Bayi",
	TreatmentBabySwimming:      "Baby Swimming",
	TreatmentPerawatanKulit:    "Perawatan Kulit Bayi",
	TreatmentStimulasiSensorik: "Stimulasi Sensorik",
	TreatmentYogaBayi:          "Yoga Bayi",
	TreatmentPaketLengkap:      "Paket Lengkap",
	TreatmentAquaTherapy:       "Aqua Therapy",
	TreatmentBabyGym:           "Baby Gym",
}

// TreatmentTypes returns all treatment types in display order.
func TreatmentTypes() []TreatmentType {
	return []TreatmentType{
		TreatmentPijatBayi,
		TreatmentBabySwimming,
		TreatmentPerawatanKulit,
		TreatmentStimulasiSensorik,
		TreatmentYogaBayi,
		TreatmentPaketLengkap,
		TreatmentAquaTherapy,
		TreatmentBabyGym,
	}
}

// Valid reports whether t is one of the known treatment types.
func (t TreatmentType) Valid() bool {
	_, ok := treatmentLabels[t]
	return ok
}

// Label returns the human-readable treatment name.
func (t TreatmentType) Label() string {
	if l, ok := treatmentLabels[t]; ok {
		return l
	}
	return string(t)
}

// Transaction is a single treatment record.
type Transaction struct {
	ID           string
	BabyName     string
	Age          string
	Sex          Sex
	WeightKg     string
	LengthCm     string
	GuardianName string
	Address      string
	Treatment    TreatmentType
	Cost         int64
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TransactionInput carries the externally supplied fields of a transaction.
// Cost stays raw because clients send it either as a JSON string or number.
type TransactionInput struct {
	BabyName     string
	Age          string
	SexCode      string
	WeightKg     string
	LengthCm     string
	GuardianName string
	Address      string
	Treatment    string
	Cost         any
	Note         string
	Date         string
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Page      int
	Limit     int
	Search    string
	Treatment string
}

// TransactionPage is one page of a transaction listing.
type TransactionPage struct {
	Items      []*Transaction
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// RevenueFilter narrows the revenue report. Zero times leave that bound open;
// End covers the whole day it names.
type RevenueFilter struct {
	Start     time.Time
	End       time.Time
	Treatment string
}
