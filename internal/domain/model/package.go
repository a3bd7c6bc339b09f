package model

// Package identifies the purchased service tier.
type Package string

const (
	PackageBasic        Package = "basic"
	PackageStandard     Package = "standard"
	PackageProfessional Package = "professional"
	PackageCombo        Package = "combo"
	PackageCoverLetter  Package = "cover-letter"
)

// Price returns the fixed package price in minor currency units.
// The switch is exhaustive over the known packages; ok is false for
// anything else.
func (p Package) Price() (price int64, ok bool) {
	switch p {
	case PackageBasic:
		return 0, true
	case PackageStandard:
		return 2790, true
	case PackageProfessional:
		return 5500, true
	case PackageCombo:
		return 8000, true
	case PackageCoverLetter:
		return 3500, true
	default:
		return 0, false
	}
}

// Valid reports whether the package belongs to the fixed enumeration.
func (p Package) Valid() bool {
	_, ok := p.Price()
	return ok
}

// Free reports whether the package is fulfilled without payment.
func (p Package) Free() bool {
	price, ok := p.Price()
	return ok && price == 0
}
