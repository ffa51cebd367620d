package random

// Gender codes used in the NAD segment.
var GenderCodes = []string{"M", "W", "D"}

var firstNamesByGender = map[string][]string{
	"M": {"Lukas", "Jonas", "Felix", "Paul", "Maximilian", "Leon", "Tobias", "Stefan"},
	"W": {"Anna", "Lea", "Sophie", "Marie", "Laura", "Julia", "Katrin", "Sabine"},
	"D": {"Alex", "Kim", "Robin", "Sascha", "Chris", "Luca"},
}

// LastNames is the surname pool.
var LastNames = []string{
	"Mueller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer",
	"Wagner", "Becker", "Schulz", "Hoffmann", "Koch", "Richter",
}

// FirstNames returns the first-name pool for a gender code, falling back to
// the neutral pool for unknown codes.
func FirstNames(gender string) []string {
	if names, ok := firstNamesByGender[gender]; ok {
		return names
	}
	return firstNamesByGender["D"]
}

// DepartmentCodes are four-digit Fachabteilung keys.
var DepartmentCodes = []string{"0100", "0300", "1000", "1500", "1600", "2200", "2400", "2800", "3600"}

// InsuranceClasses are Versichertenart values (member, family, pensioner).
var InsuranceClasses = []string{"1", "3", "5"}

// PopulationCodes are "besondere Personengruppe" keys.
var PopulationCodes = []string{"00", "04", "06", "07", "08", "09"}

// DMPCodes are disease-management-programme keys.
var DMPCodes = []string{"00", "01", "02", "03", "04", "05", "06"}

// InstitutionFlags mark the institution type on the INV segment.
var InstitutionFlags = []string{"0", "1"}

// ServiceCodes are eight-character Entgeltart keys.
var ServiceCodes = []string{"70010001", "70010002", "76000001", "80000001", "01100001", "C0100001"}

// InvoiceTypes are Rechnungsart keys.
var InvoiceTypes = []string{"01", "02", "03", "04"}
