// Package enums holds the curated value tables for BMRS classification
// fields. The portal's published document types these fields as bare
// strings; the closed value sets below come from the API documentation
// and observed responses, so the generated client can offer real enum
// types instead.
package enums

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Known maps a field name to its documented value set. Values are kept in
// documentation order here; emission sorts them.
var Known = map[string][]string{
	"dataset": {
		"ABUC", "AGPT", "AGWS", "AOBE", "ATL", "AWGF", "B1610", "B1620", "B1630",
		"BEB", "BOALF", "BOD", "CBS", "CCM", "CDN", "DAG", "DATL", "DCI", "DGWS",
		"DISBSAD", "FEIB", "FREQ", "FUELINST", "IGCA", "IGCPU", "INDDEM", "INDGEN",
		"INDOD", "LOLPDRM", "MATL", "MDP", "MDV", "MID", "MILS", "MNZT", "MZT",
		"NDZ", "NETBSAD", "NONBM", "NTB", "NTO", "PBC", "PN", "PPBR", "QAS", "QPN",
		"REMIT", "RURE", "RZDF", "RZDR", "SEL", "SIL", "SOSO", "SYSWARN", "TEMP",
		"TUDM", "UOU", "WATL", "YAFM", "YATL",
	},
	"psrType": {
		"Generation", "Solar", "Wind Onshore", "Wind Offshore", "Hydro Pumped Storage",
		"Hydro Run-of-river and poundage", "Other", "Fossil Gas", "Fossil Hard coal",
		"Fossil Oil", "Nuclear", "Biomass", "Waste", "Geothermal", "Marine",
	},
	"fuelType": {
		"BIOMASS", "CCGT", "COAL", "GAS", "HYDRO", "NUCLEAR", "NPSHYD", "OCGT",
		"OIL", "OTHER", "PS", "WIND", "INTEW", "INTFR", "INTIRL", "INTNED",
		"INTNEM", "INTNSL", "Fossil Gas", "Fossil Hard coal", "Fossil Oil",
		"Nuclear", "Biomass", "Waste", "Geothermal", "Solar", "Wind Onshore",
		"Wind Offshore", "Hydro Pumped Storage", "Hydro Run-of-river and poundage",
		"Marine", "Other",
	},
	"businessType": {
		"Production", "Internal trade", "Consumption", "Solar generation",
		"Wind generation", "Installed generation", "Replacement reserve",
		"Frequency restoration reserve", "Automatic frequency restoration reserve",
		"Congestion costs", "Positive forecast margin", "Negative forecast margin",
	},
	"messageType": {
		"FPN", "MEL", "MIL", "BOA", "BOALF", "QPN", "DISEBSP", "NETEBSP",
		"UnavailabilitiesOfElectricityFacilities", "UnavailabilitiesOfProductionUnits",
		"UnavailabilitiesOfTransmissionInfrastructure",
	},
	"eventType": {
		"Production unavailability", "Transmission unavailability",
		"Offshore unavailability", "Consumption unavailability",
	},
	"processType": {
		"Day ahead", "Intraday process", "Realised", "Week ahead",
		"Month ahead", "Year ahead",
	},
	"warningType": {
		"Demand Control Imminent", "Demand Control Active", "Demand Control Complete",
		"Insufficient System Margin", "SO-SO TRADES", "IT SYSTEMS OUTAGE",
		"Negative Reserve Active", "Negative Reserve Imminent",
	},
	"assetType": {
		"Production", "Consumption", "Transmission", "Offshore",
	},
	"eventStatus": {
		"Active", "Inactive", "Withdrawn", "Cancelled", "Completed",
	},
	"unavailabilityType": {
		"Planned", "Unplanned", "Forced",
	},
	"flowDirection": {
		"Up", "Down",
	},
	// A01 = Import, A02 = Export
	"tradeDirection": {
		"A01", "A02",
	},
	"marketAgreementType": {
		"Daily", "Weekly", "Monthly", "Yearly", "Total",
	},
	"boundary": {
		"GB", "GB-IRL", "GB-NIR", "GB-FRA", "GB-NED", "GB-BEL", "GB-NOR", "GB-DEN",
	},
	"recordType": {
		"ITSDO", "LOLP", "MELNGC", "NDZ", "NTB", "NTO", "RDRE", "RURE", "TSDO",
	},
	"deliveryMode": {
		"Offtaking", "Delivering",
	},
	"settlementRunType": {
		"II", "SF", "R1", "R2", "R3", "RF", "DF",
	},
	"bmUnitType": {
		"T", "E", "I", "G", "S", "M",
	},
	"priceDerivationCode": {
		"N", "P", "R", "D",
	},
	"systemZone": {
		"GB", "GB-IRL", "GB-NIR",
	},
	"amendmentFlag": {
		"ORI", "REP",
	},
}

// ClassName derives the enum class name for a field. Each word keeps only
// its leading capital (psrType becomes PsrtypeEnum), matching the names
// the override table points at.
func ClassName(field string) string {
	words := strings.FieldsFunc(field, func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})
	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	name := b.String()
	if !strings.HasSuffix(name, "Enum") {
		name += "Enum"
	}
	return name
}

// MemberName converts a raw value into a valid constant identifier:
// non-alphanumerics become underscores, runs collapse, the result is
// uppercased, and a leading digit gets an underscore prefix.
func MemberName(value string) string {
	var b strings.Builder
	prev := false
	for _, r := range value {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !ok {
			if !prev && b.Len() > 0 {
				b.WriteByte('_')
			}
			prev = true
			continue
		}
		prev = false
		b.WriteRune(unicode.ToUpper(r))
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "UNKNOWN"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// Member is one emitted enum constant.
type Member struct {
	Name  string
	Value string
}

// Definition is one enum type ready for rendering.
type Definition struct {
	ClassName string
	Field     string
	Members   []Member
}

// Definitions builds the full emission set from the Known table: one
// definition per field, sorted by field name, members sorted by value
// with colliding member names disambiguated by numeric suffix.
func Definitions() []Definition {
	fields := make([]string, 0, len(Known))
	for f := range Known {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	defs := make([]Definition, 0, len(fields))
	for _, field := range fields {
		values := append([]string(nil), Known[field]...)
		sort.Strings(values)

		used := make(map[string]bool, len(values))
		members := make([]Member, 0, len(values))
		for _, v := range values {
			name := MemberName(v)
			if used[name] {
				n := 2
				for used[fmt.Sprintf("%s_%d", name, n)] {
					n++
				}
				name = fmt.Sprintf("%s_%d", name, n)
			}
			used[name] = true
			members = append(members, Member{Name: name, Value: v})
		}
		defs = append(defs, Definition{ClassName: ClassName(field), Field: field, Members: members})
	}
	return defs
}

// DefaultOverrides maps each known field to its enum class name, for the
// type resolver's override table.
func DefaultOverrides() map[string]string {
	overrides := make(map[string]string, len(Known))
	for field := range Known {
		overrides[field] = ClassName(field)
	}
	return overrides
}
