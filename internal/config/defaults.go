package config

// AlwaysRequired is the curated list of field names the BMRS API
// populates in every response row even though the published document
// marks them optional. The list comes from sampling live responses;
// entries are grouped by role. Extending it requires fresh evidence,
// not schema reading. Fields the sampling showed as nullable (forecast
// horizons, area codes, capacity headroom, secondary prices) stay off
// the list.
var AlwaysRequired = []string{
	// Core identification, always present
	"dataset", "documentId", "publishTime", "settlementDate", "settlementPeriod",

	// Time fields
	"startTime", "endTime", "timeFrom", "timeTo", "measurementTime",
	"createdDateTime", "messageReceivedDateTime", "halfHourEndTime",

	// BM Unit identification, present when relevant
	"bmUnit", "nationalGridBmUnit", "nationalGridBmUnitId",

	// Measurement values
	"quantity", "generation", "demand", "price", "cost", "volume",

	// Classification
	"businessType", "psrType", "fuelType", "status", "messageType",
	"processType", "warningType", "messageHeading", "eventType",
	"unavailabilityType", "assetType", "eventStatus", "amendmentFlag",

	// Record identity
	"id", "mrid", "mRID", "acceptanceNumber", "pairId", "timeSeriesId",
	"documentRevisionNumber", "acceptanceId", "participantId",
	"participantName", "assetId", "affectedUnit", "demandControlId",
	"serialNumber",

	// Trading
	"flowDirection", "tradeDirection", "marketAgreementType",
	"contractIdentification", "tradeQuantity", "tradePrice", "traderUnit",
	"tradingUnitType", "tradingUnitName",

	// Capacity and volumes
	"normalCapacity", "importVolume", "exportVolume", "netVolume",

	// Event timing
	"eventStartTime", "eventEndTime", "fileCreationTime",

	// Geography
	"biddingZone",

	// Settlement administration
	"settlementRunType", "deliveryMode",

	// Misc always-populated
	"cause", "revisionNumber", "affectedDso", "instructionSequence",
	"demandControlEventFlag", "systemManagementActionFlag",
}

// StripPathPrefixes are the fixed leading path segments dropped when
// synthesizing method names from endpoint paths.
var StripPathPrefixes = []string{"api", "v1", "v2", "bmrs"}

func defaults() map[string]any {
	return map[string]any{
		"python.output-dir":              "generated",
		"python.package":                 "elexon_bmrs",
		"go.output-dir":                  "generated",
		"go.package":                     "bmrs",
		"generation.always-required":     AlwaysRequired,
		"generation.strip-path-prefixes": StripPathPrefixes,
		"generation.use-enum-overrides":  true,
		"validation.preview-limit":       10,
		"targets":                        []string{"models", "client", "enums"},
	}
}
